//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_handle_test
package order_handle

import "context"

type Notifier interface {
	Notify(ctx context.Context, phone string, message string) error
}
