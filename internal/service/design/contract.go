//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=design_test
package design

import (
	"boutique/internal/entities"
)

type Repository interface {
	ListDesigns() []entities.Design
	GetDesign(id string) (*entities.Design, bool)
	CreateDesign(designModify entities.DesignModify) entities.Design
	UpdateDesign(id string, designModify entities.DesignModify) (*entities.Design, bool)
	DeleteDesign(id string) bool
}
