package order

import (
	"fmt"

	"boutique/internal/entities"
)

const (
	PolicyAny        = "any"
	PolicySequential = "sequential"
)

// TransitionPolicy решает, можно ли перевести заказ из from в to.
// Оба статуса к моменту вызова уже валидны.
type TransitionPolicy interface {
	Allow(from, to entities.OrderStatus) bool
}

// AnyTransition разрешает запись любого статуса, в том числе откат назад.
type AnyTransition struct{}

func (AnyTransition) Allow(_, _ entities.OrderStatus) bool {
	return true
}

// SequentialTransition разрешает только следующий по циклу статус или тот же самый.
type SequentialTransition struct{}

func (SequentialTransition) Allow(from, to entities.OrderStatus) bool {
	if from == to {
		return true
	}
	next, ok := from.Next()
	return ok && next == to
}

func PolicyByName(name string) (TransitionPolicy, error) {
	switch name {
	case "", PolicyAny:
		return AnyTransition{}, nil
	case PolicySequential:
		return SequentialTransition{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
	}
}
