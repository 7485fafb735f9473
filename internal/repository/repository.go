package repository

import (
	"context"
	"errors"

	"kitchen-drone/internal/domain"
)

// ErrNotFound возвращается, когда заказ не найден
var ErrNotFound = errors.New("not found")

// OrderRepository интерфейс хранилища заказов
type OrderRepository interface {
	Append(ctx context.Context, o domain.Order) error
	List(ctx context.Context) ([]domain.Order, error)
	DeleteByID(ctx context.Context, id string) error
}
