package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"kitchen-drone/internal/domain"
	"kitchen-drone/internal/repository"
)

var (
	ErrNoOrderData   = errors.New("No order data provided")
	ErrUnserviceable = errors.New("Delivery not available in this area")
)

const timestampLayout = "2006-01-02 15:04:05"

// OrderService реализует логику заказов: оформление, список, удаление
type OrderService struct {
	orders repository.OrderRepository
}

func NewOrderService(orders repository.OrderRepository) *OrderService {
	return &OrderService{orders: orders}
}

// PlaceOrder валидирует запрос, считает сумму и кладёт заказ в хранилище.
// Позиции и данные покупателя копируются из запроса как есть.
func (s *OrderService) PlaceOrder(ctx context.Context, req domain.PlaceOrderRequest) (string, error) {
	if len(req.Items) == 0 {
		return "", ErrNoOrderData
	}
	if !PincodeServiceable(req.CustomerInfo.Pincode) {
		return "", ErrUnserviceable
	}

	var total float64
	for _, it := range req.Items {
		total += it.Price * float64(it.Quantity)
	}

	o := domain.Order{
		ID:           generateOrderID(),
		Timestamp:    time.Now().Format(timestampLayout),
		Items:        append([]domain.CartLine(nil), req.Items...),
		CustomerInfo: req.CustomerInfo,
		Total:        total,
	}
	if err := s.orders.Append(ctx, o); err != nil {
		return "", err
	}
	return o.ID, nil
}

// ListOrders возвращает все заказы в порядке создания
func (s *OrderService) ListOrders(ctx context.Context) ([]domain.Order, error) {
	return s.orders.List(ctx)
}

// DeleteOrder удаляет заказ по id; repository.ErrNotFound если его нет
func (s *OrderService) DeleteOrder(ctx context.Context, id string) error {
	return s.orders.DeleteByID(ctx, id)
}

// generateOrderID формирует id вида ORD-<yyyymmddhhmm>-<8 символов uuid>:
// лексическая сортировка примерно соответствует времени создания,
// уникальность обеспечивает суффикс
func generateOrderID() string {
	return fmt.Sprintf("ORD-%s-%s", time.Now().Format("200601021504"), uuid.NewString()[:8])
}
