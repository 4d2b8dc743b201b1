package orders

import (
	"context"

	"smm-bot/internal/infra/reseller"
)

type Reseller interface {
	AddOrder(ctx context.Context, serviceID, link string, quantity int) (string, error)
	CancelOrders(ctx context.Context, orderIDs string) ([]reseller.CancelResult, error)
	OrderStatus(ctx context.Context, orderID string) (reseller.OrderStatus, error)
	Balance(ctx context.Context) (reseller.Balance, error)
}
