package orders

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"

	"smm-bot/internal/infra/metrics"
	"smm-bot/internal/infra/reseller"
)

type Service struct {
	reseller Reseller
	logger   *slog.Logger
}

func NewService(r Reseller, logger *slog.Logger) *Service {
	return &Service{reseller: r, logger: logger}
}

func (s *Service) PlaceOrder(ctx context.Context, req OrderRequest) (string, error) {
	orderID, err := s.reseller.AddOrder(ctx, req.ServiceID, req.Link, req.Quantity)
	if err != nil {
		metrics.IncOrder("failed")
		return "", errors.Wrap(err, "place order")
	}

	metrics.IncOrder("created")
	s.logger.Info("Order placed",
		slog.String("order_id", orderID),
		slog.String("service_id", req.ServiceID),
		slog.Int("quantity", req.Quantity))

	return orderID, nil
}

// CancelOrders передает список в API без изменений. Проверка формата - на
// стороне вызывающего, см. ParseOrderIDs.
func (s *Service) CancelOrders(ctx context.Context, orderIDs string) ([]reseller.CancelResult, error) {
	results, err := s.reseller.CancelOrders(ctx, orderIDs)
	if err != nil {
		return nil, errors.Wrap(err, "cancel orders")
	}
	return results, nil
}

func (s *Service) OrderStatus(ctx context.Context, orderID string) (reseller.OrderStatus, error) {
	status, err := s.reseller.OrderStatus(ctx, orderID)
	if err != nil {
		return reseller.OrderStatus{}, errors.Wrapf(err, "order %s status", orderID)
	}
	return status, nil
}

func (s *Service) Balance(ctx context.Context) (reseller.Balance, error) {
	balance, err := s.reseller.Balance(ctx)
	if err != nil {
		return reseller.Balance{}, errors.Wrap(err, "balance")
	}
	return balance, nil
}
