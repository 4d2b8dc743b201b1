package orders

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/pkg/errors"

	"smm-bot/internal/infra/reseller"
)

type mockReseller struct {
	orderID   string
	addErr    error
	added     []OrderRequest
	cancelled []string
}

func (m *mockReseller) AddOrder(ctx context.Context, serviceID, link string, quantity int) (string, error) {
	m.added = append(m.added, OrderRequest{ServiceID: serviceID, Link: link, Quantity: quantity})
	return m.orderID, m.addErr
}

func (m *mockReseller) CancelOrders(ctx context.Context, orderIDs string) ([]reseller.CancelResult, error) {
	m.cancelled = append(m.cancelled, orderIDs)
	return nil, nil
}

func (m *mockReseller) OrderStatus(ctx context.Context, orderID string) (reseller.OrderStatus, error) {
	return reseller.OrderStatus{}, &reseller.APIError{Message: "Incorrect order ID"}
}

func (m *mockReseller) Balance(ctx context.Context) (reseller.Balance, error) {
	return reseller.Balance{Amount: "42.00"}, nil
}

func newTestService(r Reseller) *Service {
	return NewService(r, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestPlaceOrder(t *testing.T) {
	r := &mockReseller{orderID: "9001"}
	svc := newTestService(r)

	req := OrderRequest{ServiceID: "1", Link: "https://t.me/channel", Quantity: 500}
	orderID, err := svc.PlaceOrder(context.Background(), req)
	if err != nil {
		t.Fatalf("PlaceOrder: %v", err)
	}
	if orderID != "9001" {
		t.Errorf("orderID = %q, want 9001", orderID)
	}
	if len(r.added) != 1 || r.added[0] != req {
		t.Errorf("added = %+v", r.added)
	}
}

func TestPlaceOrderKeepsErrorKind(t *testing.T) {
	svc := newTestService(&mockReseller{addErr: &reseller.APIError{Message: "Not enough funds"}})

	_, err := svc.PlaceOrder(context.Background(), OrderRequest{ServiceID: "1", Link: "x", Quantity: 10})
	var apiErr *reseller.APIError
	if !errors.As(err, &apiErr) || apiErr.Message != "Not enough funds" {
		t.Fatalf("expected APIError, got %v", err)
	}
}

func TestCancelOrdersPassesRawText(t *testing.T) {
	r := &mockReseller{}
	svc := newTestService(r)

	if _, err := svc.CancelOrders(context.Background(), "1, 2,3"); err != nil {
		t.Fatalf("CancelOrders: %v", err)
	}
	if len(r.cancelled) != 1 || r.cancelled[0] != "1, 2,3" {
		t.Errorf("cancelled = %v", r.cancelled)
	}
}

func TestOrderStatusKeepsAPIError(t *testing.T) {
	svc := newTestService(&mockReseller{})

	_, err := svc.OrderStatus(context.Background(), "1")
	if reseller.Outcome(err) != "api_error" {
		t.Fatalf("Outcome = %q, err = %v", reseller.Outcome(err), err)
	}
}
