package orders

import "github.com/pkg/errors"

const (
	MinQuantity     = 10
	MaxQuantity     = 50000
	MaxCancelOrders = 100
)

var (
	ErrQuantityNotNumber  = errors.New("quantity is not a number")
	ErrQuantityOutOfRange = errors.New("quantity is out of range")
	ErrTooManyOrders      = errors.New("too many orders")
	ErrInvalidOrderID     = errors.New("order id must be digits")
)

// OrderRequest - параметры нового заказа.
type OrderRequest struct {
	ServiceID string
	Link      string
	Quantity  int
}
