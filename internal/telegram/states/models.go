package states

type State string

const (
	StateNone State = "none"
)

// po -> place order
// os -> order status
// co -> cancel orders

// place order states
const (
	PlaceOrderWaitCategory     State = "po_wt_category"
	PlaceOrderWaitService      State = "po_wt_service"
	PlaceOrderWaitLink         State = "po_wt_link"
	PlaceOrderWaitQuantity     State = "po_wt_quantity"
	PlaceOrderWaitConfirmation State = "po_wt_confirmation"
)

// order status states
const (
	OrderStatusWaitOrderID State = "os_wt_order_id"
)

// cancel orders states
const (
	CancelOrdersWaitOrderIDs State = "co_wt_order_ids"
)
