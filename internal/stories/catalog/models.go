package catalog

import "github.com/pkg/errors"

var (
	ErrServiceNotFound = errors.New("catalog: service not found")
	ErrInvalidRate     = errors.New("catalog: service rate is not a number")
)

// ServiceOption - услуга в списке выбора: идентификатор и готовая подпись.
type ServiceOption struct {
	ID    string
	Label string
}

// Quote - расчет стоимости заказа. Rate - цена за 1000 единиц.
type Quote struct {
	Rate  float64
	Total float64
}
