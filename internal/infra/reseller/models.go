package reseller

import (
	"strconv"
	"strings"
)

const defaultRatePer = "1000"

// Service - услуга из каталога реселлера. Числовые поля хранятся так, как их
// прислал API: одни панели отдают строки, другие числа.
type Service struct {
	ID          string
	Name        string
	Category    string
	HasCategory bool
	Rate        string
	RatePer     string
}

// RateValue разбирает цену за 1000 единиц.
func (s Service) RateValue() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(s.Rate), 64)
}

type Balance struct {
	Amount   string
	Currency string
}

// OrderStatus - состояние заказа. Пустое поле означает, что API его не вернул.
type OrderStatus struct {
	Charge   string
	Service  string
	Status   string
	Remains  string
	Currency string
}

// CancelResult - результат отмены одного заказа. Error пуст при успехе.
type CancelResult struct {
	OrderID string
	Error   string
}
