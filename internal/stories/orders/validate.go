package orders

import (
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// ParseQuantity принимает целое число в диапазоне [MinQuantity, MaxQuantity].
func ParseQuantity(text string) (int, error) {
	quantity, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, ErrQuantityNotNumber
	}
	if quantity < MinQuantity || quantity > MaxQuantity {
		return 0, ErrQuantityOutOfRange
	}
	return quantity, nil
}

// IsOrderID сообщает, состоит ли text только из цифр.
func IsOrderID(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// ParseOrderIDs разбирает список номеров через запятую.
func ParseOrderIDs(text string) ([]string, error) {
	ids := lo.Map(strings.Split(strings.TrimSpace(text), ","), func(id string, _ int) string {
		return strings.TrimSpace(id)
	})

	if len(ids) > MaxCancelOrders {
		return nil, ErrTooManyOrders
	}
	if !lo.EveryBy(ids, IsOrderID) {
		return nil, ErrInvalidOrderID
	}

	return ids, nil
}
