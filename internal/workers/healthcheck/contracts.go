package healthcheck

import (
	"context"

	"smm-bot/internal/infra/reseller"
)

type Reseller interface {
	Balance(ctx context.Context) (reseller.Balance, error)
}
