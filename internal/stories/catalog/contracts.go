package catalog

import (
	"context"

	"smm-bot/internal/infra/reseller"
)

type Reseller interface {
	Services(ctx context.Context) ([]reseller.Service, error)
}
