package catalog

import (
	"context"
	"fmt"
	"slices"

	"github.com/pkg/errors"
	"github.com/samber/lo"

	"smm-bot/internal/infra/reseller"
)

// pricePer - API котирует цену за 1000 единиц независимо от rate_per.
const pricePer = 1000

type Service struct {
	reseller Reseller
}

func NewService(r Reseller) *Service {
	return &Service{reseller: r}
}

// ListCategories возвращает уникальные категории по возрастанию.
func (s *Service) ListCategories(ctx context.Context) ([]string, error) {
	services, err := s.reseller.Services(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list categories")
	}

	categories := lo.Uniq(lo.FilterMap(services, func(svc reseller.Service, _ int) (string, bool) {
		return svc.Category, svc.HasCategory
	}))
	slices.Sort(categories)

	return categories, nil
}

// ListServices возвращает услуги категории в порядке, в котором их отдает API.
// Услуги без идентификатора пропускаются.
func (s *Service) ListServices(ctx context.Context, category string) ([]ServiceOption, error) {
	services, err := s.reseller.Services(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "list services")
	}

	return lo.FilterMap(services, func(svc reseller.Service, _ int) (ServiceOption, bool) {
		if !svc.HasCategory || svc.Category != category || svc.ID == "" {
			return ServiceOption{}, false
		}
		return ServiceOption{ID: svc.ID, Label: formatLabel(svc)}, true
	}), nil
}

// ComputePrice считает стоимость quantity единиц услуги serviceID.
func (s *Service) ComputePrice(ctx context.Context, serviceID string, quantity int) (Quote, error) {
	services, err := s.reseller.Services(ctx)
	if err != nil {
		return Quote{}, errors.Wrap(err, "compute price")
	}

	svc, ok := lo.Find(services, func(svc reseller.Service) bool {
		return svc.ID == serviceID
	})
	if !ok {
		return Quote{}, errors.Wrapf(ErrServiceNotFound, "service %s", serviceID)
	}

	rate, err := svc.RateValue()
	if err != nil {
		return Quote{}, errors.Wrapf(ErrInvalidRate, "service %s: %q", serviceID, svc.Rate)
	}

	return Quote{
		Rate:  rate,
		Total: rate * float64(quantity) / pricePer,
	}, nil
}

func formatLabel(svc reseller.Service) string {
	name := svc.Name
	if name == "" {
		name = "Без названия"
	}

	price := "Не указано"
	if rate, err := svc.RateValue(); err == nil {
		price = fmt.Sprintf("%.2f ₽ за %s", rate, svc.RatePer)
	}

	return fmt.Sprintf("ID: %s, Название: %s, Цена: %s", svc.ID, name, price)
}
