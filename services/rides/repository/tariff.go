package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/piresc/ridesharing/internal/pkg/logger"
	"github.com/piresc/ridesharing/internal/pkg/models"
	"github.com/piresc/ridesharing/services/rides"
)

// TariffRepo is an in-memory tariff table. Standard and Premium are always
// present; configured tariffs are appended in declaration order. The table
// is read-only once built.
type TariffRepo struct {
	order   []string
	tariffs map[string]models.Tariff
}

// NewTariffRepository builds the tariff table from the built-in ride types and cfg.Tariffs
func NewTariffRepository(cfg *models.Config) (*TariffRepo, error) {
	r := &TariffRepo{tariffs: make(map[string]models.Tariff)}

	builtIn := []models.Tariff{
		{Type: models.RideTypeStandard, RatePerMile: models.StandardRatePerMile},
		{Type: models.RideTypePremium, RatePerMile: models.PremiumRatePerMile},
	}
	for _, t := range builtIn {
		if err := r.add(t); err != nil {
			return nil, err
		}
	}

	if cfg != nil {
		for _, tc := range cfg.Tariffs {
			if err := r.add(models.Tariff{Type: tc.Type, RatePerMile: tc.RatePerMile}); err != nil {
				return nil, err
			}
			logger.Debug("Registered tariff",
				logger.String("type", tc.Type),
				logger.Float64("rate_per_mile", tc.RatePerMile))
		}
	}

	return r, nil
}

func (r *TariffRepo) add(t models.Tariff) error {
	key := tariffKey(t.Type)
	if key == "" {
		return fmt.Errorf("%w: type is required", rides.ErrInvalidTariff)
	}
	if !(t.RatePerMile >= 0) {
		return fmt.Errorf("%w: %s: rate_per_mile must not be negative", rides.ErrInvalidTariff, t.Type)
	}
	if _, exists := r.tariffs[key]; exists {
		return fmt.Errorf("%w: %s", rides.ErrDuplicateTariff, t.Type)
	}
	r.tariffs[key] = t
	r.order = append(r.order, key)
	return nil
}

// GetTariff looks up a tariff by ride type, ignoring case
func (r *TariffRepo) GetTariff(ctx context.Context, rideType string) (models.Tariff, error) {
	t, ok := r.tariffs[tariffKey(rideType)]
	if !ok {
		return models.Tariff{}, fmt.Errorf("%w: %q", rides.ErrUnknownRideType, rideType)
	}
	return t, nil
}

// ListTariffs returns every tariff, built-in types first
func (r *TariffRepo) ListTariffs(ctx context.Context) []models.Tariff {
	out := make([]models.Tariff, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.tariffs[key])
	}
	return out
}

func tariffKey(rideType string) string {
	return strings.ToLower(strings.TrimSpace(rideType))
}
