package rides

import (
	"context"

	"github.com/piresc/ridesharing/internal/pkg/models"
)

// TariffRepo defines the interface for looking up ride tariffs
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/ridesharing/services/rides TariffRepo
type TariffRepo interface {
	GetTariff(ctx context.Context, rideType string) (models.Tariff, error)
	ListTariffs(ctx context.Context) []models.Tariff
}
