package usecase

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/piresc/ridesharing/internal/pkg/logger"
	"github.com/piresc/ridesharing/internal/pkg/models"
	"github.com/piresc/ridesharing/services/rides"
)

// rideUC implements the rides.RideUC interface
type rideUC struct {
	cfg        *models.Config
	tariffRepo rides.TariffRepo
}

// NewRideUC creates a new ride use case
func NewRideUC(
	cfg *models.Config,
	tariffRepo rides.TariffRepo,
) (rides.RideUC, error) {
	if tariffRepo == nil {
		return nil, fmt.Errorf("tariff repository is required")
	}
	return &rideUC{
		cfg:        cfg,
		tariffRepo: tariffRepo,
	}, nil
}

// BookRide builds the ride variant matching the requested type
func (uc *rideUC) BookRide(ctx context.Context, req models.RideRequest) (models.Ride, error) {
	if !(req.Distance >= 0) {
		logger.Warn("Rejected ride with negative distance",
			logger.Int("ride_id", req.RideID),
			logger.Float64("distance", req.Distance))
		return nil, fmt.Errorf("ride %d: %w", req.RideID, rides.ErrNegativeDistance)
	}

	tariff, err := uc.tariffRepo.GetTariff(ctx, req.Type)
	if err != nil {
		logger.Warn("Failed to resolve tariff",
			logger.Int("ride_id", req.RideID),
			logger.String("type", req.Type),
			logger.Err(err))
		return nil, fmt.Errorf("ride %d: %w", req.RideID, err)
	}

	var ride models.Ride
	switch {
	case strings.EqualFold(tariff.Type, models.RideTypeStandard):
		ride = models.NewStandardRide(req.RideID, req.Pickup, req.Dropoff, req.Distance)
	case strings.EqualFold(tariff.Type, models.RideTypePremium):
		ride = models.NewPremiumRide(req.RideID, req.Pickup, req.Dropoff, req.Distance)
	default:
		ride = models.NewTariffRide(req.RideID, req.Pickup, req.Dropoff, req.Distance, tariff)
	}

	logger.Info("Booked ride",
		logger.Int("ride_id", ride.ID()),
		logger.String("type", ride.Type()),
		logger.Float64("distance", ride.Distance()),
		logger.Float64("fare", ride.Fare()))
	return ride, nil
}

// AssignRide appends the ride to the driver's assigned rides
func (uc *rideUC) AssignRide(ctx context.Context, driver *models.Driver, ride models.Ride) {
	driver.AddRide(ride)
	logger.Debug("Assigned ride to driver",
		logger.Int("ride_id", ride.ID()),
		logger.Int("driver_id", driver.ID()))
}

// RequestRide appends the ride to the rider's requested rides
func (uc *rideUC) RequestRide(ctx context.Context, rider *models.Rider, ride models.Ride) {
	rider.RequestRide(ride)
	logger.Debug("Ride requested by rider",
		logger.Int("ride_id", ride.ID()),
		logger.Int("rider_id", rider.ID()))
}

// WriteReport writes every driver's info, then every rider's info
func (uc *rideUC) WriteReport(ctx context.Context, w io.Writer, drivers []*models.Driver, riders []*models.Rider) error {
	if _, err := fmt.Fprintln(w, "--- Driver Info ---"); err != nil {
		return err
	}
	for _, d := range drivers {
		if err := d.WriteInfo(w); err != nil {
			return fmt.Errorf("failed to write driver %d: %w", d.ID(), err)
		}
	}

	if _, err := fmt.Fprintln(w, "\n--- Rider Info ---"); err != nil {
		return err
	}
	for _, r := range riders {
		if err := r.WriteInfo(w); err != nil {
			return fmt.Errorf("failed to write rider %d: %w", r.ID(), err)
		}
	}

	logger.Info("Report written",
		logger.Int("drivers", len(drivers)),
		logger.Int("riders", len(riders)))
	return nil
}
