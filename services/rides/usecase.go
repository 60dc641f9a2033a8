package rides

import (
	"context"
	"io"

	"github.com/piresc/ridesharing/internal/pkg/models"
)

// RideUC defines the interface for ride business logic
type RideUC interface {
	BookRide(ctx context.Context, req models.RideRequest) (models.Ride, error)
	AssignRide(ctx context.Context, driver *models.Driver, ride models.Ride)
	RequestRide(ctx context.Context, rider *models.Rider, ride models.Ride)
	WriteReport(ctx context.Context, w io.Writer, drivers []*models.Driver, riders []*models.Rider) error
}
