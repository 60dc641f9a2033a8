package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/piresc/ridesharing/internal/pkg/config"
	"github.com/piresc/ridesharing/internal/pkg/logger"
	"github.com/piresc/ridesharing/internal/pkg/models"
	"github.com/piresc/ridesharing/services/rides/repository"
	"github.com/piresc/ridesharing/services/rides/usecase"
)

func main() {
	appName := "rides"
	configPath := flag.String("config", "config/rides.yaml", "path to the YAML config file")
	flag.Parse()

	configs, err := config.InitConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		log.Fatalf("Failed to create Zap logger: %v", err)
	}
	defer zapLogger.Close()

	// Every log line of this run carries the same run ID
	logger.SetGlobalLogger(zapLogger.With(logger.String("run_id", uuid.NewString())))

	logger.Info("Starting application",
		logger.String("app", appName),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment),
		logger.String("log_file", zapLogger.GetFilePath()),
	)

	if err := run(context.Background(), os.Stdout, configs); err != nil {
		logger.ErrorLog("Sample run failed", logger.Err(err))
		_ = zapLogger.Close()
		os.Exit(1)
	}

	logger.Info("Application finished")
}

// run wires the sample rides, driver and rider, then writes the report to out
func run(ctx context.Context, out io.Writer, configs *models.Config) error {
	tariffRepo, err := repository.NewTariffRepository(configs)
	if err != nil {
		return fmt.Errorf("failed to build tariff table: %w", err)
	}
	logger.Info("Tariff table ready", logger.Any("tariffs", tariffRepo.ListTariffs(ctx)))

	rideUC, err := usecase.NewRideUC(configs, tariffRepo)
	if err != nil {
		return fmt.Errorf("failed to initialize ride use case: %w", err)
	}

	ride1, err := rideUC.BookRide(ctx, models.RideRequest{
		RideID: 1, Type: models.RideTypeStandard, Pickup: "Downtown", Dropoff: "Airport", Distance: 10.0,
	})
	if err != nil {
		return err
	}
	ride2, err := rideUC.BookRide(ctx, models.RideRequest{
		RideID: 2, Type: models.RideTypePremium, Pickup: "Mall", Dropoff: "Hotel", Distance: 5.0,
	})
	if err != nil {
		return err
	}

	driver := models.NewDriver(101, "Shaffan", 4.9)
	rideUC.AssignRide(ctx, driver, ride1)
	rideUC.AssignRide(ctx, driver, ride2)

	rider := models.NewRider(201, "Ahmed")
	rideUC.RequestRide(ctx, rider, ride1)
	rideUC.RequestRide(ctx, rider, ride2)

	return rideUC.WriteReport(ctx, out, []*models.Driver{driver}, []*models.Rider{rider})
}
