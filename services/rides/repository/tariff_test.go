package repository

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/piresc/ridesharing/internal/pkg/models"
	"github.com/piresc/ridesharing/services/rides"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTariffRepository_BuiltIns(t *testing.T) {
	repo, err := NewTariffRepository(&models.Config{})
	require.NoError(t, err)

	tariffs := repo.ListTariffs(context.Background())

	assert.Equal(t, []models.Tariff{
		{Type: models.RideTypeStandard, RatePerMile: 2.0},
		{Type: models.RideTypePremium, RatePerMile: 3.5},
	}, tariffs)
}

func TestNewTariffRepository_NilConfig(t *testing.T) {
	repo, err := NewTariffRepository(nil)
	require.NoError(t, err)

	assert.Len(t, repo.ListTariffs(context.Background()), 2)
}

func TestNewTariffRepository_ConfiguredTariffs(t *testing.T) {
	cfg := &models.Config{
		Tariffs: []models.TariffConfig{
			{Type: "Shared", RatePerMile: 1.25},
			{Type: "Luxury", RatePerMile: 5},
		},
	}

	repo, err := NewTariffRepository(cfg)
	require.NoError(t, err)

	tariffs := repo.ListTariffs(context.Background())
	require.Len(t, tariffs, 4)
	assert.Equal(t, "Shared", tariffs[2].Type)
	assert.Equal(t, "Luxury", tariffs[3].Type)
}

func TestNewTariffRepository_Duplicate(t *testing.T) {
	tests := []struct {
		name    string
		tariffs []models.TariffConfig
	}{
		{
			name:    "Shadows a built-in type",
			tariffs: []models.TariffConfig{{Type: "premium", RatePerMile: 9}},
		},
		{
			name: "Declared twice",
			tariffs: []models.TariffConfig{
				{Type: "Shared", RatePerMile: 1},
				{Type: " SHARED ", RatePerMile: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewTariffRepository(&models.Config{Tariffs: tt.tariffs})
			assert.True(t, errors.Is(err, rides.ErrDuplicateTariff), "got %v", err)
		})
	}
}

func TestNewTariffRepository_InvalidTariff(t *testing.T) {
	tests := []struct {
		name   string
		tariff models.TariffConfig
	}{
		{"Empty type with negative rate", models.TariffConfig{Type: "", RatePerMile: -4}},
		{"Blank type", models.TariffConfig{Type: "   ", RatePerMile: 1}},
		{"Negative rate", models.TariffConfig{Type: "Shared", RatePerMile: -0.5}},
		{"NaN rate", models.TariffConfig{Type: "Shared", RatePerMile: math.NaN()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, err := NewTariffRepository(&models.Config{Tariffs: []models.TariffConfig{tt.tariff}})
			assert.ErrorIs(t, err, rides.ErrInvalidTariff)
			assert.Nil(t, repo)
		})
	}
}

func TestTariffRepo_GetTariff(t *testing.T) {
	repo, err := NewTariffRepository(&models.Config{
		Tariffs: []models.TariffConfig{{Type: "Shared", RatePerMile: 1.25}},
	})
	require.NoError(t, err)
	ctx := context.Background()

	tests := []struct {
		name     string
		rideType string
		want     models.Tariff
		wantErr  error
	}{
		{"Standard", "Standard", models.Tariff{Type: "Standard", RatePerMile: 2.0}, nil},
		{"Case insensitive", "pReMiUm", models.Tariff{Type: "Premium", RatePerMile: 3.5}, nil},
		{"Configured", "shared", models.Tariff{Type: "Shared", RatePerMile: 1.25}, nil},
		{"Unknown", "Helicopter", models.Tariff{}, rides.ErrUnknownRideType},
		{"Empty", "", models.Tariff{}, rides.ErrUnknownRideType},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := repo.GetTariff(ctx, tt.rideType)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
