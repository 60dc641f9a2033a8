package models

import (
	"fmt"

	"github.com/piresc/ridesharing/internal/pkg/converter"
)

// Fare rates in currency units per mile
const (
	StandardRatePerMile = 2.0
	PremiumRatePerMile  = 3.5
)

// Ride type labels
const (
	RideTypeStandard = "Standard"
	RideTypePremium  = "Premium"
)

// Ride is a single immutable trip with its own fare rule
type Ride interface {
	ID() int
	Pickup() string
	Dropoff() string
	Distance() float64 // in miles
	Type() string
	Fare() float64
	Describe() string
}

// Tariff pairs a ride type label with its per-mile rate
type Tariff struct {
	Type        string  `mapstructure:"type"`
	RatePerMile float64 `mapstructure:"rate_per_mile"`
}

// RideRequest carries the caller-supplied attributes of a ride to book
type RideRequest struct {
	RideID   int
	Type     string
	Pickup   string
	Dropoff  string
	Distance float64
}

// trip holds the attributes shared by every ride variant
type trip struct {
	id       int
	pickup   string
	dropoff  string
	distance float64
}

func (t trip) ID() int           { return t.id }
func (t trip) Pickup() string    { return t.pickup }
func (t trip) Dropoff() string   { return t.dropoff }
func (t trip) Distance() float64 { return t.distance }

// details renders the line common to all variants
func (t trip) details() string {
	return fmt.Sprintf("Ride ID: %d, Pickup: %s, Dropoff: %s, Distance: %s miles",
		t.id, t.pickup, t.dropoff, converter.FloatToStr(t.distance))
}

func describe(t trip, rideType string, fare float64) string {
	return t.details() + "\n" +
		fmt.Sprintf("Ride Type: %s, Fare: $%s", rideType, converter.FloatToStr(fare))
}

// StandardRide is billed at StandardRatePerMile
type StandardRide struct {
	trip
}

// NewStandardRide creates a standard ride. Distance is not validated.
func NewStandardRide(id int, pickup, dropoff string, distance float64) *StandardRide {
	return &StandardRide{trip: trip{id: id, pickup: pickup, dropoff: dropoff, distance: distance}}
}

func (r *StandardRide) Type() string { return RideTypeStandard }

func (r *StandardRide) Fare() float64 {
	return r.distance * StandardRatePerMile
}

func (r *StandardRide) Describe() string {
	return describe(r.trip, r.Type(), r.Fare())
}

// PremiumRide is billed at PremiumRatePerMile
type PremiumRide struct {
	trip
}

// NewPremiumRide creates a premium ride. Distance is not validated.
func NewPremiumRide(id int, pickup, dropoff string, distance float64) *PremiumRide {
	return &PremiumRide{trip: trip{id: id, pickup: pickup, dropoff: dropoff, distance: distance}}
}

func (r *PremiumRide) Type() string { return RideTypePremium }

func (r *PremiumRide) Fare() float64 {
	return r.distance * PremiumRatePerMile
}

func (r *PremiumRide) Describe() string {
	return describe(r.trip, r.Type(), r.Fare())
}

// TariffRide is a ride whose type and rate come from a Tariff, so new
// ride types can be introduced without touching the built-in ones.
type TariffRide struct {
	trip
	tariff Tariff
}

// NewTariffRide creates a ride billed by the given tariff
func NewTariffRide(id int, pickup, dropoff string, distance float64, tariff Tariff) *TariffRide {
	return &TariffRide{
		trip:   trip{id: id, pickup: pickup, dropoff: dropoff, distance: distance},
		tariff: tariff,
	}
}

func (r *TariffRide) Type() string { return r.tariff.Type }

func (r *TariffRide) Fare() float64 {
	return r.distance * r.tariff.RatePerMile
}

func (r *TariffRide) Describe() string {
	return describe(r.trip, r.Type(), r.Fare())
}
