package models

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRider_RequestRidePreservesOrder(t *testing.T) {
	rider := NewRider(201, "Ahmed")
	r1 := NewPremiumRide(1, "A", "B", 1)
	r2 := NewStandardRide(2, "C", "D", 2)
	r3 := NewPremiumRide(3, "E", "F", 3)

	rider.RequestRide(r1)
	rider.RequestRide(r2)
	rider.RequestRide(r3)
	rider.RequestRide(r1)

	assert.Equal(t, []Ride{r1, r2, r3, r1}, rider.RequestedRides())
	assert.Equal(t, 201, rider.ID())
	assert.Equal(t, "Ahmed", rider.Name())
}

func TestRider_WriteInfo(t *testing.T) {
	tests := []struct {
		name     string
		rides    []Ride
		expected string
	}{
		{
			name:     "No requested rides prints header only",
			rides:    nil,
			expected: "Rider ID: 201, Name: Ahmed\nRequested Rides: \n",
		},
		{
			name:  "One ride",
			rides: []Ride{NewPremiumRide(2, "Mall", "Hotel", 5.0)},
			expected: "Rider ID: 201, Name: Ahmed\nRequested Rides: \n" +
				"Ride ID: 2, Pickup: Mall, Dropoff: Hotel, Distance: 5 miles\n" +
				"Ride Type: Premium, Fare: $17.5\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rider := NewRider(201, "Ahmed")
			for _, r := range tt.rides {
				rider.RequestRide(r)
			}

			var buf bytes.Buffer
			require.NoError(t, rider.WriteInfo(&buf))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestRideSharedBetweenDriverAndRider(t *testing.T) {
	ride := NewStandardRide(1, "Downtown", "Airport", 10.0)
	driver := NewDriver(101, "Shaffan", 4.9)
	rider := NewRider(201, "Ahmed")

	driver.AddRide(ride)
	rider.RequestRide(ride)

	assert.Same(t, driver.AssignedRides()[0], rider.RequestedRides()[0])
}

func TestRider_WriteInfoError(t *testing.T) {
	rider := NewRider(1, "R")
	rider.RequestRide(NewStandardRide(1, "A", "B", 1))

	assert.Error(t, rider.WriteInfo(brokenWriter{}))
}
