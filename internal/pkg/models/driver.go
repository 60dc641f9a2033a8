package models

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/piresc/ridesharing/internal/pkg/converter"
)

// Driver holds the rides assigned to a driver, in assignment order
type Driver struct {
	id     int
	name   string
	rating float64

	mu            sync.RWMutex
	assignedRides []Ride
}

// NewDriver creates a driver with no assigned rides
func NewDriver(id int, name string, rating float64) *Driver {
	return &Driver{id: id, name: name, rating: rating}
}

func (d *Driver) ID() int         { return d.id }
func (d *Driver) Name() string    { return d.name }
func (d *Driver) Rating() float64 { return d.rating }

// AddRide appends a ride. The same ride may be added more than once.
func (d *Driver) AddRide(ride Ride) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.assignedRides = append(d.assignedRides, ride)
}

// AssignedRides returns a copy of the assigned rides in insertion order
func (d *Driver) AssignedRides() []Ride {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return append([]Ride(nil), d.assignedRides...)
}

// WriteInfo writes the driver header followed by every assigned ride
func (d *Driver) WriteInfo(w io.Writer) error {
	header := fmt.Sprintf("Driver ID: %d, Name: %s, Rating: %s\nAssigned Rides: ",
		d.id, d.name, converter.FloatToStr(d.rating))
	return writeRides(w, header, d.AssignedRides())
}

// PrintInfo writes the driver info to stdout
func (d *Driver) PrintInfo() error {
	return d.WriteInfo(os.Stdout)
}

func writeRides(w io.Writer, header string, rides []Ride) error {
	if _, err := fmt.Fprintln(w, header); err != nil {
		return err
	}
	for _, ride := range rides {
		if _, err := fmt.Fprintln(w, ride.Describe()); err != nil {
			return err
		}
	}
	return nil
}
