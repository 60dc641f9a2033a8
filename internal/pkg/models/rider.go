package models

import (
	"fmt"
	"io"
	"os"
	"sync"
)

// Rider holds the rides a rider requested, in request order
type Rider struct {
	id   int
	name string

	mu             sync.RWMutex
	requestedRides []Ride
}

// NewRider creates a rider with no requested rides
func NewRider(id int, name string) *Rider {
	return &Rider{id: id, name: name}
}

func (r *Rider) ID() int      { return r.id }
func (r *Rider) Name() string { return r.name }

// RequestRide appends a ride. The same ride may be requested more than once.
func (r *Rider) RequestRide(ride Ride) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requestedRides = append(r.requestedRides, ride)
}

// RequestedRides returns a copy of the requested rides in insertion order
func (r *Rider) RequestedRides() []Ride {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]Ride(nil), r.requestedRides...)
}

// WriteInfo writes the rider header followed by every requested ride
func (r *Rider) WriteInfo(w io.Writer) error {
	header := fmt.Sprintf("Rider ID: %d, Name: %s\nRequested Rides: ", r.id, r.name)
	return writeRides(w, header, r.RequestedRides())
}

// PrintInfo writes the rider info to stdout
func (r *Rider) PrintInfo() error {
	return r.WriteInfo(os.Stdout)
}
