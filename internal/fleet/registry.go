// Package fleet constructs vehicles and owns the shared construction
// counter. The counter is registry state, not type state: every Build on
// a Registry increments it by exactly one, for standard and electric
// vehicles alike, behind a mutex so concurrent construction is safe.
package fleet

import (
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/curio/pkg/exhibit"
)

// Registry construction errors.
var (
	ErrManufacturerEmpty = fmt.Errorf("%w: manufacturer must not be empty", exhibit.ErrValidation)
	ErrModelEmpty        = fmt.Errorf("%w: model must not be empty", exhibit.ErrValidation)
	ErrYearInvalid       = fmt.Errorf("%w: year must be positive", exhibit.ErrValidation)
	ErrVehicleNotFound   = errors.New("vehicle not found")
	ErrInvalidFilter     = errors.New("invalid filter value type")
)

// Registry builds vehicles, assigns their IDs, and tracks how many have
// been constructed through it.
type Registry struct {
	mu       sync.Mutex
	count    int64
	vehicles map[string]*exhibit.Vehicle
	log      *slog.Logger
}

// Option configures a Registry.
type Option func(*Registry)

// WithLogger sets the registry logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(r *Registry) {
		if logger != nil {
			r.log = logger
		}
	}
}

// NewRegistry creates an empty Registry with a zero counter.
func NewRegistry(opts ...Option) *Registry {
	r := &Registry{
		vehicles: make(map[string]*exhibit.Vehicle),
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// newUUID generates a UUID v7 string.
func newUUID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// Build validates the inputs, constructs a vehicle with a fresh UUID v7
// ID, stores it, and increments the shared counter by one. Validation
// happens before any mutation; a rejected Build leaves the counter and
// the stored set untouched.
// Returns exhibit.ErrPowertrainUnknown, ErrManufacturerEmpty,
// ErrModelEmpty, or ErrYearInvalid.
func (r *Registry) Build(powertrain, manufacturer, model string, year int) (*exhibit.Vehicle, error) {
	if !exhibit.IsValidPowertrain(powertrain) {
		return nil, exhibit.ErrPowertrainUnknown
	}
	if manufacturer == "" {
		return nil, ErrManufacturerEmpty
	}
	if model == "" {
		return nil, ErrModelEmpty
	}
	if year <= 0 {
		return nil, ErrYearInvalid
	}

	v := &exhibit.Vehicle{
		VehicleID:    newUUID(),
		Manufacturer: manufacturer,
		Model:        model,
		Year:         year,
		Powertrain:   powertrain,
	}

	r.mu.Lock()
	r.vehicles[v.VehicleID] = v
	r.count++
	total := r.count
	r.mu.Unlock()

	r.log.Debug("vehicle built",
		"vehicle_id", v.VehicleID,
		"powertrain", v.Powertrain,
		"manufacturer", v.Manufacturer,
		"model", v.Model,
		"total", total,
	)
	return v, nil
}

// Count returns the number of vehicles built through this registry.
// The value increases by exactly one per successful Build and never
// decreases.
func (r *Registry) Count() int64 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.count
}

// Get returns the vehicle with the given ID.
// Returns ErrVehicleNotFound if no such vehicle was built here.
func (r *Registry) Get(id string) (*exhibit.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	v, ok := r.vehicles[id]
	if !ok {
		return nil, ErrVehicleNotFound
	}
	return v, nil
}

// List returns all vehicles built through this registry, in no
// particular order.
func (r *Registry) List() []*exhibit.Vehicle {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*exhibit.Vehicle, 0, len(r.vehicles))
	for _, v := range r.vehicles {
		result = append(result, v)
	}
	return result
}

// Fetch returns vehicles matching the filter. Recognized keys are
// "manufacturer", "model", "powertrain" (string values) and "year"
// (int). An empty filter matches all vehicles.
// Returns ErrInvalidFilter if a filter value has the wrong type.
func (r *Registry) Fetch(filter map[string]any) ([]*exhibit.Vehicle, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*exhibit.Vehicle, 0, len(r.vehicles))
	for _, v := range r.vehicles {
		match, err := matchesFilter(v, filter)
		if err != nil {
			return nil, err
		}
		if match {
			result = append(result, v)
		}
	}
	return result, nil
}

// matchesFilter reports whether v satisfies every filter entry.
func matchesFilter(v *exhibit.Vehicle, filter map[string]any) (bool, error) {
	for key, want := range filter {
		switch key {
		case "manufacturer", "model", "powertrain":
			s, ok := want.(string)
			if !ok {
				return false, ErrInvalidFilter
			}
			var got string
			switch key {
			case "manufacturer":
				got = v.Manufacturer
			case "model":
				got = v.Model
			case "powertrain":
				got = v.Powertrain
			}
			if got != s {
				return false, nil
			}
		case "year":
			y, ok := want.(int)
			if !ok {
				return false, ErrInvalidFilter
			}
			if v.Year != y {
				return false, nil
			}
		default:
			// Unknown keys match nothing.
			return false, nil
		}
	}
	return true, nil
}
