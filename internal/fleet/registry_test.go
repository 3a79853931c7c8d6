package fleet

import (
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/curio/pkg/exhibit"
)

func newTestRegistry() *Registry {
	return NewRegistry(WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
}

func TestRegistryBuild(t *testing.T) {
	tests := []struct {
		name         string
		powertrain   string
		manufacturer string
		model        string
		year         int
		wantErr      error
	}{
		{
			name:         "standard vehicle",
			powertrain:   exhibit.PowertrainStandard,
			manufacturer: "Toyota",
			model:        "Corolla",
			year:         2020,
		},
		{
			name:         "electric vehicle",
			powertrain:   exhibit.PowertrainElectric,
			manufacturer: "Nissan",
			model:        "Leaf",
			year:         2023,
		},
		{
			name:         "unknown powertrain rejected",
			powertrain:   "steam",
			manufacturer: "Stanley",
			model:        "Steamer",
			year:         1910,
			wantErr:      exhibit.ErrPowertrainUnknown,
		},
		{
			name:         "empty manufacturer rejected",
			powertrain:   exhibit.PowertrainStandard,
			manufacturer: "",
			model:        "Corolla",
			year:         2020,
			wantErr:      ErrManufacturerEmpty,
		},
		{
			name:         "empty model rejected",
			powertrain:   exhibit.PowertrainStandard,
			manufacturer: "Toyota",
			model:        "",
			year:         2020,
			wantErr:      ErrModelEmpty,
		},
		{
			name:         "non-positive year rejected",
			powertrain:   exhibit.PowertrainStandard,
			manufacturer: "Toyota",
			model:        "Corolla",
			year:         0,
			wantErr:      ErrYearInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRegistry()

			v, err := r.Build(tt.powertrain, tt.manufacturer, tt.model, tt.year)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.ErrorIs(t, err, exhibit.ErrValidation)
				assert.Nil(t, v)
				assert.Equal(t, int64(0), r.Count(), "counter should not change on error")
			} else {
				require.NoError(t, err)
				assert.NotEmpty(t, v.VehicleID)
				assert.Equal(t, tt.powertrain, v.Powertrain)
				assert.Equal(t, tt.manufacturer, v.Manufacturer)
				assert.Equal(t, tt.model, v.Model)
				assert.Equal(t, tt.year, v.Year)
				assert.Equal(t, int64(1), r.Count())
			}
		})
	}
}

func TestRegistryCountSharedAcrossPowertrains(t *testing.T) {
	r := newTestRegistry()

	_, err := r.Build(exhibit.PowertrainStandard, "Toyota", "Corolla", 2020)
	require.NoError(t, err)
	assert.Equal(t, int64(1), r.Count())

	_, err = r.Build(exhibit.PowertrainElectric, "Nissan", "Leaf", 2023)
	require.NoError(t, err)
	assert.Equal(t, int64(2), r.Count())

	_, err = r.Build(exhibit.PowertrainStandard, "Honda", "Civic", 2021)
	require.NoError(t, err)
	assert.Equal(t, int64(3), r.Count())
}

func TestRegistryCountMonotonic(t *testing.T) {
	r := newTestRegistry()

	var prev int64
	for i := 0; i < 10; i++ {
		_, err := r.Build(exhibit.PowertrainStandard, "Toyota", "Corolla", 2020)
		require.NoError(t, err)
		got := r.Count()
		assert.Equal(t, prev+1, got, "counter must increase by exactly one")
		prev = got
	}
}

func TestRegistryBuildConcurrent(t *testing.T) {
	const (
		goroutines = 8
		perG       = 50
	)
	r := newTestRegistry()

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		powertrain := exhibit.PowertrainStandard
		if g%2 == 1 {
			powertrain = exhibit.PowertrainElectric
		}
		go func(powertrain string) {
			defer wg.Done()
			for i := 0; i < perG; i++ {
				_, err := r.Build(powertrain, "Acme", "Widget", 2024)
				assert.NoError(t, err)
			}
		}(powertrain)
	}
	wg.Wait()

	assert.Equal(t, int64(goroutines*perG), r.Count())
	assert.Len(t, r.List(), goroutines*perG)
}

func TestRegistryGet(t *testing.T) {
	r := newTestRegistry()

	v, err := r.Build(exhibit.PowertrainElectric, "Nissan", "Leaf", 2023)
	require.NoError(t, err)

	got, err := r.Get(v.VehicleID)
	require.NoError(t, err)
	assert.Equal(t, v, got)

	_, err = r.Get("no-such-id")
	assert.ErrorIs(t, err, ErrVehicleNotFound)
}

func TestRegistryUniqueIDs(t *testing.T) {
	r := newTestRegistry()

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		v, err := r.Build(exhibit.PowertrainStandard, "Toyota", "Corolla", 2020)
		require.NoError(t, err)
		assert.False(t, seen[v.VehicleID], "IDs must be unique")
		seen[v.VehicleID] = true
	}
}

func TestRegistryFetch(t *testing.T) {
	r := newTestRegistry()

	_, err := r.Build(exhibit.PowertrainStandard, "Toyota", "Corolla", 2020)
	require.NoError(t, err)
	_, err = r.Build(exhibit.PowertrainStandard, "Toyota", "Hilux", 2021)
	require.NoError(t, err)
	_, err = r.Build(exhibit.PowertrainElectric, "Nissan", "Leaf", 2023)
	require.NoError(t, err)

	tests := []struct {
		name    string
		filter  map[string]any
		wantLen int
		wantErr error
	}{
		{name: "empty filter matches all", filter: map[string]any{}, wantLen: 3},
		{name: "nil filter matches all", filter: nil, wantLen: 3},
		{name: "by manufacturer", filter: map[string]any{"manufacturer": "Toyota"}, wantLen: 2},
		{name: "by powertrain", filter: map[string]any{"powertrain": exhibit.PowertrainElectric}, wantLen: 1},
		{name: "by year", filter: map[string]any{"year": 2021}, wantLen: 1},
		{
			name:    "combined filter",
			filter:  map[string]any{"manufacturer": "Toyota", "model": "Corolla"},
			wantLen: 1,
		},
		{name: "no match", filter: map[string]any{"manufacturer": "Honda"}, wantLen: 0},
		{name: "unknown key matches nothing", filter: map[string]any{"color": "red"}, wantLen: 0},
		{
			name:    "wrongly typed value rejected",
			filter:  map[string]any{"year": "2020"},
			wantErr: ErrInvalidFilter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := r.Fetch(tt.filter)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
				assert.Len(t, got, tt.wantLen)
			}
		})
	}
}

func TestRegistriesAreIndependent(t *testing.T) {
	a := newTestRegistry()
	b := newTestRegistry()

	_, err := a.Build(exhibit.PowertrainStandard, "Toyota", "Corolla", 2020)
	require.NoError(t, err)

	assert.Equal(t, int64(1), a.Count())
	assert.Equal(t, int64(0), b.Count(), "counters are per registry, not global")
}
