package exhibit

import "strings"

// Powertrain tags. The set is closed: a vehicle is either standard or
// electric, and each tag carries its own classification table.
const (
	PowertrainStandard = "standard"
	PowertrainElectric = "electric"
)

// validPowertrains is the set of recognized powertrain tags.
var validPowertrains = map[string]bool{
	PowertrainStandard: true,
	PowertrainElectric: true,
}

// classifications maps each powertrain tag to its vehicle-type table.
// Both tables cover exactly the same keys; only the descriptions differ.
var classifications = map[string]map[string]string{
	PowertrainStandard: {
		"car":        "This is a car",
		"truck":      "This is a truck",
		"motorcycle": "This is a motorcycle",
	},
	PowertrainElectric: {
		"car":        "This is an electric car",
		"truck":      "This is an electric truck",
		"motorcycle": "This is an electric motorcycle",
	},
}

// Vehicle identifies a manufactured vehicle. Instances are constructed
// through fleet.Registry, which assigns the VehicleID and maintains the
// shared construction counter.
type Vehicle struct {
	VehicleID    string // UUID v7, assigned by the registry.
	Manufacturer string
	Model        string
	Year         int
	Powertrain   string // One of the Powertrain constants.
}

// IsValidPowertrain reports whether the given tag is recognized.
func IsValidPowertrain(powertrain string) bool {
	return validPowertrains[powertrain]
}

// Classify returns the description for vehicleType under the given
// powertrain's table. The lookup is case-insensitive over exactly
// {"car", "truck", "motorcycle"}.
// Returns ErrPowertrainUnknown for an unrecognized tag and
// ErrVehicleTypeUnknown for any other vehicle type.
func Classify(powertrain, vehicleType string) (string, error) {
	table, ok := classifications[powertrain]
	if !ok {
		return "", ErrPowertrainUnknown
	}
	desc, ok := table[strings.ToLower(vehicleType)]
	if !ok {
		return "", ErrVehicleTypeUnknown
	}
	return desc, nil
}

// Classify returns the description for vehicleType under this vehicle's
// powertrain table.
func (v *Vehicle) Classify(vehicleType string) (string, error) {
	return Classify(v.Powertrain, vehicleType)
}
