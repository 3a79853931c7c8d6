package exhibit

import "math"

// ValidatedNumber holds an optional, strictly positive number. The zero
// value is unset.
type ValidatedNumber struct {
	value float64
	set   bool
}

// Value returns the held number. The second return is false while no
// value has been accepted.
func (n *ValidatedNumber) Value() (float64, bool) {
	if !n.set {
		return 0, false
	}
	return n.value, true
}

// Set stores value after validation. A rejected value leaves the holder
// unchanged: a never-set holder stays unset.
// Returns ErrValueInvalid if value is NaN, infinite, or not strictly
// positive.
func (n *ValidatedNumber) Set(value float64) error {
	if math.IsNaN(value) || math.IsInf(value, 0) || value <= 0 {
		return ErrValueInvalid
	}
	n.value = value
	n.set = true
	return nil
}
