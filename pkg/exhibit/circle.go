package exhibit

import "math"

// Circle holds a positive radius and a lazily computed, cached area.
// Radius and diameter setters validate identically: the stored radius is
// always finite and strictly positive.
type Circle struct {
	radius float64

	// area caches the last computed area; areaValid is cleared whenever
	// the radius changes.
	area      float64
	areaValid bool
}

// NewCircle creates a Circle with the given radius.
// Returns ErrRadiusInvalid if radius is not finite and positive.
func NewCircle(radius float64) (*Circle, error) {
	if err := validateRadius(radius); err != nil {
		return nil, err
	}
	return &Circle{radius: radius}, nil
}

// Radius returns the radius.
func (c *Circle) Radius() float64 { return c.radius }

// SetRadius sets the radius and invalidates the cached area.
// Returns ErrRadiusInvalid if radius is not finite and positive.
func (c *Circle) SetRadius(radius float64) error {
	if err := validateRadius(radius); err != nil {
		return err
	}
	c.radius = radius
	c.areaValid = false
	return nil
}

// Diameter returns twice the radius.
func (c *Circle) Diameter() float64 { return 2 * c.radius }

// SetDiameter sets the radius to diameter/2 and invalidates the cached
// area. Returns ErrDiameterInvalid if diameter is not finite and
// positive, keeping the radius > 0 invariant.
func (c *Circle) SetDiameter(diameter float64) error {
	if math.IsNaN(diameter) || math.IsInf(diameter, 0) || diameter <= 0 {
		return ErrDiameterInvalid
	}
	c.radius = diameter / 2
	c.areaValid = false
	return nil
}

// Area returns pi*radius^2, computed on first access and cached until
// the next radius or diameter mutation.
func (c *Circle) Area() float64 {
	if !c.areaValid {
		c.area = math.Pi * c.radius * c.radius
		c.areaValid = true
	}
	return c.area
}

// validateRadius checks that radius is finite and strictly positive.
func validateRadius(radius float64) error {
	if math.IsNaN(radius) || math.IsInf(radius, 0) || radius <= 0 {
		return ErrRadiusInvalid
	}
	return nil
}
