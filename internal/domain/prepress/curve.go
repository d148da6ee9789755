package prepress

import (
	"strings"

	"github.com/flexo/backend/internal/domain/shared"
)

// CurvePoint maps a requested tone value to the value burned on the plate,
// both in percent.
type CurvePoint struct {
	Input  float64 `json:"input"`
	Output float64 `json:"output"`
}

// Curve is a dot-gain compensation curve
type Curve struct {
	shared.BaseAggregateRoot
	Name        string
	Description string
	Points      []CurvePoint
}

// NewCurve creates a curve
func NewCurve(name, description string, points []CurvePoint) (*Curve, error) {
	c := &Curve{BaseAggregateRoot: shared.NewBaseAggregateRoot()}
	if err := c.set(name, description, points); err != nil {
		return nil, err
	}
	return c, nil
}

// Update replaces name, description and points
func (c *Curve) Update(name, description string, points []CurvePoint) error {
	if err := c.set(name, description, points); err != nil {
		return err
	}
	c.Touch()
	c.IncrementVersion()
	return nil
}

// Apply returns the output tone for an input tone by linear interpolation
// between the surrounding points. Inputs outside the curve are clamped to
// the first or last point.
func (c *Curve) Apply(input float64) float64 {
	if len(c.Points) == 0 {
		return input
	}
	if input <= c.Points[0].Input {
		return c.Points[0].Output
	}
	last := c.Points[len(c.Points)-1]
	if input >= last.Input {
		return last.Output
	}
	for i := 1; i < len(c.Points); i++ {
		a, b := c.Points[i-1], c.Points[i]
		if input <= b.Input {
			t := (input - a.Input) / (b.Input - a.Input)
			return a.Output + t*(b.Output-a.Output)
		}
	}
	return last.Output
}

func (c *Curve) set(name, description string, points []CurvePoint) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Curve name cannot be empty")
	}
	if len(name) > 100 {
		return shared.NewDomainError("INVALID_NAME", "Curve name cannot exceed 100 characters")
	}
	if err := ValidateCurvePoints(points); err != nil {
		return err
	}
	c.Name = name
	c.Description = description
	c.Points = append([]CurvePoint(nil), points...)
	return nil
}

// ValidateCurvePoints requires at least two points in 0..100 with strictly
// increasing input
func ValidateCurvePoints(points []CurvePoint) error {
	if len(points) < 2 {
		return shared.NewDomainError("INVALID_CURVE", "A curve needs at least two points")
	}
	for i, p := range points {
		if p.Input < 0 || p.Input > 100 || p.Output < 0 || p.Output > 100 {
			return shared.NewDomainError("INVALID_CURVE", "Curve points must be between 0 and 100")
		}
		if i > 0 && p.Input <= points[i-1].Input {
			return shared.NewDomainError("INVALID_CURVE", "Curve inputs must be strictly increasing")
		}
	}
	return nil
}
