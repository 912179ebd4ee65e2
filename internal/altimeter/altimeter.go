// Package altimeter turns a stream of absolute altitude readings into
// ground-referenced relative altitudes.
//
// The ground reference is the arithmetic mean of the first N readings and is
// immutable once established.
package altimeter

import (
	"fmt"
	"math"
)

// Ground is the calibrated ground reference, with the spread of the samples
// that produced it.
type Ground struct {
	Level    float64
	Variance float64 // sample variance, m^2
	StdDev   float64 // sample standard deviation, m
	Samples  int
}

// Relative returns the altitude of v above the ground reference.
func (g Ground) Relative(v float64) float64 {
	return v - g.Level
}

// Calibrator accumulates the initial readings for the ground reference.
type Calibrator struct {
	need     int
	readings []float64
}

// NewCalibrator returns a calibrator that needs n readings; n must be > 0.
func NewCalibrator(n int) (*Calibrator, error) {
	if n <= 0 {
		return nil, fmt.Errorf("altimeter: base reading count must be > 0, got %d", n)
	}
	return &Calibrator{need: n, readings: make([]float64, 0, n)}, nil
}

// Add records one reading and reports whether calibration is complete.
// Readings past the required count are ignored.
func (c *Calibrator) Add(v float64) (done bool) {
	if len(c.readings) < c.need {
		c.readings = append(c.readings, v)
	}
	return len(c.readings) == c.need
}

// Count returns how many readings have been recorded so far.
func (c *Calibrator) Count() int {
	return len(c.readings)
}

// Need returns the required reading count.
func (c *Calibrator) Need() int {
	return c.need
}

// Ground computes the ground reference from the recorded readings. It is an
// error to call it before Add has reported completion.
func (c *Calibrator) Ground() (Ground, error) {
	n := len(c.readings)
	if n < c.need {
		return Ground{}, fmt.Errorf("altimeter: calibration incomplete, %d/%d readings", n, c.need)
	}

	sum := 0.0
	for _, v := range c.readings {
		sum += v
	}
	mean := sum / float64(n)

	// Sample variance; a single reading has no spread.
	variance := 0.0
	if n > 1 {
		for _, v := range c.readings {
			d := v - mean
			variance += d * d
		}
		variance /= float64(n - 1)
	}

	return Ground{
		Level:    mean,
		Variance: variance,
		StdDev:   math.Sqrt(variance),
		Samples:  n,
	}, nil
}

// FormatRelative renders a relative altitude the way the console output
// shows it: fixed two decimals, meters.
func FormatRelative(v float64) string {
	return fmt.Sprintf("%.2f m", v)
}
