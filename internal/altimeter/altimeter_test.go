package altimeter

import (
	"math"
	"testing"
)

func TestCalibrator_MeanExact(t *testing.T) {
	c, err := NewCalibrator(3)
	if err != nil {
		t.Fatalf("NewCalibrator: %v", err)
	}
	for i, v := range []float64{100.0, 102.0, 101.0} {
		done := c.Add(v)
		if done != (i == 2) {
			t.Fatalf("Add(%v): done=%v at reading %d", v, done, i+1)
		}
	}
	g, err := c.Ground()
	if err != nil {
		t.Fatalf("Ground: %v", err)
	}
	if math.Abs(g.Level-101.0) > 1e-12 {
		t.Fatalf("level=%v want 101.0", g.Level)
	}
	if g.Samples != 3 {
		t.Fatalf("samples=%d want 3", g.Samples)
	}
}

func TestGround_Relative(t *testing.T) {
	g := Ground{Level: 101.0}
	rel := g.Relative(105.0)
	if math.Abs(rel-4.0) > 1e-12 {
		t.Fatalf("relative=%v want 4.0", rel)
	}
	if got := FormatRelative(rel); got != "4.00 m" {
		t.Fatalf("formatted=%q want \"4.00 m\"", got)
	}
	if got := FormatRelative(g.Relative(99.5)); got != "-1.50 m" {
		t.Fatalf("formatted=%q want \"-1.50 m\"", got)
	}
}

func TestCalibrator_VarianceAndStdDev(t *testing.T) {
	c, err := NewCalibrator(3)
	if err != nil {
		t.Fatalf("NewCalibrator: %v", err)
	}
	for _, v := range []float64{100.0, 102.0, 101.0} {
		c.Add(v)
	}
	g, err := c.Ground()
	if err != nil {
		t.Fatalf("Ground: %v", err)
	}
	// Sample variance of {100,102,101} around 101 is (1+1+0)/2 = 1.
	if math.Abs(g.Variance-1.0) > 1e-12 {
		t.Fatalf("variance=%v want 1.0", g.Variance)
	}
	if math.Abs(g.StdDev-1.0) > 1e-12 {
		t.Fatalf("stddev=%v want 1.0", g.StdDev)
	}
}

func TestCalibrator_SingleReading(t *testing.T) {
	c, err := NewCalibrator(1)
	if err != nil {
		t.Fatalf("NewCalibrator: %v", err)
	}
	if !c.Add(123.4) {
		t.Fatalf("expected done after one reading")
	}
	g, err := c.Ground()
	if err != nil {
		t.Fatalf("Ground: %v", err)
	}
	if g.Variance != 0 || g.StdDev != 0 {
		t.Fatalf("variance=%v stddev=%v want 0", g.Variance, g.StdDev)
	}
}

func TestCalibrator_IncompleteGroundFails(t *testing.T) {
	c, err := NewCalibrator(2)
	if err != nil {
		t.Fatalf("NewCalibrator: %v", err)
	}
	c.Add(100.0)
	if _, err := c.Ground(); err == nil {
		t.Fatalf("expected error before calibration completes")
	}
}

func TestCalibrator_ExtraReadingsIgnored(t *testing.T) {
	c, err := NewCalibrator(2)
	if err != nil {
		t.Fatalf("NewCalibrator: %v", err)
	}
	c.Add(100.0)
	c.Add(102.0)
	c.Add(999.0)
	g, err := c.Ground()
	if err != nil {
		t.Fatalf("Ground: %v", err)
	}
	if math.Abs(g.Level-101.0) > 1e-12 {
		t.Fatalf("level=%v want 101.0", g.Level)
	}
}

func TestNewCalibrator_RejectsNonPositive(t *testing.T) {
	for _, n := range []int{0, -5} {
		if _, err := NewCalibrator(n); err == nil {
			t.Fatalf("NewCalibrator(%d): expected error", n)
		}
	}
}
