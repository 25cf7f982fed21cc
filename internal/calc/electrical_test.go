package calc

import (
	"math"
	"strings"
	"testing"
)

func f(v float64) *float64 { return &v }

func TestOhmsLawVoltageAndCurrent(t *testing.T) {
	r := OhmsLaw(f(120), f(10), nil, nil)

	if got := r.Output("Resistance"); got != "12" {
		t.Errorf("expected resistance 12, got %q", got)
	}
	if got := r.Output("Power"); got != "1200" {
		t.Errorf("expected power 1200, got %q", got)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", r.Warnings)
	}
}

func TestOhmsLawPairPriority(t *testing.T) {
	// All four supplied: the voltage+current pair wins, so the outputs
	// are resistance and power.
	r := OhmsLaw(f(120), f(10), f(99), f(99))
	if r.Output("Resistance") != "12" || r.Output("Power") != "1200" {
		t.Errorf("voltage+current pair should win, got %+v", r.Outputs)
	}
	if r.Output("Voltage") != "" || r.Output("Current") != "" {
		t.Errorf("unexpected outputs: %+v", r.Outputs)
	}
}

func TestOhmsLawPowerAndResistance(t *testing.T) {
	r := OhmsLaw(nil, nil, f(4), f(100))
	if got := r.Output("Voltage"); got != "20" {
		t.Errorf("expected voltage 20, got %q", got)
	}
	if got := r.Output("Current"); got != "5" {
		t.Errorf("expected current 5, got %q", got)
	}
}

func TestOhmsLawHighCurrentWarning(t *testing.T) {
	r := OhmsLaw(f(10), f(25), nil, nil)
	if len(r.Warnings) != 1 || !strings.Contains(r.Warnings[0], "High current") {
		t.Errorf("expected high current warning, got %v", r.Warnings)
	}
}

func TestOhmsLawRequiresTwoValues(t *testing.T) {
	r := OhmsLaw(f(120), nil, nil, nil)
	if len(r.Outputs) != 0 {
		t.Errorf("single input should compute nothing, got %+v", r.Outputs)
	}
	if len(r.Warnings) != 1 {
		t.Errorf("expected one warning, got %v", r.Warnings)
	}
}

func TestOhmsLawRejectsBadInput(t *testing.T) {
	r := OhmsLaw(f(math.NaN()), f(10), nil, nil)
	if len(r.Outputs) != 0 || len(r.Warnings) != 1 {
		t.Errorf("NaN input should be rejected, got %+v", r)
	}
	r = OhmsLaw(f(-120), f(10), nil, nil)
	if len(r.Outputs) != 0 || len(r.Warnings) != 1 {
		t.Errorf("negative input should be rejected, got %+v", r)
	}
}

func TestWireSize(t *testing.T) {
	r := WireSize(20, 100, 120, 75)

	if got := r.Output("Recommended Size"); got != "12" {
		t.Errorf("expected 12 AWG (25A >= 20*1.25), got %q", got)
	}
	if got := r.Output("Min Ampacity"); got != "25.0" {
		t.Errorf("expected min ampacity 25.0, got %q", got)
	}
	// 2 * 12.9 * 20 * 100 / 1000 = 51.6V over a 120V circuit.
	if got := r.Output("Voltage Drop"); got != "51.60" {
		t.Errorf("expected voltage drop 51.60, got %q", got)
	}
	if got := r.Output("Voltage Drop Percent"); got != "43.00%" {
		t.Errorf("expected 43.00%%, got %q", got)
	}
	if len(r.Warnings) != 1 || !strings.Contains(r.Warnings[0], "3%") {
		t.Errorf("expected voltage drop warning, got %v", r.Warnings)
	}
}

func TestWireSizeTemperatureRatings(t *testing.T) {
	// 16A needs 20A ampacity: 14 AWG carries 20 at 75°C but only 15 at 60°C.
	if got := WireSize(16, 10, 120, 75).Output("Recommended Size"); got != "14" {
		t.Errorf("expected 14 at 75°C, got %q", got)
	}
	if got := WireSize(16, 10, 120, 60).Output("Recommended Size"); got != "12" {
		t.Errorf("expected 12 at 60°C, got %q", got)
	}
}

func TestWireSizeOverTableReturnsLargest(t *testing.T) {
	r := WireSize(300, 10, 240, 75)
	if got := r.Output("Recommended Size"); got != "4/0" {
		t.Errorf("loads beyond the table should return the largest gauge, got %q", got)
	}
}

func TestVoltageDrop(t *testing.T) {
	r := VoltageDrop("12", 20, 100, 120, "copper")

	// 2 * 1.98 * 20 * 100 / 1000 = 7.92V, 6.6% of 120V.
	if got := r.Output("Voltage Drop"); got != "7.92V" {
		t.Errorf("expected 7.92V, got %q", got)
	}
	if got := r.Output("Voltage Drop Percent"); got != "6.60%" {
		t.Errorf("expected 6.60%%, got %q", got)
	}
	if got := r.Output("Voltage At Load"); got != "112.08V" {
		t.Errorf("expected 112.08V, got %q", got)
	}
	if got := r.Output("Wire Resistance"); got != "1.9800 Ω/1000ft" {
		t.Errorf("unexpected resistance %q", got)
	}
	// Over both the 3% and 5% limits.
	if len(r.Warnings) != 2 {
		t.Errorf("expected both limit warnings, got %v", r.Warnings)
	}
}

func TestVoltageDropUnknownGaugeFallsBack(t *testing.T) {
	known := VoltageDrop("12", 10, 50, 120, "copper")
	unknown := VoltageDrop("99", 10, 50, 120, "copper")
	if known.Output("Voltage Drop") != unknown.Output("Voltage Drop") {
		t.Error("unknown gauge should fall back to the 12 AWG copper value")
	}
}

func TestVoltageDropAluminum(t *testing.T) {
	r := VoltageDrop("12", 10, 50, 120, "aluminum")
	if got := r.Output("Wire Resistance"); got != "3.2500 Ω/1000ft" {
		t.Errorf("expected aluminum resistance, got %q", got)
	}
}

func TestBreakerSize(t *testing.T) {
	r := BreakerSize(16, false, false)

	if got := r.Output("Breaker Size"); got != "20A" {
		t.Errorf("expected 20A breaker, got %q", got)
	}
	if got := r.Output("Required Ampacity"); got != "16.0A" {
		t.Errorf("expected 16.0A, got %q", got)
	}
	if got := r.Output("Recommended Wire"); got != "12 AWG" {
		t.Errorf("expected 12 AWG, got %q", got)
	}
	if len(r.Warnings) != 0 || len(r.Recommendations) != 0 {
		t.Errorf("expected clean result, got %+v", r)
	}
}

func TestBreakerSizeContinuousLoad(t *testing.T) {
	r := BreakerSize(16, true, false)
	if got := r.Output("Required Ampacity"); got != "20.0A" {
		t.Errorf("continuous load should take the 125%% factor, got %q", got)
	}
	if got := r.Output("Breaker Size"); got != "20A" {
		t.Errorf("expected 20A breaker, got %q", got)
	}
	if len(r.Recommendations) != 1 {
		t.Errorf("expected the continuous-load note, got %v", r.Recommendations)
	}
}

func TestBreakerSizeMotorLoadNotStacked(t *testing.T) {
	// Both flags apply the same multiplier, not 1.25 twice.
	r := BreakerSize(16, true, true)
	if got := r.Output("Required Ampacity"); got != "20.0A" {
		t.Errorf("factors must not stack, got %q", got)
	}
}

func TestBreakerSizeLargeLoad(t *testing.T) {
	r := BreakerSize(180, false, false)
	if got := r.Output("Breaker Size"); got != "200A" {
		t.Errorf("expected 200A, got %q", got)
	}
	if len(r.Warnings) != 1 {
		t.Errorf("expected panel capacity warning, got %v", r.Warnings)
	}
}

func TestBoxFill(t *testing.T) {
	r := BoxFill([]Conductor{{Size: "12", Count: 6}}, 2, 0, 1)

	// 6*2.25 + 2 devices * 2*2.25 + grounds 2.25 = 24.75 cu.in.
	if got := r.Output("Required Volume"); got != "24.8 cu.in." {
		t.Errorf("expected 24.8 cu.in., got %q", got)
	}
	if got := r.Output("Recommended Box"); got != `Double Gang (3" x 2" x 2-1/2")` {
		t.Errorf("expected the smallest box >= 24.75, got %q", got)
	}
	if got := r.Output("Box Volume"); got != "25.0 cu.in." {
		t.Errorf("expected 25.0 cu.in., got %q", got)
	}
	if got := r.Output("Fill Percentage"); got != "99.0%" {
		t.Errorf("expected 99.0%%, got %q", got)
	}
}

func TestBoxFillDevicesUseLargestConductor(t *testing.T) {
	// Largest present is 10 AWG (2.5): 2*2.0 + 1*2.5 + device 2*2.5 = 11.5.
	r := BoxFill([]Conductor{{Size: "14", Count: 2}, {Size: "10", Count: 1}}, 1, 0, 0)
	if got := r.Output("Required Volume"); got != "11.5 cu.in." {
		t.Errorf("expected 11.5 cu.in., got %q", got)
	}
}

func TestBoxFillOverflowReturnsLargestBox(t *testing.T) {
	r := BoxFill([]Conductor{{Size: "6", Count: 10}}, 0, 0, 0)

	if got := r.Output("Recommended Box"); got != `4-11/16" Square (2-1/8" deep)` {
		t.Errorf("expected the largest box, got %q", got)
	}
	// 50 cu.in. into a 42 cu.in. box overfills.
	if got := r.Output("Fill Percentage"); got != "119.0%" {
		t.Errorf("expected fill over 100%%, got %q", got)
	}
	if len(r.Warnings) != 1 {
		t.Errorf("expected large volume warning, got %v", r.Warnings)
	}
}

func TestConduitFill(t *testing.T) {
	r := ConduitFill("12", 3, "EMT")
	if got := r.Output("Max Fill Percentage"); got != "40%" {
		t.Errorf("expected 40%% for 3 conductors, got %q", got)
	}
	if got := r.Output("Recommended Size"); got != `3/4"` {
		t.Errorf("expected 3/4 inch, got %q", got)
	}

	if got := ConduitFill("12", 1, "EMT").Output("Max Fill Percentage"); got != "53%" {
		t.Errorf("expected 53%% for 1 conductor, got %q", got)
	}
	if got := ConduitFill("12", 2, "EMT").Output("Max Fill Percentage"); got != "31%" {
		t.Errorf("expected 31%% for 2 conductors, got %q", got)
	}
}

func TestConduitFillClampsSizeIndex(t *testing.T) {
	r := ConduitFill("12", 12, "EMT")
	if got := r.Output("Recommended Size"); got != `1-1/4"` {
		t.Errorf("index should clamp to the largest option, got %q", got)
	}
	if len(r.Warnings) != 1 {
		t.Errorf("expected derating warning above 9 conductors, got %v", r.Warnings)
	}
}
