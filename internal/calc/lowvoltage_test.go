package calc

import (
	"strings"
	"testing"
)

func TestDataCableLength(t *testing.T) {
	r := DataCableLength(10000, "Cat6", "indoor")

	if got := r.Output("Max Length"); got != "100m (328ft)" {
		t.Errorf("expected 100m (328ft), got %q", got)
	}
	if got := r.Output("Max Speed"); got != "10 Gbps" {
		t.Errorf("expected 10 Gbps, got %q", got)
	}
	if len(r.Warnings) != 1 || !strings.Contains(r.Warnings[0], "55 meters") {
		t.Errorf("expected the Cat6 55m warning at 10 Gbps, got %v", r.Warnings)
	}
}

func TestDataCableLengthOverSpeed(t *testing.T) {
	r := DataCableLength(5000, "Cat5e", "indoor")
	if len(r.Warnings) != 1 {
		t.Fatalf("expected over-speed warning, got %v", r.Warnings)
	}
	if len(r.Recommendations) != 1 || !strings.Contains(r.Recommendations[0], "Cat6a") {
		t.Errorf("Cat5e should suggest Cat6a, got %v", r.Recommendations)
	}
}

func TestDataCableLengthUnknownType(t *testing.T) {
	r := DataCableLength(1000, "Cat9", "indoor")
	if len(r.Outputs) != 0 || len(r.Warnings) != 1 {
		t.Errorf("unknown cable type should only warn, got %+v", r)
	}
}

func TestDataCableLengthPlenum(t *testing.T) {
	r := DataCableLength(1000, "Cat6a", "plenum")
	if len(r.Recommendations) != 1 || !strings.Contains(r.Recommendations[0], "CMP") {
		t.Errorf("expected plenum-rated recommendation, got %v", r.Recommendations)
	}
}

func TestPoEBudget(t *testing.T) {
	r := PoEBudget("PoE", 5, 20)

	if got := r.Output("Total Power"); got != "100.0W" {
		t.Errorf("expected 100.0W total, got %q", got)
	}
	if got := r.Output("Switch Budget"); got != "77.0W" {
		t.Errorf("expected 77.0W budget (5 x 15.4), got %q", got)
	}
	if got := r.Output("Ports Needed"); got != "5" {
		t.Errorf("expected 5 ports, got %q", got)
	}
	if len(r.Warnings) != 1 || r.Warnings[0] != "⚠️ Device requires 20W but PoE only provides 12.95W!" {
		t.Errorf("unexpected warnings %v", r.Warnings)
	}
	if len(r.Recommendations) != 1 || r.Recommendations[0] != "Use PoE+ standard for higher power devices" {
		t.Errorf("unexpected recommendations %v", r.Recommendations)
	}
}

func TestPoEBudgetExceedsSwitch(t *testing.T) {
	r := PoEBudget("PoE++", 10, 40)
	if got := r.Output("Total Power"); got != "400.0W" {
		t.Errorf("expected 400.0W, got %q", got)
	}
	found := false
	for _, w := range r.Warnings {
		if strings.Contains(w, "switch budget") {
			found = true
		}
	}
	if !found {
		t.Errorf("expected switch budget warning, got %v", r.Warnings)
	}
}

func TestPoEBudgetUnknownStandard(t *testing.T) {
	r := PoEBudget("PoE4", 1, 10)
	if len(r.Outputs) != 0 || len(r.Warnings) != 1 {
		t.Errorf("unknown standard should only warn, got %+v", r)
	}
}

func TestLowVoltagePower(t *testing.T) {
	r := LowVoltagePower(24, 48, 100, "18")

	if got := r.Output("Current"); got != "2.00A" {
		t.Errorf("expected 2.00A, got %q", got)
	}
	// 6.385 Ω/1000ft round trip over 100ft at 2A.
	if got := r.Output("Voltage Drop"); got != "2.55V" {
		t.Errorf("expected 2.55V, got %q", got)
	}
	if got := r.Output("Voltage Drop Percent"); got != "10.6%" {
		t.Errorf("expected 10.6%%, got %q", got)
	}
	if got := r.Output("Voltage At Load"); got != "21.45V" {
		t.Errorf("expected 21.45V, got %q", got)
	}
	if got := r.Output("Recommended PSU"); got != "60W power supply" {
		t.Errorf("expected 60W power supply, got %q", got)
	}
	// Over the 3% limit and below 90% of supply.
	if len(r.Warnings) != 2 {
		t.Errorf("expected both warnings, got %v", r.Warnings)
	}
}

func TestLowVoltagePowerUnknownGauge(t *testing.T) {
	known := LowVoltagePower(12, 12, 50, "16")
	unknown := LowVoltagePower(12, 12, 50, "99")
	if known.Output("Voltage Drop") != unknown.Output("Voltage Drop") {
		t.Error("unknown gauge should fall back to the 16 AWG value")
	}
}

func TestHVACWiringThermostat(t *testing.T) {
	r := HVACWiring(6, 100, 24, "thermostat")
	if got := r.Output("Recommended Cable"); got != "6C 20 AWG Thermostat Cable" {
		t.Errorf("6 wires should use 20 AWG, got %q", got)
	}
	if got := r.Output("Typical Amps"); got != "< 2A" {
		t.Errorf("expected < 2A at 24V, got %q", got)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", r.Warnings)
	}

	r = HVACWiring(4, 100, 24, "thermostat")
	if got := r.Output("Recommended Cable"); got != "4C 18 AWG Thermostat Cable" {
		t.Errorf("5 wires or fewer should use 18 AWG, got %q", got)
	}
	if len(r.Warnings) != 1 || !strings.Contains(r.Warnings[0], "C wire") {
		t.Errorf("expected the smart thermostat warning under 5 wires, got %v", r.Warnings)
	}
}

func TestHVACWiringLongRun(t *testing.T) {
	r := HVACWiring(6, 300, 24, "zone-damper")
	if len(r.Warnings) != 1 {
		t.Errorf("expected long run warning over 250ft, got %v", r.Warnings)
	}
}

func TestHVACWiringLineVoltage(t *testing.T) {
	r := HVACWiring(3, 50, 120, "actuator")
	if got := r.Output("Recommended Cable"); got != "14/3 NM-B or MC cable" {
		t.Errorf("expected 14/3 NM-B, got %q", got)
	}
	if got := r.Output("Typical Amps"); got != "Varies by load" {
		t.Errorf("expected varies by load, got %q", got)
	}
}

func TestPLCIO(t *testing.T) {
	r := PLCIO(10, 10, 4, 4, 20)

	if got := r.Output("Total I/O"); got != "28" {
		t.Errorf("expected 28 points, got %q", got)
	}
	if got := r.Output("With Expansion"); got != "34" {
		t.Errorf("expected 34 with 20%% headroom, got %q", got)
	}
	if got := r.Output("Recommended PLC"); got != "Compact PLC (32-128 I/O)" {
		t.Errorf("unexpected PLC class %q", got)
	}
	// Digital points run 2 wires, analog 3.
	if got := r.Output("Estimated Wiring"); !strings.HasPrefix(got, "Approx. 64 wires") {
		t.Errorf("expected 64 wires, got %q", got)
	}
	if got := r.Output("Power Requirement"); got != "118W (148W recommended PSU)" {
		t.Errorf("unexpected power figure %q", got)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("expected no warnings at 20%% expansion, got %v", r.Warnings)
	}
}

func TestPLCIOLowExpansionWarns(t *testing.T) {
	r := PLCIO(8, 8, 0, 0, 10)
	if len(r.Warnings) != 1 {
		t.Errorf("expected expansion warning below 20%%, got %v", r.Warnings)
	}
	if got := r.Output("Recommended PLC"); got != "Micro PLC (32 I/O or less)" {
		t.Errorf("18 points should fit a micro PLC, got %q", got)
	}
}

func TestSecurityWiringPoECamera(t *testing.T) {
	r := SecurityWiring("camera", 4, 150, "PoE")

	if got := r.Output("Recommended Cable"); got != "Cat6 or Cat6a (PoE+)" {
		t.Errorf("unexpected cable %q", got)
	}
	// 4 devices x 150ft with 10% slack.
	if got := r.Output("Estimated Length"); got != "660 feet" {
		t.Errorf("expected 660 feet, got %q", got)
	}
	if got := r.Output("Spools Needed"); got != "1 x 1000ft spools" {
		t.Errorf("expected one spool, got %q", got)
	}
	if len(r.Warnings) != 0 {
		t.Errorf("expected no warnings, got %v", r.Warnings)
	}
}

func TestSecurityWiringAnalogLongRun(t *testing.T) {
	r := SecurityWiring("camera", 6, 350, "12V")
	if got := r.Output("Recommended Cable"); got != "Siamese cable (RG59 + 18/2 power)" {
		t.Errorf("unexpected cable %q", got)
	}
	if len(r.Warnings) != 1 {
		t.Errorf("expected voltage drop warning over 300ft non-PoE, got %v", r.Warnings)
	}
	// 6 x 350 x 1.1 = 2310ft.
	if got := r.Output("Spools Needed"); got != "3 x 1000ft spools" {
		t.Errorf("expected three spools, got %q", got)
	}
}

func TestSecurityWiringUnknownSystem(t *testing.T) {
	r := SecurityWiring("turret", 1, 100, "PoE")
	if len(r.Outputs) != 0 || len(r.Warnings) != 1 {
		t.Errorf("unknown system should only warn, got %+v", r)
	}
}
