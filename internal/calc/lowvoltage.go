package calc

import (
	"fmt"
	"math"
	"strconv"
)

// Maximum run lengths in meters and supported data rates in Mbps per
// cable class. Fiber figures assume single-mode.
var cableMaxLengths = map[string]int{
	"Cat5e": 100,
	"Cat6":  100,
	"Cat6a": 100,
	"Cat7":  100,
	"Fiber": 10000,
}

var cableSpeedLimits = map[string]int{
	"Cat5e": 1000,
	"Cat6":  10000,
	"Cat6a": 10000,
	"Cat7":  10000,
	"Fiber": 100000,
}

var cableUses = map[string]string{
	"Cat5e": "Gigabit Ethernet, VoIP, basic networking",
	"Cat6":  "10 Gigabit short runs, general networking",
	"Cat6a": "10 Gigabit full distance, PoE++",
	"Cat7":  "Shielded 10G applications, high EMI areas",
	"Fiber": "Long distance, high speed, immune to EMI",
}

// DataCableLength reports the run limits of a data cable class for the
// requested data rate (Mbps) and environment (indoor, outdoor, plenum).
func DataCableLength(dataRate float64, cableType, environment string) Result {
	var r Result
	if !validInputs(dataRate) {
		r.warn(invalidInputWarning)
		return r
	}
	maxLength, ok := cableMaxLengths[cableType]
	if !ok {
		r.warn(fmt.Sprintf("⚠️ Unknown cable type: %s", cableType))
		return r
	}
	maxSpeed := cableSpeedLimits[cableType]

	if dataRate > float64(maxSpeed) {
		r.warn(fmt.Sprintf("⚠️ %s may not support %s Mbps reliably!", cableType, num(dataRate)))
		upgrade := "Fiber"
		if cableType == "Cat5e" {
			upgrade = "Cat6a"
		}
		r.recommend(fmt.Sprintf("Consider upgrading to %s for higher speeds", upgrade))
	}
	if cableType == "Cat6" && dataRate >= 10000 {
		r.warn("⚠️ Cat6 supports 10 Gbps only up to 55 meters!")
		r.recommend("Use Cat6a for full 100m runs at 10 Gbps")
	}
	if environment == "plenum" {
		r.recommend("Use plenum-rated cable (CMP) for air handling spaces")
	}
	if environment == "outdoor" {
		r.recommend("Use outdoor-rated cable with UV protection and moisture barrier")
	}

	speed := fmt.Sprintf("%d Mbps", maxSpeed)
	if maxSpeed >= 1000 {
		speed = fmt.Sprintf("%d Gbps", maxSpeed/1000)
	}
	r.add("Max Length", fmt.Sprintf("%dm (%.0fft)", maxLength, float64(maxLength)*3.28084))
	r.add("Max Speed", speed)
	r.add("Recommended Use", cableUses[cableType])
	return r
}

// IEEE PoE class limits: source watts per port, delivered watts at the
// device, nominal voltage.
var poeStandards = map[string]struct {
	maxPerPort   float64
	maxPerDevice float64
	voltage      int
}{
	"PoE":   {15.4, 12.95, 48},
	"PoE+":  {30, 25.5, 48},
	"PoE++": {60, 51, 48},
}

// PoEBudget totals power demand for deviceCount powered devices at
// devicePower watts each under the given PoE standard.
func PoEBudget(standard string, deviceCount int, devicePower float64) Result {
	var r Result
	if deviceCount < 0 || !validInputs(devicePower) {
		r.warn(invalidInputWarning)
		return r
	}
	spec, ok := poeStandards[standard]
	if !ok {
		r.warn(fmt.Sprintf("⚠️ Unknown PoE standard: %s", standard))
		return r
	}

	totalPower := devicePower * float64(deviceCount)
	switchBudget := spec.maxPerPort * float64(deviceCount)

	if devicePower > spec.maxPerDevice {
		r.warn(fmt.Sprintf("⚠️ Device requires %sW but %s only provides %sW!",
			num(devicePower), standard, num(spec.maxPerDevice)))
		next := "PoE++"
		if standard == "PoE" {
			next = "PoE+"
		}
		r.recommend(fmt.Sprintf("Use %s standard for higher power devices", next))
	}
	if totalPower > 370 { // Typical switch limit
		r.warn("⚠️ Total power exceeds typical switch budget!")
		r.recommend("Consider multiple switches or external PoE injectors")
	}
	if standard == "PoE++" {
		r.recommend("Requires Cat6a or better cabling for optimal performance")
	}

	r.add("Total Power", fixed(totalPower, 1)+"W")
	r.add("Switch Budget", fixed(switchBudget, 1)+"W")
	r.add("Ports Needed", strconv.Itoa(deviceCount))
	r.add("Voltage", fmt.Sprintf("%dV DC", spec.voltage))
	r.add("Per Device Max", num(spec.maxPerDevice)+"W")
	return r
}

// DC wire resistance in ohms per 1000 feet by gauge.
var dcWireResistances = map[string]float64{
	"18": 6.385,
	"16": 4.016,
	"14": 2.525,
	"12": 1.588,
	"10": 0.999,
}

// LowVoltagePower sizes a 12V or 24V DC supply run: load current,
// round-trip voltage drop over cableLength feet of wireGauge, and a
// supply recommendation with 25% overhead.
func LowVoltagePower(voltage int, totalLoad, cableLength float64, wireGauge string) Result {
	var r Result
	if voltage <= 0 || !validInputs(totalLoad, cableLength) {
		r.warn(invalidInputWarning)
		return r
	}

	current := totalLoad / float64(voltage)
	perThousand, ok := dcWireResistances[wireGauge]
	if !ok {
		perThousand = 4.016
	}
	resistance := perThousand * (cableLength / 1000) * 2 // round trip
	voltageDrop := current * resistance
	voltageAtLoad := float64(voltage) - voltageDrop
	voltageDropPercent := voltageDrop / float64(voltage) * 100

	if voltageDropPercent > 3 {
		r.warn("⚠️ Voltage drop exceeds 3% - devices may not function properly!")
		r.recommend("Use larger wire gauge or reduce cable length")
	}
	if voltageAtLoad < float64(voltage)*0.9 {
		r.warn("🚫 Voltage at load below 90% of supply!")
		r.recommend("Critical: Increase wire size or add local power supply")
	}

	recommendedPSU := int(math.Ceil(totalLoad * 1.25))

	r.add("Current", fixed(current, 2)+"A")
	r.add("Voltage Drop", fixed(voltageDrop, 2)+"V")
	r.add("Voltage Drop Percent", fixed(voltageDropPercent, 1)+"%")
	r.add("Voltage At Load", fixed(voltageAtLoad, 2)+"V")
	r.add("Recommended PSU", fmt.Sprintf("%dW power supply", recommendedPSU))
	return r
}

// HVACWiring recommends control cabling for thermostat, zone-damper,
// actuator, and sensor runs at 24, 120, or 240 volts.
func HVACWiring(wireCount int, maxDistance float64, voltage int, application string) Result {
	var r Result
	if wireCount < 1 || !validInputs(maxDistance) {
		r.warn(invalidInputWarning)
		return r
	}

	var recommendedCable string
	if voltage == 24 {
		if wireCount <= 8 {
			gauge := "20"
			if wireCount <= 5 {
				gauge = "18"
			}
			recommendedCable = fmt.Sprintf("%dC %s AWG Thermostat Cable", wireCount, gauge)
		} else {
			recommendedCable = "Multi-conductor cable with appropriate gauge"
		}
		if maxDistance > 250 {
			r.warn("⚠️ Long runs may require larger gauge for 24V systems")
			r.recommend("Consider 18 AWG or 16 AWG for distances over 250 feet")
		}
	} else {
		if wireCount == 2 {
			recommendedCable = "14/2 NM-B or MC cable"
		} else {
			recommendedCable = fmt.Sprintf("14/%d NM-B or MC cable", wireCount)
		}
		r.recommend("Follow NEC requirements for line voltage wiring")
	}

	if application == "thermostat" {
		r.recommend("Common wires: R (24V), C (common), W (heat), Y (cool), G (fan)")
		if wireCount < 5 {
			r.warn("⚠️ Modern smart thermostats typically need 5+ wires including C wire")
		}
	}
	if application == "zone-damper" {
		r.recommend("Verify damper voltage requirements (24V AC typical)")
	}

	typicalAmps := "Varies by load"
	if voltage == 24 {
		typicalAmps = "< 2A"
	}
	r.add("Recommended Cable", recommendedCable)
	r.add("Voltage", fmt.Sprintf("%dV", voltage))
	r.add("Wire Count", strconv.Itoa(wireCount))
	r.add("Typical Amps", typicalAmps)
	return r
}

// PLCIO sizes a PLC by total I/O point count with expansion headroom.
// Class breakpoints sit at 32, 128, and 512 points.
func PLCIO(digitalInputs, digitalOutputs, analogInputs, analogOutputs, expansion int) Result {
	var r Result
	if digitalInputs < 0 || digitalOutputs < 0 || analogInputs < 0 || analogOutputs < 0 {
		r.warn(invalidInputWarning)
		return r
	}

	totalIO := digitalInputs + digitalOutputs + analogInputs + analogOutputs
	withExpansion := int(math.Ceil(float64(totalIO) * (1 + float64(expansion)/100)))

	var plcSize string
	switch {
	case withExpansion <= 32:
		plcSize = "Micro PLC (32 I/O or less)"
	case withExpansion <= 128:
		plcSize = "Compact PLC (32-128 I/O)"
	case withExpansion <= 512:
		plcSize = "Modular PLC (128-512 I/O)"
	default:
		plcSize = "Large Modular PLC (512+ I/O)"
	}

	if analogInputs > 0 || analogOutputs > 0 {
		r.recommend("Consider specialized analog I/O modules for better resolution")
	}
	if totalIO > 64 {
		r.recommend("Plan for distributed I/O for easier wiring and troubleshooting")
	}
	if expansion < 20 {
		r.warn("⚠️ Recommend at least 20% expansion capacity for future growth")
	}

	totalWires := digitalInputs*2 + digitalOutputs*2 + analogInputs*3 + analogOutputs*3
	power := 50 + withExpansion*2 // 50W CPU base plus 2W per I/O point

	r.add("Total I/O", strconv.Itoa(totalIO))
	r.add("With Expansion", strconv.Itoa(withExpansion))
	r.add("Recommended PLC", plcSize)
	r.add("Estimated Wiring", fmt.Sprintf("Approx. %d wires (includes commons and shields)", totalWires))
	r.add("Power Requirement", fmt.Sprintf("%dW (%.0fW recommended PSU)", power, float64(power)*1.25))
	return r
}

// SecurityWiring recommends cabling for camera, access-control, alarm,
// and intercom systems, with a spool estimate at 10% slack.
func SecurityWiring(system string, deviceCount int, avgDistance float64, powerMethod string) Result {
	var r Result
	if deviceCount < 0 || !validInputs(avgDistance) {
		r.warn(invalidInputWarning)
		return r
	}

	estimatedLength := float64(deviceCount) * avgDistance * 1.1

	var cableType string
	switch system {
	case "camera":
		if powerMethod == "PoE" {
			cableType = "Cat6 or Cat6a (PoE+)"
			r.recommend("Use Cat6a for 4K cameras or long runs")
			r.recommend("Verify switch PoE budget for all cameras")
		} else {
			cableType = "Siamese cable (RG59 + 18/2 power)"
			r.recommend("Use separate power supply near camera locations")
		}
	case "access-control":
		cableType = "22/6 or 22/8 stranded, shielded"
		r.recommend("Use shielded cable near EMI sources")
		r.recommend("Include extra conductors for REX, door contacts")
	case "alarm":
		cableType = "22/4 or 22/6 for sensors, 18/2 for sirens"
		r.recommend("Use different colors for different zones")
		r.recommend("Follow NFPA 72 for fire alarm systems")
	case "intercom":
		cableType = "Cat6 for IP intercom, 22/2 shielded for analog"
		r.recommend("Consider IP-based systems for better quality")
	default:
		r.warn(fmt.Sprintf("⚠️ Unknown system type: %s", system))
		return r
	}

	if avgDistance > 300 && powerMethod != "PoE" {
		r.warn("⚠️ Long runs may require voltage drop compensation")
	}
	if estimatedLength > 1000 {
		r.recommend("Consider ordering cable in 1000ft spools")
	}

	r.add("Recommended Cable", cableType)
	r.add("Estimated Length", fixed(estimatedLength, 0)+" feet")
	r.add("Spools Needed", fmt.Sprintf("%d x 1000ft spools", int(math.Ceil(estimatedLength/1000))))
	r.add("Avg Per Device", num(avgDistance)+" feet")
	return r
}
