package calc

import (
	"math"
	"strconv"
	"strings"
)

// OhmsLaw derives the missing electrical quantities from any two of
// voltage (V), current (A), resistance (Ω), and power (W). Nil means
// the value was not supplied. When more than two are supplied the first
// matching pair wins, checked in a fixed priority order.
func OhmsLaw(voltage, current, resistance, power *float64) Result {
	var r Result

	supplied := 0
	for _, v := range []*float64{voltage, current, resistance, power} {
		if v == nil {
			continue
		}
		supplied++
		if !validInputs(*v) {
			r.warn(invalidInputWarning)
			return r
		}
	}
	if supplied < 2 {
		r.warn("⚠️ Provide at least two of voltage, current, resistance, and power")
		return r
	}

	outCurrent := math.NaN()
	outPower := math.NaN()

	switch {
	case voltage != nil && current != nil:
		outCurrent = *current
		outPower = *voltage * *current
		r.add("Resistance", num(*voltage / *current))
		r.add("Power", num(outPower))
	case voltage != nil && resistance != nil:
		outCurrent = *voltage / *resistance
		outPower = *voltage * *voltage / *resistance
		r.add("Current", num(outCurrent))
		r.add("Power", num(outPower))
	case current != nil && resistance != nil:
		outCurrent = *current
		outPower = *current * *current * *resistance
		r.add("Voltage", num(*current * *resistance))
		r.add("Power", num(outPower))
	case power != nil && voltage != nil:
		outCurrent = *power / *voltage
		outPower = *power
		r.add("Current", num(outCurrent))
		r.add("Resistance", num(*voltage * *voltage / *power))
	case power != nil && current != nil:
		outCurrent = *current
		outPower = *power
		r.add("Voltage", num(*power / *current))
		r.add("Resistance", num(*power / (*current * *current)))
	case power != nil && resistance != nil:
		outCurrent = math.Sqrt(*power / *resistance)
		outPower = *power
		r.add("Voltage", num(math.Sqrt(*power**resistance)))
		r.add("Current", num(outCurrent))
	}

	if outCurrent > 20 {
		r.warn("⚠️ High current detected - ensure proper wire gauge!")
	}
	if outPower > 5000 {
		r.warn("⚠️ High power load - verify circuit capacity!")
	}
	return r
}

// NEC 310.16 copper ampacities by temperature rating, ascending size.
var wireAmpacities = []struct {
	gauge            string
	at60, at75, at90 float64
}{
	{"14", 15, 20, 25},
	{"12", 20, 25, 30},
	{"10", 30, 35, 40},
	{"8", 40, 50, 55},
	{"6", 55, 65, 75},
	{"4", 70, 85, 95},
	{"3", 85, 100, 115},
	{"2", 95, 115, 130},
	{"1", 110, 130, 150},
	{"1/0", 125, 150, 170},
	{"2/0", 145, 175, 195},
	{"3/0", 165, 200, 225},
	{"4/0", 195, 230, 260},
}

// WireSize selects the smallest copper gauge whose ampacity at the given
// temperature rating (60, 75, or 90 °C) covers amperage with the 125%
// safety factor, and estimates voltage drop over distance in feet using
// a fixed 12.9 Ω/1000ft copper constant.
func WireSize(amperage, distance, voltage float64, tempRating int) Result {
	var r Result
	if !validInputs(amperage, distance, voltage) {
		r.warn(invalidInputWarning)
		return r
	}

	minAmpacity := amperage * 1.25
	recommendedSize := wireAmpacities[len(wireAmpacities)-1].gauge
	for _, w := range wireAmpacities {
		rating := w.at75
		switch tempRating {
		case 60:
			rating = w.at60
		case 90:
			rating = w.at90
		}
		if rating >= minAmpacity {
			recommendedSize = w.gauge
			break
		}
	}

	voltageDrop := 2 * 12.9 * amperage * distance / 1000
	voltageDropPercent := voltageDrop / voltage * 100

	if voltageDropPercent > 3 {
		r.warn("⚠️ Voltage drop exceeds 3% - consider larger wire size!")
		r.recommend("Increase wire gauge to reduce voltage drop")
	}
	if amperage > 100 {
		r.recommend("Consider consulting NEC Table 310.16 for exact requirements")
	}

	r.add("Recommended Size", recommendedSize)
	r.add("Voltage Drop", fixed(voltageDrop, 2))
	r.add("Voltage Drop Percent", fixed(voltageDropPercent, 2)+"%")
	r.add("Min Ampacity", fixed(minAmpacity, 1))
	return r
}

// Conductor resistance in ohms per 1000 feet at 75°C.
var wireResistances = map[string]struct{ copper, aluminum float64 }{
	"14":  {3.14, 5.17},
	"12":  {1.98, 3.25},
	"10":  {1.24, 2.04},
	"8":   {0.778, 1.28},
	"6":   {0.491, 0.808},
	"4":   {0.308, 0.508},
	"3":   {0.245, 0.403},
	"2":   {0.194, 0.319},
	"1":   {0.154, 0.253},
	"1/0": {0.122, 0.201},
	"2/0": {0.0967, 0.159},
	"3/0": {0.0766, 0.126},
	"4/0": {0.0608, 0.100},
}

// VoltageDrop computes round-trip voltage drop for a run of wireGauge
// over distance feet. Unknown gauges fall back to the 12 AWG copper
// value; material is "copper" or "aluminum".
func VoltageDrop(wireGauge string, amperage, distance, voltage float64, material string) Result {
	var r Result
	if !validInputs(amperage, distance, voltage) {
		r.warn(invalidInputWarning)
		return r
	}

	resistance := 1.98
	if entry, ok := wireResistances[wireGauge]; ok {
		if material == "aluminum" {
			resistance = entry.aluminum
		} else {
			resistance = entry.copper
		}
	}

	voltageDrop := 2 * resistance * amperage * distance / 1000
	voltageDropPercent := voltageDrop / voltage * 100
	voltageAtLoad := voltage - voltageDrop

	if voltageDropPercent > 3 {
		r.warn("⚠️ Voltage drop exceeds recommended 3% limit!")
		r.recommend("Use larger wire gauge or reduce circuit length")
	}
	if voltageDropPercent > 5 {
		r.warn("🚫 Voltage drop exceeds maximum 5% limit per NEC!")
	}

	r.add("Voltage Drop", fixed(voltageDrop, 2)+"V")
	r.add("Voltage Drop Percent", fixed(voltageDropPercent, 2)+"%")
	r.add("Voltage At Load", fixed(voltageAtLoad, 2)+"V")
	r.add("Wire Resistance", fixed(resistance, 4)+" Ω/1000ft")
	return r
}

var standardBreakerSizes = []float64{15, 20, 25, 30, 35, 40, 45, 50, 60, 70, 80, 90, 100, 110, 125, 150, 175, 200}

// BreakerSize selects the smallest standard breaker covering the load.
// Continuous and motor loads each take the 125% factor; the two
// conditions apply the same multiplier, not a stacked one.
func BreakerSize(loadAmperage float64, continuous, motorLoad bool) Result {
	var r Result
	if !validInputs(loadAmperage) {
		r.warn(invalidInputWarning)
		return r
	}

	requiredAmpacity := loadAmperage
	if continuous {
		requiredAmpacity = loadAmperage * 1.25
		r.recommend("Continuous load factor (125%) applied")
	}
	if motorLoad {
		requiredAmpacity = loadAmperage * 1.25
		r.recommend("Motor load factor applied - verify with NEC 430.52")
	}

	breakerSize := standardBreakerSizes[len(standardBreakerSizes)-1]
	for _, size := range standardBreakerSizes {
		if size >= requiredAmpacity {
			breakerSize = size
			break
		}
	}

	if breakerSize > 100 {
		r.warn("⚠️ Large breaker size - verify panel capacity!")
	}

	var recommendedWire string
	switch {
	case breakerSize <= 15:
		recommendedWire = "14 AWG"
	case breakerSize <= 20:
		recommendedWire = "12 AWG"
	case breakerSize <= 30:
		recommendedWire = "10 AWG"
	case breakerSize <= 40:
		recommendedWire = "8 AWG"
	case breakerSize <= 55:
		recommendedWire = "6 AWG"
	case breakerSize <= 70:
		recommendedWire = "4 AWG"
	default:
		recommendedWire = "2 AWG or larger"
	}

	r.add("Breaker Size", num(breakerSize)+"A")
	r.add("Required Ampacity", fixed(requiredAmpacity, 1)+"A")
	r.add("Recommended Wire", recommendedWire)
	return r
}

// Conductor is one gauge/count group inside a box.
type Conductor struct {
	Size  string
	Count int
}

// Free space per conductor in cubic inches, NEC 314.16(B).
var conductorVolumes = map[string]float64{
	"14": 2.0,
	"12": 2.25,
	"10": 2.5,
	"8":  3.0,
	"6":  5.0,
	"4":  6.0,
	"3":  6.0,
	"2":  6.0,
}

const defaultConductorVolume = 2.25

// Standard boxes ascending by volume; scanned for the smallest fit.
var standardBoxes = []struct {
	name   string
	volume float64
}{
	{`Single Gang (3" x 2" x 2-1/2")`, 12.5},
	{`4" Square (1-1/4" deep)`, 18.0},
	{`Single Gang (3" x 2" x 3-1/2")`, 18.0},
	{`4" Square (1-1/2" deep)`, 21.0},
	{`Double Gang (3" x 2" x 2-1/2")`, 25.0},
	{`4-11/16" Square (1-1/4" deep)`, 25.5},
	{`4-11/16" Square (1-1/2" deep)`, 29.5},
	{`4" Square (2-1/8" deep)`, 30.3},
	{`Double Gang (3" x 2" x 3-1/2")`, 36.0},
	{`4-11/16" Square (2-1/8" deep)`, 42.0},
}

func conductorVolume(size string) float64 {
	if v, ok := conductorVolumes[size]; ok {
		return v
	}
	return defaultConductorVolume
}

// BoxFill totals required box volume per NEC 314.16: each conductor at
// its unit volume, each device at twice the largest conductor's volume,
// each clamp at one largest-conductor volume, and all ground wires
// together at one largest-conductor volume. The recommended box is the
// smallest standard box that fits; if none does, the largest is
// returned and the fill percentage may exceed 100%.
func BoxFill(conductors []Conductor, devices, clamps, groundWires int) Result {
	var r Result
	if devices < 0 || clamps < 0 || groundWires < 0 {
		r.warn(invalidInputWarning)
		return r
	}
	for _, c := range conductors {
		if c.Count < 0 {
			r.warn(invalidInputWarning)
			return r
		}
	}

	totalVolume := 0.0
	largest := conductorVolumes["14"]
	for _, c := range conductors {
		v := conductorVolume(c.Size)
		totalVolume += v * float64(c.Count)
		if v > largest {
			largest = v
		}
	}

	totalVolume += largest * 2 * float64(devices)
	totalVolume += largest * float64(clamps)
	if groundWires > 0 {
		totalVolume += largest
	}

	box := standardBoxes[len(standardBoxes)-1]
	for _, b := range standardBoxes {
		if b.volume >= totalVolume {
			box = b
			break
		}
	}

	if totalVolume > 42 {
		r.warn("⚠️ Large volume required - may need multiple boxes or larger enclosure!")
	}
	if devices > 2 {
		r.recommend("Consider using a larger gang box for easier installation")
	}

	r.add("Required Volume", fixed(totalVolume, 1)+" cu.in.")
	r.add("Recommended Box", box.name)
	r.add("Box Volume", fixed(box.volume, 1)+" cu.in.")
	r.add("Fill Percentage", fixed(totalVolume/box.volume*100, 1)+"%")
	return r
}

// Trade size options by conductor gauge for the simplified fill table.
var conduitSizeOptions = map[string][]string{
	"14": {`1/2"`, `3/4"`, `1"`, `1-1/4"`},
	"12": {`1/2"`, `3/4"`, `1"`, `1-1/4"`},
	"10": {`3/4"`, `1"`, `1-1/4"`, `1-1/2"`},
	"8":  {`3/4"`, `1"`, `1-1/4"`, `1-1/2"`, `2"`},
	"6":  {`1"`, `1-1/4"`, `1-1/2"`, `2"`},
}

var defaultConduitSizes = []string{`1"`, `1-1/4"`, `1-1/2"`, `2"`}

// ConduitFill applies the simplified NEC fill limits: 53% for one
// conductor, 31% for two, 40% for three or more. This is an
// approximation, not a full Annex C lookup.
func ConduitFill(conductorSize string, conductorCount int, conduitType string) Result {
	var r Result
	if conductorCount < 1 {
		r.warn(invalidInputWarning)
		return r
	}

	fillPercentage := 40
	switch conductorCount {
	case 1:
		fillPercentage = 53
	case 2:
		fillPercentage = 31
	}

	sizes, ok := conduitSizeOptions[conductorSize]
	if !ok {
		sizes = defaultConduitSizes
	}
	idx := conductorCount / 3
	if idx > len(sizes)-1 {
		idx = len(sizes) - 1
	}

	r.recommend("Consult NEC Annex C for exact conduit fill requirements")
	r.recommend("Consider derating factors for more than 3 current-carrying conductors")
	if conductorCount > 9 {
		r.warn("⚠️ High conductor count - verify derating requirements!")
	}

	r.add("Max Fill Percentage", strconv.Itoa(fillPercentage)+"%")
	r.add("Recommended Size", sizes[idx])
	r.add("Alternative Sizes", strings.Join(sizes, ", "))
	return r
}
