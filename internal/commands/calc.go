package commands

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/Washedglad/electricians-spellbook/internal/calc"
)

var (
	calcLabelStyle = lipgloss.NewStyle().Bold(true)
	calcWarnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	calcRecStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

// renderResult prints a calculator result: labeled outputs, then
// warnings, then recommendations.
func renderResult(r calc.Result) {
	for _, o := range r.Outputs {
		fmt.Printf("%s: %s\n", calcLabelStyle.Render(o.Label), o.Value)
	}
	for _, w := range r.Warnings {
		fmt.Println(calcWarnStyle.Render(w))
	}
	for _, rec := range r.Recommendations {
		fmt.Println(calcRecStyle.Render("💡 " + rec))
	}
}

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Electrical sizing calculators",
}

var calcOhmsCmd = &cobra.Command{
	Use:   "ohms",
	Short: "Ohm's law (supply any two of V, I, R, P)",
	Run: func(cmd *cobra.Command, args []string) {
		var voltage, current, resistance, power *float64
		if cmd.Flags().Changed("voltage") {
			v, _ := cmd.Flags().GetFloat64("voltage")
			voltage = &v
		}
		if cmd.Flags().Changed("current") {
			v, _ := cmd.Flags().GetFloat64("current")
			current = &v
		}
		if cmd.Flags().Changed("resistance") {
			v, _ := cmd.Flags().GetFloat64("resistance")
			resistance = &v
		}
		if cmd.Flags().Changed("power") {
			v, _ := cmd.Flags().GetFloat64("power")
			power = &v
		}
		renderResult(calc.OhmsLaw(voltage, current, resistance, power))
	},
}

var calcWireCmd = &cobra.Command{
	Use:   "wire",
	Short: "Wire sizing by ampacity and run length",
	Run: func(cmd *cobra.Command, args []string) {
		amperage, _ := cmd.Flags().GetFloat64("amps")
		distance, _ := cmd.Flags().GetFloat64("distance")
		voltage, _ := cmd.Flags().GetFloat64("voltage")
		temp, _ := cmd.Flags().GetInt("temp")
		renderResult(calc.WireSize(amperage, distance, voltage, temp))
	},
}

var calcVdropCmd = &cobra.Command{
	Use:   "vdrop",
	Short: "Voltage drop for a known gauge",
	Run: func(cmd *cobra.Command, args []string) {
		gauge, _ := cmd.Flags().GetString("gauge")
		amperage, _ := cmd.Flags().GetFloat64("amps")
		distance, _ := cmd.Flags().GetFloat64("distance")
		voltage, _ := cmd.Flags().GetFloat64("voltage")
		material, _ := cmd.Flags().GetString("material")
		renderResult(calc.VoltageDrop(gauge, amperage, distance, voltage, material))
	},
}

var calcBreakerCmd = &cobra.Command{
	Use:   "breaker",
	Short: "Circuit breaker sizing",
	Run: func(cmd *cobra.Command, args []string) {
		amps, _ := cmd.Flags().GetFloat64("amps")
		continuous, _ := cmd.Flags().GetBool("continuous")
		motor, _ := cmd.Flags().GetBool("motor")
		renderResult(calc.BreakerSize(amps, continuous, motor))
	},
}

var calcBoxfillCmd = &cobra.Command{
	Use:   "boxfill",
	Short: "Box fill per NEC 314.16",
	Long: `Box fill per NEC 314.16.

Conductors are given as gauge:count pairs, e.g.:
  spellbook calc boxfill -c 12:6 -c 14:2 --devices 2 --grounds 1`,
	Run: func(cmd *cobra.Command, args []string) {
		specs, _ := cmd.Flags().GetStringSlice("conductors")
		devices, _ := cmd.Flags().GetInt("devices")
		clamps, _ := cmd.Flags().GetInt("clamps")
		grounds, _ := cmd.Flags().GetInt("grounds")

		var conductors []calc.Conductor
		for _, spec := range specs {
			parts := strings.SplitN(spec, ":", 2)
			if len(parts) != 2 {
				fmt.Printf("Error: invalid conductor spec %q (want gauge:count)\n", spec)
				return
			}
			var count int
			if _, err := fmt.Sscanf(parts[1], "%d", &count); err != nil {
				fmt.Printf("Error: invalid conductor count in %q\n", spec)
				return
			}
			conductors = append(conductors, calc.Conductor{Size: parts[0], Count: count})
		}
		renderResult(calc.BoxFill(conductors, devices, clamps, grounds))
	},
}

var calcConduitCmd = &cobra.Command{
	Use:   "conduit",
	Short: "Simplified conduit fill",
	Run: func(cmd *cobra.Command, args []string) {
		size, _ := cmd.Flags().GetString("gauge")
		count, _ := cmd.Flags().GetInt("count")
		conduitType, _ := cmd.Flags().GetString("type")
		renderResult(calc.ConduitFill(size, count, conduitType))
	},
}

var calcDatacableCmd = &cobra.Command{
	Use:   "datacable",
	Short: "Data cable run limits",
	Run: func(cmd *cobra.Command, args []string) {
		rate, _ := cmd.Flags().GetFloat64("rate")
		cable, _ := cmd.Flags().GetString("cable")
		env, _ := cmd.Flags().GetString("env")
		renderResult(calc.DataCableLength(rate, cable, env))
	},
}

var calcPoeCmd = &cobra.Command{
	Use:   "poe",
	Short: "PoE power budget",
	Run: func(cmd *cobra.Command, args []string) {
		standard, _ := cmd.Flags().GetString("standard")
		devices, _ := cmd.Flags().GetInt("devices")
		power, _ := cmd.Flags().GetFloat64("watts")
		renderResult(calc.PoEBudget(standard, devices, power))
	},
}

var calcDcpowerCmd = &cobra.Command{
	Use:   "dcpower",
	Short: "12/24V DC power supply sizing",
	Run: func(cmd *cobra.Command, args []string) {
		voltage, _ := cmd.Flags().GetInt("voltage")
		load, _ := cmd.Flags().GetFloat64("load")
		length, _ := cmd.Flags().GetFloat64("length")
		gauge, _ := cmd.Flags().GetString("gauge")
		renderResult(calc.LowVoltagePower(voltage, load, length, gauge))
	},
}

var calcHvacCmd = &cobra.Command{
	Use:   "hvac",
	Short: "HVAC control wiring",
	Run: func(cmd *cobra.Command, args []string) {
		wires, _ := cmd.Flags().GetInt("wires")
		distance, _ := cmd.Flags().GetFloat64("distance")
		voltage, _ := cmd.Flags().GetInt("voltage")
		application, _ := cmd.Flags().GetString("application")
		renderResult(calc.HVACWiring(wires, distance, voltage, application))
	},
}

var calcPlcCmd = &cobra.Command{
	Use:   "plc",
	Short: "PLC I/O point sizing",
	Run: func(cmd *cobra.Command, args []string) {
		di, _ := cmd.Flags().GetInt("di")
		do, _ := cmd.Flags().GetInt("do")
		ai, _ := cmd.Flags().GetInt("ai")
		ao, _ := cmd.Flags().GetInt("ao")
		expansion, _ := cmd.Flags().GetInt("expansion")
		renderResult(calc.PLCIO(di, do, ai, ao, expansion))
	},
}

var calcSecurityCmd = &cobra.Command{
	Use:   "security",
	Short: "Security and access-control wiring",
	Run: func(cmd *cobra.Command, args []string) {
		system, _ := cmd.Flags().GetString("system")
		devices, _ := cmd.Flags().GetInt("devices")
		distance, _ := cmd.Flags().GetFloat64("distance")
		power, _ := cmd.Flags().GetString("power")
		renderResult(calc.SecurityWiring(system, devices, distance, power))
	},
}

func init() {
	calcOhmsCmd.Flags().Float64("voltage", 0, "Voltage (V)")
	calcOhmsCmd.Flags().Float64("current", 0, "Current (A)")
	calcOhmsCmd.Flags().Float64("resistance", 0, "Resistance (Ω)")
	calcOhmsCmd.Flags().Float64("power", 0, "Power (W)")

	calcWireCmd.Flags().Float64("amps", 0, "Load amperage")
	calcWireCmd.Flags().Float64("distance", 0, "One-way run length (ft)")
	calcWireCmd.Flags().Float64("voltage", 120, "Circuit voltage")
	calcWireCmd.Flags().Int("temp", 75, "Temperature rating (60, 75, 90)")

	calcVdropCmd.Flags().String("gauge", "12", "Wire gauge (AWG)")
	calcVdropCmd.Flags().Float64("amps", 0, "Load amperage")
	calcVdropCmd.Flags().Float64("distance", 0, "One-way run length (ft)")
	calcVdropCmd.Flags().Float64("voltage", 120, "Circuit voltage")
	calcVdropCmd.Flags().String("material", "copper", "copper or aluminum")

	calcBreakerCmd.Flags().Float64("amps", 0, "Load amperage")
	calcBreakerCmd.Flags().Bool("continuous", false, "Continuous load (3h+)")
	calcBreakerCmd.Flags().Bool("motor", false, "Motor load")

	calcBoxfillCmd.Flags().StringSliceP("conductors", "c", nil, "Conductor groups as gauge:count")
	calcBoxfillCmd.Flags().Int("devices", 0, "Devices (switches/receptacles)")
	calcBoxfillCmd.Flags().Int("clamps", 0, "Internal cable clamps")
	calcBoxfillCmd.Flags().Int("grounds", 0, "Ground wires")

	calcConduitCmd.Flags().String("gauge", "12", "Conductor gauge (AWG)")
	calcConduitCmd.Flags().Int("count", 3, "Conductor count")
	calcConduitCmd.Flags().String("type", "EMT", "Conduit type (EMT, PVC, IMC, Rigid)")

	calcDatacableCmd.Flags().Float64("rate", 1000, "Data rate (Mbps)")
	calcDatacableCmd.Flags().String("cable", "Cat6", "Cat5e, Cat6, Cat6a, Cat7, or Fiber")
	calcDatacableCmd.Flags().String("env", "indoor", "indoor, outdoor, or plenum")

	calcPoeCmd.Flags().String("standard", "PoE+", "PoE, PoE+, or PoE++")
	calcPoeCmd.Flags().Int("devices", 1, "Powered device count")
	calcPoeCmd.Flags().Float64("watts", 0, "Watts per device")

	calcDcpowerCmd.Flags().Int("voltage", 12, "Supply voltage (12 or 24)")
	calcDcpowerCmd.Flags().Float64("load", 0, "Total load (W)")
	calcDcpowerCmd.Flags().Float64("length", 0, "Cable length (ft)")
	calcDcpowerCmd.Flags().String("gauge", "18", "Wire gauge (AWG)")

	calcHvacCmd.Flags().Int("wires", 5, "Conductor count")
	calcHvacCmd.Flags().Float64("distance", 0, "Max run (ft)")
	calcHvacCmd.Flags().Int("voltage", 24, "24, 120, or 240")
	calcHvacCmd.Flags().String("application", "thermostat", "thermostat, zone-damper, actuator, or sensor")

	calcPlcCmd.Flags().Int("di", 0, "Digital inputs")
	calcPlcCmd.Flags().Int("do", 0, "Digital outputs")
	calcPlcCmd.Flags().Int("ai", 0, "Analog inputs")
	calcPlcCmd.Flags().Int("ao", 0, "Analog outputs")
	calcPlcCmd.Flags().Int("expansion", 20, "Expansion headroom (%)")

	calcSecurityCmd.Flags().String("system", "camera", "camera, access-control, alarm, or intercom")
	calcSecurityCmd.Flags().Int("devices", 1, "Device count")
	calcSecurityCmd.Flags().Float64("distance", 0, "Average run per device (ft)")
	calcSecurityCmd.Flags().String("power", "PoE", "PoE, local-12V, local-24V, or separate-power")

	calcCmd.AddCommand(calcOhmsCmd)
	calcCmd.AddCommand(calcWireCmd)
	calcCmd.AddCommand(calcVdropCmd)
	calcCmd.AddCommand(calcBreakerCmd)
	calcCmd.AddCommand(calcBoxfillCmd)
	calcCmd.AddCommand(calcConduitCmd)
	calcCmd.AddCommand(calcDatacableCmd)
	calcCmd.AddCommand(calcPoeCmd)
	calcCmd.AddCommand(calcDcpowerCmd)
	calcCmd.AddCommand(calcPlcCmd)
	calcCmd.AddCommand(calcHvacCmd)
	calcCmd.AddCommand(calcSecurityCmd)
}
