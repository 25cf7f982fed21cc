// Package calc implements the sizing and code calculators. Every
// calculator is a pure function over plain numeric inputs returning a
// uniform Result; none touches store state or performs I/O.
package calc

import (
	"math"
	"strconv"
)

// Output is a single labeled computed value, ordered for display.
type Output struct {
	Label string
	Value string
}

// Result is the uniform shape every calculator returns.
type Result struct {
	Outputs         []Output
	Warnings        []string
	Recommendations []string
}

// Output returns the value for a label, or "" if absent.
func (r Result) Output(label string) string {
	for _, o := range r.Outputs {
		if o.Label == label {
			return o.Value
		}
	}
	return ""
}

func (r *Result) add(label, value string) {
	r.Outputs = append(r.Outputs, Output{Label: label, Value: value})
}

func (r *Result) warn(msg string) {
	r.Warnings = append(r.Warnings, msg)
}

func (r *Result) recommend(msg string) {
	r.Recommendations = append(r.Recommendations, msg)
}

const invalidInputWarning = "⚠️ Inputs must be non-negative finite numbers"

// validInputs rejects NaN, infinities, and negatives. Calculators call
// this on required inputs and compute nothing when it fails; in-domain
// division by zero still degrades to Inf in the formatted output.
func validInputs(vals ...float64) bool {
	for _, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return false
		}
	}
	return true
}

// num formats a float the way the result pages render raw numbers:
// no trailing zeros, NaN and Inf passed through as text.
func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// fixed formats with a fixed number of decimals.
func fixed(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}
