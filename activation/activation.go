// Package activation provides activation functions used by simple
// estimators.
package activation

import "math"

// Func maps a weighted sum to an activation value.
type Func func(x float64) float64

// Sigmoid is the logistic function, mapping x into (0, 1).
func Sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}

// ReLU returns max(0, x).
func ReLU(x float64) float64 {
	if x < 0 {
		return 0
	}
	return x
}

// Tanh is the hyperbolic tangent, mapping x into (-1, 1).
func Tanh(x float64) float64 {
	return math.Tanh(x)
}

// Step is the Heaviside step function: 1 for x >= 0, else 0.
func Step(x float64) float64 {
	if x >= 0 {
		return 1
	}
	return 0
}

// Apply returns a new vector with fn applied componentwise.
func Apply(fn Func, v []float64) []float64 {
	out := make([]float64, len(v))
	for i, x := range v {
		out[i] = fn(x)
	}
	return out
}
