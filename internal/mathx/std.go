//go:build !mathlite && !tinygo

package mathx

import "math"

// Backend names the implementation compiled into this binary.
const Backend = "std"

// Exp returns e**x.
func Exp(x float64) float64 {
	return math.Exp(x)
}

// Log returns the natural logarithm of x.
func Log(x float64) float64 {
	return math.Log(x)
}

// Pow returns x**y.
func Pow(x, y float64) float64 {
	return math.Pow(x, y)
}
