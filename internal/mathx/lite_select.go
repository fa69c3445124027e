//go:build mathlite || tinygo

package mathx

// Backend names the implementation compiled into this binary.
const Backend = "lite"

// Exp returns e**x computed in float32.
func Exp(x float64) float64 {
	return LiteExp(x)
}

// Log returns the natural logarithm of x computed in float32.
func Log(x float64) float64 {
	return LiteLog(x)
}

// Pow returns x**y computed in float32.
func Pow(x, y float64) float64 {
	return LitePow(x, y)
}
