// Package mathx holds the exponential primitives used by the weather formulas.
//
// The default build delegates to the standard math package. Building with the
// mathlite tag (or with TinyGo) swaps in float32 approximations that avoid the
// full math implementation on memory-constrained targets. Both backends agree
// within about 1e-5 relative over the atmospheric range.
package mathx
