package weatherutils

import "github.com/udawtr/weatherutils-go/internal/mathx"

// Exponential primitives behind every formula. Tests point these at the
// reduced backend to check formula results against the default one.
var (
	expFn = mathx.Exp
	logFn = mathx.Log
	powFn = mathx.Pow
)
