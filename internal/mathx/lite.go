package mathx

import "math"

// float32 approximations used by the reduced backend. They only rely on bit
// reinterpretation, so TinyGo links them without the rest of package math.

const (
	ln2Hi  float32 = 0.693145751953125
	ln2Lo  float32 = 1.428606765330187e-06
	ln2    float32 = 0.6931471805599453
	invLn2 float32 = 1.4426950408889634
	sqrt2  float32 = 1.4142135623730951

	// exp overflows above this and underflows to zero below minExpArg.
	maxExpArg float32 = 88.72283
	minExpArg float32 = -103.97208
)

var (
	inf32 = math.Float32frombits(0x7f800000)
	nan32 = math.Float32frombits(0x7fc00000)
)

// pow2 returns 2**k for k in the normal float32 exponent range.
func pow2(k int32) float32 {
	return math.Float32frombits(uint32(k+127) << 23)
}

// ldexp scales f by 2**k, splitting k so each factor stays a normal number.
func ldexp(f float32, k int32) float32 {
	if k >= -126 && k <= 127 {
		return f * pow2(k)
	}
	h := k / 2
	return f * pow2(h) * pow2(k-h)
}

// LiteExp is the reduced backend's e**x with a float64 signature. The Lite
// functions are compiled into every build so the default one can compare
// formula results against them.
func LiteExp(x float64) float64 {
	return float64(liteExp(float32(x)))
}

// LiteLog is the reduced backend's natural logarithm.
func LiteLog(x float64) float64 {
	return float64(liteLog(float32(x)))
}

// LitePow is the reduced backend's x**y.
func LitePow(x, y float64) float64 {
	return float64(litePow(float32(x), float32(y)))
}

func liteExp(x float32) float32 {
	switch {
	case x != x:
		return nan32
	case x > maxExpArg:
		return inf32
	case x < minExpArg:
		return 0
	}

	// x = k*ln2 + r, |r| <= ln2/2
	half := float32(0.5)
	if x < 0 {
		half = -0.5
	}
	k := int32(x*invLn2 + half)
	fk := float32(k)
	r := (x - fk*ln2Hi) - fk*ln2Lo

	// Taylor series of e**r to r**7, truncation error below 1e-8 on |r| <= 0.35.
	p := 1 + r*(1+r*(1.0/2+r*(1.0/6+r*(1.0/24+r*(1.0/120+r*(1.0/720+r*(1.0/5040)))))))
	return ldexp(p, k)
}

func liteLog(x float32) float32 {
	switch {
	case x != x || x < 0:
		return nan32
	case x == 0:
		return -inf32
	case x == inf32:
		return inf32
	}

	var e int32
	// subnormal input
	if x < math.Float32frombits(0x00800000) {
		x *= 1 << 23
		e = -23
	}
	bits := math.Float32bits(x)
	e += int32(bits>>23&0xff) - 127
	m := math.Float32frombits(bits&0x007fffff | 0x3f800000)
	if m > sqrt2 {
		m /= 2
		e++
	}

	// log(m) = 2*atanh(s), s = (m-1)/(m+1), |s| <= 0.1716
	s := (m - 1) / (m + 1)
	s2 := s * s
	lm := 2 * s * (1 + s2*(1.0/3+s2*(1.0/5+s2*(1.0/7+s2*(1.0/9)))))
	return float32(e)*ln2 + lm
}

func litePow(x, y float32) float32 {
	switch {
	case y == 0 || x == 1:
		return 1
	case x != x || y != y:
		return nan32
	case x == 0:
		if y > 0 {
			return 0
		}
		return inf32
	case x < 0:
		yi := float32(int32(y))
		if yi != y {
			return nan32
		}
		r := liteExp(y * liteLog(-x))
		if int32(y)%2 != 0 {
			return -r
		}
		return r
	}
	return liteExp(y * liteLog(x))
}
