package weatherutils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udawtr/weatherutils-go/internal/mathx"
)

// setBackend routes the formulas through the given primitives until the test ends.
func setBackend(t *testing.T, exp, log func(float64) float64, pow func(float64, float64) float64) {
	t.Helper()
	e, l, p := expFn, logFn, powFn
	expFn, logFn, powFn = exp, log, pow
	t.Cleanup(func() { expFn, logFn, powFn = e, l, p })
}

func useStdBackend(t *testing.T) {
	setBackend(t, math.Exp, math.Log, math.Pow)
}

func useLiteBackend(t *testing.T) {
	setBackend(t, mathx.LiteExp, mathx.LiteLog, mathx.LitePow)
}

type backendResults struct {
	ah       []float64
	altitude []float64
	dewPoint []float64
	seaLevel []float64
}

func formulaResults(t *testing.T) backendResults {
	t.Helper()
	var r backendResults

	for _, tt := range []struct {
		tmp Celsius
		rh  RelativeHumidity
	}{{21.18, 45.59}, {2.93, 34.71}, {42.06, 74.91}, {-20, 80}, {0, 100}} {
		ah, err := ComputeAbsoluteHumidity(tt.tmp, tt.rh)
		require.NoError(t, err)
		r.ah = append(r.ah, float64(ah))

		td, err := ComputeDewPoint(tt.tmp, tt.rh)
		require.NoError(t, err)
		r.dewPoint = append(r.dewPoint, float64(td))
	}

	for _, tt := range []struct {
		p   Hectopascals
		tmp Celsius
	}{{991.32, 20.55}, {1013.25, 17.93}, {962.81, 19.37}, {700, -5}} {
		h, err := ComputeAltitude(PressureFromHectopascals(tt.p), tt.tmp)
		require.NoError(t, err)
		r.altitude = append(r.altitude, float64(h))

		p0, err := SeaLevelPressureAt(tt.p, 439.25, tt.tmp)
		require.NoError(t, err)
		r.seaLevel = append(r.seaLevel, float64(p0))
	}
	return r
}

func Test_Formulas_LiteMatchesStd(t *testing.T) {
	var std, lite backendResults
	t.Run("std", func(t *testing.T) {
		useStdBackend(t)
		std = formulaResults(t)
	})
	t.Run("lite", func(t *testing.T) {
		useLiteBackend(t)
		lite = formulaResults(t)
	})
	require.Len(t, lite.ah, len(std.ah))
	require.Len(t, lite.altitude, len(std.altitude))

	for i := range std.ah {
		assert.InEpsilon(t, std.ah[i], lite.ah[i], 1e-4, "absolute humidity #%d", i)
		assert.InDelta(t, std.dewPoint[i], lite.dewPoint[i], 1e-3, "dew point #%d", i)
	}
	for i := range std.altitude {
		assert.InDelta(t, std.altitude[i], lite.altitude[i], 0.05, "altitude #%d", i)
		assert.InEpsilon(t, std.seaLevel[i], lite.seaLevel[i], 1e-5, "sea level pressure #%d", i)
	}

	// published values hold on the reduced backend too
	assert.InDelta(t, 8.43, lite.ah[0], 0.01)
	assert.InDelta(t, 188.46, lite.altitude[0], 0.1)
}

// A humidity below the float32 range underflows to zero in the reduced
// backend, which must surface as an error rather than NaN.
func Test_ComputeDewPoint_Underflow(t *testing.T) {
	t.Run("std", func(t *testing.T) {
		useStdBackend(t)
		td, err := ComputeDewPoint(20, 1e-320)
		require.NoError(t, err)
		assert.False(t, math.IsNaN(float64(td)))
		assert.Greater(t, float64(td), -magnusB)
	})
	t.Run("lite", func(t *testing.T) {
		useLiteBackend(t)
		_, err := ComputeDewPoint(20, 1e-320)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})
}
