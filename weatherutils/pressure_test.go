package weatherutils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ComputeAltitude(t *testing.T) {
	tests := []struct {
		name     string
		pressure Pressure
		tmp      Temperature
		want     float64
	}{
		{name: "low hill", pressure: PressureFromHectopascals(991.32), tmp: TemperatureFromCelsius(20.55), want: 188.46},
		{name: "sea level", pressure: PressureFromHectopascals(1013.25), tmp: TemperatureFromCelsius(17.93), want: 0},
		{name: "sea level hot", pressure: PressureFromHectopascals(1013.25), tmp: TemperatureFromCelsius(37.5), want: 0},
		{name: "hill", pressure: PressureFromHectopascals(962.81), tmp: TemperatureFromCelsius(19.37), want: 439.25},
		{name: "pascal", pressure: Pressure{Value: 99132, Unit: UnitPascal}, tmp: TemperatureFromCelsius(20.55), want: 188.46},
		{name: "kilopascal", pressure: Pressure{Value: 99.132, Unit: UnitKilopascal}, tmp: TemperatureFromCelsius(20.55), want: 188.46},
		{name: "fahrenheit", pressure: PressureFromHectopascals(962.81), tmp: TemperatureFromFahrenheit(66.866), want: 439.25},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TemperatureAndPressure{Temperature: tt.tmp, Pressure: tt.pressure}.Altitude()
			require.NoError(t, err)
			assert.InDelta(t, tt.want, float64(got), 0.01)
		})
	}
}

func Test_ComputeAltitude_ReferencePoint(t *testing.T) {
	got, err := ComputeAltitude(PressureFromHectopascals(SeaLevelPressure), Celsius(StandardTemperature-ZeroCelsius))
	require.NoError(t, err)
	assert.InDelta(t, 0.0, float64(got), 1e-6)
}

func Test_ComputeAltitude_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		pressure Pressure
		tmp      Celsius
	}{
		{name: "negative pressure", pressure: PressureFromHectopascals(-5), tmp: 15},
		{name: "zero pressure", pressure: PressureFromHectopascals(0), tmp: 15},
		{name: "NaN pressure", pressure: PressureFromHectopascals(Hectopascals(math.NaN())), tmp: 15},
		{name: "infinite pressure", pressure: PressureFromHectopascals(Hectopascals(math.Inf(1))), tmp: 15},
		{name: "unknown unit", pressure: Pressure{Value: 1000, Unit: PressureUnit(42)}, tmp: 15},
		{name: "NaN temperature", pressure: PressureFromHectopascals(1000), tmp: Celsius(math.NaN())},
		{name: "absolute zero", pressure: PressureFromHectopascals(1000), tmp: -273.15},
		{name: "below absolute zero", pressure: PressureFromHectopascals(900), tmp: -300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ComputeAltitude(tt.pressure, tt.tmp)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func Test_ComputeAltitude_MonotonicInPressure(t *testing.T) {
	prev := Meters(math.Inf(1))
	for p := 300.0; p <= 1100; p += 10 {
		got, err := ComputeAltitude(PressureFromHectopascals(Hectopascals(p)), 15)
		require.NoError(t, err)
		assert.Less(t, float64(got), float64(prev), "P=%v", p)
		prev = got
	}
	// above the reference pressure the point lies below sea level
	assert.Less(t, float64(prev), 0.0)
}

func Test_Meters_Feet(t *testing.T) {
	assert.InDelta(t, 1000.0, Meters(304.8).Feet(), 1e-9)
}

func Test_PressureUnit(t *testing.T) {
	for _, u := range []PressureUnit{UnitHectopascal, UnitPascal, UnitKilopascal, UnitInchHg, UnitMillimeterHg} {
		got, err := ParsePressureUnit(u.String())
		require.NoError(t, err)
		assert.Equal(t, u, got)
	}
	got, err := ParsePressureUnit(" INHG ")
	require.NoError(t, err)
	assert.Equal(t, UnitInchHg, got)

	_, err = ParsePressureUnit("bar")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "PressureUnit(9)", PressureUnit(9).String())
	assert.Equal(t, "29.92 inHg", Pressure{Value: 29.92, Unit: UnitInchHg}.String())
}

func Test_Pressure_Hectopascals(t *testing.T) {
	tests := []struct {
		pressure Pressure
		want     float64
	}{
		{pressure: Pressure{Value: 1013.25}, want: 1013.25},
		{pressure: Pressure{Value: 101325, Unit: UnitPascal}, want: 1013.25},
		{pressure: Pressure{Value: 101.325, Unit: UnitKilopascal}, want: 1013.25},
		{pressure: Pressure{Value: 29.9213, Unit: UnitInchHg}, want: 1013.25},
		{pressure: Pressure{Value: 760, Unit: UnitMillimeterHg}, want: 1013.25},
	}

	for _, tt := range tests {
		t.Run(tt.pressure.String(), func(t *testing.T) {
			got, err := tt.pressure.Hectopascals()
			require.NoError(t, err)
			assert.InDelta(t, tt.want, float64(got), 0.01)
		})
	}
}

func Test_SeaLevelPressureAt(t *testing.T) {
	alt, err := ComputeAltitude(PressureFromHectopascals(962.81), 19.37)
	require.NoError(t, err)

	p0, err := SeaLevelPressureAt(962.81, alt, 19.37)
	require.NoError(t, err)
	assert.InDelta(t, SeaLevelPressure, float64(p0), 0.01)

	_, err = SeaLevelPressureAt(962.81, -1e6, 19.37)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = SeaLevelPressureAt(0, 100, 19.37)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func Test_CorrectPressure(t *testing.T) {
	got, err := CorrectPressure(1013.25, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, Hectopascals(1013.25), got)

	got, err = CorrectPressure(1013.25, 188.46, 20.55)
	require.NoError(t, err)
	assert.InDelta(t, 991.23, float64(got), 0.01)

	// higher target, lower pressure
	up, err := CorrectPressure(1000, 500, 10)
	require.NoError(t, err)
	down, err := CorrectPressure(1000, -500, 10)
	require.NoError(t, err)
	assert.Less(t, float64(up), 1000.0)
	assert.Greater(t, float64(down), 1000.0)

	_, err = CorrectPressure(1000, 1e6, 10)
	assert.ErrorIs(t, err, ErrInvalidInput)
	_, err = CorrectPressure(-1, 10, 10)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
