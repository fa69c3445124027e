package weatherutils

import (
	"fmt"
	"math"
	"strings"
)

//--------------------------------------
// Barometric pressure and altitude
//--------------------------------------

// Standard atmosphere constants.
const (
	SeaLevelPressure     = 1013.25   // [hPa]
	StandardTemperature  = 288.15    // [K]
	LapseRate            = 0.0065    // temperature lapse rate [K/m]
	UniversalGasConstant = 8.3144598 // [J/(mol·K)]
	StandardGravity      = 9.80665   // [m/s²]
	MolarMassDryAir      = 0.0289644 // [kg/mol]

	// BarometricExponent approximates g·M/(R·L) (≈5.2558) with the value used
	// by the hypsometric altitude formula.
	BarometricExponent = 5.257

	// specific gas constant of dry air [J/(kg·K)]
	dryAirGasConstant = 287.0
)

// Hectopascals is a pressure in hPa.
type Hectopascals float64

// Meters is a length (altitude or elevation difference) in m.
type Meters float64

// Feet returns the length in international feet.
func (m Meters) Feet() float64 {
	return float64(m) / 0.3048
}

// PressureUnit tags a Pressure value. The zero value is hPa.
type PressureUnit int

const (
	UnitHectopascal PressureUnit = iota
	UnitPascal
	UnitKilopascal
	UnitInchHg
	UnitMillimeterHg
)

// hPa per unit
var pressureFactors = map[PressureUnit]float64{
	UnitHectopascal:  1,
	UnitPascal:       0.01,
	UnitKilopascal:   10,
	UnitInchHg:       33.86389,
	UnitMillimeterHg: 1.33322387415,
}

var pressureUnitNames = map[PressureUnit]string{
	UnitHectopascal:  "hPa",
	UnitPascal:       "Pa",
	UnitKilopascal:   "kPa",
	UnitInchHg:       "inHg",
	UnitMillimeterHg: "mmHg",
}

func (u PressureUnit) String() string {
	if s, ok := pressureUnitNames[u]; ok {
		return s
	}
	return fmt.Sprintf("PressureUnit(%d)", int(u))
}

// ParsePressureUnit accepts the unit symbols printed by PressureUnit.String,
// case-insensitively.
func ParsePressureUnit(s string) (PressureUnit, error) {
	name := strings.TrimSpace(s)
	for u, n := range pressureUnitNames {
		if strings.EqualFold(n, name) {
			return u, nil
		}
	}
	return 0, fmt.Errorf("%w: unknown pressure unit %q", ErrInvalidInput, s)
}

// Pressure is a barometric pressure tagged with its unit.
type Pressure struct {
	Value float64
	Unit  PressureUnit
}

// PressureFromHectopascals tags p [hPa] as a Pressure.
func PressureFromHectopascals(p Hectopascals) Pressure {
	return Pressure{Value: float64(p), Unit: UnitHectopascal}
}

// Hectopascals normalises the pressure to hPa.
func (p Pressure) Hectopascals() (Hectopascals, error) {
	f, ok := pressureFactors[p.Unit]
	if !ok {
		return 0, invalid("pressure unit", float64(p.Unit), "unknown unit")
	}
	return Hectopascals(p.Value * f), nil
}

func (p Pressure) String() string {
	return fmt.Sprintf("%g %s", p.Value, p.Unit)
}

func checkPressure(p Hectopascals) error {
	v := float64(p)
	switch {
	case math.IsNaN(v) || math.IsInf(v, 0):
		return invalid("pressure", v, "must be finite")
	case v <= 0:
		return invalid("pressure", v, "must be positive")
	}
	return nil
}

// ComputeAltitude returns the altitude [m] at which the barometric pressure p
// is observed with air temperature t, relative to the standard sea-level
// pressure. Non-positive pressure is rejected.
//
//	h = ((P0/P)^(1/5.257) - 1) * (T + 273.15) / 0.0065
func ComputeAltitude(p Pressure, t Celsius) (Meters, error) {
	hpa, err := p.Hectopascals()
	if err != nil {
		return 0, err
	}
	if err := checkPressure(hpa); err != nil {
		return 0, err
	}
	if err := checkTemperature(t); err != nil {
		return 0, err
	}
	ratio := SeaLevelPressure / float64(hpa)
	return Meters((powFn(ratio, 1/BarometricExponent) - 1) * t.Kelvin() / LapseRate), nil
}

// SeaLevelPressureAt reduces the station pressure p [hPa], observed at altitude
// [m] with temperature t, to sea level. It is the inverse of ComputeAltitude.
func SeaLevelPressureAt(p Hectopascals, altitude Meters, t Celsius) (Hectopascals, error) {
	if err := checkPressure(p); err != nil {
		return 0, err
	}
	if err := checkTemperature(t); err != nil {
		return 0, err
	}
	base := 1 + float64(altitude)*LapseRate/t.Kelvin()
	if base <= 0 {
		return 0, invalid("altitude", float64(altitude), "below the reach of the barometric model")
	}
	return p * Hectopascals(powFn(base, BarometricExponent)), nil
}

// CorrectPressure moves a pressure reading p [hPa] by elevationGap [m] with
// air temperature t, assuming the standard lapse rate. A positive gap means
// the target point is higher.
//
//	P' = P * (1 - dz*0.0065/(T + 273.15))^5.257
func CorrectPressure(p Hectopascals, elevationGap Meters, t Celsius) (Hectopascals, error) {
	if err := checkPressure(p); err != nil {
		return 0, err
	}
	if err := checkTemperature(t); err != nil {
		return 0, err
	}
	base := 1 - float64(elevationGap)*LapseRate/t.Kelvin()
	if base <= 0 {
		return 0, invalid("elevation gap", float64(elevationGap), "beyond the reach of the barometric model")
	}
	return p * Hectopascals(powFn(base, BarometricExponent)), nil
}
