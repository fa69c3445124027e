package weatherutils

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats/scalar"
)

//--------------------------------------
// Temperature
//--------------------------------------

// ZeroCelsius is 0 °C expressed in kelvin.
const ZeroCelsius = 273.15

// Celsius is a temperature in °C.
type Celsius float64

// Fahrenheit is a temperature in °F.
type Fahrenheit float64

// CelsiusToFahrenheit converts a temperature in °C to °F.
// No physical bounds are checked.
func CelsiusToFahrenheit(c Celsius) Fahrenheit {
	return Fahrenheit(float64(c)*9/5 + 32)
}

// FahrenheitToCelsius converts a temperature in °F to °C.
// No physical bounds are checked.
func FahrenheitToCelsius(f Fahrenheit) Celsius {
	return Celsius((float64(f) - 32) * 5 / 9)
}

// Fahrenheit converts c to °F.
func (c Celsius) Fahrenheit() Fahrenheit {
	return CelsiusToFahrenheit(c)
}

// Kelvin returns the absolute temperature [K].
func (c Celsius) Kelvin() float64 {
	return float64(c) + ZeroCelsius
}

// Celsius converts f to °C.
func (f Fahrenheit) Celsius() Celsius {
	return FahrenheitToCelsius(f)
}

// TemperatureUnit tags a Temperature whose unit is only known at runtime.
// The zero value is Celsius.
type TemperatureUnit int

const (
	UnitCelsius TemperatureUnit = iota
	UnitFahrenheit
)

func (u TemperatureUnit) String() string {
	switch u {
	case UnitCelsius:
		return "°C"
	case UnitFahrenheit:
		return "°F"
	default:
		return fmt.Sprintf("TemperatureUnit(%d)", int(u))
	}
}

// ParseTemperatureUnit accepts "C", "°C", "celsius", "F", "°F" or "fahrenheit"
// in any case.
func ParseTemperatureUnit(s string) (TemperatureUnit, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "c", "°c", "celsius":
		return UnitCelsius, nil
	case "f", "°f", "fahrenheit":
		return UnitFahrenheit, nil
	default:
		return 0, fmt.Errorf("%w: unknown temperature unit %q", ErrInvalidInput, s)
	}
}

// Temperature is a value tagged with its unit.
type Temperature struct {
	Value float64
	Unit  TemperatureUnit
}

// TemperatureFromCelsius tags c as a Temperature in °C.
func TemperatureFromCelsius(c Celsius) Temperature {
	return Temperature{Value: float64(c), Unit: UnitCelsius}
}

// TemperatureFromFahrenheit tags f as a Temperature in °F.
func TemperatureFromFahrenheit(f Fahrenheit) Temperature {
	return Temperature{Value: float64(f), Unit: UnitFahrenheit}
}

// Celsius returns the temperature in °C.
func (t Temperature) Celsius() (Celsius, error) {
	switch t.Unit {
	case UnitCelsius:
		return Celsius(t.Value), nil
	case UnitFahrenheit:
		return FahrenheitToCelsius(Fahrenheit(t.Value)), nil
	default:
		return 0, invalid("temperature unit", float64(t.Unit), "unknown unit")
	}
}

// Fahrenheit returns the temperature in °F.
func (t Temperature) Fahrenheit() (Fahrenheit, error) {
	switch t.Unit {
	case UnitCelsius:
		return CelsiusToFahrenheit(Celsius(t.Value)), nil
	case UnitFahrenheit:
		return Fahrenheit(t.Value), nil
	default:
		return 0, invalid("temperature unit", float64(t.Unit), "unknown unit")
	}
}

// In returns a new Temperature expressed in unit.
func (t Temperature) In(unit TemperatureUnit) (Temperature, error) {
	switch unit {
	case UnitCelsius:
		c, err := t.Celsius()
		return TemperatureFromCelsius(c), err
	case UnitFahrenheit:
		f, err := t.Fahrenheit()
		return TemperatureFromFahrenheit(f), err
	default:
		return Temperature{}, invalid("temperature unit", float64(unit), "unknown unit")
	}
}

// ApproxEqual reports whether t and o describe the same temperature within
// tol, applied both as absolute and relative tolerance in °C.
func (t Temperature) ApproxEqual(o Temperature, tol float64) bool {
	a, err := t.Celsius()
	if err != nil {
		return false
	}
	b, err := o.Celsius()
	if err != nil {
		return false
	}
	return scalar.EqualWithinAbsOrRel(float64(a), float64(b), tol, tol)
}

func (t Temperature) String() string {
	return fmt.Sprintf("%g %s", t.Value, t.Unit)
}

// checkTemperature guards every physical formula. Plain unit conversion
// stays unchecked.
func checkTemperature(c Celsius) error {
	switch {
	case math.IsNaN(float64(c)) || math.IsInf(float64(c), 0):
		return invalid("temperature", float64(c), "must be finite")
	case c.Kelvin() <= 0:
		return invalid("temperature", float64(c), "at or below absolute zero")
	}
	return nil
}

// CorrectTemperature moves a temperature reading by elevationGap [m] using the
// standard lapse rate. A positive gap means the target point is higher.
func CorrectTemperature(t Celsius, elevationGap Meters) Celsius {
	return t - Celsius(float64(elevationGap)*LapseRate)
}
