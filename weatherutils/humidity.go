package weatherutils

import "math"

//--------------------------------------
// Humidity
//--------------------------------------

// Magnus formula coefficients (Bolton 1980), valid to about 0.1% for -30..35 °C.
const (
	magnusE0 = 6.112 // saturation vapour pressure at 0 °C [hPa]
	magnusA  = 17.67
	magnusB  = 243.5 // [°C]

	// 100 * Mw / R [g·K/J] with Mw = 18.01528 g/mol, scaled for hPa and %.
	absoluteHumidityFactor = 2.1674
)

// RelativeHumidity in percent, 0 to 100.
type RelativeHumidity float64

// AbsoluteHumidity is the mass of water vapour per volume of air [g/m³].
type AbsoluteHumidity float64

func (rh RelativeHumidity) validate() error {
	v := float64(rh)
	switch {
	case math.IsNaN(v):
		return invalid("relative humidity", v, "not a number")
	case v < 0 || v > 100:
		return invalid("relative humidity", v, "must be within 0..100 %")
	}
	return nil
}

// checkMagnusTemperature rejects temperatures at or below the pole of the
// Magnus exponent (-243.5 °C) in addition to the checkTemperature rules.
func checkMagnusTemperature(t Celsius) error {
	if err := checkTemperature(t); err != nil {
		return err
	}
	if float64(t) <= -magnusB {
		return invalid("temperature", float64(t), "below the range of the Magnus formula")
	}
	return nil
}

// SaturationVaporPressure returns the saturation vapour pressure over water [hPa]
// at temperature t by the Magnus formula. The result is meaningless at or
// below -243.5 °C; the checked callers reject such temperatures.
func SaturationVaporPressure(t Celsius) Hectopascals {
	T := float64(t)
	return Hectopascals(magnusE0 * expFn(magnusA*T/(T+magnusB)))
}

// ActualVaporPressure returns the partial pressure of water vapour [hPa].
func ActualVaporPressure(t Celsius, rh RelativeHumidity) (Hectopascals, error) {
	if err := checkMagnusTemperature(t); err != nil {
		return 0, err
	}
	if err := rh.validate(); err != nil {
		return 0, err
	}
	return SaturationVaporPressure(t) * Hectopascals(rh) / 100, nil
}

// ComputeAbsoluteHumidity returns the absolute humidity [g/m³] of air at
// temperature t with relative humidity rh [%].
func ComputeAbsoluteHumidity(t Celsius, rh RelativeHumidity) (AbsoluteHumidity, error) {
	if err := checkMagnusTemperature(t); err != nil {
		return 0, err
	}
	if err := rh.validate(); err != nil {
		return 0, err
	}
	es := float64(SaturationVaporPressure(t))
	return AbsoluteHumidity(es * float64(rh) * absoluteHumidityFactor / t.Kelvin()), nil
}
