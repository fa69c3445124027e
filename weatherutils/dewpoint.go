package weatherutils

import "math"

// ComputeDewPoint returns the dew point [°C] of air at temperature t with
// relative humidity rh [%], inverting the Magnus formula used by
// SaturationVaporPressure. rh must be above zero: dry air has no dew point,
// and a humidity too small for the math backend to resolve is rejected too.
func ComputeDewPoint(t Celsius, rh RelativeHumidity) (Celsius, error) {
	if err := checkMagnusTemperature(t); err != nil {
		return 0, err
	}
	if err := rh.validate(); err != nil {
		return 0, err
	}
	if rh == 0 {
		return 0, invalid("relative humidity", 0, "dew point undefined for dry air")
	}

	T := float64(t)
	gamma := logFn(float64(rh)/100) + magnusA*T/(T+magnusB)
	td := magnusB * gamma / (magnusA - gamma)
	if math.IsNaN(td) || math.IsInf(td, 0) {
		return 0, invalid("relative humidity", float64(rh), "too small to resolve a dew point")
	}
	return Celsius(td), nil
}
