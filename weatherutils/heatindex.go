package weatherutils

import "math"

// NWS heat index regression (Rothfusz 1990), in °F.
const (
	heatIndexThreshold = 80.0 // below this the simple Steadman form is used [°F]

	hiC1 = -42.379
	hiC2 = 2.04901523
	hiC3 = 10.14333127
	hiC4 = -0.22475541
	hiC5 = -6.83783e-3
	hiC6 = -5.481717e-2
	hiC7 = 1.22874e-3
	hiC8 = 8.5282e-4
	hiC9 = -1.99e-6
)

// HeatIndexFahrenheit returns the apparent temperature [°F] for air at t [°F]
// with relative humidity rh [%], following the US National Weather Service
// procedure including its low- and high-humidity adjustments.
func HeatIndexFahrenheit(t Fahrenheit, rh RelativeHumidity) (Fahrenheit, error) {
	if err := checkTemperature(FahrenheitToCelsius(t)); err != nil {
		return 0, err
	}
	if err := rh.validate(); err != nil {
		return 0, err
	}

	T := float64(t)
	R := float64(rh)

	simple := 0.5 * (T + 61.0 + (T-68.0)*1.2 + R*0.094)
	if (simple+T)/2 < heatIndexThreshold {
		return Fahrenheit((simple + T) / 2), nil
	}

	hi := hiC1 + hiC2*T + hiC3*R + hiC4*T*R + hiC5*T*T + hiC6*R*R +
		hiC7*T*T*R + hiC8*T*R*R + hiC9*T*T*R*R

	switch {
	case R < 13 && T >= 80 && T <= 112:
		hi -= (13 - R) / 4 * math.Sqrt((17-math.Abs(T-95))/17)
	case R > 85 && T >= 80 && T <= 87:
		hi += (R - 85) / 10 * (87 - T) / 5
	}
	return Fahrenheit(hi), nil
}

// ComputeHeatIndex is HeatIndexFahrenheit for a temperature in °C.
func ComputeHeatIndex(t Celsius, rh RelativeHumidity) (Celsius, error) {
	if err := checkTemperature(t); err != nil {
		return 0, err
	}
	hi, err := HeatIndexFahrenheit(CelsiusToFahrenheit(t), rh)
	if err != nil {
		return 0, err
	}
	return FahrenheitToCelsius(hi), nil
}
