// Package weatherutils converts between weather-related physical quantities.
//
// Every function is a pure closed-form formula: temperature conversion
// (°C/°F), absolute humidity, dew point and heat index from temperature and
// relative humidity, and altitude from barometric pressure and temperature.
// Inputs that violate a physical precondition are rejected with an error
// wrapping ErrInvalidInput; nothing is clamped.
//
// Units: temperature in °C unless the type says otherwise, relative humidity
// in percent [0, 100], pressure in hPa, absolute humidity in g/m³, altitude
// in m.
package weatherutils
