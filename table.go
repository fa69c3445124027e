package main

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/udawtr/weatherutils-go/weatherutils"
)

var tableQuantities = []string{"fahrenheit", "humidity", "dewpoint", "altitude"}

// tableRow computes one CSV row from the swept input x.
type tableRow func(x float64) (float64, error)

// runTable sweeps the input of one formula over steps evenly spaced values
// between from and to, writing CSV. Rows the formula rejects are written as NaN.
func runTable(out *output, quantity string, from, to float64, steps int, fixed weatherutils.Celsius) error {
	if steps < 2 {
		return fmt.Errorf("%w: steps must be at least 2, got %d", weatherutils.ErrInvalidInput, steps)
	}

	var header string
	var row tableRow
	switch quantity {
	case "fahrenheit":
		header = "celsius,fahrenheit"
		row = func(x float64) (float64, error) {
			return float64(weatherutils.CelsiusToFahrenheit(weatherutils.Celsius(x))), nil
		}
	case "humidity":
		header = "rh,absolute_humidity"
		row = func(x float64) (float64, error) {
			ah, err := weatherutils.ComputeAbsoluteHumidity(fixed, weatherutils.RelativeHumidity(x))
			return float64(ah), err
		}
	case "dewpoint":
		header = "rh,dew_point"
		row = func(x float64) (float64, error) {
			td, err := weatherutils.ComputeDewPoint(fixed, weatherutils.RelativeHumidity(x))
			return float64(td), err
		}
	case "altitude":
		header = "pressure_hpa,altitude_m"
		row = func(x float64) (float64, error) {
			h, err := weatherutils.ComputeAltitude(weatherutils.PressureFromHectopascals(weatherutils.Hectopascals(x)), fixed)
			return float64(h), err
		}
	default:
		return fmt.Errorf("unknown quantity %q", quantity)
	}

	xs := floats.Span(make([]float64, steps), from, to)

	out.buf.WriteString(header)
	out.buf.WriteString("\n")
	for _, x := range xs {
		y, err := row(x)
		cell := "NaN"
		switch {
		case err == nil:
			cell = out.format(y)
		case errors.Is(err, weatherutils.ErrInvalidInput):
			logger.Warnf("%s at %g: %v", quantity, x, err)
		default:
			return err
		}
		out.buf.WriteString(out.format(x))
		out.buf.WriteString(",")
		out.buf.WriteString(cell)
		out.buf.WriteString("\n")
	}
	logger.Infof("table %s: %d rows", quantity, len(xs))
	return nil
}
