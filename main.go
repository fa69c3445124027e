// weatherutils
package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/akamensky/argparse"
	"github.com/hhkbp2/go-logging"
	"gonum.org/v1/gonum/floats/scalar"

	"github.com/udawtr/weatherutils-go/internal/config"
	"github.com/udawtr/weatherutils-go/internal/mathx"
	"github.com/udawtr/weatherutils-go/weatherutils"
)

var logger = logging.GetLogger("weatherutils")

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// measurement flags shared by the humidity-style subcommands
type thFlags struct {
	temperature *float64
	rh          *float64
	unit        *string
}

func addTHFlags(cmd *argparse.Command) thFlags {
	return thFlags{
		temperature: cmd.Float("t", "temperature", &argparse.Options{
			Required: true,
			Help:     "Air temperature"}),
		rh: cmd.Float("r", "rh", &argparse.Options{
			Required: true,
			Help:     "Relative humidity [%]"}),
		unit: cmd.Selector("u", "unit", []string{"C", "F"}, &argparse.Options{
			Help: "Unit of --temperature (default from config, C)"}),
	}
}

func run(args []string, stdout io.Writer, stderr io.Writer) int {
	parser := argparse.NewParser("weatherutils", "Converts between weather-related physical quantities")

	logLevel := parser.Selector("", "log", config.LogLevels, &argparse.Options{
		Help: "Log level (default from config, ERROR)"})

	configPath := parser.String("c", "config", &argparse.Options{
		Help: "YAML settings file"})

	precision := parser.Int("", "precision", &argparse.Options{
		Default: -1,
		Help:    "Decimals printed for results (default from config, 2)"})

	filename := parser.String("o", "output", &argparse.Options{
		Default: "",
		Help:    "Output file path"})

	convertCmd := parser.NewCommand("convert", "Converts a temperature between °C and °F")
	convValue := convertCmd.Float("v", "value", &argparse.Options{
		Required: true,
		Help:     "Temperature to convert"})
	convFrom := convertCmd.Selector("f", "from", []string{"C", "F"}, &argparse.Options{
		Default: "C",
		Help:    "Unit of --value"})

	humidityCmd := parser.NewCommand("humidity", "Absolute humidity [g/m³] from temperature and relative humidity")
	humidityFlags := addTHFlags(humidityCmd)

	dewpointCmd := parser.NewCommand("dewpoint", "Dew point from temperature and relative humidity")
	dewpointFlags := addTHFlags(dewpointCmd)

	heatindexCmd := parser.NewCommand("heatindex", "Heat index from temperature and relative humidity")
	heatindexFlags := addTHFlags(heatindexCmd)

	altitudeCmd := parser.NewCommand("altitude", "Altitude [m] from barometric pressure and temperature")
	altPressure := altitudeCmd.Float("p", "pressure", &argparse.Options{
		Required: true,
		Help:     "Barometric pressure"})
	altPressureUnit := altitudeCmd.Selector("", "pressure-unit", []string{"hPa", "Pa", "kPa", "inHg", "mmHg"}, &argparse.Options{
		Help: "Unit of --pressure (default from config, hPa)"})
	altTemperature := altitudeCmd.Float("t", "temperature", &argparse.Options{
		Required: true,
		Help:     "Air temperature"})
	altUnit := altitudeCmd.Selector("u", "unit", []string{"C", "F"}, &argparse.Options{
		Help: "Unit of --temperature (default from config, C)"})

	tableCmd := parser.NewCommand("table", "Prints a CSV sweep of one formula")
	tableQuantity := tableCmd.Selector("q", "quantity", tableQuantities, &argparse.Options{
		Required: true,
		Help:     "Formula to sweep"})
	tableFrom := tableCmd.Float("", "from", &argparse.Options{
		Required: true,
		Help:     "First value of the swept input"})
	tableTo := tableCmd.Float("", "to", &argparse.Options{
		Required: true,
		Help:     "Last value of the swept input"})
	tableSteps := tableCmd.Int("n", "steps", &argparse.Options{
		Default: 11,
		Help:    "Number of rows"})
	tableFixed := tableCmd.Float("x", "fixed", &argparse.Options{
		Default: 20.0,
		Help:    "Fixed temperature [°C] for humidity, dewpoint and altitude sweeps"})

	if err := parser.Parse(args); err != nil {
		fmt.Fprint(stderr, parser.Usage(err))
		return 2
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	level := cfg.LogLevel
	if *logLevel != "" {
		level = *logLevel
	}
	setLogLevel(level)
	logger.Debugf("math backend: %s", mathx.Backend)

	prec := cfg.Precision
	if *precision != -1 {
		if *precision < 0 || *precision > config.MaxPrecision {
			fmt.Fprintf(stderr, "Error: --precision %d out of range 0..%d\n", *precision, config.MaxPrecision)
			return 1
		}
		prec = *precision
	}
	out := &output{precision: prec}

	tempUnit := func(flag string) weatherutils.TemperatureUnit {
		if flag == "" {
			return cfg.TemperatureUnitValue()
		}
		u, _ := weatherutils.ParseTemperatureUnit(flag)
		return u
	}

	switch {
	case convertCmd.Happened():
		err = runConvert(out, *convValue, *convFrom)
	case humidityCmd.Happened():
		err = runHumidity(out, humidityFlags.measurement(tempUnit))
	case dewpointCmd.Happened():
		err = runDewPoint(out, dewpointFlags.measurement(tempUnit))
	case heatindexCmd.Happened():
		err = runHeatIndex(out, heatindexFlags.measurement(tempUnit))
	case altitudeCmd.Happened():
		pu := cfg.PressureUnitValue()
		if *altPressureUnit != "" {
			pu, _ = weatherutils.ParsePressureUnit(*altPressureUnit)
		}
		err = runAltitude(out, weatherutils.TemperatureAndPressure{
			Temperature: weatherutils.Temperature{Value: *altTemperature, Unit: tempUnit(*altUnit)},
			Pressure:    weatherutils.Pressure{Value: *altPressure, Unit: pu},
		})
	case tableCmd.Happened():
		err = runTable(out, *tableQuantity, *tableFrom, *tableTo, *tableSteps, weatherutils.Celsius(*tableFixed))
	default:
		fmt.Fprint(stderr, parser.Usage(nil))
		return 2
	}

	if err != nil {
		logger.Errorf("%v", err)
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}

	if *filename == "" {
		if _, err := stdout.Write(out.buf.Bytes()); err != nil {
			logger.Errorf("%v", err)
			fmt.Fprintln(stderr, "Error:", err)
			return 1
		}
	} else {
		logger.Infof("saving: %s", *filename)
		if err := os.WriteFile(*filename, out.buf.Bytes(), 0o644); err != nil {
			logger.Errorf("%v", err)
			fmt.Fprintln(stderr, "Error:", err)
			return 1
		}
	}

	logger.Infof("done")
	return 0
}

func (f thFlags) measurement(unit func(string) weatherutils.TemperatureUnit) weatherutils.TemperatureAndRelativeHumidity {
	return weatherutils.TemperatureAndRelativeHumidity{
		Temperature:      weatherutils.Temperature{Value: *f.temperature, Unit: unit(*f.unit)},
		RelativeHumidity: weatherutils.RelativeHumidity(*f.rh),
	}
}

func setLogLevel(level string) {
	switch level {
	case "DEBUG":
		logger.SetLevel(logging.LevelDebug)
	case "INFO":
		logger.SetLevel(logging.LevelInfo)
	case "WARN":
		logger.SetLevel(logging.LevelWarn)
	case "ERROR":
		logger.SetLevel(logging.LevelError)
	case "CRITICAL":
		logger.SetLevel(logging.LevelCritical)
	}
}

// output collects results before they are written, rounding to precision.
type output struct {
	buf       bytes.Buffer
	precision int
}

func (o *output) format(v float64) string {
	return strconv.FormatFloat(scalar.Round(v, o.precision), 'f', -1, 64)
}

func (o *output) line(v float64, unit string) {
	o.buf.WriteString(o.format(v))
	if unit != "" {
		o.buf.WriteString(" ")
		o.buf.WriteString(unit)
	}
	o.buf.WriteString("\n")
}

func runConvert(out *output, value float64, from string) error {
	unit, err := weatherutils.ParseTemperatureUnit(from)
	if err != nil {
		return err
	}
	t := weatherutils.Temperature{Value: value, Unit: unit}
	target := weatherutils.UnitFahrenheit
	if unit == weatherutils.UnitFahrenheit {
		target = weatherutils.UnitCelsius
	}
	conv, err := t.In(target)
	if err != nil {
		return err
	}
	logger.Debugf("convert %s -> %s", t, conv)
	out.line(conv.Value, conv.Unit.String())
	return nil
}

func runHumidity(out *output, m weatherutils.TemperatureAndRelativeHumidity) error {
	ah, err := m.AbsoluteHumidity()
	if err != nil {
		return err
	}
	logger.Debugf("absolute humidity at %s, %g %%: %g", m.Temperature, float64(m.RelativeHumidity), float64(ah))
	out.line(float64(ah), "g/m³")
	return nil
}

func runDewPoint(out *output, m weatherutils.TemperatureAndRelativeHumidity) error {
	td, err := m.DewPoint()
	if err != nil {
		return err
	}
	return lineIn(out, td, m.Temperature.Unit)
}

func runHeatIndex(out *output, m weatherutils.TemperatureAndRelativeHumidity) error {
	hi, err := m.HeatIndex()
	if err != nil {
		return err
	}
	return lineIn(out, hi, m.Temperature.Unit)
}

// lineIn prints a °C result in the unit the input was given in.
func lineIn(out *output, c weatherutils.Celsius, unit weatherutils.TemperatureUnit) error {
	t, err := weatherutils.TemperatureFromCelsius(c).In(unit)
	if err != nil {
		return err
	}
	out.line(t.Value, t.Unit.String())
	return nil
}

func runAltitude(out *output, m weatherutils.TemperatureAndPressure) error {
	h, err := m.Altitude()
	if err != nil {
		return err
	}
	logger.Debugf("altitude at %s, %s: %g m", m.Pressure, m.Temperature, float64(h))
	out.line(float64(h), "m")
	return nil
}
