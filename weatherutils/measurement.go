package weatherutils

// TemperatureAndRelativeHumidity is a paired temperature and humidity reading,
// e.g. from a BME280 or DHT sensor.
type TemperatureAndRelativeHumidity struct {
	Temperature      Temperature
	RelativeHumidity RelativeHumidity
}

// AbsoluteHumidity converts the temperature to °C first if needed.
func (m TemperatureAndRelativeHumidity) AbsoluteHumidity() (AbsoluteHumidity, error) {
	c, err := m.Temperature.Celsius()
	if err != nil {
		return 0, err
	}
	return ComputeAbsoluteHumidity(c, m.RelativeHumidity)
}

// DewPoint returns the dew point [°C] of the measured air.
func (m TemperatureAndRelativeHumidity) DewPoint() (Celsius, error) {
	c, err := m.Temperature.Celsius()
	if err != nil {
		return 0, err
	}
	return ComputeDewPoint(c, m.RelativeHumidity)
}

// HeatIndex returns the apparent temperature [°C] of the measured air.
func (m TemperatureAndRelativeHumidity) HeatIndex() (Celsius, error) {
	c, err := m.Temperature.Celsius()
	if err != nil {
		return 0, err
	}
	return ComputeHeatIndex(c, m.RelativeHumidity)
}

// TemperatureAndPressure is a paired temperature and barometric pressure reading.
type TemperatureAndPressure struct {
	Temperature Temperature
	Pressure    Pressure
}

// Altitude converts the temperature to °C first if needed.
func (m TemperatureAndPressure) Altitude() (Meters, error) {
	c, err := m.Temperature.Celsius()
	if err != nil {
		return 0, err
	}
	return ComputeAltitude(m.Pressure, c)
}
