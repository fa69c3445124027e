package weatherutils

// MixingRatio is the mass of water vapour per mass of dry air [g/kg(DA)].
type MixingRatio float64

// ComputeMixingRatio returns the mixing ratio [g/kg(DA)] of air at temperature
// t, relative humidity rh [%] and pressure p.
func ComputeMixingRatio(t Celsius, rh RelativeHumidity, p Pressure) (MixingRatio, error) {
	hpa, err := p.Hectopascals()
	if err != nil {
		return 0, err
	}
	if err := checkPressure(hpa); err != nil {
		return 0, err
	}
	ah, err := ComputeAbsoluteHumidity(t, rh)
	if err != nil {
		return 0, err
	}

	// dry air density [kg/m³]
	rho := float64(hpa) * 100 / (dryAirGasConstant * t.Kelvin())
	return MixingRatio(float64(ah) / rho), nil
}
