package types

import (
	"strconv"
	"time"
)

// GeoLocation holds coordinates in their OCPI wire form: decimal strings.
// The string representation is retained for round-trip fidelity; the
// parsed-float accessors are used for range checks.
type GeoLocation struct {
	Latitude  string
	Longitude string
}

// Lat returns the parsed latitude. ok is false when the string is not a
// decimal number.
func (g GeoLocation) Lat() (float64, bool) {
	v, err := strconv.ParseFloat(g.Latitude, 64)
	return v, err == nil
}

// Lon returns the parsed longitude. ok is false when the string is not a
// decimal number.
func (g GeoLocation) Lon() (float64, bool) {
	v, err := strconv.ParseFloat(g.Longitude, 64)
	return v, err == nil
}

// DisplayText is a two-variant union: OCPI encodes it either as a bare
// string or as a {language, text} pair. A bare string decodes with an
// empty Language.
type DisplayText struct {
	Language string
	Text     string
}

// Localized reports whether the value carried an explicit language tag.
func (d DisplayText) Localized() bool {
	return d.Language != ""
}

// AuthMethod is the method used to authorize a charging session.
type AuthMethod string

const (
	AuthMethodAuthRequest AuthMethod = "AUTH_REQUEST"
	AuthMethodCommand     AuthMethod = "COMMAND"
	AuthMethodWhitelist   AuthMethod = "WHITELIST"
)

// ChargingPeriod is a time slice of a session or CDR with its measured
// dimensions. Periods within one parent must have strictly increasing
// StartDateTime.
type ChargingPeriod struct {
	StartDateTime time.Time
	Dimensions    []Dimension
	TariffID      string
}

// DimensionType identifies what a Dimension measures. Unknown values are
// carried through for forward compatibility; validators apply no range
// rule to them.
type DimensionType string

const (
	DimensionCurrent      DimensionType = "CURRENT"
	DimensionEnergy       DimensionType = "ENERGY"
	DimensionEnergyExport DimensionType = "ENERGY_EXPORT"
	DimensionEnergyImport DimensionType = "ENERGY_IMPORT"
	DimensionMaxCurrent   DimensionType = "MAX_CURRENT"
	DimensionMinCurrent   DimensionType = "MIN_CURRENT"
	DimensionMaxPower     DimensionType = "MAX_POWER"
	DimensionMinPower     DimensionType = "MIN_POWER"
	DimensionParkingTime  DimensionType = "PARKING_TIME"
	DimensionPower        DimensionType = "POWER"
	DimensionPowerFactor  DimensionType = "POWER_FACTOR"
	DimensionSoC          DimensionType = "SOC"
	DimensionTime         DimensionType = "TIME"
	DimensionVoltage      DimensionType = "VOLTAGE"

	// DimensionFlat is permitted in CDRs only.
	DimensionFlat DimensionType = "FLAT"
)

// Dimension is a typed, quantified measurement attached to a charging
// period.
type Dimension struct {
	Type   DimensionType
	Volume float64
}
