package validate

import (
	"fmt"

	ocpiErrors "chargekit/ocpicheck/pkg/ocpi/errors"
	"chargekit/ocpicheck/pkg/ocpi/types"
)

// Location applies the semantic rules for a full Location object. The
// value is assumed to have passed the structural pass, so string fields
// that decoded empty were genuinely present-but-empty.
func Location(loc types.Location) *ocpiErrors.ErrorList {
	errs := ocpiErrors.NewErrorList()

	if loc.ID == "" {
		errs.Add(ocpiErrors.MissingRequiredField("id"))
	}
	checkCountry(loc.Country, "country", errs)
	checkCoordinates(loc.Coordinates, "coordinates", errs)
	checkTimeZone(loc.TimeZone, "time_zone", errs)

	for i, text := range loc.Directions {
		if text.Localized() {
			checkLanguage(text.Language, fmt.Sprintf("directions[%d].language", i), errs)
		}
	}

	for i, evse := range loc.EVSEs {
		checkEVSE(evse, fmt.Sprintf("evses[%d]", i), errs)
	}

	return errs
}

// checkEVSE validates one EVSE and its connectors under the given path
// prefix. Shared with the Session and CDR validators, which carry a
// single optional EVSE.
func checkEVSE(evse types.EVSE, prefix string, errs *ocpiErrors.ErrorList) {
	if evse.UID == "" {
		errs.Add(ocpiErrors.MissingRequiredField(prefix + ".uid"))
	}
	if evse.Coordinates != nil {
		checkCoordinates(*evse.Coordinates, prefix+".coordinates", errs)
	}
	for i, text := range evse.Directions {
		if text.Localized() {
			checkLanguage(text.Language, fmt.Sprintf("%s.directions[%d].language", prefix, i), errs)
		}
	}
	for i, conn := range evse.Connectors {
		checkConnector(conn, fmt.Sprintf("%s.connectors[%d]", prefix, i), errs)
	}
}

// checkEmbeddedLocation validates the abbreviated location carried
// inside Session and CDR payloads.
func checkEmbeddedLocation(loc types.Location, prefix string, errs *ocpiErrors.ErrorList) {
	if loc.ID == "" {
		errs.Add(ocpiErrors.MissingRequiredField(prefix + ".id"))
	}
	checkCountry(loc.Country, prefix+".country", errs)
	checkCoordinates(loc.Coordinates, prefix+".coordinates", errs)
	checkTimeZone(loc.TimeZone, prefix+".time_zone", errs)
}

// checkConnector validates one connector's electrical limits under the
// given path prefix.
func checkConnector(conn types.Connector, prefix string, errs *ocpiErrors.ErrorList) {
	if conn.ID == "" {
		errs.Add(ocpiErrors.MissingRequiredField(prefix + ".id"))
	}
	if conn.MaxVoltage <= 0 {
		errs.Add(ocpiErrors.InvalidValue(prefix+".max_voltage", "Must be greater than 0"))
	}
	if conn.MaxAmperage <= 0 {
		errs.Add(ocpiErrors.InvalidValue(prefix+".max_amperage", "Must be greater than 0"))
	}
	if conn.MaxElectricPower < 0 {
		errs.Add(ocpiErrors.InvalidValue(prefix+".max_electric_power", "Must be greater than 0"))
	}
}
