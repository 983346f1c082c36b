package validate

import (
	"regexp"
	"time"
	// Time zone identifiers are validated against the embedded database
	// so results do not depend on the host's zoneinfo installation.
	_ "time/tzdata"

	ocpiErrors "chargekit/ocpicheck/pkg/ocpi/errors"
	"chargekit/ocpicheck/pkg/ocpi/types"
)

var (
	currencyPattern  = regexp.MustCompile(`^[A-Z]{3}$`)
	countryPattern   = regexp.MustCompile(`^[A-Z]{2}$`)
	languagePattern  = regexp.MustCompile(`^[a-z]{2}$`)
	rfidUIDPattern   = regexp.MustCompile(`^[A-Fa-f0-9]{8,24}$`)
	emailPattern     = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	timeOfDayPattern = regexp.MustCompile(`^([01]?[0-9]|2[0-3]):[0-5][0-9]$`)
)

// checkCurrency reports a non-empty currency code that is not three
// uppercase letters.
func checkCurrency(code, path string, errs *ocpiErrors.ErrorList) {
	if code != "" && !currencyPattern.MatchString(code) {
		errs.Add(ocpiErrors.InvalidValue(path, "Invalid ISO 4217 currency code"))
	}
}

// checkCountry reports a non-empty country code that is not two uppercase
// letters.
func checkCountry(code, path string, errs *ocpiErrors.ErrorList) {
	if code != "" && !countryPattern.MatchString(code) {
		errs.Add(ocpiErrors.InvalidValue(path, "Invalid ISO 3166-1 alpha-2 country code"))
	}
}

// checkLanguage reports a non-empty language tag that is not two
// lowercase letters.
func checkLanguage(code, path string, errs *ocpiErrors.ErrorList) {
	if code != "" && !languagePattern.MatchString(code) {
		errs.Add(ocpiErrors.InvalidValue(path, "Invalid ISO 639-1 language code"))
	}
}

// checkTimeZone reports a non-empty IANA identifier the zone database
// does not know.
func checkTimeZone(tz, path string, errs *ocpiErrors.ErrorList) {
	if tz == "" {
		return
	}
	if _, err := time.LoadLocation(tz); err != nil {
		errs.Add(ocpiErrors.InvalidValue(path, "Invalid time zone identifier"))
	}
}

// checkCoordinates verifies both axes parse and fall inside their
// ranges. Empty strings are skipped; the structural pass already reported
// them as missing.
func checkCoordinates(geo types.GeoLocation, prefix string, errs *ocpiErrors.ErrorList) {
	if geo.Latitude != "" {
		if lat, ok := geo.Lat(); !ok {
			errs.Add(ocpiErrors.InvalidValue(prefix+".latitude", "Must be a decimal number"))
		} else if lat < -90 || lat > 90 {
			errs.Add(ocpiErrors.InvalidValue(prefix+".latitude", "Must be between -90 and 90"))
		}
	}
	if geo.Longitude != "" {
		if lon, ok := geo.Lon(); !ok {
			errs.Add(ocpiErrors.InvalidValue(prefix+".longitude", "Must be a decimal number"))
		} else if lon < -180 || lon > 180 {
			errs.Add(ocpiErrors.InvalidValue(prefix+".longitude", "Must be between -180 and 180"))
		}
	}
}
