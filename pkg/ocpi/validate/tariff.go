package validate

import (
	"fmt"

	ocpiErrors "chargekit/ocpicheck/pkg/ocpi/errors"
	"chargekit/ocpicheck/pkg/ocpi/types"
)

// Tariff applies the semantic rules for a Tariff object: code formats,
// price component ranges and restriction windows.
func Tariff(tariff types.Tariff) *ocpiErrors.ErrorList {
	errs := ocpiErrors.NewErrorList()

	if tariff.ID == "" {
		errs.Add(ocpiErrors.MissingRequiredField("id"))
	}
	if tariff.Currency == "" {
		errs.Add(ocpiErrors.MissingRequiredField("currency"))
	} else {
		checkCurrency(tariff.Currency, "currency", errs)
	}
	if tariff.CountryCode == "" {
		errs.Add(ocpiErrors.MissingRequiredField("country_code"))
	} else {
		checkCountry(tariff.CountryCode, "country_code", errs)
	}
	if tariff.PartyID == "" {
		errs.Add(ocpiErrors.MissingRequiredField("party_id"))
	}

	if tariff.StartDateTime != nil && tariff.EndDateTime != nil &&
		!tariff.EndDateTime.After(*tariff.StartDateTime) {
		errs.Add(ocpiErrors.InvalidValue("end_date_time", "Must be later than start_date_time"))
	}

	checkPrice(tariff.MinPrice, "min_price", errs)
	checkPrice(tariff.MaxPrice, "max_price", errs)

	for i, elem := range tariff.Elements {
		checkTariffElement(elem, fmt.Sprintf("elements[%d]", i), errs)
	}

	return errs
}

func checkPrice(price *types.Price, prefix string, errs *ocpiErrors.ErrorList) {
	if price == nil {
		return
	}
	if price.ExclVat < 0 {
		errs.Add(ocpiErrors.InvalidValue(prefix+".excl_vat", "Must be greater than or equal to 0"))
	}
	if price.InclVat != nil && *price.InclVat < 0 {
		errs.Add(ocpiErrors.InvalidValue(prefix+".incl_vat", "Must be greater than or equal to 0"))
	}
}

func checkTariffElement(elem types.TariffElement, prefix string, errs *ocpiErrors.ErrorList) {
	for j, comp := range elem.PriceComponents {
		path := fmt.Sprintf("%s.price_components[%d]", prefix, j)
		if comp.Price < 0 {
			errs.Add(ocpiErrors.InvalidValue(path+".price", "Must be greater than or equal to 0"))
		}
		if comp.StepSize <= 0 {
			errs.Add(ocpiErrors.InvalidValue(path+".step_size", "Must be greater than 0"))
		}
		if comp.Vat != nil && (*comp.Vat < 0 || *comp.Vat > 100) {
			errs.Add(ocpiErrors.InvalidValue(path+".vat", "Must be between 0 and 100"))
		}
	}

	if elem.Restrictions != nil {
		checkRestrictions(*elem.Restrictions, prefix+".restrictions", errs)
	}
}

// checkRestrictions validates a restriction window. Ordering violations
// are attributed to the max_* bound, the field a caller would adjust.
func checkRestrictions(r types.TariffRestrictions, prefix string, errs *ocpiErrors.ErrorList) {
	for _, tod := range []struct {
		field string
		value string
	}{
		{"start_time", r.StartTime},
		{"end_time", r.EndTime},
	} {
		if tod.value != "" && !timeOfDayPattern.MatchString(tod.value) {
			errs.Add(ocpiErrors.InvalidValue(prefix+"."+tod.field, "Invalid time format. Must be in HH:mm format"))
		}
	}

	if r.StartDate != nil && r.EndDate != nil && !r.EndDate.After(*r.StartDate) {
		errs.Add(ocpiErrors.InvalidValue(prefix+".end_date", "Must be later than start_date"))
	}

	if r.MinKwh != nil && *r.MinKwh < 0 {
		errs.Add(ocpiErrors.InvalidValue(prefix+".min_kwh", "Must be greater than or equal to 0"))
	}
	if r.MaxKwh != nil && *r.MaxKwh < 0 {
		errs.Add(ocpiErrors.InvalidValue(prefix+".max_kwh", "Must be greater than or equal to 0"))
	}
	if r.MinPower != nil && *r.MinPower < 0 {
		errs.Add(ocpiErrors.InvalidValue(prefix+".min_power", "Must be greater than or equal to 0"))
	}
	if r.MaxPower != nil && *r.MaxPower < 0 {
		errs.Add(ocpiErrors.InvalidValue(prefix+".max_power", "Must be greater than or equal to 0"))
	}
	if r.MinDuration != nil && *r.MinDuration < 0 {
		errs.Add(ocpiErrors.InvalidValue(prefix+".min_duration", "Must be greater than or equal to 0"))
	}
	if r.MaxDuration != nil && *r.MaxDuration < 0 {
		errs.Add(ocpiErrors.InvalidValue(prefix+".max_duration", "Must be greater than or equal to 0"))
	}

	// Equal bounds are a valid (empty) window; only an inverted range is
	// an error.
	if r.MinKwh != nil && r.MaxKwh != nil && *r.MinKwh > *r.MaxKwh {
		errs.Add(ocpiErrors.InvalidValue(prefix+".max_kwh", "Must be greater than min_kwh"))
	}
	if r.MinPower != nil && r.MaxPower != nil && *r.MinPower > *r.MaxPower {
		errs.Add(ocpiErrors.InvalidValue(prefix+".max_power", "Must be greater than min_power"))
	}
	if r.MinDuration != nil && r.MaxDuration != nil && *r.MinDuration > *r.MaxDuration {
		errs.Add(ocpiErrors.InvalidValue(prefix+".max_duration", "Must be greater than min_duration"))
	}
}
