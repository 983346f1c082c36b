package validate

import (
	ocpiErrors "chargekit/ocpicheck/pkg/ocpi/errors"
	"chargekit/ocpicheck/pkg/ocpi/types"
)

// Session applies the semantic rules for a Session object, including the
// status-dependent presence rules for end_date_time, total_cost and kwh.
func Session(sess types.Session) *ocpiErrors.ErrorList {
	errs := ocpiErrors.NewErrorList()

	if sess.ID == "" {
		errs.Add(ocpiErrors.MissingRequiredField("id"))
	}
	if sess.AuthID == "" {
		errs.Add(ocpiErrors.MissingRequiredField("auth_id"))
	}
	if sess.Kwh < 0 {
		errs.Add(ocpiErrors.InvalidValue("kwh", "Must be greater than or equal to 0"))
	}
	if sess.Currency == "" {
		errs.Add(ocpiErrors.MissingRequiredField("currency"))
	} else {
		checkCurrency(sess.Currency, "currency", errs)
	}
	checkEmbeddedLocation(sess.Location, "location", errs)

	if sess.EVSE != nil {
		checkEVSE(*sess.EVSE, "evse", errs)
	}
	if sess.Connector != nil {
		checkConnector(*sess.Connector, "connector", errs)
	}

	switch sess.Status {
	case types.SessionCompleted:
		if sess.EndDateTime == nil {
			errs.Add(ocpiErrors.MissingRequiredField("end_date_time for COMPLETED session"))
		}
		if sess.TotalCost == nil {
			errs.Add(ocpiErrors.MissingRequiredField("total_cost for COMPLETED session"))
		}
	case types.SessionReserved:
		if sess.Kwh != 0 {
			errs.Add(ocpiErrors.InvalidValue("kwh", "Should be 0 for RESERVED session"))
		}
	case types.SessionActive:
		if sess.EndDateTime != nil {
			errs.Add(ocpiErrors.InvalidValue("end_date_time", "Should not be present for ACTIVE session"))
		}
	case types.SessionPending:
		if sess.EndDateTime != nil {
			errs.Add(ocpiErrors.InvalidValue("end_date_time", "Should not be present for PENDING session"))
		}
	}

	if sess.EndDateTime != nil && !sess.EndDateTime.After(sess.StartDateTime) {
		errs.Add(ocpiErrors.InvalidValue("end_date_time", "Must be later than start_date_time"))
	}
	if sess.TotalCost != nil && *sess.TotalCost < 0 {
		errs.Add(ocpiErrors.InvalidValue("total_cost", "Must be greater than or equal to 0"))
	}

	checkChargingPeriods(sess.ChargingPeriods, "charging_periods", sessionPeriods, errs)

	return errs
}
