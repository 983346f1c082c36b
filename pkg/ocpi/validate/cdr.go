package validate

import (
	"fmt"
	"math"

	ocpiErrors "chargekit/ocpicheck/pkg/ocpi/errors"
	"chargekit/ocpicheck/pkg/ocpi/types"
)

// totalTolerance is the absolute slack allowed when reconciling CDR
// totals against the sums of their charging-period dimensions.
const totalTolerance = 0.01

// CDR applies the semantic rules for a charge detail record, including
// reconciliation of the reported totals against the charging periods.
func CDR(cdr types.CDR) *ocpiErrors.ErrorList {
	errs := ocpiErrors.NewErrorList()

	if cdr.ID == "" {
		errs.Add(ocpiErrors.MissingRequiredField("id"))
	}
	checkCurrency(cdr.Currency, "currency", errs)
	checkEmbeddedLocation(cdr.Location, "location", errs)

	if cdr.EVSE != nil {
		checkEVSE(*cdr.EVSE, "evse", errs)
	}
	if cdr.Connector != nil {
		checkConnector(*cdr.Connector, "connector", errs)
	}

	if !cdr.EndDateTime.After(cdr.StartDateTime) {
		errs.Add(ocpiErrors.InvalidValue("end_date_time", "Must be later than start_date_time"))
	}

	for _, total := range []struct {
		field string
		value float64
	}{
		{"total_cost", cdr.TotalCost},
		{"total_energy", cdr.TotalEnergy},
		{"total_time", cdr.TotalTime},
	} {
		if total.value < 0 {
			errs.Add(ocpiErrors.InvalidValue(total.field, "Must be greater than or equal to 0"))
		}
	}
	if cdr.TotalParkingTime != nil && *cdr.TotalParkingTime < 0 {
		errs.Add(ocpiErrors.InvalidValue("total_parking_time", "Must be greater than or equal to 0"))
	}

	checkChargingPeriods(cdr.ChargingPeriods, "charging_periods", cdrPeriods, errs)
	checkTotals(cdr, errs)

	for i, tariff := range cdr.Tariffs {
		sub := Tariff(tariff)
		for _, err := range sub.Errors {
			if err.Field != "" {
				err.Field = fmt.Sprintf("tariffs[%d].%s", i, err.Field)
			}
			errs.Add(err)
		}
	}

	return errs
}

// checkTotals reconciles the reported totals against the dimension sums.
// Parking time is reconciled only when the total is present.
func checkTotals(cdr types.CDR, errs *ocpiErrors.ErrorList) {
	if energy := sumDimensions(cdr.ChargingPeriods, types.DimensionEnergy); math.Abs(energy-cdr.TotalEnergy) > totalTolerance {
		errs.Add(ocpiErrors.InvalidValue("total_energy", "Total energy does not match the sum of energy dimensions"))
	}
	if elapsed := sumDimensions(cdr.ChargingPeriods, types.DimensionTime); math.Abs(elapsed-cdr.TotalTime) > totalTolerance {
		errs.Add(ocpiErrors.InvalidValue("total_time", "Total time does not match the sum of time dimensions"))
	}
	if cdr.TotalParkingTime != nil {
		if parking := sumDimensions(cdr.ChargingPeriods, types.DimensionParkingTime); math.Abs(parking-*cdr.TotalParkingTime) > totalTolerance {
			errs.Add(ocpiErrors.InvalidValue("total_parking_time", "Total parking time does not match the sum of parking time dimensions"))
		}
	}
}
