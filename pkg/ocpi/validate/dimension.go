package validate

import (
	"fmt"

	ocpiErrors "chargekit/ocpicheck/pkg/ocpi/errors"
	"chargekit/ocpicheck/pkg/ocpi/types"
)

// periodContext selects the FLAT-dimension rule: Sessions reject FLAT
// outright, CDRs require its volume to be exactly 1.
type periodContext int

const (
	sessionPeriods periodContext = iota
	cdrPeriods
)

// checkChargingPeriods verifies chronological order and every dimension's
// range rule. prefix is the path of the charging_periods array.
func checkChargingPeriods(periods []types.ChargingPeriod, prefix string, ctx periodContext, errs *ocpiErrors.ErrorList) {
	for i, period := range periods {
		if i > 0 && !period.StartDateTime.After(periods[i-1].StartDateTime) {
			errs.Add(ocpiErrors.InvalidValue(
				fmt.Sprintf("%s[%d].start_date_time", prefix, i),
				"Charging periods must be in chronological order"))
		}

		for j, dim := range period.Dimensions {
			checkDimension(dim, fmt.Sprintf("%s[%d].dimensions[%d]", prefix, i, j), ctx, errs)
		}
	}
}

// checkDimension applies the per-type volume rule. Unknown dimension
// types carry no rule.
func checkDimension(dim types.Dimension, path string, ctx periodContext, errs *ocpiErrors.ErrorList) {
	switch dim.Type {
	case types.DimensionCurrent, types.DimensionEnergy, types.DimensionEnergyExport,
		types.DimensionEnergyImport, types.DimensionPower, types.DimensionVoltage,
		types.DimensionTime, types.DimensionParkingTime:
		if dim.Volume < 0 {
			errs.Add(ocpiErrors.InvalidValue(path+".volume", "Must be greater than or equal to 0"))
		}

	case types.DimensionMaxCurrent, types.DimensionMinCurrent,
		types.DimensionMaxPower, types.DimensionMinPower:
		if dim.Volume <= 0 {
			errs.Add(ocpiErrors.InvalidValue(path+".volume", "Must be greater than 0"))
		}

	case types.DimensionPowerFactor:
		if dim.Volume < -1 || dim.Volume > 1 {
			errs.Add(ocpiErrors.InvalidValue(path+".volume", "Must be between -1 and 1"))
		}

	case types.DimensionSoC:
		if dim.Volume < 0 || dim.Volume > 100 {
			errs.Add(ocpiErrors.InvalidValue(path+".volume", "Must be between 0 and 100"))
		}

	case types.DimensionFlat:
		if ctx == sessionPeriods {
			errs.Add(ocpiErrors.InvalidValue(path+".type", "FLAT dimension type is not allowed in Sessions"))
		} else if dim.Volume != 1 {
			errs.Add(ocpiErrors.InvalidValue(path+".volume", "Flat dimension volume must be 1"))
		}
	}
}

// sumDimensions totals the volumes of one dimension type across all
// periods.
func sumDimensions(periods []types.ChargingPeriod, kind types.DimensionType) float64 {
	var total float64
	for _, period := range periods {
		for _, dim := range period.Dimensions {
			if dim.Type == kind {
				total += dim.Volume
			}
		}
	}
	return total
}
