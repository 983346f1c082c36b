package decode

import (
	"chargekit/ocpicheck/pkg/ocpi/types"
)

// Builders convert a schema-checked document into the typed model. They
// never fail: fields the structural pass already flagged decode to zero
// values, which the semantic pass does not re-report.

// BuildLocation assembles a Location from a checked document.
func BuildLocation(doc map[string]interface{}) types.Location {
	loc := types.Location{
		ID:          getString(doc, "id"),
		Type:        types.LocationType(getString(doc, "type")),
		Name:        getString(doc, "name"),
		Address:     getString(doc, "address"),
		City:        getString(doc, "city"),
		PostalCode:  getString(doc, "postal_code"),
		Country:     getString(doc, "country"),
		Coordinates: buildGeo(getMap(doc, "coordinates")),
		Directions:  buildDisplayTexts(getSlice(doc, "directions")),
		TimeZone:    getString(doc, "time_zone"),
		LastUpdated: getTime(doc, "last_updated"),
	}

	for _, item := range getSlice(doc, "evses") {
		if m, ok := item.(map[string]interface{}); ok {
			loc.EVSEs = append(loc.EVSEs, buildEVSE(m))
		}
	}
	return loc
}

func buildGeo(m map[string]interface{}) types.GeoLocation {
	return types.GeoLocation{
		Latitude:  getString(m, "latitude"),
		Longitude: getString(m, "longitude"),
	}
}

func buildDisplayTexts(items []interface{}) []types.DisplayText {
	var out []types.DisplayText
	for _, item := range items {
		switch v := item.(type) {
		case string:
			out = append(out, types.DisplayText{Text: v})
		case map[string]interface{}:
			out = append(out, types.DisplayText{
				Language: getString(v, "language"),
				Text:     getString(v, "text"),
			})
		}
	}
	return out
}

func buildEVSE(m map[string]interface{}) types.EVSE {
	evse := types.EVSE{
		UID:               getString(m, "uid"),
		EVSEID:            getString(m, "evse_id"),
		Status:            types.EVSEStatus(getString(m, "status")),
		FloorLevel:        getString(m, "floor_level"),
		PhysicalReference: getString(m, "physical_reference"),
		Directions:        buildDisplayTexts(getSlice(m, "directions")),
		LastUpdated:       getTime(m, "last_updated"),
	}

	if coords := getMap(m, "coordinates"); coords != nil {
		geo := buildGeo(coords)
		evse.Coordinates = &geo
	}
	for _, item := range getSlice(m, "connectors") {
		if cm, ok := item.(map[string]interface{}); ok {
			evse.Connectors = append(evse.Connectors, buildConnector(cm))
		}
	}
	return evse
}

func buildConnector(m map[string]interface{}) types.Connector {
	conn := types.Connector{
		ID:               getString(m, "id"),
		Standard:         getString(m, "standard"),
		Format:           types.ConnectorFormat(getString(m, "format")),
		PowerType:        types.PowerType(getString(m, "power_type")),
		MaxVoltage:       getInt(m, "max_voltage"),
		MaxAmperage:      getInt(m, "max_amperage"),
		MaxElectricPower: getInt(m, "max_electric_power"),
		TariffIDs:        stringSlice(m, "tariff_ids"),
		LastUpdated:      getTime(m, "last_updated"),
	}
	// OCPI 2.1.1 payloads carry a singular tariff_id.
	if id, ok := optString(m, "tariff_id"); ok && len(conn.TariffIDs) == 0 {
		conn.TariffIDs = []string{id}
	}
	return conn
}

// BuildToken assembles a Token from a checked document.
func BuildToken(doc map[string]interface{}) types.Token {
	return types.Token{
		UID:          getString(doc, "uid"),
		Type:         types.TokenType(getString(doc, "type")),
		AuthID:       getString(doc, "auth_id"),
		VisualNumber: getString(doc, "visual_number"),
		Issuer:       getString(doc, "issuer"),
		Valid:        getBool(doc, "valid"),
		Whitelist:    types.WhitelistType(getString(doc, "whitelist")),
		Language:     getString(doc, "language"),
		LastUpdated:  getTime(doc, "last_updated"),
	}
}

// BuildSession assembles a Session from a checked document.
func BuildSession(doc map[string]interface{}) types.Session {
	sess := types.Session{
		ID:              getString(doc, "id"),
		StartDateTime:   getTime(doc, "start_date_time"),
		EndDateTime:     optTime(doc, "end_date_time"),
		Kwh:             getFloat(doc, "kwh"),
		AuthID:          getString(doc, "auth_id"),
		AuthMethod:      types.AuthMethod(getString(doc, "auth_method")),
		Location:        BuildLocation(getMap(doc, "location")),
		MeterID:         getString(doc, "meter_id"),
		Currency:        getString(doc, "currency"),
		Status:          types.SessionStatus(getString(doc, "status")),
		ChargingPeriods: buildChargingPeriods(getSlice(doc, "charging_periods")),
		TotalCost:       optFloat(doc, "total_cost"),
		LastUpdated:     getTime(doc, "last_updated"),
	}

	if m := getMap(doc, "evse"); m != nil {
		evse := buildEVSE(m)
		sess.EVSE = &evse
	}
	if m := getMap(doc, "connector"); m != nil {
		conn := buildConnector(m)
		sess.Connector = &conn
	}
	return sess
}

// BuildCDR assembles a CDR from a checked document.
func BuildCDR(doc map[string]interface{}) types.CDR {
	cdr := types.CDR{
		ID:               getString(doc, "id"),
		StartDateTime:    getTime(doc, "start_date_time"),
		EndDateTime:      getTime(doc, "end_date_time"),
		AuthID:           getString(doc, "auth_id"),
		AuthMethod:       types.AuthMethod(getString(doc, "auth_method")),
		Location:         BuildLocation(getMap(doc, "location")),
		MeterID:          getString(doc, "meter_id"),
		Currency:         getString(doc, "currency"),
		ChargingPeriods:  buildChargingPeriods(getSlice(doc, "charging_periods")),
		TotalCost:        getFloat(doc, "total_cost"),
		TotalEnergy:      getFloat(doc, "total_energy"),
		TotalTime:        getFloat(doc, "total_time"),
		TotalParkingTime: optFloat(doc, "total_parking_time"),
		Remark:           getString(doc, "remark"),
		LastUpdated:      getTime(doc, "last_updated"),
	}

	if m := getMap(doc, "evse"); m != nil {
		evse := buildEVSE(m)
		cdr.EVSE = &evse
	}
	if m := getMap(doc, "connector"); m != nil {
		conn := buildConnector(m)
		cdr.Connector = &conn
	}
	for _, item := range getSlice(doc, "tariffs") {
		if m, ok := item.(map[string]interface{}); ok {
			cdr.Tariffs = append(cdr.Tariffs, BuildTariff(m))
		}
	}
	return cdr
}

func buildChargingPeriods(items []interface{}) []types.ChargingPeriod {
	var out []types.ChargingPeriod
	for _, item := range items {
		m, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		period := types.ChargingPeriod{
			StartDateTime: getTime(m, "start_date_time"),
			TariffID:      getString(m, "tariff_id"),
		}
		for _, d := range getSlice(m, "dimensions") {
			if dm, ok := d.(map[string]interface{}); ok {
				period.Dimensions = append(period.Dimensions, types.Dimension{
					Type:   types.DimensionType(getString(dm, "type")),
					Volume: getFloat(dm, "volume"),
				})
			}
		}
		out = append(out, period)
	}
	return out
}

// BuildTariff assembles a Tariff from a checked document.
func BuildTariff(doc map[string]interface{}) types.Tariff {
	tariff := types.Tariff{
		ID:            getString(doc, "id"),
		Currency:      getString(doc, "currency"),
		Type:          types.TariffType(getString(doc, "type")),
		CountryCode:   getString(doc, "country_code"),
		PartyID:       getString(doc, "party_id"),
		StartDateTime: optTime(doc, "start_date_time"),
		EndDateTime:   optTime(doc, "end_date_time"),
		LastUpdated:   getTime(doc, "last_updated"),
	}

	if m := getMap(doc, "min_price"); m != nil {
		p := buildPrice(m)
		tariff.MinPrice = &p
	}
	if m := getMap(doc, "max_price"); m != nil {
		p := buildPrice(m)
		tariff.MaxPrice = &p
	}
	for _, item := range getSlice(doc, "elements") {
		if m, ok := item.(map[string]interface{}); ok {
			tariff.Elements = append(tariff.Elements, buildTariffElement(m))
		}
	}
	return tariff
}

func buildPrice(m map[string]interface{}) types.Price {
	return types.Price{
		ExclVat: getFloat(m, "excl_vat"),
		InclVat: optFloat(m, "incl_vat"),
	}
}

func buildTariffElement(m map[string]interface{}) types.TariffElement {
	elem := types.TariffElement{}
	for _, item := range getSlice(m, "price_components") {
		pm, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		elem.PriceComponents = append(elem.PriceComponents, types.PriceComponent{
			Type:     types.TariffDimension(getString(pm, "type")),
			Price:    getFloat(pm, "price"),
			StepSize: getInt(pm, "step_size"),
			Vat:      optFloat(pm, "vat"),
		})
	}

	if rm := getMap(m, "restrictions"); rm != nil {
		r := types.TariffRestrictions{
			StartTime:   getString(rm, "start_time"),
			EndTime:     getString(rm, "end_time"),
			StartDate:   optTime(rm, "start_date"),
			EndDate:     optTime(rm, "end_date"),
			MinKwh:      optFloat(rm, "min_kwh"),
			MaxKwh:      optFloat(rm, "max_kwh"),
			MinPower:    optFloat(rm, "min_power"),
			MaxPower:    optFloat(rm, "max_power"),
			MinDuration: optInt(rm, "min_duration"),
			MaxDuration: optInt(rm, "max_duration"),
			DayOfWeek:   intSlice(rm, "day_of_week"),
			Reservation: types.ReservationRestriction(getString(rm, "reservation")),
		}
		elem.Restrictions = &r
	}
	return elem
}
