package decode

// Entity schemas for the five OCPI object kinds, plus the nested shapes
// they share. Required flags reflect the default deployment profile; a
// config profile can override the top-level set via WithRequired.

var coordinatesSchema = &Schema{Fields: []Field{
	{Name: "latitude", Required: true, Kind: KindString},
	{Name: "longitude", Required: true, Kind: KindString},
}}

var connectorSchema = &Schema{Fields: []Field{
	{Name: "id", Required: true, Kind: KindString},
	{Name: "standard", Required: true, Kind: KindString},
	{Name: "format", Required: true, Kind: KindString},
	{Name: "power_type", Required: true, Kind: KindString},
	{Name: "max_voltage", Required: true, Kind: KindInteger},
	{Name: "max_amperage", Required: true, Kind: KindInteger},
	{Name: "max_electric_power", Kind: KindInteger},
	{Name: "tariff_ids", Kind: KindStringArray},
	{Name: "tariff_id", Kind: KindString},
	{Name: "last_updated", Kind: KindTimestamp},
}}

var evseSchema = &Schema{Fields: []Field{
	{Name: "uid", Required: true, Kind: KindString},
	{Name: "evse_id", Kind: KindString},
	{Name: "status", Required: true, Kind: KindString},
	{Name: "connectors", Required: true, Kind: KindArray, Object: connectorSchema},
	{Name: "floor_level", Kind: KindString},
	{Name: "coordinates", Kind: KindObject, Object: coordinatesSchema},
	{Name: "physical_reference", Kind: KindString},
	{Name: "directions", Kind: KindDisplayTextArray},
	{Name: "last_updated", Kind: KindTimestamp},
}}

// LocationSchema is the structural description of a Location payload.
var LocationSchema = &Schema{Fields: []Field{
	{Name: "id", Required: true, Kind: KindString},
	{Name: "type", Required: true, Kind: KindString},
	{Name: "name", Required: true, Kind: KindString},
	{Name: "address", Required: true, Kind: KindString},
	{Name: "city", Required: true, Kind: KindString},
	{Name: "postal_code", Kind: KindString},
	{Name: "country", Required: true, Kind: KindString},
	{Name: "coordinates", Required: true, Kind: KindObject, Object: coordinatesSchema},
	{Name: "evses", Kind: KindArray, Object: evseSchema},
	{Name: "directions", Kind: KindDisplayTextArray},
	{Name: "time_zone", Required: true, Kind: KindString},
	{Name: "last_updated", Required: true, Kind: KindTimestamp},
}}

// TokenSchema is the structural description of a Token payload.
var TokenSchema = &Schema{Fields: []Field{
	{Name: "uid", Required: true, Kind: KindString},
	{Name: "type", Required: true, Kind: KindString},
	{Name: "auth_id", Required: true, Kind: KindString},
	{Name: "visual_number", Kind: KindString},
	{Name: "issuer", Required: true, Kind: KindString},
	{Name: "valid", Required: true, Kind: KindBoolean},
	{Name: "whitelist", Required: true, Kind: KindString},
	{Name: "language", Kind: KindString},
	{Name: "last_updated", Required: true, Kind: KindTimestamp},
}}

// embeddedLocationSchema describes the abbreviated location object
// carried inside Session and CDR payloads.
var embeddedLocationSchema = &Schema{Fields: []Field{
	{Name: "id", Required: true, Kind: KindString},
	{Name: "name", Kind: KindString},
	{Name: "address", Required: true, Kind: KindString},
	{Name: "city", Required: true, Kind: KindString},
	{Name: "postal_code", Kind: KindString},
	{Name: "country", Required: true, Kind: KindString},
	{Name: "coordinates", Required: true, Kind: KindObject, Object: coordinatesSchema},
	{Name: "time_zone", Kind: KindString},
	{Name: "last_updated", Kind: KindTimestamp},
}}

var dimensionSchema = &Schema{Fields: []Field{
	{Name: "type", Required: true, Kind: KindString},
	{Name: "volume", Required: true, Kind: KindNumber},
}}

var chargingPeriodSchema = &Schema{Fields: []Field{
	{Name: "start_date_time", Required: true, Kind: KindTimestamp},
	{Name: "dimensions", Required: true, Kind: KindArray, Object: dimensionSchema},
	{Name: "tariff_id", Kind: KindString},
}}

// SessionSchema is the structural description of a Session payload.
var SessionSchema = &Schema{Fields: []Field{
	{Name: "id", Required: true, Kind: KindString},
	{Name: "start_date_time", Required: true, Kind: KindTimestamp},
	{Name: "end_date_time", Kind: KindTimestamp},
	{Name: "kwh", Required: true, Kind: KindNumber},
	{Name: "auth_id", Required: true, Kind: KindString},
	{Name: "auth_method", Required: true, Kind: KindString},
	{Name: "location", Required: true, Kind: KindObject, Object: embeddedLocationSchema},
	{Name: "evse", Kind: KindObject, Object: evseSchema},
	{Name: "connector", Kind: KindObject, Object: connectorSchema},
	{Name: "meter_id", Kind: KindString},
	{Name: "currency", Required: true, Kind: KindString},
	{Name: "status", Required: true, Kind: KindString},
	{Name: "charging_periods", Kind: KindArray, Object: chargingPeriodSchema},
	{Name: "total_cost", Kind: KindNumber},
	{Name: "last_updated", Required: true, Kind: KindTimestamp},
}}

var priceSchema = &Schema{Fields: []Field{
	{Name: "excl_vat", Required: true, Kind: KindNumber},
	{Name: "incl_vat", Kind: KindNumber},
}}

var priceComponentSchema = &Schema{Fields: []Field{
	{Name: "type", Required: true, Kind: KindString},
	{Name: "price", Required: true, Kind: KindNumber},
	{Name: "step_size", Required: true, Kind: KindInteger},
	{Name: "vat", Kind: KindNumber},
}}

var restrictionsSchema = &Schema{Fields: []Field{
	{Name: "start_time", Kind: KindString},
	{Name: "end_time", Kind: KindString},
	{Name: "start_date", Kind: KindTimestamp},
	{Name: "end_date", Kind: KindTimestamp},
	{Name: "min_kwh", Kind: KindNumber},
	{Name: "max_kwh", Kind: KindNumber},
	{Name: "min_power", Kind: KindNumber},
	{Name: "max_power", Kind: KindNumber},
	{Name: "min_duration", Kind: KindInteger},
	{Name: "max_duration", Kind: KindInteger},
	{Name: "day_of_week", Kind: KindIntArray},
	{Name: "reservation", Kind: KindString},
}}

var tariffElementSchema = &Schema{Fields: []Field{
	{Name: "price_components", Required: true, Kind: KindArray, Object: priceComponentSchema},
	{Name: "restrictions", Kind: KindObject, Object: restrictionsSchema},
}}

// TariffSchema is the structural description of a Tariff payload.
var TariffSchema = &Schema{Fields: []Field{
	{Name: "id", Required: true, Kind: KindString},
	{Name: "currency", Required: true, Kind: KindString},
	{Name: "type", Kind: KindString},
	{Name: "country_code", Required: true, Kind: KindString},
	{Name: "party_id", Required: true, Kind: KindString},
	{Name: "elements", Required: true, Kind: KindArray, Object: tariffElementSchema},
	{Name: "start_date_time", Kind: KindTimestamp},
	{Name: "end_date_time", Kind: KindTimestamp},
	{Name: "min_price", Kind: KindObject, Object: priceSchema},
	{Name: "max_price", Kind: KindObject, Object: priceSchema},
	{Name: "last_updated", Required: true, Kind: KindTimestamp},
}}

// CDRSchema is the structural description of a CDR payload.
var CDRSchema = &Schema{Fields: []Field{
	{Name: "id", Required: true, Kind: KindString},
	{Name: "start_date_time", Required: true, Kind: KindTimestamp},
	{Name: "end_date_time", Required: true, Kind: KindTimestamp},
	{Name: "auth_id", Required: true, Kind: KindString},
	{Name: "auth_method", Required: true, Kind: KindString},
	{Name: "location", Required: true, Kind: KindObject, Object: embeddedLocationSchema},
	{Name: "evse", Kind: KindObject, Object: evseSchema},
	{Name: "connector", Kind: KindObject, Object: connectorSchema},
	{Name: "meter_id", Kind: KindString},
	{Name: "currency", Required: true, Kind: KindString},
	{Name: "tariffs", Kind: KindArray, Object: TariffSchema},
	{Name: "charging_periods", Required: true, Kind: KindArray, Object: chargingPeriodSchema},
	{Name: "total_cost", Required: true, Kind: KindNumber},
	{Name: "total_energy", Required: true, Kind: KindNumber},
	{Name: "total_time", Required: true, Kind: KindNumber},
	{Name: "total_parking_time", Kind: KindNumber},
	{Name: "remark", Kind: KindString},
	{Name: "last_updated", Required: true, Kind: KindTimestamp},
}}
