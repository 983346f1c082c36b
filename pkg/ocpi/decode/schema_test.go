package decode

import (
	"testing"

	ocpiErrors "chargekit/ocpicheck/pkg/ocpi/errors"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "object", input: `{"id": "LOC1"}`, wantErr: false},
		{name: "empty object", input: `{}`, wantErr: false},
		{name: "truncated", input: `{"id": "LOC1"`, wantErr: true},
		{name: "bare array", input: `[1, 2, 3]`, wantErr: true},
		{name: "bare string", input: `"hello"`, wantErr: true},
		{name: "empty input", input: ``, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.input))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Parse() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr && err.Kind != ocpiErrors.KindInvalidJSON {
				t.Errorf("error kind = %s, want %s", err.Kind, ocpiErrors.KindInvalidJSON)
			}
			if !tt.wantErr && doc == nil {
				t.Error("Parse() returned nil document without error")
			}
		})
	}
}

func TestSchemaCheck_MissingRequired(t *testing.T) {
	doc, err := Parse([]byte(`{"uid": "ABCD1234"}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	errs := TokenSchema.Check(doc, "")
	wantMissing := []string{"type", "auth_id", "issuer", "valid", "whitelist", "last_updated"}
	if errs.Count() != len(wantMissing) {
		t.Fatalf("Count() = %d, want %d\n%v", errs.Count(), len(wantMissing), errs.Error())
	}
	for i, field := range wantMissing {
		e := errs.Errors[i]
		if e.Kind != ocpiErrors.KindMissingRequiredField || e.Field != field {
			t.Errorf("error[%d] = %s/%s, want missing %s", i, e.Kind, e.Field, field)
		}
	}
}

func TestSchemaCheck_NestedPaths(t *testing.T) {
	doc, err := Parse([]byte(`{
		"id": "LOC1",
		"type": "ON_STREET",
		"name": "Depot",
		"address": "100 Main St",
		"city": "Dallas",
		"country": "US",
		"coordinates": {"latitude": "32.7767", "longitude": "-96.7970"},
		"time_zone": "America/Chicago",
		"last_updated": "2024-01-15T10:00:00Z",
		"evses": [
			{
				"uid": "EVSE-1",
				"status": "AVAILABLE",
				"connectors": [
					{"id": "1", "standard": "IEC_62196_T2", "format": "SOCKET", "power_type": "AC_3_PHASE", "max_voltage": 230, "max_amperage": 32},
					{"id": "2", "standard": "CHADEMO", "format": "CABLE", "power_type": "DC", "max_amperage": 125}
				]
			}
		]
	}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	errs := LocationSchema.Check(doc, "")
	if errs.Count() != 1 {
		t.Fatalf("Count() = %d, want 1\n%v", errs.Count(), errs.Error())
	}
	if got := errs.Errors[0].Field; got != "evses[0].connectors[1].max_voltage" {
		t.Errorf("Field = %q, want evses[0].connectors[1].max_voltage", got)
	}
}

func TestSchemaCheck_EmptyRequiredArrays(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		schema    *Schema
		wantField string
	}{
		{
			name: "evse without connectors",
			input: `{
				"id": "LOC1", "type": "ON_STREET", "name": "Depot",
				"address": "100 Main St", "city": "Dallas", "country": "US",
				"coordinates": {"latitude": "32.7767", "longitude": "-96.7970"},
				"time_zone": "America/Chicago", "last_updated": "2024-01-15T10:00:00Z",
				"evses": [{"uid": "EVSE-1", "status": "AVAILABLE", "connectors": []}]
			}`,
			schema:    LocationSchema,
			wantField: "evses[0].connectors",
		},
		{
			name: "charging period without dimensions",
			input: `{
				"id": "S1", "start_date_time": "2024-01-15T08:00:00Z", "kwh": 12.5,
				"auth_id": "DE8ACC12E46L89", "auth_method": "AUTH_REQUEST",
				"location": {"id": "LOC1", "address": "100 Main St", "city": "Dallas", "country": "US",
					"coordinates": {"latitude": "32.7767", "longitude": "-96.7970"}},
				"currency": "EUR", "status": "ACTIVE",
				"charging_periods": [{"start_date_time": "2024-01-15T08:00:00Z", "dimensions": []}],
				"last_updated": "2024-01-15T10:00:00Z"
			}`,
			schema:    SessionSchema,
			wantField: "charging_periods[0].dimensions",
		},
		{
			name: "tariff without elements",
			input: `{
				"id": "T1", "currency": "EUR", "country_code": "DE", "party_id": "ABC",
				"elements": [], "last_updated": "2024-01-15T10:00:00Z"
			}`,
			schema:    TariffSchema,
			wantField: "elements",
		},
		{
			name: "element without price components",
			input: `{
				"id": "T1", "currency": "EUR", "country_code": "DE", "party_id": "ABC",
				"elements": [{"price_components": []}], "last_updated": "2024-01-15T10:00:00Z"
			}`,
			schema:    TariffSchema,
			wantField: "elements[0].price_components",
		},
		{
			name: "cdr without charging periods",
			input: `{
				"id": "C1", "start_date_time": "2024-01-15T08:00:00Z", "end_date_time": "2024-01-15T09:00:00Z",
				"auth_id": "DE8ACC12E46L89", "auth_method": "AUTH_REQUEST",
				"location": {"id": "LOC1", "address": "100 Main St", "city": "Dallas", "country": "US",
					"coordinates": {"latitude": "32.7767", "longitude": "-96.7970"}},
				"currency": "EUR", "charging_periods": [],
				"total_cost": 4.5, "total_energy": 12.5, "total_time": 1.0,
				"last_updated": "2024-01-15T10:00:00Z"
			}`,
			schema:    CDRSchema,
			wantField: "charging_periods",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			errs := tt.schema.Check(doc, "")
			if errs.Count() != 1 {
				t.Fatalf("Count() = %d, want 1\n%v", errs.Count(), errs.Error())
			}
			e := errs.Errors[0]
			if e.Kind != ocpiErrors.KindMissingRequiredField || e.Field != tt.wantField {
				t.Errorf("error = %s/%s, want %s/%s", e.Kind, e.Field, ocpiErrors.KindMissingRequiredField, tt.wantField)
			}
		})
	}
}

func TestSchemaCheck_EmptyOptionalArrayPasses(t *testing.T) {
	doc, err := Parse([]byte(`{
		"id": "S1", "start_date_time": "2024-01-15T08:00:00Z", "kwh": 12.5,
		"auth_id": "DE8ACC12E46L89", "auth_method": "AUTH_REQUEST",
		"location": {"id": "LOC1", "address": "100 Main St", "city": "Dallas", "country": "US",
			"coordinates": {"latitude": "32.7767", "longitude": "-96.7970"}},
		"currency": "EUR", "status": "ACTIVE", "charging_periods": [],
		"last_updated": "2024-01-15T10:00:00Z"
	}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if errs := SessionSchema.Check(doc, ""); errs.HasErrors() {
		t.Errorf("empty optional charging_periods should pass, got: %v", errs.Error())
	}
}

func TestSchemaCheck_WrongTypes(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		schema    *Schema
		wantField string
		wantKind  ocpiErrors.Kind
	}{
		{
			name:      "boolean as string",
			input:     `{"uid": "U1", "type": "RFID", "auth_id": "A1", "issuer": "I", "valid": "yes", "whitelist": "ALLOWED", "last_updated": "2024-01-15T10:00:00Z"}`,
			schema:    TokenSchema,
			wantField: "valid",
			wantKind:  ocpiErrors.KindInvalidFieldType,
		},
		{
			name:      "object as array",
			input:     `{"id": "L1", "type": "OTHER", "name": "N", "address": "A", "city": "C", "country": "US", "coordinates": [1, 2], "time_zone": "UTC", "last_updated": "2024-01-15T10:00:00Z"}`,
			schema:    LocationSchema,
			wantField: "coordinates",
			wantKind:  ocpiErrors.KindInvalidFieldType,
		},
		{
			name:      "unparsable timestamp",
			input:     `{"id": "L1", "type": "OTHER", "name": "N", "address": "A", "city": "C", "country": "US", "coordinates": {"latitude": "1", "longitude": "1"}, "time_zone": "UTC", "last_updated": "yesterday"}`,
			schema:    LocationSchema,
			wantField: "last_updated",
			wantKind:  ocpiErrors.KindInvalidFieldType,
		},
		{
			name:      "fractional integer",
			input:     `{"id": "T1", "currency": "EUR", "country_code": "DE", "party_id": "ABC", "last_updated": "2024-01-15T10:00:00Z", "elements": [{"price_components": [{"type": "ENERGY", "price": 0.25, "step_size": 1.5}]}]}`,
			schema:    TariffSchema,
			wantField: "elements[0].price_components[0].step_size",
			wantKind:  ocpiErrors.KindInvalidFieldType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.input))
			if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			errs := tt.schema.Check(doc, "")
			if errs.Count() != 1 {
				t.Fatalf("Count() = %d, want 1\n%v", errs.Count(), errs.Error())
			}
			e := errs.Errors[0]
			if e.Kind != tt.wantKind || e.Field != tt.wantField {
				t.Errorf("error = %s/%s, want %s/%s", e.Kind, e.Field, tt.wantKind, tt.wantField)
			}
		})
	}
}

func TestSchemaCheck_OptionalAbsent(t *testing.T) {
	doc, err := Parse([]byte(`{
		"uid": "ABCD1234", "type": "RFID", "auth_id": "DE8ACC12E46L89",
		"issuer": "TheNewMotion", "valid": true, "whitelist": "ALLOWED",
		"last_updated": "2024-01-15T10:00:00Z"
	}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if errs := TokenSchema.Check(doc, ""); errs.HasErrors() {
		t.Errorf("optional fields absent should pass, got: %v", errs.Error())
	}
}

func TestSchemaCheck_TimestampFormats(t *testing.T) {
	tests := []struct {
		name  string
		value string
		valid bool
	}{
		{name: "utc", value: "2024-01-15T10:00:00Z", valid: true},
		{name: "offset", value: "2024-01-15T10:00:00+02:00", valid: true},
		{name: "fractional", value: "2024-01-15T10:00:00.123Z", valid: true},
		{name: "no zone", value: "2024-01-15T10:00:00", valid: true},
		{name: "date only", value: "2024-01-15", valid: false},
		{name: "garbage", value: "not-a-date", valid: false},
	}

	schema := &Schema{Fields: []Field{{Name: "last_updated", Required: true, Kind: KindTimestamp}}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := schema.Check(map[string]interface{}{"last_updated": tt.value}, "")
			if errs.HasErrors() == tt.valid {
				t.Errorf("value %q: HasErrors() = %v, want valid = %v", tt.value, errs.HasErrors(), tt.valid)
			}
		})
	}
}

func TestSchemaWithRequired(t *testing.T) {
	relaxed := TokenSchema.WithRequired([]string{"uid", "valid"})

	doc := map[string]interface{}{"uid": "ABCD1234", "valid": true}
	if errs := relaxed.Check(doc, ""); errs.HasErrors() {
		t.Errorf("relaxed profile should accept minimal token, got: %v", errs.Error())
	}

	// Original schema is untouched.
	if errs := TokenSchema.Check(doc, ""); !errs.HasErrors() {
		t.Error("default profile should still require the full set")
	}
}

func TestBuildLocation(t *testing.T) {
	doc, err := Parse([]byte(`{
		"id": "LOC1",
		"type": "PARKING_GARAGE",
		"name": "Downtown Garage",
		"address": "100 Main St",
		"city": "Dallas",
		"postal_code": "75201",
		"country": "US",
		"coordinates": {"latitude": "32.7767", "longitude": "-96.7970"},
		"time_zone": "America/Chicago",
		"last_updated": "2024-01-15T10:00:00Z",
		"evses": [{
			"uid": "EVSE-1", "status": "AVAILABLE",
			"connectors": [{"id": "1", "standard": "IEC_62196_T2", "format": "SOCKET", "power_type": "AC_3_PHASE", "max_voltage": 230, "max_amperage": 32}]
		}]
	}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	loc := BuildLocation(doc)
	if loc.ID != "LOC1" {
		t.Errorf("ID = %q, want LOC1", loc.ID)
	}
	if loc.Coordinates.Latitude != "32.7767" {
		t.Errorf("Latitude = %q, want 32.7767", loc.Coordinates.Latitude)
	}
	if len(loc.EVSEs) != 1 || len(loc.EVSEs[0].Connectors) != 1 {
		t.Fatalf("EVSE/connector counts wrong: %+v", loc.EVSEs)
	}
	if loc.EVSEs[0].Connectors[0].MaxVoltage != 230 {
		t.Errorf("MaxVoltage = %d, want 230", loc.EVSEs[0].Connectors[0].MaxVoltage)
	}
	if loc.LastUpdated.IsZero() {
		t.Error("LastUpdated should be parsed")
	}
}

func TestBuildSession_OptionalPresence(t *testing.T) {
	doc, err := Parse([]byte(`{
		"id": "S1",
		"start_date_time": "2024-01-15T08:00:00Z",
		"kwh": 0,
		"auth_id": "DE8ACC12E46L89",
		"auth_method": "WHITELIST",
		"location": {"id": "LOC1", "address": "A", "city": "C", "country": "US", "coordinates": {"latitude": "1", "longitude": "1"}},
		"currency": "EUR",
		"status": "PENDING",
		"last_updated": "2024-01-15T08:00:00Z"
	}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	sess := BuildSession(doc)
	if sess.EndDateTime != nil {
		t.Error("absent end_date_time should decode to nil")
	}
	if sess.TotalCost != nil {
		t.Error("absent total_cost should decode to nil")
	}
	if sess.Location.ID != "LOC1" {
		t.Errorf("Location.ID = %q, want LOC1", sess.Location.ID)
	}
}

func TestBuildCDR_ParkingTimePresence(t *testing.T) {
	base := `{
		"id": "C1",
		"start_date_time": "2024-01-15T08:00:00Z",
		"end_date_time": "2024-01-15T09:30:00Z",
		"auth_id": "DE8ACC12E46L89",
		"auth_method": "WHITELIST",
		"location": {"id": "LOC1", "address": "A", "city": "C", "country": "US", "coordinates": {"latitude": "1", "longitude": "1"}},
		"currency": "EUR",
		"charging_periods": [{"start_date_time": "2024-01-15T08:00:00Z", "dimensions": [{"type": "ENERGY", "volume": 15}]}],
		"total_cost": 4.0,
		"total_energy": 15,
		"total_time": 1.5,
		"last_updated": "2024-01-15T09:30:00Z"`

	doc, err := Parse([]byte(base + `}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if cdr := BuildCDR(doc); cdr.TotalParkingTime != nil {
		t.Error("absent total_parking_time should decode to nil")
	}

	doc, err = Parse([]byte(base + `, "total_parking_time": 0.25}`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	cdr := BuildCDR(doc)
	if cdr.TotalParkingTime == nil || *cdr.TotalParkingTime != 0.25 {
		t.Errorf("TotalParkingTime = %v, want 0.25", cdr.TotalParkingTime)
	}
}
