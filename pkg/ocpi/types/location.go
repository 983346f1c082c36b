package types

import "time"

// LocationType categorizes where a charging location is situated.
type LocationType string

const (
	LocationOnStreet          LocationType = "ON_STREET"
	LocationParkingGarage     LocationType = "PARKING_GARAGE"
	LocationUndergroundGarage LocationType = "UNDERGROUND_GARAGE"
	LocationParkingLot        LocationType = "PARKING_LOT"
	LocationOther             LocationType = "OTHER"
	LocationUnknown           LocationType = "UNKNOWN"
)

// Location is a charging site operated by a charge point operator.
type Location struct {
	ID          string
	Type        LocationType
	Name        string
	Address     string
	City        string
	PostalCode  string
	Country     string
	Coordinates GeoLocation
	EVSEs       []EVSE
	Directions  []DisplayText
	TimeZone    string
	LastUpdated time.Time
}

// EVSEStatus is the availability state of a charge point.
type EVSEStatus string

const (
	EVSEAvailable   EVSEStatus = "AVAILABLE"
	EVSEBlocked     EVSEStatus = "BLOCKED"
	EVSECharging    EVSEStatus = "CHARGING"
	EVSEInoperative EVSEStatus = "INOPERATIVE"
	EVSEOutOfOrder  EVSEStatus = "OUT_OF_ORDER"
	EVSEPlanned     EVSEStatus = "PLANNED"
	EVSERemoved     EVSEStatus = "REMOVED"
	EVSEReserved    EVSEStatus = "RESERVED"
	EVSEUnknown     EVSEStatus = "UNKNOWN"
)

// EVSE is a single charge point within a Location.
type EVSE struct {
	UID               string
	EVSEID            string
	Status            EVSEStatus
	Connectors        []Connector
	FloorLevel        string
	Coordinates       *GeoLocation
	PhysicalReference string
	Directions        []DisplayText
	LastUpdated       time.Time
}

// ConnectorFormat distinguishes a fixed socket from an attached cable.
type ConnectorFormat string

const (
	FormatSocket ConnectorFormat = "SOCKET"
	FormatCable  ConnectorFormat = "CABLE"
)

// PowerType is the electrical supply type of a connector.
type PowerType string

const (
	PowerAC1Phase PowerType = "AC_1_PHASE"
	PowerAC3Phase PowerType = "AC_3_PHASE"
	PowerDC       PowerType = "DC"
)

// Connector is a specific plug or cable on an EVSE. Standard carries the
// connector standard identifier (e.g. "IEC_62196_T2", "CHADEMO"); the set
// is open-ended on the wire so it is not constrained here.
type Connector struct {
	ID               string
	Standard         string
	Format           ConnectorFormat
	PowerType        PowerType
	MaxVoltage       int
	MaxAmperage      int
	MaxElectricPower int
	TariffIDs        []string
	LastUpdated      time.Time
}
