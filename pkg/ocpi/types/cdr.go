package types

import "time"

// CDR is a charge detail record: the finalized billing record for a
// completed charging session. Unlike a Session, the interval is closed
// (both timestamps mandatory) and charging periods are required.
type CDR struct {
	ID               string
	StartDateTime    time.Time
	EndDateTime      time.Time
	AuthID           string
	AuthMethod       AuthMethod
	Location         Location
	EVSE             *EVSE
	Connector        *Connector
	MeterID          string
	Currency         string
	Tariffs          []Tariff
	ChargingPeriods  []ChargingPeriod
	TotalCost        float64
	TotalEnergy      float64
	TotalTime        float64
	TotalParkingTime *float64
	Remark           string
	LastUpdated      time.Time
}
