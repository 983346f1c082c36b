package types

import "time"

// SessionStatus is the lifecycle state of a charging session snapshot.
type SessionStatus string

const (
	SessionActive    SessionStatus = "ACTIVE"
	SessionCompleted SessionStatus = "COMPLETED"
	SessionInvalid   SessionStatus = "INVALID"
	SessionPending   SessionStatus = "PENDING"
	SessionReserved  SessionStatus = "RESERVED"
)

// Session is one charging session. Optional fields whose presence is
// itself rule-relevant (EndDateTime, TotalCost) are pointers.
type Session struct {
	ID              string
	StartDateTime   time.Time
	EndDateTime     *time.Time
	Kwh             float64
	AuthID          string
	AuthMethod      AuthMethod
	Location        Location
	EVSE            *EVSE
	Connector       *Connector
	MeterID         string
	Currency        string
	Status          SessionStatus
	ChargingPeriods []ChargingPeriod
	TotalCost       *float64
	LastUpdated     time.Time
}
