package types

import "time"

// TariffType categorizes the commercial profile of a tariff.
type TariffType string

const (
	TariffAdHocPayment TariffType = "AD_HOC_PAYMENT"
	TariffProfileCheap TariffType = "PROFILE_CHEAP"
	TariffProfileFast  TariffType = "PROFILE_FAST"
	TariffProfileGreen TariffType = "PROFILE_GREEN"
	TariffRegular      TariffType = "REGULAR"
)

// Tariff is a pricing definition published by a charge point operator.
type Tariff struct {
	ID            string
	Currency      string
	Type          TariffType
	CountryCode   string
	PartyID       string
	Elements      []TariffElement
	StartDateTime *time.Time
	EndDateTime   *time.Time
	MinPrice      *Price
	MaxPrice      *Price
	LastUpdated   time.Time
}

// Price is an amount with and without VAT.
type Price struct {
	ExclVat float64
	InclVat *float64
}

// TariffElement groups price components under a common set of
// restrictions.
type TariffElement struct {
	PriceComponents []PriceComponent
	Restrictions    *TariffRestrictions
}

// TariffDimension is what a price component charges for.
type TariffDimension string

const (
	TariffDimensionEnergy      TariffDimension = "ENERGY"
	TariffDimensionFlat        TariffDimension = "FLAT"
	TariffDimensionParkingTime TariffDimension = "PARKING_TIME"
	TariffDimensionTime        TariffDimension = "TIME"
)

// PriceComponent prices one tariff dimension.
type PriceComponent struct {
	Type     TariffDimension
	Price    float64
	StepSize int
	Vat      *float64
}

// ReservationRestriction marks a tariff element as applying to
// reservations.
type ReservationRestriction string

const (
	RestrictionReservation        ReservationRestriction = "RESERVATION"
	RestrictionReservationExpires ReservationRestriction = "RESERVATION_EXPIRES"
)

// TariffRestrictions limit when a tariff element applies. All fields are
// optional; range fields are validated for sign and min/max ordering when
// both bounds are present.
type TariffRestrictions struct {
	StartTime   string
	EndTime     string
	StartDate   *time.Time
	EndDate     *time.Time
	MinKwh      *float64
	MaxKwh      *float64
	MinPower    *float64
	MaxPower    *float64
	MinDuration *int
	MaxDuration *int
	DayOfWeek   []int
	Reservation ReservationRestriction
}
