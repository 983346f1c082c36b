// Package types defines the typed domain model for the five OCPI object
// kinds the engine validates: Location, Token, Session, CDR, and Tariff,
// plus their shared substructures (EVSE, Connector, ChargingPeriod,
// Dimension, TariffElement, PriceComponent, TariffRestrictions).
//
// Entities are immutable value records reconstructed fresh per validation
// call; nothing here is shared or mutated after construction.
//
// Enumerations are modeled as string types with named constants. Unknown
// wire values are carried through rather than rejected, so payloads from
// newer OCPI profiles keep decoding; validators simply apply no
// type-specific rule to values they do not recognize.
package types
