package types

import "time"

// TokenType identifies how a charging token authenticates.
type TokenType string

const (
	TokenAdHocUser TokenType = "AD_HOC_USER"
	TokenAppUser   TokenType = "APP_USER"
	TokenOther     TokenType = "OTHER"
	TokenRFID      TokenType = "RFID"
)

// WhitelistType is a token's offline-authorization policy.
type WhitelistType string

const (
	WhitelistAlways         WhitelistType = "ALWAYS"
	WhitelistAllowed        WhitelistType = "ALLOWED"
	WhitelistAllowedOffline WhitelistType = "ALLOWED_OFFLINE"
	WhitelistNever          WhitelistType = "NEVER"
	WhitelistNotAllowed     WhitelistType = "NOT_ALLOWED"
)

// Token is an authorization credential issued to an EV driver.
type Token struct {
	UID          string
	Type         TokenType
	AuthID       string
	VisualNumber string
	Issuer       string
	Valid        bool
	Whitelist    WhitelistType
	Language     string
	LastUpdated  time.Time
}
