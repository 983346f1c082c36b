package validate

import (
	ocpiErrors "chargekit/ocpicheck/pkg/ocpi/errors"
	"chargekit/ocpicheck/pkg/ocpi/types"
)

// Token applies the semantic rules for a Token object: identifier
// formats per token type plus the validity/whitelist consistency rules.
func Token(tok types.Token) *ocpiErrors.ErrorList {
	errs := ocpiErrors.NewErrorList()

	if tok.UID == "" {
		errs.Add(ocpiErrors.MissingRequiredField("uid"))
	} else if tok.Type == types.TokenRFID && !rfidUIDPattern.MatchString(tok.UID) {
		errs.Add(ocpiErrors.InvalidValue("uid", "Invalid RFID uid format"))
	}

	if tok.AuthID == "" {
		errs.Add(ocpiErrors.MissingRequiredField("auth_id"))
	} else if tok.Type == types.TokenAppUser && !emailPattern.MatchString(tok.AuthID) {
		errs.Add(ocpiErrors.InvalidValue("auth_id", "Invalid app user auth_id format"))
	}

	if tok.Issuer == "" {
		errs.Add(ocpiErrors.MissingRequiredField("issuer"))
	}

	if tok.Type == types.TokenRFID && tok.VisualNumber == "" {
		errs.Add(ocpiErrors.MissingRequiredField("visual_number for RFID token"))
	}

	checkLanguage(tok.Language, "language", errs)
	checkWhitelist(tok, errs)

	return errs
}

// checkWhitelist enforces the whitelist consistency matrix. The ad-hoc
// rule is type-specific; the validity rules apply to every token type,
// so an invalid ad-hoc token with an offline whitelist collects both
// errors.
func checkWhitelist(tok types.Token, errs *ocpiErrors.ErrorList) {
	offline := tok.Whitelist == types.WhitelistAlways || tok.Whitelist == types.WhitelistAllowedOffline

	if tok.Type == types.TokenAdHocUser && offline {
		errs.Add(ocpiErrors.InvalidValue("whitelist", "Ad-hoc users cannot have ALWAYS or ALLOWED_OFFLINE whitelist type"))
	}
	if !tok.Valid && offline {
		errs.Add(ocpiErrors.InvalidValue("whitelist", "Invalid tokens cannot have ALWAYS or ALLOWED_OFFLINE whitelist type"))
	}
	if tok.Valid && tok.Whitelist == types.WhitelistNever {
		errs.Add(ocpiErrors.InvalidValue("valid", "Token cannot be valid when whitelist is NEVER"))
	}
}
