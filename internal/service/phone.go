package service

import "strings"

// normalizeRecipient formats a recipient for the gateway. JIDs (group or user
// conversations) pass through untouched; plain numbers are stripped to digits
// and a bare 10-digit number gets the default country code prepended.
//
// Known limitation: the 10-digit/single-country assumption only holds for the
// one market this service was built for. It is kept as documented legacy
// behavior, not a general phone-parsing routine.
func normalizeRecipient(phone, countryCode string) string {
	if strings.HasSuffix(phone, "@g.us") || strings.HasSuffix(phone, "@c.us") {
		return phone
	}

	var digits strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			digits.WriteRune(r)
		}
	}
	cleaned := digits.String()

	if len(cleaned) == 10 && !strings.HasPrefix(cleaned, countryCode) {
		cleaned = countryCode + cleaned
	}

	return cleaned
}
