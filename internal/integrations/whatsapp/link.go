// Package whatsapp builds wa.me deep links so the professional can send a
// charge or confirmation to a client in one tap.
package whatsapp

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrNoPhone is returned when the client has no phone on record.
var ErrNoPhone = errors.New("whatsapp: client has no phone")

const defaultCountryCode = "55" // Brazil

// ChargeLink builds a wa.me link opening a conversation with phone and the
// given message pre-filled.
func ChargeLink(phone string, message string) (string, error) {
	digits := normalizePhone(phone)
	if digits == "" {
		return "", ErrNoPhone
	}

	return fmt.Sprintf("https://wa.me/%s?text=%s", digits, url.QueryEscape(message)), nil
}

// normalizePhone strips formatting and prefixes the country code when the
// number looks local (10-11 digits: area code + subscriber).
func normalizePhone(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if digits == "" {
		return ""
	}

	if len(digits) == 10 || len(digits) == 11 {
		digits = defaultCountryCode + digits
	}

	return digits
}
