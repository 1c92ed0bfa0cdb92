// Package pix builds and parses static PIX "copia e cola" payloads (BR Code,
// the Brazilian profile of the EMV Merchant-Presented QR specification).
// https://www.bcb.gov.br/content/estabilidadefinanceira/spb_docs/ManualBRCode.pdf
package pix

import (
	"fmt"
	"net/url"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// EMV field tags, in the order they are emitted. The order is part of the
// wire contract: banking apps validate the CRC over the exact byte sequence.
const (
	tagPayloadFormat   = "00"
	tagMerchantAccount = "26"
	tagCategoryCode    = "52"
	tagCurrency        = "53"
	tagAmount          = "54"
	tagCountryCode     = "58"
	tagMerchantName    = "59"
	tagMerchantCity    = "60"
	tagAdditionalData  = "62"

	subtagGUI         = "00"
	subtagKey         = "01"
	subtagDescription = "02"
	subtagTxID        = "05"
)

const (
	pixGUI       = "br.gov.bcb.pix"
	currencyBRL  = "986" // ISO 4217 numeric
	countryBR    = "BR"
	staticTxID   = "***" // static charge, no reference
	crcTrailer   = "6304"
	maxNameLen   = 25
	maxCityLen   = 15
	maxDescLen   = 25
	qrServiceURL = "https://api.qrserver.com/v1/create-qr-code/"
)

// Encode builds a static PIX payload for the given charge parameters.
//
// The result is deterministic: identical inputs always produce the identical
// string, so previously issued charges keep validating. Name and city are
// stripped of diacritics, upper-cased and truncated to the field limits.
// An amount that is not strictly positive (including NaN) omits the amount
// field entirely, producing an open-value charge. Encode never fails: any
// input yields a syntactically valid payload.
func Encode(key, name, city string, amount float64, description string) string {
	var b strings.Builder

	b.WriteString(tlv(tagPayloadFormat, "01"))

	account := tlv(subtagGUI, pixGUI) + tlv(subtagKey, key)
	if description != "" {
		account += tlv(subtagDescription, truncate(description, maxDescLen))
	}
	b.WriteString(tlv(tagMerchantAccount, account))

	b.WriteString(tlv(tagCategoryCode, "0000"))
	b.WriteString(tlv(tagCurrency, currencyBRL))

	if amount > 0 {
		b.WriteString(tlv(tagAmount, fmt.Sprintf("%.2f", amount)))
	}

	b.WriteString(tlv(tagCountryCode, countryBR))
	b.WriteString(tlv(tagMerchantName, normalize(name, maxNameLen)))
	b.WriteString(tlv(tagMerchantCity, normalize(city, maxCityLen)))
	b.WriteString(tlv(tagAdditionalData, tlv(subtagTxID, staticTxID)))
	b.WriteString(crcTrailer)

	payload := b.String()
	return payload + fmt.Sprintf("%04X", crc16(payload))
}

// QRCodeURL returns the URL of an externally rendered QR image for the payload.
func QRCodeURL(payload string) string {
	return qrServiceURL + "?size=300x300&data=" + url.QueryEscape(payload)
}

// tlv encodes one Tag-Length-Value field: two-digit tag, two-digit
// zero-padded length, raw value. Nested fields are concatenated and become
// the value of the outer field.
func tlv(tag, value string) string {
	return fmt.Sprintf("%s%02d%s", tag, len(value), value)
}

var stripAccents = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// normalize strips diacritics, upper-cases and truncates s to max characters.
func normalize(s string, max int) string {
	stripped, _, err := transform.String(stripAccents, s)
	if err != nil {
		stripped = s
	}
	return truncate(strings.ToUpper(stripped), max)
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}
