package pix

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Charge is the result of decoding a PIX payload.
type Charge struct {
	Key           string
	Amount        string // as encoded ("150.00"); empty for open-value charges
	Name          string
	City          string
	Description   string
	TransactionID string // empty when the payload carries the static "***"
}

var (
	ErrInvalidPayload = errors.New("invalid PIX payload")
	ErrBadChecksum    = errors.New("PIX payload checksum mismatch")
)

// Parse decodes a PIX "copia e cola" string, validating the trailing CRC.
// It accepts any merchant-account tag between 26 and 51 whose GUI is the
// PIX namespace, as the BR Code manual allows.
func Parse(payload string) (Charge, error) {
	s := strings.TrimSpace(payload)
	if len(s) < 8 {
		return Charge{}, fmt.Errorf("%w: too short", ErrInvalidPayload)
	}

	// Last 4 characters are the CRC over everything before them.
	body, sum := s[:len(s)-4], s[len(s)-4:]
	if !strings.HasSuffix(body, crcTrailer) {
		return Charge{}, fmt.Errorf("%w: missing CRC field", ErrInvalidPayload)
	}
	if fmt.Sprintf("%04X", crc16(body)) != strings.ToUpper(sum) {
		return Charge{}, ErrBadChecksum
	}

	root, err := tlvDecode(s)
	if err != nil {
		return Charge{}, fmt.Errorf("%w: %v", ErrInvalidPayload, err)
	}

	var out Charge
	out.Amount = tlvValue(root, tagAmount)
	out.Name = tlvValue(root, tagMerchantName)
	out.City = tlvValue(root, tagMerchantCity)

	if ad := tlvValue(root, tagAdditionalData); ad != "" {
		subs, _ := tlvDecode(ad)
		if tx := tlvValue(subs, subtagTxID); tx != "" && tx != staticTxID {
			out.TransactionID = tx
		}
	}

	for _, t := range root {
		idn, _ := strconv.Atoi(t.tag)
		if idn < 26 || idn > 51 {
			continue
		}
		subs, _ := tlvDecode(t.value)
		if !strings.EqualFold(tlvValue(subs, subtagGUI), pixGUI) {
			continue
		}
		out.Key = tlvValue(subs, subtagKey)
		out.Description = tlvValue(subs, subtagDescription)
		break
	}

	return out, nil
}

type tlvField struct{ tag, value string }

func tlvDecode(s string) ([]tlvField, error) {
	var out []tlvField
	for i := 0; i < len(s); {
		if i+4 > len(s) {
			return nil, errors.New("truncated TLV header")
		}
		tag := s[i : i+2]
		ln, err := strconv.Atoi(s[i+2 : i+4])
		if err != nil || ln < 0 {
			return nil, fmt.Errorf("bad length for tag %s", tag)
		}
		i += 4
		if i+ln > len(s) {
			return nil, fmt.Errorf("truncated value for tag %s", tag)
		}
		out = append(out, tlvField{tag: tag, value: s[i : i+ln]})
		i += ln
	}
	return out, nil
}

func tlvValue(fields []tlvField, tag string) string {
	for _, f := range fields {
		if f.tag == tag {
			return f.value
		}
	}
	return ""
}
