package pix

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode_GoldenPayload(t *testing.T) {
	payload := Encode("11999998888", "Maria Silva", "Sao Paulo", 150.00, "ORC 123")

	assert.Equal(t,
		"00020126440014br.gov.bcb.pix0111119999988880207ORC 1235204000053039865406150.005802BR5911MARIA SILVA6009SAO PAULO62070503***63049DBE",
		payload)
}

func TestEncode_Deterministic(t *testing.T) {
	first := Encode("maria@example.com", "Maria Silva", "Sao Paulo", 99.90, "Sinal")
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, Encode("maria@example.com", "Maria Silva", "Sao Paulo", 99.90, "Sinal"))
	}
}

func TestEncode_CRCCoversBody(t *testing.T) {
	payload := Encode("11999998888", "Maria Silva", "Sao Paulo", 150.00, "")

	body, sum := payload[:len(payload)-4], payload[len(payload)-4:]
	require.True(t, strings.HasSuffix(body, "6304"))

	want := crc16(body)
	assert.Equal(t, want, mustParseHex(t, sum))
}

func TestEncode_AmountField(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		want   string // expected amount TLV, empty when the field must be absent
	}{
		{name: "zero amount omitted", amount: 0},
		{name: "negative amount omitted", amount: -10},
		{name: "NaN omitted", amount: math.NaN()},
		{name: "two decimals", amount: 10.5, want: "540510.50"},
		{name: "rounding", amount: 150, want: "5406150.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := Encode("chave", "Nome", "Cidade", tt.amount, "")
			if tt.want == "" {
				assert.NotContains(t, payload, "5403", "amount tag must be absent")
				assert.NotContains(t, payload, "54040.00")
				charge, err := Parse(payload)
				require.NoError(t, err)
				assert.Empty(t, charge.Amount)
			} else {
				assert.Contains(t, payload, tt.want)
			}
		})
	}
}

func TestEncode_NameAndCityNormalization(t *testing.T) {
	payload := Encode("k", "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789ABCD", "City", 0, "")

	// 40-character name truncated to the first 25, upper-cased.
	assert.Contains(t, payload, "5925ABCDEFGHIJKLMNOPQRSTUVWXY")

	payload = Encode("maria@example.com", "José Çedilha", "São Paulo", 0, "")
	assert.Contains(t, payload, "5912JOSE CEDILHA")
	assert.Contains(t, payload, "6009SAO PAULO")
}

func TestEncode_DescriptionSubfield(t *testing.T) {
	with := Encode("chave", "Nome", "Cidade", 50, "Corte de cabelo")
	assert.Contains(t, with, "0215Corte de cabelo")

	without := Encode("chave", "Nome", "Cidade", 50, "")
	charge, err := Parse(without)
	require.NoError(t, err)
	assert.Empty(t, charge.Description)
}

func TestParse_RoundTrip(t *testing.T) {
	payload := Encode("11999998888", "Maria Silva", "Sao Paulo", 150.00, "ORC 123")

	charge, err := Parse(payload)
	require.NoError(t, err)

	assert.Equal(t, "11999998888", charge.Key)
	assert.Equal(t, "150.00", charge.Amount)
	assert.Equal(t, "MARIA SILVA", charge.Name)
	assert.Equal(t, "SAO PAULO", charge.City)
	assert.Equal(t, "ORC 123", charge.Description)
	assert.Empty(t, charge.TransactionID, "static charges carry no reference")
}

func TestParse_RejectsCorruptedPayload(t *testing.T) {
	payload := Encode("11999998888", "Maria Silva", "Sao Paulo", 150.00, "")

	corrupted := strings.Replace(payload, "150.00", "950.00", 1)
	_, err := Parse(corrupted)
	assert.ErrorIs(t, err, ErrBadChecksum)

	_, err = Parse("0002")
	assert.ErrorIs(t, err, ErrInvalidPayload)
}

func TestQRCodeURL_EscapesPayload(t *testing.T) {
	u := QRCodeURL("00020126 +&test")

	assert.True(t, strings.HasPrefix(u, "https://api.qrserver.com/v1/create-qr-code/?size=300x300&data="))
	assert.NotContains(t, u[strings.Index(u, "data="):], " ")
	assert.Contains(t, u, "%26")
}

func TestCRC16_KnownVector(t *testing.T) {
	// Classic CCITT-FALSE check value.
	assert.Equal(t, uint16(0x29B1), crc16("123456789"))
}

func mustParseHex(t *testing.T, s string) uint16 {
	t.Helper()
	var v uint16
	for i := 0; i < len(s); i++ {
		c := s[i]
		var d uint16
		switch {
		case c >= '0' && c <= '9':
			d = uint16(c - '0')
		case c >= 'A' && c <= 'F':
			d = uint16(c-'A') + 10
		default:
			t.Fatalf("bad hex digit %q", c)
		}
		v = v<<4 | d
	}
	return v
}
