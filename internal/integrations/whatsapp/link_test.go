package whatsapp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChargeLink_FormatsAndEscapes(t *testing.T) {
	link, err := ChargeLink("(11) 99999-8888", "Olá! Segue a cobrança de R$ 150,00")
	require.NoError(t, err)

	assert.Equal(t,
		"https://wa.me/5511999998888?text=Ol%C3%A1%21+Segue+a+cobran%C3%A7a+de+R%24+150%2C00",
		link,
	)
}

func TestChargeLink_KeepsExistingCountryCode(t *testing.T) {
	link, err := ChargeLink("+55 11 99999-8888", "oi")
	require.NoError(t, err)

	assert.Equal(t, "https://wa.me/5511999998888?text=oi", link)
}

func TestChargeLink_EmptyPhone(t *testing.T) {
	_, err := ChargeLink("  ", "oi")
	assert.ErrorIs(t, err, ErrNoPhone)
}
