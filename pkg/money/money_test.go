package money_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Facturas-api/pkg/money"
)

// ──────────────────────────────────────────────────────────────────────────────
// ToCents: la conversión a centavos debe ser round(monto*100), entera y
// no negativa para cualquier monto válido.
// ──────────────────────────────────────────────────────────────────────────────

func TestToCents_MontosExactos(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"49.99", 4999},
		{"0.01", 1},
		{"1", 100},
		{"1000000", 100000000},
		{"12.5", 1250},
	}
	for _, tc := range cases {
		d, err := decimal.NewFromString(tc.in)
		require.NoError(t, err)
		assert.Equal(t, tc.want, money.ToCents(d), "monto %s", tc.in)
	}
}

func TestToCents_RedondeaAlCentavoMasCercano(t *testing.T) {
	// Montos con más de dos decimales se redondean, nunca se truncan.
	d, err := decimal.NewFromString("10.005")
	require.NoError(t, err)
	assert.Equal(t, int64(1001), money.ToCents(d))

	d, err = decimal.NewFromString("10.004")
	require.NoError(t, err)
	assert.Equal(t, int64(1000), money.ToCents(d))
}

func TestToCents_NuncaNegativoParaMontosValidos(t *testing.T) {
	for _, s := range []string{"0.01", "0.49", "3.33", "99999.99"} {
		d, err := decimal.NewFromString(s)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, money.ToCents(d), int64(0))
	}
}

func TestFromCents_EsInversaDeToCents(t *testing.T) {
	for _, cents := range []int64{1, 100, 4999, 123456789} {
		back := money.ToCents(money.FromCents(cents))
		assert.Equal(t, cents, back)
	}
}

func TestFormatUSD_IncluyeSimboloYDecimales(t *testing.T) {
	out := money.FormatUSD(4999)
	assert.Contains(t, out, "49.99")
	assert.Contains(t, out, "$")
}
