// Package money centraliza la representación monetaria de la aplicación:
// los montos se validan en unidades mayores (dólares) pero se almacenan y
// operan siempre en centavos (int64) para evitar errores de redondeo de
// punto flotante.
package money

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var hundred = decimal.NewFromInt(100)

// ToCents convierte un monto en unidades mayores a centavos (redondeo al
// centavo más cercano). Se espera un monto ya validado (finito, >= 0).
func ToCents(amount decimal.Decimal) int64 {
	return amount.Mul(hundred).Round(0).IntPart()
}

// FromCents convierte centavos a unidades mayores.
func FromCents(cents int64) decimal.Decimal {
	return decimal.NewFromInt(cents).Div(hundred)
}

// FormatUSD formatea centavos como moneda en inglés americano (ej. $49.99)
// para las respuestas del listado.
func FormatUSD(cents int64) string {
	p := message.NewPrinter(language.AmericanEnglish)
	amount, _ := FromCents(cents).Float64()
	return p.Sprint(currency.Symbol(currency.USD.Amount(amount)))
}
