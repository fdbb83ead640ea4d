package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/panaderia-demo/pkg/money"
)

// ──────────────────────────────────────────────────────────────────────────────
// ParseToCents — desambiguación de separadores
// ──────────────────────────────────────────────────────────────────────────────

func TestParseToCents_ComaDecimal(t *testing.T) {
	assert.Equal(t, int64(1234), money.ParseToCents("12,34"))
}

func TestParseToCents_MilesConPuntoYComaDecimal(t *testing.T) {
	assert.Equal(t, int64(123456), money.ParseToCents("1.234,56"))
}

func TestParseToCents_SoloPuntoEsDecimal(t *testing.T) {
	assert.Equal(t, int64(1234), money.ParseToCents("12.34"))
}

func TestParseToCents_EnteroSinSeparador(t *testing.T) {
	assert.Equal(t, int64(700), money.ParseToCents("7"))
}

func TestParseToCents_SimboloDeMonedaYEspacios(t *testing.T) {
	assert.Equal(t, int64(350), money.ParseToCents("$ 3,50"))
	assert.Equal(t, int64(123456), money.ParseToCents("R$ 1.234,56"))
}

// ──────────────────────────────────────────────────────────────────────────────
// ParseToCents — política de fallo suave
// ──────────────────────────────────────────────────────────────────────────────

func TestParseToCents_VacioRetornaCero(t *testing.T) {
	assert.Equal(t, int64(0), money.ParseToCents(""))
	assert.Equal(t, int64(0), money.ParseToCents("   "))
}

func TestParseToCents_NoParseableRetornaCero(t *testing.T) {
	assert.Equal(t, int64(0), money.ParseToCents("abc"))
	// Varios puntos sin coma no forman un decimal válido
	assert.Equal(t, int64(0), money.ParseToCents("1.234.567"))
}

func TestParseToCents_RedondeaAlCentavoMasCercano(t *testing.T) {
	assert.Equal(t, int64(1235), money.ParseToCents("12,345"))
	assert.Equal(t, int64(1234), money.ParseToCents("12,344"))
}

// ──────────────────────────────────────────────────────────────────────────────
// FormatCents y ley de round-trip
// ──────────────────────────────────────────────────────────────────────────────

func TestFormatCents_DosDecimalesConComa(t *testing.T) {
	assert.Equal(t, "12,34", money.FormatCents(1234))
	assert.Equal(t, "0,00", money.FormatCents(0))
	assert.Equal(t, "0,05", money.FormatCents(5))
	assert.Equal(t, "1234,56", money.FormatCents(123456))
}

func TestRoundTrip_FormatearElParseConservaElValor(t *testing.T) {
	for _, in := range []string{"12,34", "0,05", "350,00", "1,2"} {
		cents := money.ParseToCents(in)
		assert.Equal(t, cents, money.ParseToCents(money.FormatCents(cents)),
			"round-trip debe conservar el valor en centavos para %q", in)
	}
}
