// Package money convierte montos escritos por el usuario (con separadores
// localizados) a centavos enteros y viceversa. Todo el dinero del sistema se
// maneja en centavos para evitar errores de redondeo de punto flotante.
package money

import (
	"strings"

	"github.com/shopspring/decimal"
)

var centFactor = decimal.NewFromInt(100)

// ParseToCents convierte un string localizado a centavos enteros.
//
// Reglas de separadores:
//   - Si aparecen "," y ".", el "." es separador de miles y la "," el
//     decimal ("1.234,56" → 123456).
//   - Si solo aparece uno, la "," (si está) es el punto decimal; si no, el ".".
//
// Entrada vacía o no parseable retorna 0 (política permisiva, nunca error:
// el editor de precios trata el texto ilegible como monto cero).
func ParseToCents(input string) int64 {
	s := strings.TrimSpace(input)
	if s == "" {
		return 0
	}

	hasComma := strings.Contains(s, ",")
	hasDot := strings.Contains(s, ".")
	switch {
	case hasComma && hasDot:
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	case hasComma:
		s = strings.ReplaceAll(s, ",", ".")
	}

	// Quita símbolos de moneda, espacios y cualquier otro carácter ajeno
	// (incluido el signo: los montos del editor son siempre no negativos)
	var b strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' {
			b.WriteRune(r)
		}
	}
	cleaned := b.String()
	if cleaned == "" {
		return 0
	}

	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}
	return d.Mul(centFactor).Round(0).IntPart()
}

// FormatCents renderiza centavos con exactamente dos decimales y coma como
// separador decimal, para round-trip en los editores ("1234" → "12,34").
func FormatCents(cents int64) string {
	s := decimal.NewFromInt(cents).Div(centFactor).StringFixed(2)
	return strings.ReplaceAll(s, ".", ",")
}
