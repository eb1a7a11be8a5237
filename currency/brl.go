// Package currency interpreta e formata valores em reais. Os formulários
// enviam números com vírgula decimal ("1234,56"); a saída segue o padrão
// pt-BR com separador de milhar ("R$ 1.234,56").
package currency

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Parse converte uma string monetária com vírgula decimal em float64.
// Strings vazias, não numéricas ou não finitas retornam ok=false; o
// chamador decide se o campo era obrigatório.
func Parse(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	s = strings.ReplaceAll(s, ".", "")
	s = strings.ReplaceAll(s, ",", ".")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// ParseOrZero devolve zero para campos opcionais em branco ou ilegíveis,
// em vez de rejeitar o cálculo inteiro.
func ParseOrZero(s string) float64 {
	v, ok := Parse(s)
	if !ok {
		return 0
	}
	return v
}

// Round2 arredonda para duas casas decimais.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Format produz "R$ 1.234,56". Valores negativos mantêm o sinal antes do
// símbolo, como em extratos bancários.
func Format(v float64) string {
	neg := v < 0
	v = math.Abs(v)

	s := strconv.FormatFloat(Round2(v), 'f', 2, 64)
	intPart, fracPart, _ := strings.Cut(s, ".")

	var b strings.Builder
	for i, d := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}

	out := fmt.Sprintf("R$ %s,%s", b.String(), fracPart)
	if neg {
		out = "-" + out
	}
	return out
}
