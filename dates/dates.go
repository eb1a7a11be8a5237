// Package dates reúne a aritmética de calendário usada pelas calculadoras:
// diferença de dias e meses, tabela de feriados nacionais e o teste de dia
// útil. Todas as funções são puras; nenhuma consulta o relógio.
package dates

import (
	"math"
	"time"
)

// ISODate é o formato aceito nos formulários.
const ISODate = "2006-01-02"

// BRDate é o formato de exibição pt-BR.
const BRDate = "02/01/2006"

// avgDaysPerMonth converte dias decorridos em meses, seguindo a média do
// calendário gregoriano.
const avgDaysPerMonth = 30.44

// Parse interpreta uma data ISO (2006-01-02). A string vazia ou malformada
// retorna ok=false.
func Parse(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(ISODate, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// DaysBetween devolve a diferença em dias entre start e end, arredondada
// para cima. Intervalos invertidos produzem valores negativos; não há
// validação aqui de propósito.
func DaysBetween(start, end time.Time) int {
	return int(math.Ceil(end.Sub(start).Hours() / 24))
}

// MonthsBetween devolve a quantidade fracionária de meses correspondente a
// days dias.
func MonthsBetween(days int) float64 {
	return float64(days) / avgDaysPerMonth
}

// MonthsBetweenCeil arredonda MonthsBetween para cima, como exige o cálculo
// de juros moratórios.
func MonthsBetweenCeil(days int) int {
	return int(math.Ceil(float64(days) / avgDaysPerMonth))
}

// holiday é um feriado de data fixa, comparado por dia e mês apenas.
type holiday struct {
	day   int
	month time.Month
}

// Feriados nacionais de data fixa. Carnaval e Sexta-feira Santa são móveis
// e ficam fora da tabela; prazos que os atravessam contam um dia útil a
// mais (limitação conhecida).
var nationalHolidays = []holiday{
	{1, time.January},    // Ano Novo
	{21, time.April},     // Tiradentes
	{1, time.May},        // Dia do Trabalhador
	{7, time.September},  // Independência
	{12, time.October},   // Nossa Senhora Aparecida
	{2, time.November},   // Finados
	{15, time.November},  // Proclamação da República
	{25, time.December},  // Natal
}

// NationalHolidays devolve os feriados fixos materializados no ano dado.
func NationalHolidays(year int) []time.Time {
	out := make([]time.Time, 0, len(nationalHolidays))
	for _, h := range nationalHolidays {
		out = append(out, time.Date(year, h.month, h.day, 0, 0, 0, 0, time.UTC))
	}
	return out
}

// IsHoliday compara apenas dia e mês, independente do ano.
func IsHoliday(t time.Time) bool {
	for _, h := range nationalHolidays {
		if t.Day() == h.day && t.Month() == h.month {
			return true
		}
	}
	return false
}

// IsBusinessDay considera útil o dia de segunda a sexta que não seja
// feriado nacional.
func IsBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	if wd == time.Saturday || wd == time.Sunday {
		return false
	}
	return !IsHoliday(t)
}
