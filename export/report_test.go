package export

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcjus/domain"
)

var fixedTime = time.Date(2024, time.June, 10, 14, 30, 0, 0, time.UTC)

func civilRecord() domain.CalculationRecord {
	return domain.CalculationRecord{
		ID:   "rec-1",
		Type: domain.CalculationCivil,
		Correction: &domain.CorrectionResult{
			ValorOriginal:     5000,
			Correcao:          275,
			ValorCorrigido:    5275,
			Juros:             633,
			Total:             5908,
			DiasDecorridos:    365,
			MesesDecorridos:   12,
			TaxaCorrecaoAnual: 0.055,
			TaxaJurosMensal:   0.01,
			DataInicial:       "2023-01-01",
			DataFinal:         "2024-01-01",
			Indice:            domain.IndexSELIC,
			TipoCalculo:       domain.CalculationCivil,
		},
	}
}

func TestText_Civil(t *testing.T) {
	out := NewRenderer().Text(civilRecord(), "Atualizacao de Debito Civel", fixedTime)

	assert.Contains(t, out, "CALC JUS PRO")
	assert.Contains(t, out, "Atualizacao de Debito Civel")
	assert.Contains(t, out, "Relatorio gerado em: 10/06/2024 as 14:30:00")
	assert.Contains(t, out, "DADOS DE ENTRADA")
	assert.Contains(t, out, "* Periodo: 01/01/2023 a 01/01/2024")
	assert.Contains(t, out, "* Dias decorridos: 365 dias (12 meses)")
	assert.Contains(t, out, "* Taxa de correcao: 5.50% a.a.")
	assert.Contains(t, out, "CALCULOS DETALHADOS")
	assert.Contains(t, out, "* Correcao Monetaria: R$ 275,00")
	assert.Contains(t, out, "* Valor Corrigido: R$ 5.275,00")
	assert.Contains(t, out, "* VALOR TOTAL: R$ 5.908,00")
}

func TestText_Criminal(t *testing.T) {
	record := civilRecord()
	record.Type = domain.CalculationCriminal
	record.Correction.TipoCalculo = domain.CalculationCriminal

	out := NewRenderer().Text(record, "Correcao de Pena de Multa", fixedTime)

	assert.Contains(t, out, "* Valor da multa/reparacao: R$ 5.000,00")
	assert.Contains(t, out, "* VALOR TOTAL ATUALIZADO: R$ 5.908,00")
	// O layout penal não destaca o valor corrigido intermediário.
	assert.NotContains(t, out, "* Valor Corrigido:")
}

func TestText_Labor(t *testing.T) {
	record := domain.CalculationRecord{
		Type: domain.CalculationLabor,
		Labor: &domain.LaborResult{
			Salario:      2200,
			Fgts:         2110.38,
			MultaFgts:    844.15,
			TotalBruto:   13160.09,
			TotalLiquido: 8962.81,
			DataAdmissao: "2022-01-01",
			DataDemissao: "2023-01-01",
		},
	}

	out := NewRenderer().Text(record, "Rescisao Trabalhista", fixedTime)

	assert.Contains(t, out, "VERBAS TRABALHISTAS CALCULADAS")
	assert.Contains(t, out, "* Salario base: R$ 2.200,00")
	assert.Contains(t, out, "* Periodo trabalhado: 01/01/2022 a 01/01/2023")
	assert.Contains(t, out, "* FGTS (8%): R$ 2.110,38")
	assert.Contains(t, out, "* Multa FGTS (40%): R$ 844,15")
	assert.Contains(t, out, "* TOTAL BRUTO: R$ 13.160,09")
	assert.Contains(t, out, "* TOTAL LIQUIDO: R$ 8.962,81")
}

func TestText_Deadline(t *testing.T) {
	record := domain.CalculationRecord{
		Type: domain.CalculationDeadline,
		Deadline: &domain.DeadlineResult{
			DataFinal:    "06/05/2024",
			DiasUteis:    3,
			DiasCorridos: 5,
			Feriados:     1,
			Observacoes:  []string{"CPC/2015 - Arts. 212 a 222"},
		},
	}

	out := NewRenderer().Text(record, "Contagem de Prazo", fixedTime)

	assert.Contains(t, out, "CONTAGEM DO PRAZO")
	assert.Contains(t, out, "* Data final: 06/05/2024")
	assert.Contains(t, out, "* Feriados no periodo: 1")
	assert.Contains(t, out, "* Observacao 1: CPC/2015 - Arts. 212 a 222")
}

func TestText_FallbackGenerico(t *testing.T) {
	// Tipo desconhecido com uma variante preenchida cai nas linhas
	// genéricas de moeda.
	record := civilRecord()
	record.Type = "whatever"

	out := NewRenderer().Text(record, "Relatorio", fixedTime)
	assert.Contains(t, out, "* Valor Principal: R$ 5.000,00")
	assert.Contains(t, out, "* VALOR TOTAL: R$ 5.908,00")
}

func TestCSV_Civil(t *testing.T) {
	data, err := NewRenderer().CSV(civilRecord(), "Atualizacao", fixedTime)
	require.NoError(t, err)

	out := string(data)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Equal(t, "CALC JUS PRO;Calculadora Juridica Profissional", lines[0])
	assert.Contains(t, out, "Relatorio;Atualizacao")
	assert.Contains(t, out, "Correcao Monetaria;R$ 275,00")
	assert.Contains(t, out, "VALOR TOTAL;R$ 5.908,00")
}
