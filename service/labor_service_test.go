package service

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"calcjus/domain"
	"calcjus/repository"
)

func newLaborService(records repository.RecordRepository) *LaborService {
	return NewLaborService(records, zerolog.Nop())
}

// somaVerbas reproduz a definição do total bruto: a soma exata das verbas
// positivas do resultado.
func somaVerbas(r domain.LaborResult) float64 {
	return r.Fgts + r.MultaFgts + r.FeriasVencidas + r.FeriasProporcionais +
		r.DecimoTerceiro + r.AvisoPrevioIndenizado + r.AvisoPrevioTrabalhado +
		r.SaldoSalario + r.HorasExtras + r.AdicionalNoturno + r.Insalubridade +
		r.Periculosidade + r.Comissoes + r.Gratificacoes + r.SalarioFamilia
}

func TestLabor_SemJustaCausaBasico(t *testing.T) {
	records := repository.NewRecordRepositoryMemory()
	svc := newLaborService(records)

	result, err := svc.Calculate(domain.LaborInput{
		Salario:      "2200,00",
		DataAdmissao: "2022-01-01",
		DataDemissao: "2023-01-01",
		TipoRescisao: "semJustaCausa",
	})
	require.NoError(t, err)

	assert.InDelta(t, 11.9908, result.MesesTrabalhados, 0.001)

	// FGTS = base × 8% × meses; multa de 40% devida na dispensa sem justa
	// causa.
	assert.InDelta(t, 2200*AliquotaFgts*result.MesesTrabalhados, result.Fgts, 1e-9)
	assert.InDelta(t, result.Fgts*FatorMultaFgts, result.MultaFgts, 1e-9)

	// Menos de um ano completo: só proporcionais.
	assert.Zero(t, result.FeriasVencidas)
	assert.InDelta(t, (2200+2200.0/3)*(11.0/12), result.FeriasProporcionais, 1e-9)
	assert.InDelta(t, 2200*(11.0/12), result.DecimoTerceiro, 1e-9)

	assert.InDelta(t, 2200, result.AvisoPrevioIndenizado, 1e-9)
	assert.InDelta(t, 2200, result.AvisoPrevioTrabalhado, 1e-9)
	assert.InDelta(t, 1100, result.SaldoSalario, 1e-9)

	assert.InDelta(t, somaVerbas(result), result.TotalBruto, 1e-9)
	assert.InDelta(t, result.TotalBruto*AliquotaINSS, result.DescontoINSS, 1e-9)
	assert.InDelta(t, result.TotalBruto-result.DescontoINSS-result.DescontoIRRF, result.TotalLiquido, 1e-9)
	assert.LessOrEqual(t, result.TotalLiquido, result.TotalBruto)

	record, ok := records.Read()
	require.True(t, ok)
	assert.Equal(t, domain.CalculationLabor, record.Type)
	require.NotNil(t, record.Labor)
}

func TestLabor_MultaFgtsPorModalidade(t *testing.T) {
	tests := []struct {
		tipo     string
		temMulta bool
	}{
		{"semJustaCausa", true},
		{"acordoMutuo", true},
		{"comJustaCausa", false},
		{"pedidoDemissao", false},
	}

	for _, tt := range tests {
		t.Run(tt.tipo, func(t *testing.T) {
			svc := newLaborService(repository.NewRecordRepositoryMemory())
			result, err := svc.Calculate(domain.LaborInput{
				Salario:      "3000,00",
				DataAdmissao: "2020-01-01",
				DataDemissao: "2023-06-15",
				TipoRescisao: tt.tipo,
			})
			require.NoError(t, err)

			if tt.temMulta {
				assert.Positive(t, result.MultaFgts)
				assert.InDelta(t, result.Fgts*FatorMultaFgts, result.MultaFgts, 1e-9)
			} else {
				assert.Zero(t, result.MultaFgts)
			}
		})
	}
}

func TestLabor_AvisoPrevioPorModalidade(t *testing.T) {
	svc := newLaborService(repository.NewRecordRepositoryMemory())

	comJusta, err := svc.Calculate(domain.LaborInput{
		Salario:      "3000,00",
		DataAdmissao: "2020-01-01",
		DataDemissao: "2023-06-15",
		TipoRescisao: "comJustaCausa",
	})
	require.NoError(t, err)
	assert.Zero(t, comJusta.AvisoPrevioIndenizado)
	assert.Zero(t, comJusta.AvisoPrevioTrabalhado)

	pedido, err := svc.Calculate(domain.LaborInput{
		Salario:      "3000,00",
		DataAdmissao: "2020-01-01",
		DataDemissao: "2023-06-15",
		TipoRescisao: "pedidoDemissao",
	})
	require.NoError(t, err)
	assert.Zero(t, pedido.AvisoPrevioIndenizado)
	assert.InDelta(t, 3000, pedido.AvisoPrevioTrabalhado, 1e-9)
}

func TestLabor_AdicionaisCompoemBase(t *testing.T) {
	svc := newLaborService(repository.NewRecordRepositoryMemory())

	result, err := svc.Calculate(domain.LaborInput{
		Salario:        "2000,00",
		DataAdmissao:   "2021-01-01",
		DataDemissao:   "2023-01-01",
		TipoRescisao:   "semJustaCausa",
		Insalubridade:  "20",
		Periculosidade: "sim",
	})
	require.NoError(t, err)

	// Insalubridade de 20% sobre o salário mínimo; periculosidade de 30%
	// sobre o salário base.
	assert.InDelta(t, SalarioMinimo*0.20, result.Insalubridade, 1e-9)
	assert.InDelta(t, 2000*FatorPericulosidade, result.Periculosidade, 1e-9)

	base := 2000 + result.Insalubridade + result.Periculosidade
	assert.InDelta(t, base*AliquotaFgts*result.MesesTrabalhados, result.Fgts, 1e-9)
	assert.InDelta(t, base, result.AvisoPrevioIndenizado, 1e-9)
	assert.InDelta(t, base*0.5, result.SaldoSalario, 1e-9)

	// Mais de um período aquisitivo completo: férias vencidas com o terço.
	assert.InDelta(t, base+base/3, result.FeriasVencidas, 1e-9)
}

func TestLabor_HorasExtrasENoturno(t *testing.T) {
	svc := newLaborService(repository.NewRecordRepositoryMemory())

	result, err := svc.Calculate(domain.LaborInput{
		Salario:          "2200,00",
		DataAdmissao:     "2022-01-01",
		DataDemissao:     "2023-01-01",
		TipoRescisao:     "semJustaCausa",
		HorasExtras:      "10",
		AdicionalNoturno: "20",
	})
	require.NoError(t, err)

	valorHora := 2200.0 / JornadaMensalHoras
	assert.InDelta(t, 10*valorHora*FatorHoraExtra, result.HorasExtras, 1e-9)
	assert.InDelta(t, 20*valorHora*FatorAdicionalNoturno, result.AdicionalNoturno, 1e-9)
}

func TestLabor_ExtrasPassamDireto(t *testing.T) {
	svc := newLaborService(repository.NewRecordRepositoryMemory())

	result, err := svc.Calculate(domain.LaborInput{
		Salario:        "2200,00",
		DataAdmissao:   "2022-01-01",
		DataDemissao:   "2023-01-01",
		TipoRescisao:   "semJustaCausa",
		Comissoes:      "350,00",
		Gratificacoes:  "120,50",
		SalarioFamilia: "59,82",
	})
	require.NoError(t, err)

	assert.InDelta(t, 350.00, result.Comissoes, 1e-9)
	assert.InDelta(t, 120.50, result.Gratificacoes, 1e-9)
	assert.InDelta(t, 59.82, result.SalarioFamilia, 1e-9)
	assert.InDelta(t, somaVerbas(result), result.TotalBruto, 1e-9)
}

func TestLabor_OpcionaisIlegiveisValemZero(t *testing.T) {
	svc := newLaborService(repository.NewRecordRepositoryMemory())

	result, err := svc.Calculate(domain.LaborInput{
		Salario:       "2200,00",
		DataAdmissao:  "2022-01-01",
		DataDemissao:  "2023-01-01",
		TipoRescisao:  "semJustaCausa",
		HorasExtras:   "muitas",
		Comissoes:     "",
		Insalubridade: "n/a",
	})
	require.NoError(t, err, "opcional ilegível não invalida o cálculo")

	assert.Zero(t, result.HorasExtras)
	assert.Zero(t, result.Comissoes)
	assert.Zero(t, result.Insalubridade)
}

func TestLabor_IRRF(t *testing.T) {
	svc := newLaborService(repository.NewRecordRepositoryMemory())

	// Contrato curto com salário baixo fica abaixo do limite de isenção.
	isento, err := svc.Calculate(domain.LaborInput{
		Salario:      "800,00",
		DataAdmissao: "2023-10-01",
		DataDemissao: "2023-12-01",
		TipoRescisao: "pedidoDemissao",
	})
	require.NoError(t, err)
	require.Less(t, isento.TotalBruto, LimiteIsencaoIRRF)
	assert.Zero(t, isento.DescontoIRRF)

	// Rescisão longa ultrapassa o limite e aplica a alíquota única.
	tributado, err := svc.Calculate(domain.LaborInput{
		Salario:      "5000,00",
		DataAdmissao: "2018-01-01",
		DataDemissao: "2023-01-01",
		TipoRescisao: "semJustaCausa",
	})
	require.NoError(t, err)
	require.Greater(t, tributado.TotalBruto, LimiteIsencaoIRRF)
	assert.InDelta(t, tributado.TotalBruto*AliquotaIRRF-ParcelaDeduzirIRRF, tributado.DescontoIRRF, 1e-9)
}

func TestLabor_DadosIncompletos(t *testing.T) {
	tests := []struct {
		name  string
		input domain.LaborInput
	}{
		{"salário em branco", domain.LaborInput{DataAdmissao: "2022-01-01", DataDemissao: "2023-01-01"}},
		{"salário zero", domain.LaborInput{Salario: "0", DataAdmissao: "2022-01-01", DataDemissao: "2023-01-01"}},
		{"sem admissão", domain.LaborInput{Salario: "2200,00", DataDemissao: "2023-01-01"}},
		{"sem demissão", domain.LaborInput{Salario: "2200,00", DataAdmissao: "2022-01-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records := repository.NewRecordRepositoryMemory()
			svc := newLaborService(records)

			_, err := svc.Calculate(tt.input)
			assert.ErrorIs(t, err, domain.ErrDadosIncompletos)

			_, ok := records.Read()
			assert.False(t, ok, "guard não produz registro")
		})
	}
}

func TestLabor_Idempotente(t *testing.T) {
	svc := newLaborService(repository.NewRecordRepositoryMemory())
	input := domain.LaborInput{
		Salario:      "3456,78",
		DataAdmissao: "2019-05-20",
		DataDemissao: "2024-02-29",
		TipoRescisao: "acordoMutuo",
		HorasExtras:  "12,5",
	}

	a, err := svc.Calculate(input)
	require.NoError(t, err)
	b, err := svc.Calculate(input)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
