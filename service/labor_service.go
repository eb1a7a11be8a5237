package service

import (
	"math"

	"github.com/rs/zerolog"

	"calcjus/currency"
	"calcjus/dates"
	"calcjus/domain"
	"calcjus/repository"
)

// LaborService calcula as verbas de uma rescisão trabalhista a partir do
// salário, do período do contrato e da modalidade de desligamento. As
// fórmulas são aproximações documentadas, não um cálculo pericial.
type LaborService struct {
	records repository.RecordRepository
	log     zerolog.Logger
}

func NewLaborService(records repository.RecordRepository, log zerolog.Logger) *LaborService {
	return &LaborService{
		records: records,
		log:     log.With().Str("component", "labor").Logger(),
	}
}

func (s *LaborService) Calculate(input domain.LaborInput) (domain.LaborResult, error) {
	salario, ok := currency.Parse(input.Salario)
	if !ok || salario <= 0 {
		return domain.LaborResult{}, domain.ErrDadosIncompletos
	}
	admissao, ok := dates.Parse(input.DataAdmissao)
	if !ok {
		return domain.LaborResult{}, domain.ErrDadosIncompletos
	}
	demissao, ok := dates.Parse(input.DataDemissao)
	if !ok {
		return domain.LaborResult{}, domain.ErrDadosIncompletos
	}

	tipo := resolveRescisao(input.TipoRescisao)

	diasTrabalhados := dates.DaysBetween(admissao, demissao)
	mesesTrabalhados := dates.MonthsBetween(diasTrabalhados)
	anosTrabalhados := mesesTrabalhados / 12

	// Adicionais: campos em branco valem zero, nunca invalidam o cálculo.
	horasExtras := currency.ParseOrZero(input.HorasExtras) * (salario / JornadaMensalHoras) * FatorHoraExtra
	adicionalNoturno := currency.ParseOrZero(input.AdicionalNoturno) * (salario / JornadaMensalHoras) * FatorAdicionalNoturno

	// Insalubridade incide sobre o salário mínimo, no grau informado (10,
	// 20 ou 40%); periculosidade incide sobre o salário base.
	grauInsalubridade := currency.ParseOrZero(input.Insalubridade)
	insalubridade := 0.0
	if grauInsalubridade > 0 {
		insalubridade = SalarioMinimo * (grauInsalubridade / 100)
	}
	periculosidade := 0.0
	if input.Periculosidade == "sim" {
		periculosidade = salario * FatorPericulosidade
	}

	comissoes := currency.ParseOrZero(input.Comissoes)
	gratificacoes := currency.ParseOrZero(input.Gratificacoes)
	salarioFamilia := currency.ParseOrZero(input.SalarioFamilia)

	// Base de cálculo das verbas rescisórias.
	base := salario + insalubridade + periculosidade

	// FGTS: 8% da remuneração por mês trabalhado, acumulação simples.
	fgts := base * AliquotaFgts * mesesTrabalhados
	multaFgts := 0.0
	if tipo == domain.TerminationWithoutCause || tipo == domain.TerminationMutual {
		multaFgts = fgts * FatorMultaFgts
	}

	// Férias vencidas (período aquisitivo completo) com o terço
	// constitucional.
	feriasVencidas := 0.0
	if math.Floor(anosTrabalhados) > 0 {
		feriasVencidas = base + base/3
	}

	// Proporcionais do ano corrente: meses inteiros além dos períodos
	// aquisitivos completos.
	mesesProporcionais := math.Floor(math.Mod(mesesTrabalhados, 12))
	feriasProporcionais := 0.0
	if mesesProporcionais > 0 {
		feriasProporcionais = (base + base/3) * (mesesProporcionais / 12)
	}
	decimoTerceiro := base * (mesesProporcionais / 12)

	avisoIndenizado := 0.0
	if tipo == domain.TerminationWithoutCause {
		avisoIndenizado = base
	}
	avisoTrabalhado := base
	if tipo == domain.TerminationWithCause {
		avisoTrabalhado = 0
	}

	// Aproximação de meio mês; o motor não conta os dias do mês em curso.
	saldoSalario := base * 0.5

	totalBruto := fgts + multaFgts + feriasVencidas + feriasProporcionais +
		decimoTerceiro + avisoIndenizado + avisoTrabalhado + saldoSalario +
		horasExtras + adicionalNoturno + insalubridade + periculosidade +
		comissoes + gratificacoes + salarioFamilia

	descontoINSS := totalBruto * AliquotaINSS
	descontoIRRF := 0.0
	if totalBruto > LimiteIsencaoIRRF {
		descontoIRRF = totalBruto*AliquotaIRRF - ParcelaDeduzirIRRF
	}
	totalLiquido := totalBruto - descontoINSS - descontoIRRF

	result := domain.LaborResult{
		Salario:               salario,
		Fgts:                  fgts,
		MultaFgts:             multaFgts,
		FeriasVencidas:        feriasVencidas,
		FeriasProporcionais:   feriasProporcionais,
		DecimoTerceiro:        decimoTerceiro,
		AvisoPrevioIndenizado: avisoIndenizado,
		AvisoPrevioTrabalhado: avisoTrabalhado,
		SaldoSalario:          saldoSalario,
		HorasExtras:           horasExtras,
		AdicionalNoturno:      adicionalNoturno,
		Insalubridade:         insalubridade,
		Periculosidade:        periculosidade,
		Comissoes:             comissoes,
		Gratificacoes:         gratificacoes,
		SalarioFamilia:        salarioFamilia,
		DescontoINSS:          descontoINSS,
		DescontoIRRF:          descontoIRRF,
		TotalBruto:            totalBruto,
		TotalLiquido:          totalLiquido,
		MesesTrabalhados:      mesesTrabalhados,
		DataAdmissao:          input.DataAdmissao,
		DataDemissao:          input.DataDemissao,
		TipoRescisao:          tipo,
	}

	record := domain.CalculationRecord{Type: domain.CalculationLabor, Labor: &result}
	if err := s.records.Replace(record); err != nil {
		s.log.Warn().Err(err).Msg("falha ao guardar o resultado")
	}

	return result, nil
}

// resolveRescisao aceita a modalidade do formulário; valores desconhecidos
// caem em "sem justa causa", o padrão do formulário original.
func resolveRescisao(s string) domain.TerminationType {
	switch domain.TerminationType(s) {
	case domain.TerminationWithCause:
		return domain.TerminationWithCause
	case domain.TerminationResignation:
		return domain.TerminationResignation
	case domain.TerminationMutual:
		return domain.TerminationMutual
	default:
		return domain.TerminationWithoutCause
	}
}
