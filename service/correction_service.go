package service

import (
	"math"

	"github.com/rs/zerolog"

	"calcjus/currency"
	"calcjus/dates"
	"calcjus/domain"
	"calcjus/repository"
)

// CorrectionService aplica correção monetária composta e juros moratórios
// simples sobre um valor principal. O mesmo motor atende os cálculos cível
// e penal; muda apenas a marcação do registro.
type CorrectionService struct {
	records repository.RecordRepository
	log     zerolog.Logger
}

func NewCorrectionService(records repository.RecordRepository, log zerolog.Logger) *CorrectionService {
	return &CorrectionService{
		records: records,
		log:     log.With().Str("component", "correction").Logger(),
	}
}

// CalculateCivil corrige um débito cível.
func (s *CorrectionService) CalculateCivil(input domain.CorrectionInput) (domain.CorrectionResult, error) {
	return s.calculate(input, domain.CalculationCivil)
}

// CalculateCriminal corrige uma pena de multa.
func (s *CorrectionService) CalculateCriminal(input domain.CorrectionInput) (domain.CorrectionResult, error) {
	return s.calculate(input, domain.CalculationCriminal)
}

func (s *CorrectionService) calculate(input domain.CorrectionInput, kind domain.CalculationType) (domain.CorrectionResult, error) {
	valor, ok := currency.Parse(input.Valor)
	if !ok || valor <= 0 {
		return domain.CorrectionResult{}, domain.ErrDadosIncompletos
	}
	inicio, ok := dates.Parse(input.DataInicial)
	if !ok {
		return domain.CorrectionResult{}, domain.ErrDadosIncompletos
	}
	fim, ok := dates.Parse(input.DataFinal)
	if !ok {
		return domain.CorrectionResult{}, domain.ErrDadosIncompletos
	}

	// Intervalo invertido não é rejeitado: dias negativos produzem correção
	// e juros negativos, e a conferência fica com o revisor.
	dias := dates.DaysBetween(inicio, fim)
	meses := dates.MonthsBetweenCeil(dias)

	indice, taxaAnual := resolveIndice(input.Indice)

	correcao := valor * (math.Pow(1+taxaAnual, float64(dias)/DiasPorAno) - 1)
	valorCorrigido := valor + correcao
	juros := valorCorrigido * (TaxaJurosMensal * float64(meses))
	total := valorCorrigido + juros

	result := domain.CorrectionResult{
		ValorOriginal:     valor,
		Correcao:          correcao,
		ValorCorrigido:    valorCorrigido,
		Juros:             juros,
		Total:             total,
		DiasDecorridos:    dias,
		MesesDecorridos:   meses,
		TaxaCorrecaoAnual: taxaAnual,
		TaxaJurosMensal:   TaxaJurosMensal,
		DataInicial:       input.DataInicial,
		DataFinal:         input.DataFinal,
		Indice:            indice,
		TipoCalculo:       kind,
	}

	record := domain.CalculationRecord{Type: kind, Correction: &result}
	if err := s.records.Replace(record); err != nil {
		s.log.Warn().Err(err).Msg("falha ao guardar o resultado")
	}

	return result, nil
}

// resolveIndice mapeia a opção do formulário para o índice e sua taxa.
// Valores desconhecidos caem na SELIC, o padrão do formulário.
func resolveIndice(s string) (domain.IndexKind, float64) {
	switch domain.IndexKind(s) {
	case domain.IndexIPCA:
		return domain.IndexIPCA, TaxaAnualIPCA
	case domain.IndexTJSP:
		return domain.IndexTJSP, TaxaAnualTJSP
	default:
		return domain.IndexSELIC, TaxaAnualSelic
	}
}
