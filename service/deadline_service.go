package service

import (
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"calcjus/dates"
	"calcjus/domain"
	"calcjus/repository"
)

// DeadlineService projeta a data final de um prazo processual, em dias
// úteis ou corridos, e anexa as observações do ramo processual.
type DeadlineService struct {
	records repository.RecordRepository
	log     zerolog.Logger
}

func NewDeadlineService(records repository.RecordRepository, log zerolog.Logger) *DeadlineService {
	return &DeadlineService{
		records: records,
		log:     log.With().Str("component", "deadline").Logger(),
	}
}

func (s *DeadlineService) Calculate(input domain.DeadlineInput) (domain.DeadlineResult, error) {
	inicio, ok := dates.Parse(input.DataInicial)
	if !ok {
		return domain.DeadlineResult{}, domain.ErrDadosIncompletos
	}
	prazo, err := strconv.Atoi(strings.TrimSpace(input.Prazo))
	if err != nil || prazo <= 0 || prazo > PrazoMaximoDias {
		return domain.DeadlineResult{}, domain.ErrDadosIncompletos
	}

	diasCorridosMode := input.IncluirFeriados == "sim"

	var result domain.DeadlineResult
	if diasCorridosMode {
		// Dias corridos: soma direta, sem filtro de fim de semana ou
		// feriado.
		final := inicio.AddDate(0, 0, prazo)
		if input.TipoPrazo == "meses" {
			final = inicio.AddDate(0, prazo, 0)
		}
		result = domain.DeadlineResult{
			DataFinal:    final.Format(dates.BRDate),
			DiasUteis:    prazo,
			DiasCorridos: prazo,
		}
	} else {
		result = countBusinessDays(inicio, prazo)
	}

	result.Observacoes = advisoryNotes(domain.ProcessType(input.TipoProcesso), diasCorridosMode)

	record := domain.CalculationRecord{Type: domain.CalculationDeadline, Deadline: &result}
	if err := s.records.Replace(record); err != nil {
		s.log.Warn().Err(err).Msg("falha ao guardar o resultado")
	}

	return result, nil
}

// countBusinessDays avança dia a dia a partir da data inicial, consumindo o
// prazo apenas em dias de segunda a sexta que não sejam feriados. O dia
// inicial nunca consome o prazo (dies a quo excluído); se cair em feriado,
// entra apenas na estatística de feriados encontrados.
func countBusinessDays(inicio time.Time, prazo int) domain.DeadlineResult {
	atual := inicio
	restante := prazo
	diasUteis := 0
	diasCorridos := 0
	feriados := 0

	if dates.IsHoliday(inicio) {
		feriados++
	}

	for restante > 0 {
		atual = atual.AddDate(0, 0, 1)
		diasCorridos++
		if dates.IsBusinessDay(atual) {
			diasUteis++
			restante--
		} else if dates.IsHoliday(atual) {
			feriados++
		}
	}

	return domain.DeadlineResult{
		DataFinal:    atual.Format(dates.BRDate),
		DiasUteis:    diasUteis,
		DiasCorridos: diasCorridos,
		Feriados:     feriados,
	}
}

// advisoryNotes devolve as observações do ramo processual e a nota sobre o
// modo de contagem. São informativas; nunca alteram a aritmética.
func advisoryNotes(processo domain.ProcessType, diasCorridos bool) []string {
	var obs []string
	switch processo {
	case domain.ProcessLabor:
		obs = append(obs,
			"Não há suspensão de prazos na Justiça do Trabalho",
			"CLT e Instrução Normativa nº 39 do TST",
		)
	case domain.ProcessCivil:
		obs = append(obs,
			"Suspensão durante recesso forense (20/dez a 06/jan)",
			"CPC/2015 - Arts. 212 a 222",
		)
	case domain.ProcessCriminal:
		obs = append(obs,
			"Suspensão durante recesso forense",
			"CPP - Arts. 798 a 803",
		)
	}
	if diasCorridos {
		obs = append(obs, "Cálculo em dias corridos (inclui feriados e fins de semana)")
	} else {
		obs = append(obs, "Cálculo em dias úteis (seg-sex, exceto feriados)")
	}
	return obs
}
