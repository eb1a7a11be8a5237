package domain

// ProcessType identifica o ramo processual, usado apenas para as
// observações; não altera a contagem.
type ProcessType string

const (
	ProcessCivil    ProcessType = "civel"
	ProcessLabor    ProcessType = "trabalhista"
	ProcessCriminal ProcessType = "penal"
	ProcessTax      ProcessType = "tributario"
)

// DeadlineInput carrega os campos do formulário de prazos.
// IncluirFeriados = "sim" seleciona a contagem em dias corridos.
type DeadlineInput struct {
	DataInicial     string `json:"data_inicial"`
	Prazo           string `json:"prazo"`
	TipoPrazo       string `json:"tipo_prazo"` // "dias" ou "meses"
	TipoProcesso    string `json:"tipo_processo"`
	IncluirFeriados string `json:"incluir_feriados"`
}

type DeadlineResult struct {
	DataFinal    string   `json:"data_final"`
	DiasUteis    int      `json:"dias_uteis"`
	DiasCorridos int      `json:"dias_corridos"`
	Feriados     int      `json:"feriados"`
	Observacoes  []string `json:"observacoes"`
}
