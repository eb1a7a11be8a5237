package domain

// IndexKind identifica o índice de correção monetária aplicado.
type IndexKind string

const (
	IndexSELIC IndexKind = "selic"
	IndexIPCA  IndexKind = "ipca"
	IndexTJSP  IndexKind = "tjsp"
)

// CorrectionInput carrega os campos do formulário como recebidos: valores
// monetários com vírgula decimal e datas no formato ISO (2006-01-02).
type CorrectionInput struct {
	Valor       string `json:"valor"`
	DataInicial string `json:"data_inicial"`
	DataFinal   string `json:"data_final"`
	Indice      string `json:"indice"`
}

type CorrectionResult struct {
	ValorOriginal     float64   `json:"valor_original"`
	Correcao          float64   `json:"correcao"`
	ValorCorrigido    float64   `json:"valor_corrigido"`
	Juros             float64   `json:"juros"`
	Total             float64   `json:"total"`
	DiasDecorridos    int       `json:"dias_decorridos"`
	MesesDecorridos   int       `json:"meses_decorridos"`
	TaxaCorrecaoAnual float64   `json:"taxa_correcao_anual"`
	TaxaJurosMensal   float64   `json:"taxa_juros_mensal"`
	DataInicial       string    `json:"data_inicial"`
	DataFinal         string    `json:"data_final"`
	Indice            IndexKind `json:"indice"`

	// TipoCalculo distingue a variante cível da penal no registro
	// exportado; a aritmética é a mesma.
	TipoCalculo CalculationType `json:"tipo_calculo"`
}
