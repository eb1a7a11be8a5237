package service

// Constantes das fórmulas. As taxas são médias de referência usadas como
// aproximação, não os índices oficiais publicados mês a mês.
const (
	// Correção monetária (taxa nominal anual por índice).
	TaxaAnualSelic = 0.055 // SELIC média
	TaxaAnualIPCA  = 0.045 // IPCA-E médio
	TaxaAnualTJSP  = 0.048 // Tabela Prática TJSP média

	// Juros moratórios: 1% ao mês, simples, sobre o valor corrigido.
	TaxaJurosMensal = 0.01

	DiasPorAno = 365.0

	// Trabalhista.
	SalarioMinimo         = 1320.00 // vigente em 2024
	JornadaMensalHoras    = 220.0
	FatorHoraExtra        = 1.5
	FatorAdicionalNoturno = 0.20
	FatorPericulosidade   = 0.30
	AliquotaFgts          = 0.08
	FatorMultaFgts        = 0.40
	AliquotaINSS          = 0.11 // faixa máxima, aproximação
	LimiteIsencaoIRRF     = 4664.68
	AliquotaIRRF          = 0.275
	ParcelaDeduzirIRRF    = 869.36

	// Prazos: teto de segurança para o laço de dias úteis.
	PrazoMaximoDias = 10_000
)
