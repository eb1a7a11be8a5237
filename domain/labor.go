package domain

// TerminationType classifica a modalidade de rescisão do contrato.
type TerminationType string

const (
	TerminationWithoutCause TerminationType = "semJustaCausa"
	TerminationWithCause    TerminationType = "comJustaCausa"
	TerminationResignation  TerminationType = "pedidoDemissao"
	TerminationMutual       TerminationType = "acordoMutuo"
)

// LaborInput carrega os campos do formulário trabalhista. Salário e datas
// são obrigatórios; os adicionais em branco valem zero.
type LaborInput struct {
	Salario          string `json:"salario"`
	DataAdmissao     string `json:"data_admissao"`
	DataDemissao     string `json:"data_demissao"`
	TipoRescisao     string `json:"tipo_rescisao"`
	HorasExtras      string `json:"horas_extras"`
	AdicionalNoturno string `json:"adicional_noturno"`
	Insalubridade    string `json:"insalubridade"`
	Periculosidade   string `json:"periculosidade"`
	Comissoes        string `json:"comissoes"`
	Gratificacoes    string `json:"gratificacoes"`
	SalarioFamilia   string `json:"salario_familia"`
}

// LaborResult reúne todas as verbas rescisórias calculadas. TotalBruto é a
// soma exata das verbas positivas; TotalLiquido desconta INSS e IRRF.
type LaborResult struct {
	Salario                float64         `json:"salario"`
	Fgts                   float64         `json:"fgts"`
	MultaFgts              float64         `json:"multa_fgts"`
	FeriasVencidas         float64         `json:"ferias_vencidas"`
	FeriasProporcionais    float64         `json:"ferias_proporcionais"`
	DecimoTerceiro         float64         `json:"decimo_terceiro"`
	AvisoPrevioIndenizado  float64         `json:"aviso_previo_indenizado"`
	AvisoPrevioTrabalhado  float64         `json:"aviso_previo_trabalhado"`
	SaldoSalario           float64         `json:"saldo_salario"`
	HorasExtras            float64         `json:"horas_extras"`
	AdicionalNoturno       float64         `json:"adicional_noturno"`
	Insalubridade          float64         `json:"insalubridade"`
	Periculosidade         float64         `json:"periculosidade"`
	Comissoes              float64         `json:"comissoes"`
	Gratificacoes          float64         `json:"gratificacoes"`
	SalarioFamilia         float64         `json:"salario_familia"`
	DescontoINSS           float64         `json:"desconto_inss"`
	DescontoIRRF           float64         `json:"desconto_irrf"`
	TotalBruto             float64         `json:"total_bruto"`
	TotalLiquido           float64         `json:"total_liquido"`
	MesesTrabalhados       float64         `json:"meses_trabalhados"`
	DataAdmissao           string          `json:"data_admissao"`
	DataDemissao           string          `json:"data_demissao"`
	TipoRescisao           TerminationType `json:"tipo_rescisao"`
}
