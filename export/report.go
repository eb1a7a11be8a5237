// Package export transforma o último registro de cálculo em relatórios
// legíveis (texto e CSV). O layout acompanha o tipo do cálculo: cada
// variante tem sua tabela ordenada de rótulos, e registros de tipo
// desconhecido caem num layout genérico.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strings"
	"time"

	"calcjus/currency"
	"calcjus/dates"
	"calcjus/domain"
)

const (
	headerTitle    = "CALC JUS PRO"
	headerSubtitle = "Calculadora Juridica Profissional"
	footerLine1    = "Este relatorio foi gerado automaticamente pela Calculadora Juridica Profissional"
	footerLine2    = "Sistema baseado em tabelas oficiais e legislacao vigente"
)

// line é um par rótulo/valor já formatado para exibição.
type line struct {
	Label string
	Value string
}

// section agrupa linhas sob um título de seção do relatório.
type section struct {
	Title string
	Lines []line
}

// Renderer monta relatórios a partir de um CalculationRecord. O horário do
// relatório vem de fora para manter a renderização determinística.
type Renderer struct{}

func NewRenderer() Renderer {
	return Renderer{}
}

// Text produz o relatório em texto plano, espelhando as seções do PDF da
// versão original: cabeçalho, dados de entrada, cálculos detalhados e
// rodapé.
func (Renderer) Text(record domain.CalculationRecord, title string, generatedAt time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n%s\n\n", headerTitle, headerSubtitle)
	fmt.Fprintf(&b, "%s\n", title)
	fmt.Fprintf(&b, "Relatorio gerado em: %s as %s\n",
		generatedAt.Format(dates.BRDate), generatedAt.Format("15:04:05"))
	b.WriteString(strings.Repeat("-", 60) + "\n\n")

	for _, sec := range sectionsFor(record) {
		fmt.Fprintf(&b, "%s\n", sec.Title)
		for _, ln := range sec.Lines {
			fmt.Fprintf(&b, "* %s: %s\n", ln.Label, ln.Value)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%s\n%s\n", footerLine1, footerLine2)
	return b.String()
}

// CSV produz o relatório em linhas rótulo;valor, uma seção por bloco.
func (Renderer) CSV(record domain.CalculationRecord, title string, generatedAt time.Time) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = ';'

	rows := [][]string{
		{headerTitle, headerSubtitle},
		{"Relatorio", title},
		{"Gerado em", generatedAt.Format(dates.BRDate + " 15:04:05")},
		{},
	}
	for _, sec := range sectionsFor(record) {
		rows = append(rows, []string{sec.Title})
		for _, ln := range sec.Lines {
			rows = append(rows, []string{ln.Label, ln.Value})
		}
		rows = append(rows, []string{})
	}

	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("escrever csv: %w", err)
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}

// sectionsFor escolhe o layout pela variante do registro.
func sectionsFor(record domain.CalculationRecord) []section {
	switch record.Type {
	case domain.CalculationCivil:
		if record.Correction != nil {
			return civilSections(*record.Correction)
		}
	case domain.CalculationCriminal:
		if record.Correction != nil {
			return criminalSections(*record.Correction)
		}
	case domain.CalculationLabor:
		if record.Labor != nil {
			return laborSections(*record.Labor)
		}
	case domain.CalculationDeadline:
		if record.Deadline != nil {
			return deadlineSections(*record.Deadline)
		}
	}
	return genericSections(record)
}

func civilSections(r domain.CorrectionResult) []section {
	entrada := []line{
		{"Valor Principal", currency.Format(r.ValorOriginal)},
		{"Periodo", fmt.Sprintf("%s a %s", formatISO(r.DataInicial), formatISO(r.DataFinal))},
		{"Dias decorridos", fmt.Sprintf("%d dias (%d meses)", r.DiasDecorridos, r.MesesDecorridos)},
		{"Taxa de correcao", fmt.Sprintf("%.2f%% a.a.", r.TaxaCorrecaoAnual*100)},
		{"Taxa de juros", fmt.Sprintf("%.2f%% a.m.", r.TaxaJurosMensal*100)},
	}
	detalhes := []line{
		{"Valor Principal", currency.Format(r.ValorOriginal)},
		{"Correcao Monetaria", currency.Format(r.Correcao)},
		{"Valor Corrigido", currency.Format(r.ValorCorrigido)},
		{"Juros Moratorios", currency.Format(r.Juros)},
		{"VALOR TOTAL", currency.Format(r.Total)},
	}
	return []section{
		{"DADOS DE ENTRADA", entrada},
		{"CALCULOS DETALHADOS", detalhes},
	}
}

func criminalSections(r domain.CorrectionResult) []section {
	entrada := []line{
		{"Valor da multa/reparacao", currency.Format(r.ValorOriginal)},
		{"Periodo", fmt.Sprintf("%s a %s", formatISO(r.DataInicial), formatISO(r.DataFinal))},
	}
	detalhes := []line{
		{"Valor Original", currency.Format(r.ValorOriginal)},
		{"Correcao Monetaria", currency.Format(r.Correcao)},
		{"Juros Moratorios", currency.Format(r.Juros)},
		{"VALOR TOTAL ATUALIZADO", currency.Format(r.Total)},
	}
	return []section{
		{"DADOS DE ENTRADA", entrada},
		{"CALCULOS DETALHADOS", detalhes},
	}
}

func laborSections(r domain.LaborResult) []section {
	entrada := []line{
		{"Salario base", currency.Format(r.Salario)},
		{"Periodo trabalhado", fmt.Sprintf("%s a %s", formatISO(r.DataAdmissao), formatISO(r.DataDemissao))},
	}
	verbas := []line{
		{"FGTS (8%)", currency.Format(r.Fgts)},
		{"Multa FGTS (40%)", currency.Format(r.MultaFgts)},
		{"Ferias Vencidas", currency.Format(r.FeriasVencidas)},
		{"Ferias Proporcionais", currency.Format(r.FeriasProporcionais)},
		{"13° Salario Proporcional", currency.Format(r.DecimoTerceiro)},
		{"Aviso Previo Indenizado", currency.Format(r.AvisoPrevioIndenizado)},
		{"Aviso Previo Trabalhado", currency.Format(r.AvisoPrevioTrabalhado)},
		{"Saldo de Salario", currency.Format(r.SaldoSalario)},
		{"Horas Extras", currency.Format(r.HorasExtras)},
		{"Adicional Noturno", currency.Format(r.AdicionalNoturno)},
		{"Insalubridade", currency.Format(r.Insalubridade)},
		{"Periculosidade", currency.Format(r.Periculosidade)},
		{"Comissoes", currency.Format(r.Comissoes)},
		{"Gratificacoes", currency.Format(r.Gratificacoes)},
		{"Salario Familia", currency.Format(r.SalarioFamilia)},
		{"TOTAL BRUTO", currency.Format(r.TotalBruto)},
		{"Desconto INSS (-)", currency.Format(r.DescontoINSS)},
		{"Desconto IRRF (-)", currency.Format(r.DescontoIRRF)},
		{"TOTAL LIQUIDO", currency.Format(r.TotalLiquido)},
	}
	return []section{
		{"DADOS DE ENTRADA", entrada},
		{"VERBAS TRABALHISTAS CALCULADAS", verbas},
	}
}

func deadlineSections(r domain.DeadlineResult) []section {
	contagem := []line{
		{"Data final", r.DataFinal},
		{"Dias uteis contados", fmt.Sprintf("%d", r.DiasUteis)},
		{"Dias corridos", fmt.Sprintf("%d", r.DiasCorridos)},
		{"Feriados no periodo", fmt.Sprintf("%d", r.Feriados)},
	}
	obs := make([]line, 0, len(r.Observacoes))
	for i, o := range r.Observacoes {
		obs = append(obs, line{fmt.Sprintf("Observacao %d", i+1), o})
	}
	return []section{
		{"CONTAGEM DO PRAZO", contagem},
		{"OBSERVACOES", obs},
	}
}

// genericSections cobre registros sem variante reconhecível; qualquer valor
// monetário disponível sai como linha genérica de moeda.
func genericSections(record domain.CalculationRecord) []section {
	var detalhes []line
	if r := record.Correction; r != nil {
		detalhes = append(detalhes,
			line{"Valor Principal", currency.Format(r.ValorOriginal)},
			line{"Correcao Monetaria", currency.Format(r.Correcao)},
			line{"Juros Moratorios", currency.Format(r.Juros)},
			line{"VALOR TOTAL", currency.Format(r.Total)},
		)
	}
	if len(detalhes) == 0 {
		detalhes = append(detalhes, line{"Registro", string(record.Type)})
	}
	return []section{{"CALCULOS DETALHADOS", detalhes}}
}

// formatISO reapresenta uma data ISO dos formulários no padrão pt-BR; se a
// string não for uma data, volta como veio.
func formatISO(s string) string {
	t, ok := dates.Parse(s)
	if !ok {
		return s
	}
	return t.Format(dates.BRDate)
}
