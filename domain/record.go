package domain

import "time"

// CalculationType marca qual calculadora produziu o registro e decide o
// layout do relatório exportado.
type CalculationType string

const (
	CalculationCivil    CalculationType = "civil"
	CalculationCriminal CalculationType = "criminal"
	CalculationLabor    CalculationType = "labor"
	CalculationDeadline CalculationType = "deadline"
)

// CalculationRecord guarda o último resultado produzido por qualquer
// calculadora. Exatamente um dos ponteiros de variante é não-nulo, conforme
// Type. Um novo cálculo substitui o registro inteiro; não há histórico.
type CalculationRecord struct {
	ID          string            `json:"id"`
	Type        CalculationType   `json:"type"`
	GeneratedAt time.Time         `json:"generated_at"`
	Correction  *CorrectionResult `json:"correction,omitempty"`
	Labor       *LaborResult      `json:"labor,omitempty"`
	Deadline    *DeadlineResult   `json:"deadline,omitempty"`
}

// MergeFrom copia para o registro os campos preenchidos de partial, desde
// que sejam do mesmo tipo de cálculo. Tipos diferentes nunca se misturam:
// nesse caso o registro é substituído por completo.
func (r *CalculationRecord) MergeFrom(partial CalculationRecord) {
	if partial.Type != "" && partial.Type != r.Type {
		id := r.ID
		*r = partial
		r.ID = id
		return
	}
	if partial.Correction != nil {
		r.Correction = partial.Correction
	}
	if partial.Labor != nil {
		r.Labor = partial.Labor
	}
	if partial.Deadline != nil {
		r.Deadline = partial.Deadline
	}
}
