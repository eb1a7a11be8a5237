package repository

import "calcjus/domain"

// RecordRepository guarda o último registro de cálculo produzido por
// qualquer calculadora. Há no máximo um registro vivo: Replace sobrescreve,
// Merge atualiza campos de um registro do mesmo tipo e Read devolve o
// registro corrente, se existir.
type RecordRepository interface {
	Replace(record domain.CalculationRecord) error
	Merge(partial domain.CalculationRecord) error
	Read() (domain.CalculationRecord, bool)
}
