package repository

import (
	"time"

	"github.com/google/uuid"

	"calcjus/domain"
)

// RecordRepositoryMemory guarda o registro corrente em memória. É o backend
// padrão: o registro vive apenas enquanto o processo roda.
type RecordRepositoryMemory struct {
	current *domain.CalculationRecord
}

func NewRecordRepositoryMemory() *RecordRepositoryMemory {
	return &RecordRepositoryMemory{}
}

// Replace sobrescreve o registro corrente, carimbando ID e horário.
func (r *RecordRepositoryMemory) Replace(record domain.CalculationRecord) error {
	record.ID = uuid.NewString()
	record.GeneratedAt = time.Now().UTC()
	r.current = &record
	return nil
}

// Merge aplica uma atualização parcial sobre o registro corrente. Sem
// registro prévio, equivale a Replace.
func (r *RecordRepositoryMemory) Merge(partial domain.CalculationRecord) error {
	if r.current == nil {
		return r.Replace(partial)
	}
	r.current.MergeFrom(partial)
	r.current.GeneratedAt = time.Now().UTC()
	return nil
}

func (r *RecordRepositoryMemory) Read() (domain.CalculationRecord, bool) {
	if r.current == nil {
		return domain.CalculationRecord{}, false
	}
	return *r.current, true
}
