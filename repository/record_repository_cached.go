package repository

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"

	"calcjus/domain"
)

// recordKey é a chave única do registro corrente no cache.
const recordKey = "calcjus:last_record"

// RecordRepositoryCached guarda o registro corrente serializado em JSON num
// CacheRepository (Redis em produção, MockCache em teste).
type RecordRepositoryCached struct {
	cache CacheRepository
}

func NewRecordRepositoryCached(cache CacheRepository) *RecordRepositoryCached {
	return &RecordRepositoryCached{cache: cache}
}

func (r *RecordRepositoryCached) Replace(record domain.CalculationRecord) error {
	record.ID = uuid.NewString()
	record.GeneratedAt = time.Now().UTC()
	return r.write(record)
}

func (r *RecordRepositoryCached) Merge(partial domain.CalculationRecord) error {
	current, ok := r.Read()
	if !ok {
		return r.Replace(partial)
	}
	current.MergeFrom(partial)
	current.GeneratedAt = time.Now().UTC()
	return r.write(current)
}

func (r *RecordRepositoryCached) Read() (domain.CalculationRecord, bool) {
	raw, ok := r.cache.Get(recordKey)
	if !ok {
		return domain.CalculationRecord{}, false
	}
	var record domain.CalculationRecord
	if err := json.Unmarshal([]byte(raw), &record); err != nil {
		// Registro ilegível conta como ausência; o próximo cálculo
		// sobrescreve.
		return domain.CalculationRecord{}, false
	}
	return record, true
}

func (r *RecordRepositoryCached) write(record domain.CalculationRecord) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("serializar registro: %w", err)
	}
	return r.cache.Set(recordKey, string(raw))
}
