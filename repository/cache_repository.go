package repository

// CacheRepository é o contrato mínimo de chave/valor usado pelo repositório
// de registros com backend externo. A serialização fica com o chamador.
type CacheRepository interface {
	Get(key string) (string, bool)
	Set(key string, value string) error
}
