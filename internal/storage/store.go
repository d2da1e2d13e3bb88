// Package storage fornece a camada de persistência chave-valor usada
// pelo cache de resultados, pelo histórico de buscas e pelo estado de
// sessão, cada um sob seu próprio namespace de chaves.
package storage

import "context"

// Namespaces de chave. Cada colaborador grava sob seu próprio prefixo.
const (
	CachePrefix   = "cache:"
	HistoryKey    = "history"
	SessionPrefix = "session:"
)

// Store é a abstração chave-valor consumida pelo motor de busca.
type Store interface {
	// Get retorna o valor da chave; ok=false quando ausente.
	Get(ctx context.Context, key string) (value []byte, ok bool, err error)

	// Put grava o valor, sobrescrevendo qualquer valor anterior.
	Put(ctx context.Context, key string, value []byte) error

	// Delete remove a chave; remover chave inexistente não é erro.
	Delete(ctx context.Context, key string) error

	// DeletePrefix remove todas as chaves com o prefixo dado.
	DeletePrefix(ctx context.Context, prefix string) error

	// List retorna todas as chaves e valores sob um prefixo.
	List(ctx context.Context, prefix string) (map[string][]byte, error)

	// Ping verifica se o store está acessível.
	Ping(ctx context.Context) error

	// Close libera recursos do store.
	Close() error
}
