package domain

import (
	"context"
	"time"
)

// StatsEvent representa uma decisão de um dos limiters do gateway.
//
// Limiter identifica a instância ("auth", "otp", "api"), já que os três
// limiters compartilham o mesmo backend de estatísticas.
//
// Observação: cuidado com cardinalidade (ex.: salvar Key sem controle pode
// explodir o número de chaves em uma base como Redis).
type StatsEvent struct {
	Limiter string
	Key     Key
	Allowed bool

	At time.Time
}

// StatsStore é a estratégia de persistência para estatísticas do rate limit.
//
// Implementações podem armazenar em Redis, memória, etc.
// O middleware trata erro como best-effort (não derruba request).
type StatsStore interface {
	Record(ctx context.Context, ev StatsEvent) error
}
