package infra

import (
	"sync"
	"time"

	"loyalty-gateway/middleware/ratelimit/domain"
)

// Store é a implementação em memória do contador de janela fixa, com uma
// entrada por chave e varredura periódica das janelas expiradas.
//
// O estado vive só no processo: um restart zera todos os contadores. Para o
// que esse limiter protege (abuso nos endpoints de auth/OTP) isso é
// aceitável; ele não é uma fronteira de segurança.
type Store struct {
	mu         sync.Mutex
	entries    map[domain.Key]*windowEntry
	window     time.Duration
	sweepEvery time.Duration
}

type windowEntry struct {
	count int
	start time.Time
}

type StoreOption func(*Store)

func WithSweepEvery(d time.Duration) StoreOption {
	return func(s *Store) { s.sweepEvery = d }
}

func NewStore(window time.Duration, opts ...StoreOption) *Store {
	s := &Store{
		entries:    make(map[domain.Key]*windowEntry),
		window:     window,
		sweepEvery: 5 * time.Minute,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Window() time.Duration     { return s.window }
func (s *Store) SweepEvery() time.Duration { return s.sweepEvery }

// Hit implementa domain.WindowStore. O incremento acontece com o mutex
// preso, então rajadas concorrentes da mesma chave não perdem contagem.
func (s *Store) Hit(key domain.Key, now time.Time) domain.Window {
	s.mu.Lock()
	defer s.mu.Unlock()

	ent, ok := s.entries[key]
	if !ok || now.Sub(ent.start) > s.window {
		ent = &windowEntry{count: 1, start: now}
		s.entries[key] = ent
		return domain.Window{Count: 1, Start: now}
	}

	ent.count++
	return domain.Window{Count: ent.count, Start: ent.start}
}

// Sweep remove as entradas cuja janela já virou, limitando o crescimento do
// mapa. Uma remoção concorrente com um Hit em andamento apenas recria a
// entrada, o que é aceitável.
func (s *Store) Sweep(now time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for k, ent := range s.entries {
		if now.Sub(ent.start) > s.window {
			delete(s.entries, k)
		}
	}
}

// Len é usado em testes e diagnóstico.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// StartJanitor inicia uma goroutine que varre janelas expiradas
// periodicamente, independente do tráfego. Pare cancelando o contexto.
func (s *Store) StartJanitor(ctx DoneContext) {
	if s.sweepEvery <= 0 {
		return
	}

	t := time.NewTicker(s.sweepEvery)
	go func() {
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				s.Sweep(time.Now())
			}
		}
	}()
}

// DoneContext é o mínimo necessário para aceitar context.Context sem importar context aqui.
// (Permite reuso em libs sem acoplar.)
type DoneContext interface {
	Done() <-chan struct{}
}
