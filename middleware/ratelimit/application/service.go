package application

import (
	"math"
	"time"

	"loyalty-gateway/middleware/ratelimit/domain"
)

// Service concentra a regra de aplicação do rate limit de janela fixa.
//
// Ele não sabe nada sobre HTTP (headers/status), apenas retorna uma decisão.
type Service struct {
	Store   domain.WindowStore
	Rule    domain.Rule
	Message string
}

// Decide registra a requisição no store e aplica a regra:
//
//   - janela nova (ou chave nova): sempre permitida, Remaining = Max-1
//   - dentro da janela: permitida enquanto Count <= Max
//   - acima de Max: bloqueada, com Retry-After = teto em segundos do tempo
//     que falta para a janela virar
func (s Service) Decide(key domain.Key) domain.Decision {
	if s.Store == nil {
		return domain.Decision{Allowed: true, Remaining: s.Rule.Max}
	}

	now := time.Now()
	win := s.Store.Hit(key, now)

	if win.Count > s.Rule.Max {
		rest := win.Start.Add(s.Rule.Window).Sub(now)
		secs := int(math.Ceil(rest.Seconds()))
		return domain.Decision{
			Allowed:    false,
			RetryAfter: time.Duration(secs) * time.Second,
			Message:    s.Message,
		}
	}

	return domain.Decision{Allowed: true, Remaining: s.Rule.Max - win.Count}
}
