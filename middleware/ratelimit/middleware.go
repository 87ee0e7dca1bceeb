package ratelimit

import (
	"encoding/json"
	"net"
	"net/http"
	"strings"
	"time"

	"loyalty-gateway/middleware/ratelimit/application"
	"loyalty-gateway/middleware/ratelimit/domain"
)

type KeyFunc func(r *http.Request) string

type Options struct {
	// Name identifica o limiter ("auth", "otp", "api") nas estatísticas.
	Name    string
	Store   domain.WindowStore
	Rule    domain.Rule
	Message string
	Stats   domain.StatsStore
	KeyFn   KeyFunc

	RejectStatus        int
	AddRateLimitHeaders bool
}

// DefaultKeyFunc identifica o cliente pelo primeiro endereço de
// X-Forwarded-For. Sem o header, tudo cai no balde "unknown" — quem precisar
// de precisão por IP atrás de outro proxy deve fornecer seu próprio KeyFn
// (ex.: RemoteAddrKeyFunc).
func DefaultKeyFunc() KeyFunc {
	return func(r *http.Request) string {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			parts := strings.Split(xff, ",")
			if ip := strings.TrimSpace(parts[0]); ip != "" {
				return ip
			}
		}
		return "unknown"
	}
}

// RemoteAddrKeyFunc usa o host de RemoteAddr como chave, com X-Forwarded-For
// tendo prioridade quando trustXFF=true.
func RemoteAddrKeyFunc(trustXFF bool) KeyFunc {
	return func(r *http.Request) string {
		if trustXFF {
			// pega o primeiro IP do X-Forwarded-For (cliente original)
			if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
				parts := strings.Split(xff, ",")
				if ip := strings.TrimSpace(parts[0]); ip != "" {
					return ip
				}
			}
		}

		host, _, err := net.SplitHostPort(strings.TrimSpace(r.RemoteAddr))
		if err == nil && host != "" {
			return host
		}
		if r.RemoteAddr != "" {
			return r.RemoteAddr
		}
		return "unknown"
	}
}

func Middleware(opts Options) func(next http.Handler) http.Handler {
	if opts.RejectStatus == 0 {
		opts.RejectStatus = http.StatusTooManyRequests
	}
	if opts.KeyFn == nil {
		opts.KeyFn = DefaultKeyFunc()
	}
	// a janela efetiva é a do store: um Rule.Window divergente faria o
	// contador virar numa cadência e o Retry-After ser calculado em outra
	if ws, ok := opts.Store.(interface{ Window() time.Duration }); ok {
		if w := ws.Window(); w > 0 {
			opts.Rule.Window = w
		}
	}

	svc := application.Service{
		Store:   opts.Store,
		Rule:    opts.Rule,
		Message: opts.Message,
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			key := opts.KeyFn(r)

			dec := svc.Decide(domain.Key(key))
			if opts.Stats != nil {
				_ = opts.Stats.Record(r.Context(), domain.StatsEvent{
					Limiter: opts.Name,
					Key:     domain.Key(key),
					Allowed: dec.Allowed,
					At:      time.Now(),
				})
			}

			if !dec.Allowed {
				w.Header().Set("Retry-After", formatInt(int(dec.RetryAfter.Seconds())))
				writeReject(w, opts.RejectStatus, dec.Message)
				return
			}

			if opts.AddRateLimitHeaders {
				w.Header().Set("X-RateLimit-Limit", formatInt(opts.Rule.Max))
				w.Header().Set("X-RateLimit-Remaining", formatInt(dec.Remaining))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// writeReject responde o 429 como JSON {"error": msg}, que é o contrato
// que o front espera de todos os endpoints do gateway.
func writeReject(w http.ResponseWriter, status int, msg string) {
	if msg == "" {
		msg = http.StatusText(status)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
