// Package maxinflight limita quantas requisições o gateway atende ao mesmo
// tempo. É um semáforo simples baseado em channel: cada requisição adquire
// uma vaga antes de seguir e libera ao terminar.
//
// Com AcquireTimeout > 0 a espera por vaga é limitada; estourando o tempo a
// requisição é rejeitada com o status configurado (503 por padrão).
package maxinflight

import (
	"context"
	"net/http"
	"time"
)

type Options struct {
	Max            int
	RejectStatus   int
	AcquireTimeout time.Duration
}

func Middleware(opts Options) func(next http.Handler) http.Handler {
	if opts.Max <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if opts.RejectStatus == 0 {
		opts.RejectStatus = http.StatusServiceUnavailable
	}

	sem := make(chan struct{}, opts.Max)

	acquire := func(ctx context.Context) bool {
		if opts.AcquireTimeout > 0 {
			var cancel context.CancelFunc
			ctx, cancel = context.WithTimeout(ctx, opts.AcquireTimeout)
			defer cancel()
		}
		select {
		case sem <- struct{}{}:
			return true
		case <-ctx.Done():
			return false
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !acquire(r.Context()) {
				http.Error(w, http.StatusText(opts.RejectStatus), opts.RejectStatus)
				return
			}
			defer func() { <-sem }()

			next.ServeHTTP(w, r)
		})
	}
}
