package upstream

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// client é a base compartilhada pelos três serviços: um http.Client com
// timeout, um throttle de saída opcional e logging estruturado das falhas.
type client struct {
	base    string
	hc      *http.Client
	limiter *rate.Limiter
	log     zerolog.Logger
}

type Option func(*client)

// WithTimeout limita a chamada inteira (conexão + resposta). O default é 10s.
func WithTimeout(d time.Duration) Option {
	return func(c *client) { c.hc.Timeout = d }
}

// WithThrottle limita a vazão de saída para o serviço (token bucket).
// Requisições acima da vazão esperam, não falham.
func WithThrottle(rps float64, burst int) Option {
	return func(c *client) {
		if rps > 0 && burst > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
		}
	}
}

func WithLogger(log zerolog.Logger) Option {
	return func(c *client) { c.log = log }
}

func newClient(baseURL string, opts ...Option) *client {
	c := &client{
		base: strings.TrimRight(baseURL, "/"),
		hc:   &http.Client{Timeout: 10 * time.Second},
		log:  zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// doJSON executa a chamada e devolve o status e o corpo cru (JSON validado).
// A interpretação do status fica com o chamador: o serviço Jinx, por exemplo,
// sinaliza erro no corpo e não no status HTTP.
func (c *client) doJSON(ctx context.Context, method, path string, query url.Values, body any) (int, json.RawMessage, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, nil, &TransportError{Err: err}
		}
	}

	target := c.base + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return 0, nil, &TransportError{Err: err}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return 0, nil, &TransportError{Err: err}
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.hc.Do(req)
	if err != nil {
		terr := asTransportError(err)
		c.log.Error().Err(err).Str("method", method).Str("url", target).Bool("timeout", terr.Timeout).Msg("upstream call failed")
		return 0, nil, terr
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, asTransportError(err)
	}
	if !json.Valid(raw) {
		c.log.Error().Str("method", method).Str("url", target).Int("status", resp.StatusCode).Msg("upstream returned invalid JSON")
		return 0, nil, &TransportError{Err: errInvalidJSON}
	}

	return resp.StatusCode, json.RawMessage(raw), nil
}

// statusError monta o erro de status não-2xx pegando o campo message do
// corpo quando houver.
func statusError(status int, raw json.RawMessage) *Error {
	var body struct {
		Message string `json:"message"`
	}
	_ = json.Unmarshal(raw, &body)
	return &Error{Status: status, Message: body.Message}
}

func is2xx(status int) bool { return status >= 200 && status < 300 }
