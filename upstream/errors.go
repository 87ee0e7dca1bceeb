package upstream

import (
	"context"
	"errors"
	"fmt"
	"net"
)

// Error é a falha "limpa": o serviço respondeu um status não-2xx com um JSON
// de erro. O gateway repassa o status e a mensagem ao chamador.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("upstream status %d: %s", e.Status, e.Message)
}

// TransportError cobre o resto: rede caída, timeout, resposta que não é
// JSON. Nada da resposta é confiável nesses casos.
type TransportError struct {
	Err     error
	Timeout bool
}

func (e *TransportError) Error() string {
	if e.Timeout {
		return "upstream timeout: " + e.Err.Error()
	}
	return "upstream transport: " + e.Err.Error()
}

func (e *TransportError) Unwrap() error { return e.Err }

// ErrBadPayload indica que o serviço respondeu 2xx mas sem os campos que o
// contrato promete (ex.: login sem user._id).
var ErrBadPayload = errors.New("upstream: unexpected response shape")

var errInvalidJSON = errors.New("upstream: response is not valid JSON")

func asTransportError(err error) *TransportError {
	timeout := errors.Is(err, context.DeadlineExceeded)
	var ne net.Error
	if !timeout && errors.As(err, &ne) {
		timeout = ne.Timeout()
	}
	return &TransportError{Err: err, Timeout: timeout}
}

// IsTimeout distingue o 504 do 502 na borda do gateway.
func IsTimeout(err error) bool {
	var te *TransportError
	return errors.As(err, &te) && te.Timeout
}

func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}
