package upstream

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// NasusClient lê compras e puntos do serviço de fidelidade. Só leitura; o
// corpo volta verbatim ao front.
type NasusClient struct {
	c *client
}

func NewNasusClient(baseURL string, opts ...Option) *NasusClient {
	return &NasusClient{c: newClient(baseURL, opts...)}
}

func (n *NasusClient) Compras(ctx context.Context, dni string) (json.RawMessage, error) {
	return n.get(ctx, "/api/cliente/compras", dni)
}

func (n *NasusClient) Puntos(ctx context.Context, dni string) (json.RawMessage, error) {
	return n.get(ctx, "/api/cliente/puntos", dni)
}

func (n *NasusClient) get(ctx context.Context, path, dni string) (json.RawMessage, error) {
	q := url.Values{"dni": []string{dni}}
	status, raw, err := n.c.doJSON(ctx, http.MethodGet, path, q, nil)
	if err != nil {
		return nil, err
	}
	if !is2xx(status) {
		return nil, statusError(status, raw)
	}
	return raw, nil
}
