package upstream

import (
	"context"
	"encoding/json"
	"net/http"
)

// JinxClient troca o AccessKey do cliente por um token de sessão no serviço
// de acesso.
type JinxClient struct {
	c *client
}

func NewJinxClient(baseURL string, opts ...Option) *JinxClient {
	return &JinxClient{c: newClient(baseURL, opts...)}
}

// UserAccessResult espelha o contrato do serviço: sucesso vem sinalizado em
// Estado, não no status HTTP.
type UserAccessResult struct {
	Estado  bool
	Token   string
	Mensaje string
	Body    json.RawMessage
}

func (j *JinxClient) UserAccess(ctx context.Context, empresa, accessKey string) (UserAccessResult, error) {
	_, raw, err := j.c.doJSON(ctx, http.MethodPost, "/api/UserAccess", nil, map[string]string{
		"Empresa":   empresa,
		"AccessKey": accessKey,
	})
	if err != nil {
		return UserAccessResult{}, err
	}

	var body struct {
		Estado  bool   `json:"Estado"`
		Token   string `json:"Token"`
		Mensaje string `json:"Mensaje"`
	}
	if err := json.Unmarshal(raw, &body); err != nil {
		return UserAccessResult{}, ErrBadPayload
	}

	return UserAccessResult{
		Estado:  body.Estado,
		Token:   body.Token,
		Mensaje: body.Mensaje,
		Body:    raw,
	}, nil
}
