package upstream

import (
	"context"
	"encoding/json"
	"net/http"
)

// AuthClient fala com o serviço de autenticação (login, registro e fluxo de
// recuperação por OTP).
type AuthClient struct {
	c *client
}

func NewAuthClient(baseURL string, opts ...Option) *AuthClient {
	return &AuthClient{c: newClient(baseURL, opts...)}
}

// LoginResult traz os campos que o gateway interpreta (para os cookies) e o
// corpo cru, que é repassado verbatim ao front.
type LoginResult struct {
	AccessToken  string
	RefreshToken string
	UserID       string
	Body         json.RawMessage
}

func (a *AuthClient) Login(ctx context.Context, email, password string) (LoginResult, error) {
	status, raw, err := a.c.doJSON(ctx, http.MethodPost, "/api/auth/login", nil, map[string]string{
		"email":    email,
		"password": password,
	})
	if err != nil {
		return LoginResult{}, err
	}
	if !is2xx(status) {
		return LoginResult{}, statusError(status, raw)
	}

	var body struct {
		AccessToken  string `json:"accessToken"`
		RefreshToken string `json:"refreshToken"`
		User         struct {
			ID string `json:"_id"`
		} `json:"user"`
	}
	// valida a forma antes de usar: um 2xx sem tokens ou sem user._id não
	// pode virar cookie
	if err := json.Unmarshal(raw, &body); err != nil {
		return LoginResult{}, ErrBadPayload
	}
	if body.AccessToken == "" || body.RefreshToken == "" || body.User.ID == "" {
		return LoginResult{}, ErrBadPayload
	}

	return LoginResult{
		AccessToken:  body.AccessToken,
		RefreshToken: body.RefreshToken,
		UserID:       body.User.ID,
		Body:         raw,
	}, nil
}

// RegisterInput já chega normalizado pelo gateway (DNI e telefone só
// dígitos, nomes capitalizados, email em minúsculas).
type RegisterInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	DNI       string `json:"dni"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	Sex       string `json:"sex"`
	BirthDate string `json:"birthDate"`
	Mobile    string `json:"mobile"`
}

type RegisterResult struct {
	UserID string
	Body   json.RawMessage
}

func (a *AuthClient) Register(ctx context.Context, in RegisterInput) (RegisterResult, error) {
	status, raw, err := a.c.doJSON(ctx, http.MethodPost, "/api/auth/register", nil, in)
	if err != nil {
		return RegisterResult{}, err
	}
	if !is2xx(status) {
		return RegisterResult{}, statusError(status, raw)
	}

	var body struct {
		User struct {
			ID string `json:"_id"`
		} `json:"user"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || body.User.ID == "" {
		return RegisterResult{}, ErrBadPayload
	}

	return RegisterResult{UserID: body.User.ID, Body: raw}, nil
}

// GenerateOTP dispara o e-mail de recuperação. O corpo de sucesso não é
// usado; o gateway responde uma mensagem fixa.
func (a *AuthClient) GenerateOTP(ctx context.Context, email string) error {
	status, raw, err := a.c.doJSON(ctx, http.MethodPost, "/api/recovery/generate-otp", nil, map[string]string{
		"email": email,
	})
	if err != nil {
		return err
	}
	if !is2xx(status) {
		return statusError(status, raw)
	}
	return nil
}

// VerifyOTP devolve o corpo de sucesso cru; o gateway o embrulha em
// {message, data}.
func (a *AuthClient) VerifyOTP(ctx context.Context, email, otpCode string) (json.RawMessage, error) {
	status, raw, err := a.c.doJSON(ctx, http.MethodPost, "/api/recovery/verify-otp-only", nil, map[string]string{
		"email":   email,
		"otpCode": otpCode,
	})
	if err != nil {
		return nil, err
	}
	if !is2xx(status) {
		return nil, statusError(status, raw)
	}
	return raw, nil
}
