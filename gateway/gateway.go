package gateway

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"loyalty-gateway/storesdata"
	"loyalty-gateway/upstream"
)

// Handler agrupa as dependências dos endpoints do gateway.
type Handler struct {
	Auth   *upstream.AuthClient
	Jinx   *upstream.JinxClient
	Nasus  *upstream.NasusClient
	Stores *storesdata.Cache

	// Empresa é o identificador do tenant enviado ao serviço Jinx.
	Empresa string
	// Production liga o atributo Secure dos cookies.
	Production bool

	Log zerolog.Logger
}

// Limiters são os três rate limits do gateway, já como middleware HTTP.
// Um campo nulo desliga o limite daquele grupo (útil em testes).
type Limiters struct {
	Auth func(http.Handler) http.Handler
	OTP  func(http.Handler) http.Handler
	API  func(http.Handler) http.Handler
}

func noopMiddleware(next http.Handler) http.Handler { return next }

// Routes monta a superfície HTTP: cada grupo de endpoints com seu limiter.
func (h *Handler) Routes(lim Limiters) http.Handler {
	if lim.Auth == nil {
		lim.Auth = noopMiddleware
	}
	if lim.OTP == nil {
		lim.OTP = noopMiddleware
	}
	if lim.API == nil {
		lim.API = noopMiddleware
	}

	r := chi.NewRouter()
	r.Route("/api", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(lim.Auth)
			r.Post("/auth/login", h.Login)
			r.Post("/auth/register", h.Register)
		})

		r.Group(func(r chi.Router) {
			r.Use(lim.OTP)
			r.Post("/auth/recovery", h.Recovery)
			r.Post("/auth/recovery/verifyotp", h.VerifyOTP)
		})

		r.Group(func(r chi.Router) {
			r.Use(lim.API)
			r.Get("/jinx/UserAccess", h.UserAccess)
			r.Get("/stores", h.StoresList)
			r.Get("/nasus/cliente/compras", h.Compras)
			r.Get("/nasus/cliente/puntos", h.Puntos)
		})
	})
	return r
}
