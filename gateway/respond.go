package gateway

import (
	"encoding/json"
	"errors"
	"net/http"

	"loyalty-gateway/upstream"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

// writeRaw repassa um corpo JSON já pronto (vindo do upstream) sem
// re-serializar.
func writeRaw(w http.ResponseWriter, status int, raw json.RawMessage) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(raw)
}

// upstreamFail traduz a falha de um client para a borda do gateway:
//
//   - status de erro do upstream: repassa status e mensagem
//   - timeout: 504
//   - transporte (rede caída, JSON inválido): 502
//   - resto (forma inesperada em um 2xx etc.): 500 genérico
func (h *Handler) upstreamFail(w http.ResponseWriter, r *http.Request, err error, generic string) {
	var ue *upstream.Error
	switch {
	case errors.As(err, &ue):
		msg := ue.Message
		if msg == "" {
			msg = generic
		}
		writeError(w, ue.Status, msg)
	case upstream.IsTimeout(err):
		h.Log.Error().Err(err).Str("path", r.URL.Path).Msg("upstream timeout")
		writeError(w, http.StatusGatewayTimeout, generic)
	case upstream.IsTransport(err):
		h.Log.Error().Err(err).Str("path", r.URL.Path).Msg("upstream unreachable")
		writeError(w, http.StatusBadGateway, generic)
	default:
		h.Log.Error().Err(err).Str("path", r.URL.Path).Msg("unexpected upstream failure")
		writeError(w, http.StatusInternalServerError, generic)
	}
}

// setCookie aplica os atributos padrão dos cookies do gateway. maxAge 0
// deixa o cookie de sessão.
func (h *Handler) setCookie(w http.ResponseWriter, name, value string, maxAge int) {
	http.SetCookie(w, &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.Production,
		SameSite: http.SameSiteLaxMode,
	})
}
