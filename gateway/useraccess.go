package gateway

import (
	"net/http"
)

// tempo de vida do cookie de sessão do Jinx: 6 horas
const jinxTokenMaxAge = 21600

// UserAccess troca o AccessKey (cookie) por um token de sessão.
//
// Com o cookie Token ainda presente a troca é pulada: a validade é só a do
// max-age do cookie, o upstream não é consultado de novo.
func (h *Handler) UserAccess(w http.ResponseWriter, r *http.Request) {
	const generic = "Error during access validation"

	if _, err := r.Cookie("Token"); err == nil {
		writeJSON(w, http.StatusOK, map[string]string{"message": "Token is still valid"})
		return
	}

	accessKey, err := r.Cookie("AccessKey")
	if err != nil || accessKey.Value == "" {
		writeError(w, http.StatusUnauthorized, "AccessKey no encontrado")
		return
	}

	res, err := h.Jinx.UserAccess(r.Context(), h.Empresa, accessKey.Value)
	if err != nil {
		h.upstreamFail(w, r, err, generic)
		return
	}

	if !res.Estado {
		writeError(w, http.StatusUnauthorized, res.Mensaje)
		return
	}

	h.setCookie(w, "Token", res.Token, jinxTokenMaxAge)
	writeRaw(w, http.StatusOK, res.Body)
}
