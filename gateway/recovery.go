package gateway

import (
	"encoding/json"
	"net/http"

	"loyalty-gateway/validate"
)

// Recovery dispara o e-mail de recuperação com o código OTP.
func (h *Handler) Recovery(w http.ResponseWriter, r *http.Request) {
	const generic = "Error al enviar el correo de recuperación"

	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusInternalServerError, generic)
		return
	}

	email := validate.Email(req.Email)
	if !email.Valid {
		writeError(w, http.StatusBadRequest, email.Err)
		return
	}

	if err := h.Auth.GenerateOTP(r.Context(), email.Value); err != nil {
		h.upstreamFail(w, r, err, generic)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "Correo de recuperación enviado"})
}
