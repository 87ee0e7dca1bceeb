package gateway

import (
	"encoding/json"
	"net/http"

	"loyalty-gateway/validate"
)

// VerifyOTP confere o código digitado contra o serviço de auth, sem consumir
// o código (a troca de senha vem depois, em outro fluxo).
func (h *Handler) VerifyOTP(w http.ResponseWriter, r *http.Request) {
	const generic = "Error al verificar el código OTP"

	var req struct {
		Email string `json:"email"`
		OTP   string `json:"otp"`
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
	otp := validate.OTP(req.OTP)
	if !otp.Valid {
		writeError(w, http.StatusBadRequest, otp.Err)
		return
	}

	data, err := h.Auth.VerifyOTP(r.Context(), email.Value, otp.Value)
	if err != nil {
		h.upstreamFail(w, r, err, generic)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"message": "Código OTP verificado correctamente",
		"data":    data,
	})
}
