package gateway

import (
	"encoding/json"
	"net/http"

	"loyalty-gateway/validate"
)

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	const generic = "Error during login"

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// corpo ilegível cai no erro genérico, mesmo contrato que o front
		// sempre recebeu
		writeError(w, http.StatusInternalServerError, generic)
		return
	}

	email := validate.Email(req.Email)
	if !email.Valid {
		writeError(w, http.StatusBadRequest, email.Err)
		return
	}
	password := validate.Password(req.Password, 0)
	if !password.Valid {
		writeError(w, http.StatusBadRequest, password.Err)
		return
	}

	res, err := h.Auth.Login(r.Context(), email.Value, password.Value)
	if err != nil {
		h.upstreamFail(w, r, err, generic)
		return
	}

	h.setCookie(w, "accessToken", res.AccessToken, 0)
	h.setCookie(w, "refreshToken", res.RefreshToken, 0)
	h.setCookie(w, "userId", res.UserID, 0)
	writeRaw(w, http.StatusOK, res.Body)
}
