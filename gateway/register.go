package gateway

import (
	"encoding/json"
	"net/http"
	"strings"

	"loyalty-gateway/upstream"
	"loyalty-gateway/validate"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	const generic = "Error during registration"

	var req struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"firstName"`
		LastName  string `json:"lastName"`
		DNI       string `json:"dni"`
		Mobile    string `json:"mobile"`
		Sex       string `json:"sex"`
		BirthDate string `json:"birthDate"`
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
	password := validate.Password(req.Password, 0)
	if !password.Valid {
		writeError(w, http.StatusBadRequest, password.Err)
		return
	}
	firstName := validate.Name(req.FirstName, "Nombre")
	if !firstName.Valid {
		writeError(w, http.StatusBadRequest, firstName.Err)
		return
	}
	lastName := validate.Name(req.LastName, "Apellido")
	if !lastName.Valid {
		writeError(w, http.StatusBadRequest, lastName.Err)
		return
	}
	dni := validate.DNI(req.DNI)
	if !dni.Valid {
		writeError(w, http.StatusBadRequest, dni.Err)
		return
	}
	mobile := validate.Phone(req.Mobile)
	if !mobile.Valid {
		writeError(w, http.StatusBadRequest, mobile.Err)
		return
	}

	res, err := h.Auth.Register(r.Context(), upstream.RegisterInput{
		FirstName: capitalizeFirst(firstName.Value),
		LastName:  capitalizeFirst(lastName.Value),
		DNI:       dni.Value,
		Email:     email.Value,
		Password:  password.Value,
		Sex:       req.Sex,
		BirthDate: req.BirthDate,
		Mobile:    mobile.Value,
	})
	if err != nil {
		h.upstreamFail(w, r, err, generic)
		return
	}

	h.setCookie(w, "userId", res.UserID, 0)
	writeRaw(w, http.StatusCreated, res.Body)
}

// capitalizeFirst deixa os nomes como o produto mostra: primeira letra
// maiúscula, resto minúsculo.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	return strings.ToUpper(string(runes[0])) + strings.ToLower(string(runes[1:]))
}
