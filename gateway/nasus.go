package gateway

import (
	"context"
	"encoding/json"
	"net/http"

	"loyalty-gateway/validate"
)

// Compras repassa o histórico de compras do cliente. Só leitura; o corpo do
// serviço vai verbatim ao front.
func (h *Handler) Compras(w http.ResponseWriter, r *http.Request) {
	h.nasusProxy(w, r, "Error al obtener las compras", h.Nasus.Compras)
}

// Puntos repassa o saldo de puntos do cliente.
func (h *Handler) Puntos(w http.ResponseWriter, r *http.Request) {
	h.nasusProxy(w, r, "Error al obtener los puntos", h.Nasus.Puntos)
}

func (h *Handler) nasusProxy(w http.ResponseWriter, r *http.Request, generic string, fetch func(context.Context, string) (json.RawMessage, error)) {
	dni := validate.DNI(r.URL.Query().Get("dni"))
	if !dni.Valid {
		writeError(w, http.StatusBadRequest, dni.Err)
		return
	}

	raw, err := fetch(r.Context(), dni.Value)
	if err != nil {
		h.upstreamFail(w, r, err, generic)
		return
	}
	writeRaw(w, http.StatusOK, raw)
}
