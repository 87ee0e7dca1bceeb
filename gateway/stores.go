package gateway

import (
	"net/http"
	"strconv"

	"loyalty-gateway/storesdata"
)

// StoresList serve o dataset de tiendas com cache de 1h em memória. Com
// lat/lng na query a lista volta ordenada pela distância até o ponto, com a
// etiqueta de proximidade preenchida.
func (h *Handler) StoresList(w http.ResponseWriter, r *http.Request) {
	data, hit, err := h.Stores.Get()
	if err != nil {
		h.Log.Error().Err(err).Msg("stores dataset load failed")
		writeError(w, http.StatusInternalServerError, "Error al cargar las tiendas")
		return
	}

	if latS, lngS := r.URL.Query().Get("lat"), r.URL.Query().Get("lng"); latS != "" && lngS != "" {
		lat, errLat := strconv.ParseFloat(latS, 64)
		lng, errLng := strconv.ParseFloat(lngS, 64)
		if errLat == nil && errLng == nil {
			data = storesdata.SortByProximity(data, lat, lng)
		}
	}

	w.Header().Set("Cache-Control", "public, max-age=3600, stale-while-revalidate=86400")
	if hit {
		w.Header().Set("X-Cache", "HIT")
	} else {
		w.Header().Set("X-Cache", "MISS")
	}
	writeJSON(w, http.StatusOK, data)
}
