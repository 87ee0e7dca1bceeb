// Package geo tem a matemática de proximidade usada para ordenar as tiendas
// pela distância até o usuário.
package geo

import (
	"fmt"
	"math"
)

// raio médio da Terra em km
const earthRadiusKm = 6371

// DistanceKm é a distância de círculo máximo entre dois pontos (Haversine).
// Função pura; simétrica nos argumentos.
func DistanceKm(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := (lat2 - lat1) * math.Pi / 180
	dLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1*math.Pi/180)*math.Cos(lat2*math.Pi/180)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))
	return earthRadiusKm * c
}

// FormatDistance é a etiqueta mostrada na lista: metros abaixo de 1 km,
// senão quilômetros com uma casa decimal.
func FormatDistance(km float64) string {
	if km < 1 {
		return fmt.Sprintf("%dm", int(math.Round(km*1000)))
	}
	return fmt.Sprintf("%.1fkm", km)
}
