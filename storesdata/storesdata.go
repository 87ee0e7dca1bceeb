// Package storesdata carrega o dataset estático de tiendas (o JSON exportado
// do Places), transforma no formato que o front consome e mantém tudo em um
// cache em memória com expiração.
package storesdata

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"loyalty-gateway/geo"
)

// Store é o registro que o endpoint /api/stores devolve. Imutável depois de
// carregado.
type Store struct {
	ID             string          `json:"id"`
	Name           string          `json:"name"`
	Lat            float64         `json:"lat"`
	Lng            float64         `json:"lng"`
	Address        string          `json:"address"`
	AddressShort   json.RawMessage `json:"addressShort"`
	Phone          *string         `json:"phone"`
	Rating         *float64        `json:"rating"`
	PlaceURI       string          `json:"placeUri"`
	WriteReviewURI *string         `json:"writeReviewUri"`
	WebsiteURI     *string         `json:"websiteUri"`
	OpeningHours   json.RawMessage `json:"openingHours"`

	// Distance é a etiqueta de proximidade ("350m", "1.2km"), presente só
	// quando o chamador pediu ordenação por distância.
	Distance string `json:"distance,omitempty"`
}

// rawPlace é o formato de entrada, uma entrada por chave no JSON de origem.
type rawPlace struct {
	DisplayName *struct {
		Text string `json:"text"`
	} `json:"displayName"`
	Location *struct {
		Latitude  *float64 `json:"latitude"`
		Longitude *float64 `json:"longitude"`
	} `json:"location"`
	FormattedAddress    string          `json:"formattedAddress"`
	AddressComponents   json.RawMessage `json:"addressComponents"`
	NationalPhoneNumber string          `json:"nationalPhoneNumber"`
	Rating              *float64        `json:"rating"`
	GoogleMapsLinks     *struct {
		PlaceURI        string `json:"placeUri"`
		WriteAReviewURI string `json:"writeAReviewUri"`
	} `json:"googleMapsLinks"`
	GoogleMapsURI       string          `json:"googleMapsUri"`
	WebsiteURI          string          `json:"websiteUri"`
	RegularOpeningHours json.RawMessage `json:"regularOpeningHours"`
}

// Load lê e transforma o dataset. Entradas sem latitude/longitude numéricas
// são descartadas; os demais campos caem em defaults quando ausentes.
func Load(path string) ([]Store, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read stores dataset: %w", err)
	}

	var raw map[string]rawPlace
	if err := json.Unmarshal(content, &raw); err != nil {
		return nil, fmt.Errorf("parse stores dataset: %w", err)
	}

	ids := make([]string, 0, len(raw))
	for id := range raw {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	out := make([]Store, 0, len(raw))
	for _, id := range ids {
		if s, ok := transform(id, raw[id]); ok {
			out = append(out, s)
		}
	}
	return out, nil
}

func transform(id string, p rawPlace) (Store, bool) {
	if p.Location == nil || p.Location.Latitude == nil || p.Location.Longitude == nil {
		return Store{}, false
	}

	s := Store{
		ID:           id,
		Name:         "Sin nombre",
		Lat:          *p.Location.Latitude,
		Lng:          *p.Location.Longitude,
		Address:      "Sin dirección",
		AddressShort: emptyArray,
		Rating:       p.Rating,
		PlaceURI:     p.GoogleMapsURI,
		OpeningHours: p.RegularOpeningHours,
	}

	if p.DisplayName != nil && p.DisplayName.Text != "" {
		s.Name = p.DisplayName.Text
	}
	if p.FormattedAddress != "" {
		s.Address = p.FormattedAddress
	}
	if len(p.AddressComponents) > 0 {
		s.AddressShort = p.AddressComponents
	}
	if p.NationalPhoneNumber != "" {
		phone := p.NationalPhoneNumber
		s.Phone = &phone
	}
	if p.GoogleMapsLinks != nil {
		if p.GoogleMapsLinks.PlaceURI != "" {
			s.PlaceURI = p.GoogleMapsLinks.PlaceURI
		}
		if p.GoogleMapsLinks.WriteAReviewURI != "" {
			uri := p.GoogleMapsLinks.WriteAReviewURI
			s.WriteReviewURI = &uri
		}
	}
	if p.WebsiteURI != "" {
		uri := p.WebsiteURI
		s.WebsiteURI = &uri
	}
	return s, true
}

var emptyArray = json.RawMessage("[]")

// SortByProximity devolve uma cópia ordenada pela distância ascendente até o
// ponto de referência, com a etiqueta de distância preenchida.
func SortByProximity(stores []Store, lat, lng float64) []Store {
	type entry struct {
		store Store
		km    float64
	}
	entries := make([]entry, len(stores))
	for i, s := range stores {
		km := geo.DistanceKm(lat, lng, s.Lat, s.Lng)
		s.Distance = geo.FormatDistance(km)
		entries[i] = entry{store: s, km: km}
	}
	sort.SliceStable(entries, func(i, j int) bool { return entries[i].km < entries[j].km })

	out := make([]Store, len(entries))
	for i, e := range entries {
		out[i] = e.store
	}
	return out
}
