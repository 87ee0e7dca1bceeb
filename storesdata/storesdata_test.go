package storesdata

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const sampleDataset = `{
  "place-a": {
    "displayName": {"text": "Sucursal Centro"},
    "location": {"latitude": -34.6037, "longitude": -58.3816},
    "formattedAddress": "Av. Corrientes 1234, CABA",
    "nationalPhoneNumber": "011 4321-0987",
    "rating": 4.5,
    "googleMapsLinks": {"placeUri": "https://maps.example/a", "writeAReviewUri": "https://maps.example/a/review"},
    "websiteUri": "https://example.com",
    "regularOpeningHours": {"openNow": true}
  },
  "place-b": {
    "displayName": {"text": "Sucursal Norte"},
    "location": {"latitude": -34.5500, "longitude": -58.4500},
    "formattedAddress": "Cabildo 2000, CABA"
  },
  "place-sin-coords": {
    "displayName": {"text": "Depósito"},
    "formattedAddress": "Sin mapa"
  },
  "place-vacio": {
    "location": {"latitude": -34.7, "longitude": -58.5}
  }
}`

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "places-details.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write dataset: %v", err)
	}
	return path
}

func TestLoad_TransformsAndFiltersEntries(t *testing.T) {
	stores, err := Load(writeDataset(t, sampleDataset))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	// place-sin-coords não tem lat/lng e fica de fora
	if len(stores) != 3 {
		t.Fatalf("expected 3 stores, got %d", len(stores))
	}

	byID := make(map[string]Store, len(stores))
	for _, s := range stores {
		byID[s.ID] = s
	}

	a := byID["place-a"]
	if a.Name != "Sucursal Centro" || a.Address != "Av. Corrientes 1234, CABA" {
		t.Fatalf("unexpected transform for place-a: %+v", a)
	}
	if a.Phone == nil || *a.Phone != "011 4321-0987" {
		t.Fatalf("expected phone kept, got %v", a.Phone)
	}
	if a.PlaceURI != "https://maps.example/a" {
		t.Fatalf("expected placeUri from googleMapsLinks, got %q", a.PlaceURI)
	}

	v := byID["place-vacio"]
	if v.Name != "Sin nombre" || v.Address != "Sin dirección" {
		t.Fatalf("expected fallback name/address, got %+v", v)
	}
	if v.Phone != nil || v.Rating != nil {
		t.Fatalf("expected null phone/rating for empty entry")
	}
}

func TestLoad_MarshalsNullsAndDefaults(t *testing.T) {
	stores, err := Load(writeDataset(t, sampleDataset))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	var v Store
	for _, s := range stores {
		if s.ID == "place-vacio" {
			v = s
		}
	}

	raw, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var decoded map[string]any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded["phone"] != nil {
		t.Fatalf("expected phone=null, got %v", decoded["phone"])
	}
	if short, ok := decoded["addressShort"].([]any); !ok || len(short) != 0 {
		t.Fatalf("expected addressShort=[], got %v", decoded["addressShort"])
	}
}

func TestSortByProximity_AscendingWithLabels(t *testing.T) {
	stores := []Store{
		{ID: "far", Lat: -31.4201, Lng: -64.1888},
		{ID: "near", Lat: -34.6040, Lng: -58.3820},
	}

	sorted := SortByProximity(stores, -34.6037, -58.3816)
	if sorted[0].ID != "near" || sorted[1].ID != "far" {
		t.Fatalf("expected near first, got %s then %s", sorted[0].ID, sorted[1].ID)
	}
	if sorted[0].Distance == "" || sorted[1].Distance == "" {
		t.Fatalf("expected distance labels to be set")
	}
	// o slice original não é tocado
	if stores[0].ID != "far" || stores[0].Distance != "" {
		t.Fatalf("expected input slice untouched")
	}
}

func TestCache_HitWithinTTLAndReloadAfter(t *testing.T) {
	path := writeDataset(t, sampleDataset)
	c := NewCache(path, time.Hour)

	now := time.Now()
	c.now = func() time.Time { return now }

	_, hit, err := c.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if hit {
		t.Fatalf("expected first Get to be a miss")
	}

	_, hit, err = c.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit {
		t.Fatalf("expected second Get to be a hit")
	}

	// TTL vencido: recarrega
	now = now.Add(time.Hour + time.Minute)
	_, hit, err = c.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if hit {
		t.Fatalf("expected expired Get to be a miss")
	}
}

func TestCache_ServesHitWithoutTouchingFile(t *testing.T) {
	path := writeDataset(t, sampleDataset)
	c := NewCache(path, time.Hour)

	if _, _, err := c.Get(); err != nil {
		t.Fatalf("Get: %v", err)
	}

	// com o cache quente, o arquivo pode até sumir
	if err := os.Remove(path); err != nil {
		t.Fatalf("remove: %v", err)
	}

	stores, hit, err := c.Get()
	if err != nil {
		t.Fatalf("Get after remove: %v", err)
	}
	if !hit || len(stores) == 0 {
		t.Fatalf("expected hit served from memory")
	}
}

func TestCache_RefreshPicksUpNewContent(t *testing.T) {
	path := writeDataset(t, sampleDataset)
	c := NewCache(path, time.Hour)

	stores, _, err := c.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(stores) != 3 {
		t.Fatalf("expected 3 stores, got %d", len(stores))
	}

	smaller := `{"only": {"location": {"latitude": -34.0, "longitude": -58.0}}}`
	if err := os.WriteFile(path, []byte(smaller), 0o600); err != nil {
		t.Fatalf("rewrite: %v", err)
	}

	if err := c.Refresh(); err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	stores, hit, err := c.Get()
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !hit || len(stores) != 1 {
		t.Fatalf("expected refreshed dataset with 1 store, got hit=%v len=%d", hit, len(stores))
	}
}
