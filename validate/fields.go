package validate

// Rule é uma função de validação já configurada (ex.: Password com o mínimo
// amarrado, Name com o rótulo do campo).
type Rule func(raw string) Result

type FieldError struct {
	Field string `json:"field"`
	Error string `json:"error"`
}

type FieldsResult struct {
	Valid bool
	// Errors carrega todas as falhas, não só a primeira.
	Errors []FieldError
	// Values tem os valores normalizados dos campos que passaram.
	Values map[string]string
}

// Fields roda todas as regras de forma independente (sem curto-circuito) e
// só é válido se todas passarem.
func Fields(data map[string]string, rules map[string]Rule) FieldsResult {
	res := FieldsResult{Values: make(map[string]string, len(rules))}

	for field, rule := range rules {
		r := rule(data[field])
		if !r.Valid {
			res.Errors = append(res.Errors, FieldError{Field: field, Error: r.Err})
			continue
		}
		res.Values[field] = r.Value
	}

	res.Valid = len(res.Errors) == 0
	return res
}
