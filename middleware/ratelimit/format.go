// utilitário pequeno para formatação rápida/consistente de valores numéricos
// em headers. Evita puxar fmt só para isso e mantém o código consistente.

package ratelimit

import "strconv"

func formatInt(v int) string { return strconv.Itoa(v) }
