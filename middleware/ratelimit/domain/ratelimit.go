package domain

// Camada de domínio do rate limit.
//
// Regras e contratos (interfaces/tipos) sem dependência de net/http.

import "time"

type Key string

// Rule descreve um limiter de janela fixa: no máximo Max requisições por
// janela de duração Window. A contagem zera na virada da janela; não é
// uma janela deslizante.
type Rule struct {
	Max    int
	Window time.Duration
}

// Window é o estado corrente de uma chave dentro do limiter: quantas
// requisições já foram contadas (incluindo a atual) e quando a janela abriu.
type Window struct {
	Count int
	Start time.Time
}

// WindowStore registra uma requisição para a chave e devolve o estado da
// janela resultante. Se a janela anterior expirou (ou a chave é nova), a
// implementação abre uma janela nova com Count=1 e Start=now.
//
// Incrementos para a mesma chave precisam ser atômicos entre requisições
// concorrentes. Não há coordenação entre chaves distintas.
type WindowStore interface {
	Hit(key Key, now time.Time) Window
}

type Decision struct {
	Allowed bool
	// Remaining é quantas requisições ainda cabem na janela corrente.
	// Só tem significado quando Allowed=true.
	Remaining int
	// RetryAfter é o valor a ser retornado em Retry-After quando bloquear.
	RetryAfter time.Duration
	// Message é o texto configurado do limiter, voltado ao usuário final.
	Message string
}
