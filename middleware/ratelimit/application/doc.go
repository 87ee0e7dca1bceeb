// Package application contém o caso de uso do rate limit: transformar o
// estado da janela (vindo do store) em uma decisão allow/deny com Retry-After.
//
// Ele depende apenas do pacote domain e não conhece net/http.
package application
