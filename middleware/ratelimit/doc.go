// Package ratelimit fornece o adapter HTTP (net/http) do rate limit de
// janela fixa do gateway.
//
// Visão geral (camadas):
//
//   - domain: contratos e tipos do domínio (sem dependência de net/http)
//   - application: caso de uso (decisão allow/deny + Retry-After) sem net/http
//   - infra: implementações concretas (contador de janela fixa, stats em
//     memória/Redis), detalhes de infraestrutura
//   - ratelimit (este pacote): middleware HTTP + extração de chave + tradução
//     para status/headers/body JSON
//
// Fluxo no gateway:
//
//  1. Extrai a chave do cliente (primeiro IP de X-Forwarded-For, senão "unknown")
//  2. Chama a camada application para obter a decisão
//  3. Se bloqueado, responde 429 com {"error": mensagem} e Retry-After
//  4. Se permitido, chama o próximo handler
//
// O gateway monta três instâncias independentes: auth (15min/10),
// otp (5min/5) e api (1min/60), cada uma com sua mensagem.
package ratelimit
