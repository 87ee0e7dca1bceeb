// Package gateway tem os handlers HTTP do programa de fidelidade: os
// endpoints de autenticação e recuperação (proxy para o serviço de auth), a
// troca de AccessKey por token (Jinx), compras/puntos (Nasus) e a lista de
// tiendas servida do cache local.
//
// Todo endpoint segue o mesmo pipeline, parando na primeira falha:
//
//  1. rate limit (middleware, fora deste pacote)
//  2. decodifica o corpo JSON
//  3. valida campo a campo (pacote validate), 400 na primeira falha
//  4. chama o upstream
//  5. mapeia a resposta (corpo verbatim + cookies, conforme o endpoint)
//
// Os cookies de auth (accessToken, refreshToken, userId, Token) são sempre
// httpOnly, SameSite=Lax, path=/ e Secure em produção.
package gateway
