// Package upstream contém os clients HTTP dos serviços que o gateway
// consome: auth (login/registro/OTP), Jinx (troca de AccessKey por token de
// sessão) e Nasus (compras e puntos).
//
// Os contratos de resposta são explícitos: cada client decodifica e valida a
// forma antes de entregar algo ao gateway, em vez de repassar JSON sem tipo.
// Falhas se dividem em duas famílias:
//
//   - *Error: o serviço respondeu, mas com status de erro — o gateway
//     repassa status e mensagem
//   - *TransportError: rede/timeout/JSON inválido — vira 502/504 na borda
//
// Todo client carrega timeout (10s por padrão) e, opcionalmente, um throttle
// de saída (golang.org/x/time/rate) para não afogar o serviço de trás.
package upstream
