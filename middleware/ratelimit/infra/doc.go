// Package infra contém implementações concretas (infraestrutura) para os
// contratos definidos no pacote domain.
//
// Exemplos:
//   - Store: contador de janela fixa por chave, com varredura periódica
//   - RedisStatsStore / MemoryStatsStore: persistência das decisões
package infra
