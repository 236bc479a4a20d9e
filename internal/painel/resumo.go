package painel

import (
	"time"

	"github.com/ronaldoarch/erp-midas/internal/contrato"
	"github.com/ronaldoarch/erp-midas/internal/fatura"
)

// Resumo são os indicadores do painel inicial
type Resumo struct {
	TotalFaturado       float64 `json:"totalFaturado"`       // soma de todos os pagamentos
	ValorTotalContratos float64 `json:"valorTotalContratos"` // MRR de todos os contratos, ativos e cancelados
	ValorAReceber       float64 `json:"valorAReceber"`       // MRR só dos ativos
	ContratosAtivos     int     `json:"contratosAtivos"`
	FaturasVencidas     int     `json:"faturasVencidas"`
	ContratosAVencer    int     `json:"contratosAVencer"` // ativos vencendo nos próximos 30 dias
}

// JanelaAVencer define o horizonte de "contrato a vencer"
const JanelaAVencer = 30 * 24 * time.Hour

// MontarResumo agrega os indicadores em memória a partir dos dados já
// carregados da organização
func MontarResumo(contratos []contrato.Contrato, vencidas []fatura.Fatura, totalPago float64, agora time.Time) Resumo {
	r := Resumo{TotalFaturado: totalPago}

	limite := agora.Add(JanelaAVencer)
	for _, c := range contratos {
		r.ValorTotalContratos += c.MRR
		if c.Status != contrato.StatusAtivo {
			continue
		}
		r.ValorAReceber += c.MRR
		r.ContratosAtivos++
		if c.DataFim.After(agora) && c.DataFim.Before(limite) {
			r.ContratosAVencer++
		}
	}

	for i := range vencidas {
		if !vencidas[i].Quitada() {
			r.FaturasVencidas++
		}
	}

	return r
}
