package painel

import (
	"testing"
	"time"

	"github.com/ronaldoarch/erp-midas/internal/contrato"
	"github.com/ronaldoarch/erp-midas/internal/fatura"
	"github.com/ronaldoarch/erp-midas/internal/pagamento"
)

func TestMontarResumo(t *testing.T) {
	agora := time.Date(2025, time.March, 10, 12, 0, 0, 0, time.UTC)

	contratos := []contrato.Contrato{
		{Status: contrato.StatusAtivo, MRR: 1000, DataFim: agora.AddDate(0, 0, 10)},
		{Status: contrato.StatusAtivo, MRR: 500, DataFim: agora.AddDate(0, 2, 0)},
		{Status: contrato.StatusCancelado, MRR: 300, DataFim: agora.AddDate(0, 0, 5)},
	}
	vencidas := []fatura.Fatura{
		{Valor: 200},
		{Valor: 200, Pagamentos: []pagamento.Pagamento{{Valor: 200}}},
	}

	r := MontarResumo(contratos, vencidas, 4200, agora)

	if r.TotalFaturado != 4200 {
		t.Errorf("TotalFaturado = %v, esperado 4200", r.TotalFaturado)
	}
	if r.ValorTotalContratos != 1800 {
		t.Errorf("ValorTotalContratos = %v, esperado 1800 (inclui cancelados)", r.ValorTotalContratos)
	}
	if r.ValorAReceber != 1500 {
		t.Errorf("ValorAReceber = %v, esperado 1500 (só ativos)", r.ValorAReceber)
	}
	if r.ContratosAtivos != 2 {
		t.Errorf("ContratosAtivos = %d, esperado 2", r.ContratosAtivos)
	}
	if r.ContratosAVencer != 1 {
		t.Errorf("ContratosAVencer = %d, esperado 1 (só o que vence em 10 dias)", r.ContratosAVencer)
	}
	if r.FaturasVencidas != 1 {
		t.Errorf("FaturasVencidas = %d, esperado 1 (a quitada não conta)", r.FaturasVencidas)
	}
}

func TestMontarResumoVazio(t *testing.T) {
	r := MontarResumo(nil, nil, 0, time.Now())
	if r != (Resumo{}) {
		t.Errorf("resumo de organização vazia deveria ser zerado: %+v", r)
	}
}
