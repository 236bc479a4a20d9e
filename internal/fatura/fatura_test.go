package fatura

import (
	"testing"
	"time"

	"github.com/ronaldoarch/erp-midas/internal/contrato"
	"github.com/ronaldoarch/erp-midas/internal/pagamento"

	"gorm.io/gorm"
)

func TestQuitadaSomandoPagamentos(t *testing.T) {
	f := Fatura{Valor: 200}

	if f.Quitada() {
		t.Fatal("fatura sem pagamentos não pode estar quitada")
	}

	// dois pagamentos parciais de 100: só o segundo quita
	f.Pagamentos = append(f.Pagamentos, pagamento.Pagamento{Valor: 100})
	if f.Quitada() {
		t.Fatalf("fatura com %v pagos de %v não está quitada", f.ValorPago(), f.Valor)
	}

	f.Pagamentos = append(f.Pagamentos, pagamento.Pagamento{Valor: 100})
	if !f.Quitada() {
		t.Fatalf("fatura com %v pagos de %v deveria estar quitada", f.ValorPago(), f.Valor)
	}
}

func TestMesReferenciaDe(t *testing.T) {
	casos := []struct {
		data time.Time
		quer string
	}{
		{time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC), "2025-03"},
		{time.Date(2025, time.December, 31, 23, 0, 0, 0, time.UTC), "2025-12"},
	}
	for _, c := range casos {
		if got := MesReferenciaDe(c.data); got != c.quer {
			t.Errorf("MesReferenciaDe(%v) = %q, esperado %q", c.data, got, c.quer)
		}
	}
}

// fakes em memória para o gerador mensal

type contratosFake struct {
	contrato.Repository
	ativos []contrato.Contrato
}

func (f *contratosFake) ListarAtivosMensais(db *gorm.DB, orgID uint) ([]contrato.Contrato, error) {
	return f.ativos, nil
}

type faturasFake struct {
	Repository
	criadas []Fatura
}

func (f *faturasFake) Criar(db *gorm.DB, fat *Fatura) error {
	f.criadas = append(f.criadas, *fat)
	return nil
}

func TestGerarFaturasMensais(t *testing.T) {
	c1 := contrato.Contrato{ClienteID: 7, MRR: 150, Status: contrato.StatusAtivo, CicloCobranca: contrato.CicloMensal}
	c1.ID = 1
	c2 := contrato.Contrato{ClienteID: 8, MRR: 300, Status: contrato.StatusAtivo, CicloCobranca: contrato.CicloMensal}
	c2.ID = 2

	contratos := &contratosFake{ativos: []contrato.Contrato{c1, c2}}
	faturas := &faturasFake{}
	agora := time.Date(2025, time.March, 18, 10, 0, 0, 0, time.UTC)

	geradas, err := GerarFaturasMensais(nil, contratos, faturas, 1, agora)
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if geradas != 2 || len(faturas.criadas) != 2 {
		t.Fatalf("esperado 2 faturas, veio %d", geradas)
	}

	f := faturas.criadas[0]
	if f.Valor != 150 || f.ContratoID != 1 || f.ClienteID != 7 {
		t.Errorf("fatura 0 inesperada: %+v", f)
	}
	if f.MesReferencia != "2025-03" {
		t.Errorf("MesReferencia = %q, esperado 2025-03", f.MesReferencia)
	}
	if f.DataEmissao.Day() != 1 || f.DataVencimento.Day() != 5 {
		t.Errorf("emissão dia %d e vencimento dia %d, esperado 1 e 5",
			f.DataEmissao.Day(), f.DataVencimento.Day())
	}
}

func TestGerarFaturasMensaisNaoTravaDuplicata(t *testing.T) {
	// gerar duas vezes no mesmo mês emite em dobro: limitação conhecida,
	// o teste documenta o comportamento em vez de escondê-lo
	c := contrato.Contrato{ClienteID: 7, MRR: 150, Status: contrato.StatusAtivo, CicloCobranca: contrato.CicloMensal}
	c.ID = 1
	contratos := &contratosFake{ativos: []contrato.Contrato{c}}
	faturas := &faturasFake{}
	agora := time.Date(2025, time.March, 18, 10, 0, 0, 0, time.UTC)

	GerarFaturasMensais(nil, contratos, faturas, 1, agora)
	GerarFaturasMensais(nil, contratos, faturas, 1, agora)

	if len(faturas.criadas) != 2 {
		t.Fatalf("esperado 2 faturas duplicadas, veio %d", len(faturas.criadas))
	}
}
