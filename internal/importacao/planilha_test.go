package importacao

import (
	"errors"
	"testing"
)

func TestDecodificarPlanilhaCSV(t *testing.T) {
	csv := "Cliente,Valor,Nicho\nAcme,\"R$ 100,00\",igaming\n,,\nBeta,50,\n"

	p, err := DecodificarPlanilha([]byte(csv))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}

	if len(p.Colunas) != 3 || p.Colunas[0] != "Cliente" {
		t.Fatalf("colunas inesperadas: %v", p.Colunas)
	}
	// a linha totalmente em branco some antes da normalização
	if len(p.Linhas) != 2 {
		t.Fatalf("esperado 2 linhas, veio %d", len(p.Linhas))
	}
	if p.Linhas[0]["Cliente"] != "Acme" || p.Linhas[0]["Valor"] != "R$ 100,00" {
		t.Errorf("linha 0 inesperada: %v", p.Linhas[0])
	}
	if p.Linhas[1]["Nicho"] != "" {
		t.Errorf("célula ausente deveria virar vazio, veio %q", p.Linhas[1]["Nicho"])
	}
}

func TestDecodificarPlanilhaVazia(t *testing.T) {
	if _, err := DecodificarPlanilha([]byte("")); !errors.Is(err, ErrPlanilhaVazia) {
		t.Fatalf("esperado ErrPlanilhaVazia, veio %v", err)
	}

	// só cabeçalho, nenhuma linha de dados
	if _, err := DecodificarPlanilha([]byte("Cliente,Valor\n")); !errors.Is(err, ErrSemDados) {
		t.Fatalf("esperado ErrSemDados, veio %v", err)
	}
}

func TestDecodificarPlanilhaCabecalhoEmBranco(t *testing.T) {
	// coluna sem cabeçalho é ignorada, as demais permanecem
	p, err := DecodificarPlanilha([]byte("Cliente,,Valor\nAcme,x,100\n"))
	if err != nil {
		t.Fatalf("erro inesperado: %v", err)
	}
	if len(p.Colunas) != 2 {
		t.Fatalf("colunas inesperadas: %v", p.Colunas)
	}
	if p.Linhas[0]["Valor"] != "100" {
		t.Errorf("alinhamento de coluna quebrou: %v", p.Linhas[0])
	}
}

func TestReescreverURLPlanilha(t *testing.T) {
	casos := []struct {
		nome    string
		entrada string
		quer    string
	}{
		{
			"link compartilhado com id",
			"https://docs.google.com/spreadsheets/d/abc123-XYZ_9/edit#gid=0",
			"https://docs.google.com/spreadsheets/d/abc123-XYZ_9/export?format=xlsx&id=abc123-XYZ_9&gid=0",
		},
		{
			"url fora do google passa intocada",
			"https://exemplo.com/planilha.xlsx",
			"https://exemplo.com/planilha.xlsx",
		},
	}

	for _, c := range casos {
		t.Run(c.nome, func(t *testing.T) {
			if got := ReescreverURLPlanilha(c.entrada); got != c.quer {
				t.Fatalf("ReescreverURLPlanilha(%q) = %q, esperado %q", c.entrada, got, c.quer)
			}
		})
	}
}
