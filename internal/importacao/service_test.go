package importacao

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/ronaldoarch/erp-midas/internal/cliente"
	"github.com/ronaldoarch/erp-midas/internal/contrato"
)

// gravadorFake acumula as escritas em memória e pode falhar por nome
type gravadorFake struct {
	falharEm  map[string]error
	clientes  []cliente.Cliente
	contratos []contrato.Contrato
}

func (g *gravadorFake) CriarClienteComContrato(ctx context.Context, c *cliente.Cliente, ct *contrato.Contrato) error {
	if err := g.falharEm[c.NomeFantasia]; err != nil {
		return err
	}
	c.ID = uint(len(g.clientes) + 1)
	g.clientes = append(g.clientes, *c)
	if ct != nil {
		ct.ClienteID = c.ID
		g.contratos = append(g.contratos, *ct)
	}
	return nil
}

func novoServiceFake(falharEm map[string]error) (*Service, *gravadorFake) {
	g := &gravadorFake{falharEm: falharEm}
	return &Service{
		Gravador: g,
		Agora:    func() time.Time { return agoraFixa },
	}, g
}

func TestImportarClientesFluxoCompleto(t *testing.T) {
	// duas linhas da planilha: uma boa, uma sem nome
	m := Mapeamento{Nome: "name", Valor: "value"}
	linhas := []map[string]string{
		{"name": "Acme", "value": "R$ 100,00"},
		{"name": "", "value": "50"},
	}
	registros := NormalizarLinhas(linhas, m, agoraFixa)
	if len(registros) != 1 {
		t.Fatalf("esperado 1 registro após normalização, veio %d", len(registros))
	}

	svc, g := novoServiceFake(nil)
	res := svc.ImportarClientes(context.Background(), 1, registros)

	if res.Sucesso != 1 || len(res.Erros) != 0 {
		t.Fatalf("resultado inesperado: %+v", res)
	}
	if len(g.clientes) != 1 || g.clientes[0].NomeFantasia != "Acme" {
		t.Fatalf("clientes gravados: %+v", g.clientes)
	}
	if len(g.contratos) != 1 || g.contratos[0].MRR != 100 {
		t.Fatalf("contratos gravados: %+v", g.contratos)
	}
	if g.contratos[0].Status != contrato.StatusAtivo || g.contratos[0].CicloCobranca != contrato.CicloMensal {
		t.Errorf("contrato deveria nascer ativo e mensal: %+v", g.contratos[0])
	}
}

func TestImportarClientesLinhasIndependentes(t *testing.T) {
	registros := []RegistroImportacao{
		{Nome: "Alfa", Valor: 10},
		{Nome: "Bravo", Valor: 20},
		{Nome: "Caju", Valor: 30},
		{Nome: "Delta", Valor: 40},
	}

	svc, g := novoServiceFake(map[string]error{"Caju": errors.New("conexão recusada")})
	res := svc.ImportarClientes(context.Background(), 1, registros)

	// a falha na terceira linha não impede as outras três
	if res.Sucesso != 3 {
		t.Fatalf("Sucesso = %d, esperado 3", res.Sucesso)
	}
	if len(res.Erros) != 1 || !strings.Contains(res.Erros[0], "Caju: conexão recusada") {
		t.Fatalf("Erros = %v", res.Erros)
	}
	if len(g.clientes) != 3 {
		t.Fatalf("esperado 3 clientes gravados, veio %d", len(g.clientes))
	}
	// ordem de entrada preservada
	if g.clientes[0].NomeFantasia != "Alfa" || g.clientes[2].NomeFantasia != "Delta" {
		t.Errorf("ordem inesperada: %+v", g.clientes)
	}
}

func TestImportarClientesValidacao(t *testing.T) {
	registros := []RegistroImportacao{
		{Nome: "   ", Valor: 10},
		{Nome: "Eco", Valor: -5},
	}

	svc, g := novoServiceFake(nil)
	res := svc.ImportarClientes(context.Background(), 1, registros)

	if res.Sucesso != 0 || len(res.Erros) != 2 {
		t.Fatalf("resultado inesperado: %+v", res)
	}
	if !strings.Contains(res.Erros[0], "Sem nome: Nome é obrigatório") {
		t.Errorf("Erros[0] = %q", res.Erros[0])
	}
	if !strings.Contains(res.Erros[1], "Eco: Valor inválido") {
		t.Errorf("Erros[1] = %q", res.Erros[1])
	}
	if len(g.clientes) != 0 {
		t.Errorf("nada deveria ter sido gravado: %+v", g.clientes)
	}
}

func TestImportarClientesValorZeroCriaSoCliente(t *testing.T) {
	svc, g := novoServiceFake(nil)
	res := svc.ImportarClientes(context.Background(), 1, []RegistroImportacao{{Nome: "Foxtrot", Valor: 0}})

	if res.Sucesso != 1 || len(res.Erros) != 0 {
		t.Fatalf("resultado inesperado: %+v", res)
	}
	if len(g.clientes) != 1 || len(g.contratos) != 0 {
		t.Fatalf("valor zero deveria criar cliente sem contrato: %d clientes, %d contratos",
			len(g.clientes), len(g.contratos))
	}
}

func TestImportarClientesDatasDoContrato(t *testing.T) {
	// agoraFixa é 10/03; dia 15 ainda não passou, então vence em 15/03
	svc, g := novoServiceFake(nil)
	svc.ImportarClientes(context.Background(), 1, []RegistroImportacao{
		{Nome: "Golf", Valor: 100, DiaVencimento: 15, AnoVencimento: 2025},
	})

	fim := g.contratos[0].DataFim
	if fim.Day() != 15 || fim.Month() != time.March || fim.Year() != 2025 {
		t.Fatalf("DataFim = %v, esperado 15/03/2025", fim)
	}
	if !g.contratos[0].DataInicio.Equal(agoraFixa) {
		t.Errorf("DataInicio = %v, esperado %v", g.contratos[0].DataInicio, agoraFixa)
	}
}

func TestReimportacaoDuplicaClientes(t *testing.T) {
	// não há chave de dedup: importar a mesma planilha duas vezes duplica
	// tudo. É limitação assumida do fluxo, não defeito a corrigir aqui.
	registros := []RegistroImportacao{{Nome: "Hotel", Valor: 100}}

	svc, g := novoServiceFake(nil)
	primeira := svc.ImportarClientes(context.Background(), 1, registros)
	segunda := svc.ImportarClientes(context.Background(), 1, registros)

	if primeira.Sucesso != 1 || segunda.Sucesso != 1 {
		t.Fatalf("resultados: %+v / %+v", primeira, segunda)
	}
	if len(g.clientes) != 2 || len(g.contratos) != 2 {
		t.Fatalf("esperado 2 clientes e 2 contratos, veio %d/%d", len(g.clientes), len(g.contratos))
	}
}

func TestImportarClientesContextoCancelado(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc, g := novoServiceFake(nil)
	res := svc.ImportarClientes(ctx, 1, []RegistroImportacao{{Nome: "India", Valor: 10}})

	if res.Sucesso != 0 || len(g.clientes) != 0 {
		t.Fatalf("nada deveria rodar com contexto cancelado: %+v", res)
	}
	if len(res.Erros) != 1 || !strings.Contains(res.Erros[0], "importação interrompida") {
		t.Fatalf("Erros = %v", res.Erros)
	}
}
