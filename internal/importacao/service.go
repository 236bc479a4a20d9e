package importacao

import (
	"context"
	"strings"
	"time"

	"github.com/ronaldoarch/erp-midas/internal/cliente"
	"github.com/ronaldoarch/erp-midas/internal/contrato"

	"gorm.io/gorm"
)

// Gravador abstrai a escrita do par cliente+contrato de uma linha importada.
// A implementação de verdade grava os dois na mesma transação.
type Gravador interface {
	CriarClienteComContrato(ctx context.Context, c *cliente.Cliente, ct *contrato.Contrato) error
}

type gravadorGorm struct {
	db       *gorm.DB
	clientes cliente.Repository
}

func (g *gravadorGorm) CriarClienteComContrato(ctx context.Context, c *cliente.Cliente, ct *contrato.Contrato) error {
	return g.clientes.CriarComContrato(g.db.WithContext(ctx), c, ct)
}

// Resultado agrega o desfecho da importação: quantas linhas entraram e as
// mensagens de erro das que não entraram, na ordem da planilha.
type Resultado struct {
	Sucesso int      `json:"success"`
	Erros   []string `json:"errors"`
}

// Service executa a importação em lote de registros revisados.
type Service struct {
	Gravador Gravador
	Agora    func() time.Time
}

func NewService(db *gorm.DB) *Service {
	return &Service{
		Gravador: &gravadorGorm{db: db, clientes: cliente.NewRepository()},
		Agora:    time.Now,
	}
}

// ImportarClientes processa os registros em sequência, um independente do
// outro: erro numa linha não desfaz nem impede as demais. Cada linha válida
// vira um cliente; valor positivo cria junto um contrato mensal ativo com o
// primeiro vencimento calculado; valor zero cria o cliente sem contrato.
// Não existe chave de idempotência: repetir a importação duplica tudo.
func (s *Service) ImportarClientes(ctx context.Context, orgID uint, registros []RegistroImportacao) Resultado {
	res := Resultado{Erros: []string{}}
	agora := s.Agora()

	for _, reg := range registros {
		if err := ctx.Err(); err != nil {
			res.Erros = append(res.Erros, "importação interrompida: "+err.Error())
			break
		}

		nome := strings.TrimSpace(reg.Nome)
		if nome == "" {
			res.Erros = append(res.Erros, rotulo(reg.Nome)+": Nome é obrigatório")
			continue
		}
		if reg.Valor < 0 || reg.Valor != reg.Valor {
			res.Erros = append(res.Erros, nome+": Valor inválido")
			continue
		}

		c := &cliente.Cliente{
			OrgID:                  orgID,
			NomeFantasia:           nome,
			RazaoSocial:            nome,
			ResponsavelFuncionario: strings.TrimSpace(reg.ResponsavelFuncionario),
			QtdFuncionarios:        reg.QtdFuncionarios,
			Tags:                   cliente.TagsDeNicho(reg.Nicho),
		}

		var ct *contrato.Contrato
		if reg.Valor > 0 {
			dia := reg.DiaVencimento
			if dia == 0 {
				dia = 1
			}
			ano := reg.AnoVencimento
			if ano == 0 {
				ano = agora.Year()
			}
			inicio, fim := contrato.CalcularPeriodo(dia, ano, agora)
			ct = &contrato.Contrato{
				Titulo:        "Contrato " + nome,
				Status:        contrato.StatusAtivo,
				CicloCobranca: contrato.CicloMensal,
				MRR:           reg.Valor,
				DataInicio:    inicio,
				DataFim:       fim,
			}
		}

		if err := s.Gravador.CriarClienteComContrato(ctx, c, ct); err != nil {
			res.Erros = append(res.Erros, nome+": "+err.Error())
			continue
		}
		res.Sucesso++
	}

	return res
}

func rotulo(nome string) string {
	if strings.TrimSpace(nome) == "" {
		return "Sem nome"
	}
	return nome
}
