package fatura

import (
	"time"

	"github.com/ronaldoarch/erp-midas/internal/contrato"

	"gorm.io/gorm"
)

// GerarFaturasMensais emite uma fatura do mês corrente para cada contrato
// mensal ativo da organização, com valor igual ao MRR atual do contrato,
// emissão no dia 1 e vencimento no dia 5. Não há trava contra uma segunda
// chamada no mesmo mês: rodar de novo emite faturas duplicadas (limitação
// conhecida do fluxo, cobrada manualmente pela revisão da tela de faturas).
func GerarFaturasMensais(db *gorm.DB, contratos contrato.Repository, faturas Repository, orgID uint, agora time.Time) (int, error) {
	ativos, err := contratos.ListarAtivosMensais(db, orgID)
	if err != nil {
		return 0, err
	}

	primeiroDia := time.Date(agora.Year(), agora.Month(), 1, 0, 0, 0, 0, agora.Location())
	vencimento := time.Date(agora.Year(), agora.Month(), 5, 0, 0, 0, 0, agora.Location())
	mesRef := MesReferenciaDe(primeiroDia)

	geradas := 0
	for _, c := range ativos {
		f := Fatura{
			OrgID:          orgID,
			ContratoID:     c.ID,
			ClienteID:      c.ClienteID,
			Valor:          c.MRR,
			MesReferencia:  mesRef,
			DataEmissao:    primeiroDia,
			DataVencimento: vencimento,
		}
		if err := faturas.Criar(db, &f); err != nil {
			return geradas, err
		}
		geradas++
	}
	return geradas, nil
}
