package contrato

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusAtivo     = "active"
	StatusCancelado = "cancelled"

	CicloMensal = "monthly"
)

// Contrato carrega a receita recorrente mensal de um cliente e o período de
// cobrança vigente. Um contrato com MRR <= 0 nunca é criado: importação e
// cadastro criam só o cliente quando o valor é zero.
type Contrato struct {
	gorm.Model

	OrgID     uint `gorm:"not null;index" json:"orgId"`
	ClienteID uint `gorm:"not null;index" json:"clienteId"`

	Titulo        string  `gorm:"size:160"       json:"titulo"`
	Status        string  `gorm:"size:20;not null" json:"status"` // "active" ou "cancelled"
	CicloCobranca string  `gorm:"size:20"        json:"cicloCobranca"`
	MRR           float64 `gorm:"not null"       json:"mrr"`

	DataInicio time.Time `json:"dataInicio"`
	DataFim    time.Time `json:"dataFim"` // primeiro vencimento do ciclo
}

func (Contrato) TableName() string { return "contratos" }
