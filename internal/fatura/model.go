package fatura

import (
	"fmt"
	"time"

	"github.com/ronaldoarch/erp-midas/internal/pagamento"

	"gorm.io/gorm"
)

// Fatura é a cobrança de um mês de referência. O valor é copiado do MRR do
// contrato no momento da geração; alterações posteriores no contrato não
// mudam faturas já emitidas.
type Fatura struct {
	gorm.Model

	OrgID      uint `gorm:"not null;index" json:"orgId"`
	ContratoID uint `gorm:"not null;index" json:"contratoId"`
	ClienteID  uint `gorm:"not null;index" json:"clienteId"`

	Valor          float64   `gorm:"not null" json:"valor"`
	MesReferencia  string    `gorm:"size:7;index" json:"mesReferencia"` // "AAAA-MM"
	DataEmissao    time.Time `json:"dataEmissao"`
	DataVencimento time.Time `json:"dataVencimento"`

	Pagamentos []pagamento.Pagamento `gorm:"foreignKey:FaturaID" json:"pagamentos,omitempty"`
}

func (Fatura) TableName() string { return "faturas" }

// ValorPago soma os pagamentos já registrados
func (f *Fatura) ValorPago() float64 {
	return pagamento.Total(f.Pagamentos)
}

// Quitada indica se a soma dos pagamentos cobre o valor da fatura
func (f *Fatura) Quitada() bool {
	return f.ValorPago() >= f.Valor
}

// MesReferenciaDe formata o mês de referência no padrão "AAAA-MM"
func MesReferenciaDe(t time.Time) string {
	return fmt.Sprintf("%04d-%02d", t.Year(), int(t.Month()))
}
