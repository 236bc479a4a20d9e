package pagamento

import (
	"time"

	"gorm.io/gorm"
)

// Pagamento registra um recebimento contra uma fatura. O valor não é conferido
// contra o saldo restante: a quitação é derivada somando os pagamentos.
type Pagamento struct {
	gorm.Model

	OrgID    uint `gorm:"not null;index" json:"orgId"`
	FaturaID uint `gorm:"not null;index" json:"faturaId"`

	Valor      float64   `gorm:"not null" json:"valor"`
	Metodo     string    `gorm:"size:40" json:"metodo"` // ex: "pix", "boleto"
	RecebidoEm time.Time `json:"recebidoEm"`
}

func (Pagamento) TableName() string { return "pagamentos" }

// Total soma os valores recebidos
func Total(pagamentos []Pagamento) float64 {
	var soma float64
	for _, p := range pagamentos {
		soma += p.Valor
	}
	return soma
}
