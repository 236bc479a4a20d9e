package organizacao

import "gorm.io/gorm"

// Organizacao é a fronteira de tenant: todo cliente, contrato, fatura,
// pagamento, tarefa e arquivo pertence a exatamente uma organização.
type Organizacao struct {
	gorm.Model
	Nome string `gorm:"size:120;not null" json:"nome"`
}

func (Organizacao) TableName() string { return "organizacoes" }
