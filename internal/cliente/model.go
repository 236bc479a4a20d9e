package cliente

import (
	"encoding/json"

	"github.com/ronaldoarch/erp-midas/internal/contrato"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Cliente struct {
	gorm.Model
	OrgID uint `gorm:"not null;index" json:"orgId"`

	NomeFantasia string `gorm:"size:160;not null" json:"nomeFantasia"`
	RazaoSocial  string `gorm:"size:160" json:"razaoSocial"`
	Telefone     string `json:"telefone"`

	// Funcionário da organização responsável pela conta
	ResponsavelFuncionario string `json:"responsavelFuncionario"`
	QtdFuncionarios        int    `json:"qtdFuncionarios"`

	// Tags livres; o cadastro e a importação gravam o nicho aqui
	Tags datatypes.JSON `json:"tags"`

	Contratos []contrato.Contrato `gorm:"foreignKey:ClienteID" json:"contratos,omitempty"`
}

func (Cliente) TableName() string { return "clientes" }

// TagsDeNicho monta a coluna de tags a partir do nicho informado
func TagsDeNicho(nicho string) datatypes.JSON {
	if nicho == "" {
		return nil
	}
	b, _ := json.Marshal([]string{nicho})
	return datatypes.JSON(b)
}
