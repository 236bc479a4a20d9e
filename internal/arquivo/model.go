package arquivo

import "gorm.io/gorm"

// Arquivo guarda só os metadados; o conteúdo vive no bucket S3 sob Caminho.
type Arquivo struct {
	gorm.Model
	OrgID uint `gorm:"not null;index" json:"orgId"`

	ClienteID  *uint `gorm:"index" json:"clienteId"`
	ContratoID *uint `gorm:"index" json:"contratoId"`

	Nome    string `gorm:"size:255;not null" json:"nome"`
	Caminho string `gorm:"size:512;not null" json:"caminho"`
}

func (Arquivo) TableName() string { return "arquivos" }
