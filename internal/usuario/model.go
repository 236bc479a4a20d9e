package usuario

import "gorm.io/gorm"

type Usuario struct {
	gorm.Model
	Nome    string `json:"nome"`
	Email   string `json:"email" gorm:"unique"`
	Senha   string `json:"-"`
	IsAdmin bool   `json:"isAdmin"`
	OrgID   uint   `gorm:"index" json:"orgId"`
}

func (Usuario) TableName() string { return "usuarios" }
