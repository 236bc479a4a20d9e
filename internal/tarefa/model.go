package tarefa

import (
	"time"

	"gorm.io/gorm"
)

const (
	StatusPendente  = "pending"
	StatusAndamento = "in_progress"
	StatusConcluida = "done"
)

type Tarefa struct {
	gorm.Model
	OrgID uint `gorm:"not null;index" json:"orgId"`

	Titulo     string     `gorm:"size:160;not null" json:"titulo"`
	Descricao  string     `json:"descricao"`
	Status     string     `gorm:"size:20" json:"status"`
	DataLimite *time.Time `json:"dataLimite"`

	ClienteID *uint `gorm:"index" json:"clienteId"`
}

func (Tarefa) TableName() string { return "tarefas" }
