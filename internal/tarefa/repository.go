package tarefa

import (
	"time"

	"gorm.io/gorm"
)

type Filtro struct {
	Status    string
	LimiteAte *time.Time
	ClienteID uint
}

type Repository interface {
	Criar(db *gorm.DB, t *Tarefa) error
	BuscarPorID(db *gorm.DB, orgID, id uint) (*Tarefa, error)
	Listar(db *gorm.DB, orgID uint, filtro Filtro) ([]Tarefa, error)
	Atualizar(db *gorm.DB, t *Tarefa) error
	MoverStatus(db *gorm.DB, orgID, id uint, status string) error
	Deletar(db *gorm.DB, orgID, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, t *Tarefa) error {
	return db.Create(t).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, orgID, id uint) (*Tarefa, error) {
	var t Tarefa
	err := db.Where("org_id = ?", orgID).First(&t, id).Error
	return &t, err
}

func (r *repositoryImpl) Listar(db *gorm.DB, orgID uint, filtro Filtro) ([]Tarefa, error) {
	var tarefas []Tarefa
	q := db.Where("org_id = ?", orgID)
	if filtro.Status != "" {
		q = q.Where("status = ?", filtro.Status)
	}
	if filtro.LimiteAte != nil {
		q = q.Where("data_limite <= ?", *filtro.LimiteAte)
	}
	if filtro.ClienteID != 0 {
		q = q.Where("cliente_id = ?", filtro.ClienteID)
	}
	err := q.Order("created_at desc").Find(&tarefas).Error
	return tarefas, err
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, t *Tarefa) error {
	var existente Tarefa
	if err := db.Where("org_id = ?", t.OrgID).First(&existente, t.ID).Error; err != nil {
		return err
	}

	existente.Titulo = t.Titulo
	existente.Descricao = t.Descricao
	if t.Status != "" {
		existente.Status = t.Status
	}
	existente.DataLimite = t.DataLimite
	existente.ClienteID = t.ClienteID

	return db.Save(&existente).Error
}

func (r *repositoryImpl) MoverStatus(db *gorm.DB, orgID, id uint, status string) error {
	var existente Tarefa
	if err := db.Where("org_id = ?", orgID).First(&existente, id).Error; err != nil {
		return err
	}
	return db.Model(&existente).Update("status", status).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, orgID, id uint) error {
	return db.Where("org_id = ?", orgID).Delete(&Tarefa{}, id).Error
}
