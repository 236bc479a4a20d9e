package arquivo

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, a *Arquivo) error
	Listar(db *gorm.DB, orgID uint, clienteID uint) ([]Arquivo, error)
	Deletar(db *gorm.DB, orgID, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, a *Arquivo) error {
	return db.Create(a).Error
}

func (r *repositoryImpl) Listar(db *gorm.DB, orgID uint, clienteID uint) ([]Arquivo, error) {
	var arquivos []Arquivo
	q := db.Where("org_id = ?", orgID)
	if clienteID != 0 {
		q = q.Where("cliente_id = ?", clienteID)
	}
	err := q.Order("created_at desc").Find(&arquivos).Error
	return arquivos, err
}

func (r *repositoryImpl) Deletar(db *gorm.DB, orgID, id uint) error {
	return db.Where("org_id = ?", orgID).Delete(&Arquivo{}, id).Error
}
