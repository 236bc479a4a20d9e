package fatura

import "gorm.io/gorm"

type Filtro struct {
	ClienteID uint
	MesRef    string
}

type Repository interface {
	Criar(db *gorm.DB, f *Fatura) error
	BuscarPorID(db *gorm.DB, orgID, id uint) (*Fatura, error)
	Listar(db *gorm.DB, orgID uint, filtro Filtro) ([]Fatura, error)
	ListarVencidas(db *gorm.DB, orgID uint) ([]Fatura, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, f *Fatura) error {
	return db.Create(f).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, orgID, id uint) (*Fatura, error) {
	var f Fatura
	err := db.Where("org_id = ?", orgID).Preload("Pagamentos").First(&f, id).Error
	return &f, err
}

func (r *repositoryImpl) Listar(db *gorm.DB, orgID uint, filtro Filtro) ([]Fatura, error) {
	var faturas []Fatura
	q := db.Where("org_id = ?", orgID).Preload("Pagamentos")
	if filtro.ClienteID != 0 {
		q = q.Where("cliente_id = ?", filtro.ClienteID)
	}
	if filtro.MesRef != "" {
		q = q.Where("mes_referencia = ?", filtro.MesRef)
	}
	err := q.Order("data_emissao desc").Find(&faturas).Error
	return faturas, err
}

// ListarVencidas traz faturas com vencimento no passado; a quitação é
// conferida em memória porque depende da soma dos pagamentos
func (r *repositoryImpl) ListarVencidas(db *gorm.DB, orgID uint) ([]Fatura, error) {
	var faturas []Fatura
	err := db.Where("org_id = ? AND data_vencimento < NOW()", orgID).
		Preload("Pagamentos").Find(&faturas).Error
	return faturas, err
}
