package contrato

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, c *Contrato) error
	BuscarPorID(db *gorm.DB, orgID, id uint) (*Contrato, error)
	ListarPorOrg(db *gorm.DB, orgID uint) ([]Contrato, error)
	ListarAtivosMensais(db *gorm.DB, orgID uint) ([]Contrato, error)
	AtualizarStatus(db *gorm.DB, orgID, id uint, status string) error
	Atualizar(db *gorm.DB, c *Contrato) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Contrato) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, orgID, id uint) (*Contrato, error) {
	var c Contrato
	err := db.Where("org_id = ?", orgID).First(&c, id).Error
	return &c, err
}

func (r *repositoryImpl) ListarPorOrg(db *gorm.DB, orgID uint) ([]Contrato, error) {
	var contratos []Contrato
	err := db.Where("org_id = ?", orgID).Order("created_at desc").Find(&contratos).Error
	return contratos, err
}

func (r *repositoryImpl) ListarAtivosMensais(db *gorm.DB, orgID uint) ([]Contrato, error) {
	var contratos []Contrato
	err := db.Where("org_id = ? AND status = ? AND ciclo_cobranca = ?", orgID, StatusAtivo, CicloMensal).
		Find(&contratos).Error
	return contratos, err
}

func (r *repositoryImpl) AtualizarStatus(db *gorm.DB, orgID, id uint, status string) error {
	var existente Contrato
	if err := db.Where("org_id = ?", orgID).First(&existente, id).Error; err != nil {
		return err
	}
	return db.Model(&existente).Update("status", status).Error
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, c *Contrato) error {
	var existente Contrato
	if err := db.Where("org_id = ?", c.OrgID).First(&existente, c.ID).Error; err != nil {
		return err
	}

	existente.Titulo = c.Titulo
	existente.MRR = c.MRR
	existente.CicloCobranca = c.CicloCobranca
	if !c.DataInicio.IsZero() {
		existente.DataInicio = c.DataInicio
	}
	if !c.DataFim.IsZero() {
		existente.DataFim = c.DataFim
	}

	return db.Save(&existente).Error
}
