package pagamento

import "gorm.io/gorm"

type Repository interface {
	Criar(db *gorm.DB, p *Pagamento) error
	ListarPorFatura(db *gorm.DB, orgID, faturaID uint) ([]Pagamento, error)
	SomarPorOrg(db *gorm.DB, orgID uint) (float64, error)
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, p *Pagamento) error {
	return db.Create(p).Error
}

func (r *repositoryImpl) ListarPorFatura(db *gorm.DB, orgID, faturaID uint) ([]Pagamento, error) {
	var pagamentos []Pagamento
	err := db.Where("org_id = ? AND fatura_id = ?", orgID, faturaID).
		Order("recebido_em asc").Find(&pagamentos).Error
	return pagamentos, err
}

func (r *repositoryImpl) SomarPorOrg(db *gorm.DB, orgID uint) (float64, error) {
	var total float64
	err := db.Model(&Pagamento{}).Where("org_id = ?", orgID).
		Select("COALESCE(SUM(valor), 0)").Scan(&total).Error
	return total, err
}
