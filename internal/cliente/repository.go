package cliente

import (
	"time"

	"github.com/ronaldoarch/erp-midas/internal/contrato"

	"gorm.io/gorm"
)

type Repository interface {
	Criar(db *gorm.DB, c *Cliente) error
	// CriarComContrato grava cliente e contrato na mesma transação; uma falha
	// no contrato desfaz o cliente, nunca fica cliente órfão de uma escrita
	// parcial. O contrato pode ser nil (cadastro sem valor).
	CriarComContrato(db *gorm.DB, c *Cliente, ct *contrato.Contrato) error
	BuscarPorID(db *gorm.DB, orgID, id uint) (*Cliente, error)
	Listar(db *gorm.DB, orgID uint, busca string) ([]Cliente, error)
	ListarPorVencimento(db *gorm.DB, orgID uint, mes, ano int) ([]Cliente, error)
	ExisteNomeFantasia(db *gorm.DB, orgID uint, nome string) bool
	Atualizar(db *gorm.DB, orgID, id uint, novosDados *Cliente) error
	Deletar(db *gorm.DB, orgID, id uint) error
}

type repositoryImpl struct{}

func NewRepository() Repository {
	return &repositoryImpl{}
}

func (r *repositoryImpl) Criar(db *gorm.DB, c *Cliente) error {
	return db.Create(c).Error
}

func (r *repositoryImpl) CriarComContrato(db *gorm.DB, c *Cliente, ct *contrato.Contrato) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(c).Error; err != nil {
			return err
		}
		if ct == nil {
			return nil
		}
		ct.OrgID = c.OrgID
		ct.ClienteID = c.ID
		return tx.Create(ct).Error
	})
}

func (r *repositoryImpl) BuscarPorID(db *gorm.DB, orgID, id uint) (*Cliente, error) {
	var c Cliente
	err := db.Where("org_id = ?", orgID).Preload("Contratos").First(&c, id).Error
	return &c, err
}

func (r *repositoryImpl) Listar(db *gorm.DB, orgID uint, busca string) ([]Cliente, error) {
	var clientes []Cliente
	q := db.Where("org_id = ?", orgID).Preload("Contratos")
	if busca != "" {
		like := "%" + busca + "%"
		q = q.Where("nome_fantasia ILIKE ? OR razao_social ILIKE ?", like, like)
	}
	err := q.Order("nome_fantasia asc").Find(&clientes).Error
	return clientes, err
}

// ListarPorVencimento devolve os clientes com contrato vencendo dentro do mês
// informado, com só esses contratos aninhados, ordenados por nome fantasia
func (r *repositoryImpl) ListarPorVencimento(db *gorm.DB, orgID uint, mes, ano int) ([]Cliente, error) {
	inicio := time.Date(ano, time.Month(mes), 1, 0, 0, 0, 0, time.Local)
	fim := inicio.AddDate(0, 1, 0).Add(-time.Second)

	var ids []uint
	err := db.Model(&contrato.Contrato{}).
		Where("org_id = ? AND data_fim BETWEEN ? AND ?", orgID, inicio, fim).
		Distinct().
		Pluck("cliente_id", &ids).Error
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []Cliente{}, nil
	}

	var clientes []Cliente
	err = db.Where("org_id = ? AND id IN ?", orgID, ids).
		Preload("Contratos", "data_fim BETWEEN ? AND ?", inicio, fim).
		Order("nome_fantasia asc").
		Find(&clientes).Error
	return clientes, err
}

func (r *repositoryImpl) ExisteNomeFantasia(db *gorm.DB, orgID uint, nome string) bool {
	var count int64
	db.Model(&Cliente{}).Where("org_id = ? AND nome_fantasia = ?", orgID, nome).Count(&count)
	return count > 0
}

func (r *repositoryImpl) Atualizar(db *gorm.DB, orgID, id uint, novosDados *Cliente) error {
	var existente Cliente
	if err := db.Where("org_id = ?", orgID).First(&existente, id).Error; err != nil {
		return err
	}

	existente.NomeFantasia = novosDados.NomeFantasia
	existente.RazaoSocial = novosDados.RazaoSocial
	existente.Telefone = novosDados.Telefone
	existente.ResponsavelFuncionario = novosDados.ResponsavelFuncionario
	existente.QtdFuncionarios = novosDados.QtdFuncionarios
	if novosDados.Tags != nil {
		existente.Tags = novosDados.Tags
	}

	return db.Save(&existente).Error
}

func (r *repositoryImpl) Deletar(db *gorm.DB, orgID, id uint) error {
	return db.Where("org_id = ?", orgID).Delete(&Cliente{}, id).Error
}
