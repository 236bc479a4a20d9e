package organizacao

import (
	"errors"
	"os"
	"strconv"

	"gorm.io/gorm"
)

// ErrOrgNaoConfigurada é fatal para a requisição inteira: sem organização
// não há como escopar nenhuma escrita ou leitura.
var ErrOrgNaoConfigurada = errors.New("org não encontrada (configure DEFAULT_ORG_ID)")

// OrgPadrao lê a organização de fallback do ambiente.
func OrgPadrao() (uint, error) {
	raw := os.Getenv("DEFAULT_ORG_ID")
	if raw == "" {
		return 0, ErrOrgNaoConfigurada
	}
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, ErrOrgNaoConfigurada
	}
	return uint(id), nil
}

// OrgDoUsuario resolve a organização do usuário autenticado, caindo para a
// organização padrão quando o cadastro não aponta nenhuma. O id resolvido é
// passado explicitamente para repositórios e serviços; nenhuma operação lê
// estado ambiente depois daqui.
func OrgDoUsuario(db *gorm.DB, userID uint) (uint, error) {
	var row struct{ OrgID uint }
	err := db.Table("usuarios").Select("org_id").Where("id = ?", userID).Scan(&row).Error
	if err == nil && row.OrgID != 0 {
		return row.OrgID, nil
	}
	return OrgPadrao()
}
