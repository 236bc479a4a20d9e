package painel

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/ronaldoarch/erp-midas/internal/auth"
	"github.com/ronaldoarch/erp-midas/internal/contrato"
	"github.com/ronaldoarch/erp-midas/internal/fatura"
	"github.com/ronaldoarch/erp-midas/internal/organizacao"
	"github.com/ronaldoarch/erp-midas/internal/pagamento"

	"gorm.io/gorm"
)

// Handler agrega os repositórios que alimentam o painel
type Handler struct {
	DB         *gorm.DB
	Contratos  contrato.Repository
	Faturas    fatura.Repository
	Pagamentos pagamento.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Contratos:  contrato.NewRepository(),
		Faturas:    fatura.NewRepository(),
		Pagamentos: pagamento.NewRepository(),
	}
}

// ObterResumo monta os indicadores da organização.
// GET /painel/resumo
func (h *Handler) ObterResumo(w http.ResponseWriter, r *http.Request) {
	orgID, err := organizacao.OrgDoUsuario(h.DB, auth.UsuarioID(r.Context()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	contratos, err := h.Contratos.ListarPorOrg(h.DB, orgID)
	if err != nil {
		http.Error(w, "erro ao carregar contratos", http.StatusInternalServerError)
		return
	}

	vencidas, err := h.Faturas.ListarVencidas(h.DB, orgID)
	if err != nil {
		http.Error(w, "erro ao carregar faturas", http.StatusInternalServerError)
		return
	}

	totalPago, err := h.Pagamentos.SomarPorOrg(h.DB, orgID)
	if err != nil {
		http.Error(w, "erro ao somar pagamentos", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(MontarResumo(contratos, vencidas, totalPago, time.Now()))
}
