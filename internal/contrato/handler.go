package contrato

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/ronaldoarch/erp-midas/internal/auth"
	"github.com/ronaldoarch/erp-midas/internal/organizacao"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type alternarStatusRequest struct {
	Ativo bool `json:"ativo"`
}

type atualizarRequest struct {
	Titulo        *string  `json:"titulo"`
	MRR           *float64 `json:"mrr"`
	CicloCobranca *string  `json:"cicloCobranca"`
	DataInicio    *string  `json:"dataInicio"`
	DataFim       *string  `json:"dataFim"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

// AlternarStatus liga ou desliga um contrato de um cliente.
// PATCH /clientes/{id}/contratos/{contratoId}/status
func (h *Handler) AlternarStatus(w http.ResponseWriter, r *http.Request) {
	orgID, err := organizacao.OrgDoUsuario(h.DB, auth.UsuarioID(r.Context()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	clienteID, _ := strconv.Atoi(mux.Vars(r)["id"])
	contratoID, err := strconv.Atoi(mux.Vars(r)["contratoId"])
	if err != nil {
		http.Error(w, "ID de contrato inválido", http.StatusBadRequest)
		return
	}

	var req alternarStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repository.BuscarPorID(h.DB, orgID, uint(contratoID))
	if err != nil || c.ClienteID != uint(clienteID) {
		http.Error(w, "contrato não encontrado", http.StatusNotFound)
		return
	}

	status := StatusCancelado
	if req.Ativo {
		status = StatusAtivo
	}
	if err := h.Repository.AtualizarStatus(h.DB, orgID, c.ID, status); err != nil {
		http.Error(w, "erro ao atualizar contrato", http.StatusInternalServerError)
		return
	}

	c.Status = status
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// Listar retorna os contratos da organização, mais recentes primeiro.
// GET /contratos
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	orgID, err := organizacao.OrgDoUsuario(h.DB, auth.UsuarioID(r.Context()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	contratos, err := h.Repository.ListarPorOrg(h.DB, orgID)
	if err != nil {
		http.Error(w, "erro ao listar contratos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(contratos)
}

// Atualizar altera título, mrr, ciclo e datas de um contrato existente.
// PUT /contratos/{id}
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	orgID, err := organizacao.OrgDoUsuario(h.DB, auth.UsuarioID(r.Context()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req atualizarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repository.BuscarPorID(h.DB, orgID, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "contrato não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao buscar contrato", http.StatusInternalServerError)
		return
	}

	if req.Titulo != nil {
		c.Titulo = *req.Titulo
	}
	if req.MRR != nil {
		c.MRR = *req.MRR
	}
	if req.CicloCobranca != nil {
		c.CicloCobranca = *req.CicloCobranca
	}
	if req.DataInicio != nil {
		if t, err := parseData(*req.DataInicio); err == nil {
			c.DataInicio = t
		}
	}
	if req.DataFim != nil {
		if t, err := parseData(*req.DataFim); err == nil {
			c.DataFim = t
		}
	}

	if err := h.Repository.Atualizar(h.DB, c); err != nil {
		http.Error(w, "erro ao atualizar contrato", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}
