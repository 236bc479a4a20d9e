package tarefa

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ronaldoarch/erp-midas/internal/auth"
	"github.com/ronaldoarch/erp-midas/internal/organizacao"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type moverStatusRequest struct {
	Status string `json:"status"`
}

// Handler encapsula DB e repository
type Handler struct {
	DB         *gorm.DB
	Repository Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Repository: NewRepository()}
}

func (h *Handler) orgDaRequisicao(w http.ResponseWriter, r *http.Request) (uint, bool) {
	orgID, err := organizacao.OrgDoUsuario(h.DB, auth.UsuarioID(r.Context()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return 0, false
	}
	return orgID, true
}

// Criar cadastra uma tarefa
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	orgID, ok := h.orgDaRequisicao(w, r)
	if !ok {
		return
	}

	var t Tarefa
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if t.Titulo == "" {
		http.Error(w, "título é obrigatório", http.StatusBadRequest)
		return
	}
	if t.Status == "" {
		t.Status = StatusPendente
	}
	t.OrgID = orgID

	if err := h.Repository.Criar(h.DB, &t); err != nil {
		http.Error(w, "erro ao salvar tarefa", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(t)
}

// Listar retorna as tarefas da organização.
// GET /tarefas?status=&ate=&clienteId=
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	orgID, ok := h.orgDaRequisicao(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	filtro := Filtro{Status: q.Get("status")}
	if ate := q.Get("ate"); ate != "" {
		if t, err := time.Parse("2006-01-02", ate); err == nil {
			filtro.LimiteAte = &t
		}
	}
	if v, err := strconv.Atoi(q.Get("clienteId")); err == nil {
		filtro.ClienteID = uint(v)
	}

	tarefas, err := h.Repository.Listar(h.DB, orgID, filtro)
	if err != nil {
		http.Error(w, "erro ao listar tarefas", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(tarefas)
}

// Atualizar altera uma tarefa existente
func (h *Handler) Atualizar(w http.ResponseWriter, r *http.Request) {
	orgID, ok := h.orgDaRequisicao(w, r)
	if !ok {
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var t Tarefa
	if err := json.NewDecoder(r.Body).Decode(&t); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	t.ID = uint(id)
	t.OrgID = orgID

	if err := h.Repository.Atualizar(h.DB, &t); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "tarefa não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao atualizar tarefa", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(t)
}

// MoverStatus muda só o status (colunas do quadro).
// PATCH /tarefas/{id}/status
func (h *Handler) MoverStatus(w http.ResponseWriter, r *http.Request) {
	orgID, ok := h.orgDaRequisicao(w, r)
	if !ok {
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req moverStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Status == "" {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.MoverStatus(h.DB, orgID, uint(id), req.Status); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "tarefa não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao mover tarefa", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("tarefa atualizada com sucesso"))
}

// Deletar remove uma tarefa
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
	orgID, ok := h.orgDaRequisicao(w, r)
	if !ok {
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Deletar(h.DB, orgID, uint(id)); err != nil {
		http.Error(w, "erro ao excluir tarefa", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("tarefa excluída com sucesso"))
}
