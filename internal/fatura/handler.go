package fatura

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/ronaldoarch/erp-midas/internal/auth"
	"github.com/ronaldoarch/erp-midas/internal/contrato"
	"github.com/ronaldoarch/erp-midas/internal/organizacao"
	"github.com/ronaldoarch/erp-midas/internal/pagamento"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type registrarPagamentoRequest struct {
	Valor  float64 `json:"valor"`
	Metodo string  `json:"metodo"`
}

// faturaDTO devolve a fatura com os campos derivados que a tela usa
type faturaDTO struct {
	Fatura
	ValorPago float64 `json:"valorPago"`
	Quitada   bool    `json:"quitada"`
}

// Handler encapsula DB e repositories
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Contratos  contrato.Repository
	Pagamentos pagamento.Repository
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{
		DB:         db,
		Repository: NewRepository(),
		Contratos:  contrato.NewRepository(),
		Pagamentos: pagamento.NewRepository(),
	}
}

func (h *Handler) orgDaRequisicao(w http.ResponseWriter, r *http.Request) (uint, bool) {
	orgID, err := organizacao.OrgDoUsuario(h.DB, auth.UsuarioID(r.Context()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return 0, false
	}
	return orgID, true
}

// Listar retorna as faturas da organização, mais recentes primeiro.
// GET /faturas?clienteId=&mesReferencia=
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	orgID, ok := h.orgDaRequisicao(w, r)
	if !ok {
		return
	}

	var filtro Filtro
	if v, err := strconv.Atoi(r.URL.Query().Get("clienteId")); err == nil {
		filtro.ClienteID = uint(v)
	}
	filtro.MesRef = r.URL.Query().Get("mesReferencia")

	faturas, err := h.Repository.Listar(h.DB, orgID, filtro)
	if err != nil {
		http.Error(w, "erro ao listar faturas", http.StatusInternalServerError)
		return
	}

	dtos := make([]faturaDTO, 0, len(faturas))
	for i := range faturas {
		dtos = append(dtos, faturaDTO{
			Fatura:    faturas[i],
			ValorPago: faturas[i].ValorPago(),
			Quitada:   faturas[i].Quitada(),
		})
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(dtos)
}

// GerarMensais emite as faturas do mês corrente para os contratos ativos.
// POST /faturas/gerar-mensal
func (h *Handler) GerarMensais(w http.ResponseWriter, r *http.Request) {
	orgID, ok := h.orgDaRequisicao(w, r)
	if !ok {
		return
	}

	geradas, err := GerarFaturasMensais(h.DB, h.Contratos, h.Repository, orgID, time.Now())
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]int{"geradas": geradas})
}

// RegistrarPagamento marca (parcialmente) uma fatura como paga inserindo um
// pagamento. O valor não é conferido contra o saldo: quitação é derivada no
// DTO comparando a soma dos pagamentos com o valor da fatura.
// POST /faturas/{id}/pagamentos
func (h *Handler) RegistrarPagamento(w http.ResponseWriter, r *http.Request) {
	orgID, ok := h.orgDaRequisicao(w, r)
	if !ok {
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	var req registrarPagamentoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if req.Valor <= 0 {
		http.Error(w, "valor inválido", http.StatusBadRequest)
		return
	}
	if req.Metodo == "" {
		req.Metodo = "pix"
	}

	f, err := h.Repository.BuscarPorID(h.DB, orgID, uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "fatura não encontrada", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao buscar fatura", http.StatusInternalServerError)
		return
	}

	p := pagamento.Pagamento{
		OrgID:      orgID,
		FaturaID:   f.ID,
		Valor:      req.Valor,
		Metodo:     req.Metodo,
		RecebidoEm: time.Now(),
	}
	if err := h.Pagamentos.Criar(h.DB, &p); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	f.Pagamentos = append(f.Pagamentos, p)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(faturaDTO{Fatura: *f, ValorPago: f.ValorPago(), Quitada: f.Quitada()})
}
