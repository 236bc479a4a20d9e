package cliente

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/ronaldoarch/erp-midas/internal/auth"
	"github.com/ronaldoarch/erp-midas/internal/contrato"
	"github.com/ronaldoarch/erp-midas/internal/notificacao"
	"github.com/ronaldoarch/erp-midas/internal/organizacao"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type criarComContratoRequest struct {
	Nome                   string  `json:"nome"`
	RazaoSocial            string  `json:"razaoSocial"`
	Telefone               string  `json:"telefone"`
	ResponsavelFuncionario string  `json:"responsavelFuncionario"`
	Nicho                  string  `json:"nicho"`
	MRR                    float64 `json:"mrr"`
	DiaVencimento          int     `json:"diaVencimento"`
	AnoVencimento          int     `json:"anoVencimento"`
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

// Listar retorna os clientes da organização. Com mes e ano na query, devolve
// apenas quem tem contrato vencendo naquele mês, com os contratos aninhados.
// GET /clientes?mes=&ano=&q=
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	orgID, ok := h.orgDaRequisicao(w, r)
	if !ok {
		return
	}

	q := r.URL.Query()
	mes, _ := strconv.Atoi(q.Get("mes"))
	ano, _ := strconv.Atoi(q.Get("ano"))

	var (
		clientes []Cliente
		err      error
	)
	if mes >= 1 && mes <= 12 && ano > 0 {
		clientes, err = h.Repository.ListarPorVencimento(h.DB, orgID, mes, ano)
	} else {
		clientes, err = h.Repository.Listar(h.DB, orgID, strings.TrimSpace(q.Get("q")))
	}
	if err != nil {
		http.Error(w, "erro ao listar clientes", http.StatusInternalServerError)
		return
	}

	// a lista alimenta a tela de cobrança; nunca pode vir de cache
	w.Header().Set("Cache-Control", "no-store, no-cache, must-revalidate, proxy-revalidate")
	w.Header().Set("Pragma", "no-cache")
	w.Header().Set("Expires", "0")
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(clientes)
}

// BuscarPorID retorna um cliente com seus contratos
func (h *Handler) BuscarPorID(w http.ResponseWriter, r *http.Request) {
	orgID, ok := h.orgDaRequisicao(w, r)
	if !ok {
		return
	}

	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "ID inválido", http.StatusBadRequest)
		return
	}

	c, err := h.Repository.BuscarPorID(h.DB, orgID, uint(id))
	if err != nil {
		http.Error(w, "cliente não encontrado", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(c)
}

// CriarComContrato cadastra um cliente e, se o MRR for positivo, um contrato
// mensal ativo com o primeiro vencimento calculado a partir do dia/ano
// informados. MRR zero cria só o cliente; negativo é rejeitado.
// POST /clientes/com-contrato
func (h *Handler) CriarComContrato(w http.ResponseWriter, r *http.Request) {
	orgID, ok := h.orgDaRequisicao(w, r)
	if !ok {
		return
	}

	var req criarComContratoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	nome := strings.TrimSpace(req.Nome)
	if nome == "" {
		http.Error(w, "nome é obrigatório", http.StatusBadRequest)
		return
	}
	if req.MRR < 0 {
		http.Error(w, "valor inválido", http.StatusBadRequest)
		return
	}

	duplicado := h.Repository.ExisteNomeFantasia(h.DB, orgID, nome)

	razao := req.RazaoSocial
	if razao == "" {
		razao = nome
	}
	c := Cliente{
		OrgID:                  orgID,
		NomeFantasia:           nome,
		RazaoSocial:            razao,
		Telefone:               req.Telefone,
		ResponsavelFuncionario: req.ResponsavelFuncionario,
		Tags:                   TagsDeNicho(req.Nicho),
	}

	var ct *contrato.Contrato
	if req.MRR > 0 {
		inicio, fim := contrato.CalcularPeriodo(req.DiaVencimento, req.AnoVencimento, time.Now())
		ct = &contrato.Contrato{
			Titulo:        "Contrato " + nome,
			Status:        contrato.StatusAtivo,
			CicloCobranca: contrato.CicloMensal,
			MRR:           req.MRR,
			DataInicio:    inicio,
			DataFim:       fim,
		}
	}

	if err := h.Repository.CriarComContrato(h.DB, &c, ct); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	if duplicado {
		go notificacao.EnviarAlertaClienteDuplicado(nome, orgID)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(c)
}

// Atualizar altera dados cadastrais de um cliente
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

	var dados Cliente
	if err := json.NewDecoder(r.Body).Decode(&dados); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	if err := h.Repository.Atualizar(h.DB, orgID, uint(id), &dados); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			http.Error(w, "cliente não encontrado", http.StatusNotFound)
			return
		}
		http.Error(w, "erro ao atualizar cliente", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("cliente atualizado com sucesso"))
}

// Deletar remove um cliente
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
		http.Error(w, "erro ao excluir cliente", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("cliente excluído com sucesso"))
}
