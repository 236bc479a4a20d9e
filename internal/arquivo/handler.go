package arquivo

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/ronaldoarch/erp-midas/internal/auth"
	"github.com/ronaldoarch/erp-midas/internal/organizacao"

	"github.com/gorilla/mux"
	"gorm.io/gorm"
)

type criarRequest struct {
	Nome        string `json:"nome"`
	ContentType string `json:"contentType"`
	ClienteID   *uint  `json:"clienteId"`
	ContratoID  *uint  `json:"contratoId"`
}

type criarResponse struct {
	Arquivo   Arquivo `json:"arquivo"`
	UploadURL string  `json:"uploadUrl"`
}

// Handler encapsula DB, repository e o storage de objetos
type Handler struct {
	DB         *gorm.DB
	Repository Repository
	Storage    *Storage
}

func NewHandler(db *gorm.DB, storage *Storage) *Handler {
	return &Handler{DB: db, Repository: NewRepository(), Storage: storage}
}

// Criar registra os metadados e devolve a URL assinada para o upload direto.
// POST /arquivos
func (h *Handler) Criar(w http.ResponseWriter, r *http.Request) {
	orgID, err := organizacao.OrgDoUsuario(h.DB, auth.UsuarioID(r.Context()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var req criarRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Nome == "" {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}

	if h.Storage == nil {
		http.Error(w, "storage de arquivos não configurado", http.StatusServiceUnavailable)
		return
	}

	chave := ChaveDeUpload(orgID, req.Nome)
	uploadURL, err := h.Storage.URLDeUpload(r.Context(), chave, req.ContentType)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	a := Arquivo{
		OrgID:      orgID,
		ClienteID:  req.ClienteID,
		ContratoID: req.ContratoID,
		Nome:       req.Nome,
		Caminho:    chave,
	}
	if err := h.Repository.Criar(h.DB, &a); err != nil {
		http.Error(w, "erro ao salvar arquivo", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(criarResponse{Arquivo: a, UploadURL: uploadURL})
}

// Deletar remove os metadados de um arquivo.
// DELETE /arquivos/{id}
func (h *Handler) Deletar(w http.ResponseWriter, r *http.Request) {
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

	if err := h.Repository.Deletar(h.DB, orgID, uint(id)); err != nil {
		http.Error(w, "erro ao excluir arquivo", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("arquivo excluído com sucesso"))
}

// Listar retorna os arquivos da organização.
// GET /arquivos?clienteId=
func (h *Handler) Listar(w http.ResponseWriter, r *http.Request) {
	orgID, err := organizacao.OrgDoUsuario(h.DB, auth.UsuarioID(r.Context()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var clienteID uint
	if v, err := strconv.Atoi(r.URL.Query().Get("clienteId")); err == nil {
		clienteID = uint(v)
	}

	arquivos, err := h.Repository.Listar(h.DB, orgID, clienteID)
	if err != nil {
		http.Error(w, "erro ao listar arquivos", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(arquivos)
}
