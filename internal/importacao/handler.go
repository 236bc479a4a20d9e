package importacao

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ronaldoarch/erp-midas/internal/auth"
	"github.com/ronaldoarch/erp-midas/internal/organizacao"

	"gorm.io/gorm"
)

// analiseResponse devolve a planilha decodificada junto com o mapeamento
// sugerido e a prévia normalizada, para o usuário confirmar ou corrigir na
// tela de revisão antes de qualquer escrita.
type analiseResponse struct {
	Linhas    []map[string]string  `json:"rows"`
	Colunas   []string             `json:"columns"`
	Mapa      Mapeamento           `json:"mapping"`
	Registros []RegistroImportacao `json:"records"`
}

// Handler encapsula DB e o serviço de importação
type Handler struct {
	DB      *gorm.DB
	Service *Service
}

func NewHandler(db *gorm.DB) *Handler {
	return &Handler{DB: db, Service: NewService(db)}
}

// AnalisarPlanilha recebe um arquivo enviado ou uma URL compartilhada, devolve
// linhas, colunas, mapeamento sugerido e a prévia dos registros.
// POST /importacoes/planilha  (multipart: file ou url)
func (h *Handler) AnalisarPlanilha(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		http.Error(w, "formulário inválido", http.StatusBadRequest)
		return
	}

	var conteudo []byte
	if url := strings.TrimSpace(r.FormValue("url")); url != "" {
		var err error
		conteudo, err = BaixarPlanilha(r.Context(), url)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
	} else if arquivo, _, err := r.FormFile("file"); err == nil {
		defer arquivo.Close()
		conteudo, err = io.ReadAll(arquivo)
		if err != nil {
			http.Error(w, "erro ao ler arquivo", http.StatusBadRequest)
			return
		}
	} else {
		http.Error(w, "Arquivo ou URL é obrigatório", http.StatusBadRequest)
		return
	}

	planilha, err := DecodificarPlanilha(conteudo)
	if err != nil {
		if errors.Is(err, ErrPlanilhaVazia) || errors.Is(err, ErrSemDados) {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		http.Error(w, err.Error(), http.StatusUnprocessableEntity)
		return
	}

	mapa := MapearColunas(planilha.Colunas)
	registros := NormalizarLinhas(planilha.Linhas, mapa, time.Now())

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(analiseResponse{
		Linhas:    planilha.Linhas,
		Colunas:   planilha.Colunas,
		Mapa:      mapa,
		Registros: registros,
	})
}

// ImportarClientes grava os registros revisados pelo usuário.
// POST /importacoes/clientes  (body: array de registros)
func (h *Handler) ImportarClientes(w http.ResponseWriter, r *http.Request) {
	orgID, err := organizacao.OrgDoUsuario(h.DB, auth.UsuarioID(r.Context()))
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	var registros []RegistroImportacao
	if err := json.NewDecoder(r.Body).Decode(&registros); err != nil {
		http.Error(w, "payload inválido", http.StatusBadRequest)
		return
	}
	if len(registros) == 0 {
		http.Error(w, "nenhum registro para importar", http.StatusBadRequest)
		return
	}

	res := h.Service.ImportarClientes(r.Context(), orgID, registros)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(res)
}
