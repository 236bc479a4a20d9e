package importacao

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/xuri/excelize/v2"
)

var (
	ErrPlanilhaVazia = errors.New("planilha vazia ou inválida")
	ErrSemDados      = errors.New("nenhum dado válido encontrado na planilha")
)

// Planilha é o resultado da decodificação: cabeçalhos da primeira linha e uma
// linha-mapa por linha de dados não totalmente em branco.
type Planilha struct {
	Colunas []string            `json:"columns"`
	Linhas  []map[string]string `json:"rows"`
}

// DecodificarPlanilha aceita XLSX (assinatura zip "PK") ou, na falta dela, CSV.
// A primeira linha vira cabeçalho; linhas totalmente em branco são descartadas.
func DecodificarPlanilha(conteudo []byte) (*Planilha, error) {
	var brutas [][]string

	if bytes.HasPrefix(conteudo, []byte("PK")) {
		f, err := excelize.OpenReader(bytes.NewReader(conteudo))
		if err != nil {
			return nil, fmt.Errorf("abrir planilha: %w", err)
		}
		defer f.Close()

		nomeAba := f.GetSheetName(0)
		if nomeAba == "" {
			return nil, ErrPlanilhaVazia
		}
		brutas, err = f.GetRows(nomeAba)
		if err != nil {
			return nil, fmt.Errorf("ler linhas da aba %s: %w", nomeAba, err)
		}
	} else {
		rd := csv.NewReader(bytes.NewReader(conteudo))
		rd.FieldsPerRecord = -1
		var err error
		brutas, err = rd.ReadAll()
		if err != nil {
			return nil, fmt.Errorf("ler csv: %w", err)
		}
	}

	return montarPlanilha(brutas)
}

func montarPlanilha(brutas [][]string) (*Planilha, error) {
	if len(brutas) == 0 {
		return nil, ErrPlanilhaVazia
	}

	var colunas []string
	var indices []int
	for i, cab := range brutas[0] {
		cab = strings.TrimSpace(cab)
		if cab == "" {
			continue
		}
		colunas = append(colunas, cab)
		indices = append(indices, i)
	}
	if len(colunas) == 0 {
		return nil, ErrPlanilhaVazia
	}

	linhas := make([]map[string]string, 0, len(brutas)-1)
	for _, bruta := range brutas[1:] {
		linha := make(map[string]string, len(colunas))
		vazia := true
		for j, idx := range indices {
			var celula string
			if idx < len(bruta) {
				celula = bruta[idx]
			}
			linha[colunas[j]] = celula
			if strings.TrimSpace(celula) != "" {
				vazia = false
			}
		}
		if vazia {
			continue
		}
		linhas = append(linhas, linha)
	}

	if len(linhas) == 0 {
		return nil, ErrSemDados
	}
	return &Planilha{Colunas: colunas, Linhas: linhas}, nil
}

var reSheetID = regexp.MustCompile(`/spreadsheets/d/([a-zA-Z0-9-_]+)`)
var reEdit = regexp.MustCompile(`/edit.*$`)

// ReescreverURLPlanilha converte links compartilhados do Google Sheets na URL
// de exportação em XLSX; qualquer outra URL passa intocada.
func ReescreverURLPlanilha(url string) string {
	if !strings.Contains(url, "docs.google.com/spreadsheets") {
		return url
	}
	if m := reSheetID.FindStringSubmatch(url); m != nil {
		id := m[1]
		return fmt.Sprintf("https://docs.google.com/spreadsheets/d/%s/export?format=xlsx&id=%s&gid=0", id, id)
	}
	return reEdit.ReplaceAllString(url, "/export?format=xlsx")
}

// TimeoutDownload limita a espera pela fonte externa da planilha
const TimeoutDownload = 30 * time.Second

// BaixarPlanilha busca os bytes da planilha na URL informada
func BaixarPlanilha(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, ReescreverURLPlanilha(url), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	client := &http.Client{Timeout: TimeoutDownload}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("baixar arquivo da URL: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("baixar arquivo da URL: %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
