package importacao

import "strings"

// Mapeamento liga cada campo lógico ao cabeçalho da planilha de origem que o
// alimenta. Campo sem correspondência fica vazio e a normalização usa o padrão.
type Mapeamento struct {
	Nome         string `json:"name,omitempty"`
	Valor        string `json:"value,omitempty"`
	Responsavel  string `json:"responsible_employee,omitempty"`
	Funcionarios string `json:"employees_count,omitempty"`
	Nicho        string `json:"niche,omitempty"`
}

// MapearColunas adivinha qual coluna alimenta cada campo, varrendo os
// cabeçalhos na ordem da planilha; o primeiro que casar leva e os demais são
// ignorados. É heurística, não garantia: planilha ambígua pode mapear errado,
// por isso o mapeamento volta para o usuário confirmar antes de importar.
func MapearColunas(colunas []string) Mapeamento {
	var m Mapeamento

	for _, col := range colunas {
		lower := strings.ToLower(strings.TrimSpace(col))

		// Nome: correspondências mais específicas primeiro
		if m.Nome == "" {
			switch {
			case strings.Contains(lower, "clientes ativos"):
				m.Nome = col
			case lower == "cliente" && !strings.Contains(lower, "valor"):
				m.Nome = col
			case lower == "nome" || lower == "name":
				m.Nome = col
			}
		}

		if m.Valor == "" {
			switch {
			case lower == "valor":
				m.Valor = col
			case strings.Contains(lower, "valor"):
				m.Valor = col
			case lower == "mrr" || lower == "value":
				m.Valor = col
			}
		}

		if m.Responsavel == "" {
			if strings.Contains(lower, "responsavel") || strings.Contains(lower, "responsável") {
				m.Responsavel = col
			}
		}

		if m.Funcionarios == "" {
			if strings.Contains(lower, "funcionários") || strings.Contains(lower, "employees") {
				m.Funcionarios = col
			}
		}

		if m.Nicho == "" {
			if strings.Contains(lower, "nicho") {
				m.Nicho = col
			}
		}
	}

	return m
}
