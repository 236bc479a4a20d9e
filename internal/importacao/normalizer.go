package importacao

import (
	"strings"
	"time"
)

// RegistroImportacao é a linha normalizada, mantida em memória para o usuário
// revisar e editar antes de confirmar a importação. As tags json seguem os
// nomes que a tela de revisão usa.
type RegistroImportacao struct {
	Nome                   string  `json:"name"`
	Valor                  float64 `json:"value"`
	ResponsavelFuncionario string  `json:"responsible_employee"`
	QtdFuncionarios        int     `json:"employees_count"`
	DiaVencimento          int     `json:"dueDay"`
	AnoVencimento          int     `json:"dueYear"`
	Nicho                  string  `json:"niche"`
}

// NormalizarLinhas converte as linhas brutas em registros de importação usando
// o mapeamento de colunas. Linha cujo nome mapeado, depois do trim, é vazio ou
// o texto literal "undefined" é descartada (não conta como erro); sem coluna de
// nome mapeada, todas as linhas passam. Dia e ano de vencimento não vêm da
// planilha: ficam em 1 e no ano corrente para o usuário ajustar na revisão.
func NormalizarLinhas(linhas []map[string]string, m Mapeamento, agora time.Time) []RegistroImportacao {
	registros := make([]RegistroImportacao, 0, len(linhas))

	for _, linha := range linhas {
		var nome string
		if m.Nome != "" {
			nome = strings.TrimSpace(linha[m.Nome])
			if nome == "" || nome == "undefined" {
				continue
			}
		}

		var valor float64
		if m.Valor != "" {
			valor = ParseValor(linha[m.Valor])
		}

		var responsavel string
		if m.Responsavel != "" {
			responsavel = strings.TrimSpace(linha[m.Responsavel])
		}

		var funcionarios int
		if m.Funcionarios != "" {
			funcionarios = ParseInteiro(linha[m.Funcionarios])
		}

		nicho := NichoPadrao
		if m.Nicho != "" && linha[m.Nicho] != "" {
			nicho = linha[m.Nicho]
		}

		registros = append(registros, RegistroImportacao{
			Nome:                   nome,
			Valor:                  valor,
			ResponsavelFuncionario: responsavel,
			QtdFuncionarios:        funcionarios,
			DiaVencimento:          1,
			AnoVencimento:          agora.Year(),
			Nicho:                  nicho,
		})
	}

	return registros
}
