package importacao

import (
	"strconv"
	"strings"
	"unicode"
)

// NichoPadrao é a tag aplicada quando a planilha não traz nicho
const NichoPadrao = "cassino"

// ParseValor extrai o número de células como "R$ 9.000,00" (9000) ou
// "1.234,56" (1234.56). Assume formatação brasileira: ponto é separador de
// milhar e é descartado, vírgula vira ponto decimal. Célula vazia ou
// imprestável vale 0.
func ParseValor(s string) float64 {
	limpo := strings.Map(func(r rune) rune {
		if r == 'R' || r == '$' || r == '.' || unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	limpo = strings.ReplaceAll(limpo, ",", ".")
	if limpo == "" {
		return 0
	}

	v, err := strconv.ParseFloat(limpo, 64)
	if err != nil {
		return 0
	}
	return v
}

// ParseInteiro tenta ler um inteiro não-negativo (quantidade de funcionários)
func ParseInteiro(s string) int {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return int(v)
}
