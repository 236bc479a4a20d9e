package importacao

import "testing"

func TestParseValor(t *testing.T) {
	casos := []struct {
		entrada string
		quer    float64
	}{
		{"R$ 9.000,00", 9000},
		{"1.234,56", 1234.56},
		{"R$ 1.234.567,89", 1234567.89},
		{"950", 950},
		{"1.000", 1000}, // ponto é milhar, não decimal
		{"42,5", 42.5},
		{"-50", -50}, // negativo passa; a validação é do orquestrador
		{"", 0},
		{"undefined", 0},
		{"sem valor", 0},
		{"R$", 0},
	}

	for _, c := range casos {
		t.Run(c.entrada, func(t *testing.T) {
			if got := ParseValor(c.entrada); got != c.quer {
				t.Fatalf("ParseValor(%q) = %v, esperado %v", c.entrada, got, c.quer)
			}
		})
	}
}

func TestParseInteiro(t *testing.T) {
	casos := []struct {
		entrada string
		quer    int
	}{
		{"12", 12},
		{" 8 ", 8},
		{"3.7", 3},
		{"", 0},
		{"muitos", 0},
	}

	for _, c := range casos {
		if got := ParseInteiro(c.entrada); got != c.quer {
			t.Errorf("ParseInteiro(%q) = %d, esperado %d", c.entrada, got, c.quer)
		}
	}
}
