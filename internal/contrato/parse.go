package contrato

import (
	"fmt"
	"time"
)

// parseData aceita RFC3339 ou somente a data (formato dos formulários)
func parseData(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Time{}, fmt.Errorf("data inválida: %q", s)
}
