package contrato

import "time"

// CalcularPeriodo devolve as datas de início e fim do primeiro ciclo de
// cobrança. O início é sempre "agora". O fim é o dia de vencimento no mês
// corrente; se essa data já passou (ou é agora), rola para o mesmo dia do mês
// seguinte, com a virada de dezembro para janeiro tratada pela normalização
// de time.Date.
//
// O anoVencimento só entra na montagem da data candidata: um ano diferente do
// corrente continua ancorado no mês atual. Comportamento herdado do fluxo de
// cadastro original e mantido de propósito; ver DESIGN.md antes de mexer.
func CalcularPeriodo(diaVencimento, anoVencimento int, agora time.Time) (inicio, fim time.Time) {
	dia := diaVencimento
	if dia < 1 {
		dia = 1
	}
	if dia > 31 {
		dia = 31
	}

	inicio = agora
	fim = time.Date(anoVencimento, agora.Month(), dia, 0, 0, 0, 0, agora.Location())
	if !fim.After(agora) {
		fim = time.Date(anoVencimento, agora.Month()+1, dia, 0, 0, 0, 0, agora.Location())
	}
	return inicio, fim
}
