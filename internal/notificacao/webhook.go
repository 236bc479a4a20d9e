package notificacao

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"os"
)

// EnviarAlertaClienteDuplicado avisa o webhook configurado que um cliente com
// nome fantasia já existente foi cadastrado (reimportar uma planilha duplica
// linhas; o alerta é o único rastro disso). Sem WEBHOOK_ALERTA_URL, não faz nada.
func EnviarAlertaClienteDuplicado(nomeFantasia string, orgID uint) {
	url := os.Getenv("WEBHOOK_ALERTA_URL")
	if url == "" {
		return
	}

	payload := map[string]interface{}{
		"mensagem":     "Alerta: cliente criado com nome fantasia já existente",
		"nomeFantasia": nomeFantasia,
		"orgId":        orgID,
	}
	body, _ := json.Marshal(payload)

	resp, err := http.Post(url, "application/json", bytes.NewBuffer(body))
	if err != nil {
		log.Printf("Erro ao enviar webhook: %v", err)
		return
	}
	defer resp.Body.Close()
}
