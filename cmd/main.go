package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"

	"github.com/ronaldoarch/erp-midas/internal/arquivo"
	"github.com/ronaldoarch/erp-midas/internal/auth"
	"github.com/ronaldoarch/erp-midas/internal/cliente"
	"github.com/ronaldoarch/erp-midas/internal/contrato"
	"github.com/ronaldoarch/erp-midas/internal/fatura"
	"github.com/ronaldoarch/erp-midas/internal/importacao"
	"github.com/ronaldoarch/erp-midas/internal/organizacao"
	"github.com/ronaldoarch/erp-midas/internal/pagamento"
	"github.com/ronaldoarch/erp-midas/internal/painel"
	"github.com/ronaldoarch/erp-midas/internal/tarefa"
	"github.com/ronaldoarch/erp-midas/internal/usuario"
	"github.com/ronaldoarch/erp-midas/internal/utils/db"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Sem arquivo .env, usando variáveis do ambiente")
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	if err := database.AutoMigrate(
		&organizacao.Organizacao{},
		&usuario.Usuario{},
		&cliente.Cliente{},
		&contrato.Contrato{},
		&fatura.Fatura{},
		&pagamento.Pagamento{},
		&tarefa.Tarefa{},
		&arquivo.Arquivo{},
	); err != nil {
		log.Fatal("Erro no AutoMigrate:", err)
	}

	// Storage de arquivos é opcional; sem S3_BUCKET o endpoint responde 503
	storage, err := arquivo.NewStorage(context.Background())
	if err != nil {
		log.Println("Storage de arquivos desabilitado:", err)
		storage = nil
	}

	// Handlers
	usuarioHandler := usuario.NewHandler(database)
	clienteHandler := cliente.NewHandler(database)
	contratoHandler := contrato.NewHandler(database)
	faturaHandler := fatura.NewHandler(database)
	tarefaHandler := tarefa.NewHandler(database)
	arquivoHandler := arquivo.NewHandler(database, storage)
	importacaoHandler := importacao.NewHandler(database)
	painelHandler := painel.NewHandler(database)

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")
	r.HandleFunc("/registrar", usuarioHandler.Registrar).Methods("POST")

	// Rotas autenticadas (cookie de sessão ou Bearer)
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	api.HandleFunc("/me", usuarioHandler.Me).Methods("GET")

	// Clientes
	api.HandleFunc("/clientes", clienteHandler.Listar).Methods("GET")
	api.HandleFunc("/clientes/com-contrato", clienteHandler.CriarComContrato).Methods("POST")
	api.HandleFunc("/clientes/{id}", clienteHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/clientes/{id}", clienteHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/clientes/{id}/contratos/{contratoId}/status", contratoHandler.AlternarStatus).Methods("PATCH")

	// Contratos
	api.HandleFunc("/contratos", contratoHandler.Listar).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.Atualizar).Methods("PUT")

	// Importação de planilhas
	api.HandleFunc("/importacoes/planilha", importacaoHandler.AnalisarPlanilha).Methods("POST")
	api.HandleFunc("/importacoes/clientes", importacaoHandler.ImportarClientes).Methods("POST")

	// Faturas e pagamentos
	api.HandleFunc("/faturas", faturaHandler.Listar).Methods("GET")
	api.HandleFunc("/faturas/gerar-mensal", faturaHandler.GerarMensais).Methods("POST")
	api.HandleFunc("/faturas/{id}/pagamentos", faturaHandler.RegistrarPagamento).Methods("POST")

	// Tarefas
	api.HandleFunc("/tarefas", tarefaHandler.Criar).Methods("POST")
	api.HandleFunc("/tarefas", tarefaHandler.Listar).Methods("GET")
	api.HandleFunc("/tarefas/{id}", tarefaHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/tarefas/{id}/status", tarefaHandler.MoverStatus).Methods("PATCH")
	api.HandleFunc("/tarefas/{id}", tarefaHandler.Deletar).Methods("DELETE")

	// Arquivos
	api.HandleFunc("/arquivos", arquivoHandler.Criar).Methods("POST")
	api.HandleFunc("/arquivos", arquivoHandler.Listar).Methods("GET")
	api.HandleFunc("/arquivos/{id}", arquivoHandler.Deletar).Methods("DELETE")

	// Painel
	api.HandleFunc("/painel/resumo", painelHandler.ObterResumo).Methods("GET")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{os.Getenv("CORS_ORIGIN")},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}

	fmt.Println("Servidor rodando em http://localhost:" + porta)
	log.Fatal(http.ListenAndServe(":"+porta, c.Handler(r)))
}
