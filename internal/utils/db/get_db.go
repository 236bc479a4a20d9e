package db

import (
	"os"
	"strconv"

	"gorm.io/gorm"
)

// GetDB monta a conexão a partir das variáveis de ambiente
func GetDB() (*gorm.DB, error) {
	host := os.Getenv("DB_HOST")
	if host == "" {
		host = "localhost"
	}

	port, err := strconv.ParseUint(os.Getenv("DB_PORT"), 10, 32)
	if err != nil {
		port = 5432 // porta padrão do PostgreSQL
	}

	name := os.Getenv("DB_NAME")
	if name == "" {
		name = "erpmidas"
	}

	secretID := os.Getenv("DB_SECRET_ID")
	return ConnectDataBase(uint(port), host, name, secretID)
}
