// Package config reads the service settings from environment variables. A
// .env file in the working directory is loaded first, when present.
package config

import (
	"os"
	"strconv"

	_ "github.com/joho/godotenv/autoload"
)

const (
	BackendMemory   = "memory"
	BackendDynamoDB = "dynamodb"
)

type Tabelas struct {
	Quartos   string
	Hospedes  string
	Reservas  string
	Unicidade string
}

type Config struct {
	Port           string
	StorageBackend string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	Tabelas            Tabelas
	// CriarTabelas creates missing DynamoDB tables at startup (local development).
	CriarTabelas bool

	// RabbitMQURL empty disables event publishing.
	RabbitMQURL      string
	RabbitMQExchange string
}

func Load() Config {
	return Config{
		Port:           getenvDefault("PORT", "8080"),
		StorageBackend: getenvDefault("STORAGE_BACKEND", BackendMemory),

		AWSRegion:          getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),
		Tabelas: Tabelas{
			Quartos:   getenvDefault("QUARTOS_TABLE", "quartos"),
			Hospedes:  getenvDefault("HOSPEDES_TABLE", "hospedes"),
			Reservas:  getenvDefault("RESERVAS_TABLE", "reservas"),
			Unicidade: getenvDefault("UNICIDADE_TABLE", "unicidade"),
		},
		CriarTabelas: getenvBool("DYNAMODB_CREATE_TABLES", false),

		RabbitMQURL:      os.Getenv("RABBITMQ_URL"),
		RabbitMQExchange: getenvDefault("RABBITMQ_EXCHANGE", "hotel.reservas"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}
