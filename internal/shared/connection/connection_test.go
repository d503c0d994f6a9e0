package connection_test

import (
	"testing"

	"go-pms/internal/shared/connection"

	"github.com/stretchr/testify/assert"
)

func TestPostgresConfigDSN(t *testing.T) {
	cfg := connection.PostgresConfig{
		Host:     "localhost",
		User:     "pms",
		Password: "secret",
		Name:     "pms_db",
		Port:     "5432",
		SSLMode:  "disable",
	}

	assert.Equal(t,
		"host=localhost user=pms password=secret dbname=pms_db port=5432 sslmode=disable",
		cfg.DSN(),
	)
}
