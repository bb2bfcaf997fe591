package iotesting

import (
	"context"
	"fmt"
	"strconv"
	"sync"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"github.com/weaponstats/wsdb/internal/iodb"
	"github.com/weaponstats/wsdb/pkg/config"
	"github.com/weaponstats/wsdb/pkg/db"
	"github.com/weaponstats/wsdb/pkg/schema"
)

const (
	// PostgresImage is the image used for integration tests.
	PostgresImage = "postgres:16-alpine"

	// TestDatabaseName is the database name used for all integration tests.
	TestDatabaseName = "wsdb_test"

	testUser     = "wsdb"
	testPassword = "test_password"
)

type postgresContainer struct {
	container testcontainers.Container
	host      string
	port      int
}

var (
	sharedPostgres     *postgresContainer
	sharedPostgresOnce sync.Once
	sharedPostgresErr  error
)

// PostgresConfig returns a configuration for a PostgreSQL container
// shared by all tests of the package. Tests are skipped in short mode
// and when Docker is not available.
func PostgresConfig(t *testing.T) *config.Config {
	t.Helper()

	if testing.Short() {
		t.Skip("Skipping integration test in short mode (requires Docker)")
	}

	sharedPostgresOnce.Do(func() {
		sharedPostgres, sharedPostgresErr = startPostgres()
	})
	if sharedPostgresErr != nil {
		t.Skipf("PostgreSQL container is not available: %v", sharedPostgresErr)
	}

	cfg := config.New()
	cfg.Update([]config.Option{
		config.OptHomeDir(t.TempDir()),
		config.OptDatabaseDriver(config.DriverPostgres),
		config.OptDatabaseHost(sharedPostgres.host),
		config.OptDatabasePort(sharedPostgres.port),
		config.OptDatabaseUser(testUser),
		config.OptDatabasePassword(testPassword),
		config.OptDatabaseDatabase(TestDatabaseName),
		config.OptDatabaseSSLMode("disable"),
		config.OptWithProgress(false),
		config.OptJobsNumber(2),
	})
	return cfg
}

// PostgresOperator returns a connected operator to the shared container
// after dropping all WSdb tables and sequences, so every test starts from
// an empty database.
func PostgresOperator(t *testing.T) (db.Operator, *config.Config) {
	t.Helper()

	cfg := PostgresConfig(t)
	ctx := context.Background()
	op, err := iodb.Open(ctx, &cfg.Database)
	if err != nil {
		t.Fatalf("Failed to connect to PostgreSQL: %v", err)
	}
	t.Cleanup(func() { op.Close() })

	names := schema.TableNames()
	for i := len(names) - 1; i >= 0; i-- {
		q := fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", names[i])
		if _, err = op.Exec(ctx, q); err != nil {
			t.Fatalf("Failed to drop %s: %v", names[i], err)
		}
	}
	for _, v := range schema.Sequences() {
		q := fmt.Sprintf("DROP SEQUENCE IF EXISTS %s CASCADE", v)
		if _, err = op.Exec(ctx, q); err != nil {
			t.Fatalf("Failed to drop %s: %v", v, err)
		}
	}
	return op, cfg
}

func startPostgres() (*postgresContainer, error) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        PostgresImage,
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_DB":       TestDatabaseName,
			"POSTGRES_USER":     testUser,
			"POSTGRES_PASSWORD": testPassword,
		},
		// The server restarts once after the init scripts.
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to start test container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}
	portNum, err := strconv.Atoi(port.Port())
	if err != nil {
		return nil, fmt.Errorf("failed to parse container port: %w", err)
	}

	return &postgresContainer{
		container: container,
		host:      host,
		port:      portNum,
	}, nil
}
