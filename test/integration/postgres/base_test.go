package postgres

import (
	"context"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/RealZimboGuy/wkfport/internal/config"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

var portBase int32 = 9098 // starting port number (can be anything safe)

func nextPort() int {
	return int(atomic.AddInt32(&portBase, 1))
}

func runTestWithSetup(t *testing.T, testFunc func(t *testing.T, port int)) {
	port := nextPort()
	t.Setenv("HTTP_ADDR", ":"+strconv.Itoa(port))
	container, dsn := SetupPostgresTestInstance(t.Context(), t)
	defer container.Terminate(context.Background())
	t.Setenv(config.DATABASE_TYPE, config.DATABASE_TYPE_POSTGRES)
	t.Setenv(config.DATABASE_URL, dsn)
	testFunc(t, port)
}

func SetupPostgresTestInstance(ctx context.Context, t *testing.T) (testcontainers.Container, string) {
	req := testcontainers.ContainerRequest{
		Image:        "postgres:16-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_PASSWORD": "test",
			"POSTGRES_USER":     "test",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
	}
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		t.Skipf("postgres container unavailable: %v", err)
	}

	host, _ := container.Host(ctx)
	port, _ := container.MappedPort(ctx, "5432")

	dsn := "postgres://test:test@" + host + ":" + port.Port() + "/testdb?sslmode=disable"
	return container, dsn
}
