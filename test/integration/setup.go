//go:build integration
// +build integration

package integration

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bagdasarian/bizdesk/internal/auth"
	"github.com/bagdasarian/bizdesk/internal/checkout"
	"github.com/bagdasarian/bizdesk/internal/db"
	"github.com/bagdasarian/bizdesk/internal/handler"
	"github.com/bagdasarian/bizdesk/internal/handler/server"
	"github.com/bagdasarian/bizdesk/internal/repository/postgres"
	"github.com/bagdasarian/bizdesk/internal/service"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap"
)

const (
	testJWTSecret    = "integration-secret"
	testDefaultOwner = "default-user"
)

func setupTestDB(t *testing.T) *sql.DB {
	ctx := context.Background()

	// Создаём контейнер Postgres через testcontainers
	postgresContainer, err := tcpostgres.Run(ctx,
		"postgres:17.7",
		tcpostgres.WithDatabase("test_db"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	require.NoError(t, err)

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	database, err := sql.Open("pgx", connStr)
	require.NoError(t, err)
	require.NoError(t, database.Ping())

	// Накатываем встроенные миграции тем же кодом, что и команда migrate
	_, _, err = db.Migrate(ctx, database)
	require.NoError(t, err)

	t.Cleanup(func() {
		database.Close()
		require.NoError(t, postgresContainer.Terminate(ctx))
	})

	return database
}

// setupAPI поднимает полный HTTP стек поверх тестовой БД.
// stripeURL адрес поддельного провайдера, может быть пустым.
func setupAPI(t *testing.T, database *sql.DB, stripeURL string) (*httptest.Server, *auth.TokenIssuer) {
	logger := zap.NewNop()

	clientRepo := postgres.NewClientRepository(database)
	projectRepo := postgres.NewProjectRepository(database)
	teamMemberRepo := postgres.NewTeamMemberRepository(database)
	paymentRepo := postgres.NewPaymentRepository(database)

	if stripeURL == "" {
		stripeURL = "http://127.0.0.1:1"
	}
	stripe := checkout.NewStripeClient(stripeURL, "sk_test", 5*time.Second, logger)
	tokens := auth.NewTokenIssuer(testJWTSecret, time.Hour)

	h := handler.NewHandler(handler.Services{
		Clients:     service.NewClientService(clientRepo),
		Projects:    service.NewProjectService(projectRepo, clientRepo),
		TeamMembers: service.NewTeamMemberService(teamMemberRepo),
		Payments:    service.NewPaymentService(paymentRepo, clientRepo, teamMemberRepo, projectRepo, stripe, logger),
		Users: service.NewUserService(postgres.NewUserRepository(database), tokens, service.UserDefaults{
			OwnerID: testDefaultOwner,
			Email:   "owner@example.com",
			Name:    "Business Owner",
		}),
		Integrations: service.NewIntegrationService(postgres.NewIntegrationRepository(database)),
		Calendar:     service.NewCalendarService(time.Now),
		Dashboard:    service.NewDashboardService(postgres.NewStatsRepository(database), paymentRepo),
	}, logger)

	router := server.NewRouter(h,
		handler.Recover(logger),
		handler.CORS,
		handler.Owner(tokens, testDefaultOwner),
	)

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv, tokens
}

func newRequest(t *testing.T, method, url string, body []byte) *http.Request {
	var req *http.Request
	var err error
	if body == nil {
		req, err = http.NewRequest(method, url, nil)
	} else {
		req, err = http.NewRequest(method, url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	require.NoError(t, err)
	return req
}

// doJSON выполняет запрос и декодирует ответ в out, если out не nil
func doJSON(t *testing.T, req *http.Request, out any) int {
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func mustJSON(t *testing.T, v any) []byte {
	data, err := json.Marshal(v)
	require.NoError(t, err)
	return data
}
