//go:build integration

package e2e

// e2e_test.go
// End-to-end integration tests using real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./tests/e2e/... -v
//
// These tests:
//   T-E2E-1: Full ledger cycle (catalog → order intake → production → stock snapshot)
//   T-E2E-2: Order intake is all-or-nothing when every line is invalid
//   T-E2E-3: Referential delete guards on clients and products
//   T-E2E-4: Duplicate names rejected with 409
//   T-E2E-5: Load list CSV export

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"

	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/config"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/infra"
	"github.com/Mammachepasta/mamma-che-pasta-gestionale/internal/router"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer) *http.Response {
	t.Helper()
	var req *http.Request
	var err error
	if body != nil {
		req, err = http.NewRequest(method, srv.URL+path, body)
	} else {
		req, err = http.NewRequest(method, srv.URL+path, nil)
	}
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decodeJSON(t *testing.T, resp *http.Response, dest any) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(dest))
}

// assertDec compares decimal strings by value, ignoring trailing zeros
// ("15" vs the "15.00" numeric columns scan back as).
func assertDec(t *testing.T, want, got string) {
	t.Helper()
	w := decimal.RequireFromString(want)
	g := decimal.RequireFromString(got)
	assert.True(t, w.Equal(g), "want %s, got %s", want, got)
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcPostgres.WithDatabase("magazzino_test"),
		tcPostgres.WithUsername("magazzino"),
		tcPostgres.WithPassword("magazzino"),
		testcontainers.WithWaitStrategy(
			tcPostgres.BasicWaitStrategies()...,
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx,
		testcontainers.WithImage("redis:7-alpine"),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Port:           8000,
		Env:            "test",
		DatabaseURL:    pgURL,
		RedisURL:       rdURL,
		WorkerPoolSize: 1,
	}

	db, err := infra.NewDatabase(cfg.DatabaseURL)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	smtpCB := infra.NewCircuitBreaker(infra.DefaultCBConfig())
	r, _ := router.New(cfg, db, rdb, smtpCB)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &testEnv{server: srv}
}

type idResponse struct {
	ID string `json:"id"`
}

func createProduct(t *testing.T, env *testEnv, name, kgPerTray, initial string) string {
	t.Helper()
	resp := do(t, env.server, "POST", "/v1/products", jsonBody(t, map[string]any{
		"name":                name,
		"kg_per_tray":         kgPerTray,
		"initial_stock_trays": initial,
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out idResponse
	decodeJSON(t, resp, &out)
	return out.ID
}

func createClient(t *testing.T, env *testEnv, name string) string {
	t.Helper()
	resp := do(t, env.server, "POST", "/v1/clients", jsonBody(t, map[string]any{"name": name}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	var out idResponse
	decodeJSON(t, resp, &out)
	return out.ID
}

// ── Tests ────────────────────────────────────────────────────────────────────

// T-E2E-1: catalog → order intake → production → stock snapshot
func TestE2E_FullLedgerCycle(t *testing.T) {
	env := setupTestEnv(t)

	productID := createProduct(t, env, "Lasagne alla bolognese", "2,5", "10")
	clientID := createClient(t, env, "Trattoria da Gino")

	// Order with one valid kg line, one valid tray line and one broken line.
	orderResp := do(t, env.server, "POST", "/v1/orders", jsonBody(t, map[string]any{
		"client_id": clientID,
		"date":      "2026-08-20",
		"lines": []map[string]any{
			{"product_id": productID, "quantity": "25", "unit_type": "kg"},
			{"product_id": productID, "quantity": "5", "unit_type": "unit"},
			{"product_id": productID, "quantity": "abc", "unit_type": "unit"},
		},
	}))
	require.Equal(t, http.StatusCreated, orderResp.StatusCode)
	var created struct {
		ID             string `json:"id"`
		LinesAccepted  int    `json:"lines_accepted"`
		LinesDiscarded int    `json:"lines_discarded"`
	}
	decodeJSON(t, orderResp, &created)
	assert.Equal(t, 2, created.LinesAccepted)
	assert.Equal(t, 1, created.LinesDiscarded)

	// Two production entries totalling 20 trays.
	for _, trays := range []string{"12", "8"} {
		prodResp := do(t, env.server, "POST", "/v1/production", jsonBody(t, map[string]any{
			"product_id":     productID,
			"date":           "2026-08-19",
			"trays_produced": trays,
		}))
		require.Equal(t, http.StatusCreated, prodResp.StatusCode)
		prodResp.Body.Close()
	}

	// Snapshot: 10 + 20 − (25/2.5 + 5) = 15 trays → 37.5 kg.
	stockResp := do(t, env.server, "GET", "/v1/stock/"+productID, nil)
	require.Equal(t, http.StatusOK, stockResp.StatusCode)
	var snap struct {
		ProducedTrays string `json:"produced_trays"`
		OrderedTrays  string `json:"ordered_trays"`
		NetTrays      string `json:"net_trays"`
		NetKilograms  string `json:"net_kilograms"`
	}
	decodeJSON(t, stockResp, &snap)
	assertDec(t, "20", snap.ProducedTrays)
	assertDec(t, "15", snap.OrderedTrays)
	assertDec(t, "15", snap.NetTrays)
	assertDec(t, "37.5", snap.NetKilograms)

	// Order detail reports both units and totals.
	detailResp := do(t, env.server, "GET", "/v1/orders/"+created.ID, nil)
	require.Equal(t, http.StatusOK, detailResp.StatusCode)
	var detail struct {
		Lines      []map[string]any `json:"lines"`
		TotalKg    string           `json:"total_kg"`
		TotalTrays string           `json:"total_trays"`
	}
	decodeJSON(t, detailResp, &detail)
	assert.Len(t, detail.Lines, 2)
	assertDec(t, "37.5", detail.TotalKg)
	assertDec(t, "15", detail.TotalTrays)
}

// T-E2E-2: nothing persists when every candidate line is rejected
func TestE2E_OrderIntakeAllOrNothing(t *testing.T) {
	env := setupTestEnv(t)

	productID := createProduct(t, env, "Cannelloni", "1.8", "0")
	clientID := createClient(t, env, "Bella Napoli")

	resp := do(t, env.server, "POST", "/v1/orders", jsonBody(t, map[string]any{
		"client_id": clientID,
		"lines": []map[string]any{
			{"product_id": productID, "quantity": "0", "unit_type": "unit"},
			{"product_id": "not-a-uuid", "quantity": "3", "unit_type": "kg"},
		},
	}))
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	listResp := do(t, env.server, "GET", "/v1/orders", nil)
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var orders []any
	decodeJSON(t, listResp, &orders)
	assert.Empty(t, orders)
}

// T-E2E-3: delete guards
func TestE2E_ReferentialDeleteGuards(t *testing.T) {
	env := setupTestEnv(t)

	productID := createProduct(t, env, "Gnocchi", "2", "0")
	clientID := createClient(t, env, "Trattoria da Gino")

	orderResp := do(t, env.server, "POST", "/v1/orders", jsonBody(t, map[string]any{
		"client_id": clientID,
		"lines": []map[string]any{
			{"product_id": productID, "quantity": "2", "unit_type": "unit"},
		},
	}))
	require.Equal(t, http.StatusCreated, orderResp.StatusCode)
	var created idResponse
	decodeJSON(t, orderResp, &created)

	// Both referenced records refuse deletion.
	resp := do(t, env.server, "DELETE", "/v1/clients/"+clientID, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
	resp = do(t, env.server, "DELETE", "/v1/products/"+productID, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	// Deleting the order cascades to its lines and unblocks both.
	resp = do(t, env.server, "DELETE", "/v1/orders/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	resp = do(t, env.server, "DELETE", "/v1/products/"+productID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
	resp = do(t, env.server, "DELETE", "/v1/clients/"+clientID, nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
}

// T-E2E-4: duplicate names map to 409
func TestE2E_DuplicateNames(t *testing.T) {
	env := setupTestEnv(t)

	createProduct(t, env, "Lasagne", "2.5", "0")
	resp := do(t, env.server, "POST", "/v1/products", jsonBody(t, map[string]any{
		"name":        "Lasagne",
		"kg_per_tray": "3",
	}))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()

	createClient(t, env, "Trattoria da Gino")
	resp = do(t, env.server, "POST", "/v1/clients", jsonBody(t, map[string]any{
		"name": "Trattoria da Gino",
	}))
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

// T-E2E-5: load list CSV export
func TestE2E_LoadListCSV(t *testing.T) {
	env := setupTestEnv(t)

	productID := createProduct(t, env, "Lasagne", "2.5", "10")
	clientID := createClient(t, env, "Trattoria da Gino")

	resp := do(t, env.server, "POST", "/v1/orders", jsonBody(t, map[string]any{
		"client_id": clientID,
		"date":      "2026-08-20",
		"lines": []map[string]any{
			{"product_id": productID, "quantity": "5", "unit_type": "kg"},
		},
	}))
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	csvResp := do(t, env.server, "GET", "/v1/export/load-list?date=2026-08-20", nil)
	require.Equal(t, http.StatusOK, csvResp.StatusCode)
	defer csvResp.Body.Close()

	assert.Contains(t, csvResp.Header.Get("Content-Disposition"), "lista_carico_2026-08-20.csv")
	body, err := io.ReadAll(csvResp.Body)
	require.NoError(t, err)
	text := string(body)
	assert.True(t, strings.HasPrefix(text, "\xEF\xBB\xBF"))
	assert.Contains(t, text, "Data;Cliente;Cod. Cliente;Prodotto;Cod. Prod.;Vaschette;Kg")
	assert.Contains(t, text, "Trattoria da Gino")
}
