//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/SillyFizy/grow/internal/adapter/postgres/testhelper"
	"github.com/SillyFizy/grow/internal/app"
	"github.com/SillyFizy/grow/internal/config"
	"github.com/SillyFizy/grow/internal/domain"
)

const testPassword = "correct-horse-battery"

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x06\x00\x00\x00")

type testServer struct {
	*httptest.Server
	Pool      *pgxpool.Pool
	MediaRoot string
	c         *app.Container
}

// testLogWriter routes log output through t.Log.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:         "test-secret-at-least-32-chars-long!!",
			JWTIssuer:         "grow-test",
			AccessTokenTTL:    15 * time.Minute,
			RefreshTokenTTL:   time.Hour,
			PasswordHashCost:  4,
			PasswordMinLength: 8,
		},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PATCH,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type",
		},
		Blob: config.BlobConfig{
			RootDir:         t.TempDir(),
			TempPrefix:      "temp_submissions",
			PermanentPrefix: "plants",
			MaxUploadBytes:  1 << 20,
			OrphanAge:       time.Hour,
		},
		Catalog: config.CatalogConfig{DefaultPageSize: 20, MaxPageSize: 100},
	}
}

// setupTestServer bootstraps the full application stack backed by a real
// PostgreSQL container. Redis and Kafka stay disabled.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	cfg := testConfig(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	c, err := app.Wire(context.Background(), pool, cfg, logger)
	require.NoError(t, err)

	srv := httptest.NewServer(app.NewHandler(cfg, c, nil, logger))
	t.Cleanup(srv.Close)

	return &testServer{Server: srv, Pool: pool, MediaRoot: cfg.Blob.RootDir, c: c}
}

func restRequest(t *testing.T, ts *testServer, method, path, token string, body any) *http.Response {
	t.Helper()

	var reqBody io.Reader = http.NoBody
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reqBody = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, reqBody)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	return resp
}

// multipartSubmission posts data as the "data" field with an optional
// image file.
func multipartSubmission(t *testing.T, ts *testServer, token string, data any, image []byte) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	raw, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("data", string(raw)))

	if image != nil {
		fw, err := mw.CreateFormFile("image", "flower.png")
		require.NoError(t, err)
		_, err = fw.Write(image)
		require.NoError(t, err)
	}
	require.NoError(t, mw.Close())

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/submissions", &buf)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	defer resp.Body.Close()

	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

// registerUser creates an account through the API and returns its access
// token.
func registerUser(t *testing.T, ts *testServer, username string) string {
	t.Helper()

	resp := restRequest(t, ts, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username":  username,
		"email":     username + "@example.com",
		"password":  testPassword,
		"password2": testPassword,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	body := decode[map[string]any](t, resp)
	return body["access_token"].(string)
}

// registerAdmin registers a user, promotes it to admin and logs in again so
// the token carries the new role.
func registerAdmin(t *testing.T, ts *testServer, username string) string {
	t.Helper()

	registerUser(t, ts, username)
	_, err := ts.c.Auth.GrantAdmin(context.Background(), username+"@example.com")
	require.NoError(t, err)

	resp := restRequest(t, ts, http.MethodPost, "/api/auth/login", "", map[string]string{
		"login":    username,
		"password": testPassword,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	body := decode[map[string]any](t, resp)
	return body["access_token"].(string)
}

func seedFamily(t *testing.T, ts *testServer) domain.PlantFamily {
	t.Helper()
	return testhelper.SeedFamily(t, ts.Pool)
}

// bothSubmission is a BOTH-type submission body for familyID.
func bothSubmission(familyID int64, scientific string) map[string]any {
	return map[string]any{
		"name_arabic":     "نبات",
		"name_english":    "Test plant",
		"name_scientific": scientific,
		"family_id":       familyID,
		"cotyledon_type":  "DI",
		"flower_type":     "BOTH",
		"male_flower": map[string]any{
			"sepal_arrangement": "RANGE",
			"sepal_range_min":   4,
			"sepal_range_max":   6,
			"petal_arrangement": "NONE",
			"stamens":           "5",
		},
		"female_flower": map[string]any{
			"sepal_arrangement": "INDEFINITE",
			"petal_arrangement": "RANGE",
			"petal_range_min":   3,
			"petal_range_max":   3,
			"petals_fused":      true,
			"carpels":           "3",
		},
	}
}
