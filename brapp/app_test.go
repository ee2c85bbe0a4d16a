package brapp_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"testing"
	"time"

	"github.com/advdv/brender"
	"github.com/advdv/brender/brapp"
	"github.com/advdv/brender/brapp/brapptest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx"
)

func TestApp_Pages(t *testing.T) {
	brapptest.SetBaseEnv(t, 18091).ServiceName("test-service").ReadinessCheckPath("/ready")
	t.Setenv("GREETING", "brender")

	app := brapptest.New[TestEnv](t,
		func(m *brapp.Mux, h *Handlers) {
			m.HandleFunc("GET /{$}", h.Home)
			m.HandleFunc("GET /broken", h.Broken)
			m.HandleFunc("GET /context", h.Context)
		},
		brapp.WithFx(fx.Provide(NewHandlers)),
	)

	app.RequireStart()
	t.Cleanup(app.RequireStop)

	baseURL := "http://localhost:18091"
	client := &http.Client{Timeout: 5 * time.Second}
	ctx := context.Background()

	require.Eventually(t, func() bool {
		resp, err := doGet(ctx, client, baseURL+"/ready")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusOK
	}, 5*time.Second, 50*time.Millisecond)

	t.Run("home renders html", func(t *testing.T) {
		resp, err := doGet(ctx, client, baseURL+"/")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, brender.ContentTypeHTML, resp.Header.Get("Content-Type"))
		assert.Contains(t, string(body), "<h1>Hello, brender!</h1>")
	})

	t.Run("failed render halts with 500", func(t *testing.T) {
		resp, err := doGet(ctx, client, baseURL+"/broken")
		require.NoError(t, err)
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)

		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, brender.ContentTypeHTML, resp.Header.Get("Content-Type"))
		assert.Empty(t, resp.Header.Get("X-Unreachable"))
		assert.NotContains(t, string(body), "half")
	})

	t.Run("context features", func(t *testing.T) {
		resp, err := doGet(ctx, client, baseURL+"/context")
		require.NoError(t, err)
		defer resp.Body.Close()

		var result map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&result))

		assert.Equal(t, "test-service", result["service_name"])
		assert.Equal(t, true, result["span_valid"])
	})
}

func TestApp_CustomHealthHandler(t *testing.T) {
	brapptest.SetBaseEnv(t, 18092)

	app := brapptest.New[TestEnv](t,
		func(*brapp.Mux) {},
		brapp.WithHealthHandler(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		}),
	)

	app.RequireStart()
	t.Cleanup(app.RequireStop)

	client := &http.Client{Timeout: 5 * time.Second}

	require.Eventually(t, func() bool {
		resp, err := doGet(context.Background(), client, "http://localhost:18092/health")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		return resp.StatusCode == http.StatusTeapot
	}, 5*time.Second, 50*time.Millisecond)
}

func TestApp_BufferLimit(t *testing.T) {
	brapptest.SetBaseEnv(t, 18093).BufferLimit(8)

	app := brapptest.New[TestEnv](t,
		func(m *brapp.Mux) {
			m.HandleFunc("GET /{$}", func(_ context.Context, w brender.ResponseWriter, _ *http.Request) error {
				_, err := io.WriteString(w, "more than eight bytes")
				return err
			})
		},
	)

	app.RequireStart()
	t.Cleanup(app.RequireStop)

	client := &http.Client{Timeout: 5 * time.Second}

	var status int
	require.Eventually(t, func() bool {
		resp, err := doGet(context.Background(), client, "http://localhost:18093/")
		if err != nil {
			return false
		}
		defer resp.Body.Close()
		status = resp.StatusCode
		return true
	}, 5*time.Second, 50*time.Millisecond)

	assert.Equal(t, http.StatusInternalServerError, status)
}

func TestApp_InvalidEnv(t *testing.T) {
	brapptest.SetBaseEnv(t, 18094).OtelExporter("jaeger")

	app := fx.New(brapp.FxOptions[TestEnv](func(*brapp.Mux) {})...)
	require.ErrorContains(t, app.Err(), `unsupported BR_OTEL_EXPORTER: "jaeger"`)
}

func TestCallHandler(t *testing.T) {
	rec := brapptest.CallHandler(func(_ context.Context, w brender.ResponseWriter, _ *http.Request) error {
		_, err := brender.RenderHTML(w, func(w io.Writer) error {
			_, err := io.WriteString(w, "<p>ok</p>")
			return err
		})
		return err
	}, mustRequest(t, "/"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "<p>ok</p>", rec.Body.String())
}

func mustRequest(t *testing.T, target string) *http.Request {
	t.Helper()
	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, "http://localhost"+target, nil)
	require.NoError(t, err)
	return req
}
