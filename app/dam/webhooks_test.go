package dam

import (
	"context"
	"net/http"
	"testing"

	"github.com/cappuccinotm/damlink/app/errs"
	"github.com/cappuccinotm/damlink/app/store"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_ListWebhooks(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		router := mux.NewRouter()
		router.HandleFunc("/api/webhooks", func(w http.ResponseWriter, r *http.Request) {
			_, err := w.Write([]byte(`{"results": [
				{"name": "planhook", "uuid": "uuid-plan", "service": "atlassian-plan",
					"config": {"url": "https://plan.example.com"}},
				{"name": "jirahook", "uuid": "uuid-jira", "service": "jira",
					"config": {"url": "https://jira.example.com"}}
			]}`))
			require.NoError(t, err)
		})

		svc := prepareClientTestEnv(t, router)
		registry, err := svc.ListWebhooks(context.Background())
		require.NoError(t, err)
		require.Equal(t, 2, registry.Len())

		var scanned []store.Endpoint
		registry.Scan(func(e store.Endpoint) { scanned = append(scanned, e) })
		assert.Equal(t, []store.Endpoint{
			{Name: "planhook", UUID: "uuid-plan", Service: "atlassian-plan", URL: "https://plan.example.com"},
			{Name: "jirahook", UUID: "uuid-jira", Service: "jira", URL: "https://jira.example.com"},
		}, scanned)
	})

	t.Run("malformed entries are skipped", func(t *testing.T) {
		router := mux.NewRouter()
		router.HandleFunc("/api/webhooks", func(w http.ResponseWriter, r *http.Request) {
			_, err := w.Write([]byte(`{"results": [
				{"name": "no-url", "uuid": "u1", "service": "jira", "config": {}},
				{"uuid": "u2", "service": "jira", "config": {"url": "https://a.example.com"}},
				{"name": "ok", "uuid": "u3", "service": "jira", "config": {"url": "https://b.example.com"}}
			]}`))
			require.NoError(t, err)
		})

		svc := prepareClientTestEnv(t, router)
		registry, err := svc.ListWebhooks(context.Background())
		require.NoError(t, err)
		require.Equal(t, 1, registry.Len())

		registry.Scan(func(e store.Endpoint) { assert.Equal(t, "ok", e.Name) })
	})

	t.Run("unexpected status", func(t *testing.T) {
		router := mux.NewRouter()
		router.HandleFunc("/api/webhooks", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
			_, err := w.Write([]byte(`{"message": "bad account key"}`))
			require.NoError(t, err)
		})

		svc := prepareClientTestEnv(t, router)
		registry, err := svc.ListWebhooks(context.Background())

		var eAPI errs.ErrDAMAPI
		require.ErrorAs(t, err, &eAPI)
		assert.Equal(t, http.StatusForbidden, eAPI.ResponseStatus)
		assert.Equal(t, "bad account key", eAPI.Message)
		assert.Equal(t, 0, registry.Len())
	})

	t.Run("non-json response", func(t *testing.T) {
		router := mux.NewRouter()
		router.HandleFunc("/api/webhooks", func(w http.ResponseWriter, r *http.Request) {
			_, err := w.Write([]byte(`<html>definitely not json</html>`))
			require.NoError(t, err)
		})

		svc := prepareClientTestEnv(t, router)
		registry, err := svc.ListWebhooks(context.Background())
		assert.Error(t, err)
		assert.Equal(t, 0, registry.Len())
	})

	t.Run("empty results", func(t *testing.T) {
		router := mux.NewRouter()
		router.HandleFunc("/api/webhooks", func(w http.ResponseWriter, r *http.Request) {
			_, err := w.Write([]byte(`{"results": []}`))
			require.NoError(t, err)
		})

		svc := prepareClientTestEnv(t, router)
		registry, err := svc.ListWebhooks(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, registry.Len())
	})
}
