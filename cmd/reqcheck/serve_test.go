package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/reqcheck/pkg/logger"
	"github.com/dmitrymomot/reqcheck/pkg/metrics"
	"github.com/dmitrymomot/reqcheck/pkg/requestid"
)

func testConfig() appConfig {
	return appConfig{
		DefaultLocale:    "en",
		SupportedLocales: []string{"en", "de"},
		MaxBodyBytes:     1 << 20,
		Metrics:          metrics.Config{Enabled: true, Namespace: "reqcheck"},
	}
}

func TestRouter(t *testing.T) {
	t.Parallel()

	cfg := testConfig()
	tr, err := newTranslator(context.Background(), cfg, logger.Nop())
	require.NoError(t, err)

	router, m := newRouter(cfg, tr, logger.Nop())
	require.NotNil(t, m)

	send := func(method, path, body, lang string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		if lang != "" {
			req.Header.Set("Accept-Language", lang)
		}
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec
	}

	t.Run("german report", func(t *testing.T) {
		rec := send(http.MethodPost, "/v1/projects", `{"name":"ab","options":{"fields":[""]}}`, "de")
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.NotEmpty(t, rec.Header().Get(requestid.Header))
		assert.JSONEq(t, `{
			"error":"validation_failed",
			"details":{"byKey":{
				"name":["ist kürzer als die minimale Länge von 3 Zeichen"],
				"options.fields[0]":["darf nicht leer sein"]
			}}
		}`, rec.Body.String())
	})

	t.Run("default locale", func(t *testing.T) {
		rec := send(http.MethodPost, "/v1/projects", `{"options":null}`, "")
		require.Equal(t, http.StatusUnprocessableEntity, rec.Code)
		assert.Contains(t, rec.Body.String(), `"must not be null"`)
	})

	t.Run("created", func(t *testing.T) {
		rec := send(http.MethodPost, "/v1/projects", `{"name":"reqcheck","options":{"priority":1}}`, "")
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("probes and metrics", func(t *testing.T) {
		assert.Equal(t, "ALIVE", send(http.MethodGet, "/healthz", "", "").Body.String())
		assert.Equal(t, "READY", send(http.MethodGet, "/readyz", "", "").Body.String())

		rec := send(http.MethodGet, "/metrics", "", "")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "reqcheck_validation_passes_total")
	})
}
