package httpx

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRefdataList(t *testing.T) {
	f := newAPIFixture(t, nil)

	rec := f.do(t, http.MethodGet, "/api/refdata/product/", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	rows := decodeBody[[]map[string]any](t, rec)
	require.Len(t, rows, 1)
	assert.Equal(t, "firefox", rows[0]["name"])
}

func TestRefdataUnknownModel(t *testing.T) {
	f := newAPIFixture(t, nil)

	rec := f.do(t, http.MethodGet, "/api/refdata/kitchen_sink/", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHealthz(t *testing.T) {
	f := newAPIFixture(t, nil)

	rec := f.do(t, http.MethodGet, "/healthz", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}
