package ocr

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sablemoor/RitualBot_Go/internal/domain"
)

func TestProcessImage_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/ocr", r.URL.Path)
		require.NoError(t, r.ParseForm())
		assert.Contains(t, r.Form.Get("image"), "base64,")

		json.NewEncoder(w).Encode(Transcript{
			Text: "Gold Chain x2",
			Words: []Word{
				{Text: "Gold", BBox: BBox{X0: 0, Y0: 0, X1: 40, Y1: 12}},
				{Text: "Chain", BBox: BBox{X0: 44, Y0: 0, X1: 90, Y1: 12}},
				{Text: "x2", BBox: BBox{X0: 94, Y0: 0, X1: 110, Y1: 12}},
			},
		})
	}))
	defer srv.Close()

	transcript, err := NewClient(srv.URL).ProcessImage(context.Background(), "aGVsbG8=")
	require.NoError(t, err)
	assert.Equal(t, "Gold Chain x2", transcript.Text)
	assert.Len(t, transcript.Words, 3)
}

func TestProcessImage_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": "Failed to process image"})
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).ProcessImage(context.Background(), "aGVsbG8=")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
	assert.Contains(t, err.Error(), "Failed to process image")
}

func TestProcessImage_Unreachable(t *testing.T) {
	_, err := NewClient("http://127.0.0.1:1").ProcessImage(context.Background(), "aGVsbG8=")
	assert.ErrorIs(t, err, domain.ErrOCRUnavailable)
}

func TestHealth(t *testing.T) {
	initialized := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/health", r.URL.Path)
		json.NewEncoder(w).Encode(HealthStatus{Status: "ok", OCRInitialized: initialized})
	}))
	defer srv.Close()

	client := NewClient(srv.URL)
	assert.NoError(t, client.Health(context.Background()))

	initialized = false
	err := client.Health(context.Background())
	assert.ErrorIs(t, err, domain.ErrOCRUnavailable)
}
