package httpclient

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendRequest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "Bearer t", r.Header.Get("Authorization"))
		assert.Equal(t, `{"a":1}`, string(body))
		w.WriteHeader(http.StatusAccepted)
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	status, body, err := SendRequest(context.Background(), HttpRequest{
		URL:     srv.URL,
		Method:  http.MethodPut,
		Body:    []byte(`{"a":1}`),
		Headers: map[string]string{"Authorization": "Bearer t"},
	})
	require.NoError(t, err)
	assert.Equal(t, http.StatusAccepted, status)
	assert.Equal(t, "ok", string(body))
}

func TestSendRequestCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, _, err := SendRequest(ctx, HttpRequest{URL: "http://127.0.0.1:1", Method: http.MethodGet})
	assert.Error(t, err)
}
