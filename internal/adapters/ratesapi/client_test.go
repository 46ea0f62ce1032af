package ratesapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_FetchLatest_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/INR", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"result":"success","base_code":"INR","rates":{"INR":1,"USD":0.0119,"EUR":0.0109}}`))
	}))
	defer server.Close()

	client := NewClient(server.URL+"/", time.Second)
	rates, err := client.FetchLatest(context.Background(), "INR")

	require.NoError(t, err)
	assert.InDelta(t, 0.0119, rates["USD"], 1e-9)
	assert.InDelta(t, 0.0109, rates["EUR"], 1e-9)
	assert.Len(t, rates, 3)
}

func TestClient_FetchLatest_Errors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{name: "server error", status: http.StatusInternalServerError, body: `oops`},
		{name: "malformed json", status: http.StatusOK, body: `{"rates":`},
		{name: "provider failure", status: http.StatusOK, body: `{"result":"error","rates":{}}`},
		{name: "no rates", status: http.StatusOK, body: `{"result":"success"}`, wantErr: ErrEmptyRates},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			rates, err := NewClient(server.URL, time.Second).FetchLatest(context.Background(), "INR")
			require.Error(t, err)
			assert.Nil(t, rates)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestClient_FetchLatest_Timeout(t *testing.T) {
	release := make(chan struct{})
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer server.Close()
	defer close(release)

	_, err := NewClient(server.URL, 20*time.Millisecond).FetchLatest(context.Background(), "INR")
	assert.Error(t, err)
}

func TestNewClient_Defaults(t *testing.T) {
	client := NewClient("", 0)
	assert.Equal(t, DefaultBaseURL, client.baseURL)
	assert.Equal(t, DefaultTimeout, client.httpClient.Timeout)
}
