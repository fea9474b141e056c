package upstream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"free-game-tracker/internal/common/errors"
)

const feedBody = `[{"id":1,"title":"Game","worth":"$5.99","platforms":"PC, Steam","end_date":"N/A"}]`

func TestFetchGiveaways_ReturnsBodyVerbatim(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(feedBody))
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL, 0).FetchGiveaways(context.Background())

	require.NoError(t, err)
	assert.Equal(t, feedBody, string(got))
	assert.Equal(t, 1, calls)
}

func TestFetchGiveaways_Failures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "not found",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			},
		},
		{
			name: "invalid json",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("<html>maintenance</html>"))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var calls int
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls++
				tt.handler(w, r)
			}))
			defer srv.Close()

			_, err := NewClient(srv.URL, 0).FetchGiveaways(context.Background())

			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrCodeExternalAPI))
			assert.Equal(t, 1, calls, "failures are not retried")
		})
	}
}

func TestFetchGiveaways_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := NewClient(url, 0).FetchGiveaways(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrCodeExternalAPI))
}

func TestFetchGiveaways_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(feedBody))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL, 0).FetchGiveaways(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
