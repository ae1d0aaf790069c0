package testutil

import (
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
)

// Serve executes a request against the provided handler and returns the recorder.
func Serve(h http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// AssertStatus verifies the response status code.
func AssertStatus(t *testing.T, rr *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rr.Code != want {
		t.Fatalf("expected status %d, got %d", want, rr.Code)
	}
}

// PlayersAPI is an httptest server answering /v1/players with a canned response.
type PlayersAPI struct {
	*httptest.Server
	hits atomic.Int64
}

// NewPlayersAPI starts a server that replies to GET /v1/players with status and body.
// Other paths return 404. The server is closed when the test ends.
func NewPlayersAPI(t *testing.T, status int, body string) *PlayersAPI {
	t.Helper()
	api := &PlayersAPI{}
	api.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/players" || r.Method != http.MethodGet {
			http.NotFound(w, r)
			return
		}
		api.hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(api.Close)
	return api
}

// Hits reports how many /v1/players requests were served.
func (a *PlayersAPI) Hits() int {
	return int(a.hits.Load())
}
