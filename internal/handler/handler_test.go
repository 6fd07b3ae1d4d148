package handler_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/esneiderbravo/crehana-tasks/internal/config"
	"github.com/esneiderbravo/crehana-tasks/internal/graphql"
	"github.com/esneiderbravo/crehana-tasks/internal/router"
	"github.com/esneiderbravo/crehana-tasks/internal/util"
)

const (
	testSecret = "handler-test-secret"

	listID = "11111111-1111-1111-1111-111111111111"
	taskID = "22222222-2222-2222-2222-222222222222"
	userID = "33333333-3333-3333-3333-333333333333"
)

// gqlCall is one request the stub backend received.
type gqlCall struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

// stubBackend plays the GraphQL endpoint. The respond func picks an
// envelope per call, usually by sniffing the operation name.
type stubBackend struct {
	t       *testing.T
	mu      sync.Mutex
	calls   []gqlCall
	respond func(call gqlCall) string
}

func (s *stubBackend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var call gqlCall
	require.NoError(s.t, json.NewDecoder(r.Body).Decode(&call))

	s.mu.Lock()
	s.calls = append(s.calls, call)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(s.respond(call)))
}

func (s *stubBackend) callCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.calls)
}

// lastCallMatching returns the most recent call whose document contains op.
func (s *stubBackend) lastCallMatching(op string) (gqlCall, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.calls) - 1; i >= 0; i-- {
		if strings.Contains(s.calls[i].Query, op) {
			return s.calls[i], true
		}
	}
	return gqlCall{}, false
}

// newEnv builds a router wired to a stub backend.
func newEnv(t *testing.T, respond func(call gqlCall) string) (*gin.Engine, *stubBackend) {
	t.Helper()

	stub := &stubBackend{t: t, respond: respond}
	srv := httptest.NewServer(stub)
	t.Cleanup(srv.Close)

	cfg := &config.Config{
		Server:   config.ServerConfig{Mode: gin.TestMode},
		JWT:      config.JWTConfig{Secret: testSecret, ExpireMinutes: 60},
		Security: config.SecurityConfig{BcryptCost: bcrypt.MinCost},
	}
	gql := graphql.New(srv.URL, 5*time.Second, zap.NewNop())
	return router.SetupRouter(cfg, gql, zap.NewNop()), stub
}

// newEnvWithDeadBackend builds a router whose mediator points at a closed
// server, so every round trip fails at the transport.
func newEnvWithDeadBackend(t *testing.T) *gin.Engine {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	cfg := &config.Config{
		Server:   config.ServerConfig{Mode: gin.TestMode},
		JWT:      config.JWTConfig{Secret: testSecret, ExpireMinutes: 60},
		Security: config.SecurityConfig{BcryptCost: bcrypt.MinCost},
	}
	gql := graphql.New(srv.URL, time.Second, zap.NewNop())
	return router.SetupRouter(cfg, gql, zap.NewNop())
}

func authHeader(t *testing.T) string {
	t.Helper()
	token, err := util.GenerateToken(testSecret, userID, "ana@example.com", time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

// do runs one request against the engine. An empty auth string leaves the
// Authorization header off.
func do(t *testing.T, r *gin.Engine, method, path, body, auth string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}
