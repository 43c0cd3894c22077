package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shortling/shortling/pkg/adapters/api"
	"github.com/shortling/shortling/pkg/adapters/credstore"
	"github.com/shortling/shortling/pkg/core/domain"
)

// TestLoginRestartLogoutFlow exercises the real HTTP client and the real file
// store end to end: log in against a fake backend, start a second service over
// the same directory with the backend gone, then log out.
func TestLoginRestartLogoutFlow(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/public/login", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"token": "tok-flow"})
	})
	server := httptest.NewServer(mux)

	dir := t.TempDir()
	store, err := credstore.NewFileStore(dir)
	require.NoError(t, err)

	client := api.NewClient(server.URL, 5*time.Second, nil)
	svc := NewSessionService(client, store, &recorder{}, nil)
	require.False(t, svc.Authenticated())

	err = svc.Login(context.Background(), domain.Credentials{Username: "alice", Password: "hunter22"})
	require.NoError(t, err)
	require.True(t, svc.Authenticated())

	// "Restart" with the backend unreachable: the persisted pair alone must
	// restore the session.
	server.Close()
	store2, err := credstore.NewFileStore(dir)
	require.NoError(t, err)
	svc2 := NewSessionService(client, store2, &recorder{}, nil)

	assert.True(t, svc2.Authenticated())
	assert.Equal(t, domain.Session{Username: "alice", Token: "tok-flow"}, svc2.Current())

	svc2.Logout()
	assert.False(t, svc2.Authenticated())

	// A third start finds nothing to restore.
	store3, err := credstore.NewFileStore(dir)
	require.NoError(t, err)
	svc3 := NewSessionService(client, store3, &recorder{}, nil)
	assert.False(t, svc3.Authenticated())
}
