package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/omaha-odds/internal/ladder"
)

func dialTestServer(t *testing.T) *websocket.Conn {
	t.Helper()
	srv := NewServer("", ladder.DefaultRules, log.New(io.Discard))
	t.Cleanup(srv.Stop)

	ts := httptest.NewServer(srv.Handler())
	t.Cleanup(ts.Close)

	url := "ws" + strings.TrimPrefix(ts.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func TestHealthEndpoint(t *testing.T) {
	t.Parallel()
	srv := NewServer("", ladder.DefaultRules, log.New(io.Discard))
	ts := httptest.NewServer(srv.Handler())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/health")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestEquityRequest(t *testing.T) {
	t.Parallel()
	conn := dialTestServer(t)

	require.NoError(t, conn.WriteJSON(Request{
		Type:    "equity",
		Holding: "AdKhQcJs",
		Board:   "AhAsKd7c2h",
	}))

	var resp EquityResponse
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Equal(t, "equity", resp.Type)
	assert.Equal(t, 2, resp.Level, "aces full of kings sits under the pocket-aces quads")
	assert.Greater(t, resp.Equity, 0.5)
	assert.LessOrEqual(t, resp.Equity, 1.0)
}

func TestLadderRequest(t *testing.T) {
	t.Parallel()
	conn := dialTestServer(t)

	require.NoError(t, conn.WriteJSON(Request{
		Type:      "ladder",
		Board:     "AhAsKd7c2h",
		MaxLevels: 3,
	}))

	var resp LadderResponse
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Equal(t, "ladder", resp.Type)
	require.Len(t, resp.Levels, 3)
	assert.Equal(t, 1, resp.Levels[0].Index)
	assert.Equal(t, []string{"Ad Ac"}, resp.Levels[0].Couplets)
	assert.Greater(t, resp.Total, 3)
}

func TestBadRequestKeepsConnectionOpen(t *testing.T) {
	t.Parallel()
	conn := dialTestServer(t)

	require.NoError(t, conn.WriteJSON(Request{Type: "equity", Holding: "zz", Board: "AhAsKd7c2h"}))
	var errResp ErrorResponse
	require.NoError(t, conn.ReadJSON(&errResp))
	assert.Equal(t, "error", errResp.Type)
	assert.NotEmpty(t, errResp.Error)

	// The connection survives the error and serves the next request.
	require.NoError(t, conn.WriteJSON(Request{Type: "ladder", Board: "KdTs7c4h2h", MaxLevels: 1}))
	var resp LadderResponse
	require.NoError(t, conn.ReadJSON(&resp))
	assert.Equal(t, "ladder", resp.Type)
}
