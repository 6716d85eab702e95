// Package server exposes the equity engine over WebSocket: clients send
// JSON requests naming a holding and a board and receive the evaluation or
// the board's concrete ladder back on the same connection.
package server

import (
	"context"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/lox/omaha-odds/internal/deck"
	"github.com/lox/omaha-odds/internal/equity"
	"github.com/lox/omaha-odds/internal/ladder"
)

// Request is a single JSON query on the WebSocket connection.
type Request struct {
	// Type selects the operation: "equity" or "ladder".
	Type    string `json:"type"`
	Holding string `json:"holding,omitempty"`
	Board   string `json:"board"`
	// MaxLevels truncates ladder responses; 0 means every level.
	MaxLevels int `json:"max_levels,omitempty"`
}

// EquityResponse answers an "equity" request.
type EquityResponse struct {
	Type       string  `json:"type"`
	Holding    string  `json:"holding"`
	Board      string  `json:"board"`
	Equity     float64 `json:"equity"`
	Level      int     `json:"level"`
	Better     int     `json:"better"`
	Equipotent int     `json:"equipotent"`
	Worse      int     `json:"worse"`
}

// LadderLevel is one level of a ladder response.
type LadderLevel struct {
	Index    int      `json:"index"`
	Couplets []string `json:"couplets"`
}

// LadderResponse answers a "ladder" request.
type LadderResponse struct {
	Type   string        `json:"type"`
	Board  string        `json:"board"`
	Levels []LadderLevel `json:"levels"`
	Total  int           `json:"total_levels"`
}

// ErrorResponse reports a failed request without closing the connection.
type ErrorResponse struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}

// Server serves equity queries over WebSocket.
type Server struct {
	addr     string
	upgrader websocket.Upgrader
	logger   *log.Logger
	calc     *equity.Calculator
	ctx      context.Context
	cancel   context.CancelFunc
}

// NewServer creates a server evaluating under the given rules.
func NewServer(addr string, rules ladder.Rules, logger *log.Logger) *Server {
	ctx, cancel := context.WithCancel(context.Background())
	return &Server{
		addr: addr,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// For development, allow all origins
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger,
		calc:   equity.NewCalculator(rules),
		ctx:    ctx,
		cancel: cancel,
	}
}

// Handler returns the HTTP handler serving /ws and /health.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWebSocket)
	mux.HandleFunc("/health", s.handleHealth)
	return mux
}

// Start runs the server until the listener fails or Stop is called.
func (s *Server) Start() error {
	s.logger.Info("starting equity server", "addr", s.addr)
	return http.ListenAndServe(s.addr, s.Handler())
}

// Stop signals every connection loop to wind down.
func (s *Server) Stop() {
	s.cancel()
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("failed to upgrade connection", "error", err)
		return
	}
	defer conn.Close()
	s.logger.Debug("client connected", "remote", conn.RemoteAddr())

	for {
		if s.ctx.Err() != nil {
			return
		}
		var req Request
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Debug("read failed", "error", err)
			}
			return
		}
		if err := conn.WriteJSON(s.respond(req)); err != nil {
			s.logger.Debug("write failed", "error", err)
			return
		}
	}
}

// respond evaluates one request. Bad input produces an error response; the
// connection itself stays usable.
func (s *Server) respond(req Request) any {
	switch req.Type {
	case "equity":
		return s.respondEquity(req)
	case "ladder":
		return s.respondLadder(req)
	default:
		return ErrorResponse{Type: "error", Error: "unknown request type: " + req.Type}
	}
}

func (s *Server) respondEquity(req Request) any {
	board, err := deck.ParseCards(req.Board)
	if err != nil {
		return ErrorResponse{Type: "error", Error: "bad board: " + err.Error()}
	}
	holding, err := deck.ParseCards(req.Holding)
	if err != nil {
		return ErrorResponse{Type: "error", Error: "bad holding: " + err.Error()}
	}
	res, err := s.calc.Evaluate(holding, board)
	if err != nil {
		return ErrorResponse{Type: "error", Error: err.Error()}
	}
	return EquityResponse{
		Type:       "equity",
		Holding:    req.Holding,
		Board:      req.Board,
		Equity:     res.Utility,
		Level:      res.LevelIndex + 1,
		Better:     res.Better,
		Equipotent: res.Equipotent,
		Worse:      res.Worse,
	}
}

func (s *Server) respondLadder(req Request) any {
	board, err := deck.ParseCards(req.Board)
	if err != nil {
		return ErrorResponse{Type: "error", Error: "bad board: " + err.Error()}
	}
	concrete, err := ladder.RankLadder(s.calc.Rules(), board)
	if err != nil {
		return ErrorResponse{Type: "error", Error: err.Error()}
	}

	shown := len(concrete)
	if req.MaxLevels > 0 && req.MaxLevels < shown {
		shown = req.MaxLevels
	}
	levels := make([]LadderLevel, shown)
	for i := 0; i < shown; i++ {
		couplets := make([]string, len(concrete[i]))
		for j, c := range concrete[i] {
			couplets[j] = c.String()
		}
		levels[i] = LadderLevel{Index: i + 1, Couplets: couplets}
	}
	return LadderResponse{
		Type:   "ladder",
		Board:  req.Board,
		Levels: levels,
		Total:  len(concrete),
	}
}
