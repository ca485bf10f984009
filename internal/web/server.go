// Package web serves a small JSON API plus a WebSocket bridge in front of
// a TCP game server, generalizing the teacher's web package (which bridged
// browser WebSocket traffic to its tcgx TCP protocol) to mtgkernel's object
// model: card info comes from the registry instead of a card database file,
// and there is no card-art mapping since this kernel ships no art assets.
package web

import (
	"embed"
	"encoding/json"
	"io"
	"io/fs"
	"net"
	"net/http"

	"github.com/coder/websocket"

	"github.com/aldenvale/mtgkernel/internal/engine/log"
	"github.com/aldenvale/mtgkernel/internal/game"
)

//go:embed static
var staticFiles embed.FS

// CardInfo is the JSON representation of a card for the /api/cards endpoint.
type CardInfo struct {
	Name      string `json:"name"`
	Types     []string `json:"types"`
	ManaCost  string `json:"mana_cost"`
	Power     int    `json:"power,omitempty"`
	Toughness int    `json:"toughness,omitempty"`
	Text      string `json:"text,omitempty"`
}

// Server is the mtgkernel web UI server: static assets, a read-only card
// list, and a WebSocket↔TCP bridge onto a running internal/net.Server.
type Server struct {
	mux    *http.ServeMux
	logger *log.Logger
}

// NewServer builds the route table.
func NewServer() *Server {
	s := &Server{mux: http.NewServeMux(), logger: log.New()}
	s.setupRoutes()
	return s
}

func (s *Server) setupRoutes() {
	staticFS, _ := fs.Sub(staticFiles, "static")

	s.mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		f, err := staticFS.Open("index.html")
		if err != nil {
			http.Error(w, "not found", http.StatusNotFound)
			return
		}
		defer f.Close()
		io.Copy(w, f)
	})

	s.mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(staticFS))))
	s.mux.HandleFunc("GET /api/cards", s.handleCards)
	s.mux.HandleFunc("GET /ws", s.handleWebSocket)
}

func (s *Server) handleCards(w http.ResponseWriter, r *http.Request) {
	var cards []CardInfo
	for name, ctor := range game.CardRegistry {
		c := ctor()
		ci := CardInfo{
			Name:      name,
			ManaCost:  c.ManaCost.String(),
			Power:     c.Power,
			Toughness: c.Toughness,
			Text:      c.Text,
		}
		for _, t := range c.Types {
			ci.Types = append(ci.Types, t.String())
		}
		cards = append(cards, ci)
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(cards)
}

// handleWebSocket bridges a browser WebSocket to the TCP game server named
// in the client's initial "connect" message, forwarding frames verbatim in
// both directions (the JSON protocol is identical on the wire).
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	wsConn, err := websocket.Accept(w, r, &websocket.AcceptOptions{InsecureSkipVerify: true})
	if err != nil {
		s.logger.Component("web").WithError(err).Warn("websocket accept failed")
		return
	}
	defer wsConn.CloseNow()

	ctx := r.Context()
	_, connectData, err := wsConn.Read(ctx)
	if err != nil {
		s.logger.Component("web").WithError(err).Warn("websocket read connect failed")
		return
	}
	var connectMsg struct {
		Type     string `json:"type"`
		Addr     string `json:"addr"`
		DeckPath string `json:"deck_path"`
	}
	if err := json.Unmarshal(connectData, &connectMsg); err != nil || connectMsg.Type != "connect" {
		wsConn.Close(websocket.StatusPolicyViolation, "expected connect message")
		return
	}

	tcpConn, err := net.Dial("tcp", connectMsg.Addr)
	if err != nil {
		errMsg, _ := json.Marshal(map[string]string{"type": "error", "result": err.Error()})
		wsConn.Write(ctx, websocket.MessageText, errMsg)
		wsConn.Close(websocket.StatusNormalClosure, "connection failed")
		return
	}
	defer tcpConn.Close()

	joinMsg, _ := json.Marshal(map[string]any{"type": "join", "deck_path": connectMsg.DeckPath})
	joinMsg = append(joinMsg, '\n')
	if _, err := tcpConn.Write(joinMsg); err != nil {
		s.logger.Component("web").WithError(err).Warn("tcp write join failed")
		return
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		dec := json.NewDecoder(tcpConn)
		for {
			var msg json.RawMessage
			if err := dec.Decode(&msg); err != nil {
				if err != io.EOF {
					s.logger.Component("web").WithError(err).Warn("tcp read failed")
				}
				return
			}
			if err := wsConn.Write(ctx, websocket.MessageText, msg); err != nil {
				return
			}
		}
	}()
	go func() {
		for {
			_, data, err := wsConn.Read(ctx)
			if err != nil {
				return
			}
			data = append(data, '\n')
			if _, err := tcpConn.Write(data); err != nil {
				return
			}
		}
	}()

	<-done
	wsConn.Close(websocket.StatusNormalClosure, "game ended")
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe(addr string) error {
	return http.ListenAndServe(addr, s.mux)
}
