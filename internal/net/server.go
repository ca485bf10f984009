package net

import (
	"encoding/json"
	"fmt"
	"net"

	"github.com/google/uuid"

	"github.com/aldenvale/mtgkernel/internal/engine/log"
	"github.com/aldenvale/mtgkernel/internal/game"
)

// Server hosts a duel between two TCP clients: the local host (driven by
// a REPL over an in-process net.Pipe) and one remote joiner, following the
// teacher's server.go Accept-one-connection pattern.
type Server struct {
	HostDeckPath string
	Port         string
	Logger       *log.Logger

	// MatchID identifies this hosted duel in logs; assigned fresh in Run so
	// two duels started back to back in the same process never share one.
	MatchID string
}

// Run listens, waits for exactly one joiner, then plays the duel to completion.
func (s *Server) Run() error {
	s.MatchID = uuid.NewString()
	ln, err := net.Listen("tcp", ":"+s.Port)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	defer ln.Close()

	s.logger().Component("net").Infof("match %s waiting for opponent on port %s", s.MatchID, s.Port)
	conn, err := ln.Accept()
	if err != nil {
		return fmt.Errorf("accept: %w", err)
	}
	defer conn.Close()
	s.logger().Component("net").Infof("opponent connected from %s", conn.RemoteAddr())

	dec := json.NewDecoder(conn)
	var joinMsg ClientMessage
	if err := dec.Decode(&joinMsg); err != nil {
		return fmt.Errorf("read join message: %w", err)
	}
	joinerDeckPath := joinMsg.DeckPath
	if joinerDeckPath == "" {
		joinerDeckPath = s.HostDeckPath
	}

	hostConn, hostServerConn := net.Pipe()

	hostAgent := NewNetworkAgent(hostServerConn, 0)
	joinerAgent := NewNetworkAgent(conn, 1)

	g, err := game.SetupGame(game.DefaultConfig(), [2]game.Agent{hostAgent, joinerAgent}, [2]string{"Host", "Joiner"}, [2]string{s.HostDeckPath, joinerDeckPath}, nil)
	if err != nil {
		return fmt.Errorf("setup game: %w", err)
	}

	errCh := make(chan error, 2)
	go func() {
		client := &Client{conn: hostConn, playerName: "Host"}
		errCh <- client.RunREPL()
	}()
	go func() {
		result := g.PlayGame()
		_ = joinerAgent.SendGameOver(result)
		_ = hostAgent.SendGameOver(result)
		errCh <- nil
	}()

	return <-errCh
}

func (s *Server) logger() *log.Logger {
	if s.Logger == nil {
		s.Logger = log.New()
	}
	return s.Logger
}
