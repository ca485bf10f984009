package mcp

import (
	"encoding/json"
	"fmt"
	stdnet "net"
	"sync"

	"github.com/google/uuid"

	mtgnet "github.com/aldenvale/mtgkernel/internal/net"

	"github.com/aldenvale/mtgkernel/internal/game"
)

// DecisionType identifies what kind of decision the kernel is waiting for.
type DecisionType string

const (
	DecisionPriority      DecisionType = "priority"
	DecisionChooseTargets DecisionType = "choose_targets"
	DecisionChooseOrder   DecisionType = "choose_order"
	DecisionChooseYesNo   DecisionType = "choose_yes_no"
	DecisionChooseNumber  DecisionType = "choose_number"
	DecisionChooseModes   DecisionType = "choose_modes"
	DecisionGameOver      DecisionType = "game_over"
)

// PendingDecision is what the kernel is waiting on, addressed to one seat.
type PendingDecision struct {
	Type       DecisionType
	Player     game.PlayerID
	State      *mtgnet.StateView
	Actions    []mtgnet.ActionView
	Prompt     string
	Candidates []mtgnet.ObjectView
	Min, Max   int
	ModeCount  int
	ModeN      int
}

// Response types sent back from MCP tool handlers to the blocked MCPAgent.
type ActionResponse struct{ Index int }
type IndicesResponse struct{ Indices []int }
type YesNoResponse struct{ Answer bool }
type NumberResponse struct{ Value int }

// ToolResponse is the JSON envelope every MCP tool returns.
type ToolResponse struct {
	Events   []mtgnet.EventView `json:"events"`
	State    *mtgnet.StateView  `json:"state,omitempty"`
	Pending  *PendingView       `json:"pending,omitempty"`
	GameOver bool               `json:"game_over"`
	HasWinner bool              `json:"has_winner,omitempty"`
	Winner   int                `json:"winner,omitempty"`
	Result   string             `json:"result,omitempty"`
	Port     string             `json:"port,omitempty"`
	SessionID string            `json:"session_id,omitempty"`
}

// PendingView is the pending decision as presented in tool response JSON.
type PendingView struct {
	Type       DecisionType         `json:"type"`
	ForPlayer  string               `json:"for_player"`
	Actions    []mtgnet.ActionView  `json:"actions,omitempty"`
	Prompt     string               `json:"prompt,omitempty"`
	Candidates []mtgnet.ObjectView  `json:"candidates,omitempty"`
	Min        int                  `json:"min,omitempty"`
	Max        int                  `json:"max,omitempty"`
}

// GameSession holds the state of one MCP-driven duel: one seat played by
// the LLM via tool calls, the other by a human connected over TCP.
type GameSession struct {
	SessionID string

	g         *game.Game
	llmAgent  *MCPAgent
	llmPlayer game.PlayerID

	listener  stdnet.Listener
	humanConn stdnet.Conn
	humanAgent *mtgnet.NetworkAgent

	pendingCh      chan *PendingDecision
	currentPending *PendingDecision

	mu       sync.Mutex
	events   []mtgnet.EventView
	gameOver bool
	result   game.GameResult
}

// NewGameSession loads decks, opens a TCP listener for the human player,
// blocks until they join, then starts the duel in the background.
func NewGameSession(llmDeckPath, humanDeckPath string, llmPlayer game.PlayerID, port string) (*GameSession, error) {
	ln, err := stdnet.Listen("tcp", ":"+port)
	if err != nil {
		return nil, fmt.Errorf("listen on port %s: %w", port, err)
	}
	conn, err := ln.Accept()
	if err != nil {
		ln.Close()
		return nil, fmt.Errorf("accept: %w", err)
	}

	dec := json.NewDecoder(conn)
	var joinMsg mtgnet.ClientMessage
	if err := dec.Decode(&joinMsg); err != nil {
		conn.Close()
		ln.Close()
		return nil, fmt.Errorf("read join message: %w", err)
	}
	if joinMsg.DeckPath != "" {
		humanDeckPath = joinMsg.DeckPath
	}

	sess := &GameSession{
		SessionID: uuid.NewString(),
		llmPlayer: llmPlayer,
		pendingCh: make(chan *PendingDecision, 1),
		listener:  ln,
		humanConn: conn,
	}

	humanPlayer := game.PlayerID(1) - llmPlayer
	sess.llmAgent = NewMCPAgent(llmPlayer, sess)
	sess.humanAgent = mtgnet.NewNetworkAgent(conn, humanPlayer)

	var agents [2]game.Agent
	var deckPaths [2]string
	agents[llmPlayer] = sess.llmAgent
	deckPaths[llmPlayer] = llmDeckPath
	agents[humanPlayer] = sess.humanAgent
	deckPaths[humanPlayer] = humanDeckPath

	g, err := game.SetupGame(game.DefaultConfig(), agents, [2]string{"Player 0", "Player 1"}, deckPaths, nil)
	if err != nil {
		conn.Close()
		ln.Close()
		return nil, err
	}
	sess.g = g

	go func() {
		result := g.PlayGame()
		_ = sess.humanAgent.SendGameOver(result)
		sess.humanConn.Close()
		sess.listener.Close()

		sess.pendingCh <- &PendingDecision{Type: DecisionGameOver, Player: result.Winner, State: mtgnet.BuildStateView(g, sess.llmPlayer)}

		sess.mu.Lock()
		sess.gameOver = true
		sess.result = result
		sess.mu.Unlock()
	}()

	return sess, nil
}

// respond delivers resp to the LLM's agent, which is blocked on its
// current PendingDecision.
func (s *GameSession) respond(resp any) {
	s.llmAgent.responseCh <- resp
}

func (s *GameSession) appendEvent(ev mtgnet.EventView) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
}

func (s *GameSession) drainEvents() []mtgnet.EventView {
	s.mu.Lock()
	defer s.mu.Unlock()
	events := s.events
	s.events = nil
	return events
}

// waitForPending blocks until the kernel raises its next decision for the
// LLM's seat (or the game-over notice), then renders a ToolResponse from the
// LLM's perspective.
func (s *GameSession) waitForPending() (*ToolResponse, error) {
	pending := <-s.pendingCh
	s.currentPending = pending

	resp := &ToolResponse{Events: s.drainEvents()}
	if resp.Events == nil {
		resp.Events = []mtgnet.EventView{}
	}

	if pending.Type == DecisionGameOver {
		s.mu.Lock()
		resp.GameOver = true
		resp.HasWinner = s.result.HasWinner
		resp.Winner = int(s.result.Winner)
		resp.Result = s.result.Reason
		s.mu.Unlock()
		resp.State = pending.State
		return resp, nil
	}

	resp.State = pending.State
	resp.Pending = &PendingView{
		Type:       pending.Type,
		ForPlayer:  s.playerLabel(pending.Player),
		Actions:    pending.Actions,
		Prompt:     pending.Prompt,
		Candidates: pending.Candidates,
		Min:        pending.Min,
		Max:        pending.Max,
	}
	return resp, nil
}

func (s *GameSession) playerLabel(p game.PlayerID) string {
	if p == s.llmPlayer {
		return "llm"
	}
	return "human"
}

func respondJSON(resp *ToolResponse) string {
	data, err := json.Marshal(resp)
	if err != nil {
		return fmt.Sprintf(`{"error": "marshal error: %v"}`, err)
	}
	return string(data)
}
