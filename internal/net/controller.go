package net

import (
	"encoding/json"
	"net"
	"sync"

	"github.com/aldenvale/mtgkernel/internal/game"
)

// NetworkAgent implements game.Agent over a TCP connection, generalizing
// the teacher's NetworkController from a fixed five-agent/five-tech board
// to an arbitrary battlefield of GameObjects addressed by ObjectID.
type NetworkAgent struct {
	conn   net.Conn
	enc    *json.Encoder
	dec    *json.Decoder
	player game.PlayerID
	mu     sync.Mutex
}

// NewNetworkAgent wraps conn as the agent for player seat p.
func NewNetworkAgent(conn net.Conn, p game.PlayerID) *NetworkAgent {
	return &NetworkAgent{
		conn:   conn,
		enc:    json.NewEncoder(conn),
		dec:    json.NewDecoder(conn),
		player: p,
	}
}

func (na *NetworkAgent) send(msg ServerMessage) error {
	return na.enc.Encode(msg)
}

func (na *NetworkAgent) recv() (ClientMessage, error) {
	var msg ClientMessage
	err := na.dec.Decode(&msg)
	return msg, err
}

// BuildStateView renders g from p's perspective, hiding the opponent's hand.
func BuildStateView(g *game.Game, p game.PlayerID) *StateView {
	me := g.Player(p)
	opp := g.Player(g.Opponent(p))

	sv := &StateView{
		Turn:       g.Turn,
		Phase:      g.Phase.String(),
		Step:       g.Step.String(),
		IsYourTurn: g.ActivePlayer == p,
	}
	sv.You = playerView(g, me, true)
	sv.Opponent = playerView(g, opp, false)
	return sv
}

func playerView(g *game.Game, p *game.Player, revealHand bool) PlayerView {
	pv := PlayerView{
		Life:           p.Life,
		Poison:         p.Poison,
		HandCount:      p.Hand.Len(),
		GraveyardCount: p.Graveyard.Len(),
		LibraryCount:   p.Library.Len(),
	}
	if revealHand {
		for _, id := range p.Hand.IDs() {
			if obj := g.Object(id); obj != nil {
				pv.Hand = append(pv.Hand, obj.Current.Name)
			}
		}
	}
	for _, id := range g.Battlefield.IDs() {
		obj := g.Object(id)
		if obj == nil || obj.Permanent == nil || obj.Permanent.Controller != p.ID {
			continue
		}
		zv := ZoneView{Name: obj.Current.Name, Tapped: obj.Permanent.Tapped}
		if obj.Current.HasType(game.TypeCreature) {
			zv.Power = obj.Power()
			zv.Toughness = obj.Toughness()
		}
		pv.Battlefield = append(pv.Battlefield, zv)
	}
	return pv
}

func objectViews(g *game.Game, ids []game.ObjectID) []ObjectView {
	var out []ObjectView
	for i, id := range ids {
		obj := g.Object(id)
		if obj == nil {
			continue
		}
		ov := ObjectView{Index: i, ID: int(id), Name: obj.Current.Name}
		if obj.Current.HasType(game.TypeCreature) {
			ov.Power = obj.Power()
			ov.Tough = obj.Toughness()
		}
		out = append(out, ov)
	}
	return out
}

// PriorityAction implements game.Agent.
func (na *NetworkAgent) PriorityAction(g *game.Game, legal []game.ActionChoice) game.ActionChoice {
	na.mu.Lock()
	defer na.mu.Unlock()

	var views []ActionView
	for i, a := range legal {
		views = append(views, ActionView{Index: i, Desc: a.String()})
	}
	if err := na.send(ServerMessage{Type: "priority", Actions: views, State: BuildStateView(g, na.player)}); err != nil {
		return legal[0]
	}
	resp, err := na.recv()
	if err != nil || resp.Index < 0 || resp.Index >= len(legal) {
		return legal[0] // fall back to Pass, matching the teacher's fallback-to-first-action convention
	}
	return legal[resp.Index]
}

// ChooseTargets implements game.Agent.
func (na *NetworkAgent) ChooseTargets(g *game.Game, candidates []game.ObjectID, min, max int) []game.ObjectID {
	na.mu.Lock()
	defer na.mu.Unlock()

	msg := ServerMessage{Type: "choose_targets", Candidates: objectViews(g, candidates), Min: min, Max: max, State: BuildStateView(g, na.player)}
	if err := na.send(msg); err != nil {
		return nil
	}
	resp, err := na.recv()
	if err != nil {
		return nil
	}
	return resolveIndices(candidates, resp.Indices)
}

// ChooseOrder implements game.Agent.
func (na *NetworkAgent) ChooseOrder(g *game.Game, ids []game.ObjectID) []game.ObjectID {
	na.mu.Lock()
	defer na.mu.Unlock()

	msg := ServerMessage{Type: "choose_order", Candidates: objectViews(g, ids), Min: len(ids), Max: len(ids)}
	if err := na.send(msg); err != nil {
		return ids
	}
	resp, err := na.recv()
	if err != nil {
		return ids
	}
	ordered := resolveIndices(ids, resp.Indices)
	if len(ordered) != len(ids) {
		return ids
	}
	return ordered
}

// ChooseYesNo implements game.Agent.
func (na *NetworkAgent) ChooseYesNo(g *game.Game, prompt string) bool {
	na.mu.Lock()
	defer na.mu.Unlock()

	if err := na.send(ServerMessage{Type: "choose_yes_no", Prompt: prompt}); err != nil {
		return false
	}
	resp, err := na.recv()
	if err != nil {
		return false
	}
	return resp.Answer
}

// ChooseNumber implements game.Agent.
func (na *NetworkAgent) ChooseNumber(g *game.Game, prompt string, min, max int) int {
	na.mu.Lock()
	defer na.mu.Unlock()

	if err := na.send(ServerMessage{Type: "choose_number", Prompt: prompt, NumMin: min, NumMax: max}); err != nil {
		return min
	}
	resp, err := na.recv()
	if err != nil || resp.Number < min || resp.Number > max {
		return min
	}
	return resp.Number
}

// ChooseModes implements game.Agent.
func (na *NetworkAgent) ChooseModes(g *game.Game, prompt string, count, n int) []int {
	na.mu.Lock()
	defer na.mu.Unlock()

	if err := na.send(ServerMessage{Type: "choose_modes", Prompt: prompt, ModeCount: count, ModeN: n}); err != nil {
		return nil
	}
	resp, err := na.recv()
	if err != nil {
		return nil
	}
	var modes []int
	for _, ix := range resp.Indices {
		if ix >= 0 && ix < count {
			modes = append(modes, ix)
		}
	}
	return modes
}

// Notify implements game.Agent.
func (na *NetworkAgent) Notify(g *game.Game, e string) {
	na.mu.Lock()
	defer na.mu.Unlock()
	_ = na.send(ServerMessage{Type: "notify", Event: &EventView{Turn: g.Turn, Phase: g.Phase.String(), Details: e}})
}

// SendGameOver delivers the terminal result to the client.
func (na *NetworkAgent) SendGameOver(r game.GameResult) error {
	na.mu.Lock()
	defer na.mu.Unlock()
	return na.send(ServerMessage{Type: "game_over", Winner: int(r.Winner), HasWinner: r.HasWinner, Result: r.Reason})
}

func resolveIndices(candidates []game.ObjectID, indices []int) []game.ObjectID {
	var out []game.ObjectID
	for _, ix := range indices {
		if ix >= 0 && ix < len(candidates) {
			out = append(out, candidates[ix])
		}
	}
	return out
}
