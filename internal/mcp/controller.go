// Package mcp exposes mtgkernel as a set of mark3labs/mcp-go tools, so an
// LLM agent can play one seat of a duel turn-by-turn against a human
// connected over internal/net, generalizing the teacher's MCPController
// from its ctx/error-returning PlayerController to this kernel's
// synchronous, error-free Agent interface.
package mcp

import (
	mtgnet "github.com/aldenvale/mtgkernel/internal/net"

	"github.com/aldenvale/mtgkernel/internal/game"
)

// MCPAgent implements game.Agent by publishing a PendingDecision to the
// session's channel and blocking on a matching response channel — the
// same suspension-point pattern internal/net.NetworkAgent uses over a
// socket, here over Go channels instead.
type MCPAgent struct {
	player     game.PlayerID
	session    *GameSession
	responseCh chan any
}

// NewMCPAgent creates an agent for the given seat.
func NewMCPAgent(player game.PlayerID, session *GameSession) *MCPAgent {
	return &MCPAgent{player: player, session: session, responseCh: make(chan any)}
}

// PriorityAction implements game.Agent.
func (c *MCPAgent) PriorityAction(g *game.Game, legal []game.ActionChoice) game.ActionChoice {
	var views []mtgnet.ActionView
	for i, a := range legal {
		views = append(views, mtgnet.ActionView{Index: i, Desc: a.String()})
	}
	c.session.pendingCh <- &PendingDecision{
		Type:    DecisionPriority,
		Player:  c.player,
		State:   mtgnet.BuildStateView(g, c.player),
		Actions: views,
	}
	resp := (<-c.responseCh).(ActionResponse)
	if resp.Index < 0 || resp.Index >= len(legal) {
		return legal[0]
	}
	return legal[resp.Index]
}

// ChooseTargets implements game.Agent.
func (c *MCPAgent) ChooseTargets(g *game.Game, candidates []game.ObjectID, min, max int) []game.ObjectID {
	c.session.pendingCh <- &PendingDecision{
		Type:       DecisionChooseTargets,
		Player:     c.player,
		State:      mtgnet.BuildStateView(g, c.player),
		Prompt:     "Choose targets",
		Candidates: objectViews(g, candidates),
		Min:        min,
		Max:        max,
	}
	resp := (<-c.responseCh).(IndicesResponse)
	return resolve(candidates, resp.Indices)
}

// ChooseOrder implements game.Agent.
func (c *MCPAgent) ChooseOrder(g *game.Game, ids []game.ObjectID) []game.ObjectID {
	c.session.pendingCh <- &PendingDecision{
		Type:       DecisionChooseOrder,
		Player:     c.player,
		State:      mtgnet.BuildStateView(g, c.player),
		Prompt:     "Choose an order",
		Candidates: objectViews(g, ids),
		Min:        len(ids),
		Max:        len(ids),
	}
	resp := (<-c.responseCh).(IndicesResponse)
	ordered := resolve(ids, resp.Indices)
	if len(ordered) != len(ids) {
		return ids
	}
	return ordered
}

// ChooseYesNo implements game.Agent.
func (c *MCPAgent) ChooseYesNo(g *game.Game, prompt string) bool {
	c.session.pendingCh <- &PendingDecision{
		Type:   DecisionChooseYesNo,
		Player: c.player,
		State:  mtgnet.BuildStateView(g, c.player),
		Prompt: prompt,
	}
	return (<-c.responseCh).(YesNoResponse).Answer
}

// ChooseNumber implements game.Agent.
func (c *MCPAgent) ChooseNumber(g *game.Game, prompt string, min, max int) int {
	c.session.pendingCh <- &PendingDecision{
		Type:   DecisionChooseNumber,
		Player: c.player,
		State:  mtgnet.BuildStateView(g, c.player),
		Prompt: prompt,
		Min:    min,
		Max:    max,
	}
	n := (<-c.responseCh).(NumberResponse).Value
	if n < min || n > max {
		return min
	}
	return n
}

// ChooseModes implements game.Agent.
func (c *MCPAgent) ChooseModes(g *game.Game, prompt string, count, n int) []int {
	c.session.pendingCh <- &PendingDecision{
		Type:      DecisionChooseModes,
		Player:    c.player,
		State:     mtgnet.BuildStateView(g, c.player),
		Prompt:    prompt,
		ModeCount: count,
		ModeN:     n,
	}
	resp := (<-c.responseCh).(IndicesResponse)
	var modes []int
	for _, ix := range resp.Indices {
		if ix >= 0 && ix < count {
			modes = append(modes, ix)
		}
	}
	return modes
}

// Notify implements game.Agent. Only the LLM's own agent buffers events —
// the human side already gets its own narration over internal/net.
func (c *MCPAgent) Notify(g *game.Game, e string) {
	if c.player != c.session.llmPlayer {
		return
	}
	c.session.appendEvent(mtgnet.EventView{Turn: g.Turn, Phase: g.Phase.String(), Player: int(c.player), Type: "notify", Details: e})
}

func objectViews(g *game.Game, ids []game.ObjectID) []mtgnet.ObjectView {
	var out []mtgnet.ObjectView
	for i, id := range ids {
		obj := g.Object(id)
		if obj == nil {
			continue
		}
		ov := mtgnet.ObjectView{Index: i, ID: int(id), Name: obj.Current.Name}
		if obj.Current.HasType(game.TypeCreature) {
			ov.Power = obj.Power()
			ov.Tough = obj.Toughness()
		}
		out = append(out, ov)
	}
	return out
}

func resolve(candidates []game.ObjectID, indices []int) []game.ObjectID {
	var out []game.ObjectID
	for _, ix := range indices {
		if ix >= 0 && ix < len(candidates) {
			out = append(out, candidates[ix])
		}
	}
	return out
}
