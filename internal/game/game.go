package game

import (
	"fmt"

	"github.com/aldenvale/mtgkernel/internal/event"
)

// Config controls variant rules and operational knobs, the generalized
// successor to the teacher's DuelConfig.
type Config struct {
	StartingLife   int
	InitialHand    int
	MaxHandSize    int
	MaxTurns       int // 0 means unlimited; reaching it aborts with GameResult.Reason == "turn-limit"
	Verbose        bool
	Shuffle        func(n int) int // injected RNG for library shuffles; nil uses a fixed no-op order (deterministic tests)
}

// DefaultConfig returns the standard two-player constructed-format config.
func DefaultConfig() Config {
	return Config{
		StartingLife: StartingLife,
		InitialHand:  InitialHandSize,
		MaxHandSize:  MaxHandSize,
	}
}

// Game is the kernel's arena: every GameObject that exists anywhere in the
// game lives in objects, indexed by ObjectID, exactly as the teacher keeps
// CardInstances addressable by ID rather than by pointer so cross-zone
// references never need cyclic pointers (see DESIGN.md's arena note).
type Game struct {
	Config Config

	Players     []*Player
	Battlefield *Zone
	StackZone   *Zone

	objects map[ObjectID]*GameObject
	nextID  ObjectID

	Layers  *LayerEngine
	Bus     *event.Bus
	Trigger *TriggerManager
	Replace *ReplacementTable

	Turn          int
	ActivePlayer  PlayerID
	Phase         Phase
	Step          Step
	PriorityPlayer PlayerID
	passes        int // consecutive passes seen in the current priority round

	MonarchID      PlayerID
	HasMonarch     bool

	Over      bool
	Winner    PlayerID
	HasWinner bool
	Result    string // one of "life" | "poison" | "drew-from-empty" | "concede" | "turn-limit" | "draw" | "engine-error"
}

// NewGame constructs an empty two-player game. Cards must be added to
// players' libraries by the caller (see deck.go) before Run is called.
func NewGame(cfg Config, agents [2]Agent, names [2]string) *Game {
	g := &Game{
		Config:      cfg,
		Battlefield: NewZone(ZoneBattlefield, -1),
		StackZone:   NewZone(ZoneStack, -1),
		objects:     make(map[ObjectID]*GameObject),
		Layers:      NewLayerEngine(),
		Bus:         event.NewBus(),
	}
	g.Players = []*Player{
		NewPlayer(0, names[0], agents[0]),
		NewPlayer(1, names[1], agents[1]),
	}
	if cfg.StartingLife > 0 {
		for _, p := range g.Players {
			p.Life = cfg.StartingLife
		}
	}
	g.Trigger = NewTriggerManager(g)
	g.Replace = NewReplacementTable()
	g.ActivePlayer = 0
	g.PriorityPlayer = 0
	return g
}

// NextObjectID hands out the next monotonic object id (invariant I4).
func (g *Game) NextObjectID() ObjectID {
	g.nextID++
	return g.nextID
}

// Object returns the GameObject for id, or nil if it no longer exists
// (e.g. a stack entry already resolved and its ephemeral copy discarded).
func (g *Game) Object(id ObjectID) *GameObject {
	return g.objects[id]
}

// Objects returns every object currently tracked, in no particular order;
// callers that need zone order should walk the relevant Zone instead.
func (g *Game) Objects() []*GameObject {
	out := make([]*GameObject, 0, len(g.objects))
	for _, o := range g.objects {
		out = append(out, o)
	}
	return out
}

// registerObject adds o to the arena under its ID, assigning one if unset.
func (g *Game) registerObject(o *GameObject) {
	if o.ID == 0 {
		o.ID = g.NextObjectID()
	}
	g.objects[o.ID] = o
}

// Opponent returns the other player's id in a two-player game.
func (g *Game) Opponent(p PlayerID) PlayerID {
	if p == 0 {
		return 1
	}
	return 0
}

// Player returns the *Player for id.
func (g *Game) Player(id PlayerID) *Player {
	return g.Players[id]
}

// ActivePlayerObj returns the *Player whose turn it currently is.
func (g *Game) ActivePlayerObj() *Player { return g.Players[g.ActivePlayer] }

// ZoneOf returns the Zone an object currently belongs to, whether
// per-player (hand, library, ...) or shared (battlefield, stack).
func (g *Game) ZoneOf(o *GameObject) *Zone {
	switch o.Zone {
	case ZoneBattlefield:
		return g.Battlefield
	case ZoneStack:
		return g.StackZone
	default:
		return g.Players[o.Owner].ZoneByKind(o.Zone)
	}
}

// BecomeMonarch makes p the monarch (CR 716): they draw an extra card at
// their own end step, and whenever a creature deals combat damage to the
// monarch, that creature's controller replaces them here. Not grounded in
// original_source (it has no concept of the monarch at all, confirmed by
// grep) — implemented from the published rule directly, in the style of
// this kernel's other Bus-published state-change methods (LoseLife,
// GainLife).
func (g *Game) BecomeMonarch(p PlayerID) {
	g.MonarchID = p
	g.HasMonarch = true
	g.Bus.Publish(event.Event{Turn: g.Turn, Phase: g.Phase.String(), Type: event.MonarchChanged, Player: int(p)})
}

// Log is a thin convenience wrapper that publishes an event.Bus entry
// tagged with the current turn/phase and priority player, with Details
// formatted from format/args (errors.go's fail uses it), following the
// teacher's single logging funnel convention (duel.go's `log` method).
func (g *Game) Log(t event.Type, format string, args ...any) event.Event {
	return g.Bus.Publish(event.Event{
		Turn:    g.Turn,
		Phase:   g.Phase.String(),
		Type:    t,
		Player:  int(g.PriorityPlayer),
		Details: fmt.Sprintf(format, args...),
	})
}
