package game

// StartingLife is the default starting life total (CR 103.4); Config may
// override it for variant formats.
const StartingLife = 20

// InitialHandSize is how many cards each player draws in the starting hand.
const InitialHandSize = 7

// MaxHandSize is the default hand size enforced by the cleanup step's
// discard to hand size (a turn-based action, not an SBA).
const MaxHandSize = 7

// Player holds one player's zones, life, and per-turn counters. Zone
// contents live as *Zone (object-id lists); the objects themselves live in
// Game.objects, following the teacher's pattern of keeping per-player
// bookkeeping (Player) separate from the shared object arena (GameState's
// equivalent here is Game.objects).
type Player struct {
	ID       PlayerID
	Name     string
	Life     int
	Poison   int
	Mana     ManaPool
	Library  *Zone
	Hand     *Zone
	Graveyard *Zone
	Exile    *Zone
	Command  *Zone

	LandPlayedThisTurn bool
	drewFromEmptyLibrary bool
	Lost               bool
	LossReason         string

	Agent Agent
}

// NewPlayer constructs a player with empty zones and starting life.
func NewPlayer(id PlayerID, name string, agent Agent) *Player {
	return &Player{
		ID:        id,
		Name:      name,
		Life:      StartingLife,
		Library:   NewZone(ZoneLibrary, id),
		Hand:      NewZone(ZoneHand, id),
		Graveyard: NewZone(ZoneGraveyard, id),
		Exile:     NewZone(ZoneExile, id),
		Command:   NewZone(ZoneCommand, id),
		Agent:     agent,
	}
}

// ZoneByKind returns this player's zone of the given kind. ZoneStack and
// ZoneBattlefield are shared game-level zones, not per-player, and are not
// returned here (see Game.Battlefield / Game.StackZone).
func (p *Player) ZoneByKind(k ZoneKind) *Zone {
	switch k {
	case ZoneLibrary:
		return p.Library
	case ZoneHand:
		return p.Hand
	case ZoneGraveyard:
		return p.Graveyard
	case ZoneExile:
		return p.Exile
	case ZoneCommand:
		return p.Command
	default:
		return nil
	}
}
