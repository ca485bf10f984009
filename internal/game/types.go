package game

// --- Identifiers & timestamps ---

// ObjectID is a monotonic, unique-per-game identifier for any GameObject.
// Never reused; arena ids come only from the game's counter (negative
// values are player targets, see PlayerObjectID) — this
// is what lets every cross-reference in the engine be a plain int instead
// of a pointer (see the arena note in DESIGN.md).
type ObjectID int

// PlayerID indexes into Game.Players.
type PlayerID int

// Timestamp orders effect installation and zone entry. Strictly monotonic
// across the whole game (invariant I4); it is what the layer engine uses
// to break ties within a layer.
type Timestamp int64

// --- Colors ---

type Color int

const (
	ColorNone Color = 0
	White     Color = 1 << (iota - 1)
	Blue
	Black
	Red
	Green
)

func (c Color) String() string {
	if c == ColorNone {
		return "Colorless"
	}
	var s string
	for _, pair := range []struct {
		c Color
		n string
	}{{White, "W"}, {Blue, "U"}, {Black, "B"}, {Red, "R"}, {Green, "G"}} {
		if c&pair.c != 0 {
			s += pair.n
		}
	}
	return s
}

// --- Card types ---

type CardType int

const (
	TypeCreature CardType = iota
	TypeInstant
	TypeSorcery
	TypeLand
	TypeEnchantment
	TypeArtifact
	TypePlaneswalker
	TypeBattle
)

func (t CardType) String() string {
	switch t {
	case TypeCreature:
		return "Creature"
	case TypeInstant:
		return "Instant"
	case TypeSorcery:
		return "Sorcery"
	case TypeLand:
		return "Land"
	case TypeEnchantment:
		return "Enchantment"
	case TypeArtifact:
		return "Artifact"
	case TypePlaneswalker:
		return "Planeswalker"
	case TypeBattle:
		return "Battle"
	default:
		return "Unknown"
	}
}

// Supertype is a flag set: Basic, Legendary, Snow, World.
type Supertype int

const (
	SuperNone      Supertype = 0
	SuperBasic     Supertype = 1 << (iota - 1)
	SuperLegendary
	SuperSnow
	SuperWorld
)

// --- Zones ---

type ZoneKind int

const (
	ZoneLibrary ZoneKind = iota
	ZoneHand
	ZoneBattlefield
	ZoneGraveyard
	ZoneStack
	ZoneExile
	ZoneCommand
)

func (z ZoneKind) String() string {
	switch z {
	case ZoneLibrary:
		return "Library"
	case ZoneHand:
		return "Hand"
	case ZoneBattlefield:
		return "Battlefield"
	case ZoneGraveyard:
		return "Graveyard"
	case ZoneStack:
		return "Stack"
	case ZoneExile:
		return "Exile"
	case ZoneCommand:
		return "Command"
	default:
		return "Unknown"
	}
}

// --- Turn structure ---

type Phase int

const (
	PhaseBeginning Phase = iota
	PhaseMain1
	PhaseCombat
	PhaseMain2
	PhaseEnding
)

func (p Phase) String() string {
	switch p {
	case PhaseBeginning:
		return "Beginning Phase"
	case PhaseMain1:
		return "Precombat Main Phase"
	case PhaseCombat:
		return "Combat Phase"
	case PhaseMain2:
		return "Postcombat Main Phase"
	case PhaseEnding:
		return "Ending Phase"
	default:
		return "Unknown Phase"
	}
}

type Step int

const (
	StepNone Step = iota
	StepUntap
	StepUpkeep
	StepDraw
	StepBeginCombat
	StepDeclareAttackers
	StepDeclareBlockers
	StepFirstStrikeDamage
	StepCombatDamage
	StepEndCombat
	StepEnd
	StepCleanup
)

func (s Step) String() string {
	switch s {
	case StepUntap:
		return "Untap Step"
	case StepUpkeep:
		return "Upkeep Step"
	case StepDraw:
		return "Draw Step"
	case StepBeginCombat:
		return "Beginning of Combat Step"
	case StepDeclareAttackers:
		return "Declare Attackers Step"
	case StepDeclareBlockers:
		return "Declare Blockers Step"
	case StepFirstStrikeDamage:
		return "First Strike Damage Step"
	case StepCombatDamage:
		return "Combat Damage Step"
	case StepEndCombat:
		return "End of Combat Step"
	case StepEnd:
		return "End Step"
	case StepCleanup:
		return "Cleanup Step"
	default:
		return ""
	}
}

// --- Counters ---

type CounterKind string

const (
	CounterPlusOnePlusOne CounterKind = "+1/+1"
	CounterMinusOneMinusOne CounterKind = "-1/-1"
	CounterLoyalty        CounterKind = "loyalty"
	CounterPoison         CounterKind = "poison" // tracked on the player, not a permanent, but shares the multiset type
)

// --- Keywords ---

// Keyword is a flag set of evergreen abilities recognized by the combat
// manager and SBA engine directly (as opposed to arbitrary rules text,
// which is represented as AbilitySpecs — see ability.go).
type Keyword uint32

const (
	KeywordNone Keyword = 0
	Flying      Keyword = 1 << (iota - 1)
	Reach
	Trample
	Deathtouch
	Lifelink
	Haste
	Vigilance
	Menace
	FirstStrike
	DoubleStrike
	Hexproof
	Shroud
	Defender
	Indestructible
	Flash
)

func (k Keyword) Has(f Keyword) bool { return k&f != 0 }

// Ward is tracked separately because it carries a cost (mana or a
// condition), not just a boolean — see Characteristics.Ward.
type Ward struct {
	Active bool
	Cost   ManaCost
}

// ProtectionFrom is a small flag set of colors (and, loosely, "everything"
// via All) a permanent has protection from.
type ProtectionFrom struct {
	Colors Color
	All    bool
}

func (p ProtectionFrom) ProtectsFrom(c Color) bool {
	return p.All || p.Colors&c != 0
}

// --- Action surface (agent-facing) ---

// ActionKind enumerates the legal actions an Agent may choose during a
// priority round or a combat sub-step.
type ActionKind int

const (
	ActionPass ActionKind = iota
	ActionPlayLand
	ActionCastSpell
	ActionActivateAbility
	ActionSpecialAction
)

func (a ActionKind) String() string {
	switch a {
	case ActionPass:
		return "Pass"
	case ActionPlayLand:
		return "Play Land"
	case ActionCastSpell:
		return "Cast Spell"
	case ActionActivateAbility:
		return "Activate Ability"
	case ActionSpecialAction:
		return "Special Action"
	default:
		return "Unknown Action"
	}
}

// ActionChoice is what an Agent returns from PriorityAction.
type ActionChoice struct {
	Kind      ActionKind
	AbilityIx int             // which ability on the source object, for ActionActivateAbility
	Targets   []ObjectID      // Targets[0] is the land to play, card to cast, or permanent whose ability is activated
	Modes     []int           // chosen modes for a modal spell
	X         int             // chosen X value
	Desc      string          // human-readable description, for display/logging
}

func (a ActionChoice) String() string {
	if a.Desc != "" {
		return a.Desc
	}
	return a.Kind.String()
}
