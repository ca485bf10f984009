package game

// Characteristics is the immutable, as-printed value record for a card:
// layer 0 of the continuous-effects model starts from a copy of this.
// Characteristics never mutate in place — layer application always starts
// from a fresh copy of the object's Characteristics and applies layers 1-7
// on top, per spec.md §4.6 (continuous effects / layers).
type Characteristics struct {
	Name       string
	Types      []CardType
	Super      Supertype
	Colors     Color
	ManaCost   ManaCost
	Power      int
	Toughness  int
	Loyalty    int
	Defense    int // battle cards
	Keywords   Keyword
	Ward       Ward
	Protection ProtectionFrom
	CantAttack bool
	CantBlock  bool
	Text       string
	Abilities  []AbilitySpec
}

// HasType reports whether t is among Types.
func (c Characteristics) HasType(t CardType) bool {
	for _, ct := range c.Types {
		if ct == t {
			return true
		}
	}
	return false
}

// AttackTarget names what an attacker is attacking: either a player
// directly, or a planeswalker/battle permanent that player controls.
// Kept as a tagged struct rather than a single ObjectID because PlayerID
// and ObjectID are both small integers and would otherwise collide.
type AttackTarget struct {
	IsPlayer bool
	Player   PlayerID
	Object   ObjectID
}

// CombatRole records a permanent's role for the current combat, reset at
// end of combat by the turn manager.
type CombatRole struct {
	Attacking     bool
	AttackTarget  AttackTarget
	Blocking      bool
	Blocked       []ObjectID // permanents this one is blocking (multi-block)
	BlockedBy     []ObjectID // permanents blocking this one
	DamageAssigned bool
}

// Counter is one entry in a permanent's counter multiset.
type Counter struct {
	Kind  CounterKind
	Count int
}

// Attachment records that this permanent is attached to another (Aura,
// Equipment, Fortification) or, read the other direction, what is
// attached to it.
type Attachment struct {
	AttachedTo ObjectID // 0 if this object is not attached to anything
	Attached   []ObjectID
}

// Permanent is the mutable state a GameObject carries while it sits on the
// battlefield: everything here is reset or recomputed at well-defined
// points (untap step, cleanup step, SBA pass) rather than living forever.
type Permanent struct {
	Tapped             bool
	FaceDown           bool
	Phased             bool
	SummoningSickness  bool
	DamageMarked       int
	Counters           []Counter
	Attachment         Attachment
	Combat             CombatRole
	RegenerationShield int // number of pending regeneration shields
	DeathtouchMarked   bool // took damage from a deathtouch source this turn, for the SBA 704.5h check
	Controller         PlayerID
	TurnEnteredBattlefield int
}

// CounterCount returns the net count of kind on this permanent.
func (p *Permanent) CounterCount(kind CounterKind) int {
	for _, c := range p.Counters {
		if c.Kind == kind {
			return c.Count
		}
	}
	return 0
}

// AddCounters adds n counters of kind (n may be negative to remove). The
// +1/+1-vs--1/-1 annihilation rule is not applied here; the SBA pass
// applies it through AnnihilateCounters.
func (p *Permanent) AddCounters(kind CounterKind, n int) {
	for i := range p.Counters {
		if p.Counters[i].Kind == kind {
			p.Counters[i].Count += n
			return
		}
	}
	p.Counters = append(p.Counters, Counter{Kind: kind, Count: n})
}

// AnnihilateCounters applies CR 704.5q: a permanent with both +1/+1 and
// -1/-1 counters loses equal numbers of each until at least one kind hits
// zero. Called for every permanent on each SBA pass.
func (p *Permanent) AnnihilateCounters() {
	plus := p.CounterCount(CounterPlusOnePlusOne)
	minus := p.CounterCount(CounterMinusOneMinusOne)
	if plus == 0 || minus == 0 {
		return
	}
	n := plus
	if minus < n {
		n = minus
	}
	p.AddCounters(CounterPlusOnePlusOne, -n)
	p.AddCounters(CounterMinusOneMinusOne, -n)
}

// ObjectKind discriminates the tagged union a GameObject represents.
type ObjectKind int

const (
	ObjectCard ObjectKind = iota
	ObjectPermanent
	ObjectSpellOnStack
	ObjectStackedAbility
	ObjectToken
)

func (k ObjectKind) String() string {
	switch k {
	case ObjectCard:
		return "Card"
	case ObjectPermanent:
		return "Permanent"
	case ObjectSpellOnStack:
		return "SpellOnStack"
	case ObjectStackedAbility:
		return "StackedAbility"
	case ObjectToken:
		return "Token"
	default:
		return "Unknown"
	}
}

// StackEntryInfo holds the fields that only apply while an object sits on
// the stack as a spell or activated/triggered ability.
type StackEntryInfo struct {
	Controller PlayerID
	Targets    []ObjectID
	ChosenX    int
	ChosenModes []int
	Copy       bool // true for a copy of a spell/ability, never itself copiable further in ways that matter
	SourceAbilityIx int // index into the source object's Characteristics.Abilities, for stacked abilities

	// SourceObject is the permanent that generated a stacked ability — the
	// stack entry itself (ObjectStackedAbility) is an ephemeral copy with no
	// Permanent, so a Resolve closure that needs the real source's
	// Permanent/Controller (equip, a triggered ability reading its own
	// controller) must be given this id instead of the stack entry's own.
	// Zero for spells, where the stacked object IS the real spell/permanent-
	// to-be and Resolve is handed its own id directly.
	SourceObject ObjectID
}

// GameObject is the single representation for everything the rules track:
// a library/hand/graveyard/exile card, a battlefield permanent, or a spell
// or ability on the stack. Kind discriminates which payload is meaningful,
// following the teacher's tagged-union-via-struct convention (no
// subclassing) rather than an interface hierarchy, so the arena
// (game.go's Game.objects map) can hold one concrete type.
type GameObject struct {
	ID        ObjectID
	Kind      ObjectKind
	Owner     PlayerID
	Zone      ZoneKind
	ZoneIndex int // position within its zone's ordered list, maintained by zone.go

	// Print is the object's as-printed characteristics; Current is
	// recomputed by the layer engine every time state is queried after a
	// change (see layer.go). Tokens populate Print directly at creation
	// since they have no backing card.
	Print   Characteristics
	Current Characteristics

	Timestamp Timestamp // when this object entered its current zone, for layer/dependency ordering

	// Permanent is non-nil only while Zone == ZoneBattlefield.
	Permanent *Permanent

	// Stack is non-nil only while Zone == ZoneStack.
	Stack *StackEntryInfo

	// TokenSource, if non-empty, names the effect that created this token,
	// for display purposes only.
	TokenSource string
}

// PlayerObjectID encodes a player as a target id in the same ObjectID
// space spells/abilities choose targets from ("any target" includes
// players as well as battlefield permanents). Player-encoded ids are
// always negative, real arena ids are always positive (NextObjectID never
// hands out 0 or below), so the two spaces can never collide.
func PlayerObjectID(p PlayerID) ObjectID { return ObjectID(-1 - int(p)) }

// AsPlayerTarget decodes an id produced by PlayerObjectID, reporting
// whether id actually names a player rather than an arena object.
func AsPlayerTarget(id ObjectID) (PlayerID, bool) {
	if id < 0 {
		return PlayerID(-1 - int(id)), true
	}
	return 0, false
}

// IsPermanent reports whether this object currently sits on the battlefield.
func (o *GameObject) IsPermanent() bool { return o.Zone == ZoneBattlefield && o.Permanent != nil }

// IsOnStack reports whether this object currently sits on the stack.
func (o *GameObject) IsOnStack() bool { return o.Zone == ZoneStack && o.Stack != nil }

// Power/Toughness convenience accessors read from Current, which the layer
// engine keeps up to date; callers must not read Print.Power directly for
// gameplay decisions since it ignores all continuous effects.
func (o *GameObject) Power() int     { return o.Current.Power }
func (o *GameObject) Toughness() int { return o.Current.Toughness }

// Dead reports whether a creature permanent has lethal damage or
// non-positive toughness — the conditions of SBA 704.5g/704.5f. sba.go
// checks these inline rather than through this method.
func (o *GameObject) Dead() bool {
	if !o.IsPermanent() || !o.Current.HasType(TypeCreature) {
		return false
	}
	if o.Current.Toughness <= 0 {
		return true
	}
	return o.Permanent.DamageMarked >= o.Current.Toughness
}
