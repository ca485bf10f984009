package game

// AbilityKind classifies an AbilitySpec the way CR 113.3 does: static,
// triggered, activated, or a mana ability (a subcategory of activated,
// tracked separately since mana abilities don't use the stack).
type AbilityKind int

const (
	AbilityStatic AbilityKind = iota
	AbilityTriggered
	AbilityActivated
	AbilityMana
)

func (k AbilityKind) String() string {
	switch k {
	case AbilityStatic:
		return "Static"
	case AbilityTriggered:
		return "Triggered"
	case AbilityActivated:
		return "Activated"
	case AbilityMana:
		return "Mana"
	default:
		return "Unknown"
	}
}

// TriggerEvent names the moment a triggered ability watches for. The
// trigger manager (trigger.go) subscribes every object's triggered
// AbilitySpecs to the event bus by matching on these values.
type TriggerEvent int

const (
	TriggerNone TriggerEvent = iota
	TriggerEntersBattlefield
	TriggerLeavesBattlefield
	TriggerDies
	TriggerUpkeep
	TriggerEndStep
	TriggerDrawStep
	TriggerAttacks
	TriggerBlocks
	TriggerDealsCombatDamage
	TriggerDealsDamage
	TriggerBecomesTargeted
	TriggerSpellCast
	TriggerLandPlayed
	TriggerCounterAdded
	TriggerZoneChange
	TriggerControlChanged
)

// Cost is a whole activation/cast cost: its mana part plus the non-mana
// components (tap, sacrifice, discard, life payment, exile, or an
// arbitrary effect-defined cost).
type Cost struct {
	Mana       ManaCost
	Tap        bool
	SacrificeSelf bool
	Life       int
	DiscardN   int
	ExileFromHandN int
	Other      string // free-text, resolved by Pay closure when present
}

// AbilitySpec is a data-as-closures description of one ability a card or
// token carries, generalizing the teacher's CardEffect struct (itself
// built from function-typed fields) from a single duel-specific shape to
// the full CR ability taxonomy. Every function field may be nil; nil
// means "no restriction" / "nothing extra happens" at that hook.
type AbilitySpec struct {
	Kind AbilityKind

	// CanActivate reports whether the ability may currently be activated by
	// its controller (timing restrictions, e.g. sorcery-speed only).
	CanActivate func(g *Game, source ObjectID, controller PlayerID) bool

	// Cost is the static cost; AdditionalCost lets effects like kicker or
	// X-cost abilities compute a cost dependent on chosen X/modes.
	Cost           Cost
	AdditionalCost func(g *Game, source ObjectID, choice ActionChoice) Cost

	// LegalTargets, when non-nil, returns the legal target set; an activation or
	// cast with no legal targets where targets are required cannot be put
	// on the stack (CR 601.2c / 602.2b).
	LegalTargets func(g *Game, source ObjectID, controller PlayerID) []ObjectID
	MinTargets   int
	MaxTargets   int

	// Resolve performs the ability's effect once it resolves off the stack.
	Resolve func(g *Game, source ObjectID, entry StackEntryInfo)

	// Trigger fields, meaningful when Kind == AbilityTriggered.
	TriggerOn      TriggerEvent
	TriggerFilter  func(g *Game, source ObjectID, e TriggerEventData) bool
	IsMandatory    bool
	IntervalCheck  func(g *Game, source ObjectID) bool // "intervening if" clause, re-checked at trigger time AND resolution

	// ContinuousApply installs a layer-engine effect while source is on the
	// battlefield; non-nil only for AbilityStatic entries that grant
	// continuous effects (as opposed to static abilities with no
	// characteristic-altering component, e.g. "can't be blocked").
	ContinuousApply *ContinuousEffect

	// ManaProduce is set for AbilityMana: what mana is added, bypassing the
	// stack entirely per CR 605.
	ManaProduce func(g *Game, source ObjectID, choice ActionChoice) []ManaUnit

	Text string
}

// TriggerEventData is the payload a TriggerFilter inspects, generalizing
// event.Event with the object-id fields ability conditions actually need.
type TriggerEventData struct {
	Object    ObjectID
	Player    PlayerID
	Amount    int
	FromZone  ZoneKind
	ToZone    ZoneKind
	Attacker  ObjectID
	Blocker   ObjectID
}
