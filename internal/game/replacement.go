package game

// ReplacementEvent is the event a ReplacementEffect may intercept, modeled
// as a small closed set rather than reusing event.Type: replacement
// effects apply BEFORE an event happens and can change its parameters
// (CR 616), which is a different contract from the event bus's
// after-the-fact Publish.
type ReplacementEvent int

const (
	ReplaceDamage ReplacementEvent = iota
	ReplaceDraw
	ReplaceZoneChange // covers "dies" replacements like regeneration and totem armor
	ReplaceLifeGain
	ReplaceLifeLoss
	ReplaceEntersBattlefield // e.g. "enters tapped", "enters with a counter"
)

// DamageEvent is the mutable payload a damage replacement may rewrite.
type DamageEvent struct {
	Source      ObjectID
	Target      ObjectID
	Amount      int
	Combat      bool
	Prevented   bool
}

// ZoneChangeEvent is the mutable payload a "moves to graveyard" style
// replacement may rewrite (regeneration, totem armor, "exile instead").
type ZoneChangeEvent struct {
	Object   ObjectID
	From     ZoneKind
	To       ZoneKind
	Replaced bool
}

// ReplacementEffect is one registered effect. Apply mutates its typed
// payload (passed as `any`, asserted by the caller for the matching
// ReplacementEvent) and returns whether it actually applied -- multiple
// replacement effects on the same event are offered to the affected
// player/object's controller to order, per CR 616.1; the engine here
// applies them in registration order, documented as a simplification for
// the common case of at most one or two simultaneous replacements (see
// DESIGN.md).
type ReplacementEffect struct {
	Source ObjectID
	Event  ReplacementEvent
	Affects func(g *Game, payload any) bool
	Apply   func(g *Game, payload any) any
	OneShot bool // consumed after a single application, e.g. a single regeneration shield
	used    bool
}

// ReplacementTable holds every active replacement/prevention effect.
type ReplacementTable struct {
	effects []*ReplacementEffect
}

func NewReplacementTable() *ReplacementTable { return &ReplacementTable{} }

// Install registers a replacement effect.
func (r *ReplacementTable) Install(e *ReplacementEffect) { r.effects = append(r.effects, e) }

// RemoveBySource drops every effect installed by src (its permanent left
// the battlefield, or a one-shot "prevent the next damage" effect expired).
func (r *ReplacementTable) RemoveBySource(src ObjectID) {
	kept := r.effects[:0]
	for _, e := range r.effects {
		if e.Source != src {
			kept = append(kept, e)
		}
	}
	r.effects = kept
}

// Apply runs every matching, not-yet-used replacement effect against
// payload in registration order, returning the (possibly rewritten)
// payload and whether anything replaced it.
func (r *ReplacementTable) Apply(g *Game, kind ReplacementEvent, payload any) (any, bool) {
	applied := false
	for _, e := range r.effects {
		if e.Event != kind || e.used {
			continue
		}
		if !e.Affects(g, payload) {
			continue
		}
		payload = e.Apply(g, payload)
		applied = true
		if e.OneShot {
			e.used = true
		}
	}
	if applied {
		kept := r.effects[:0]
		for _, e := range r.effects {
			if !(e.used && e.OneShot) {
				kept = append(kept, e)
			}
		}
		r.effects = kept
	}
	return payload, applied
}
