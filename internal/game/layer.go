package game

import "sort"

// LayerKind is CR 613's seven layers (7 is split into sublayers 7a-7e by
// convention, here encoded directly as Layer7a..Layer7e so ordering
// within "layer 7" stays a single walk over LayerKind).
type LayerKind int

const (
	Layer1CopyEffects LayerKind = iota
	Layer2ControlChanging
	Layer3TextChanging
	Layer4TypeChanging
	Layer5ColorChanging
	Layer6AbilityAdding
	Layer7aCDA            // characteristic-defining abilities (e.g. */* power-toughness)
	Layer7bPTSetting      // effects that set P/T to specific values
	Layer7cPTModifying    // effects that modify P/T (+N/+N, etc.)
	Layer7dPTCounters     // +1/+1 and -1/-1 counters
	Layer7eSwitchPT       // "switch power and toughness"
)

// ContinuousEffect is one entry the layer engine applies every time object
// state is recomputed. Source/Timestamp drive CR 613.7's dependency and
// timestamp ordering; Duration lets the effect expire on its own (e.g.
// "until end of turn") without a separate cleanup pass remembering it.
type ContinuousEffect struct {
	Layer     LayerKind
	Source    ObjectID
	Timestamp Timestamp
	// Affects/Apply receive the effect itself so a closure can read back
	// Source (e.g. "who is the Lord Thaddeus granting this buff") without
	// needing to capture an object id that isn't known until the
	// permanent carrying the static ability actually enters the
	// battlefield (see installStaticAbilities in cast.go).
	Affects func(g *Game, eff *ContinuousEffect, target ObjectID) bool
	Apply   func(g *Game, eff *ContinuousEffect, target ObjectID, c Characteristics) Characteristics
	Duration EffectDuration
}

// EffectDuration says when a continuous effect stops applying.
type EffectDuration int

const (
	DurationWhileOnBattlefield EffectDuration = iota // tied to Source remaining a permanent
	DurationEndOfTurn
	DurationEndOfCombat
	DurationPermanent // never removed: keeps applying even after the source leaves (e.g. some auras' effects)
)

// LayerEngine holds every currently-active ContinuousEffect and recomputes
// GameObject.Current for every object whenever asked. Recomputation is
// idempotent and stateless beyond the registered effects list: Current is
// always derived fresh from Print, never mutated incrementally, which is
// what makes layer application safe to run repeatedly during a single
// priority round.
type LayerEngine struct {
	effects []*ContinuousEffect
	clock   Timestamp
}

// NewLayerEngine creates an empty layer engine.
func NewLayerEngine() *LayerEngine { return &LayerEngine{} }

// NextTimestamp hands out a strictly increasing timestamp, shared with
// zone-entry stamping (object.go's GameObject.Timestamp) so layer order and
// "which entered the battlefield more recently" use one monotonic clock
// (invariant I4).
func (e *LayerEngine) NextTimestamp() Timestamp {
	e.clock++
	return e.clock
}

// Install registers a continuous effect.
func (e *LayerEngine) Install(eff *ContinuousEffect) {
	if eff.Timestamp == 0 {
		eff.Timestamp = e.NextTimestamp()
	}
	e.effects = append(e.effects, eff)
}

// RemoveBySource removes every effect whose Source is src and whose
// Duration is DurationWhileOnBattlefield — called when src leaves the
// battlefield. Effects with any other Duration stay registered and
// Recompute keeps applying them: DurationPermanent ones indefinitely,
// EndOfTurn/EndOfCombat ones until ExpireTemporary drops them.
func (e *LayerEngine) RemoveBySource(src ObjectID) {
	kept := e.effects[:0]
	for _, eff := range e.effects {
		if eff.Source == src && eff.Duration == DurationWhileOnBattlefield {
			continue
		}
		kept = append(kept, eff)
	}
	e.effects = kept
}

// ExpireTemporary drops every EndOfTurn/EndOfCombat effect; called by the
// turn manager at cleanup (end of turn) or end of combat respectively.
func (e *LayerEngine) ExpireTemporary(d EffectDuration) {
	kept := e.effects[:0]
	for _, eff := range e.effects {
		if eff.Duration == d {
			continue
		}
		kept = append(kept, eff)
	}
	e.effects = kept
}

// Recompute derives Current for every object in play from Print, applying
// every active effect in layer order, and within each layer in timestamp
// order (CR 613.6), skipping dependency reordering for the common case
// (apply-order loops are rare enough in a sample card set that a full
// CR 613.8 dependency graph is out of scope — see DESIGN.md).
func (e *LayerEngine) Recompute(g *Game) {
	byLayer := make(map[LayerKind][]*ContinuousEffect)
	for _, eff := range e.effects {
		byLayer[eff.Layer] = append(byLayer[eff.Layer], eff)
	}
	order := []LayerKind{
		Layer1CopyEffects, Layer2ControlChanging, Layer3TextChanging,
		Layer4TypeChanging, Layer5ColorChanging, Layer6AbilityAdding,
		Layer7aCDA, Layer7bPTSetting, Layer7cPTModifying, Layer7dPTCounters, Layer7eSwitchPT,
	}

	for _, obj := range g.objects {
		if obj.Zone != ZoneBattlefield && obj.Zone != ZoneStack {
			continue
		}
		obj.Current = obj.Print
	}

	for _, layer := range order {
		effs := byLayer[layer]
		sort.SliceStable(effs, func(i, j int) bool { return effs[i].Timestamp < effs[j].Timestamp })
		for _, eff := range effs {
			for _, obj := range g.objects {
				if obj.Zone != ZoneBattlefield && obj.Zone != ZoneStack {
					continue
				}
				if !eff.Affects(g, eff, obj.ID) {
					continue
				}
				obj.Current = eff.Apply(g, eff, obj.ID, obj.Current)
			}
		}
		if layer == Layer7dPTCounters {
			for _, obj := range g.objects {
				if obj.Permanent == nil {
					continue
				}
				plus := obj.Permanent.CounterCount(CounterPlusOnePlusOne)
				minus := obj.Permanent.CounterCount(CounterMinusOneMinusOne)
				obj.Current.Power += plus - minus
				obj.Current.Toughness += plus - minus
			}
		}
	}
}
