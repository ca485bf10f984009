package game

import "github.com/aldenvale/mtgkernel/internal/event"

// PutOnStack moves an already-paid-for spell or ability object onto the
// shared stack zone, recording its controller/targets/chosen values.
func (g *Game) PutOnStack(o *GameObject, entry StackEntryInfo) {
	o.Zone = ZoneStack
	o.Stack = &entry
	o.Timestamp = g.Layers.NextTimestamp()
	g.registerObject(o)
	g.StackZone.Append(o.ID)
}

// TopOfStack returns the object id due to resolve next, or 0 if the stack
// is empty.
func (g *Game) TopOfStack() (ObjectID, bool) { return g.StackZone.TopOfStack() }

// isPermanentSpellType reports whether a resolving spell's printed types
// make it a permanent spell (CR 601.2i): it becomes a permanent as part of
// resolving, rather than going to the graveyard like an instant/sorcery.
func isPermanentSpellType(c Characteristics) bool {
	return c.HasType(TypeCreature) || c.HasType(TypeArtifact) || c.HasType(TypeEnchantment) ||
		c.HasType(TypePlaneswalker) || c.HasType(TypeBattle)
}

// ResolveTop pops and resolves the top stack object: re-checks target
// legality (CR 608.2b — an illegal target fizzles the whole spell/ability
// unless it had other legal targets, handled per-target here by skipping
// only the now-illegal ones and letting Resolve decide what "fizzle"
// means for that ability), puts a permanent spell onto the battlefield
// (CR 601.2i — before its own Resolve runs, so e.g. an Aura's Resolve finds
// itself already a permanent with a Permanent/Controller to attach from),
// then invokes its Resolve closure, then moves a non-permanent spell to
// its owner's graveyard.
func (g *Game) ResolveTop() {
	id, ok := g.StackZone.PopStack()
	if !ok {
		return
	}
	obj := g.Object(id)
	if obj == nil || obj.Stack == nil {
		return
	}

	legal := g.legalRemainingTargets(obj)
	if len(obj.Stack.Targets) > 0 && len(legal) == 0 {
		g.fizzle(obj)
		return
	}
	obj.Stack.Targets = legal

	ability := g.sourceAbility(obj)
	resolveSource := obj.ID
	if obj.Kind == ObjectStackedAbility && obj.Stack.SourceObject != 0 {
		resolveSource = obj.Stack.SourceObject
	}
	stackEntry := *obj.Stack

	// CR 603.4: an intervening-if clause is checked again on resolution; if
	// it no longer holds, the ability does nothing.
	if obj.Kind == ObjectStackedAbility && ability != nil && ability.IntervalCheck != nil && !ability.IntervalCheck(g, resolveSource) {
		delete(g.objects, obj.ID)
		return
	}

	if obj.Kind == ObjectSpellOnStack && isPermanentSpellType(obj.Current) {
		g.enterBattlefield(obj, stackEntry.Controller)
		obj.Stack = nil
	}

	if ability != nil && ability.Resolve != nil {
		ability.Resolve(g, resolveSource, stackEntry)
	}
	g.Bus.Publish(event.Event{Turn: g.Turn, Phase: g.Phase.String(), Type: event.StackResolved, Source: int(obj.ID)})

	if obj.Kind == ObjectSpellOnStack && !obj.Current.HasType(TypeLand) {
		g.moveToGraveyard(obj)
	} else if obj.Kind == ObjectStackedAbility {
		delete(g.objects, obj.ID)
	}
}

func (g *Game) fizzle(obj *GameObject) {
	g.Bus.Publish(event.Event{Turn: g.Turn, Phase: g.Phase.String(), Type: event.StackFizzled, Source: int(obj.ID)})
	if obj.Kind == ObjectSpellOnStack {
		g.moveToGraveyard(obj)
	} else {
		delete(g.objects, obj.ID)
	}
}

func (g *Game) moveToGraveyard(obj *GameObject) {
	owner := g.Players[obj.Owner]
	obj.Zone = ZoneGraveyard
	obj.Stack = nil
	obj.Timestamp = g.Layers.NextTimestamp()
	owner.Graveyard.Append(obj.ID)
	g.Bus.Publish(event.Event{Turn: g.Turn, Phase: g.Phase.String(), Type: event.ZoneChange, Source: int(obj.ID), FromZone: "Stack", Zone: "Graveyard"})
}

// legalRemainingTargets filters a stack object's chosen targets down to
// those still legal (still exist, still match any restriction), used to
// detect fizzle at resolution time per CR 608.2b.
func (g *Game) legalRemainingTargets(obj *GameObject) []ObjectID {
	var allowed map[ObjectID]bool
	if ab := g.sourceAbility(obj); ab != nil && ab.LegalTargets != nil {
		src := obj.ID
		if obj.Stack.SourceObject != 0 {
			src = obj.Stack.SourceObject
		}
		allowed = make(map[ObjectID]bool)
		for _, id := range ab.LegalTargets(g, src, obj.Stack.Controller) {
			allowed[id] = true
		}
	}
	var out []ObjectID
	for _, t := range obj.Stack.Targets {
		if allowed != nil && !allowed[t] {
			continue
		}
		if p, ok := AsPlayerTarget(t); ok {
			if !g.Players[p].Lost {
				out = append(out, t)
			}
			continue
		}
		target := g.Object(t)
		if target == nil {
			continue
		}
		if target.Zone == ZoneBattlefield || target.Zone == ZoneStack {
			out = append(out, t)
		}
	}
	return out
}

// sourceAbility resolves which AbilitySpec governs a stack object's
// resolution: index SourceAbilityIx for an ability, or ability index 0 —
// a spell's own effect, conventionally stored as Abilities[0] — for a
// spell, or nil when that entry is an ability of the permanent the spell
// becomes rather than a spell effect (see isSpellAbility).
func (g *Game) sourceAbility(obj *GameObject) *AbilitySpec {
	if obj.Stack == nil {
		return nil
	}
	if obj.Kind == ObjectSpellOnStack {
		if len(obj.Current.Abilities) == 0 || !isSpellAbility(obj.Current.Abilities[0]) {
			return nil
		}
		return &obj.Current.Abilities[0]
	}
	ix := obj.Stack.SourceAbilityIx
	if ix < 0 || ix >= len(obj.Current.Abilities) {
		return nil
	}
	return &obj.Current.Abilities[ix]
}

// isSpellAbility reports whether ab is a spell's own effect rather than an
// ability the card has as a permanent (a triggered, activated or mana
// ability, or a static ability that installs a continuous effect).
func isSpellAbility(ab AbilitySpec) bool {
	return ab.Kind == AbilityStatic && ab.ContinuousApply == nil
}
