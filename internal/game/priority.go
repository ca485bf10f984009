package game

// RunPriorityLoop implements CR 117: starting with startingPlayer, each
// player in turn order is offered priority. A pass by both players in
// succession with an empty stack ends the step/phase; a pass by both with
// a non-empty stack resolves the top of the stack and priority starts over
// with the active player. State-based actions are checked to a fixed point
// and any newly pending triggers are stacked (APNAP order) before anyone
// is ever offered priority, exactly as the teacher's openResponseWindow
// loops pass/activate until two consecutive passes, generalized here to
// also drain triggers and run SBAs between every action.
func (g *Game) RunPriorityLoop(startingPlayer PlayerID) {
	g.PriorityPlayer = startingPlayer
	g.passes = 0

	for {
		g.settleStateAndTriggers()

		if g.Over {
			return
		}

		legal := g.legalActionsFor(g.PriorityPlayer)
		choice := g.Players[g.PriorityPlayer].Agent.PriorityAction(g, legal)

		if choice.Kind == ActionPass {
			g.passes++
			g.PriorityPlayer = g.Opponent(g.PriorityPlayer)
			if g.passes >= 2 {
				if _, ok := g.TopOfStack(); ok {
					g.ResolveTop()
					g.passes = 0
					g.PriorityPlayer = g.ActivePlayer
					continue
				}
				return // step/phase ends
			}
			continue
		}

		g.passes = 0
		g.performAction(g.PriorityPlayer, choice)
		g.PriorityPlayer = g.ActivePlayer // priority returns to AP after any action resolves onto the stack, CR 117.3c
	}
}

// settleStateAndTriggers repeatedly runs state-based actions and stacks
// any pending triggers until both are quiescent, per CR 704.3/603.3 — the
// "SBA/trigger loop" that happens before any player is ever asked for an
// action.
func (g *Game) settleStateAndTriggers() {
	for {
		changed := g.CheckStateBasedActions()
		if g.Over {
			return
		}
		if g.Trigger.HasPending() {
			for _, pt := range g.Trigger.DrainAPNAP() {
				g.stackTrigger(pt)
			}
			changed = true
		}
		if !changed {
			return
		}
	}
}

func (g *Game) stackTrigger(pt PendingTrigger) {
	src := g.Object(pt.Source)
	if src == nil {
		return
	}
	copyObj := &GameObject{
		Kind:    ObjectStackedAbility,
		Owner:   pt.Controller,
		Print:   src.Current,
		Current: src.Current,
	}
	g.PutOnStack(copyObj, StackEntryInfo{Controller: pt.Controller, SourceAbilityIx: pt.AbilityIx, SourceObject: pt.Source})
}

// legalActionsFor computes the full set of actions a player may currently
// take: passing, playing a land (sorcery-speed, main phase, empty stack,
// once per turn), casting any castable spell, and activating any
// currently-activatable ability.
func (g *Game) legalActionsFor(p PlayerID) []ActionChoice {
	actions := []ActionChoice{{Kind: ActionPass}}
	player := g.Players[p]

	if g.canPlayLand(p) {
		for _, id := range player.Hand.IDs() {
			obj := g.Object(id)
			if obj != nil && obj.Current.HasType(TypeLand) {
				actions = append(actions, ActionChoice{Kind: ActionPlayLand, Targets: []ObjectID{id}, Desc: "Play " + obj.Current.Name})
			}
		}
	}

	for _, id := range player.Hand.IDs() {
		obj := g.Object(id)
		if obj == nil || obj.Current.HasType(TypeLand) {
			continue
		}
		if g.CanCastSorcerySpeed(p) || g.isInstantSpeed(obj) {
			actions = append(actions, ActionChoice{Kind: ActionCastSpell, Targets: []ObjectID{id}, Desc: "Cast " + obj.Current.Name})
		}
	}

	for _, obj := range g.Objects() {
		if !obj.IsPermanent() || obj.Permanent.Controller != p {
			continue
		}
		for ix, ab := range obj.Current.Abilities {
			if ab.Kind != AbilityActivated && ab.Kind != AbilityMana {
				continue
			}
			if ab.CanActivate != nil && !ab.CanActivate(g, obj.ID, p) {
				continue
			}
			actions = append(actions, ActionChoice{Kind: ActionActivateAbility, Targets: []ObjectID{obj.ID}, AbilityIx: ix, Desc: "Activate " + obj.Current.Name})
		}
	}
	return actions
}

func (g *Game) canPlayLand(p PlayerID) bool {
	player := g.Players[p]
	if player.LandPlayedThisTurn || p != g.ActivePlayer {
		return false
	}
	if g.Phase != PhaseMain1 && g.Phase != PhaseMain2 {
		return false
	}
	if _, ok := g.TopOfStack(); ok {
		return false
	}
	return true
}

// CanCastSorcerySpeed reports whether p may currently cast a sorcery-speed
// spell: their main phase, their turn, empty stack (CR 307.4/601.2).
func (g *Game) CanCastSorcerySpeed(p PlayerID) bool {
	if p != g.ActivePlayer {
		return false
	}
	if g.Phase != PhaseMain1 && g.Phase != PhaseMain2 {
		return false
	}
	_, stackNonEmpty := g.TopOfStack()
	return !stackNonEmpty
}

func (g *Game) isInstantSpeed(obj *GameObject) bool {
	return obj.Current.HasType(TypeInstant) || obj.Current.Keywords.Has(Flash)
}
