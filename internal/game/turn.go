package game

import "github.com/aldenvale/mtgkernel/internal/event"

// Run drives the game loop until Over is set: untap, upkeep, draw, two
// main phases around a combat phase, end, cleanup, repeated with the
// active player alternating, generalizing the teacher's Duel.Run/runTurn
// from a fixed single-phase-per-call shape to the full CR 500 turn
// structure with priority at every step.
func (g *Game) Run() {
	for !g.Over {
		g.runTurn()
		if g.Config.MaxTurns > 0 && g.Turn >= g.Config.MaxTurns && !g.Over {
			g.Over = true
			g.Result = "turn-limit"
			g.Bus.Publish(event.Event{Turn: g.Turn, Type: event.GameEnded, Details: g.Result})
		}
	}
}

func (g *Game) runTurn() {
	g.Turn++
	for _, p := range g.Players {
		p.LandPlayedThisTurn = false
	}
	g.Bus.Publish(event.Event{Turn: g.Turn, Type: event.TurnStart, Player: int(g.ActivePlayer)})

	g.runPhase(PhaseBeginning, []Step{StepUntap, StepUpkeep, StepDraw})
	if g.Over {
		return
	}
	g.runPhase(PhaseMain1, nil)
	if g.Over {
		return
	}
	g.runPhase(PhaseCombat, []Step{StepBeginCombat, StepDeclareAttackers, StepDeclareBlockers, StepFirstStrikeDamage, StepCombatDamage, StepEndCombat})
	if g.Over {
		return
	}
	g.runPhase(PhaseMain2, nil)
	if g.Over {
		return
	}
	g.runPhase(PhaseEnding, []Step{StepEnd, StepCleanup})
	if g.Over {
		return
	}

	g.Bus.Publish(event.Event{Turn: g.Turn, Type: event.TurnEnd, Player: int(g.ActivePlayer)})
	g.ActivePlayer = g.Opponent(g.ActivePlayer)
}

func (g *Game) runPhase(phase Phase, steps []Step) {
	g.Phase = phase
	g.Bus.Publish(event.Event{Turn: g.Turn, Phase: phase.String(), Type: event.PhaseStart, Player: int(g.ActivePlayer)})

	if len(steps) == 0 {
		g.Step = StepNone
		g.runStepBody()
		g.emptyManaPools()
		return
	}
	for _, step := range steps {
		g.Step = step
		g.Bus.Publish(event.Event{Turn: g.Turn, Phase: phase.String(), Type: event.StepStart, Player: int(g.ActivePlayer), Details: step.String()})
		g.runStep(step)
		g.emptyManaPools()
		if g.Over {
			return
		}
	}
}

// emptyManaPools drains every player's mana pool, per the "mana empties at
// the end of each step and phase" rule; called after every step/no-step
// phase body runs, whether or not priority was actually offered during it.
func (g *Game) emptyManaPools() {
	for _, p := range g.Players {
		p.Mana.Empty()
	}
}

func (g *Game) runStep(step Step) {
	switch step {
	case StepUntap:
		g.untapStep()
		return // CR 502.3: no priority during untap
	case StepUpkeep:
		g.Bus.Publish(event.Event{Turn: g.Turn, Type: event.BeginningOfUpkeep, Player: int(g.ActivePlayer)})
	case StepDraw:
		g.Draw(g.ActivePlayer, 1)
	case StepDeclareAttackers:
		g.declareAttackersStep()
	case StepDeclareBlockers:
		g.declareBlockersStep()
	case StepFirstStrikeDamage:
		if !g.anyFirstOrDoubleStrike() {
			return
		}
		g.combatDamageStep(true)
	case StepCombatDamage:
		g.combatDamageStep(false)
	case StepEnd:
		g.Bus.Publish(event.Event{Turn: g.Turn, Type: event.BeginningOfEndStep, Player: int(g.ActivePlayer)})
		if g.HasMonarch && g.MonarchID == g.ActivePlayer {
			g.Draw(g.MonarchID, 1)
		}
	case StepEndCombat:
		g.runStepBody()
		// CR 511.3: as the end of combat step ends, creatures leave combat
		// and "until end of combat" effects end.
		for _, id := range g.Battlefield.IDs() {
			if obj := g.Object(id); obj != nil && obj.Permanent != nil {
				obj.Permanent.Combat = CombatRole{}
			}
		}
		g.Layers.ExpireTemporary(DurationEndOfCombat)
		g.Layers.Recompute(g)
		return
	case StepCleanup:
		g.cleanupStep()
		// CR 514.3: no priority during cleanup unless a state-based action
		// is performed or something triggers.
		if !g.CheckStateBasedActions() && !g.Trigger.HasPending() {
			return
		}
	}
	g.runStepBody()
}

// runStepBody offers priority repeatedly (starting with the active
// player) until the step/phase is ready to end, per CR 117.
func (g *Game) runStepBody() {
	g.RunPriorityLoop(g.ActivePlayer)
}

func (g *Game) untapStep() {
	player := g.Players[g.ActivePlayer]
	for _, id := range g.Battlefield.IDs() {
		obj := g.Object(id)
		if obj == nil || obj.Permanent == nil || obj.Permanent.Controller != player.ID {
			continue
		}
		if !obj.Current.Keywords.Has(Vigilance) || obj.Permanent.Tapped {
			obj.Permanent.Tapped = false
		}
		obj.Permanent.SummoningSickness = false
		obj.Permanent.Combat = CombatRole{}
	}
}

func (g *Game) cleanupStep() {
	player := g.Players[g.ActivePlayer]
	for player.Hand.Len() > g.Config.MaxHandSize {
		ids := player.Hand.IDs()
		choice := player.Agent.ChooseTargets(g, ids, 1, 1)
		if len(choice) == 0 {
			choice = ids[:1]
		}
		obj := g.Object(choice[0])
		player.Hand.Remove(choice[0])
		obj.Zone = ZoneGraveyard
		player.Graveyard.Append(obj.ID)
	}
	for _, id := range g.Battlefield.IDs() {
		obj := g.Object(id)
		if obj == nil || obj.Permanent == nil {
			continue
		}
		obj.Permanent.DamageMarked = 0
		obj.Permanent.DeathtouchMarked = false
	}
	g.Layers.ExpireTemporary(DurationEndOfTurn)
	g.Layers.Recompute(g)
}

// Draw moves the top n cards of p's library to their hand, flagging a
// failed-draw-from-empty-library condition for the next SBA check rather
// than ending the game immediately (CR 120.3/704.5c).
func (g *Game) Draw(p PlayerID, n int) {
	player := g.Players[p]
	for i := 0; i < n; i++ {
		id, ok := player.Library.PopTop()
		if !ok {
			player.drewFromEmptyLibrary = true
			return
		}
		obj := g.Object(id)
		obj.Zone = ZoneHand
		obj.Timestamp = g.Layers.NextTimestamp()
		player.Hand.Append(id)
		g.Bus.Publish(event.Event{Turn: g.Turn, Phase: g.Phase.String(), Type: event.DrawCard, Player: int(p), Source: int(id), CardName: obj.Current.Name})
	}
}

func (g *Game) anyFirstOrDoubleStrike() bool {
	for _, id := range g.Battlefield.IDs() {
		obj := g.Object(id)
		if obj != nil && obj.Permanent != nil && (obj.Permanent.Combat.Attacking || obj.Permanent.Combat.Blocking) {
			if obj.Current.Keywords.Has(FirstStrike) || obj.Current.Keywords.Has(DoubleStrike) {
				return true
			}
		}
	}
	return false
}
