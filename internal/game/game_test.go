package game

import "testing"

// TestGame_BoltThePlayerThroughPriorityLoop drives a single step's worth of
// CR 117 priority through RunPriorityLoop end to end: the active player
// casts a direct-damage instant at their opponent, both players pass, and
// the loop itself — not a direct ResolveTop call — resolves the spell
// before ending the step.
func TestGame_BoltThePlayerThroughPriorityLoop(t *testing.T) {
	g, a0, _ := newTestGame(t)
	g.Phase = PhaseMain1

	strike := putInHand(g, lightningStrike(), 0)
	g.Players[0].Mana.Add(ManaUnit{Color: Red})
	g.Players[0].Mana.Add(ManaUnit{Color: ColorNone})

	a0.targetsFn = func(candidates []ObjectID, min, max int) []ObjectID {
		return []ObjectID{PlayerObjectID(1)}
	}
	a0.priority = []ActionChoice{{Kind: ActionCastSpell, Targets: []ObjectID{strike.ID}}}

	g.RunPriorityLoop(0)

	if got := g.Players[1].Life; got != StartingLife-3 {
		t.Fatalf("expected the priority loop to resolve the spell against the opponent, life=%d", got)
	}
	if _, ok := g.TopOfStack(); ok {
		t.Fatalf("expected the stack empty and the step to end once both players passed with nothing left to resolve")
	}
	if obj := g.Object(strike.ID); obj == nil || obj.Zone != ZoneGraveyard {
		t.Fatalf("expected the spent spell in its owner's graveyard")
	}
}

// TestGame_TriggerManagerOrdersAPNAP exercises CR 603.3b's ordering: when
// triggers controlled by both players are pending at once, DrainAPNAP must
// hand back the active player's first regardless of which fired first.
func TestGame_TriggerManagerOrdersAPNAP(t *testing.T) {
	g, _, _ := newTestGame(t)
	putPermanent(g, ladyRowena(), 1) // the non-active player's trigger queues first
	putPermanent(g, ladyRowena(), 0) // the active player's trigger queues second

	if !g.Trigger.HasPending() {
		t.Fatalf("expected both enters-the-battlefield triggers pending")
	}
	ordered := g.Trigger.DrainAPNAP()
	if len(ordered) != 2 {
		t.Fatalf("expected both triggers drained, got %d", len(ordered))
	}
	if ordered[0].Controller != g.ActivePlayer {
		t.Fatalf("expected the active player's trigger first per APNAP, got controller %d", ordered[0].Controller)
	}
	if ordered[1].Controller != g.Opponent(g.ActivePlayer) {
		t.Fatalf("expected the non-active player's trigger second, got controller %d", ordered[1].Controller)
	}
	if g.Trigger.HasPending() {
		t.Fatalf("expected DrainAPNAP to clear the pending queue")
	}
}
