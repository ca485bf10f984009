package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWard_OpposingSpellMustAlsoPayTheWardCost(t *testing.T) {
	g, _, _ := newTestGame(t)
	warded := putPermanent(g, silverbackGuardian(), 1)

	strike := putInHand(g, lightningStrike(), 0)
	g.Players[0].Mana.Add(ManaUnit{Color: Red})
	// Only the printed {1}{R} cost is funded, not the {2} ward surcharge.
	g.Players[0].Mana.Add(ManaUnit{Color: ColorNone})

	g.Players[0].Agent.(*agentStub).targetsFn = func(candidates []ObjectID, min, max int) []ObjectID {
		return []ObjectID{warded.ID}
	}
	g.performAction(0, ActionChoice{Kind: ActionCastSpell, Targets: []ObjectID{strike.ID}})

	_, onStack := g.TopOfStack()
	require.False(t, onStack, "expected the cast to fail without the ward surcharge paid")
	require.Equal(t, 2, g.Players[0].Mana.Count(), "expected the unaffordable cast to leave the mana pool untouched")
}

func TestWard_PayingTheSurchargePutsTheSpellOnStack(t *testing.T) {
	g, _, _ := newTestGame(t)
	warded := putPermanent(g, silverbackGuardian(), 1)

	strike := putInHand(g, lightningStrike(), 0)
	g.Players[0].Mana.Add(ManaUnit{Color: Red})
	g.Players[0].Mana.Add(ManaUnit{Color: ColorNone})
	g.Players[0].Mana.Add(ManaUnit{Color: ColorNone})
	g.Players[0].Mana.Add(ManaUnit{Color: ColorNone})

	g.Players[0].Agent.(*agentStub).targetsFn = func(candidates []ObjectID, min, max int) []ObjectID {
		return []ObjectID{warded.ID}
	}
	g.performAction(0, ActionChoice{Kind: ActionCastSpell, Targets: []ObjectID{strike.ID}})

	_, onStack := g.TopOfStack()
	require.True(t, onStack, "expected the cast to succeed once both the spell and ward costs are paid")
	require.Equal(t, 0, g.Players[0].Mana.Count())
}

func TestWard_DoesNotApplyToYourOwnPermanent(t *testing.T) {
	g, _, _ := newTestGame(t)
	ownWarded := putPermanent(g, silverbackGuardian(), 0)

	growth := putInHand(g, giantGrowth(), 0)
	g.Players[0].Mana.Add(ManaUnit{Color: Green})

	g.Players[0].Agent.(*agentStub).targetsFn = func(candidates []ObjectID, min, max int) []ObjectID {
		return []ObjectID{ownWarded.ID}
	}
	g.performAction(0, ActionChoice{Kind: ActionCastSpell, Targets: []ObjectID{growth.ID}})

	_, onStack := g.TopOfStack()
	require.True(t, onStack, "expected ward to add no surcharge against its own controller's spell")
}
