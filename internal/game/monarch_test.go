package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMonarch_EnteringBattlefieldGrantsIt(t *testing.T) {
	g, _, _ := newTestGame(t)
	herald := putPermanent(g, courtHerald(), 0)

	for {
		g.settleStateAndTriggers()
		if _, ok := g.TopOfStack(); !ok {
			break
		}
		g.ResolveTop()
	}

	require.True(t, g.HasMonarch)
	require.Equal(t, herald.Permanent.Controller, g.MonarchID)
}

func TestMonarch_DrawsAtItsOwnEndStep(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.BecomeMonarch(0)
	g.ActivePlayer = 0
	before := g.Players[0].Hand.Len()
	// Nothing in the library means Draw flags drewFromEmptyLibrary instead
	// of adding a card; give the monarch something to draw so the assertion
	// is meaningful.
	card := &GameObject{Owner: 0, Zone: ZoneLibrary, Print: grizzlyBears(), Current: grizzlyBears()}
	g.registerObject(card)
	g.Players[0].Library.Append(card.ID)

	g.runStep(StepEnd)

	require.Equal(t, before+1, g.Players[0].Hand.Len(), "expected the monarch to draw an extra card at their end step")
}

func TestMonarch_NotDrawnOnNonMonarchsEndStep(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.BecomeMonarch(1)
	g.ActivePlayer = 0
	before := g.Players[1].Hand.Len()

	g.runStep(StepEnd)

	require.Equal(t, before, g.Players[1].Hand.Len(), "expected no extra draw outside the monarch's own end step")
}

func TestMonarch_CombatDamageToMonarchTransfersIt(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.BecomeMonarch(1)
	attacker := putPermanent(g, grizzlyBears(), 0)

	g.dealCombatDamage(attacker, ObjectID(0), 2, true, 1)

	require.Equal(t, PlayerID(0), g.MonarchID, "expected the attacker's controller to become the new monarch")
}

func TestMonarch_CombatDamageToNonMonarchDoesNothing(t *testing.T) {
	g, _, _ := newTestGame(t)
	attacker := putPermanent(g, grizzlyBears(), 0)

	g.dealCombatDamage(attacker, ObjectID(0), 2, true, 1)

	require.False(t, g.HasMonarch, "expected no monarch to be created by ordinary combat damage")
}
