package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStack_FizzlesWhenSoleTargetBecomesIllegal(t *testing.T) {
	g, _, _ := newTestGame(t)
	bear := putPermanent(g, grizzlyBears(), 1)

	strike := putInHand(g, lightningStrike(), 0)
	g.Players[0].Mana.Add(ManaUnit{Color: Red})
	g.Players[0].Mana.Add(ManaUnit{Color: ColorNone})

	g.Players[0].Agent.(*agentStub).targetsFn = func(candidates []ObjectID, min, max int) []ObjectID {
		return []ObjectID{bear.ID}
	}
	g.performAction(0, ActionChoice{Kind: ActionCastSpell, Targets: []ObjectID{strike.ID}})

	onStack, ok := g.TopOfStack()
	require.True(t, ok, "expected Lightning Strike on the stack")

	// Target leaves the battlefield before the spell resolves (e.g. killed
	// by something else in response) — the spell should fizzle rather than
	// silently deal damage to a target that no longer exists.
	g.Sacrifice(bear)

	g.ResolveTop()

	obj := g.Object(onStack)
	require.NotNil(t, obj, "expected the fizzled spell object to still exist in the graveyard")
	require.Equal(t, ZoneGraveyard, obj.Zone, "expected fizzled spell to move to its owner's graveyard")
	require.Equal(t, StartingLife, g.Players[1].Life, "expected no damage dealt on fizzle")
}

func TestStack_ResolvesAgainstPlayerTarget(t *testing.T) {
	g, _, _ := newTestGame(t)
	strike := putInHand(g, lightningStrike(), 0)
	g.Players[0].Mana.Add(ManaUnit{Color: Red})
	g.Players[0].Mana.Add(ManaUnit{Color: ColorNone})

	g.Players[0].Agent.(*agentStub).targetsFn = func(candidates []ObjectID, min, max int) []ObjectID {
		return []ObjectID{PlayerObjectID(1)}
	}
	g.performAction(0, ActionChoice{Kind: ActionCastSpell, Targets: []ObjectID{strike.ID}})
	g.ResolveTop()

	require.Equal(t, StartingLife-3, g.Players[1].Life, "expected opponent hit for 3")
}

func TestStack_SpellWithLegalTargetResolves(t *testing.T) {
	g, _, _ := newTestGame(t)
	bear := putPermanent(g, grizzlyBears(), 0)
	growth := putInHand(g, giantGrowth(), 0)
	g.Players[0].Mana.Add(ManaUnit{Color: Green})

	g.Players[0].Agent.(*agentStub).targetsFn = func(candidates []ObjectID, min, max int) []ObjectID {
		return []ObjectID{bear.ID}
	}
	g.performAction(0, ActionChoice{Kind: ActionCastSpell, Targets: []ObjectID{growth.ID}})
	g.ResolveTop()

	require.Equal(t, 5, bear.Current.Power, "expected Giant Growth to resolve and grant +3/+3")
}

func TestStack_EquipAttachesThroughRealSource(t *testing.T) {
	g, _, _ := newTestGame(t)
	bear := putPermanent(g, grizzlyBears(), 0)
	gauntlet := putPermanent(g, rustedGauntlet(), 0)
	g.Players[0].Mana.Add(ManaUnit{Color: ColorNone})

	g.Players[0].Agent.(*agentStub).targetsFn = func(candidates []ObjectID, min, max int) []ObjectID {
		return []ObjectID{bear.ID}
	}
	g.performAction(0, ActionChoice{Kind: ActionActivateAbility, Targets: []ObjectID{gauntlet.ID}, AbilityIx: 0})
	g.ResolveTop()

	require.Equal(t, bear.ID, gauntlet.Permanent.Attachment.AttachedTo, "expected gauntlet attached to bear")
	require.Equal(t, 4, bear.Current.Power, "expected equipped bear at power 4")
}

func TestStack_TriggeredAbilityReachesItsOwnController(t *testing.T) {
	g, _, _ := newTestGame(t)
	putPermanent(g, ladyRowena(), 0)

	for {
		g.settleStateAndTriggers()
		if _, ok := g.TopOfStack(); !ok {
			break
		}
		g.ResolveTop()
	}

	require.Equal(t, StartingLife+2, g.Players[0].Life, "expected controller to gain 2 life")
	require.Equal(t, StartingLife-2, g.Players[1].Life, "expected opponent to lose 2 life")
}
