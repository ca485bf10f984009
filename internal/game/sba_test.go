package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSBA_LethalDamageDestroysCreature(t *testing.T) {
	g, _, _ := newTestGame(t)
	bear := putPermanent(g, grizzlyBears(), 0)
	bear.Permanent.DamageMarked = 2

	require.True(t, g.CheckStateBasedActions(), "expected SBA pass to report a change")
	obj := g.Object(bear.ID)
	require.Equal(t, ZoneGraveyard, obj.Zone, "expected bear in graveyard")
}

func TestSBA_ZeroToughnessBypassesIndestructible(t *testing.T) {
	g, _, _ := newTestGame(t)
	chars := grizzlyBears()
	chars.Keywords |= Indestructible
	bear := putPermanent(g, chars, 0)

	// Layer-driven zero toughness (here a -2/-2 effect), not damage: this is
	// a graveyard move per CR 704.5f and must bypass indestructible. The SBA
	// pass recomputes Current from Print first, so the change has to come
	// from a registered effect rather than a direct write to Current.
	g.Layers.Install(&ContinuousEffect{
		Layer:   Layer7cPTModifying,
		Affects: func(g *Game, eff *ContinuousEffect, target ObjectID) bool { return target == bear.ID },
		Apply: func(g *Game, eff *ContinuousEffect, target ObjectID, c Characteristics) Characteristics {
			c.Power -= 2
			c.Toughness -= 2
			return c
		},
	})

	require.True(t, g.CheckStateBasedActions(), "expected SBA pass to report a change")
	obj := g.Object(bear.ID)
	require.Equal(t, ZoneGraveyard, obj.Zone, "expected indestructible 0-toughness creature to still die")
}

func TestSBA_LethalDamageRespectsIndestructible(t *testing.T) {
	g, _, _ := newTestGame(t)
	chars := grizzlyBears()
	chars.Keywords |= Indestructible
	bear := putPermanent(g, chars, 0)
	bear.Permanent.DamageMarked = 5 // lethal, but indestructible

	g.CheckStateBasedActions()

	obj := g.Object(bear.ID)
	require.Equal(t, ZoneBattlefield, obj.Zone, "expected indestructible creature to survive lethal damage")
}

func TestSBA_DeathtouchOneDamageKillsUnlessRegenerated(t *testing.T) {
	g, _, _ := newTestGame(t)
	giant := putPermanent(g, hillGiant(), 0) // 3/3
	giant.Permanent.DamageMarked = 1
	giant.Permanent.DeathtouchMarked = true

	g.CheckStateBasedActions()

	obj := g.Object(giant.ID)
	require.Equal(t, ZoneGraveyard, obj.Zone, "expected deathtouch damage to destroy the creature")
}

func TestSBA_RegenerationShieldSavesFromDestroy(t *testing.T) {
	g, _, _ := newTestGame(t)
	giant := putPermanent(g, hillGiant(), 0)
	giant.Permanent.DamageMarked = 5
	giant.Permanent.RegenerationShield = 1

	g.CheckStateBasedActions()

	obj := g.Object(giant.ID)
	require.Equal(t, ZoneBattlefield, obj.Zone, "expected regenerated creature to stay on battlefield")
	require.True(t, obj.Permanent.Tapped, "expected regeneration to tap the creature")
	require.Equal(t, 0, obj.Permanent.DamageMarked, "expected regeneration to clear damage")
}

func TestSBA_PlayerLifeZeroLoses(t *testing.T) {
	g, _, _ := newTestGame(t)
	g.Players[0].Life = 0

	g.CheckStateBasedActions()

	require.True(t, g.Over, "expected game to end")
	require.True(t, g.HasWinner)
	require.Equal(t, PlayerID(1), g.Winner, "expected player 1 to win")
}

func TestSBA_CounterAnnihilation(t *testing.T) {
	g, _, _ := newTestGame(t)
	bear := putPermanent(g, grizzlyBears(), 0)
	bear.Permanent.AddCounters(CounterPlusOnePlusOne, 3)
	bear.Permanent.AddCounters(CounterMinusOneMinusOne, 2)

	g.CheckStateBasedActions()

	require.Equal(t, 1, bear.Permanent.CounterCount(CounterPlusOnePlusOne), "expected 1 remaining +1/+1 counter")
	require.Equal(t, 0, bear.Permanent.CounterCount(CounterMinusOneMinusOne), "expected 0 remaining -1/-1 counters")
}

func TestSBA_LegendRuleSacrificesDuplicate(t *testing.T) {
	g, a0, _ := newTestGame(t)
	first := putPermanent(g, lordThaddeus(), 0)
	second := putPermanent(g, lordThaddeus(), 0)

	a0.targetsFn = func(candidates []ObjectID, min, max int) []ObjectID {
		return []ObjectID{first.ID}
	}

	g.CheckStateBasedActions()

	require.Equal(t, ZoneBattlefield, g.Object(first.ID).Zone, "expected chosen legendary to remain")
	require.Equal(t, ZoneGraveyard, g.Object(second.ID).Zone, "expected duplicate legendary to be sacrificed")
}

func TestSBA_TokenCeasesToExistOffBattlefield(t *testing.T) {
	g, _, _ := newTestGame(t)
	tok := g.CreateToken(Characteristics{Name: "Insect", Types: []CardType{TypeCreature}, Power: 1, Toughness: 1}, 0, "test")
	require.Equal(t, ObjectToken, tok.Kind, "expected CreateToken to tag the object as ObjectToken")

	// Move the token to the graveyard the way any zone-change path would,
	// then confirm the next SBA pass removes it from the arena entirely.
	g.Battlefield.Remove(tok.ID)
	tok.Zone = ZoneGraveyard
	g.Players[tok.Owner].Graveyard.Append(tok.ID)

	require.True(t, g.CheckStateBasedActions(), "expected SBA pass to report a change for the departed token")
	require.Nil(t, g.Object(tok.ID), "expected token to cease to exist once it left the battlefield")
	require.False(t, g.Players[tok.Owner].Graveyard.Contains(tok.ID), "expected token to be removed from the graveyard zone too")
}

func TestSBA_RavenousBroodlingCreatesTwoTokens(t *testing.T) {
	g, _, _ := newTestGame(t)
	before := len(g.Objects())
	putPermanent(g, ravenousBroodling(), 0)

	// Drive the trigger (stacked by settleStateAndTriggers) to resolution;
	// settleStateAndTriggers itself only places pending triggers on the
	// stack, it does not resolve them.
	for {
		g.settleStateAndTriggers()
		if _, ok := g.TopOfStack(); !ok {
			break
		}
		g.ResolveTop()
	}

	var tokens int
	for _, obj := range g.Objects() {
		if obj.Kind == ObjectToken && obj.Zone == ZoneBattlefield {
			tokens++
		}
	}
	require.Equal(t, 2, tokens, "expected 2 Insect tokens on the battlefield (total objects before=%d after=%d)", before, len(g.Objects()))
}
