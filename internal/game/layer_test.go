package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLayer_AnthemBuffsOtherCreaturesNotItself(t *testing.T) {
	g, _, _ := newTestGame(t)
	lord := putPermanent(g, lordThaddeus(), 0)
	bear := putPermanent(g, grizzlyBears(), 0)
	enemyBear := putPermanent(g, grizzlyBears(), 1)

	require.Equal(t, 3, lord.Current.Power, "expected Lord Thaddeus unaffected by its own anthem")
	require.Equal(t, 3, bear.Current.Power, "expected controlled bear buffed to 3/3")
	require.Equal(t, 3, bear.Current.Toughness, "expected controlled bear buffed to 3/3")
	require.Equal(t, 2, enemyBear.Current.Power, "expected opponent's bear unaffected")
	require.Equal(t, 2, enemyBear.Current.Toughness, "expected opponent's bear unaffected")
}

func TestLayer_AnthemStopsApplyingWhenSourceLeaves(t *testing.T) {
	g, _, _ := newTestGame(t)
	lord := putPermanent(g, lordThaddeus(), 0)
	bear := putPermanent(g, grizzlyBears(), 0)

	require.Equal(t, 3, bear.Current.Power, "expected anthem applied while Lord Thaddeus is in play")

	g.Sacrifice(lord)
	g.Layers.Recompute(g)

	require.Equal(t, 2, bear.Current.Power, "expected anthem to stop applying once its source leaves")
}

func TestLayer_ShockTerrainTurnsNonbasicLandsIntoMountains(t *testing.T) {
	g, _, _ := newTestGame(t)
	putPermanent(g, shockTerrain(), 0)

	nonbasic := putPermanent(g, Characteristics{
		Name: "Ancient Tomb", Types: []CardType{TypeLand},
	}, 0)
	basic := putPermanent(g, basicLand("Forest", Green)(), 0)

	require.True(t, nonbasic.Current.HasType(TypeLand), "expected nonbasic land turned into a Mountain")
	require.Equal(t, "Mountain", nonbasic.Current.Name)
	require.Len(t, nonbasic.Current.Abilities, 1, "expected the renamed land to gain a tap-for-red mana ability")
	require.Equal(t, AbilityMana, nonbasic.Current.Abilities[0].Kind)
	require.Equal(t, "Forest", basic.Current.Name, "expected basic land left alone")
}

func TestLayer_PTCountersStackWithAnthem(t *testing.T) {
	g, _, _ := newTestGame(t)
	putPermanent(g, lordThaddeus(), 0)
	bear := putPermanent(g, grizzlyBears(), 0)
	bear.Permanent.AddCounters(CounterPlusOnePlusOne, 2)
	g.Layers.Recompute(g)

	require.Equal(t, 5, bear.Current.Power, "expected 2 base + 1 anthem + 2 counters = 5")
}
