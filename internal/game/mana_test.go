package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMana_SatisfyColoredThenGenericFromLeftoverMana(t *testing.T) {
	pool := &ManaPool{}
	pool.Add(ManaUnit{Color: Green})
	pool.Add(ManaUnit{Color: White})

	plan, ok := Satisfy(pool, cost(generic(1), colored(Green)))
	require.True(t, ok, "expected {1}{G} to be payable from a Green and a White mana")
	Pay(pool, plan)
	require.Equal(t, 0, pool.Count(), "expected the pool fully spent")
}

func TestMana_SatisfyFailsWithoutTheRequiredColor(t *testing.T) {
	pool := &ManaPool{}
	pool.Add(ManaUnit{Color: Green})
	pool.Add(ManaUnit{Color: Green})

	_, ok := Satisfy(pool, cost(colored(Red)))
	require.False(t, ok, "expected {R} to be unpayable from two Green mana")
	require.Equal(t, 2, pool.Count(), "expected a failed Satisfy to leave the pool untouched")
}

func TestMana_SatisfyBacktracksColoredSymbolsBeforeGeneric(t *testing.T) {
	pool := &ManaPool{}
	pool.Add(ManaUnit{Color: Black})
	pool.Add(ManaUnit{Color: ColorNone})
	pool.Add(ManaUnit{Color: ColorNone})

	plan, ok := Satisfy(pool, cost(generic(2), colored(Black)))
	require.True(t, ok, "expected {2}{B} to be payable from one Black and two colorless mana")
	Pay(pool, plan)
	require.Equal(t, 0, pool.Count(), "expected the pool fully spent")
}

func TestMana_SatisfyHybridAcceptsEitherColor(t *testing.T) {
	pool := &ManaPool{}
	pool.Add(ManaUnit{Color: Black})

	hybrid := ManaCost{Symbols: []ManaSymbol{{Kind: SymbolHybrid, Hybrid: [2]Color{Red, Black}}}}
	plan, ok := Satisfy(pool, hybrid)
	require.True(t, ok, "expected a Red/Black hybrid symbol to accept Black mana")
	Pay(pool, plan)
	require.Equal(t, 0, pool.Count(), "expected the pool spent")
}

func TestMana_PoolEmptyDrainsAndClears(t *testing.T) {
	pool := &ManaPool{}
	pool.Add(ManaUnit{Color: Green})
	pool.Add(ManaUnit{Color: Red})

	drained := pool.Empty()
	require.Len(t, drained, 2, "expected Empty to return the 2 drained units")
	require.Equal(t, 0, pool.Count(), "expected the pool empty after draining")
}
