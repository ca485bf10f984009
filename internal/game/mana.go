package game

import "fmt"

// ManaSymbolKind distinguishes the symbol shapes a ManaCost can carry.
type ManaSymbolKind int

const (
	SymbolWhite ManaSymbolKind = iota
	SymbolBlue
	SymbolBlack
	SymbolRed
	SymbolGreen
	SymbolColorless // {C}
	SymbolGeneric   // {N} — satisfied by any mana
	SymbolX
	SymbolHybrid   // either of two colors
	SymbolPhyrexian // a color or 2 life
	SymbolSnow     // {S} — any snow-producing source
)

// ManaSymbol is one symbol within a ManaCost.
type ManaSymbol struct {
	Kind    ManaSymbolKind
	Generic int     // amount, for SymbolGeneric
	Hybrid  [2]Color // the two acceptable colors, for SymbolHybrid
	Color   Color    // the phyrexian color, for SymbolPhyrexian (SymbolWhite..SymbolGreen carry their color in Kind)
}

func (s ManaSymbol) String() string {
	switch s.Kind {
	case SymbolWhite:
		return "{W}"
	case SymbolBlue:
		return "{U}"
	case SymbolBlack:
		return "{B}"
	case SymbolRed:
		return "{R}"
	case SymbolGreen:
		return "{G}"
	case SymbolColorless:
		return "{C}"
	case SymbolGeneric:
		return fmt.Sprintf("{%d}", s.Generic)
	case SymbolX:
		return "{X}"
	case SymbolHybrid:
		return fmt.Sprintf("{%s/%s}", s.Hybrid[0], s.Hybrid[1])
	case SymbolPhyrexian:
		return fmt.Sprintf("{%s/P}", s.Color)
	case SymbolSnow:
		return "{S}"
	default:
		return "{?}"
	}
}

// ManaCost is an ordered list of symbols, as printed on a card, plus the
// chosen value of X once it is known (0 until announced).
type ManaCost struct {
	Symbols []ManaSymbol
	XValue  int
}

// ManaValue is the card's mana value (CMC): the sum of all symbols' values,
// counting a chosen X (spec.md glossary: "X counts as its chosen value
// once the spell is on the stack").
func (c ManaCost) ManaValue() int {
	total := 0
	for _, s := range c.Symbols {
		switch s.Kind {
		case SymbolGeneric:
			total += s.Generic
		case SymbolX:
			total += c.XValue
		default:
			total++
		}
	}
	return total
}

func (c ManaCost) String() string {
	s := ""
	for _, sym := range c.Symbols {
		s += sym.String()
	}
	return s
}

// IsEmpty reports whether this cost has no symbols (a cost-free action).
func (c ManaCost) IsEmpty() bool { return len(c.Symbols) == 0 }

// ManaUnit is a single piece of mana sitting in a pool.
type ManaUnit struct {
	Color       Color // ColorNone means colorless
	Snow        bool
	Restriction string // free-text restriction, e.g. "spend only on instants" — checked by callers, not enforced centrally
}

// ManaPool is a multiset of mana a player currently has available.
type ManaPool struct {
	units []ManaUnit
}

// Add deposits one unit of mana into the pool.
func (p *ManaPool) Add(u ManaUnit) { p.units = append(p.units, u) }

// Count returns how many units are currently in the pool.
func (p *ManaPool) Count() int { return len(p.units) }

// Empty drains the pool (called at each step/phase-ending cleanup per the
// classic "mana empties" rule — the turn manager invokes this).
func (p *ManaPool) Empty() []ManaUnit {
	drained := p.units
	p.units = nil
	return drained
}

// Units returns a copy of the pool's contents.
func (p *ManaPool) Units() []ManaUnit {
	out := make([]ManaUnit, len(p.units))
	copy(out, p.units)
	return out
}

// PaymentPlan is a satisfiable assignment of pool units to cost symbols,
// returned by Satisfy so the caller can apply it atomically.
type PaymentPlan struct {
	// SpentUnitIndices lists, for each symbol in the cost (by index),
	// which pool unit indices (as of the pool snapshot passed to Satisfy)
	// were spent on it. Generic/X symbols may consume more than one.
	SpentUnitIndices [][]int
}

// Satisfy determines whether pool can pay cost, by backtracking with undo:
// colored and hybrid symbols are matched first (most constrained first),
// generic and X are filled last from whatever remains, exactly as spec.md
// §4.3 describes. It does not mutate pool; callers apply the returned plan
// via PaymentPlan/Pay.
func Satisfy(pool *ManaPool, cost ManaCost) (PaymentPlan, bool) {
	avail := make([]bool, len(pool.units))
	for i := range avail {
		avail[i] = true
	}

	// Order: colored/hybrid/phyrexian symbols first, generic/X last.
	ordered := make([]int, 0, len(cost.Symbols))
	var genericIdx []int
	for i, s := range cost.Symbols {
		if s.Kind == SymbolGeneric || s.Kind == SymbolX {
			genericIdx = append(genericIdx, i)
			continue
		}
		ordered = append(ordered, i)
	}
	ordered = append(ordered, genericIdx...)

	plan := make([][]int, len(cost.Symbols))
	if !satisfySymbols(pool, cost, ordered, 0, avail, plan) {
		return PaymentPlan{}, false
	}
	return PaymentPlan{SpentUnitIndices: plan}, true
}

func satisfySymbols(pool *ManaPool, cost ManaCost, order []int, pos int, avail []bool, plan [][]int) bool {
	if pos == len(order) {
		return true
	}
	symIx := order[pos]
	sym := cost.Symbols[symIx]

	switch sym.Kind {
	case SymbolGeneric, SymbolX:
		need := sym.Generic
		if sym.Kind == SymbolX {
			need = cost.XValue
		}
		return satisfyGeneric(pool, cost, order, pos, avail, plan, symIx, need, nil)
	default:
		for i, unit := range pool.units {
			if !avail[i] || !unitPaysSymbol(unit, sym) {
				continue
			}
			avail[i] = false
			plan[symIx] = []int{i}
			if satisfySymbols(pool, cost, order, pos+1, avail, plan) {
				return true
			}
			avail[i] = true
			plan[symIx] = nil
		}
		return false
	}
}

// satisfyGeneric greedily collects `need` available units (any color) via
// backtracking, recursing into the rest of the symbol order once picked.
func satisfyGeneric(pool *ManaPool, cost ManaCost, order []int, pos int, avail []bool, plan [][]int, symIx, need int, picked []int) bool {
	if need == 0 {
		plan[symIx] = nil
		return satisfySymbols(pool, cost, order, pos+1, avail, plan)
	}
	if len(picked) == need {
		plan[symIx] = append([]int(nil), picked...)
		if satisfySymbols(pool, cost, order, pos+1, avail, plan) {
			return true
		}
		plan[symIx] = nil
		return false
	}
	for i := range pool.units {
		if !avail[i] {
			continue
		}
		avail[i] = false
		if satisfyGeneric(pool, cost, order, pos, avail, plan, symIx, need, append(picked, i)) {
			return true
		}
		avail[i] = true
	}
	return false
}

func unitPaysSymbol(u ManaUnit, s ManaSymbol) bool {
	switch s.Kind {
	case SymbolWhite:
		return u.Color == White
	case SymbolBlue:
		return u.Color == Blue
	case SymbolBlack:
		return u.Color == Black
	case SymbolRed:
		return u.Color == Red
	case SymbolGreen:
		return u.Color == Green
	case SymbolColorless:
		return u.Color == ColorNone
	case SymbolHybrid:
		return u.Color == s.Hybrid[0] || u.Color == s.Hybrid[1]
	case SymbolPhyrexian:
		return u.Color == s.Color // life-payment alternative handled by the caller, not the pool
	case SymbolSnow:
		return u.Snow
	default:
		return false
	}
}

// Pay removes the units named by plan from pool. Call only after Satisfy
// returned true for the same pool contents — the spell-cast transaction
// (cast.go) runs Satisfy before changing any state, so a cost that can't
// be paid leaves the pool untouched and nothing needs rolling back.
func Pay(pool *ManaPool, plan PaymentPlan) {
	remove := make(map[int]bool)
	for _, ixs := range plan.SpentUnitIndices {
		for _, ix := range ixs {
			remove[ix] = true
		}
	}
	kept := make([]ManaUnit, 0, len(pool.units)-len(remove))
	for i, u := range pool.units {
		if !remove[i] {
			kept = append(kept, u)
		}
	}
	pool.units = kept
}
