package game

// wardTotalCost sums the ward cost of every target in targets that carries
// active ward and is controlled by someone other than caster, per CR
// 702.21 and the original engine's check_ward: ward never makes targeting
// illegal and never triggers against your own permanents, it just adds a
// cost the caster must also pay to go through with the spell or ability.
func wardTotalCost(g *Game, caster PlayerID, targets []ObjectID) ManaCost {
	var combined ManaCost
	for _, id := range targets {
		obj := g.Object(id)
		if obj == nil || obj.Permanent == nil || !obj.Current.Ward.Active {
			continue
		}
		if obj.Permanent.Controller == caster {
			continue
		}
		combined.Symbols = append(combined.Symbols, obj.Current.Ward.Cost.Symbols...)
	}
	return combined
}

// addManaCost concatenates b's symbols onto a, used to fold a ward
// surcharge into an already-computed spell or activation cost.
func addManaCost(a, b ManaCost) ManaCost {
	if len(b.Symbols) == 0 {
		return a
	}
	out := ManaCost{Symbols: make([]ManaSymbol, 0, len(a.Symbols)+len(b.Symbols)), XValue: a.XValue}
	out.Symbols = append(out.Symbols, a.Symbols...)
	out.Symbols = append(out.Symbols, b.Symbols...)
	return out
}
