package game

import "github.com/aldenvale/mtgkernel/internal/event"

// CheckStateBasedActions runs one full pass of CR 704's state-based
// actions and reports whether anything changed, so callers (the priority
// loop's settleStateAndTriggers) can keep calling it until a fixed point
// is reached — some SBAs (a creature dying) can cause others (its
// controller losing if that was their last permanent under some variant
// rule) to newly apply.
func (g *Game) CheckStateBasedActions() bool {
	g.Layers.Recompute(g)
	changed := false

	for _, p := range g.Players {
		if p.Lost {
			continue
		}
		if p.Life <= 0 {
			g.loseGame(p, "life")
			changed = true
		}
		if p.Poison >= 10 {
			g.loseGame(p, "poison")
			changed = true
		}
		if p.Library.Len() == 0 && p.drewFromEmptyLibrary {
			g.loseGame(p, "drew-from-empty")
			changed = true
		}
	}
	if g.Over {
		return true
	}

	var toDestroy []*GameObject   // lethal/deathtouch damage: a "destroy" effect, respects indestructible + regeneration
	var toGraveyard []*GameObject // zero toughness / zero loyalty: a graveyard move, bypasses both (CR 704.5f/704.5i)
	for _, obj := range g.Objects() {
		if !obj.IsPermanent() {
			continue
		}
		if obj.Current.HasType(TypeCreature) {
			switch {
			case obj.Current.Toughness <= 0:
				toGraveyard = append(toGraveyard, obj)
				continue
			case obj.Permanent.DamageMarked >= obj.Current.Toughness, obj.Permanent.DeathtouchMarked:
				toDestroy = append(toDestroy, obj)
				continue
			}
		}
		if obj.Current.HasType(TypePlaneswalker) && obj.Permanent.CounterCount(CounterLoyalty) <= 0 {
			toGraveyard = append(toGraveyard, obj)
			continue
		}
		if before := len(obj.Permanent.Counters); true {
			obj.Permanent.AnnihilateCounters()
			if len(obj.Permanent.Counters) != before {
				changed = true
			}
		}
		if obj.Permanent.Attachment.AttachedTo != 0 && !g.legalAttachment(obj) {
			g.detachSingle(obj)
			changed = true
		}
	}
	for _, obj := range toDestroy {
		g.Destroy(obj)
		changed = true
	}
	for _, obj := range toGraveyard {
		g.PutIntoGraveyardUnconditional(obj)
		changed = true
	}

	if g.enforceLegendRule() {
		changed = true
	}

	if g.ceaseTokenExistence() {
		changed = true
	}

	return changed
}

// ceaseTokenExistence implements invariant I7: a token in any zone other
// than the battlefield ceases to exist. Unlike every other SBA this one
// removes the object from the arena entirely rather than moving it, since
// a token has no card to "be" once it isn't a permanent.
func (g *Game) ceaseTokenExistence() bool {
	var gone []*GameObject
	for _, obj := range g.Objects() {
		if obj.Kind == ObjectToken && obj.Zone != ZoneBattlefield {
			gone = append(gone, obj)
		}
	}
	for _, obj := range gone {
		owner := g.Players[obj.Owner]
		if z := owner.ZoneByKind(obj.Zone); z != nil {
			z.Remove(obj.ID)
		}
		delete(g.objects, obj.ID)
	}
	return len(gone) > 0
}

// enforceLegendRule applies CR 704.5j: if a player controls two or more
// legendary permanents with the same name, that player chooses one to
// keep and sacrifices the rest.
func (g *Game) enforceLegendRule() bool {
	changed := false
	seen := make(map[PlayerID]map[string][]*GameObject)
	for _, obj := range g.Objects() {
		if !obj.IsPermanent() || obj.Current.Super&SuperLegendary == 0 {
			continue
		}
		ctrl := obj.Permanent.Controller
		if seen[ctrl] == nil {
			seen[ctrl] = make(map[string][]*GameObject)
		}
		seen[ctrl][obj.Current.Name] = append(seen[ctrl][obj.Current.Name], obj)
	}
	for ctrl, byName := range seen {
		for _, dupes := range byName {
			if len(dupes) < 2 {
				continue
			}
			ids := make([]ObjectID, len(dupes))
			for i, o := range dupes {
				ids[i] = o.ID
			}
			keep := g.Players[ctrl].Agent.ChooseTargets(g, ids, 1, 1)
			keepID := ObjectID(0)
			if len(keep) > 0 {
				keepID = keep[0]
			}
			for _, o := range dupes {
				if o.ID != keepID {
					g.Sacrifice(o)
					changed = true
				}
			}
		}
	}
	return changed
}

func (g *Game) loseGame(p *Player, reason string) {
	p.Lost = true
	p.LossReason = reason
	g.Bus.Publish(event.Event{Turn: g.Turn, Phase: g.Phase.String(), Type: event.PlayerLost, Player: int(p.ID), Details: reason})
	g.checkGameOver()
}

// checkGameOver ends the game once zero or one player remains.
func (g *Game) checkGameOver() {
	var alive []PlayerID
	for _, p := range g.Players {
		if !p.Lost {
			alive = append(alive, p.ID)
		}
	}
	if len(alive) <= 1 {
		g.Over = true
		if len(alive) == 1 {
			g.Winner = alive[0]
			g.HasWinner = true
			loser := g.Players[g.Opponent(alive[0])]
			g.Result = loser.LossReason
			g.Bus.Publish(event.Event{Turn: g.Turn, Type: event.PlayerWon, Player: int(alive[0])})
		} else {
			g.Result = "draw"
		}
		g.Bus.Publish(event.Event{Turn: g.Turn, Type: event.GameEnded, Details: g.Result})
	}
}

// legalAttachment reports whether an Aura/Equipment still has a legal
// object to be attached to (CR 704.5m/704.5n).
func (g *Game) legalAttachment(obj *GameObject) bool {
	host := g.Object(obj.Permanent.Attachment.AttachedTo)
	return host != nil && host.IsPermanent()
}

func (g *Game) detachSingle(obj *GameObject) {
	if obj.Current.HasType(TypeEnchantment) {
		g.Destroy(obj)
		return
	}
	obj.Permanent.Attachment.AttachedTo = 0
}
