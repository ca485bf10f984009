package game

import "github.com/aldenvale/mtgkernel/internal/event"

// declareAttackersStep asks the active player which untapped, non-sick
// creatures they control attack, then taps attackers (unless vigilant)
// and fires attack triggers. Every attacker attacks the opposing player;
// planeswalkers and battles are not offered as attack targets.
func (g *Game) declareAttackersStep() {
	ap := g.Players[g.ActivePlayer]
	var eligible []ObjectID
	for _, id := range g.Battlefield.IDs() {
		obj := g.Object(id)
		if obj == nil || obj.Permanent == nil || obj.Permanent.Controller != ap.ID {
			continue
		}
		if !obj.Current.HasType(TypeCreature) || obj.Permanent.Tapped || obj.Permanent.SummoningSickness {
			continue
		}
		if obj.Current.Keywords.Has(Defender) || obj.Current.CantAttack {
			continue
		}
		eligible = append(eligible, id)
	}
	if len(eligible) == 0 {
		return
	}
	attackers := ap.Agent.ChooseTargets(g, eligible, 0, len(eligible))
	defender := g.Opponent(g.ActivePlayer)

	for _, id := range attackers {
		obj := g.Object(id)
		obj.Permanent.Combat.Attacking = true
		obj.Permanent.Combat.AttackTarget = AttackTarget{IsPlayer: true, Player: defender}
		if !obj.Current.Keywords.Has(Vigilance) {
			obj.Permanent.Tapped = true
		}
		g.Bus.Publish(event.Event{Turn: g.Turn, Phase: g.Phase.String(), Type: event.Attacks, Source: int(id), Player: int(ap.ID)})
	}
}

// declareBlockersStep asks the defending player which untapped creatures
// they control block, and which single attacker each one blocks (several
// blockers may block one attacker), subject to evasion keywords.
func (g *Game) declareBlockersStep() {
	defenderID := g.Opponent(g.ActivePlayer)
	defender := g.Players[defenderID]

	var attackers []*GameObject
	for _, id := range g.Battlefield.IDs() {
		obj := g.Object(id)
		if obj != nil && obj.Permanent != nil && obj.Permanent.Combat.Attacking {
			attackers = append(attackers, obj)
		}
	}
	if len(attackers) == 0 {
		return
	}

	var eligible []ObjectID
	for _, id := range g.Battlefield.IDs() {
		obj := g.Object(id)
		if obj == nil || obj.Permanent == nil || obj.Permanent.Controller != defenderID {
			continue
		}
		if !obj.Current.HasType(TypeCreature) || obj.Permanent.Tapped || obj.Current.CantBlock {
			continue
		}
		eligible = append(eligible, id)
	}

	blockers := defender.Agent.ChooseTargets(g, eligible, 0, len(eligible))
	for _, bid := range blockers {
		blocker := g.Object(bid)
		candidates := make([]ObjectID, 0, len(attackers))
		for _, a := range attackers {
			if g.canBeBlockedBy(a, blocker) {
				candidates = append(candidates, a.ID)
			}
		}
		if len(candidates) == 0 {
			continue
		}
		chosen := defender.Agent.ChooseTargets(g, candidates, 1, 1)
		if len(chosen) == 0 {
			continue
		}
		attacker := g.Object(chosen[0])
		blocker.Permanent.Combat.Blocking = true
		blocker.Permanent.Combat.Blocked = append(blocker.Permanent.Combat.Blocked, chosen[0])
		attacker.Permanent.Combat.BlockedBy = append(attacker.Permanent.Combat.BlockedBy, bid)
		g.Bus.Publish(event.Event{Turn: g.Turn, Phase: g.Phase.String(), Type: event.Blocks, Source: int(bid), Targets: []int{int(chosen[0])}, Player: int(defenderID)})
	}

	// CR 509.1c: a creature with menace can't be blocked except by two or
	// more creatures. Blocks are declared one blocker at a time above, so
	// an insufficient single block can only be caught once every blocker
	// has been assigned; undo it here rather than rejecting mid-loop.
	for _, a := range attackers {
		if !a.Current.Keywords.Has(Menace) || len(a.Permanent.Combat.BlockedBy) >= 2 {
			continue
		}
		for _, bid := range a.Permanent.Combat.BlockedBy {
			if blocker := g.Object(bid); blocker != nil && blocker.Permanent != nil {
				blocker.Permanent.Combat.Blocking = false
				blocker.Permanent.Combat.Blocked = nil
			}
		}
		a.Permanent.Combat.BlockedBy = nil
	}
}

func (g *Game) canBeBlockedBy(attacker, blocker *GameObject) bool {
	if attacker.Current.Keywords.Has(Menace) && len(attacker.Permanent.Combat.BlockedBy) == 0 {
		// Menace legality (needs 2+ blockers) is not checked per blocker: a single block attempt is still offered here, and declareBlockersStep's undo pass removes the blocks on any menace attacker left with fewer than two blockers.
	}
	if attacker.Current.Keywords.Has(Flying) && !blocker.Current.Keywords.Has(Flying) && !blocker.Current.Keywords.Has(Reach) {
		return false
	}
	return true
}

// combatDamageStep assigns and applies combat damage for every attacker
// and blocker whose strike timing matches firstStrike (true for the First
// Strike Damage Step, false for the regular Combat Damage Step — a
// creature without first/double strike deals no damage in the first pass
// and is skipped there).
func (g *Game) combatDamageStep(firstStrike bool) {
	defenderID := g.Opponent(g.ActivePlayer)
	defender := g.Players[defenderID]

	for _, id := range g.Battlefield.IDs() {
		obj := g.Object(id)
		if obj == nil || obj.Permanent == nil || !obj.Permanent.Combat.Attacking {
			continue
		}
		if !g.strikesNow(obj, firstStrike) {
			continue
		}
		g.assignAndDealAttackerDamage(obj, defender)
	}
}

func (g *Game) strikesNow(obj *GameObject, firstStrike bool) bool {
	double := obj.Current.Keywords.Has(DoubleStrike)
	first := obj.Current.Keywords.Has(FirstStrike)
	if firstStrike {
		return first || double
	}
	return double || !(first || double)
}

func (g *Game) assignAndDealAttackerDamage(attacker *GameObject, defender *Player) {
	power := attacker.Power()
	if power <= 0 {
		return
	}
	blockers := attacker.Permanent.Combat.BlockedBy
	if len(blockers) == 0 {
		if attacker.Current.Keywords.Has(Defender) {
			return
		}
		g.dealCombatDamage(attacker, ObjectID(0), power, true, defender.ID)
		return
	}

	order := blockers
	if len(blockers) > 1 {
		order = g.Players[attacker.Permanent.Controller].Agent.ChooseOrder(g, blockers)
	}

	remaining := power
	trample := attacker.Current.Keywords.Has(Trample)
	for i, bid := range order {
		blocker := g.Object(bid)
		if blocker == nil {
			continue
		}
		lethal := blocker.Current.Toughness - blocker.Permanent.DamageMarked
		if attacker.Current.Keywords.Has(Deathtouch) && lethal > 1 {
			lethal = 1
		}
		assign := remaining
		if i < len(order)-1 || trample {
			if lethal < assign {
				assign = lethal
			}
		}
		if assign < 0 {
			assign = 0
		}
		g.dealCombatDamage(attacker, bid, assign, true, defender.ID)
		remaining -= assign
	}
	if trample && remaining > 0 {
		g.dealCombatDamage(attacker, ObjectID(0), remaining, true, defender.ID)
	}

	for _, bid := range order {
		blocker := g.Object(bid)
		if blocker == nil || blocker.Permanent.Combat.DamageAssigned {
			continue
		}
		g.dealCombatDamage(blocker, attacker.ID, blocker.Power(), true, 0)
		blocker.Permanent.Combat.DamageAssigned = true
	}
}

// dealCombatDamage is the single funnel for all combat damage, routing
// through the damage replacement hook and applying lifelink/deathtouch
// bookkeeping, matching the teacher's applyDamage single entry point.
func (g *Game) dealCombatDamage(source *GameObject, target ObjectID, amount int, combat bool, playerTarget PlayerID) {
	if amount <= 0 {
		return
	}
	payload, _ := g.Replace.Apply(g, ReplaceDamage, DamageEvent{Source: source.ID, Target: target, Amount: amount, Combat: combat})
	de := payload.(DamageEvent)
	if de.Prevented || de.Amount <= 0 {
		return
	}

	if target != 0 {
		tobj := g.Object(target)
		if tobj != nil && tobj.Permanent != nil {
			tobj.Permanent.DamageMarked += de.Amount
			if source.Current.Keywords.Has(Deathtouch) {
				tobj.Permanent.DeathtouchMarked = true
			}
		}
		g.Bus.Publish(event.Event{Turn: g.Turn, Phase: g.Phase.String(), Type: event.DealsCombatDamage, Source: int(source.ID), Targets: []int{int(target)}, Amount: de.Amount})
	} else {
		wasMonarch := g.HasMonarch && g.MonarchID == playerTarget
		g.LoseLife(playerTarget, de.Amount)
		g.Bus.Publish(event.Event{Turn: g.Turn, Phase: g.Phase.String(), Type: event.DealsCombatDamage, Source: int(source.ID), Player: int(playerTarget), Amount: de.Amount})
		// CR 716.4: dealing combat damage to the monarch makes the source's
		// controller the new monarch.
		if wasMonarch && source.Permanent != nil && source.Permanent.Controller != playerTarget {
			g.BecomeMonarch(source.Permanent.Controller)
		}
	}

	if source.Current.Keywords.Has(Lifelink) {
		g.GainLife(source.Permanent.Controller, de.Amount)
	}
}

// DealDamage is the non-combat counterpart used by spells/abilities
// ("deals 3 damage to any target"), sharing the same replacement funnel.
// target may be a PlayerObjectID-encoded player or an arena permanent id.
func (g *Game) DealDamage(source ObjectID, target ObjectID, amount int) {
	srcObj := g.Object(source)
	if srcObj == nil {
		return
	}
	payload, _ := g.Replace.Apply(g, ReplaceDamage, DamageEvent{Source: source, Target: target, Amount: amount, Combat: false})
	de := payload.(DamageEvent)
	if de.Prevented || de.Amount <= 0 {
		return
	}

	if p, ok := AsPlayerTarget(target); ok {
		g.LoseLife(p, de.Amount)
		if srcObj.Current.Keywords.Has(Lifelink) && srcObj.Permanent != nil {
			g.GainLife(srcObj.Permanent.Controller, de.Amount)
		}
		g.Bus.Publish(event.Event{Turn: g.Turn, Phase: g.Phase.String(), Type: event.DealsDamage, Source: int(source), Player: int(p), Amount: de.Amount})
		return
	}

	tobj := g.Object(target)
	if tobj != nil && tobj.Permanent != nil {
		tobj.Permanent.DamageMarked += de.Amount
		if srcObj.Current.Keywords.Has(Deathtouch) {
			tobj.Permanent.DeathtouchMarked = true
		}
	}
	if srcObj.Current.Keywords.Has(Lifelink) && srcObj.Permanent != nil {
		g.GainLife(srcObj.Permanent.Controller, de.Amount)
	}
	g.Bus.Publish(event.Event{Turn: g.Turn, Phase: g.Phase.String(), Type: event.DealsDamage, Source: int(source), Targets: []int{int(target)}, Amount: de.Amount})
}
