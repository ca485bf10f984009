package game

import "testing"

func TestCombat_TrampleAssignsLethalThenExcessToPlayer(t *testing.T) {
	g, _, _ := newTestGame(t)
	attacker := putPermanent(g, Characteristics{
		Name: "Rampager", Types: []CardType{TypeCreature}, Power: 5, Toughness: 5, Keywords: Trample,
	}, 0)
	blocker := putPermanent(g, Characteristics{
		Name: "Wall", Types: []CardType{TypeCreature}, Power: 1, Toughness: 2,
	}, 1)

	attacker.Permanent.Combat.Attacking = true
	attacker.Permanent.Combat.BlockedBy = []ObjectID{blocker.ID}
	blocker.Permanent.Combat.Blocking = true
	blocker.Permanent.Combat.Blocked = []ObjectID{attacker.ID}

	g.combatDamageStep(false)

	if got := blocker.Permanent.DamageMarked; got != 2 {
		t.Fatalf("expected blocker assigned exactly lethal (2), got %d", got)
	}
	if got := g.Players[1].Life; got != StartingLife-3 {
		t.Fatalf("expected 3 excess trample damage to the defending player, life=%d", got)
	}
	if got := attacker.Permanent.DamageMarked; got != 1 {
		t.Fatalf("expected attacker to take the blocker's power back, got %d", got)
	}
}

func TestCombat_LifelinkDeathtouchTrade(t *testing.T) {
	g, _, _ := newTestGame(t)
	attacker := putPermanent(g, Characteristics{
		Name: "Assassin", Types: []CardType{TypeCreature}, Power: 1, Toughness: 1, Keywords: Deathtouch | Lifelink,
	}, 0)
	blocker := putPermanent(g, Characteristics{
		Name: "Behemoth", Types: []CardType{TypeCreature}, Power: 6, Toughness: 6,
	}, 1)

	attacker.Permanent.Combat.Attacking = true
	attacker.Permanent.Combat.BlockedBy = []ObjectID{blocker.ID}
	blocker.Permanent.Combat.Blocking = true
	blocker.Permanent.Combat.Blocked = []ObjectID{attacker.ID}

	g.combatDamageStep(false)

	if got := blocker.Permanent.DamageMarked; got != 1 {
		t.Fatalf("expected deathtouch to assign only 1 damage as lethal, got %d", got)
	}
	if !blocker.Permanent.DeathtouchMarked {
		t.Fatalf("expected the blocker marked as having taken deathtouch damage")
	}
	if got := attacker.Permanent.DamageMarked; got != 6 {
		t.Fatalf("expected attacker to take the full 6 damage back, got %d", got)
	}
	if got := g.Players[0].Life; got != StartingLife+1 {
		t.Fatalf("expected lifelink to gain the attacker's controller 1 life, life=%d", got)
	}

	g.CheckStateBasedActions()
	if obj := g.Object(blocker.ID); obj == nil || obj.IsPermanent() {
		t.Fatalf("expected the lethally-damaged blocker to die to state-based actions")
	}
	if obj := g.Object(attacker.ID); obj == nil || obj.IsPermanent() {
		t.Fatalf("expected the lethally-damaged attacker to die to state-based actions")
	}
}

func TestCombat_MenaceUndoesSingleBlockerAssignment(t *testing.T) {
	g, _, _ := newTestGame(t)
	attacker := putPermanent(g, Characteristics{
		Name: "Shade", Types: []CardType{TypeCreature}, Power: 2, Toughness: 2, Keywords: Menace,
	}, 0)
	blocker := putPermanent(g, grizzlyBears(), 1)

	attacker.Permanent.Combat.Attacking = true
	attacker.Permanent.Combat.AttackTarget = AttackTarget{IsPlayer: true, Player: 1}

	g.Players[1].Agent.(*agentStub).targetsFn = func(candidates []ObjectID, min, max int) []ObjectID {
		if min == 0 {
			return candidates
		}
		return candidates[:1]
	}
	g.declareBlockersStep()

	if len(attacker.Permanent.Combat.BlockedBy) != 0 {
		t.Fatalf("expected a single block against a menace attacker to be rejected, blockedBy=%v", attacker.Permanent.Combat.BlockedBy)
	}
	if blocker.Permanent.Combat.Blocking {
		t.Fatalf("expected the lone blocker's block assignment to be undone")
	}
}

func TestCombat_MenaceAcceptsTwoBlockers(t *testing.T) {
	g, _, _ := newTestGame(t)
	attacker := putPermanent(g, Characteristics{
		Name: "Shade", Types: []CardType{TypeCreature}, Power: 2, Toughness: 2, Keywords: Menace,
	}, 0)
	blockerA := putPermanent(g, grizzlyBears(), 1)
	blockerB := putPermanent(g, grizzlyBears(), 1)

	attacker.Permanent.Combat.Attacking = true
	attacker.Permanent.Combat.AttackTarget = AttackTarget{IsPlayer: true, Player: 1}

	g.Players[1].Agent.(*agentStub).targetsFn = func(candidates []ObjectID, min, max int) []ObjectID {
		if min == 0 {
			return candidates
		}
		return candidates[:1]
	}
	g.declareBlockersStep()

	if len(attacker.Permanent.Combat.BlockedBy) != 2 {
		t.Fatalf("expected both blocks against a menace attacker to stand, blockedBy=%v", attacker.Permanent.Combat.BlockedBy)
	}
	if !blockerA.Permanent.Combat.Blocking || !blockerB.Permanent.Combat.Blocking {
		t.Fatalf("expected both blockers to remain assigned")
	}
}
