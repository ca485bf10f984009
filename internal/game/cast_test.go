package game

import "testing"

func TestCast_VanillaCreatureSpellEntersBattlefield(t *testing.T) {
	g, _, _ := newTestGame(t)
	bear := putInHand(g, grizzlyBears(), 0)
	g.Players[0].Mana.Add(ManaUnit{Color: Green})
	g.Players[0].Mana.Add(ManaUnit{Color: ColorNone})

	g.performAction(0, ActionChoice{Kind: ActionCastSpell, Targets: []ObjectID{bear.ID}})
	if _, ok := g.TopOfStack(); !ok {
		t.Fatalf("expected Grizzly Bears spell on the stack")
	}
	g.ResolveTop()

	obj := g.Object(bear.ID)
	if obj == nil || !obj.IsPermanent() {
		t.Fatalf("expected Grizzly Bears to be a permanent after resolving, zone=%v", obj.Zone)
	}
	if obj.Permanent.Controller != 0 {
		t.Fatalf("expected caster to control the resolved creature")
	}
	if got := obj.Current.Power; got != 2 {
		t.Fatalf("expected printed power 2, got %d", got)
	}
}

func TestCast_SpellIsNotFree(t *testing.T) {
	g, _, _ := newTestGame(t)
	bear := putInHand(g, grizzlyBears(), 0)
	// No mana added: Satisfy must fail and the cast must not go through.

	g.performAction(0, ActionChoice{Kind: ActionCastSpell, Targets: []ObjectID{bear.ID}})
	if _, ok := g.TopOfStack(); ok {
		t.Fatalf("expected casting to fail without enough mana")
	}
	if obj := g.Object(bear.ID); obj == nil || obj.Zone != ZoneHand {
		t.Fatalf("expected Grizzly Bears to remain in hand, zone=%v", obj.Zone)
	}
}

func TestCast_AuraSpellAttachesOnResolve(t *testing.T) {
	g, _, _ := newTestGame(t)
	bear := putPermanent(g, grizzlyBears(), 1)
	pac := putInHand(g, pacifism(), 0)
	g.Players[0].Mana.Add(ManaUnit{Color: White})
	g.Players[0].Mana.Add(ManaUnit{Color: ColorNone})

	g.Players[0].Agent.(*agentStub).targetsFn = func(candidates []ObjectID, min, max int) []ObjectID {
		return []ObjectID{bear.ID}
	}
	g.performAction(0, ActionChoice{Kind: ActionCastSpell, Targets: []ObjectID{pac.ID}})
	g.ResolveTop()

	auraObj := g.Object(pac.ID)
	if auraObj == nil || !auraObj.IsPermanent() {
		t.Fatalf("expected Pacifism to be a permanent after resolving")
	}
	if auraObj.Permanent.Attachment.AttachedTo != bear.ID {
		t.Fatalf("expected Pacifism attached to the bear, attachedTo=%v", auraObj.Permanent.Attachment.AttachedTo)
	}
	if !bear.Current.CantAttack || !bear.Current.CantBlock {
		t.Fatalf("expected enchanted bear to be unable to attack or block")
	}
}
