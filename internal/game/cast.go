package game

import "github.com/aldenvale/mtgkernel/internal/event"

// performAction dispatches a chosen ActionChoice to the right executor.
// Mana abilities never reach here via a normal cast path because
// legalActionsFor offers them as ActionActivateAbility and
// executeActivateAbility special-cases AbilityMana to bypass the stack.
func (g *Game) performAction(p PlayerID, choice ActionChoice) {
	switch choice.Kind {
	case ActionPlayLand:
		g.executePlayLand(p, choice)
	case ActionCastSpell:
		g.executeCastSpell(p, choice)
	case ActionActivateAbility:
		g.executeActivateAbility(p, choice)
	}
}

func (g *Game) executePlayLand(p PlayerID, choice ActionChoice) {
	if len(choice.Targets) == 0 {
		return
	}
	id := choice.Targets[0]
	obj := g.Object(id)
	if obj == nil {
		return
	}
	player := g.Players[p]
	player.Hand.Remove(id)
	g.enterBattlefield(obj, p)
	player.LandPlayedThisTurn = true
	g.Bus.Publish(event.Event{Turn: g.Turn, Phase: g.Phase.String(), Type: event.LandPlayed, Player: int(p), Source: int(id), CardName: obj.Current.Name})
}

// executeCastSpell runs the full cast transaction: announce, choose modes
// and targets, determine total cost (including AdditionalCost, e.g. a
// kicker), attempt payment via mana.go's Satisfy, and only commit the
// transaction (remove from hand, pay, put on stack) once every step
// succeeds — otherwise nothing changes, matching the teacher's
// backtracking-with-undo payment model generalized from a fixed printed
// cost to an arbitrary computed one.
func (g *Game) executeCastSpell(p PlayerID, choice ActionChoice) {
	if len(choice.Targets) == 0 {
		return
	}
	id := choice.Targets[0]
	obj := g.Object(id)
	if obj == nil {
		return
	}
	player := g.Players[p]

	// A vanilla creature (or any spell with no effect of its own — combat
	// math alone) carries no AbilitySpec at all, and a permanent spell whose
	// first ability belongs to the permanent it becomes (see isSpellAbility)
	// has no spell effect either; in both cases ability stays nil and every
	// step below that consults it is skipped.
	var ability *AbilitySpec
	if len(obj.Current.Abilities) > 0 && isSpellAbility(obj.Current.Abilities[0]) {
		ability = &obj.Current.Abilities[0]
	}

	// Targets are chosen before cost is finalized: a target with ward
	// (CR 702.21) adds its ward cost to what the caster must pay, so the
	// combined cost can't be known until targets are.
	var targets []ObjectID
	if ability != nil && ability.LegalTargets != nil {
		candidates := ability.LegalTargets(g, id, p)
		targets = player.Agent.ChooseTargets(g, candidates, ability.MinTargets, ability.MaxTargets)
		if len(targets) < ability.MinTargets {
			return
		}
	}

	// A spell's mana cost is its printed Characteristics.ManaCost, not
	// AbilitySpec.Cost (which exists for activated-ability costs like
	// Equip); AdditionalCost lets an effect like kicker override the whole
	// thing including any non-mana component.
	cost := Cost{Mana: obj.Current.ManaCost}
	if ability != nil && ability.AdditionalCost != nil {
		cost = ability.AdditionalCost(g, id, choice)
	}
	cost.Mana.XValue = choice.X
	cost.Mana = addManaCost(cost.Mana, wardTotalCost(g, p, targets))

	plan, ok := Satisfy(&player.Mana, cost.Mana)
	if !ok {
		return
	}

	player.Hand.Remove(id)
	Pay(&player.Mana, plan)
	if cost.Life > 0 {
		g.LoseLife(p, cost.Life)
	}

	obj.Kind = ObjectSpellOnStack
	g.PutOnStack(obj, StackEntryInfo{Controller: p, Targets: targets, ChosenX: choice.X, ChosenModes: choice.Modes})
	g.Bus.Publish(event.Event{Turn: g.Turn, Phase: g.Phase.String(), Type: event.SpellCast, Player: int(p), Source: int(id), CardName: obj.Current.Name})
}

// executeActivateAbility handles both stack-using activated abilities and
// mana abilities (CR 605, which never use the stack and resolve
// immediately).
func (g *Game) executeActivateAbility(p PlayerID, choice ActionChoice) {
	if len(choice.Targets) == 0 {
		return
	}
	id := choice.Targets[0]
	obj := g.Object(id)
	if obj == nil || choice.AbilityIx >= len(obj.Current.Abilities) {
		return
	}
	ability := &obj.Current.Abilities[choice.AbilityIx]
	player := g.Players[p]

	// Targets before cost, same reasoning as executeCastSpell: a warded
	// target's cost isn't known until targets are chosen.
	var targets []ObjectID
	if ability.LegalTargets != nil {
		candidates := ability.LegalTargets(g, id, p)
		targets = player.Agent.ChooseTargets(g, candidates, ability.MinTargets, ability.MaxTargets)
		if len(targets) < ability.MinTargets {
			return
		}
	}

	cost := ability.Cost
	if ability.AdditionalCost != nil {
		cost = ability.AdditionalCost(g, id, choice)
	}
	cost.Mana.XValue = choice.X
	cost.Mana = addManaCost(cost.Mana, wardTotalCost(g, p, targets))

	plan, ok := Satisfy(&player.Mana, cost.Mana)
	if !ok {
		return
	}
	if cost.Tap {
		if obj.Permanent == nil || obj.Permanent.Tapped {
			return
		}
	}

	Pay(&player.Mana, plan)
	if cost.Tap {
		obj.Permanent.Tapped = true
	}
	if cost.SacrificeSelf {
		g.Sacrifice(obj)
	}

	if ability.Kind == AbilityMana {
		if ability.ManaProduce != nil {
			for _, unit := range ability.ManaProduce(g, id, choice) {
				player.Mana.Add(unit)
			}
		}
		return
	}

	entry := StackEntryInfo{Controller: p, Targets: targets, ChosenX: choice.X, ChosenModes: choice.Modes, SourceAbilityIx: choice.AbilityIx, SourceObject: id}
	stacked := &GameObject{Kind: ObjectStackedAbility, Owner: p, Print: obj.Current, Current: obj.Current}
	g.PutOnStack(stacked, entry)
	g.Bus.Publish(event.Event{Turn: g.Turn, Phase: g.Phase.String(), Type: event.AbilityActivated, Player: int(p), Source: int(id), CardName: obj.Current.Name})
}

// enterBattlefield moves obj onto the battlefield under controller's
// control and fires any enters-the-battlefield triggers. It runs the
// enters-the-battlefield replacement hook, but the result is discarded:
// no replacement effect can change how (or whether) obj enters.
func (g *Game) enterBattlefield(obj *GameObject, controller PlayerID) {
	payload, _ := g.Replace.Apply(g, ReplaceEntersBattlefield, ZoneChangeEvent{Object: obj.ID, From: obj.Zone, To: ZoneBattlefield})
	_ = payload

	obj.Zone = ZoneBattlefield
	obj.Kind = ObjectPermanent
	obj.Timestamp = g.Layers.NextTimestamp()
	obj.Permanent = &Permanent{
		Controller:             controller,
		SummoningSickness:      true,
		TurnEnteredBattlefield: g.Turn,
	}
	g.registerObject(obj)
	g.Battlefield.Append(obj.ID)
	g.installStaticAbilities(obj)
	g.Layers.Recompute(g)
	g.Bus.Publish(event.Event{Turn: g.Turn, Phase: g.Phase.String(), Type: event.EntersBattlefield, Source: int(obj.ID), Player: int(controller), CardName: obj.Current.Name})
}

// CreateToken builds a new token permanent directly onto the battlefield
// under controller's control: tokens have no backing card, so chars
// populates both Print and Current via the normal enterBattlefield path
// rather than going through a zone change from the library/hand first.
func (g *Game) CreateToken(chars Characteristics, controller PlayerID, source string) *GameObject {
	obj := &GameObject{Owner: controller, Zone: ZoneCommand, Print: chars, Current: chars, TokenSource: source}
	g.enterBattlefield(obj, controller)
	obj.Kind = ObjectToken
	return obj
}

// installStaticAbilities registers a layer-engine effect for every static
// ability obj carries whose template (AbilitySpec.ContinuousApply) is
// non-nil, binding Source to obj's own id now that obj actually has one —
// the template itself is built once at card-construction time, before any
// ObjectID exists (see cards.go).
func (g *Game) installStaticAbilities(obj *GameObject) {
	for _, ab := range obj.Current.Abilities {
		if ab.Kind != AbilityStatic || ab.ContinuousApply == nil {
			continue
		}
		eff := *ab.ContinuousApply
		eff.Source = obj.ID
		g.Layers.Install(&eff)
	}
}

// LoseLife reduces a player's life total, routing through the life-loss
// replacement hook (CR 119.10 effects like "if you would lose life, ...").
func (g *Game) LoseLife(p PlayerID, n int) {
	payload, _ := g.Replace.Apply(g, ReplaceLifeLoss, n)
	amt := payload.(int)
	g.Players[p].Life -= amt
	g.Bus.Publish(event.Event{Turn: g.Turn, Phase: g.Phase.String(), Type: event.LifeLost, Player: int(p), Amount: amt})
}

// GainLife increases a player's life total, routing through the life-gain
// replacement hook (CR 119.10's other half).
func (g *Game) GainLife(p PlayerID, n int) {
	payload, _ := g.Replace.Apply(g, ReplaceLifeGain, n)
	amt := payload.(int)
	g.Players[p].Life += amt
	g.Bus.Publish(event.Event{Turn: g.Turn, Phase: g.Phase.String(), Type: event.LifeGained, Player: int(p), Amount: amt})
}

// Sacrifice moves a permanent its controller controls to its owner's
// graveyard as a cost or effect (CR 701.20); routes through the same
// zone-change replacement hook as combat/SBA destruction.
func (g *Game) Sacrifice(obj *GameObject) {
	g.destroyOrSacrifice(obj, true)
}

// PutIntoGraveyardUnconditional moves a permanent straight to its owner's
// graveyard with no indestructible check and no regeneration shield
// consumed, for the two CR 704 state-based actions that are a graveyard
// move rather than a "destroy" effect (zero/negative toughness, 704.5f;
// non-positive planeswalker loyalty, 704.5i) — both bypass indestructible
// by rule, unlike lethal-damage or deathtouch-damage destruction.
func (g *Game) PutIntoGraveyardUnconditional(obj *GameObject) {
	g.destroyOrSacrifice(obj, false)
}

// Destroy moves a permanent to its owner's graveyard as a result of a
// destroy effect or lethal/state-based destruction, subject to
// indestructible (CR 701.7) and regeneration shields.
func (g *Game) Destroy(obj *GameObject) {
	if obj.Current.Keywords.Has(Indestructible) {
		return
	}
	if obj.Permanent != nil && obj.Permanent.RegenerationShield > 0 {
		g.regenerate(obj)
		return
	}
	g.destroyOrSacrifice(obj, false)
}

func (g *Game) regenerate(obj *GameObject) {
	obj.Permanent.RegenerationShield--
	obj.Permanent.Tapped = true
	obj.Permanent.DamageMarked = 0
	obj.Permanent.Combat = CombatRole{}
	g.Bus.Publish(event.Event{Turn: g.Turn, Phase: g.Phase.String(), Type: event.ZoneChange, Source: int(obj.ID), Details: "regenerated"})
}

func (g *Game) destroyOrSacrifice(obj *GameObject, sacrifice bool) {
	payload, replaced := g.Replace.Apply(g, ReplaceZoneChange, ZoneChangeEvent{Object: obj.ID, From: ZoneBattlefield, To: ZoneGraveyard})
	zc := payload.(ZoneChangeEvent)
	if replaced && zc.Replaced {
		return
	}

	g.Battlefield.Remove(obj.ID)
	g.Layers.RemoveBySource(obj.ID)
	g.Replace.RemoveBySource(obj.ID)
	g.detachFromAll(obj)

	owner := g.Players[obj.Owner]
	obj.Zone = ZoneGraveyard
	obj.Permanent = nil
	obj.Timestamp = g.Layers.NextTimestamp()
	owner.Graveyard.Append(obj.ID)

	evType := event.ZoneChange
	if !sacrifice {
		evType = event.Dies
	}
	g.Bus.Publish(event.Event{Turn: g.Turn, Phase: g.Phase.String(), Type: evType, Source: int(obj.ID), Player: int(obj.Owner), FromZone: "Battlefield", Zone: "Graveyard", CardName: obj.Current.Name})
	g.Layers.Recompute(g)
}

// detachFromAll clears attachment bookkeeping when obj leaves the
// battlefield: equipment attached to it becomes unattached, auras attached
// to it keep pointing at it so the next SBA pass finds them attached to an
// illegal object (see legalAttachment in sba.go), and if obj was itself an
// aura/equipment it is detached from its host.
func (g *Game) detachFromAll(obj *GameObject) {
	if obj.Permanent == nil {
		return
	}
	for _, id := range obj.Permanent.Attachment.Attached {
		if host := g.Object(id); host != nil && host.Permanent != nil && !host.Current.HasType(TypeEnchantment) {
			host.Permanent.Attachment.AttachedTo = 0
		}
	}
	if host := g.Object(obj.Permanent.Attachment.AttachedTo); host != nil && host.Permanent != nil {
		kept := host.Permanent.Attachment.Attached[:0]
		for _, id := range host.Permanent.Attachment.Attached {
			if id != obj.ID {
				kept = append(kept, id)
			}
		}
		host.Permanent.Attachment.Attached = kept
	}
}
