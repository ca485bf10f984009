package game

import "github.com/aldenvale/mtgkernel/internal/event"

// PendingTrigger is a triggered ability that has fired but not yet been
// placed on the stack, generalizing the teacher's PendingTrigger (chain.go)
// from a single execution-speed field to the full APNAP accounting needed
// once triggers can belong to either player.
type PendingTrigger struct {
	Source    ObjectID
	AbilityIx int
	Controller PlayerID
	Data      TriggerEventData
	Mandatory bool
}

// TriggerManager watches the event bus for everything triggered abilities
// care about, queues PendingTriggers, and places them on the stack in
// APNAP order (active player's triggers first) once a player would next
// receive priority, per CR 603.3. Players are not asked to order their own
// simultaneous triggers: within one player's group they keep the order in
// which they fired.
type TriggerManager struct {
	g       *Game
	pending []PendingTrigger
}

// NewTriggerManager wires t to g's event bus via SubscribeAll, since a
// triggered ability's TriggerFilter must see every event type to decide
// whether it cares (matching the teacher's collectTriggers scanning every
// object on every relevant event rather than pre-indexing by event type).
func NewTriggerManager(g *Game) *TriggerManager {
	t := &TriggerManager{g: g}
	g.Bus.SubscribeAll(t.onEvent)
	return t
}

func (t *TriggerManager) onEvent(e event.Event) {
	ev := toTriggerEvent(e.Type)
	if ev == TriggerNone {
		return
	}
	data := TriggerEventData{
		Object:   ObjectID(e.Source),
		Player:   PlayerID(e.Player),
		Amount:   e.Amount,
		FromZone: zoneKindFromString(e.FromZone),
		ToZone:   zoneKindFromString(e.Zone),
	}
	for _, obj := range t.g.Objects() {
		for ix, ab := range obj.Current.Abilities {
			if ab.Kind != AbilityTriggered || ab.TriggerOn != ev {
				continue
			}
			if ab.TriggerFilter != nil && !ab.TriggerFilter(t.g, obj.ID, data) {
				continue
			}
			if ab.IntervalCheck != nil && !ab.IntervalCheck(t.g, obj.ID) {
				continue
			}
			t.pending = append(t.pending, PendingTrigger{
				Source:     obj.ID,
				AbilityIx:  ix,
				Controller: t.controllerOf(obj),
				Data:       data,
				Mandatory:  ab.IsMandatory,
			})
		}
	}
}

func (t *TriggerManager) controllerOf(o *GameObject) PlayerID {
	if o.Permanent != nil {
		return o.Permanent.Controller
	}
	return o.Owner
}

// HasPending reports whether any trigger awaits stacking.
func (t *TriggerManager) HasPending() bool { return len(t.pending) > 0 }

// DrainAPNAP removes every pending trigger and returns them ordered: the
// active player's triggers first, then the non-active player's, each
// group mandatory-before-optional, per CR 603.3b.
func (t *TriggerManager) DrainAPNAP() []PendingTrigger {
	pending := t.pending
	t.pending = nil

	ap := t.g.ActivePlayer
	nap := t.g.Opponent(ap)

	var groups [4][]PendingTrigger // ap-mandatory, ap-optional, nap-mandatory, nap-optional
	for _, pt := range pending {
		idx := 0
		if pt.Controller == nap {
			idx += 2
		}
		if !pt.Mandatory {
			idx++
		}
		groups[idx] = append(groups[idx], pt)
	}
	var out []PendingTrigger
	for _, gset := range groups {
		out = append(out, gset...)
	}
	return out
}

func toTriggerEvent(t event.Type) TriggerEvent {
	switch t {
	case event.EntersBattlefield:
		return TriggerEntersBattlefield
	case event.LeavesBattlefield:
		return TriggerLeavesBattlefield
	case event.Dies:
		return TriggerDies
	case event.BeginningOfUpkeep:
		return TriggerUpkeep
	case event.BeginningOfEndStep:
		return TriggerEndStep
	case event.Attacks:
		return TriggerAttacks
	case event.Blocks:
		return TriggerBlocks
	case event.DealsCombatDamage:
		return TriggerDealsCombatDamage
	case event.DealsDamage:
		return TriggerDealsDamage
	case event.SpellCast:
		return TriggerSpellCast
	case event.LandPlayed:
		return TriggerLandPlayed
	case event.CounterAdded:
		return TriggerCounterAdded
	case event.ZoneChange:
		return TriggerZoneChange
	case event.ControlChanged:
		return TriggerControlChanged
	default:
		return TriggerNone
	}
}

func zoneKindFromString(s string) ZoneKind {
	switch s {
	case "Library":
		return ZoneLibrary
	case "Hand":
		return ZoneHand
	case "Battlefield":
		return ZoneBattlefield
	case "Graveyard":
		return ZoneGraveyard
	case "Stack":
		return ZoneStack
	case "Exile":
		return ZoneExile
	case "Command":
		return ZoneCommand
	default:
		return ZoneLibrary
	}
}
