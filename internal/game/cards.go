package game

// This file holds a small sample card set, enough to exercise every
// system the kernel implements (mana, combat keywords, auras, equipment,
// legendary rule, ward, triggered/activated/static abilities) — not a
// full card database, which is explicitly out of scope.

func generic(n int) ManaSymbol { return ManaSymbol{Kind: SymbolGeneric, Generic: n} }
func colored(c Color) ManaSymbol {
	switch c {
	case White:
		return ManaSymbol{Kind: SymbolWhite}
	case Blue:
		return ManaSymbol{Kind: SymbolBlue}
	case Black:
		return ManaSymbol{Kind: SymbolBlack}
	case Red:
		return ManaSymbol{Kind: SymbolRed}
	case Green:
		return ManaSymbol{Kind: SymbolGreen}
	default:
		return ManaSymbol{Kind: SymbolColorless}
	}
}

func cost(symbols ...ManaSymbol) ManaCost { return ManaCost{Symbols: symbols} }

func basicLand(name string, produces Color) func() Characteristics {
	return func() Characteristics {
		return Characteristics{
			Name:  name,
			Types: []CardType{TypeLand},
			Super: SuperBasic,
			Abilities: []AbilitySpec{{
				Kind: AbilityMana,
				CanActivate: func(g *Game, source ObjectID, controller PlayerID) bool {
					obj := g.Object(source)
					return obj != nil && obj.Permanent != nil && !obj.Permanent.Tapped
				},
				Cost: Cost{Tap: true},
				ManaProduce: func(g *Game, source ObjectID, choice ActionChoice) []ManaUnit {
					return []ManaUnit{{Color: produces}}
				},
				Text: "{T}: Add one mana of this land's color.",
			}},
		}
	}
}

func lightningStrike() Characteristics {
	return Characteristics{
		Name:     "Lightning Strike",
		Types:    []CardType{TypeInstant},
		Colors:   Red,
		ManaCost: cost(generic(1), colored(Red)),
		Text:     "Lightning Strike deals 3 damage to any target.",
		Abilities: []AbilitySpec{{
			LegalTargets: anyTarget,
			MinTargets:   1,
			MaxTargets:   1,
			Resolve: func(g *Game, source ObjectID, entry StackEntryInfo) {
				if len(entry.Targets) == 0 {
					return
				}
				g.DealDamage(source, entry.Targets[0], 3)
			},
		}},
	}
}

func giantGrowth() Characteristics {
	return Characteristics{
		Name:     "Giant Growth",
		Types:    []CardType{TypeInstant},
		Colors:   Green,
		ManaCost: cost(colored(Green)),
		Text:     "Target creature gets +3/+3 until end of turn.",
		Abilities: []AbilitySpec{{
			LegalTargets: creatureTargets,
			MinTargets:   1,
			MaxTargets:   1,
			Resolve: func(g *Game, source ObjectID, entry StackEntryInfo) {
				if len(entry.Targets) == 0 {
					return
				}
				target := entry.Targets[0]
				g.Layers.Install(&ContinuousEffect{
					Layer:    Layer7cPTModifying,
					Source:   source,
					Duration: DurationEndOfTurn,
					Affects:  func(g *Game, eff *ContinuousEffect, t ObjectID) bool { return t == target },
					Apply: func(g *Game, eff *ContinuousEffect, t ObjectID, c Characteristics) Characteristics {
						c.Power += 3
						c.Toughness += 3
						return c
					},
				})
				g.Layers.Recompute(g)
			},
		}},
	}
}

func healingSalve() Characteristics {
	return Characteristics{
		Name:     "Healing Salve",
		Types:    []CardType{TypeInstant},
		Colors:   White,
		ManaCost: cost(colored(White)),
		Text:     "Choose one — Target player gains 3 life. • Prevent the next 3 damage that would be dealt to any one target this turn.",
		Abilities: []AbilitySpec{{
			MinTargets: 1, MaxTargets: 1,
			LegalTargets: func(g *Game, source ObjectID, controller PlayerID) []ObjectID {
				out := make([]ObjectID, 0, len(g.Players))
				for _, p := range g.Players {
					if !p.Lost {
						out = append(out, PlayerObjectID(p.ID))
					}
				}
				return out // a real modal implementation would branch on choice.Modes (see DESIGN.md); only the life-gain mode is implemented
			},
			Resolve: func(g *Game, source ObjectID, entry StackEntryInfo) {
				if len(entry.Targets) == 0 {
					return
				}
				p, ok := AsPlayerTarget(entry.Targets[0])
				if !ok {
					return
				}
				g.GainLife(p, 3)
			},
		}},
	}
}

func grizzlyBears() Characteristics {
	return Characteristics{
		Name: "Grizzly Bears", Types: []CardType{TypeCreature}, Colors: Green,
		ManaCost: cost(generic(1), colored(Green)), Power: 2, Toughness: 2,
	}
}

func hillGiant() Characteristics {
	return Characteristics{
		Name: "Hill Giant", Types: []CardType{TypeCreature}, Colors: Red,
		ManaCost: cost(generic(3), colored(Red)), Power: 3, Toughness: 3,
	}
}

func serraAngel() Characteristics {
	return Characteristics{
		Name: "Serra Angel", Types: []CardType{TypeCreature}, Colors: White,
		ManaCost: cost(generic(3), colored(White), colored(White)),
		Power:    4, Toughness: 4,
		Keywords: Flying | Vigilance,
		Text:     "Flying, vigilance",
	}
}

func nightmareWeaver() Characteristics {
	return Characteristics{
		Name: "Nightmare Weaver", Types: []CardType{TypeCreature}, Colors: Black,
		ManaCost: cost(generic(2), colored(Black)), Power: 2, Toughness: 2,
		Keywords: Deathtouch,
		Text:     "Deathtouch",
	}
}

func gnarledTrampler() Characteristics {
	return Characteristics{
		Name: "Gnarled Trampler", Types: []CardType{TypeCreature}, Colors: Green,
		ManaCost: cost(generic(4), colored(Green)), Power: 5, Toughness: 5,
		Keywords: Trample,
		Text:     "Trample",
	}
}

func vampireNighthawk() Characteristics {
	return Characteristics{
		Name: "Vampire Nighthawk", Types: []CardType{TypeCreature}, Colors: Black,
		ManaCost: cost(generic(2), colored(Black), colored(Black)), Power: 2, Toughness: 3,
		Keywords: Flying | Deathtouch | Lifelink,
		Text:     "Flying, deathtouch, lifelink",
	}
}

func silverbackGuardian() Characteristics {
	return Characteristics{
		Name: "Silverback Guardian", Types: []CardType{TypeCreature}, Colors: Green,
		ManaCost: cost(generic(3), colored(Green)), Power: 3, Toughness: 4,
		Ward: Ward{Active: true, Cost: cost(generic(2))},
		Text: "Ward {2}",
	}
}

// shockTerrain and ancestralHomeland are a Blood-Moon/Urborg-style pair of
// static land-altering enchantments: one strips nonbasic lands of their
// types and abilities in favor of producing a single color, the other
// gives every land an added {B} mana ability (its type line is left
// unchanged).
func shockTerrain() Characteristics {
	return Characteristics{
		Name: "Shock Terrain", Types: []CardType{TypeEnchantment}, Colors: Red,
		ManaCost: cost(generic(2), colored(Red)),
		Text:     "Nonbasic lands are Mountains.",
		Abilities: []AbilitySpec{{
			Kind: AbilityStatic,
			ContinuousApply: &ContinuousEffect{
				Layer: Layer4TypeChanging,
				Affects: func(g *Game, eff *ContinuousEffect, target ObjectID) bool {
					obj := g.Object(target)
					return obj != nil && obj.IsPermanent() && obj.Current.HasType(TypeLand) && obj.Current.Super&SuperBasic == 0
				},
				Apply: func(g *Game, eff *ContinuousEffect, target ObjectID, c Characteristics) Characteristics {
					c.Types = []CardType{TypeLand}
					c.Name = "Mountain"
					c.Abilities = []AbilitySpec{{
						Kind:        AbilityMana,
						Cost:        Cost{Tap: true},
						ManaProduce: func(g *Game, source ObjectID, choice ActionChoice) []ManaUnit { return []ManaUnit{{Color: Red}} },
					}}
					return c
				},
			},
		}},
	}
}

func ancestralHomeland() Characteristics {
	return Characteristics{
		Name: "Ancestral Homeland", Types: []CardType{TypeEnchantment}, Colors: Black,
		ManaCost: cost(generic(1), colored(Black)),
		Text:     "All lands are Swamps in addition to their other types.",
		Abilities: []AbilitySpec{{
			Kind: AbilityStatic,
			ContinuousApply: &ContinuousEffect{
				Layer: Layer4TypeChanging,
				Affects: func(g *Game, eff *ContinuousEffect, target ObjectID) bool {
					obj := g.Object(target)
					return obj != nil && obj.IsPermanent() && obj.Current.HasType(TypeLand)
				},
				Apply: func(g *Game, eff *ContinuousEffect, target ObjectID, c Characteristics) Characteristics {
					if !c.HasType(TypeLand) {
						return c
					}
					c.Abilities = append(append([]AbilitySpec(nil), c.Abilities...), AbilitySpec{
						Kind:        AbilityMana,
						Cost:        Cost{Tap: true},
						ManaProduce: func(g *Game, source ObjectID, choice ActionChoice) []ManaUnit { return []ManaUnit{{Color: Black}} },
					})
					return c
				},
			},
		}},
	}
}

func pacifism() Characteristics {
	return Characteristics{
		Name: "Pacifism", Types: []CardType{TypeEnchantment}, Colors: White,
		ManaCost: cost(generic(1), colored(White)),
		Text:     "Enchant creature. Enchanted creature can't attack or block.",
		Abilities: []AbilitySpec{{
			LegalTargets: creatureTargets,
			MinTargets:   1, MaxTargets: 1,
			Resolve: func(g *Game, source ObjectID, entry StackEntryInfo) {
				if len(entry.Targets) == 0 {
					return
				}
				attachAura(g, source, entry.Targets[0])
			},
		}},
	}
}

func rustedGauntlet() Characteristics {
	return Characteristics{
		Name: "Rusted Gauntlet", Types: []CardType{TypeArtifact}, Colors: ColorNone,
		ManaCost: cost(generic(2)),
		Text:     "Equip creature you control. Equipped creature gets +2/+0.",
		Abilities: []AbilitySpec{{
			Kind:         AbilityActivated,
			Cost:         Cost{Mana: cost(generic(1))},
			LegalTargets: ownedCreatureTargets,
			MinTargets:   1, MaxTargets: 1,
			Resolve: func(g *Game, source ObjectID, entry StackEntryInfo) {
				if len(entry.Targets) == 0 {
					return
				}
				attachEquipment(g, source, entry.Targets[0])
			},
			Text: "Equip {1}",
		}},
	}
}

func lordThaddeus() Characteristics {
	return Characteristics{
		Name: "Lord Thaddeus, First of His Name", Types: []CardType{TypeCreature}, Colors: White,
		Super: SuperLegendary, ManaCost: cost(generic(2), colored(White), colored(White)),
		Power: 3, Toughness: 3, Keywords: Vigilance,
		Text: "Vigilance. Other creatures you control get +1/+1.",
		Abilities: []AbilitySpec{{
			Kind: AbilityStatic,
			ContinuousApply: &ContinuousEffect{
				Layer: Layer7cPTModifying,
				Affects: func(g *Game, eff *ContinuousEffect, target ObjectID) bool {
					obj := g.Object(target)
					source := g.Object(eff.Source)
					if obj == nil || source == nil || source.Permanent == nil {
						return false
					}
					if !obj.IsPermanent() || !obj.Current.HasType(TypeCreature) {
						return false
					}
					return obj.ID != eff.Source && obj.Permanent.Controller == source.Permanent.Controller
				},
				Apply: func(g *Game, eff *ContinuousEffect, target ObjectID, c Characteristics) Characteristics {
					c.Power++
					c.Toughness++
					return c
				},
			},
		}},
	}
}

func ladyRowena() Characteristics {
	return Characteristics{
		Name: "Lady Rowena, Sworn Twin", Types: []CardType{TypeCreature}, Colors: Black,
		Super: SuperLegendary, ManaCost: cost(generic(2), colored(Black), colored(Black)),
		Power: 3, Toughness: 3, Keywords: Deathtouch,
		Text: "Deathtouch. When Lady Rowena, Sworn Twin enters the battlefield, each opponent loses 2 life and you gain 2 life.",
		Abilities: []AbilitySpec{{
			Kind:        AbilityTriggered,
			TriggerOn:   TriggerEntersBattlefield,
			IsMandatory: true,
			TriggerFilter: func(g *Game, source ObjectID, e TriggerEventData) bool { return e.Object == source },
			Resolve: func(g *Game, source ObjectID, entry StackEntryInfo) {
				obj := g.Object(source)
				if obj == nil || obj.Permanent == nil {
					return
				}
				controller := obj.Permanent.Controller
				opp := g.Opponent(controller)
				g.LoseLife(opp, 2)
				g.GainLife(controller, 2)
			},
		}},
	}
}

func ravenousBroodling() Characteristics {
	return Characteristics{
		Name: "Ravenous Broodling", Types: []CardType{TypeCreature}, Colors: Black,
		ManaCost: cost(generic(3), colored(Black)), Power: 2, Toughness: 2,
		Text: "When Ravenous Broodling enters the battlefield, create two 1/1 black Insect creature tokens.",
		Abilities: []AbilitySpec{{
			Kind:        AbilityTriggered,
			TriggerOn:   TriggerEntersBattlefield,
			IsMandatory: true,
			TriggerFilter: func(g *Game, source ObjectID, e TriggerEventData) bool { return e.Object == source },
			Resolve: func(g *Game, source ObjectID, entry StackEntryInfo) {
				obj := g.Object(source)
				if obj == nil || obj.Permanent == nil {
					return
				}
				controller := obj.Permanent.Controller
				for i := 0; i < 2; i++ {
					g.CreateToken(Characteristics{
						Name: "Insect", Types: []CardType{TypeCreature}, Colors: Black,
						Power: 1, Toughness: 1,
					}, controller, "Ravenous Broodling")
				}
			},
		}},
	}
}

func spellshieldAdept() Characteristics {
	return Characteristics{
		Name: "Spellshield Adept", Types: []CardType{TypeCreature}, Colors: Blue,
		ManaCost: cost(generic(1), colored(Blue)), Power: 1, Toughness: 3,
		Keywords: Hexproof,
		Text:     "Hexproof",
	}
}

func courtHerald() Characteristics {
	return Characteristics{
		Name: "Court Herald", Types: []CardType{TypeCreature}, Colors: White,
		ManaCost: cost(generic(1), colored(White)), Power: 2, Toughness: 2,
		Text: "When Court Herald enters the battlefield, you become the monarch.",
		Abilities: []AbilitySpec{{
			Kind:        AbilityTriggered,
			TriggerOn:   TriggerEntersBattlefield,
			IsMandatory: true,
			TriggerFilter: func(g *Game, source ObjectID, e TriggerEventData) bool { return e.Object == source },
			Resolve: func(g *Game, source ObjectID, entry StackEntryInfo) {
				obj := g.Object(source)
				if obj == nil || obj.Permanent == nil {
					return
				}
				g.BecomeMonarch(obj.Permanent.Controller)
			},
		}},
	}
}

// --- shared targeting helpers ---

func anyTarget(g *Game, source ObjectID, controller PlayerID) []ObjectID {
	var out []ObjectID
	for _, obj := range g.Objects() {
		if obj.IsPermanent() {
			out = append(out, obj.ID)
		}
	}
	for _, p := range g.Players {
		if !p.Lost {
			out = append(out, PlayerObjectID(p.ID))
		}
	}
	return out
}

func creatureTargets(g *Game, source ObjectID, controller PlayerID) []ObjectID {
	var out []ObjectID
	for _, obj := range g.Objects() {
		if obj.IsPermanent() && obj.Current.HasType(TypeCreature) {
			if obj.Current.Protection.ProtectsFrom(obj.Current.Colors) {
				continue
			}
			out = append(out, obj.ID)
		}
	}
	return out
}

func ownedCreatureTargets(g *Game, source ObjectID, controller PlayerID) []ObjectID {
	var out []ObjectID
	for _, obj := range g.Objects() {
		if obj.IsPermanent() && obj.Current.HasType(TypeCreature) && obj.Permanent.Controller == controller {
			out = append(out, obj.ID)
		}
	}
	return out
}

func attachAura(g *Game, aura ObjectID, host ObjectID) {
	auraObj := g.Object(aura)
	hostObj := g.Object(host)
	if auraObj == nil || hostObj == nil || auraObj.Permanent == nil || hostObj.Permanent == nil {
		return
	}
	auraObj.Permanent.Attachment.AttachedTo = host
	hostObj.Permanent.Attachment.Attached = append(hostObj.Permanent.Attachment.Attached, aura)
	g.Layers.Install(&ContinuousEffect{
		Layer:  Layer6AbilityAdding,
		Source: aura,
		Affects: func(g *Game, eff *ContinuousEffect, target ObjectID) bool {
			obj := g.Object(eff.Source)
			return obj != nil && obj.Permanent != nil && obj.Permanent.Attachment.AttachedTo == target
		},
		Apply: func(g *Game, eff *ContinuousEffect, target ObjectID, c Characteristics) Characteristics {
			c.CantAttack = true
			c.CantBlock = true
			return c
		},
	})
	g.Layers.Recompute(g)
}

func attachEquipment(g *Game, equip ObjectID, host ObjectID) {
	equipObj := g.Object(equip)
	hostObj := g.Object(host)
	if equipObj == nil || hostObj == nil || equipObj.Permanent == nil {
		return
	}
	if prev := equipObj.Permanent.Attachment.AttachedTo; prev != 0 {
		if prevHost := g.Object(prev); prevHost != nil && prevHost.Permanent != nil {
			kept := prevHost.Permanent.Attachment.Attached[:0]
			for _, id := range prevHost.Permanent.Attachment.Attached {
				if id != equip {
					kept = append(kept, id)
				}
			}
			prevHost.Permanent.Attachment.Attached = kept
		}
	}
	equipObj.Permanent.Attachment.AttachedTo = host
	hostObj.Permanent.Attachment.Attached = append(hostObj.Permanent.Attachment.Attached, equip)
	g.Layers.Install(&ContinuousEffect{
		Layer:  Layer7cPTModifying,
		Source: equip,
		Affects: func(g *Game, eff *ContinuousEffect, target ObjectID) bool {
			obj := g.Object(eff.Source)
			return obj != nil && obj.Permanent != nil && obj.Permanent.Attachment.AttachedTo == target
		},
		Apply: func(g *Game, eff *ContinuousEffect, target ObjectID, c Characteristics) Characteristics {
			c.Power += 2
			return c
		},
	})
	g.Layers.Recompute(g)
}
