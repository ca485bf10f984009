package game

// CardRegistry maps a card's printed name to a constructor producing its
// Characteristics, following the teacher's CardRegistry convention of a
// name-keyed map of zero-argument constructors rather than a database
// lookup (cards.go holds the constructor bodies).
var CardRegistry = map[string]func() Characteristics{
	"Plains":   basicLand("Plains", White),
	"Island":   basicLand("Island", Blue),
	"Swamp":    basicLand("Swamp", Black),
	"Mountain": basicLand("Mountain", Red),
	"Forest":   basicLand("Forest", Green),

	"Lightning Strike": lightningStrike,
	"Giant Growth":     giantGrowth,
	"Healing Salve":    healingSalve,

	"Grizzly Bears":     grizzlyBears,
	"Hill Giant":        hillGiant,
	"Serra Angel":       serraAngel,
	"Nightmare Weaver":  nightmareWeaver,
	"Gnarled Trampler":  gnarledTrampler,
	"Vampire Nighthawk": vampireNighthawk,
	"Silverback Guardian": silverbackGuardian,

	"Shock Terrain":     shockTerrain,
	"Ancestral Homeland": ancestralHomeland,

	"Pacifism":        pacifism,
	"Rusted Gauntlet": rustedGauntlet,

	"Lord Thaddeus, First of His Name": lordThaddeus,
	"Lady Rowena, Sworn Twin":          ladyRowena,
	"Ravenous Broodling":               ravenousBroodling,

	"Spellshield Adept": spellshieldAdept,
	"Court Herald":       courtHerald,
}

// LookupCard resolves a card name to its Characteristics, falling back to
// a deterministic heuristic vanilla creature when name isn't in
// CardRegistry (spec.md §6: "unknown names produce a deterministic
// heuristic card"). The heuristic is a pure function of the name's byte
// length so the same unknown name always yields the same stats across
// runs, which is what lets tests rely on the fallback.
func LookupCard(name string) Characteristics {
	if ctor, ok := CardRegistry[name]; ok {
		return ctor()
	}
	return heuristicCard(name)
}

func heuristicCard(name string) Characteristics {
	n := len(name)
	pt := n%4 + 1
	return Characteristics{
		Name:     name,
		Types:    []CardType{TypeCreature},
		Colors:   ColorNone,
		ManaCost: cost(generic(pt)),
		Power:    pt,
		Toughness: pt,
		Text:     "(heuristic placeholder card)",
	}
}
