package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DeckEntry is one line of a deck list: a card name and how many copies.
type DeckEntry struct {
	Name  string `yaml:"name"`
	Count int    `yaml:"count"`
}

// DeckFile is the top-level shape of a deck YAML file, generalizing the
// teacher's DeckFile from a single-card-game-specific layout to named
// cards resolved through the CardRegistry.
type DeckFile struct {
	Name  string      `yaml:"name"`
	Cards []DeckEntry `yaml:"cards"`
}

// ParseDeckFile loads and validates a deck list from path.
func ParseDeckFile(path string) (*DeckFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading deck file %s: %w", path, err)
	}
	var df DeckFile
	if err := yaml.Unmarshal(data, &df); err != nil {
		return nil, fmt.Errorf("parsing deck file %s: %w", path, err)
	}
	total := 0
	for _, e := range df.Cards {
		total += e.Count
	}
	if total < 40 {
		return nil, fmt.Errorf("deck file %s: %d cards, minimum deck size is 40", path, total)
	}
	return &df, nil
}

// Instantiate creates one fresh GameObject per copy named in the deck,
// owned by owner, in library zone form (not yet placed into any Zone —
// the caller appends them to Player.Library and shuffles).
func (df *DeckFile) Instantiate(g *Game, owner PlayerID) []*GameObject {
	var out []*GameObject
	for _, e := range df.Cards {
		for i := 0; i < e.Count; i++ {
			c := LookupCard(e.Name)
			obj := &GameObject{
				Owner: owner,
				Zone:  ZoneLibrary,
				Print: c,
			}
			obj.Current = obj.Print
			g.registerObject(obj)
			out = append(out, obj)
		}
	}
	return out
}

// LoadLibrary instantiates df into p's library and shuffles it with rnd
// (nil rnd leaves the deck in list order, useful for deterministic tests).
func (g *Game) LoadLibrary(p PlayerID, df *DeckFile, rnd func(n int) int) {
	player := g.Players[p]
	for _, obj := range df.Instantiate(g, p) {
		player.Library.Append(obj.ID)
	}
	if rnd != nil {
		player.Library.Shuffle(rnd)
	}
}
