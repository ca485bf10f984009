package game

// GameResult is PlayGame's return value: who won and why, matching
// spec.md §6's exact contract, generalizing the teacher's DuelResult
// (which only ever had one reason, "life").
type GameResult struct {
	Winner      PlayerID
	HasWinner   bool
	Reason      string // "life" | "poison" | "drew-from-empty" | "concede" | "turn-limit" | "draw" | "engine-error"
	TurnsPlayed int
	FinalLife   map[PlayerID]int
}

// SetupGame validates both decks, builds a Game, loads libraries, shuffles
// them, and draws opening hands, returning a ConfigError (not a panic) if
// either deck fails ParseDeckFile's validation — matching spec.md §7's
// rule that configuration errors surface before any GameState exists.
func SetupGame(cfg Config, agents [2]Agent, names [2]string, deckPaths [2]string, rnd func(n int) int) (*Game, error) {
	decks := [2]*DeckFile{}
	for i, path := range deckPaths {
		df, err := ParseDeckFile(path)
		if err != nil {
			return nil, &ConfigError{Reason: err.Error()}
		}
		decks[i] = df
	}

	if cfg.StartingLife == 0 {
		cfg = DefaultConfig()
	}

	g := NewGame(cfg, agents, names)
	for i, df := range decks {
		g.LoadLibrary(PlayerID(i), df, rnd)
	}
	g.runMulligans()
	return g, nil
}

// runMulligans implements the London mulligan (CR 103.4-ish variant
// actually played today): each player in turn order may draw a new
// opening hand of Config.InitialHand cards, then put N cards (N = number
// of mulligans taken) on the bottom of their library, repeating until
// they keep.
func (g *Game) runMulligans() {
	for _, p := range g.Players {
		mulligans := 0
		for {
			g.Draw(p.ID, g.Config.InitialHand)
			keep := p.Agent.ChooseYesNo(g, "Keep this hand?")
			if keep {
				for i := 0; i < mulligans; i++ {
					ids := p.Hand.IDs()
					bottom := p.Agent.ChooseTargets(g, ids, 1, 1)
					if len(bottom) == 0 {
						bottom = ids[:1]
					}
					g.putOnBottomOfLibrary(p, bottom[0])
				}
				break
			}
			for _, id := range p.Hand.IDs() {
				obj := g.Object(id)
				p.Hand.Remove(id)
				obj.Zone = ZoneLibrary
				p.Library.Append(id)
			}
			if g.Config.Shuffle != nil {
				p.Library.Shuffle(g.Config.Shuffle)
			}
			mulligans++
		}
	}
}

func (g *Game) putOnBottomOfLibrary(p *Player, id ObjectID) {
	obj := g.Object(id)
	p.Hand.Remove(id)
	obj.Zone = ZoneLibrary
	p.Library.PushBottom(id)
}

// PlayGame runs the game to completion and reports the result. It is the
// single entry point cmd/* binaries and internal/mcp call.
func (g *Game) PlayGame() (res GameResult) {
	defer func() {
		if r := recover(); r != nil {
			g.fail("game", "unrecoverable panic during play")
			res = GameResult{Winner: g.Winner, HasWinner: g.HasWinner, Reason: g.Result, TurnsPlayed: g.Turn, FinalLife: make(map[PlayerID]int, len(g.Players))}
			for _, p := range g.Players {
				res.FinalLife[p.ID] = p.Life
			}
		}
	}()

	g.Run()
	life := make(map[PlayerID]int, len(g.Players))
	for _, p := range g.Players {
		life[p.ID] = p.Life
	}
	return GameResult{
		Winner:      g.Winner,
		HasWinner:   g.HasWinner,
		Reason:      g.Result,
		TurnsPlayed: g.Turn,
		FinalLife:   life,
	}
}
