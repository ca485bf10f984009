package game

import "testing"

// agentStub is a minimal Agent implementation for tests: PriorityAction
// drains a pre-scripted queue of ActionChoice values (in the exact order
// a test wants the engine driven) and falls back to passing once the
// queue is empty, so a script only needs to name the interesting
// decisions and can let everything else default. The other Agent methods
// default to the first/min-most choice, overridable per test via the
// function fields, generalizing the teacher's ScriptedController from a
// card-name-matching queue (this kernel's tests already know object ids
// since they build game state directly) to a plain ActionChoice queue.
type agentStub struct {
	priority []ActionChoice

	targetsFn func(candidates []ObjectID, min, max int) []ObjectID
	orderFn   func(ids []ObjectID) []ObjectID
	yesNo     bool
	numberFn  func(min, max int) int
	modesFn   func(count, n int) []int

	notified []string
}

func newAgentStub() *agentStub { return &agentStub{yesNo: true} }

func (a *agentStub) PriorityAction(g *Game, legal []ActionChoice) ActionChoice {
	if len(a.priority) == 0 {
		return ActionChoice{Kind: ActionPass}
	}
	next := a.priority[0]
	a.priority = a.priority[1:]
	return next
}

func (a *agentStub) ChooseTargets(g *Game, candidates []ObjectID, min, max int) []ObjectID {
	if a.targetsFn != nil {
		return a.targetsFn(candidates, min, max)
	}
	n := min
	if n > len(candidates) {
		n = len(candidates)
	}
	return append([]ObjectID(nil), candidates[:n]...)
}

func (a *agentStub) ChooseOrder(g *Game, ids []ObjectID) []ObjectID {
	if a.orderFn != nil {
		return a.orderFn(ids)
	}
	return ids
}

func (a *agentStub) ChooseYesNo(g *Game, prompt string) bool { return a.yesNo }

func (a *agentStub) ChooseNumber(g *Game, prompt string, min, max int) int {
	if a.numberFn != nil {
		return a.numberFn(min, max)
	}
	return min
}

func (a *agentStub) ChooseModes(g *Game, prompt string, count, n int) []int {
	if a.modesFn != nil {
		return a.modesFn(count, n)
	}
	out := make([]int, 0, n)
	for i := 0; i < n && i < count; i++ {
		out = append(out, i)
	}
	return out
}

func (a *agentStub) Notify(g *Game, e string) { a.notified = append(a.notified, e) }

// newTestGame builds a fresh two-player Game with agentStub controllers and
// no library contents, for tests that drive state directly rather than
// through SetupGame/deck loading.
func newTestGame(t *testing.T) (*Game, *agentStub, *agentStub) {
	t.Helper()
	a0, a1 := newAgentStub(), newAgentStub()
	g := NewGame(DefaultConfig(), [2]Agent{a0, a1}, [2]string{"Alice", "Bob"})
	return g, a0, a1
}

// putPermanent constructs a permanent directly onto the battlefield under
// controller's control, bypassing casting — for tests that only care about
// a permanent already being in play. Summoning sickness is cleared so the
// creature can attack/tap immediately unless a test wants otherwise.
func putPermanent(g *Game, chars Characteristics, controller PlayerID) *GameObject {
	obj := &GameObject{Owner: controller, Print: chars, Current: chars}
	g.enterBattlefield(obj, controller)
	obj.Permanent.SummoningSickness = false
	return obj
}

// putInHand adds a card object straight into controller's hand.
func putInHand(g *Game, chars Characteristics, controller PlayerID) *GameObject {
	obj := &GameObject{Owner: controller, Zone: ZoneHand, Print: chars, Current: chars}
	g.registerObject(obj)
	g.Players[controller].Hand.Append(obj.ID)
	return obj
}
