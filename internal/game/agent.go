package game

// Agent is the suspension point between the kernel's cooperative scheduler
// and whatever drives a player: a human terminal, a network client, an MCP
// tool call, or a scripted test harness. Every method blocks the calling
// goroutine until the agent responds — the kernel itself is single
// threaded and never runs two agents concurrently, matching the teacher's
// PlayerController convention.
type Agent interface {
	// PriorityAction is called whenever this player has priority and at
	// least one legal action exists. legal always includes ActionPass.
	PriorityAction(g *Game, legal []ActionChoice) ActionChoice

	// ChooseTargets asks the agent to pick between min and max targets from
	// candidates for an ability/spell being put on the stack.
	ChooseTargets(g *Game, candidates []ObjectID, min, max int) []ObjectID

	// ChooseOrder asks for an ordering of ids, used for the damage
	// assignment order among an attacker's blockers. The trigger manager
	// does not call it: one player's simultaneous triggers keep the order
	// in which they fired.
	ChooseOrder(g *Game, ids []ObjectID) []ObjectID

	// ChooseYesNo asks a yes/no question, e.g. "regenerate this creature?"
	ChooseYesNo(g *Game, prompt string) bool

	// ChooseNumber asks for an integer in [min, max]. The kernel itself
	// does not call it: X comes from ActionChoice.X and combat damage is
	// assigned automatically.
	ChooseNumber(g *Game, prompt string, min, max int) int

	// ChooseModes asks the agent to pick n distinct mode indices from count
	// available modes, for a modal spell/ability.
	ChooseModes(g *Game, prompt string, count, n int) []int

	// Notify delivers a read-only event to the agent for display; it does
	// not block on a response.
	Notify(g *Game, e string)
}
