package mcp

import (
	"context"
	"strconv"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/aldenvale/mtgkernel/internal/game"
	mtgnet "github.com/aldenvale/mtgkernel/internal/net"
)

// activeSession is the singleton game session (one per stdio process).
var activeSession *GameSession

// LLMDeckPath/HumanDeckPath/Port are set by main before the server starts.
var (
	LLMDeckPath   string
	HumanDeckPath string
	Port          string
)

// RegisterTools adds every mtgkernel tool to s.
func RegisterTools(s *server.MCPServer) {
	s.AddTool(startGameTool(), handleStartGame)
	s.AddTool(takeActionTool(), handleTakeAction)
	s.AddTool(chooseTargetsTool(), handleChooseTargets)
	s.AddTool(chooseOrderTool(), handleChooseOrder)
	s.AddTool(answerYesNoTool(), handleAnswerYesNo)
	s.AddTool(chooseNumberTool(), handleChooseNumber)
	s.AddTool(chooseModesTool(), handleChooseModes)
	s.AddTool(getGameStateTool(), handleGetGameState)
}

func startGameTool() mcp.Tool {
	return mcp.NewTool("start_game",
		mcp.WithDescription("Start a new mtgkernel duel. Returns the initial game state and the first pending decision. "+
			"The human player connects via `mtgkernel-cli join --addr localhost:<port>` in a separate terminal. "+
			"This call blocks until the human connects."),
		mcp.WithNumber("llm_player", mcp.Required(), mcp.Description("Which seat the LLM plays: 0 = goes first, 1 = goes second")),
	)
}

func takeActionTool() mcp.Tool {
	return mcp.NewTool("take_action",
		mcp.WithDescription("Choose an action from the pending actions list. Use when the pending decision type is 'priority'."),
		mcp.WithNumber("index", mcp.Required(), mcp.Description("0-based index into the actions list")),
	)
}

func chooseTargetsTool() mcp.Tool {
	return mcp.NewTool("choose_targets",
		mcp.WithDescription("Select target objects from the pending candidates list. Use when the pending decision type is 'choose_targets'."),
		mcp.WithString("indices", mcp.Required(), mcp.Description("Space-separated 0-based candidate indices, or empty string for none")),
	)
}

func chooseOrderTool() mcp.Tool {
	return mcp.NewTool("choose_order",
		mcp.WithDescription("Submit an ordering of every candidate (e.g. damage assignment order among blockers). Use when the pending decision type is 'choose_order'."),
		mcp.WithString("indices", mcp.Required(), mcp.Description("Space-separated 0-based candidate indices, one per candidate, in the chosen order")),
	)
}

func answerYesNoTool() mcp.Tool {
	return mcp.NewTool("answer_yes_no",
		mcp.WithDescription("Answer a yes/no question. Use when the pending decision type is 'choose_yes_no'."),
		mcp.WithBoolean("answer", mcp.Required(), mcp.Description("true for yes, false for no")),
	)
}

func chooseNumberTool() mcp.Tool {
	return mcp.NewTool("choose_number",
		mcp.WithDescription("Answer a numeric question (e.g. an X cost). Use when the pending decision type is 'choose_number'."),
		mcp.WithNumber("value", mcp.Required(), mcp.Description("the chosen integer, within the pending decision's min/max")),
	)
}

func chooseModesTool() mcp.Tool {
	return mcp.NewTool("choose_modes",
		mcp.WithDescription("Pick mode indices for a modal spell/ability. Use when the pending decision type is 'choose_modes'."),
		mcp.WithString("indices", mcp.Required(), mcp.Description("Space-separated 0-based mode indices")),
	)
}

func getGameStateTool() mcp.Tool {
	return mcp.NewTool("get_game_state",
		mcp.WithDescription("Get the current game state, accumulated events, and pending decision without submitting a response. Read-only."),
	)
}

func handleStartGame(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession != nil {
		return mcp.NewToolResultError("A game is already running. Only one game at a time is supported."), nil
	}
	llmPlayer := request.GetInt("llm_player", 0)
	if llmPlayer != 0 && llmPlayer != 1 {
		return mcp.NewToolResultError("llm_player must be 0 or 1"), nil
	}

	sess, err := NewGameSession(LLMDeckPath, HumanDeckPath, game.PlayerID(llmPlayer), Port)
	if err != nil {
		return mcp.NewToolResultErrorf("Failed to start game: %v", err), nil
	}
	activeSession = sess

	resp, err := sess.waitForPending()
	if err != nil {
		return mcp.NewToolResultErrorf("Error waiting for first decision: %v", err), nil
	}
	resp.Port = Port
	resp.SessionID = sess.SessionID
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func requirePending(dt DecisionType) (*GameSession, *mcp.CallToolResult) {
	if activeSession == nil {
		return nil, mcp.NewToolResultError("No game is running. Use start_game first.")
	}
	sess := activeSession
	pending := sess.currentPending
	if pending == nil {
		return nil, mcp.NewToolResultError("No pending decision.")
	}
	if pending.Player != sess.llmPlayer {
		return nil, mcp.NewToolResultError("Waiting for the human player to respond via their terminal.")
	}
	if pending.Type != dt {
		return nil, mcp.NewToolResultErrorf("Wrong tool: pending decision is '%s', not '%s'.", pending.Type, dt)
	}
	return sess, nil
}

func finish(sess *GameSession) (*mcp.CallToolResult, error) {
	resp, err := sess.waitForPending()
	if err != nil {
		return mcp.NewToolResultErrorf("Error waiting for next decision: %v", err), nil
	}
	if resp.GameOver {
		activeSession = nil
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}

func parseIndices(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	var out []int
	for _, p := range strings.Fields(s) {
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

func handleTakeAction(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errResult := requirePending(DecisionPriority)
	if errResult != nil {
		return errResult, nil
	}
	index := request.GetInt("index", -1)
	if index < 0 || index >= len(sess.currentPending.Actions) {
		return mcp.NewToolResultErrorf("Invalid index %d. Must be 0-%d.", index, len(sess.currentPending.Actions)-1), nil
	}
	sess.respond(ActionResponse{Index: index})
	return finish(sess)
}

func handleChooseTargets(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errResult := requirePending(DecisionChooseTargets)
	if errResult != nil {
		return errResult, nil
	}
	indices, err := parseIndices(request.GetString("indices", ""))
	if err != nil {
		return mcp.NewToolResultErrorf("Invalid indices: %v", err), nil
	}
	pending := sess.currentPending
	if len(indices) < pending.Min || len(indices) > pending.Max {
		return mcp.NewToolResultErrorf("Must choose between %d and %d targets, got %d.", pending.Min, pending.Max, len(indices)), nil
	}
	sess.respond(IndicesResponse{Indices: indices})
	return finish(sess)
}

func handleChooseOrder(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errResult := requirePending(DecisionChooseOrder)
	if errResult != nil {
		return errResult, nil
	}
	indices, err := parseIndices(request.GetString("indices", ""))
	if err != nil {
		return mcp.NewToolResultErrorf("Invalid indices: %v", err), nil
	}
	if len(indices) != len(sess.currentPending.Candidates) {
		return mcp.NewToolResultErrorf("Must order all %d candidates.", len(sess.currentPending.Candidates)), nil
	}
	sess.respond(IndicesResponse{Indices: indices})
	return finish(sess)
}

func handleAnswerYesNo(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errResult := requirePending(DecisionChooseYesNo)
	if errResult != nil {
		return errResult, nil
	}
	sess.respond(YesNoResponse{Answer: request.GetBool("answer", false)})
	return finish(sess)
}

func handleChooseNumber(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errResult := requirePending(DecisionChooseNumber)
	if errResult != nil {
		return errResult, nil
	}
	sess.respond(NumberResponse{Value: request.GetInt("value", sess.currentPending.Min)})
	return finish(sess)
}

func handleChooseModes(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	sess, errResult := requirePending(DecisionChooseModes)
	if errResult != nil {
		return errResult, nil
	}
	indices, err := parseIndices(request.GetString("indices", ""))
	if err != nil {
		return mcp.NewToolResultErrorf("Invalid indices: %v", err), nil
	}
	sess.respond(IndicesResponse{Indices: indices})
	return finish(sess)
}

func handleGetGameState(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	if activeSession == nil {
		return mcp.NewToolResultError("No game is running. Use start_game first."), nil
	}
	sess := activeSession
	events := sess.drainEvents()
	if events == nil {
		events = []mtgnet.EventView{}
	}
	resp := &ToolResponse{Events: events, SessionID: sess.SessionID}
	sess.mu.Lock()
	resp.GameOver = sess.gameOver
	if sess.gameOver {
		resp.HasWinner = sess.result.HasWinner
		resp.Winner = int(sess.result.Winner)
		resp.Result = sess.result.Reason
	}
	sess.mu.Unlock()

	if sess.currentPending != nil {
		resp.State = sess.currentPending.State
		if !resp.GameOver {
			resp.Pending = &PendingView{
				Type:       sess.currentPending.Type,
				ForPlayer:  sess.playerLabel(sess.currentPending.Player),
				Actions:    sess.currentPending.Actions,
				Prompt:     sess.currentPending.Prompt,
				Candidates: sess.currentPending.Candidates,
				Min:        sess.currentPending.Min,
				Max:        sess.currentPending.Max,
			}
		}
	}
	return mcp.NewToolResultText(respondJSON(resp)), nil
}
