package net

import (
	"bufio"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
)

// Client connects to a game server and drives a terminal REPL, following
// the teacher's client.go loop shape.
type Client struct {
	conn       net.Conn
	playerName string
}

// Connect dials addr, announces deckPath, and runs the REPL to completion.
func Connect(addr, deckPath string) error {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return fmt.Errorf("connect: %w", err)
	}
	defer conn.Close()

	enc := json.NewEncoder(conn)
	if err := enc.Encode(ClientMessage{Type: "join", DeckPath: deckPath}); err != nil {
		return fmt.Errorf("send join: %w", err)
	}
	fmt.Println("Connected! Waiting for game to start...")

	client := &Client{conn: conn, playerName: "Joiner"}
	return client.RunREPL()
}

// RunREPL reads server messages and prompts for responses until game_over.
func (c *Client) RunREPL() error {
	dec := json.NewDecoder(c.conn)
	enc := json.NewEncoder(c.conn)
	reader := bufio.NewReader(os.Stdin)

	for {
		var msg ServerMessage
		if err := dec.Decode(&msg); err != nil {
			return fmt.Errorf("read message: %w", err)
		}

		switch msg.Type {
		case "notify":
			c.renderEvent(msg.Event)

		case "priority":
			c.renderState(msg.State)
			c.renderActions(msg.Actions)
			idx := c.readChoice(reader, len(msg.Actions))
			if err := enc.Encode(ClientMessage{Type: "action", Index: idx}); err != nil {
				return fmt.Errorf("send action: %w", err)
			}

		case "choose_targets", "choose_order":
			c.renderState(msg.State)
			c.renderCandidates(msg.Prompt, msg.Candidates, msg.Min, msg.Max)
			indices := c.readIndices(reader, len(msg.Candidates), msg.Min, msg.Max)
			if err := enc.Encode(ClientMessage{Type: "indices", Indices: indices}); err != nil {
				return fmt.Errorf("send indices: %w", err)
			}

		case "choose_yes_no":
			fmt.Printf("\n%s (y/n): ", msg.Prompt)
			if err := enc.Encode(ClientMessage{Type: "yes_no", Answer: c.readYesNo(reader)}); err != nil {
				return fmt.Errorf("send yes_no: %w", err)
			}

		case "choose_number":
			fmt.Printf("\n%s (%d-%d): ", msg.Prompt, msg.NumMin, msg.NumMax)
			n := c.readNumber(reader, msg.NumMin, msg.NumMax)
			if err := enc.Encode(ClientMessage{Type: "number", Number: n}); err != nil {
				return fmt.Errorf("send number: %w", err)
			}

		case "choose_modes":
			fmt.Printf("\n%s (pick %d of %d): ", msg.Prompt, msg.ModeN, msg.ModeCount)
			indices := c.readIndices(reader, msg.ModeCount, msg.ModeN, msg.ModeN)
			if err := enc.Encode(ClientMessage{Type: "indices", Indices: indices}); err != nil {
				return fmt.Errorf("send modes: %w", err)
			}

		case "game_over":
			fmt.Println()
			fmt.Println("═══════════════════════════════════")
			fmt.Println("          GAME OVER")
			fmt.Println("═══════════════════════════════════")
			if msg.HasWinner {
				fmt.Printf("Winner: player %d (%s)\n", msg.Winner, msg.Result)
			} else {
				fmt.Printf("Result: %s\n", msg.Result)
			}
			fmt.Println("═══════════════════════════════════")
			return nil
		}
	}
}

func (c *Client) renderEvent(ev *EventView) {
	if ev == nil {
		return
	}
	phase := ev.Phase
	for len(phase) < 16 {
		phase += " "
	}
	fmt.Printf("T%-2d %s| %s\n", ev.Turn, phase, ev.Details)
}

func (c *Client) renderState(sv *StateView) {
	if sv == nil {
		return
	}
	fmt.Println()
	fmt.Printf("Opponent: life %d, poison %d, hand %d, library %d\n", sv.Opponent.Life, sv.Opponent.Poison, sv.Opponent.HandCount, sv.Opponent.LibraryCount)
	for _, zv := range sv.Opponent.Battlefield {
		fmt.Printf("  %s\n", formatPermanent(zv))
	}
	fmt.Printf("You: life %d, poison %d, hand %d, library %d\n", sv.You.Life, sv.You.Poison, sv.You.HandCount, sv.You.LibraryCount)
	for _, zv := range sv.You.Battlefield {
		fmt.Printf("  %s\n", formatPermanent(zv))
	}
	if len(sv.You.Hand) > 0 {
		fmt.Print("Hand: ")
		for i, name := range sv.You.Hand {
			fmt.Printf("[%d] %s  ", i+1, name)
		}
		fmt.Println()
	}
	turn := fmt.Sprintf("Turn %d | %s/%s", sv.Turn, sv.Phase, sv.Step)
	if sv.IsYourTurn {
		turn += " | your turn"
	}
	fmt.Println(turn)
}

func formatPermanent(zv ZoneView) string {
	tap := ""
	if zv.Tapped {
		tap = " (tapped)"
	}
	if zv.Power != 0 || zv.Toughness != 0 {
		return fmt.Sprintf("%s %d/%d%s", zv.Name, zv.Power, zv.Toughness, tap)
	}
	return zv.Name + tap
}

func (c *Client) renderActions(actions []ActionView) {
	fmt.Println("\nActions:")
	for _, a := range actions {
		fmt.Printf("  %d) %s\n", a.Index+1, a.Desc)
	}
}

func (c *Client) renderCandidates(prompt string, candidates []ObjectView, min, max int) {
	fmt.Printf("\n%s (select %d", prompt, min)
	if max != min {
		fmt.Printf("-%d", max)
	}
	fmt.Println(")")
	for _, ov := range candidates {
		if ov.Power != 0 || ov.Tough != 0 {
			fmt.Printf("  %d) %s (%d/%d)\n", ov.Index+1, ov.Name, ov.Power, ov.Tough)
		} else {
			fmt.Printf("  %d) %s\n", ov.Index+1, ov.Name)
		}
	}
}

func (c *Client) readChoice(reader *bufio.Reader, count int) int {
	for {
		fmt.Print("> ")
		line, _ := reader.ReadString('\n')
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n < 1 || n > count {
			fmt.Printf("Enter a number between 1 and %d\n", count)
			continue
		}
		return n - 1
	}
}

func (c *Client) readIndices(reader *bufio.Reader, count, min, max int) []int {
	for {
		fmt.Print("> ")
		line, _ := reader.ReadString('\n')
		parts := strings.Fields(strings.TrimSpace(line))
		if len(parts) < min || len(parts) > max {
			fmt.Printf("Enter %d-%d numbers separated by spaces\n", min, max)
			continue
		}
		var indices []int
		valid := true
		for _, p := range parts {
			n, err := strconv.Atoi(p)
			if err != nil || n < 1 || n > count {
				fmt.Printf("Each number must be between 1 and %d\n", count)
				valid = false
				break
			}
			indices = append(indices, n-1)
		}
		if valid {
			return indices
		}
	}
}

func (c *Client) readNumber(reader *bufio.Reader, min, max int) int {
	for {
		line, _ := reader.ReadString('\n')
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil || n < min || n > max {
			fmt.Printf("Enter a number between %d and %d: ", min, max)
			continue
		}
		return n
	}
}

func (c *Client) readYesNo(reader *bufio.Reader) bool {
	for {
		line, _ := reader.ReadString('\n')
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y", "yes":
			return true
		case "n", "no":
			return false
		default:
			fmt.Print("Enter y or n: ")
		}
	}
}
