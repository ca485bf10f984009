// Command mtgkernel-cli hosts or joins a two-player duel over TCP,
// generalizing the teacher's tcgx-cli from flag-based subcommands to
// alecthomas/kong's declarative CLI struct, matching the CLI dependency
// erigon's go.mod carries for the same purpose.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"github.com/aldenvale/mtgkernel/internal/engine/log"
	mtgnet "github.com/aldenvale/mtgkernel/internal/net"
)

var cli struct {
	Host struct {
		Deck string `help:"Path to this seat's deck YAML file." default:"decks/sample.yaml"`
		Port string `help:"TCP port to listen on." default:"9000"`
	} `cmd:"" help:"Start a game server and play the host seat."`

	Join struct {
		Deck string `help:"Path to this seat's deck YAML file." default:"decks/sample.yaml"`
		Addr string `help:"Server address to connect to." default:"localhost:9000"`
	} `cmd:"" help:"Connect to a game server and play the joining seat."`
}

func main() {
	ctx := kong.Parse(&cli, kong.Name("mtgkernel-cli"), kong.Description("Host or join a duel over TCP."))
	switch ctx.Command() {
	case "host":
		runHost()
	case "join":
		runJoin()
	default:
		fmt.Fprintln(os.Stderr, "unknown command")
		os.Exit(1)
	}
}

func runHost() {
	srv := &mtgnet.Server{
		HostDeckPath: cli.Host.Deck,
		Port:         cli.Host.Port,
		Logger:       log.New(),
	}
	if err := srv.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runJoin() {
	if err := mtgnet.Connect(cli.Join.Addr, cli.Join.Deck); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
