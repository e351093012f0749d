// Command play is a terminal game against the engine.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/apex/log/handlers/cli"
	"github.com/benbeisheim/robchess/internal/engine"
	"github.com/benbeisheim/robchess/internal/model"
)

func main() {
	cfg := engine.DefaultConfig()
	fen := flag.String("fen", model.StartFEN, "starting position")
	flag.IntVar(&cfg.MinDepth, "min-depth", cfg.MinDepth, "first iterative deepening depth")
	flag.IntVar(&cfg.MaxDepth, "max-depth", cfg.MaxDepth, "last iterative deepening depth")
	verbose := flag.Bool("v", false, "log every search iteration")
	flag.Parse()

	log.SetHandler(cli.New(os.Stderr))
	if *verbose {
		log.SetLevel(log.DebugLevel)
	}

	session, err := engine.NewSessionFromFEN(*fen)
	if err != nil {
		log.WithError(err).Fatal("bad starting position")
	}
	if err := play(session, engine.New(cfg, log.Log), os.Stdin, os.Stdout); err != nil && !errors.Is(err, io.EOF) {
		log.WithError(err).Fatal("game aborted")
	}
}

// play asks for a side, then alternates between reading the user's moves and
// letting the engine answer until the game ends or input runs out.
func play(session *engine.Session, eng *engine.Engine, in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	prompt := func(msg string) (string, error) {
		fmt.Fprint(out, msg)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return "", err
			}
			return "", io.EOF
		}
		return strings.TrimSpace(scanner.Text()), nil
	}

	var human model.Color
	for {
		answer, err := prompt("Play as (w)hite or (b)lack? ")
		if err != nil {
			return err
		}
		if color, ok := model.ParseColor(answer); ok {
			human = color
			break
		}
	}

	fmt.Fprint(out, session.Position)
	for {
		if status := session.Status(); status != model.Ongoing {
			fmt.Fprintf(out, "%s, %s to move.\n", status, session.Turn())
			return nil
		}

		if session.Turn() != human {
			result, err := eng.Think(session, session.Turn())
			if err != nil {
				return err
			}
			if err := session.CommitMove(result.Move); err != nil {
				return err
			}
			fmt.Fprintf(out, "Engine plays %s (score %d, depth %d, %d nodes)\n",
				result.Move, result.Score, result.Depth, result.Nodes)
			fmt.Fprint(out, session.Position)
			continue
		}

		input, err := prompt("Your move: ")
		if err != nil {
			return err
		}
		switch input {
		case "":
			continue
		case "quit", "exit":
			return nil
		case "moves":
			fmt.Fprintln(out, strings.Join(model.Notations(session.LegalMoves()), " "))
			continue
		case "fen":
			fmt.Fprintln(out, session.Position.FEN())
			continue
		}

		m, err := model.ParseMove(input, session.Position)
		if err == nil {
			err = session.CommitMove(m)
		}
		if err != nil {
			fmt.Fprintf(out, "%v\n", err)
			continue
		}
		fmt.Fprint(out, session.Position)
	}
}
