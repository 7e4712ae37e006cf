// Package cli runs the interactive terminal version of the game.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/AnnaReese/Citidle/internal/game"
)

var tierEmoji = map[game.Tier]string{
	game.TierCorrect:  "🟢",
	game.TierVeryHot:  "🔴",
	game.TierHot:      "🟠",
	game.TierWarm:     "🟡",
	game.TierCool:     "🔵",
	game.TierCold:     "⚪",
	game.TierVeryCold: "⬜",
}

// Game drives one interactive session: read a guess, score it, print the
// proximity tier, repeat until the city is found or the player quits.
type Game struct {
	engine *game.Engine
	in     io.Reader
	out    io.Writer
}

// New creates an interactive game reading guesses from in and printing to out.
func New(engine *game.Engine, in io.Reader, out io.Writer) *Game {
	return &Game{engine: engine, in: in, out: out}
}

// Run plays today's game until it is won or input ends. Commands: "quit"
// reveals the answer and exits, "map" prints the guess history.
func (g *Game) Run() error {
	session := g.engine.StartGame()
	sel := g.engine.Selector()

	g.printWelcome()
	fmt.Fprintf(g.out, "Today's city is waiting... (1 of %d possible cities)\n", sel.PoolSize())
	fmt.Fprintf(g.out, "⏰ Next city in: %s (resets at midnight CST)\n\n", formatRemaining(sel.TimeUntilReset()))

	scanner := bufio.NewScanner(g.in)
	for !session.Won() {
		fmt.Fprint(g.out, "Enter your guess: ")
		if !scanner.Scan() {
			fmt.Fprintln(g.out, "\nThanks for playing! See you tomorrow. 👋")
			return scanner.Err()
		}
		guess := strings.TrimSpace(scanner.Text())

		switch strings.ToLower(guess) {
		case "":
			continue
		case "quit":
			target := session.Target()
			fmt.Fprintf(g.out, "\nThe answer was: %s, %s\n", target.Name, target.State)
			fmt.Fprintln(g.out, "Thanks for playing! See you tomorrow. 👋")
			return nil
		case "map":
			g.printMap(session)
			continue
		}

		result, err := g.engine.SubmitGuess(session, guess)
		switch {
		case errors.Is(err, game.ErrCityNotFound):
			fmt.Fprintf(g.out, "❌ %q isn't in the list of US cities with 300k+ population. Try again!\n", guess)
			continue
		case err != nil:
			return err
		}

		g.printResult(result, session.GuessCount())
	}

	fmt.Fprintf(g.out, "\nYou found it in %d guesses!\n", session.GuessCount())
	fmt.Fprintf(g.out, "⏰ Next city in: %s\n", formatRemaining(sel.TimeUntilReset()))
	return nil
}

func (g *Game) printWelcome() {
	divider := strings.Repeat("=", 50)
	fmt.Fprintln(g.out, divider)
	fmt.Fprintln(g.out, "  🏙️  CITIDLE - Guess the US City!  🏙️")
	fmt.Fprintln(g.out, divider)
	fmt.Fprintln(g.out)
	fmt.Fprintln(g.out, "Guess the mystery US city (population 300k+).")
	fmt.Fprintln(g.out, "You have unlimited guesses until you find it!")
	fmt.Fprintln(g.out)
	fmt.Fprintln(g.out, "After each guess, you'll see how close you are:")
	fmt.Fprintln(g.out, "  🟢 correct   - You got it!")
	fmt.Fprintln(g.out, "  🔴 very_hot  - Within 50 miles")
	fmt.Fprintln(g.out, "  🟠 hot       - Within 150 miles")
	fmt.Fprintln(g.out, "  🟡 warm      - Within 300 miles")
	fmt.Fprintln(g.out, "  🔵 cool      - Within 600 miles")
	fmt.Fprintln(g.out, "  ⚪ cold      - Within 1000 miles")
	fmt.Fprintln(g.out, "  ⬜ very_cold - More than 1000 miles")
	fmt.Fprintln(g.out)
	fmt.Fprintln(g.out, "Type 'quit' to exit, 'map' to see your guesses.")
	fmt.Fprintln(g.out, strings.Repeat("-", 50))
	fmt.Fprintln(g.out)
}

func (g *Game) printResult(result game.GuessResult, guessNum int) {
	emoji, ok := tierEmoji[result.Tier]
	if !ok {
		emoji = "❓"
	}
	fmt.Fprintf(g.out, "\n%s Guess #%d: %s, %s\n", emoji, guessNum, result.City.Name, result.City.State)
	if result.Correct {
		fmt.Fprintln(g.out, "🎉 CORRECT! You found it! 🎉")
		return
	}
	fmt.Fprintf(g.out, "   Distance: %.0f miles (%s)\n", result.DistanceMiles, result.Tier)
}

// printMap lists guesses so far with their tiers, nearest first.
func (g *Game) printMap(session *game.Session) {
	summary := g.engine.Summary(session)
	if len(summary.Guesses) == 0 {
		fmt.Fprintln(g.out, "\nNo guesses yet.")
		return
	}
	fmt.Fprintf(g.out, "\nGuesses so far (%d):\n", len(summary.Guesses))
	for _, guess := range summary.Guesses {
		emoji, ok := tierEmoji[guess.Tier]
		if !ok {
			emoji = "❓"
		}
		fmt.Fprintf(g.out, "  %s %-25s %6.0f mi  %s\n",
			emoji, guess.City.Name+", "+guess.City.State, guess.DistanceMiles, guess.Tier)
	}
}

func formatRemaining(d time.Duration) string {
	total := int(d.Seconds())
	return fmt.Sprintf("%dh %dm", total/3600, (total%3600)/60)
}
