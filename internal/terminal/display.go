// Package terminal renders a quiz on a text terminal and reads answers from it.
package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/pterm/pterm"
	"github.com/vytor/flashquiz/internal/models"
)

// Display writes quiz output to a writer, optionally colored.
type Display struct {
	out   io.Writer
	color bool
}

// NewDisplay creates a Display writing to out.
func NewDisplay(out io.Writer, color bool) *Display {
	return &Display{out: out, color: color}
}

func (d *Display) paint(c pterm.Color, text string) string {
	if !d.color {
		return text
	}
	return c.Sprint(text)
}

func (d *Display) println(lines ...string) {
	fmt.Fprintln(d.out, strings.Join(lines, "\n"))
}

// ShowWelcome prints the banner shown before the first question.
func (d *Display) ShowWelcome(deck, mode string, total int) {
	d.println(
		d.paint(pterm.Bold, "=== Flashcard Quizzer ==="),
		"Deck: "+deck,
		"Mode: "+mode,
		fmt.Sprintf("Cards: %d", total),
		d.paint(pterm.FgGray, "Type 'exit' to quit at any time."),
		"",
	)
}

func (d *Display) ShowQuestion(number, total int, front string) {
	header := d.paint(pterm.FgGray, fmt.Sprintf("[%d/%d]", number, total))
	d.println("", header+" "+d.paint(pterm.FgCyan, front))
}

func (d *Display) ShowFeedback(correct bool, expected string) {
	if correct {
		d.println(d.paint(pterm.FgGreen, "Correct!"))
		return
	}
	d.println(d.paint(pterm.FgRed, "Incorrect. Answer: "+expected))
}

func (d *Display) ShowInterrupted() {
	d.println("", d.paint(pterm.FgYellow, "Quiz interrupted. Showing results so far..."))
}

// ShowStats prints the score and, when detailed, the cards to review.
func (d *Display) ShowStats(stats models.SessionStats, detailed bool) {
	lines := []string{
		"",
		d.paint(pterm.Bold, "=== Session Results ==="),
		fmt.Sprintf("Score: %d/%d (%.1f%%)", stats.CorrectAnswers, stats.TotalQuestions, stats.AccuracyPercent()),
	}

	if missed := stats.MissedCards(); detailed && len(missed) > 0 {
		lines = append(lines, "", d.paint(pterm.FgYellow, "Cards to review:"))
		for _, card := range missed {
			lines = append(lines, fmt.Sprintf("  - %s -> %s", card.Front, card.Back))
		}
	}
	d.println(lines...)
}
