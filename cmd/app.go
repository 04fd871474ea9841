// Package cmd implements the CLI application to manage a budget book.
package cmd

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/daMelody/budgeters"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
)

// Commands lists every subcommand a main package should register.
var Commands = []subcommands.Command{
	&addCmd{},
	&listCmd{},
	&searchCmd{},
	&editCmd{},
	&deleteCmd{},
	&updateCmd{},
	&rollCmd{},
	&topicCmd{},
	&AssistCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var rootFlag = flag.String("root", "", `root directory holding the period folders (default $BGT_ROOT or ".")`)
var yearFlag = flag.String("y", "", "period year (default: current year)")
var monthFlag = flag.String("m", "", "period month, 1 to 12 (default: current month)")

func init() {
	// A .env file only fills in BGT_* variables that are not already set.
	godotenv.Load()
}

// Root returns the directory holding the period folders.
func Root() string {
	if *rootFlag != "" {
		return *rootFlag
	}
	if dir := os.Getenv("BGT_ROOT"); dir != "" {
		return dir
	}
	return "."
}

// Currency returns the ISO code used to display amounts.
func Currency() string {
	if c := os.Getenv("BGT_CURRENCY"); c != "" {
		return c
	}
	return "USD"
}

// CurrentPeriod resolves the period from the -y and -m flags, defaulting to
// the current month.
func CurrentPeriod() (budgeters.Period, error) {
	if *yearFlag == "" && *monthFlag == "" {
		return budgeters.CurrentPeriod(), nil
	}
	now := budgeters.CurrentPeriod()
	y, m := *yearFlag, *monthFlag
	if y == "" {
		y = fmt.Sprintf("%d", now.Year)
	}
	if m == "" {
		m = fmt.Sprintf("%d", int(now.Month))
	}
	return budgeters.NewPeriod(y, m)
}

// OpenBook loads the book of the selected period. A period that has never
// been saved loads as an empty book.
func OpenBook() (*budgeters.Book, budgeters.Period, error) {
	p, err := CurrentPeriod()
	if err != nil {
		return nil, budgeters.Period{}, err
	}
	b, err := budgeters.Store{Root: Root()}.Load(p)
	if err != nil {
		return nil, p, fmt.Errorf("loading period %s: %w", p, err)
	}
	return b, p, nil
}

// SaveBook persists the book into its period folder.
func SaveBook(b *budgeters.Book, p budgeters.Period) error {
	if err := (budgeters.Store{Root: Root()}).Save(b, p); err != nil {
		return fmt.Errorf("saving period %s: %w", p, err)
	}
	return nil
}

// printMarkdown renders markdown for the terminal, falling back to the raw
// text when the renderer cannot initialize.
func printMarkdown(md string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle())
	if err != nil {
		log.Printf("warning: cannot initialize markdown renderer: %v", err)
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
