package cmd

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/daMelody/budgeters"
)

// prompter asks the user for field values, one line at a time.
type prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func newPrompter() *prompter {
	return &prompter{in: bufio.NewReader(os.Stdin), out: os.Stdout}
}

// ask reads one trimmed line for the labeled field. An empty answer (or a
// closed input) returns the fallback.
func (p *prompter) ask(label, fallback string) string {
	if fallback != "" {
		fmt.Fprintf(p.out, "%s [%s]: ", label, fallback)
	} else {
		fmt.Fprintf(p.out, "%s: ", label)
	}
	line, _ := p.in.ReadString('\n')
	line = strings.TrimSpace(line)
	if line == "" {
		return fallback
	}
	return line
}

// askAmount reads a monetary value, tolerating sloppy input.
func (p *prompter) askAmount(label string) budgeters.Amount {
	return budgeters.ParseAmountLenient(p.ask(label, "0"))
}

// askDate reads a date, defaulting to today when the answer does not parse.
func (p *prompter) askDate(label string) budgeters.Date {
	today := budgeters.Today()
	s := p.ask(label, today.String())
	d, err := budgeters.ParseDate(s)
	if err != nil {
		log.Printf("warning: cannot parse date %q, using %s", s, today)
		return today
	}
	return d
}
