package menu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rigup-dev/rigup/internal/component"
	"github.com/rigup-dev/rigup/internal/messages"
)

// ChoiceIter is the numbered-menu fallback: an iterator over single
// component choices. The caller feeds each choice to the same dispatcher
// used by every other front-end, keeping selection and dispatch decoupled.
type ChoiceIter struct {
	scanner *bufio.Scanner
	out     io.Writer
	comps   []component.Component
}

// NewChoiceIter builds an iterator reading choices from in.
func NewChoiceIter(in io.Reader, out io.Writer) *ChoiceIter {
	return &ChoiceIter{
		scanner: bufio.NewScanner(in),
		out:     out,
		comps:   component.All(),
	}
}

// Next prompts for one choice. It returns ok=false when the user quits or
// input ends; invalid input warns and prompts again.
func (c *ChoiceIter) Next() (component.ID, bool) {
	for {
		c.printMenu()
		_, _ = fmt.Fprint(c.out, messages.MenuPrompt)
		if !c.scanner.Scan() {
			return "", false
		}
		line := strings.TrimSpace(c.scanner.Text())
		if line == "q" || line == "quit" {
			return "", false
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 1 || n > len(c.comps) {
			_, _ = fmt.Fprintf(c.out, messages.MenuInvalidFmt, line)
			continue
		}
		return c.comps[n-1].ID, true
	}
}

func (c *ChoiceIter) printMenu() {
	_, _ = fmt.Fprintln(c.out, messages.MenuNumberedHead)
	for i, comp := range c.comps {
		_, _ = fmt.Fprintf(c.out, messages.MenuNumberedItem, i+1, comp.Label)
	}
	_, _ = fmt.Fprint(c.out, messages.MenuNumberedQuit)
}
