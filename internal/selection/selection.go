// Package selection turns user intent into an ordered list of component IDs.
package selection

import (
	"fmt"
	"io"
	"strings"

	"github.com/rigup-dev/rigup/internal/component"
	"github.com/rigup-dev/rigup/internal/messages"
)

// Selection is an ordered sequence of component IDs chosen for one run.
type Selection []component.ID

// Parse builds a Selection from a space-separated identifier list. Unknown
// identifiers produce one warning each on warnOut and are skipped; order of
// the remaining identifiers is preserved.
func Parse(raw string, warnOut io.Writer) Selection {
	var sel Selection
	for _, field := range strings.Fields(raw) {
		if _, ok := component.Lookup(field); !ok {
			_, _ = fmt.Fprintf(warnOut, messages.UnknownComponentFmt, field)
			continue
		}
		sel = append(sel, component.ID(field))
	}
	return sel
}

// Canonical returns the Selection chosen by the --all flag.
func Canonical() Selection {
	return Selection(component.Canonical())
}
