package importers

import (
	"fmt"

	"github.com/gobwas/glob"

	"github.com/mrlokans/jumpdb/internal/utils"
)

// Excluder matches canonical directory paths against glob patterns.
// "*" does not cross "/" while "**" does.
type Excluder struct {
	patterns []glob.Glob
}

// NewExcluder compiles patterns. A leading "~" is expanded to the home
// directory. Empty patterns are ignored.
func NewExcluder(patterns []string) (*Excluder, error) {
	e := &Excluder{}
	for _, pattern := range patterns {
		if pattern == "" {
			continue
		}

		expanded, err := utils.ExpandHome(pattern)
		if err != nil {
			return nil, err
		}

		g, err := glob.Compile(expanded, '/')
		if err != nil {
			return nil, fmt.Errorf("invalid exclude pattern %q: %w", pattern, err)
		}
		e.patterns = append(e.patterns, g)
	}
	return e, nil
}

// Match reports whether path matches any pattern. A nil Excluder matches nothing.
func (e *Excluder) Match(path string) bool {
	if e == nil {
		return false
	}
	for _, g := range e.patterns {
		if g.Match(path) {
			return true
		}
	}
	return false
}

func (e *Excluder) Len() int {
	if e == nil {
		return 0
	}
	return len(e.patterns)
}
