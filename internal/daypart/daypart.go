// Package daypart maps date-only due dates of tasks to concrete time windows
// by named parts of the day (e.g., "morning").
package daypart

import (
	"fmt"
	"time"

	"github.com/ja-he/planlayout/internal/model"
)

// A Window is the time of day a daypart covers.
type Window struct {
	Start model.Timestamp
	End   model.Timestamp
}

// Policy resolves daypart names to windows.
type Policy struct {
	windows  map[string]Window
	fallback string
}

// NewPolicy returns a policy over the given windows. Unknown or empty
// daypart names resolve to the fallback, which must be one of the windows.
func NewPolicy(windows map[string]Window, fallback string) (*Policy, error) {
	for name, w := range windows {
		if !w.Start.IsBefore(w.End) {
			return nil, fmt.Errorf("daypart '%s' does not start (%s) before it ends (%s)", name, w.Start, w.End)
		}
	}
	if _, ok := windows[fallback]; !ok {
		return nil, fmt.Errorf("fallback daypart '%s' not defined", fallback)
	}
	return &Policy{windows: windows, fallback: fallback}, nil
}

// Window returns the window of the named daypart, and whether the name was
// known (if not, the fallback window is returned).
func (p *Policy) Window(name string) (Window, bool) {
	if w, ok := p.windows[name]; ok {
		return w, true
	}
	return p.windows[p.fallback], false
}

// Resolve returns the start and end instants of the named daypart on the
// given date.
func (p *Policy) Resolve(due model.Date, name string, loc *time.Location) (start, end time.Time) {
	w, _ := p.Window(name)
	return w.Start.On(due, loc), w.End.On(due, loc)
}
