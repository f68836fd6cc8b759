package cli

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/ja-he/planlayout/internal/layout"
	"github.com/ja-he/planlayout/internal/model"
	"github.com/ja-he/planlayout/internal/potatolog"
	"github.com/ja-he/planlayout/internal/styling"
)

// NowCommand contains flags for the `now` command line command.
type NowCommand struct{ LayoutOptions }

// NowOutput is what the `now` command writes.
type NowOutput struct {
	Now         time.Time            `json:"now" yaml:"now"`
	Active      []model.Event        `json:"active" yaml:"active"`
	Diagnostics []potatolog.LogEntry `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

// Execute executes the now command.
// (This gets called by `go-flags` when `now` is provided on the command line)
func (command *NowCommand) Execute(args []string) error {
	return command.runNow(os.Stdout)
}

func (o *LayoutOptions) runNow(out io.Writer) error {
	defer func(prev zerolog.Logger) { log.Logger = prev }(log.Logger)
	diag, err := o.setUpLogging()
	if err != nil {
		return err
	}

	p, err := o.prepare()
	if err != nil {
		return err
	}

	candidates, err := p.activeCandidates()
	if err != nil {
		return err
	}

	output := NowOutput{
		Now:         p.now,
		Active:      styling.Decorate(layout.ActiveAt(candidates, p.now), p.kinds),
		Diagnostics: diag.entries(),
	}
	return encode(out, o.Format, output)
}
