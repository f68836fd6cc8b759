package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"github.com/ja-he/planlayout/internal/config"
	"github.com/ja-he/planlayout/internal/layout"
	"github.com/ja-he/planlayout/internal/model"
	"github.com/ja-he/planlayout/internal/potatolog"
	"github.com/ja-he/planlayout/internal/storage"
	"github.com/ja-he/planlayout/internal/storage/providers"
	"github.com/ja-he/planlayout/internal/styling"
)

// LayoutOptions are the flags shared by all layout commands.
type LayoutOptions struct {
	EventsFiles []string `short:"e" long:"events" description:"a YAML events/tasks file to read; may be repeated; defaults to events.yaml in the planlayout home" value-name:"<file>"`
	ICSFiles    []string `short:"i" long:"ics" description:"an iCalendar file to read; may be repeated" value-name:"<file>"`

	Date string `short:"d" long:"date" description:"the date to lay out; defaults to today" value-name:"<yyyy-mm-dd>"`
	Now  string `short:"n" long:"now" description:"the instant to determine active events at; defaults to the current time" value-name:"<TIME>"`

	Format           string `short:"f" long:"format" description:"the output format" choice:"json" choice:"yaml" default:"json"`
	LogJSON          bool   `long:"log-json" description:"collect log entries and emit them under 'diagnostics' in the output"`
	DiagnosticsLevel string `long:"diagnostics-level" description:"the lowest level of collected log entries to emit" choice:"trace" choice:"debug" choice:"info" choice:"warn" choice:"error" default:"trace"`
	Verbose          bool   `long:"verbose" description:"log debug information"`
}

// DayCommand contains flags for the `day` command line command.
type DayCommand struct{ LayoutOptions }

// WeekCommand contains flags for the `week` command line command.
type WeekCommand struct{ LayoutOptions }

// MonthCommand contains flags for the `month` command line command.
type MonthCommand struct{ LayoutOptions }

// YearCommand contains flags for the `year` command line command.
type YearCommand struct{ LayoutOptions }

// AgendaCommand contains flags for the `agenda` command line command.
type AgendaCommand struct{ LayoutOptions }

// Execute executes the day command.
func (command *DayCommand) Execute(args []string) error {
	return command.run(model.ViewDay, os.Stdout)
}

// Execute executes the week command.
func (command *WeekCommand) Execute(args []string) error {
	return command.run(model.ViewWeek, os.Stdout)
}

// Execute executes the month command.
func (command *MonthCommand) Execute(args []string) error {
	return command.run(model.ViewMonth, os.Stdout)
}

// Execute executes the year command.
func (command *YearCommand) Execute(args []string) error {
	return command.run(model.ViewYear, os.Stdout)
}

// Execute executes the agenda command.
func (command *AgendaCommand) Execute(args []string) error {
	return command.run(model.ViewAgenda, os.Stdout)
}

// Output is what the layout commands write.
type Output struct {
	layout.Result `json:",inline" yaml:",inline"`

	// Events are the laid out events, with their colors resolved.
	Events []model.Event `json:"events" yaml:"events"`

	Diagnostics []potatolog.LogEntry `json:"diagnostics,omitempty" yaml:"diagnostics,omitempty"`
}

func (o *LayoutOptions) run(mode model.ViewMode, out io.Writer) error {
	defer func(prev zerolog.Logger) { log.Logger = prev }(log.Logger)
	diag, err := o.setUpLogging()
	if err != nil {
		return err
	}

	p, err := o.prepare()
	if err != nil {
		return err
	}

	from, til := queryRange(mode, p.date, p.loc)
	events, err := p.sources.GetEventsCoveringTimerange(from, til)
	if err != nil {
		return fmt.Errorf("can't load events (%w)", err)
	}
	events = styling.Decorate(events, p.kinds)

	result, err := p.engine.Layout(layout.Request{
		Mode:   mode,
		Date:   p.date,
		Now:    p.now,
		Events: events,
	})
	if err != nil {
		return err
	}
	if p.now.Before(from) || !p.now.Before(til) {
		candidates, err := p.activeCandidates()
		if err != nil {
			return err
		}
		result.Active = p.engine.Active(candidates, p.now)
	}

	output := Output{Result: *result, Events: events, Diagnostics: diag.entries()}
	return encode(out, o.Format, output)
}

// prepared is everything a command needs, derived from the flags, the
// environment and the config.
type prepared struct {
	engine  *layout.Engine
	sources storage.CombinedSource
	kinds   *styling.KindStyling
	loc     *time.Location
	date    model.Date
	now     time.Time
}

// activeCandidates returns the events that may be active at now, wherever
// the viewed date is.
func (p *prepared) activeCandidates() ([]model.Event, error) {
	// widened, since active events include those ending exactly at now
	from, til := p.now.Add(-time.Minute), p.now.Add(time.Minute)
	candidates, err := p.sources.GetEventsCoveringTimerange(from, til)
	if err != nil {
		return nil, fmt.Errorf("can't load events (%w)", err)
	}
	return candidates, nil
}

func (o *LayoutOptions) prepare() (*prepared, error) {
	envData := loadEnvData()
	configData, err := loadConfig(envData)
	if err != nil {
		return nil, err
	}

	engineOpts, err := configData.EngineOptions()
	if err != nil {
		return nil, fmt.Errorf("invalid config (%w)", err)
	}
	engine, err := layout.NewEngine(engineOpts)
	if err != nil {
		return nil, err
	}
	loc := engineOpts.Location

	kinds, err := configData.KindStyling()
	if err != nil {
		return nil, fmt.Errorf("invalid kind colors (%w)", err)
	}

	result := &prepared{engine: engine, kinds: kinds, loc: loc}

	if o.Now == "" {
		result.now = time.Now().In(loc)
	} else {
		result.now, err = model.ParseInstant(o.Now, loc)
		if err != nil {
			return nil, fmt.Errorf("invalid --now (%w)", err)
		}
	}

	if o.Date == "" {
		result.date = model.DateFromGotime(result.now)
	} else {
		result.date, err = model.FromString(o.Date)
		if err != nil {
			return nil, fmt.Errorf("invalid --date (%w)", err)
		}
	}

	result.sources, err = o.sources(envData, configData, loc)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (o *LayoutOptions) sources(envData EnvData, configData config.Config, loc *time.Location) (storage.CombinedSource, error) {
	dayparts, err := configData.DaypartPolicy()
	if err != nil {
		return nil, fmt.Errorf("invalid dayparts (%w)", err)
	}

	eventsFiles := o.EventsFiles
	if len(eventsFiles) == 0 && len(o.ICSFiles) == 0 {
		_, err := os.Stat(envData.DefaultEventsPath())
		switch {
		case err == nil:
			eventsFiles = []string{envData.DefaultEventsPath()}
		case errors.Is(err, fs.ErrNotExist):
			log.Info().Str("path", envData.DefaultEventsPath()).Msg("no events file given or found, laying out no events")
		default:
			return nil, fmt.Errorf("can't stat default events file (%w)", err)
		}
	}

	result := storage.CombinedSource{}
	for _, path := range eventsFiles {
		result = append(result, providers.NewFilesProvider(path, loc, dayparts))
	}
	for _, path := range o.ICSFiles {
		result = append(result, providers.NewICSProvider(path, loc))
	}
	return result, nil
}

// diagnostics are the collected log entries to be emitted with the output.
type diagnostics struct {
	mem   *potatolog.MemoryLogReaderWriter
	level zerolog.Level
}

func (d *diagnostics) entries() []potatolog.LogEntry {
	if d == nil {
		return nil
	}
	return d.mem.AtLeast(d.level)
}

// setUpLogging adjusts the global logger to the flags. If log entries are to
// be collected, the diagnostics collecting them are returned.
func (o *LayoutOptions) setUpLogging() (*diagnostics, error) {
	level := zerolog.InfoLevel
	if o.Verbose {
		level = zerolog.DebugLevel
	}

	var diag *diagnostics
	if o.LogJSON {
		diag = &diagnostics{mem: potatolog.NewMemoryLogReaderWriter(), level: zerolog.TraceLevel}
		if o.DiagnosticsLevel != "" {
			var err error
			diag.level, err = zerolog.ParseLevel(o.DiagnosticsLevel)
			if err != nil {
				return nil, fmt.Errorf("invalid --diagnostics-level (%w)", err)
			}
		}
		log.Logger = log.Output(zerolog.MultiLevelWriter(zerolog.ConsoleWriter{Out: os.Stderr}, diag.mem))
	}
	log.Logger = log.Logger.Level(level)
	return diag, nil
}

// queryRange returns the time range the view of the given mode and date
// shows, including the leading and trailing days of month grids.
func queryRange(mode model.ViewMode, date model.Date, loc *time.Location) (time.Time, time.Time) {
	switch mode {
	case model.ViewWeek:
		monday, sunday := date.WeekBounds()
		return monday.Start(loc), sunday.End(loc)
	case model.ViewMonth:
		grid := layout.BuildMonthGrid(date)
		return grid[0].Date.Start(loc), grid[len(grid)-1].Date.End(loc)
	case model.ViewYear:
		first := layout.BuildMonthGrid(model.Date{Year: date.Year, Month: 1, Day: 1})
		last := layout.BuildMonthGrid(model.Date{Year: date.Year, Month: 12, Day: 1})
		return first[0].Date.Start(loc), last[len(last)-1].Date.End(loc)
	default:
		return date.Start(loc), date.End(loc)
	}
}

func encode(out io.Writer, format string, v any) error {
	switch format {
	case "yaml":
		encoder := yaml.NewEncoder(out)
		encoder.SetIndent(2)
		if err := encoder.Encode(v); err != nil {
			return err
		}
		return encoder.Close()
	case "json", "":
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")
		return encoder.Encode(v)
	default:
		return fmt.Errorf("unknown output format '%s'", format)
	}
}
