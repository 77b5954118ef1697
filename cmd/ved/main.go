// Command ved edits ruby-annotated text in the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"github.com/iw2rmb/ved"
	"github.com/iw2rmb/ved/decorate"
	"github.com/iw2rmb/ved/editor"
	"github.com/iw2rmb/ved/internal/config"
)

// CLI defines the command-line interface using Kong.
var CLI struct {
	File      string           `arg:"" optional:"" help:"Markup file to open (read only)" type:"existingfile"`
	Direction string           `name:"direction" short:"d" help:"Writing direction: horizontal or vertical"`
	Policy    string           `name:"policy" short:"p" help:"Appear policy: by-paragraph, by-character, rich or show-all"`
	Config    string           `name:"config" short:"c" help:"Config file (YAML)" type:"path"`
	LogFile   string           `name:"log-file" help:"Write logs to this file" type:"path"`
	Verbose   int              `name:"verbose" short:"v" type:"counter" help:"Increase log verbosity"`
	Print     bool             `name:"print" help:"Print the final markup on exit"`
	Version   kong.VersionFlag `name:"version" help:"Print version information"`
}

type model struct {
	editor editor.Model
	help   help.Model
}

func (m model) Init() tea.Cmd { return m.editor.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		// The last row holds the key help.
		m.help.Width = msg.Width
		m.editor = m.editor.SetSize(msg.Width, max(msg.Height-1, 0))
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "esc" || msg.String() == "ctrl+q" {
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m model) View() string {
	return m.editor.View() + "\n" + m.help.View(m.editor.KeyMap())
}

func main() {
	ctx := kong.Parse(&CLI,
		kong.Name("ved"),
		kong.Description("Vertical-capable editor for ruby-annotated text"),
		kong.UsageOnError(),
		kong.Vars{"version": ved.ReadBuildInfo().String()},
	)
	ctx.FatalIfErrorf(run())
}

func run() error {
	settings := config.Default()
	if CLI.Config != "" {
		s, err := config.Load(CLI.Config)
		if err != nil {
			return err
		}
		settings = s
	}
	if err := applyFlags(&settings); err != nil {
		return err
	}

	// The terminal belongs to the UI: log to a file or not at all.
	if settings.Log.File != "" {
		commonlog.Configure(settings.Log.Verbosity+CLI.Verbose, &settings.Log.File)
	} else {
		commonlog.Configure(-4, nil)
	}
	log := commonlog.GetLogger("ved")

	text := ""
	if CLI.File != "" {
		data, err := os.ReadFile(CLI.File)
		if err != nil {
			return fmt.Errorf("read %s: %w", CLI.File, err)
		}
		text = string(data)
	}

	m := model{help: help.New(), editor: editor.New(editor.Config{
		Text:            text,
		Direction:       settings.Direction,
		Policy:          settings.Policy,
		Style:           editor.DefaultStyle(),
		HistoryLimit:    settings.HistoryLimit,
		FrameInterval:   settings.FrameInterval,
		ReadingBrackets: settings.ReadingBrackets,
		Logger:          commonlog.GetLogger("ved.editor"),
		OnPolicyChange: func(from, to decorate.AppearPolicy) {
			log.Debug("policy", "from", from.String(), "to", to.String())
		},
	})}
	log.Info("starting", "file", CLI.File, "direction", settings.Direction.String(), "policy", settings.Policy.String(), "document", m.editor.Document().ID())

	final, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}
	if CLI.Print {
		if fm, ok := final.(model); ok {
			fmt.Println(fm.editor.Document().Text())
		}
	}
	return nil
}

// applyFlags overrides file settings with the flags given.
func applyFlags(s *config.Settings) error {
	if CLI.Direction != "" {
		d, err := config.ParseDirection(CLI.Direction)
		if err != nil {
			return err
		}
		s.Direction = d
	}
	if CLI.Policy != "" {
		p, err := decorate.ParsePolicy(CLI.Policy)
		if err != nil {
			return err
		}
		s.Policy = p
	}
	if CLI.LogFile != "" {
		s.Log.File = CLI.LogFile
	}
	return nil
}
