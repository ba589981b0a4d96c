// Command akshara is a terminal host for the on-screen key panel.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"github.com/iw2rmb/akshara"
	"github.com/iw2rmb/akshara/internal/config"
	"github.com/iw2rmb/akshara/internal/grapheme"
	"github.com/iw2rmb/akshara/internal/logging"
	"github.com/iw2rmb/akshara/panel"
	"github.com/iw2rmb/akshara/session"
)

type options struct {
	configPath  string
	layout      string
	showVersion bool
}

type model struct {
	panel panel.Model
}

func (m model) Init() tea.Cmd { return m.panel.Init() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.panel, cmd = m.panel.Update(msg)
	return m, cmd
}

func (m model) View() string { return m.panel.View() }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 2
	}
	if opts.showVersion {
		fmt.Fprintln(stdout, akshara.Banner())
		return 0
	}

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if opts.layout != "" {
		cfg.Panel.Layout = opts.layout
	}

	logCfg, err := cfg.Log.Logging()
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	log, closer, err := logging.New(logCfg)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	defer closer.Close()

	sess := session.New(nil, session.Options{Logger: log})
	initial, alternates, err := selectLayouts(cfg.Panel, sess.Engine().Vowels())
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	log.Info("session started", "session_id", sess.ID(), "layout", initial.Name, "version", akshara.Version())

	pcfg := panel.DefaultConfig()
	pcfg.Layout = initial
	pcfg.Alternates = alternates
	pcfg.Session = sess
	pcfg.ShowMatraBase = cfg.Panel.ShowMatraBase
	pcfg.ShowHelp = cfg.Panel.ShowHelp
	pcfg.Clipboard = systemClipboard{}
	pcfg.Logger = log

	p := tea.NewProgram(model{panel: panel.New(pcfg)}, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	log.Info("session ended", "session_id", sess.ID(), "runes", sess.Buffer().Len(), "graphemes", grapheme.Count(sess.Text()))
	return 0
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var opts options
	fs := pflag.NewFlagSet("akshara", pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVarP(&opts.configPath, "config", "c", "", "path to configuration file")
	fs.StringVarP(&opts.layout, "layout", "l", "", "initial key panel (devanagari, tamil, or a user layout name)")
	fs.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}
	if fs.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, nil
}
