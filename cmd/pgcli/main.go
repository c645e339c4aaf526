// Package main is the entry point for the pgcli line editor.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/devadathanmb/pgcli/internal/app"
	"github.com/devadathanmb/pgcli/internal/config"
	"github.com/devadathanmb/pgcli/internal/input/mode"
	"github.com/devadathanmb/pgcli/internal/prompt"
	"github.com/devadathanmb/pgcli/internal/prompt/buffer"
	"github.com/devadathanmb/pgcli/internal/prompt/completer"
	"github.com/devadathanmb/pgcli/internal/prompt/history"
	"github.com/devadathanmb/pgcli/internal/prompt/suggest"
	"github.com/devadathanmb/pgcli/internal/term"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		showVersion bool
		viMode      bool
		multiLine   bool
	)
	flag.BoolVar(&showVersion, "version", false, "Print version and exit")
	flag.BoolVar(&viMode, "vi", false, "Start in vi editing mode")
	flag.BoolVar(&multiLine, "multi-line", false, "Start with multi-line input enabled")
	flag.Parse()

	if showVersion {
		fmt.Printf("pgcli %s (%s)\n", version, commit)
		return 0
	}

	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "Error: standard input is not a terminal")
		return 1
	}

	dir, err := config.Dir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	cfg, err := config.Load(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	if viMode {
		cfg.ViMode = true
	}
	if multiLine {
		cfg.MultiLine = true
	}

	store, err := history.Open(cfg.HistoryPath(dir))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	editingMode := mode.Emacs
	if cfg.ViMode {
		editingMode = mode.Vi
	}
	application := app.New(
		app.WithSmartCompletion(cfg.SmartCompletion),
		app.WithMultiLine(cfg.MultiLine),
		app.WithMultilineMode(app.MultilineMode(cfg.MultilineMode)),
		app.WithEditingMode(editingMode),
	)

	var editor *prompt.Editor
	buf := buffer.New(
		buffer.WithHistory(store),
		buffer.WithSuggester(suggest.NewHistorySuggester(store)),
		buffer.WithCompleter(completer.New(application.SmartCompletion)),
		buffer.WithSubmit(func(text string) {
			execute(application, editor, text)
		}),
	)

	editorOpts := []prompt.EditorOption{
		prompt.WithPrompt(cfg.Prompt),
		prompt.WithChordTimeout(cfg.ChordTimeout()),
	}
	if width, _, err := term.Size(int(os.Stdin.Fd())); err == nil {
		editorOpts = append(editorOpts, prompt.WithScreenWidth(width))
	}
	editor = prompt.NewEditor(application, buf, editorOpts...)

	raw, err := term.EnterRaw(int(os.Stdin.Fd()))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: entering raw mode: %v\n", err)
		return 1
	}
	defer raw.Restore()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := editor.Run(ctx); err != nil && ctx.Err() == nil {
		raw.Restore()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// execute handles a submitted line. Query execution against a live
// database is out of scope here; submitted statements are echoed with
// any explain prefix applied, and exit commands end the session.
func execute(a *app.App, editor *prompt.Editor, text string) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "exit" || trimmed == "quit" || trimmed == ":q" || trimmed == `\q` {
		editor.Stop()
		return
	}
	if trimmed == "" {
		return
	}
	editor.ClearPrompt()
	fmt.Printf("%s\r\n", a.SubmitText(text))
}
