package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"
	"go.lsp.dev/protocol"
	"golang.org/x/term"

	"github.com/iw2rmb/quire/buffer"
	"github.com/iw2rmb/quire/config"
	"github.com/iw2rmb/quire/editor"
	"github.com/iw2rmb/quire/internal/loader"
	"github.com/iw2rmb/quire/internal/logging"
	"github.com/iw2rmb/quire/syntax"
	"github.com/iw2rmb/quire/ui"
)

// ErrNotTerminal is returned when the editor is started without a terminal
// on standard output.
var ErrNotTerminal = errors.New("standard output is not a terminal")

func runEditor(ctx context.Context, flags *rootFlags, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		return err
	}

	closeLog, err := setupLogging(cfg.Log)
	if err != nil {
		return err
	}
	defer closeLog()
	log := logging.Default()
	ctx = logging.WithLogger(ctx, log)

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		return ErrNotTerminal
	}

	jobs := flags.jobs
	if jobs <= 0 {
		jobs = runtime.NumCPU()
	}
	docs, err := loader.Load(ctx, args, jobs)
	if err != nil {
		return err
	}
	log.Info("loaded documents", logging.FieldPaths, len(docs))

	opts, err := bufferOptions(cfg)
	if err != nil {
		return err
	}
	buffers := buffer.FromDocuments(docs, initialBounds(), opts)

	m := editor.New(editor.Config{
		Buffers:         buffers,
		Style:           editor.DefaultStyle(),
		ShowLineNumbers: flags.lineNumbers,
		Clipboard:       systemClipboard{},
		OnOpen:          func(p *protocol.DidOpenTextDocumentParams) { logOpen(cfg, p) },
		OnChange:        logChange,
	})

	p := tea.NewProgram(app{editor: m},
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("running editor: %w", err)
	}
	return nil
}

// loadConfig reads and validates the configuration, then applies flags.
func loadConfig(flags *rootFlags) (config.Config, error) {
	path, err := resolveConfigPath(flags.configPath)
	if err != nil {
		return config.Config{}, err
	}
	cfg, err := config.Read(path)
	if err != nil {
		return config.Config{}, err
	}

	if flags.logFile != "" {
		cfg.Log.File = flags.logFile
	}
	if flags.logLevel != "" {
		cfg.Log.Level = flags.logLevel
	}
	if flags.noHighlight {
		cfg.Highlight = false
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// setupLogging installs the default logger. Without a log file logs are
// discarded.
func setupLogging(lc config.LogConfig) (func(), error) {
	if lc.File == "" {
		return func() {}, nil
	}
	logger, closer, err := logging.OpenFile(lc.File, lc.Level)
	if err != nil {
		return nil, err
	}
	logging.SetDefault(logger)
	return func() { _ = closer.Close() }, nil
}

func bufferOptions(cfg config.Config) (buffer.Options, error) {
	if !cfg.Highlight {
		return buffer.Options{NoHighlight: true}, nil
	}
	theme, err := cfg.HighlightTheme()
	if err != nil {
		return buffer.Options{}, err
	}
	return buffer.Options{Theme: theme}, nil
}

// initialBounds is the text area before the first window size message: the
// terminal minus the status line.
func initialBounds() ui.Bounds {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || h <= 1 {
		return ui.Bounds{}
	}
	return ui.NewBounds(ui.Coordinates{}, ui.Coordinates{X: w, Y: h - 1})
}

func logOpen(cfg config.Config, p *protocol.DidOpenTextDocumentParams) {
	log := logging.Default()
	doc := p.TextDocument
	s, err := syntax.Parse(string(doc.LanguageID))
	if err != nil {
		log.Debug("document opened", logging.FieldPath, doc.URI.Filename())
		return
	}
	server, ok := cfg.LanguageServer(s)
	if !ok {
		log.Debug("document opened", logging.FieldPath, doc.URI.Filename(), logging.FieldSyntax, s)
		return
	}
	log.Info("document opened",
		logging.FieldPath, doc.URI.Filename(),
		logging.FieldSyntax, s,
		logging.FieldServer, server.Command,
	)
}

func logChange(p *protocol.DidChangeTextDocumentParams) {
	logging.Default().Debug("document changed",
		logging.FieldPath, p.TextDocument.URI.Filename(),
		logging.FieldVersion, p.TextDocument.Version,
		logging.FieldChanges, len(p.ContentChanges),
	)
}

// systemClipboard reads the operating system clipboard.
type systemClipboard struct{}

func (systemClipboard) ReadText() (string, error) { return clipboard.ReadAll() }
