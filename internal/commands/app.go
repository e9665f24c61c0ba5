package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ledgerkeep/assetlog/internal/assemble"
	"github.com/ledgerkeep/assetlog/internal/config"
	"github.com/ledgerkeep/assetlog/internal/entrylog"
	"github.com/ledgerkeep/assetlog/internal/gitops"
	"github.com/ledgerkeep/assetlog/internal/id"
	"github.com/ledgerkeep/assetlog/internal/logger"
	"github.com/ledgerkeep/assetlog/internal/model"
	"github.com/ledgerkeep/assetlog/internal/output"
	"github.com/ledgerkeep/assetlog/internal/prompt"
	"github.com/ledgerkeep/assetlog/internal/reflist"
)

const configFileName = config.FileName

type options struct {
	dir        string
	configPath string
	logLevel   string
}

// app is one run of the tool: a config, a single prompter over stdin and
// the reference lists loaded for this run.
type app struct {
	dir     string
	cfg     *config.Config
	log     zerolog.Logger
	prompt  *prompt.Prompter
	now     func() time.Time
	session string

	catalog *assemble.Catalog
}

func (o *options) newApp(cmd *cobra.Command) (*app, error) {
	dir, err := filepath.Abs(o.dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfgPath := o.configPath
	if cfgPath == "" {
		cfgPath = filepath.Join(dir, configFileName)
	}
	cfg, err := config.Load(cfgPath)
	if errors.Is(err, fs.ErrNotExist) && o.configPath == "" {
		cfg = config.Default()
	} else if err != nil {
		return nil, err
	}

	level := cfg.Log.Level
	if o.logLevel != "" {
		level = o.logLevel
	}

	now := time.Now()
	return &app{
		dir:     dir,
		cfg:     cfg,
		log:     logger.NewWithWriter(cmd.ErrOrStderr(), level),
		prompt:  prompt.New(cmd.InOrStdin(), cmd.OutOrStdout()),
		now:     time.Now,
		session: id.NewSession(now),
	}, nil
}

func (a *app) path(p string) string {
	return config.Resolve(a.dir, p)
}

func (a *app) stockCatalog() *assemble.Catalog {
	if a.catalog == nil {
		path := a.path(a.cfg.Paths.StockList)
		a.catalog = assemble.NewCatalog(path, reflist.LoadStocks(path, a.log), a.log)
	}
	return a.catalog
}

func (a *app) assembler(kind model.Kind) (assemble.Assembler, error) {
	cur := a.cfg.Display.Currency
	switch kind {
	case model.KindBank:
		accounts := reflist.LoadAccounts(a.path(a.cfg.Paths.AccountList), a.log)
		return &assemble.Bank{Accounts: accounts, Currency: cur}, nil
	case model.KindStock:
		return &assemble.StockHolding{Catalog: a.stockCatalog(), Currency: cur}, nil
	case model.KindPnL:
		return &assemble.RealizedPnL{Catalog: a.stockCatalog(), Currency: cur}, nil
	default:
		return nil, fmt.Errorf("unknown record kind %q", kind)
	}
}

// runFlow runs one entry session and writes its CSV. Only a failed write is
// returned as an error; an empty session writes nothing.
func (a *app) runFlow(kind model.Kind) error {
	a.prompt.Printf("\n>>> starting [%s]...\n", assemble.Title(kind))

	asm, err := a.assembler(kind)
	if err != nil {
		return err
	}
	records, err := assemble.Run(a.prompt, asm, a.now())
	if errors.Is(err, assemble.ErrNoAccounts) {
		a.log.Warn().Str("path", a.path(a.cfg.Paths.AccountList)).Msg("account list is empty, add accounts and retry")
		return nil
	}
	if err != nil {
		return err
	}
	if len(records) == 0 {
		a.prompt.Printf("\n⚠️  no records entered, nothing written\n")
		return nil
	}

	lang := output.Lang(a.cfg.CSV.HeaderLanguage)
	path := output.Path(a.path(a.cfg.Paths.OutputDir), kind, a.now())
	if err := output.WriteFile(path, kind, records, lang); err != nil {
		return fmt.Errorf("writing %s records: %w", kind, err)
	}
	a.prompt.Printf("\n✅ wrote %s\n   columns: %s\n   records: %d\n", path, strings.Join(output.Header(kind, lang), ", "), len(records))
	a.log.Info().Str("path", path).Int("records", len(records)).Msg("wrote csv")

	commit := a.commit(kind, len(records), path)
	a.record(kind, len(records), path, commit)
	return nil
}

// commit is best effort: failures are logged and the CSV stays on disk.
func (a *app) commit(kind model.Kind, n int, path string) string {
	if !a.cfg.Git.AutoCommit || !gitops.IsRepo(a.dir) {
		return ""
	}
	paths := []string{path}
	if kind != model.KindBank {
		paths = append(paths, a.path(a.cfg.Paths.StockList))
	}
	msg := fmt.Sprintf("%s: %d records (session %s)", kind, n, a.session)
	hash, err := gitops.CommitFiles(a.dir, msg, a.cfg.Git.AuthorName, a.cfg.Git.AuthorEmail, paths...)
	if err != nil {
		a.log.Warn().Err(err).Msg("git commit failed")
		return ""
	}
	if hash != "" {
		a.log.Info().Str("commit", hash).Msg("committed")
	}
	return hash
}

func (a *app) record(kind model.Kind, n int, path, commit string) {
	if a.cfg.Paths.EntryLog == "" {
		return
	}
	rel, err := filepath.Rel(a.dir, path)
	if err != nil {
		rel = path
	}
	e := entrylog.Entry{
		Timestamp: a.now(),
		SessionID: a.session,
		Kind:      kind,
		Records:   n,
		Path:      filepath.ToSlash(rel),
		Commit:    commit,
	}
	if err := entrylog.Append(a.path(a.cfg.Paths.EntryLog), []entrylog.Entry{e}); err != nil {
		a.log.Warn().Err(err).Msg("failed to write entry log")
	}
}

func (a *app) clearScreen() {
	f, ok := a.prompt.Out().(*os.File)
	if ok && term.IsTerminal(int(f.Fd())) {
		a.prompt.Printf("\033[H\033[2J")
	}
}
