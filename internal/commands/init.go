package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ledgerkeep/assetlog/internal/config"
	"github.com/ledgerkeep/assetlog/internal/gitops"
	"github.com/ledgerkeep/assetlog/internal/logger"
	"github.com/ledgerkeep/assetlog/internal/output"
	"github.com/ledgerkeep/assetlog/internal/reflist"
)

func newInitCommand() *cobra.Command {
	var headerLang string
	var currency string
	var useGit bool

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Create a data directory with config and default reference lists",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			cfg := config.Default()
			cfg.CSV.HeaderLanguage = headerLang
			cfg.Display.Currency = currency
			cfg.Git.AutoCommit = useGit
			return runInit(cmd, absDir, cfg)
		},
	}

	cmd.Flags().StringVar(&headerLang, "header-language", string(output.LangEN), "CSV header language (en or zh)")
	cmd.Flags().StringVar(&currency, "currency", "TWD", "currency used to echo amounts")
	cmd.Flags().BoolVar(&useGit, "git", false, "initialize a git repository and commit written files")

	return cmd
}

func runInit(cmd *cobra.Command, dir string, cfg *config.Config) error {
	switch output.Lang(cfg.CSV.HeaderLanguage) {
	case output.LangEN, output.LangZH:
	default:
		return fmt.Errorf("unsupported header language %q", cfg.CSV.HeaderLanguage)
	}

	cfgPath := filepath.Join(dir, configFileName)
	if _, err := os.Stat(cfgPath); err == nil {
		return fmt.Errorf("%s already exists", cfgPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking config: %w", err)
	}

	outDir := config.Resolve(dir, cfg.Paths.OutputDir)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", outDir, err)
	}

	if err := config.Save(cfgPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Loading a missing list seeds it with the defaults.
	log := logger.NewWithWriter(cmd.ErrOrStderr(), cfg.Log.Level)
	accountPath := config.Resolve(dir, cfg.Paths.AccountList)
	stockPath := config.Resolve(dir, cfg.Paths.StockList)
	reflist.LoadAccounts(accountPath, log)
	reflist.LoadStocks(stockPath, log)

	if cfg.Git.AutoCommit {
		if !gitops.IsRepo(dir) {
			if err := gitops.Init(dir); err != nil {
				return fmt.Errorf("git init: %w", err)
			}
		}
		hash, err := gitops.CommitFiles(dir, "init: assetlog data directory", cfg.Git.AuthorName, cfg.Git.AuthorEmail, cfgPath, accountPath, stockPath)
		if err != nil {
			return fmt.Errorf("initial commit: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Initialized assetlog data directory at %s (%s)\n", dir, hash)
		return nil
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized assetlog data directory at %s\n", dir)
	return nil
}
