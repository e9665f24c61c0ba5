package reflist

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/ledgerkeep/assetlog/internal/model"
)

// LoadAccounts returns the accounts in path. A missing file is seeded with
// DefaultAccounts, as is one that cannot be opened. Errors are logged as
// warnings and never returned: the result is always usable, possibly partial.
func LoadAccounts(path string, log zerolog.Logger) []model.Account {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		accounts := DefaultAccounts()
		log.Warn().Str("path", path).Msg("account list not found, using defaults")
		if err := seed(path, func(w io.Writer) error { return WriteAccounts(w, accounts) }); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("could not create account list")
		} else {
			log.Info().Str("path", path).Msg("created default account list")
		}
		return accounts
	}
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("could not open account list, using defaults")
		return DefaultAccounts()
	}
	defer f.Close()

	accounts, err := ReadAccounts(f)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("account list only partially read")
	}
	log.Info().Int("count", len(accounts)).Msg("loaded account list")
	return accounts
}

// LoadStocks returns the stocks in path, seeding DefaultStocks when the file
// is missing. Malformed lines are dropped without an operator warning.
func LoadStocks(path string, log zerolog.Logger) []model.Stock {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		stocks := DefaultStocks()
		log.Warn().Str("path", path).Msg("stock list not found, using defaults")
		if err := seed(path, func(w io.Writer) error { return WriteStocks(w, stocks) }); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("could not create stock list")
		} else {
			log.Info().Str("path", path).Msg("created default stock list")
		}
		return stocks
	}
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("could not open stock list, using defaults")
		return DefaultStocks()
	}
	defer f.Close()

	stocks, skipped, err := ReadStocks(f)
	if err != nil {
		log.Warn().Err(err).Str("path", path).Msg("stock list only partially read")
	}
	log.Debug().Int("skipped", skipped).Str("path", path).Msg("malformed stock lines")
	log.Info().Int("count", len(stocks)).Msg("loaded stock list")
	return stocks
}

// AppendStock adds s to the list file and returns the reloaded list. If the
// write fails, s is appended to current in memory so it stays selectable for
// the rest of the session.
func AppendStock(path string, current []model.Stock, s model.Stock, log zerolog.Logger) []model.Stock {
	if err := appendLine(path, MarshalStock(s)); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("could not save new stock")
		return append(current[:len(current):len(current)], s)
	}
	log.Info().Str("market", s.Market).Str("code", s.Code).Str("name", s.Name).Msg("added stock to list")
	return LoadStocks(path, log)
}

func seed(path string, write func(io.Writer) error) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating list dir: %w", err)
		}
	}
	var buf bytes.Buffer
	if err := write(&buf); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("writing list: %w", err)
	}
	return nil
}

// appendLine appends line, first terminating an unterminated last line.
func appendLine(path, line string) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening list: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat list: %w", err)
	}
	if size := info.Size(); size > 0 {
		last := make([]byte, 1)
		if _, err := f.ReadAt(last, size-1); err != nil {
			return fmt.Errorf("reading list: %w", err)
		}
		if last[0] != '\n' {
			line = "\n" + line
		}
	}
	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("appending to list: %w", err)
	}
	return nil
}
