package output

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/ledgerkeep/assetlog/internal/model"
)

var suffixes = map[model.Kind]string{
	model.KindBank:  "bank_assets",
	model.KindStock: "stock_holdings",
	model.KindPnL:   "realized_pnl",
}

// Path returns <dir>/<YYYYMMDD>_<kind suffix>.csv for day.
func Path(dir string, kind model.Kind, day time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("%s_%s.csv", day.Format("20060102"), suffixes[kind]))
}

var (
	pendingMu sync.Mutex
	pending   = map[string]struct{}{}
)

func track(name string) {
	pendingMu.Lock()
	pending[name] = struct{}{}
	pendingMu.Unlock()
}

func untrack(name string) {
	pendingMu.Lock()
	delete(pending, name)
	pendingMu.Unlock()
}

// RemovePending deletes temporary files of writes still in progress. It is
// called on interrupt, right before the process exits.
func RemovePending() {
	pendingMu.Lock()
	defer pendingMu.Unlock()
	for name := range pending {
		os.Remove(name)
		delete(pending, name)
	}
}

// WriteFile writes records to path, creating parent directories. The data
// goes to a temporary file that is renamed over path, so a failed write
// leaves any existing file untouched.
func WriteFile(path string, kind model.Kind, records []model.Record, lang Lang) (err error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	track(tmp.Name())
	defer func() {
		untrack(tmp.Name())
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if err := WriteRecords(tmp, kind, records, lang); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		return fmt.Errorf("setting mode on %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
