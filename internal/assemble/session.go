// Package assemble turns validated prompt answers into records and runs the
// per-kind entry session.
package assemble

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ledgerkeep/assetlog/internal/model"
	"github.com/ledgerkeep/assetlog/internal/prompt"
)

// Assembler prompts for one record of its kind. The date has already been
// read by the session. Returning prompt.ErrExit or io.EOF abandons the
// record and ends the session.
type Assembler interface {
	Kind() model.Kind
	Assemble(p *prompt.Prompter, date string) (model.Record, error)
}

var errDone = errors.New("session done")

// Run collects records until the operator exits or types "done" at the date
// prompt. The default date is today, fixed for the whole session. An empty
// result means nothing was entered.
func Run(p *prompt.Prompter, a Assembler, today time.Time) ([]model.Record, error) {
	def := today.Format(prompt.DateLayout)
	p.Printf("\n=== 📝 %s entry ===\n", Title(a.Kind()))
	p.Printf("💡 type 'q' or 'exit' at any prompt to finish, or 'done' at the date prompt\n")

	records := []model.Record{}
	for {
		p.Printf("\n--- new record #%d (default date: %s) ---\n", len(records)+1, def)
		date, err := prompt.Ask(p, fmt.Sprintf("📅 date (YYYYMMDD) [%s]: ", def), func(raw string) (string, error) {
			if strings.EqualFold(strings.TrimSpace(raw), "done") {
				return "", errDone
			}
			return prompt.ParseDate(raw, def)
		})
		if prompt.Done(err) || errors.Is(err, errDone) {
			return records, nil
		}
		if err != nil {
			return records, fmt.Errorf("reading date: %w", err)
		}

		rec, err := a.Assemble(p, date)
		if prompt.Done(err) {
			return records, nil
		}
		if err != nil {
			return records, fmt.Errorf("assembling %s record: %w", a.Kind(), err)
		}
		records = append(records, rec)
	}
}

// Title returns the human name of a record kind.
func Title(k model.Kind) string {
	switch k {
	case model.KindBank:
		return "bank assets"
	case model.KindStock:
		return "stock holdings"
	case model.KindPnL:
		return "realized P&L"
	default:
		return string(k)
	}
}
