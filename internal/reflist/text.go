package reflist

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/ledgerkeep/assetlog/internal/model"
)

const (
	stockFields = 3
	colMarket   = 0
	colCode     = 1
	colName     = 2
)

// ReadAccounts reads one account name per line. Blank lines are skipped.
// On a read error the accounts read so far are returned with the error.
func ReadAccounts(r io.Reader) ([]model.Account, error) {
	var accounts []model.Account
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		name := strings.TrimSpace(sc.Text())
		if name == "" {
			continue
		}
		accounts = append(accounts, model.Account{Name: name})
	}
	if err := sc.Err(); err != nil {
		return accounts, fmt.Errorf("reading account list: %w", err)
	}
	return accounts, nil
}

// WriteAccounts writes one account name per line.
func WriteAccounts(w io.Writer, accounts []model.Account) error {
	for _, a := range accounts {
		if _, err := fmt.Fprintln(w, a.Name); err != nil {
			return fmt.Errorf("writing account %q: %w", a.Name, err)
		}
	}
	return nil
}

// ReadStocks reads "market,code,name" lines. Lines with fewer than three
// fields are skipped and counted; fields past the third are ignored.
func ReadStocks(r io.Reader) (stocks []model.Stock, skipped int, err error) {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		s, ok := UnmarshalStock(sc.Text())
		if !ok {
			skipped++
			continue
		}
		stocks = append(stocks, s)
	}
	if err := sc.Err(); err != nil {
		return stocks, skipped, fmt.Errorf("reading stock list: %w", err)
	}
	return stocks, skipped, nil
}

// WriteStocks writes one "market,code,name" line per stock.
func WriteStocks(w io.Writer, stocks []model.Stock) error {
	for _, s := range stocks {
		if _, err := fmt.Fprintln(w, MarshalStock(s)); err != nil {
			return fmt.Errorf("writing stock %s: %w", s.Code, err)
		}
	}
	return nil
}

// MarshalStock converts a Stock to its list line (without newline).
func MarshalStock(s model.Stock) string {
	return strings.Join([]string{s.Market, s.Code, s.Name}, ",")
}

// UnmarshalStock parses a list line. Blank and short lines report false.
func UnmarshalStock(line string) (model.Stock, bool) {
	parts := strings.Split(strings.TrimSpace(line), ",")
	if len(parts) < stockFields {
		return model.Stock{}, false
	}
	return model.Stock{
		Market: strings.TrimSpace(parts[colMarket]),
		Code:   strings.TrimSpace(parts[colCode]),
		Name:   strings.TrimSpace(parts[colName]),
	}, true
}
