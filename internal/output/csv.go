// Package output writes entry sessions to dated CSV files.
package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ledgerkeep/assetlog/internal/model"
)

// Lang selects the header labels.
type Lang string

const (
	LangEN Lang = "en"
	LangZH Lang = "zh"
)

var headers = map[model.Kind]map[Lang][]string{
	model.KindBank: {
		LangEN: {"date", "account_name", "amount"},
		LangZH: {"日期", "帳戶名稱", "金額"},
	},
	model.KindStock: {
		LangEN: {"date", "market", "code", "name", "shares", "cost", "market_value", "unrealized_pnl", "return_pct"},
		LangZH: {"日期", "市場", "股票代號", "股票名稱", "持有股數", "總成本", "總市值", "未實現損益", "報酬率%"},
	},
	model.KindPnL: {
		LangEN: {"date", "market", "code", "name", "shares_sold", "cost", "sale_price", "realized_pnl", "return_pct"},
		LangZH: {"日期", "市場", "股票代號", "股票名稱", "賣出股數", "總成本", "賣出價", "已實現損益", "報酬率%"},
	},
}

// Header returns the column labels for kind. Unknown languages use English.
func Header(kind model.Kind, lang Lang) []string {
	h, ok := headers[kind][lang]
	if !ok {
		h = headers[kind][LangEN]
	}
	return h
}

// WriteRecords writes a UTF-8 BOM, the header for kind and one row per
// record. Every record must be of kind.
func WriteRecords(w io.Writer, kind model.Kind, records []model.Record, lang Lang) error {
	bw := transform.NewWriter(w, unicode.UTF8BOM.NewEncoder())
	cw := csv.NewWriter(bw)

	if err := cw.Write(Header(kind, lang)); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, rec := range records {
		if rec.Kind() != kind {
			return fmt.Errorf("row %d: %s record in %s file", i+2, rec.Kind(), kind)
		}
		row, err := MarshalRecord(rec)
		if err != nil {
			return fmt.Errorf("row %d: %w", i+2, err)
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return err
	}
	return bw.Close()
}

// MarshalRecord converts a record to its CSV row in column order.
func MarshalRecord(rec model.Record) ([]string, error) {
	switch r := rec.(type) {
	case model.BankRecord:
		return []string{r.Date, r.AccountName, itoa(r.Amount)}, nil
	case model.StockRecord:
		return []string{
			r.Date, r.Market, r.Code, r.Name,
			float(r.Shares), itoa(r.Cost), itoa(r.MarketValue), itoa(r.UnrealizedPnL), float(r.ReturnPct),
		}, nil
	case model.PnLRecord:
		return []string{
			r.Date, r.Market, r.Code, r.Name,
			float(r.SharesSold), itoa(r.Cost), itoa(r.SalePrice), itoa(r.RealizedPnL), float(r.ReturnPct),
		}, nil
	default:
		return nil, fmt.Errorf("unsupported record type %T", rec)
	}
}

func itoa(n int64) string { return strconv.FormatInt(n, 10) }

// float renders a fractional field so it always carries a decimal point:
// 10 -> "10.0", 12.5 -> "12.5".
func float(d decimal.Decimal) string {
	s := d.String()
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
