package assemble

import (
	"fmt"
	"io"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/mattn/go-runewidth"
	"github.com/shopspring/decimal"

	"github.com/ledgerkeep/assetlog/internal/model"
)

const (
	marketWidth = 13 // fits "[複委託-美股]"
	codeWidth   = 8
)

// FormatMoney renders whole currency units in the given ISO currency. An
// unknown currency falls back to the bare number.
func FormatMoney(amount int64, currency string) string {
	cur := money.GetCurrency(currency)
	if cur == nil {
		return strconv.FormatInt(amount, 10)
	}
	minor := decimal.NewFromInt(amount).Shift(int32(cur.Fraction)).IntPart()
	return money.New(minor, currency).Display()
}

// FormatPct renders a percentage with two decimals.
func FormatPct(pct decimal.Decimal) string {
	return pct.StringFixed(2) + "%"
}

func gainMark(pnl int64) string {
	if pnl < 0 {
		return "🔴"
	}
	return "🟢"
}

func listAccounts(w io.Writer, accounts []model.Account) {
	fmt.Fprintln(w, "💳 accounts:")
	for i, a := range accounts {
		fmt.Fprintf(w, "   %d. %s\n", i+1, a.Name)
	}
}

// listStocks prints the stock list with columns aligned by display width,
// so CJK market names line up with ASCII ones.
func listStocks(w io.Writer, stocks []model.Stock) {
	fmt.Fprintln(w, "📈 stocks:")
	for i, s := range stocks {
		market := runewidth.FillRight("["+s.Market+"]", marketWidth)
		code := runewidth.FillRight(s.Code, codeWidth)
		fmt.Fprintf(w, "   %2d. %s %s %s\n", i+1, market, code, s.Name)
	}
}
