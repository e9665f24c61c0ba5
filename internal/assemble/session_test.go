package assemble

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ledgerkeep/assetlog/internal/model"
	"github.com/ledgerkeep/assetlog/internal/prompt"
	"github.com/ledgerkeep/assetlog/internal/reflist"
)

var today = time.Date(2026, 10, 14, 9, 0, 0, 0, time.UTC)

func lines(l ...string) *prompt.Prompter {
	return prompt.New(strings.NewReader(strings.Join(l, "\n")+"\n"), &bytes.Buffer{})
}

func bank() *Bank {
	return &Bank{Accounts: reflist.DefaultAccounts(), Currency: "TWD"}
}

func TestRun_BankByIndex(t *testing.T) {
	p := lines("", "1", "50000", "q")

	got, err := Run(p, bank(), today)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, model.BankRecord{Date: "20261014", AccountName: "富邦", Amount: 50000}, got[0])
}

func TestRun_ExitOnFirstPrompt(t *testing.T) {
	got, err := Run(lines("q"), bank(), today)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRun_DoneKeepsRecords(t *testing.T) {
	p := lines("20260101", "LINEPAY", "3000", "20260102", "2", "10", "done")

	got, err := Run(p, bank(), today)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "LINEPAY", got[0].(model.BankRecord).AccountName)
	assert.Equal(t, "將來", got[1].(model.BankRecord).AccountName)
	assert.Equal(t, "20260102", got[1].(model.BankRecord).Date)
}

func TestRun_ExitMidRecordDropsPartial(t *testing.T) {
	p := lines("", "1", "100", "", "2", "exit")

	got, err := Run(p, bank(), today)
	require.NoError(t, err)
	require.Len(t, got, 1, "partial second record is abandoned")
	assert.Equal(t, int64(100), got[0].(model.BankRecord).Amount)
}

func TestRun_EOFEndsSession(t *testing.T) {
	p := prompt.New(strings.NewReader("\n1\n42\n"), &bytes.Buffer{})

	got, err := Run(p, bank(), today)
	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestRun_InvalidInputReprompts(t *testing.T) {
	var out bytes.Buffer
	in := strings.Join([]string{"20260230", "20261014", "9", "保單", "7", "abc", "12.7", "q"}, "\n")
	p := prompt.New(strings.NewReader(in), &out)

	got, err := Run(p, bank(), today)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, model.BankRecord{Date: "20261014", AccountName: "保單金", Amount: 12}, got[0])
	assert.Equal(t, 4, strings.Count(out.String(), "❌"))
}

func TestRun_DefaultDateFixedPerSession(t *testing.T) {
	p := lines("", "1", "1", "", "1", "2", "q")

	got, err := Run(p, bank(), today)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for _, r := range got {
		assert.Equal(t, "20261014", r.(model.BankRecord).Date)
	}
}

func TestRun_EmptyAccountList(t *testing.T) {
	_, err := Run(lines("", "1"), &Bank{}, today)
	assert.ErrorIs(t, err, ErrNoAccounts)
}

func newCatalog(t *testing.T) (*Catalog, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stock_list.txt")
	stocks := reflist.LoadStocks(path, zerolog.Nop())
	return NewCatalog(path, stocks, zerolog.Nop()), path
}

func TestRun_StockDerivedFields(t *testing.T) {
	c, _ := newCatalog(t)
	p := lines("", "1", "10", "100000", "120000", "q")

	got, err := Run(p, &StockHolding{Catalog: c, Currency: "TWD"}, today)
	require.NoError(t, err)
	require.Len(t, got, 1)

	rec := got[0].(model.StockRecord)
	assert.Equal(t, "2330", rec.Code)
	assert.Equal(t, "台積電", rec.Name)
	assert.True(t, rec.Shares.Equal(decimal.NewFromInt(10)))
	assert.Equal(t, int64(20000), rec.UnrealizedPnL)
	assert.True(t, rec.ReturnPct.Equal(decimal.NewFromInt(20)))
}

func TestRun_StockZeroCost(t *testing.T) {
	c, _ := newCatalog(t)
	p := lines("", "aapl", "0.25", "0", "5000", "q")

	got, err := Run(p, &StockHolding{Catalog: c}, today)
	require.NoError(t, err)
	require.Len(t, got, 1)

	rec := got[0].(model.StockRecord)
	assert.Equal(t, "AAPL", rec.Code)
	assert.True(t, rec.ReturnPct.IsZero())
	assert.Equal(t, "0.25", rec.Shares.String())
}

func TestRun_StockNewEntryPersisted(t *testing.T) {
	c, path := newCatalog(t)
	p := lines(
		"", "NVDA", "", "複委託-美股", "", "NVIDIA", "", "1", "100", "150",
		// second record selects the new stock by its index
		"", "4", "2", "200", "100",
		"q",
	)

	got, err := Run(p, &StockHolding{Catalog: c}, today)
	require.NoError(t, err)
	require.Len(t, got, 2)

	first := got[0].(model.StockRecord)
	assert.Equal(t, model.Stock{Market: "複委託-美股", Code: "NVDA", Name: "NVIDIA"}, first.Stock())
	assert.Equal(t, "NVDA", got[1].(model.StockRecord).Code)
	assert.Equal(t, int64(-100), got[1].(model.StockRecord).UnrealizedPnL)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "複委託-美股,NVDA,NVIDIA")
	assert.Len(t, c.Stocks(), 4)
}

func TestRun_StockNewEntryNotSaved(t *testing.T) {
	c, path := newCatalog(t)
	p := lines("", "0056", "台股", "元大高股息", "n", "1000", "30000", "31000", "q")

	got, err := Run(p, &StockHolding{Catalog: c}, today)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "0056", got[0].(model.StockRecord).Code)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "0056")
	assert.Len(t, c.Stocks(), 3)
}

func TestRun_StockNewEntryRejectsComma(t *testing.T) {
	c, path := newCatalog(t)
	var out bytes.Buffer
	p := prompt.New(strings.NewReader(strings.Join([]string{
		"", "BRK,B", "BRK", "美股,NYSE", "美股", "Berkshire, Class B", "Berkshire Class B", "", "1", "100", "110",
		"q",
	}, "\n")+"\n"), &out)

	got, err := Run(p, &StockHolding{Catalog: c}, today)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, 3, strings.Count(out.String(), "must not contain a comma"))

	want := model.Stock{Market: "美股", Code: "BRK", Name: "Berkshire Class B"}
	assert.Equal(t, want, got[0].(model.StockRecord).Stock())

	reloaded := reflist.LoadStocks(path, zerolog.Nop())
	require.Len(t, reloaded, 4)
	assert.Equal(t, want, reloaded[3])
	assert.Equal(t, want, c.Stocks()[3])
}

func TestRun_ExitDuringNewEntry(t *testing.T) {
	c, _ := newCatalog(t)
	got, err := Run(lines("", "TSLA", "q"), &StockHolding{Catalog: c}, today)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRun_RealizedPnL(t *testing.T) {
	c, _ := newCatalog(t)
	p := lines("20260301", "2", "500", "60000", "75000", "q")

	got, err := Run(p, &RealizedPnL{Catalog: c, Currency: "TWD"}, today)
	require.NoError(t, err)
	require.Len(t, got, 1)

	rec := got[0].(model.PnLRecord)
	assert.Equal(t, "0050", rec.Code)
	assert.Equal(t, "20260301", rec.Date)
	assert.Equal(t, int64(15000), rec.RealizedPnL)
	assert.Equal(t, "25", rec.ReturnPct.String())
}

func TestTitle(t *testing.T) {
	assert.Equal(t, "bank assets", Title(model.KindBank))
	assert.Equal(t, "stock holdings", Title(model.KindStock))
	assert.Equal(t, "realized P&L", Title(model.KindPnL))
}
