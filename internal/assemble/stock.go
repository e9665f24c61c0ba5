package assemble

import (
	"fmt"

	"github.com/ledgerkeep/assetlog/internal/model"
	"github.com/ledgerkeep/assetlog/internal/prompt"
)

// StockHolding assembles holding snapshots with derived unrealized P&L.
type StockHolding struct {
	Catalog  *Catalog
	Currency string
}

// Kind implements Assembler.
func (s *StockHolding) Kind() model.Kind { return model.KindStock }

// Assemble implements Assembler.
func (s *StockHolding) Assemble(p *prompt.Prompter, date string) (model.Record, error) {
	st, err := s.Catalog.Pick(p)
	if err != nil {
		return nil, err
	}
	shares, err := prompt.Ask(p, fmt.Sprintf("🔢 shares of [%s]: ", st.Name), prompt.ParseShares("shares"))
	if err != nil {
		return nil, err
	}
	cost, err := prompt.Ask(p, fmt.Sprintf("💰 total cost of [%s]: ", st.Name), prompt.ParseWhole("cost"))
	if err != nil {
		return nil, err
	}
	value, err := prompt.Ask(p, fmt.Sprintf("💎 market value of [%s]: ", st.Name), prompt.ParseWhole("market value"))
	if err != nil {
		return nil, err
	}

	pnl, pct := Gain(cost, value)
	rec := model.StockRecord{
		Date:          date,
		Market:        st.Market,
		Code:          st.Code,
		Name:          st.Name,
		Shares:        shares,
		Cost:          cost,
		MarketValue:   value,
		UnrealizedPnL: pnl,
		ReturnPct:     pct,
	}
	p.Printf("✅ saved: %s | P&L: %s %s (%s)\n", st.Name, gainMark(pnl), FormatMoney(pnl, s.Currency), FormatPct(pct))
	return rec, nil
}
