package assemble

import (
	"fmt"

	"github.com/ledgerkeep/assetlog/internal/model"
	"github.com/ledgerkeep/assetlog/internal/prompt"
)

// RealizedPnL assembles closed-position records. Realized P&L is the sale
// price less cost.
type RealizedPnL struct {
	Catalog  *Catalog
	Currency string
}

// Kind implements Assembler.
func (r *RealizedPnL) Kind() model.Kind { return model.KindPnL }

// Assemble implements Assembler.
func (r *RealizedPnL) Assemble(p *prompt.Prompter, date string) (model.Record, error) {
	st, err := r.Catalog.Pick(p)
	if err != nil {
		return nil, err
	}
	shares, err := prompt.Ask(p, fmt.Sprintf("🔢 shares of [%s] sold: ", st.Name), prompt.ParseShares("shares sold"))
	if err != nil {
		return nil, err
	}
	cost, err := prompt.Ask(p, fmt.Sprintf("💰 total cost of [%s]: ", st.Name), prompt.ParseWhole("cost"))
	if err != nil {
		return nil, err
	}
	sale, err := prompt.Ask(p, fmt.Sprintf("💵 total sale price of [%s]: ", st.Name), prompt.ParseWhole("sale price"))
	if err != nil {
		return nil, err
	}

	pnl, pct := Gain(cost, sale)
	rec := model.PnLRecord{
		Date:        date,
		Market:      st.Market,
		Code:        st.Code,
		Name:        st.Name,
		SharesSold:  shares,
		Cost:        cost,
		SalePrice:   sale,
		RealizedPnL: pnl,
		ReturnPct:   pct,
	}
	p.Printf("✅ saved: %s | realized: %s %s (%s)\n", st.Name, gainMark(pnl), FormatMoney(pnl, r.Currency), FormatPct(pct))
	return rec, nil
}
