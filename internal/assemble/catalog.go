package assemble

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/ledgerkeep/assetlog/internal/model"
	"github.com/ledgerkeep/assetlog/internal/prompt"
	"github.com/ledgerkeep/assetlog/internal/reflist"
)

// Catalog is the session's stock list. Stocks entered through the new-entry
// flow are appended to the backing file and become selectable at once.
type Catalog struct {
	path   string
	stocks []model.Stock
	log    zerolog.Logger
}

// NewCatalog wraps a loaded stock list stored at path.
func NewCatalog(path string, stocks []model.Stock, log zerolog.Logger) *Catalog {
	return &Catalog{path: path, stocks: stocks, log: log}
}

// Stocks returns the current list.
func (c *Catalog) Stocks() []model.Stock {
	return c.stocks
}

// Pick lists the stocks and resolves the operator's choice. An unknown code
// asks for market and name and offers to save the new stock.
func (c *Catalog) Pick(p *prompt.Prompter) (model.Stock, error) {
	listStocks(p.Out(), c.stocks)

	raw, err := prompt.Ask(p, "👉 stock number or code (type a new code to add one): ", prompt.ParseListField("stock"))
	if err != nil {
		return model.Stock{}, err
	}
	if idx, found := prompt.ChooseStock(raw, c.stocks); found {
		s := c.stocks[idx]
		p.Printf("✅ selected: [%s] %s %s\n", s.Market, s.Code, s.Name)
		return s, nil
	}
	return c.addNew(p, raw)
}

func (c *Catalog) addNew(p *prompt.Prompter, code string) (model.Stock, error) {
	p.Printf("⚠️  code %q is not listed, entering it as a new stock\n", code)

	market, err := prompt.Ask(p, "   market (e.g. 台股 or 複委託-港股): ", prompt.ParseListField("market"))
	if err != nil {
		return model.Stock{}, err
	}
	name, err := prompt.Ask(p, "   stock name: ", prompt.ParseListField("name"))
	if err != nil {
		return model.Stock{}, err
	}
	s := model.Stock{Market: market, Code: code, Name: name}

	save, err := prompt.Ask(p, fmt.Sprintf("   add [%s] %s %s to the stock list? (y/n) [y]: ", market, code, name), prompt.ParseConfirm)
	if err != nil {
		return model.Stock{}, err
	}
	if save {
		c.stocks = reflist.AppendStock(c.path, c.stocks, s, c.log)
	}
	p.Printf("✅ using: [%s] %s %s\n", market, code, name)
	return s, nil
}
