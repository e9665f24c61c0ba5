package reflist

import "github.com/ledgerkeep/assetlog/internal/model"

// DefaultAccounts returns the accounts seeded into a new account_list.txt.
func DefaultAccounts() []model.Account {
	return []model.Account{
		{Name: "富邦"},
		{Name: "將來"},
		{Name: "國泰證券交割戶"},
		{Name: "國泰(青年子帳戶)"},
		{Name: "LINEPAY"},
		{Name: "股票/ETF(國泰)"},
		{Name: "保單金"},
	}
}

// DefaultStocks returns the stocks seeded into a new stock_list.txt.
func DefaultStocks() []model.Stock {
	return []model.Stock{
		{Market: "台股", Code: "2330", Name: "台積電"},
		{Market: "台股", Code: "0050", Name: "元大台灣50"},
		{Market: "複委託-美股", Code: "AAPL", Name: "Apple"},
	}
}
