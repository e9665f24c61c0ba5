package model

import "github.com/shopspring/decimal"

// Kind identifies a record schema.
type Kind string

const (
	KindBank  Kind = "bank"
	KindStock Kind = "stock"
	KindPnL   Kind = "pnl"
)

// Kinds lists every record kind in menu order.
var Kinds = []Kind{KindBank, KindStock, KindPnL}

// Record is a completed row of one kind. Concrete types are BankRecord,
// StockRecord and PnLRecord.
type Record interface {
	Kind() Kind
}

// BankRecord is a bank balance on a given day.
type BankRecord struct {
	Date        string // YYYYMMDD
	AccountName string
	Amount      int64
}

// StockRecord is a holding snapshot. UnrealizedPnL and ReturnPct are derived
// when the record is assembled.
type StockRecord struct {
	Date          string
	Market        string
	Code          string
	Name          string
	Shares        decimal.Decimal // fractional shares allowed
	Cost          int64
	MarketValue   int64
	UnrealizedPnL int64
	ReturnPct     decimal.Decimal // two decimal places
}

// PnLRecord is a closed position.
type PnLRecord struct {
	Date        string
	Market      string
	Code        string
	Name        string
	SharesSold  decimal.Decimal
	Cost        int64
	SalePrice   int64
	RealizedPnL int64
	ReturnPct   decimal.Decimal
}

func (BankRecord) Kind() Kind  { return KindBank }
func (StockRecord) Kind() Kind { return KindStock }
func (PnLRecord) Kind() Kind   { return KindPnL }

// Stock returns the reference entry the record was assembled from.
func (r StockRecord) Stock() Stock {
	return Stock{Market: r.Market, Code: r.Code, Name: r.Name}
}

// Stock returns the reference entry the record was assembled from.
func (r PnLRecord) Stock() Stock {
	return Stock{Market: r.Market, Code: r.Code, Name: r.Name}
}
