package model

// Account is one entry of account_list.txt.
type Account struct {
	Name string
}

// Stock is one entry of stock_list.txt ("market,code,name").
type Stock struct {
	Market string
	Code   string
	Name   string
}
