package assemble

import (
	"errors"
	"fmt"

	"github.com/ledgerkeep/assetlog/internal/model"
	"github.com/ledgerkeep/assetlog/internal/prompt"
)

// ErrNoAccounts is returned when the account list is empty; a bank record
// can only name a listed account.
var ErrNoAccounts = errors.New("account list is empty")

// Bank assembles bank balance records against a closed account list.
type Bank struct {
	Accounts []model.Account
	Currency string
}

// Kind implements Assembler.
func (b *Bank) Kind() model.Kind { return model.KindBank }

// Assemble implements Assembler.
func (b *Bank) Assemble(p *prompt.Prompter, date string) (model.Record, error) {
	if len(b.Accounts) == 0 {
		return nil, ErrNoAccounts
	}
	listAccounts(p.Out(), b.Accounts)

	idx, err := prompt.Ask(p, "👉 account name or number: ", func(raw string) (int, error) {
		return prompt.ChooseAccount(raw, b.Accounts)
	})
	if err != nil {
		return nil, err
	}
	name := b.Accounts[idx].Name

	amount, err := prompt.Ask(p, fmt.Sprintf("💰 amount for [%s]: ", name), prompt.ParseWhole("amount"))
	if err != nil {
		return nil, err
	}

	rec := model.BankRecord{Date: date, AccountName: name, Amount: amount}
	p.Printf("✅ saved: %s | %s | %s\n", date, name, FormatMoney(amount, b.Currency))
	return rec, nil
}
