package commands

import (
	"github.com/ledgerkeep/assetlog/internal/model"
	"github.com/ledgerkeep/assetlog/internal/prompt"
)

const menuText = `
==================================
💰 personal asset data entry
==================================
1. 🏦 bank assets
2. 📈 stock holdings
3. 💸 realized P&L
4. 🚀 all of the above, in order
0. 🚪 quit
==================================
`

func (a *app) menu() error {
	for {
		a.clearScreen()
		a.prompt.Printf("%s", menuText)

		choice, err := a.prompt.Line("👉 choose [0-4]: ")
		if prompt.Done(err) || choice == "0" {
			a.prompt.Printf("\n👋 bye\n")
			return nil
		}
		if err != nil {
			return err
		}

		switch choice {
		case "1":
			err = a.runFlow(model.KindBank)
		case "2":
			err = a.runFlow(model.KindStock)
		case "3":
			err = a.runFlow(model.KindPnL)
		case "4":
			err = a.runAll()
		default:
			a.prompt.Printf("\n❌ invalid choice\n")
		}
		if err != nil {
			return err
		}
		if !a.pause() {
			a.prompt.Printf("\n👋 bye\n")
			return nil
		}
	}
}

// pause waits for Enter and reports whether the menu should continue.
func (a *app) pause() bool {
	_, err := a.prompt.Line("\npress Enter to continue...")
	return err == nil
}
