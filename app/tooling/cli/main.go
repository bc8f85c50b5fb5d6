// This program provides a command line client for the ledger node.
package main

import (
	"github.com/solochain/solochain/app/tooling/cli/commands"
)

func main() {
	commands.Execute()
}
