package commands

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/solochain/solochain/foundation/ledger"
	"github.com/spf13/cobra"
)

// uncommittedCmd represents the uncommitted command.
var uncommittedCmd = &cobra.Command{
	Use:   "uncommitted",
	Short: "Print the transactions waiting in the pool",
	Run:   uncommittedRun,
}

func init() {
	rootCmd.AddCommand(uncommittedCmd)
}

func uncommittedRun(cmd *cobra.Command, args []string) {
	resp, err := http.Get(fmt.Sprintf("%s/v1/tx/uncommitted/list", url))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	var trans []ledger.Tran
	if err := json.NewDecoder(resp.Body).Decode(&trans); err != nil {
		log.Fatal(err)
	}

	out, err := json.MarshalIndent(trans, "", "  ")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(string(out))
}
