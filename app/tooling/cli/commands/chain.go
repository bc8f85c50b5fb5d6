package commands

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/solochain/solochain/foundation/ledger"
	"github.com/spf13/cobra"
)

// chainCmd represents the chain command.
var chainCmd = &cobra.Command{
	Use:   "chain",
	Short: "Print the full chain from genesis to the latest block",
	Run:   chainRun,
}

func init() {
	rootCmd.AddCommand(chainCmd)
}

func chainRun(cmd *cobra.Command, args []string) {
	resp, err := http.Get(fmt.Sprintf("%s/v1/chain/list", url))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	var chain []ledger.Block
	if err := json.NewDecoder(resp.Body).Decode(&chain); err != nil {
		log.Fatal(err)
	}

	out, err := json.MarshalIndent(chain, "", "  ")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(string(out))
}
