package commands

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"github.com/solochain/solochain/foundation/ledger"
	"github.com/spf13/cobra"
)

// mineCmd represents the mine command.
var mineCmd = &cobra.Command{
	Use:   "mine",
	Short: "Seal the pending transactions into a new block",
	Run:   mineRun,
}

func init() {
	rootCmd.AddCommand(mineCmd)
}

func mineRun(cmd *cobra.Command, args []string) {
	resp, err := http.Post(fmt.Sprintf("%s/v1/block/mine", url), "application/json", nil)
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	var block ledger.Block
	if err := json.NewDecoder(resp.Body).Decode(&block); err != nil {
		log.Fatal(err)
	}

	out, err := json.MarshalIndent(block, "", "  ")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(string(out))
}
