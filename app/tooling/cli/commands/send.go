package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"

	"github.com/solochain/solochain/foundation/ledger"
	"github.com/spf13/cobra"
)

var (
	from   string
	to     string
	amount int64
)

// sendCmd represents the send command.
var sendCmd = &cobra.Command{
	Use:   "send",
	Short: "Submit a transaction to the pending pool",
	Run:   sendRun,
}

func init() {
	rootCmd.AddCommand(sendCmd)
	sendCmd.Flags().StringVarP(&from, "from", "f", "", "Party the amount is moving from.")
	sendCmd.Flags().StringVarP(&to, "to", "t", "", "Party the amount is moving to.")
	sendCmd.Flags().Int64VarP(&amount, "amount", "a", 0, "Amount to send.")
}

func sendRun(cmd *cobra.Command, args []string) {
	tran := ledger.Tran{
		Sender:    from,
		Recipient: to,
		Amount:    amount,
	}

	data, err := json.Marshal(tran)
	if err != nil {
		log.Fatal(err)
	}

	resp, err := http.Post(fmt.Sprintf("%s/v1/tx/add", url), "application/json", bytes.NewBuffer(data))
	if err != nil {
		log.Fatal(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(string(body))
}
