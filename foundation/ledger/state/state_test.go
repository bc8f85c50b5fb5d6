package state_test

import (
	"sync"
	"testing"

	"github.com/solochain/solochain/foundation/ledger"
	"github.com/solochain/solochain/foundation/ledger/pow"
	"github.com/solochain/solochain/foundation/ledger/state"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func TestGenesis(t *testing.T) {
	t.Log("Given the need to start the chain with a sealed genesis block.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen constructing a new state.", testID)
		{
			st := state.New(state.Config{})

			chain := st.RetrieveChain()
			if len(chain) != 1 {
				t.Fatalf("\t%s\tTest %d:\tShould start with a single block: got %d, exp %d.", failed, testID, len(chain), 1)
			}
			t.Logf("\t%s\tTest %d:\tShould start with a single block.", success, testID)

			genesis := chain[0]
			if genesis.Index != 1 {
				t.Fatalf("\t%s\tTest %d:\tShould index the genesis block at 1: got %d.", failed, testID, genesis.Index)
			}
			t.Logf("\t%s\tTest %d:\tShould index the genesis block at 1.", success, testID)

			if genesis.Proof != 100 {
				t.Fatalf("\t%s\tTest %d:\tShould seal the genesis block with proof 100: got %d.", failed, testID, genesis.Proof)
			}
			t.Logf("\t%s\tTest %d:\tShould seal the genesis block with proof 100.", success, testID)

			if genesis.PrevHash != 1 {
				t.Fatalf("\t%s\tTest %d:\tShould seal the genesis block with previous hash 1: got %d.", failed, testID, genesis.PrevHash)
			}
			t.Logf("\t%s\tTest %d:\tShould seal the genesis block with previous hash 1.", success, testID)

			if len(genesis.Trans) != 0 {
				t.Fatalf("\t%s\tTest %d:\tShould seal the genesis block with no transactions: got %d.", failed, testID, len(genesis.Trans))
			}
			t.Logf("\t%s\tTest %d:\tShould seal the genesis block with no transactions.", success, testID)

			if trans := st.RetrievePendingTrans(); len(trans) != 0 {
				t.Fatalf("\t%s\tTest %d:\tShould start with an empty pool: got %d.", failed, testID, len(trans))
			}
			t.Logf("\t%s\tTest %d:\tShould start with an empty pool.", success, testID)
		}
	}
}

func TestSubmitAndMine(t *testing.T) {
	t.Log("Given the need to seal submitted transactions into the next block.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen submitting two transactions and mining.", testID)
		{
			var events []string
			ev := func(v string, args ...any) {
				events = append(events, v)
			}

			st := state.New(state.Config{EvHandler: ev})

			if index := st.SubmitTransaction(ledger.Tran{Sender: "me", Recipient: "you", Amount: 5}); index != 2 {
				t.Fatalf("\t%s\tTest %d:\tShould report the transaction landing in block 2: got %d.", failed, testID, index)
			}
			if index := st.SubmitTransaction(ledger.Tran{Sender: "you", Recipient: "me", Amount: 2}); index != 2 {
				t.Fatalf("\t%s\tTest %d:\tShould report the transaction landing in block 2: got %d.", failed, testID, index)
			}
			t.Logf("\t%s\tTest %d:\tShould report the transactions landing in block 2.", success, testID)

			if trans := st.RetrievePendingTrans(); len(trans) != 2 {
				t.Fatalf("\t%s\tTest %d:\tShould hold both transactions in the pool: got %d.", failed, testID, len(trans))
			}
			t.Logf("\t%s\tTest %d:\tShould hold both transactions in the pool.", success, testID)

			block := st.MineNewBlock()

			if block.Index != 2 {
				t.Fatalf("\t%s\tTest %d:\tShould seal the new block at index 2: got %d.", failed, testID, block.Index)
			}
			t.Logf("\t%s\tTest %d:\tShould seal the new block at index 2.", success, testID)

			if len(block.Trans) != 2 {
				t.Fatalf("\t%s\tTest %d:\tShould seal both transactions into the block: got %d.", failed, testID, len(block.Trans))
			}
			if block.Trans[0].Sender != "me" || block.Trans[1].Sender != "you" {
				t.Fatalf("\t%s\tTest %d:\tShould seal the transactions in submission order.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould seal both transactions in submission order.", success, testID)

			if trans := st.RetrievePendingTrans(); len(trans) != 0 {
				t.Fatalf("\t%s\tTest %d:\tShould drain the pool: got %d.", failed, testID, len(trans))
			}
			t.Logf("\t%s\tTest %d:\tShould drain the pool.", success, testID)

			chain := st.RetrieveChain()
			if len(chain) != 2 {
				t.Fatalf("\t%s\tTest %d:\tShould grow the chain to two blocks: got %d.", failed, testID, len(chain))
			}
			t.Logf("\t%s\tTest %d:\tShould grow the chain to two blocks.", success, testID)

			if block.PrevHash != chain[0].Hash() {
				t.Fatalf("\t%s\tTest %d:\tShould link the new block to the genesis block.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould link the new block to the genesis block.", success, testID)

			if !pow.IsValid(chain[0].Proof, block.Proof) {
				t.Fatalf("\t%s\tTest %d:\tShould seal the new block with a valid proof.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould seal the new block with a valid proof.", success, testID)

			if len(events) == 0 {
				t.Fatalf("\t%s\tTest %d:\tShould report events while processing.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould report events while processing.", success, testID)
		}

		testID++
		t.Logf("\tTest %d:\tWhen mining with an empty pool.", testID)
		{
			st := state.New(state.Config{})

			block := st.MineNewBlock()

			if block.Index != 2 {
				t.Fatalf("\t%s\tTest %d:\tShould seal the new block at index 2: got %d.", failed, testID, block.Index)
			}
			t.Logf("\t%s\tTest %d:\tShould seal the new block at index 2.", success, testID)

			if len(block.Trans) != 0 {
				t.Fatalf("\t%s\tTest %d:\tShould seal an empty block: got %d transactions.", failed, testID, len(block.Trans))
			}
			t.Logf("\t%s\tTest %d:\tShould seal an empty block.", success, testID)
		}
	}
}

func TestChainLinkage(t *testing.T) {
	t.Log("Given the need to keep every block linked to its predecessor.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen mining several blocks in sequence.", testID)
		{
			st := state.New(state.Config{})

			for i := 0; i < 3; i++ {
				st.SubmitTransaction(ledger.Tran{Sender: "me", Recipient: "you", Amount: int64(i)})
				st.MineNewBlock()
			}

			chain := st.RetrieveChain()
			if len(chain) != 4 {
				t.Fatalf("\t%s\tTest %d:\tShould grow the chain to four blocks: got %d.", failed, testID, len(chain))
			}
			t.Logf("\t%s\tTest %d:\tShould grow the chain to four blocks.", success, testID)

			for i := 1; i < len(chain); i++ {
				if chain[i].PrevHash != chain[i-1].Hash() {
					t.Fatalf("\t%s\tTest %d:\tShould link block %d to block %d.", failed, testID, i+1, i)
				}
				if !pow.IsValid(chain[i-1].Proof, chain[i].Proof) {
					t.Fatalf("\t%s\tTest %d:\tShould seal block %d with a valid proof.", failed, testID, i+1)
				}
			}
			t.Logf("\t%s\tTest %d:\tShould link every block to its predecessor with a valid proof.", success, testID)

			if latest := st.RetrieveLatestBlock(); latest.Index != 4 {
				t.Fatalf("\t%s\tTest %d:\tShould report the latest block at index 4: got %d.", failed, testID, latest.Index)
			}
			t.Logf("\t%s\tTest %d:\tShould report the latest block at index 4.", success, testID)
		}
	}
}

func TestQueryBlocksByIndex(t *testing.T) {
	t.Log("Given the need to query blocks by their index.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen querying a chain with three blocks.", testID)
		{
			st := state.New(state.Config{})
			st.MineNewBlock()
			st.MineNewBlock()

			if blocks := st.QueryBlocksByIndex(1, 2); len(blocks) != 2 {
				t.Fatalf("\t%s\tTest %d:\tShould return the first two blocks: got %d.", failed, testID, len(blocks))
			}
			t.Logf("\t%s\tTest %d:\tShould return the first two blocks.", success, testID)

			blocks := st.QueryBlocksByIndex(2, 5)
			if len(blocks) != 2 || blocks[0].Index != 2 || blocks[1].Index != 3 {
				t.Fatalf("\t%s\tTest %d:\tShould clip the range to the existing blocks: got %d.", failed, testID, len(blocks))
			}
			t.Logf("\t%s\tTest %d:\tShould clip the range to the existing blocks.", success, testID)

			blocks = st.QueryBlocksByIndex(state.QueryLatest, state.QueryLatest)
			if len(blocks) != 1 || blocks[0].Index != 3 {
				t.Fatalf("\t%s\tTest %d:\tShould return just the latest block: got %d.", failed, testID, len(blocks))
			}
			t.Logf("\t%s\tTest %d:\tShould return just the latest block.", success, testID)

			if blocks := st.QueryBlocksByIndex(5, 9); len(blocks) != 0 {
				t.Fatalf("\t%s\tTest %d:\tShould return nothing outside the chain: got %d.", failed, testID, len(blocks))
			}
			t.Logf("\t%s\tTest %d:\tShould return nothing outside the chain.", success, testID)
		}
	}
}

func TestConcurrentMining(t *testing.T) {
	t.Log("Given the need to support concurrent miners.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen two miners race to seal the next block.", testID)
		{
			st := state.New(state.Config{})

			var wg sync.WaitGroup
			wg.Add(2)
			for i := 0; i < 2; i++ {
				go func() {
					defer wg.Done()
					st.MineNewBlock()
				}()
			}
			wg.Wait()

			chain := st.RetrieveChain()
			if len(chain) != 3 {
				t.Fatalf("\t%s\tTest %d:\tShould append one block per miner: got %d blocks.", failed, testID, len(chain))
			}
			t.Logf("\t%s\tTest %d:\tShould append one block per miner.", success, testID)

			for i := 1; i < len(chain); i++ {
				if chain[i].Index != uint64(i+1) {
					t.Fatalf("\t%s\tTest %d:\tShould index the blocks in order: got %d, exp %d.", failed, testID, chain[i].Index, i+1)
				}
				if chain[i].PrevHash != chain[i-1].Hash() {
					t.Fatalf("\t%s\tTest %d:\tShould link block %d to block %d.", failed, testID, i+1, i)
				}
			}
			t.Logf("\t%s\tTest %d:\tShould keep the chain fully linked.", success, testID)
		}
	}
}

func TestConcurrentSubmitters(t *testing.T) {
	t.Log("Given the need to accept transactions from concurrent clients.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen four clients submit twenty five transactions each.", testID)
		{
			st := state.New(state.Config{})

			const clients = 4
			const perClient = 25

			var wg sync.WaitGroup
			wg.Add(clients)
			for c := 0; c < clients; c++ {
				go func() {
					defer wg.Done()
					for i := 0; i < perClient; i++ {
						st.SubmitTransaction(ledger.Tran{Sender: "me", Recipient: "you", Amount: 1})
					}
				}()
			}
			wg.Wait()

			if trans := st.RetrievePendingTrans(); len(trans) != clients*perClient {
				t.Fatalf("\t%s\tTest %d:\tShould hold every submission in the pool: got %d, exp %d.", failed, testID, len(trans), clients*perClient)
			}
			t.Logf("\t%s\tTest %d:\tShould hold every submission in the pool.", success, testID)

			block := st.MineNewBlock()
			if len(block.Trans) != clients*perClient {
				t.Fatalf("\t%s\tTest %d:\tShould seal every submission into the block: got %d, exp %d.", failed, testID, len(block.Trans), clients*perClient)
			}
			t.Logf("\t%s\tTest %d:\tShould seal every submission into the block.", success, testID)
		}
	}
}
