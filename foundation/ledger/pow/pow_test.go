package pow_test

import (
	"testing"

	"github.com/solochain/solochain/foundation/ledger/pow"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func TestDigest(t *testing.T) {
	t.Log("Given the need to produce puzzle digests from proof pairs.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen hashing the same pair more than once.", testID)
		{
			if pow.Digest(100, 33575) != pow.Digest(100, 33575) {
				t.Fatalf("\t%s\tTest %d:\tShould produce the same digest.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould produce the same digest.", success, testID)
		}

		testID++
		t.Logf("\tTest %d:\tWhen swapping the order of the pair.", testID)
		{
			if pow.Digest(1, 2) == pow.Digest(2, 1) {
				t.Fatalf("\t%s\tTest %d:\tShould produce a different digest.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould produce a different digest.", success, testID)
		}
	}
}

func TestSolve(t *testing.T) {
	lastProofs := []uint64{0, 100, 12345}

	t.Log("Given the need to solve the puzzle for any previous proof.")
	{
		for testID, lastProof := range lastProofs {
			t.Logf("\tTest %d:\tWhen solving against the previous proof %d.", testID, lastProof)
			{
				proof := pow.Solve(lastProof, nil)

				if !pow.IsValid(lastProof, proof) {
					t.Fatalf("\t%s\tTest %d:\tShould produce a valid proof: got %d.", failed, testID, proof)
				}
				t.Logf("\t%s\tTest %d:\tShould produce a valid proof.", success, testID)

				digest := pow.Digest(lastProof, proof)
				if digest[0] != '0' || digest[1] != '0' {
					t.Fatalf("\t%s\tTest %d:\tShould lead the digest with the two characters \"00\": got %x.", failed, testID, digest[:2])
				}
				t.Logf("\t%s\tTest %d:\tShould lead the digest with the two characters \"00\".", success, testID)

				if again := pow.Solve(lastProof, nil); again != proof {
					t.Fatalf("\t%s\tTest %d:\tShould solve to the same proof every time: got %d, exp %d.", failed, testID, again, proof)
				}
				t.Logf("\t%s\tTest %d:\tShould solve to the same proof every time.", success, testID)
			}
		}
	}
}

func TestSolveEvents(t *testing.T) {
	t.Log("Given the need to report progress while solving the puzzle.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen solving with an event handler attached.", testID)
		{
			var events []string
			ev := func(v string, args ...any) {
				events = append(events, v)
			}

			pow.Solve(100, ev)

			if len(events) < 2 {
				t.Fatalf("\t%s\tTest %d:\tShould report the start and the solution: got %d events.", failed, testID, len(events))
			}
			t.Logf("\t%s\tTest %d:\tShould report the start and the solution.", success, testID)
		}
	}
}
