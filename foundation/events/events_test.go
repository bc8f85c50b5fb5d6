package events_test

import (
	"testing"

	"github.com/solochain/solochain/foundation/events"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func TestEvents(t *testing.T) {
	t.Log("Given the need to deliver events to registered clients.")
	{
		testID := 0
		t.Logf("\tTest %d:\tWhen acquiring a channel and sending an event.", testID)
		{
			evts := events.New()

			ch := evts.Acquire("client1")
			evts.Send("mining started")

			select {
			case msg := <-ch:
				if msg != "mining started" {
					t.Fatalf("\t%s\tTest %d:\tShould receive the sent event: got %q.", failed, testID, msg)
				}
				t.Logf("\t%s\tTest %d:\tShould receive the sent event.", success, testID)
			default:
				t.Fatalf("\t%s\tTest %d:\tShould receive the sent event.", failed, testID)
			}

			if again := evts.Acquire("client1"); again != ch {
				t.Fatalf("\t%s\tTest %d:\tShould return the same channel for the same id.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould return the same channel for the same id.", success, testID)
		}

		testID++
		t.Logf("\tTest %d:\tWhen releasing a channel.", testID)
		{
			evts := events.New()

			ch := evts.Acquire("client1")
			if err := evts.Release("client1"); err != nil {
				t.Fatalf("\t%s\tTest %d:\tShould be able to release the channel: %v.", failed, testID, err)
			}
			t.Logf("\t%s\tTest %d:\tShould be able to release the channel.", success, testID)

			if _, wd := <-ch; wd {
				t.Fatalf("\t%s\tTest %d:\tShould close the channel.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould close the channel.", success, testID)

			if err := evts.Release("client1"); err == nil {
				t.Fatalf("\t%s\tTest %d:\tShould reject releasing an unknown id.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould reject releasing an unknown id.", success, testID)
		}

		testID++
		t.Logf("\tTest %d:\tWhen shutting the events system down.", testID)
		{
			evts := events.New()

			ch1 := evts.Acquire("client1")
			ch2 := evts.Acquire("client2")

			evts.Shutdown()

			if _, wd := <-ch1; wd {
				t.Fatalf("\t%s\tTest %d:\tShould close every channel.", failed, testID)
			}
			if _, wd := <-ch2; wd {
				t.Fatalf("\t%s\tTest %d:\tShould close every channel.", failed, testID)
			}
			t.Logf("\t%s\tTest %d:\tShould close every channel.", success, testID)
		}
	}
}
