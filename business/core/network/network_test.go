package network_test

import (
	"errors"
	"sync"
	"testing"

	"github.com/ardanlabs/chainrules/business/core/network"
	"github.com/ardanlabs/chainrules/foundation/blockchain/chain"
	"github.com/ardanlabs/chainrules/foundation/blockchain/hardfork"
	"github.com/ardanlabs/chainrules/foundation/blockchain/timeline"
)

// Success and failure markers.
const (
	success = "\u2713"
	failed  = "\u2717"
)

func TestCore(t *testing.T) {
	t.Log("Given the need to share one session cursor.")
	{
		var events []string
		ev := func(v string, args ...any) {
			events = append(events, v)
		}

		core, err := network.New(network.Config{
			Chain:               chain.Mainnet,
			Hardfork:            hardfork.London,
			CustomChainsFolder:  "testdata/chains",
			CustomHardforksFile: "testdata/hardforks.json",
			EvHandler:           ev,
		})
		if err != nil {
			t.Fatalf("\t%s\tShould be able to construct the core: %v", failed, err)
		}
		t.Logf("\t%s\tShould be able to construct the core.", success)

		cur, err := core.Current()
		if err != nil {
			t.Fatalf("\t%s\tShould be able to read the session: %v", failed, err)
		}
		if cur.Hardfork != hardfork.London || cur.Block == nil || *cur.Block != 12_965_000 || !cur.Fields.BaseFee {
			t.Fatalf("\t%s\tShould start at london, got %+v.", failed, cur)
		}
		t.Logf("\t%s\tShould start at london.", success)

		if cur.Next == nil || cur.Next.Name != hardfork.ArrowGlacier {
			t.Fatalf("\t%s\tShould know the next boundary, got %v.", failed, cur.Next)
		}
		t.Logf("\t%s\tShould know the next boundary.", success)

		res, err := core.Resolve(timeline.AtTime(19_426_587, 1_710_338_135))
		if err != nil {
			t.Fatalf("\t%s\tShould be able to resolve a point: %v", failed, err)
		}
		if res.Hardfork != hardfork.Cancun || !res.Fields.BlobGas || res.ForkHash != "0x9f3d2254" {
			t.Fatalf("\t%s\tShould resolve cancun without moving the cursor, got %+v.", failed, res)
		}
		if cur, _ := core.Current(); cur.Hardfork != hardfork.London {
			t.Fatalf("\t%s\tShould leave the session cursor in place.", failed)
		}
		t.Logf("\t%s\tShould resolve cancun without moving the cursor.", success)

		if _, err := core.SetChain("testnet", hardfork.Byzantium); err != nil {
			t.Fatalf("\t%s\tShould be able to switch to a custom chain: %v", failed, err)
		}
		if res, _ := core.Current(); res.Chain != "testnet" || *res.Block != 4 {
			t.Fatalf("\t%s\tShould be on testnet byzantium, got %+v.", failed, res)
		}
		t.Logf("\t%s\tShould be on testnet byzantium.", success)

		if _, err := core.SetChain("unknown", ""); !errors.Is(err, chain.ErrUnsupportedChain) {
			t.Fatalf("\t%s\tShould fail on an unknown chain: %v", failed, err)
		}
		t.Logf("\t%s\tShould fail on an unknown chain.", success)

		if _, err := core.SetHardfork(hardfork.Cancun); !errors.Is(err, hardfork.ErrUnknownUpgrade) {
			t.Fatalf("\t%s\tShould fail on a hardfork testnet doesn't schedule: %v", failed, err)
		}
		t.Logf("\t%s\tShould fail on a hardfork testnet doesn't schedule.", success)

		if res, _ := core.SetHardforkBy(timeline.At(0)); res.Hardfork != hardfork.Chainstart {
			t.Fatalf("\t%s\tShould move the session to chainstart, got %s.", failed, res.Hardfork)
		}
		t.Logf("\t%s\tShould move the session to chainstart.", success)

		if len(events) != 3 {
			t.Fatalf("\t%s\tShould raise an event per change, got %d.", failed, len(events))
		}
		t.Logf("\t%s\tShould raise an event per change.", success)
	}
}

func TestChainID(t *testing.T) {
	t.Log("Given the need to select the starting chain by id.")
	{
		for _, id := range []string{"11155111", "0xaa36a7"} {
			core, err := network.New(network.Config{Chain: id})
			if err != nil {
				t.Fatalf("\t%s\tShould be able to start on chain %s: %v", failed, id, err)
			}

			res, err := core.Current()
			if err != nil || res.Chain != chain.Sepolia || res.ChainID != "11155111" {
				t.Fatalf("\t%s\tShould start on sepolia for %s, got %+v.", failed, id, res)
			}
			t.Logf("\t%s\tShould start on sepolia for %s.", success, id)
		}

		if _, err := network.New(network.Config{Chain: "99999999"}); !errors.Is(err, chain.ErrUnsupportedChain) {
			t.Fatalf("\t%s\tShould fail on an unknown chain id: %v", failed, err)
		}
		t.Logf("\t%s\tShould fail on an unknown chain id.", success)
	}
}

func TestConcurrency(t *testing.T) {
	t.Log("Given the need to read and change the session concurrently.")
	{
		core, err := network.New(network.Config{})
		if err != nil {
			t.Fatalf("\t%s\tShould be able to construct the core: %v", failed, err)
		}

		var wg sync.WaitGroup
		wg.Add(20)

		for i := range 20 {
			go func() {
				defer wg.Done()

				if i%2 == 0 {
					core.SetHardforkBy(timeline.At(uint64(i) * 1_000_000))
					return
				}

				if res, _ := core.Resolve(timeline.At(0)); res.Hardfork != hardfork.Chainstart {
					t.Errorf("\t%s\tShould resolve block 0 to chainstart, got %s.", failed, res.Hardfork)
				}
			}()
		}

		wg.Wait()
		t.Logf("\t%s\tShould resolve points while the session moves.", success)
	}
}
