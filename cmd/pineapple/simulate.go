package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"sort"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"golang.org/x/sync/errgroup"

	"github.com/lttcmd/pineapple-app-sub000/internal/deck"
	"github.com/lttcmd/pineapple-app-sub000/internal/game"
	"github.com/lttcmd/pineapple-app-sub000/internal/server"
)

// SimulateCmd auto-plays heads-up matches. Each room runs independently on
// its own goroutine; placements are jittered per room so the two players'
// identically-dealt hands produce different boards.
type SimulateCmd struct {
	Hands  int    `help:"Maximum hands per room" default:"100"`
	Rooms  int    `help:"Concurrent rooms" default:"1"`
	Seed   int64  `help:"Base seed for placement jitter" default:"1"`
	Config string `help:"HCL config file" type:"path" default:"pineapple.hcl"`
	Debug  bool   `help:"Enable debug logging"`
}

type simResult struct {
	room     string
	hands    int
	fouls    int
	fantasy  int
	winner   string
	finished bool
	chips    map[string]int
}

func (c *SimulateCmd) Run() error {
	level := log.InfoLevel
	if c.Debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{Level: level})

	cfg, err := server.LoadConfig(c.Config)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	rules := cfg.GameRules()
	// Simulated players answer instantly; only the scoring rules matter.
	rules.InitialSetTimeout = 0
	rules.RoundTimeout = 0
	rules.FantasylandTimeout = 0
	rules.RevealTimeout = 0

	results := make([]simResult, c.Rooms)
	g, _ := errgroup.WithContext(context.Background())
	for i := 0; i < c.Rooms; i++ {
		g.Go(func() error {
			rng := rand.New(rand.NewSource(c.Seed + int64(i)))
			res, err := runRoom(i, c.Hands, rules, rng, logger)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	totalHands, totalFouls, totalFantasy, finished := 0, 0, 0, 0
	for _, res := range results {
		totalHands += res.hands
		totalFouls += res.fouls
		totalFantasy += res.fantasy
		if res.finished {
			finished++
		}
		fmt.Printf("%s: %d hands, %d fouls, %d fantasyland entries", res.room, res.hands, res.fouls, res.fantasy)
		if res.finished {
			fmt.Printf(", winner %s", res.winner)
		}
		fmt.Printf(" %v\n", res.chips)
	}
	fmt.Printf("total: %d rooms (%d finished), %d hands, %d fouls, %d fantasyland entries\n",
		c.Rooms, finished, totalHands, totalFouls, totalFantasy)
	return nil
}

func runRoom(idx, maxHands int, rules *game.Rules, rng *rand.Rand, logger *log.Logger) (simResult, error) {
	collector := &revealCollector{}
	room := game.NewRoom(fmt.Sprintf("sim-%d", idx), rules, quartz.NewReal(), logger,
		game.WithSeedFunc(func(roomID string, hand int) string {
			return fmt.Sprintf("%s:%d", roomID, hand)
		}))
	room.Bus().Subscribe(collector)

	for _, id := range []string{"p1", "p2"} {
		if err := room.Seat(id); err != nil {
			return simResult{}, err
		}
	}
	for _, id := range []string{"p1", "p2"} {
		if err := room.SetReady(id); err != nil {
			return simResult{}, err
		}
	}

	// The hand count bounds the loop; the guard below catches engine stalls.
	for steps := 0; room.Phase() != game.RoomEnded && collector.reveals < maxHands; steps++ {
		if steps > maxHands*200 {
			return simResult{}, fmt.Errorf("room %d stalled at hand %d", idx, room.HandNumber())
		}

		switch room.Phase() {
		case game.RoomPlaying:
			for _, p := range room.Players() {
				if p.Ready || len(p.Hand) == 0 {
					continue
				}
				placements, discard := jitteredTurn(p, rng)
				if err := room.SubmitTurn(p.ID, placements, discard); err != nil {
					return simResult{}, fmt.Errorf("submit for %s: %w", p.ID, err)
				}
			}
		case game.RoomReveal:
			room.CheckTimers()
		}
	}

	res := simResult{
		room:    room.ID(),
		hands:   collector.reveals,
		fouls:   collector.fouls,
		fantasy: collector.fantasy,
		chips:   make(map[string]int),
	}
	for _, p := range room.Players() {
		res.chips[p.ID] = p.TableChips
	}
	if room.Phase() == game.RoomEnded {
		res.finished = true
		res.winner, _ = room.Winner()
	}
	return res, nil
}

// jitteredTurn builds a legal turn: strongest cards first, each dropped
// into a random row weighted by remaining capacity. Both players see the
// same deal, so the random row choice is what separates their boards.
func jitteredTurn(p *game.PlayerState, rng *rand.Rand) ([]game.Placement, *deck.Card) {
	hand := append([]deck.Card(nil), p.Hand...)
	sort.SliceStable(hand, func(i, j int) bool { return hand[i].Rank > hand[j].Rank })

	free := map[game.Row]int{
		game.RowTop:    p.Board.FreeSlots(game.RowTop),
		game.RowMiddle: p.Board.FreeSlots(game.RowMiddle),
		game.RowBottom: p.Board.FreeSlots(game.RowBottom),
	}

	toPlace := p.TurnCap()
	placements := make([]game.Placement, 0, toPlace)
	for next := 0; next < toPlace; next++ {
		var slots []game.Row
		for _, row := range []game.Row{game.RowBottom, game.RowMiddle, game.RowTop} {
			for i := 0; i < free[row]; i++ {
				slots = append(slots, row)
			}
		}
		row := slots[rng.Intn(len(slots))]
		free[row]--
		placements = append(placements, game.Placement{Row: row, Card: hand[next]})
	}

	var discard *deck.Card
	if p.Phase() != game.PhaseInitialSet && toPlace < len(hand) {
		d := hand[toPlace]
		discard = &d
	}
	return placements, discard
}

// revealCollector tallies per-hand outcomes from the event stream.
type revealCollector struct {
	reveals int
	fouls   int
	fantasy int
	inFL    map[string]bool
}

func (c *revealCollector) HandleEvent(e game.Event) {
	reveal, ok := e.(game.RevealEvent)
	if !ok {
		return
	}
	c.reveals++
	if c.inFL == nil {
		c.inFL = make(map[string]bool)
	}
	for _, s := range reveal.Settlements {
		if s.Result.A.Fouled {
			c.fouls++
		}
		if s.Result.B.Fouled {
			c.fouls++
		}
	}
	for id, next := range reveal.FantasylandNext {
		if next && !c.inFL[id] {
			c.fantasy++
		}
		c.inFL[id] = next
	}
}
