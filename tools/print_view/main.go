package main

import (
	"fmt"
	"os"
	"time"

	"github.com/agora-protocol/dashboard/internal/calculation"
	"github.com/agora-protocol/dashboard/internal/config"
	"github.com/agora-protocol/dashboard/pkg/dateutil"
)

// print_view shows how countdowns move as the clock advances past the snapshot time.
// Usage: print_view [offset] [snapshot-file], offset like "4 days" or "36h".
func main() {
	offset := time.Duration(0)
	if len(os.Args) > 1 {
		d, err := dateutil.ParseDurationLabel(os.Args[1])
		if err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
		offset = d
	}
	path := ""
	if len(os.Args) > 2 {
		path = os.Args[2]
	}

	snap, err := config.NewSnapshotParser().Load(path)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	engine := calculation.NewViewEngine()
	engine.SetLogger(calculation.NewStdLogger(true))
	now := snap.GeneratedAt.Add(offset)
	view, err := engine.BuildView(snap, now)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	fmt.Printf("View at %s (+%s):\n", now.Format(time.RFC3339), offset)
	for _, p := range view.Proposals {
		left := "-"
		if p.TimeLeft != nil {
			left = p.TimeLeft.Text
		}
		fmt.Printf("  %s: yes=%d%% quorum=%d%% passing=%t left=%s\n", p.ID, p.YesPercent, p.QuorumPercent, p.Passing, left)
	}
	for _, d := range view.DAO {
		fmt.Printf("  DAO %s: %d/%d/%d left=%s\n", d.ID, d.Split.Yes, d.Split.No, d.Split.Abstain, d.TimeLeft.Text)
	}
	for _, s := range view.Sanctions {
		fmt.Printf("  Sanction %s: %s%% expires=%s\n", s.CountryCode, s.RatePercent, s.ExpiresIn.Text)
	}
	fmt.Printf("  Next vote deadline: %s\n", view.Voting.NextDeadline.Text)
	fmt.Printf("  Treasury updated: %s\n", view.Treasury.UpdatedAgo)
	fmt.Printf("  Next vote deadline (wall clock): %s\n", calculation.TimeRemainingFromNow(snap.Voting.NextDeadline).Text)
}
