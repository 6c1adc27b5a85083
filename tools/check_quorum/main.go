package main

import (
	"fmt"
	"os"

	calc "github.com/agora-protocol/dashboard/internal/calculation"
	"github.com/agora-protocol/dashboard/internal/config"
	"github.com/agora-protocol/dashboard/internal/domain"
	"github.com/agora-protocol/dashboard/pkg/lamports"
)

// check_quorum compares stored quorums and tiers with the governance rules.
// Usage: check_quorum <snapshot-file> [proposal-id]
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: check_quorum <snapshot-file> [proposal-id]")
		return
	}
	f := os.Args[1]
	p := config.NewSnapshotParser()
	snap, err := p.LoadFromFile(f)
	if err != nil {
		panic(err)
	}

	items := snap.Proposals.Items
	daos := snap.Proposals.DAOProposals
	if len(os.Args) > 2 {
		id := os.Args[2]
		items, daos = nil, nil
		if pr, ok := snap.FindProposal(id); ok {
			items = []domain.Proposal{*pr}
		}
		if d, ok := snap.FindDAOProposal(id); ok {
			daos = []domain.DAOProposal{*d}
		}
		if items == nil && daos == nil {
			fmt.Printf("no proposal %q in %s\n", id, f)
			os.Exit(1)
		}
	}

	users := snap.Protocol.TotalUsers
	fmt.Println("ID,Type,Quorum,RuleQuorum,Cast,ApprovalBps,RequiredBps,Passing")
	for _, pr := range items {
		rule := calc.RuleFor(pr.Type)
		fmt.Printf("%s,%s,%d,%d,%d,%d,%d,%t\n",
			pr.ID, pr.Type, pr.Quorum, calc.CalculateQuorum(users, pr.Type), pr.VotesCast(),
			calc.ApprovalBps(pr.VotesYes, pr.VotesNo), rule.ApprovalBps,
			calc.Passing(pr.Type, pr.VotesYes, pr.VotesNo, pr.Quorum))
	}

	fmt.Println()
	fmt.Println("DAO,Tier,ExpectedTier,Quorum,TierQuorum,Cast,RequestedLamports")
	for _, d := range daos {
		expected, _ := calc.VotingTierFor(d.RequestedAmount, snap.DAOTreasury.VotingTiers)
		tierQuorum := int64(-1)
		if name, ok := domain.VotingTierNameFor(d.Tier); ok {
			if t, ok := snap.DAOTreasury.VotingTiers[name]; ok {
				tierQuorum = t.Quorum
			}
		}
		fmt.Printf("%s,%d,%s,%d,%d,%d,%d\n", d.ID, d.Tier, expected, d.Quorum, tierQuorum, d.VotesCast(),
			lamports.FromSOL(d.RequestedAmount))
	}
}
