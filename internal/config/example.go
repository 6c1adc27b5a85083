package config

import (
	"time"

	"github.com/agora-protocol/dashboard/internal/domain"
	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

// CreateExampleSnapshot returns the built-in AGORA mock data with every timestamp relative to now.
// It stands in for live chain data until the RPC source exists.
func (sp *SnapshotParser) CreateExampleSnapshot(now time.Time) *domain.Dashboard {
	at := func(offset time.Duration) time.Time { return now.Add(offset) }
	atPtr := func(offset time.Duration) *time.Time {
		t := now.Add(offset)
		return &t
	}
	dec := decimal.NewFromInt
	oneSOL, tenSOL := dec(1), dec(10)

	return &domain.Dashboard{
		GeneratedAt: now,
		GasPool: domain.GasPool{
			TotalBalance:    dec(7500),
			UsedBalance:     dec(2500),
			SubsidizedUsers: 75000,
			AvgMonthlyUsage: dec(150),
			ActiveSponsors:  50,
			Tiers: map[domain.SponsorTierName]domain.SponsorTier{
				domain.TierBronze:   {Amount: dec(1), MonthlyLimit: 800, Bonus: 20},        // 0.2 SOL
				domain.TierSilver:   {Amount: dec(10), MonthlyLimit: 6000, Bonus: 15},      // 1.5 SOL
				domain.TierGold:     {Amount: dec(100), MonthlyLimit: 40000, Bonus: 10},    // 10 SOL
				domain.TierPlatinum: {Amount: dec(1000), MonthlyLimit: 200000, Bonus: 5},   // 50 SOL
				domain.TierDiamond:  {Amount: dec(10000), MonthlyLimit: 1200000, Bonus: 3}, // 300 SOL
			},
			Sponsors: []domain.Sponsor{
				{Name: "Solana Foundation", Tier: domain.TierDiamond, Amount: dec(10000)},
				{Name: "Anonymous Whale", Tier: domain.TierPlatinum, Amount: dec(1000)},
				{Name: "CryptoForGood DAO", Tier: domain.TierGold, Amount: dec(100)},
				{Name: "DeFi Alliance", Tier: domain.TierGold, Amount: dec(100)},
			},
		},
		DAOTreasury: domain.DAOTreasury{
			SOLBalance:  dec(120),
			TotalSpent:  decimal.Zero,
			TotalVoters: 60,
			VotingTiers: map[domain.VotingTierName]domain.VotingTier{
				domain.VotingTier1: {MaxAmount: &oneSOL, Duration: "24h", Quorum: 20},
				domain.VotingTier2: {MaxAmount: &tenSOL, Duration: "3 days", Quorum: 30},
				domain.VotingTier3: {Duration: "7 days", Quorum: 50},
			},
		},
		Treasury: domain.Treasury{
			AgoraBalance:      dec(2400000),
			InflowLast30Days:  dec(124500),
			OutflowLast30Days: dec(50000),
			LastUpdated:       now,
		},
		Proposals: domain.Proposals{
			TotalCount:  47,
			ActiveCount: 3,
			Items: []domain.Proposal{
				{
					ID:              "AGP-47",
					Title:           "Fund Mobile App Development",
					Status:          domain.StatusVoting,
					Type:            domain.TypeTreasury,
					Proposer:        "7xKXtg...2nP9",
					Description:     "Allocate 500,000 AGORA for mobile app development to increase accessibility.",
					RequestedAmount: dec(500000),
					VotesYes:        12450,
					VotesNo:         6230,
					Quorum:          15000,
					EndTime:         atPtr(3 * day),
					CreatedAt:       at(-4 * day),
				},
				{
					ID:              "AGP-46",
					Title:           "Increase Daily UBI to 110 AGORA",
					Status:          domain.StatusReview,
					Type:            domain.TypeConstitutional,
					Proposer:        "3mNxPq...8kL2",
					Description:     "Proposal to increase daily UBI from 100 to 110 AGORA tokens.",
					RequestedAmount: decimal.Zero,
					Quorum:          25000,
					CreatedAt:       at(-1 * day),
				},
				{
					ID:              "AGP-45",
					Title:           "Partner with Global NGO Network",
					Status:          domain.StatusVoting,
					Type:            domain.TypeStandard,
					Proposer:        "9pQrSt...4mN7",
					Description:     "Establish partnership with NGO network for wider UBI distribution.",
					RequestedAmount: decimal.Zero,
					VotesYes:        8400,
					VotesNo:         1600,
					Quorum:          10000,
					EndTime:         atPtr(5 * day),
					CreatedAt:       at(-2 * day),
				},
			},
			DAOProposals: []domain.DAOProposal{
				{
					ID:              "001",
					Title:           "Fund RPC Infrastructure (Q1 2025)",
					Status:          domain.StatusVoting,
					Proposer:        "@alice",
					Description:     "Fund Helius RPC service for 3 months to ensure reliable blockchain access for all users.",
					RequestedAmount: dec(5),
					VotesYes:        41,
					VotesNo:         13,
					VotesAbstain:    6,
					Quorum:          30,
					EndsIn:          "3 days",
					Tier:            2,
				},
				{
					ID:              "002",
					Title:           "Security Audit by OtterSec",
					Status:          domain.StatusVoting,
					Proposer:        "@bob",
					Description:     "Comprehensive security audit of smart contracts before mainnet launch.",
					RequestedAmount: dec(25),
					VotesYes:        38,
					VotesNo:         8,
					VotesAbstain:    4,
					Quorum:          50,
					EndsIn:          "5 days",
					Tier:            3,
				},
			},
		},
		Voting: domain.Voting{
			UserVotingPower: 1,
			PendingVotes:    2,
			TotalVotesCast:  23,
			NextDeadline:    at(3 * day),
		},
		Sanctions: domain.Sanctions{
			ActiveCount:     2,
			HistoricalCount: 5,
			Active: []domain.ActiveSanction{
				{
					CountryCode:  "XYZ",
					CountryName:  "Example Country",
					Reason:       "Human rights violations",
					EvidenceHash: "QmX7b3...ipfs",
					SanctionRate: 1000,
					ImposedAt:    at(-30 * day),
					ExpiresAt:    at(47 * day),
					VotesFor:     45000,
					VotesAgainst: 12000,
					ProposalID:   "AGP-38",
				},
				{
					CountryCode:  "ABC",
					CountryName:  "Another Country",
					Reason:       "Genocide",
					EvidenceHash: "QmY8c4...ipfs",
					SanctionRate: 500,
					ImposedAt:    at(-60 * day),
					ExpiresAt:    at(120 * day),
					VotesFor:     52000,
					VotesAgainst: 8000,
					ProposalID:   "AGP-32",
				},
			},
			Historical: []domain.HistoricalSanction{
				{
					CountryCode: "DEF",
					CountryName: "Reformed Country",
					Reason:      "Political persecution",
					WasLifted:   true,
					LiftReason:  "Democratic reforms implemented",
					Duration:    90,
				},
			},
		},
		Protocol: domain.ProtocolStats{
			TotalUsers:         142500,
			DailyActiveUsers:   89000,
			TotalUBIClaimed:    dec(1250000000),
			TotalSupply:        dec(5200000000),
			CirculatingSupply:  dec(4800000000),
			BaseTransactionFee: 116,
			TreasuryFeeShare:   50,
			BurnShare:          50,
		},
	}
}
