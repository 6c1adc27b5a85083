package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/agora-protocol/dashboard/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func TestNewSnapshotParser(t *testing.T) {
	parser := NewSnapshotParser()
	assert.NotNil(t, parser)
}

func TestLoadFromFile_Success(t *testing.T) {
	testSnapshot := "generated_at: 2025-03-01T12:00:00Z\n" +
		"gas_pool:\n" +
		"  total_balance: 7500\n" +
		"  used_balance: 2500\n" +
		"  tiers:\n" +
		"    bronze: {amount: 1, monthly_limit: 800, bonus: 20}\n" +
		"  sponsors:\n" +
		"    - {name: \"Solana Foundation\", tier: diamond, amount: 10000}\n" +
		"dao_treasury:\n" +
		"  sol_balance: 120.5\n" +
		"  voting_tiers:\n" +
		"    tier1: {max_amount: 1, duration: 24h, quorum: 20}\n" +
		"    tier3: {duration: 7 days, quorum: 50}\n" +
		"proposals:\n" +
		"  items:\n" +
		"    - id: AGP-46\n" +
		"      status: review\n" +
		"      type: constitutional\n" +
		"      quorum: 25000\n" +
		"      created_at: 2025-02-28T12:00:00Z\n" +
		"sanctions:\n" +
		"  active:\n" +
		"    - country_code: XYZ\n" +
		"      sanction_rate: 1000\n"

	path := filepath.Join(t.TempDir(), "snapshot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testSnapshot), 0644))

	parser := NewSnapshotParser()
	snapshot, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	assert.True(t, snapshot.GeneratedAt.Equal(fixedNow))
	assert.True(t, snapshot.GasPool.TotalBalance.Equal(decimal.NewFromInt(7500)))
	assert.Equal(t, 20, snapshot.GasPool.Tiers[domain.TierBronze].Bonus)
	assert.Equal(t, domain.TierDiamond, snapshot.GasPool.Sponsors[0].Tier)
	assert.True(t, snapshot.DAOTreasury.SOLBalance.Equal(decimal.RequireFromString("120.5")))

	tier1 := snapshot.DAOTreasury.VotingTiers[domain.VotingTier1]
	require.NotNil(t, tier1.MaxAmount)
	assert.True(t, tier1.MaxAmount.Equal(decimal.NewFromInt(1)))
	assert.Nil(t, snapshot.DAOTreasury.VotingTiers[domain.VotingTier3].MaxAmount, "tier3 is unbounded")

	require.Len(t, snapshot.Proposals.Items, 1)
	assert.Nil(t, snapshot.Proposals.Items[0].EndTime)
	assert.Equal(t, domain.TypeConstitutional, snapshot.Proposals.Items[0].Type)
	assert.Equal(t, int64(1000), snapshot.Sanctions.Active[0].SanctionRate)
}

func TestLoadFromFile_FileNotFound(t *testing.T) {
	parser := NewSnapshotParser()
	snapshot, err := parser.LoadFromFile("nonexistent_file.yaml")

	assert.Error(t, err)
	assert.Nil(t, snapshot)
	assert.Contains(t, err.Error(), "failed to read file")
}

func TestLoadFromFile_InvalidYAML(t *testing.T) {
	testSnapshot := `
gas_pool:
	total_balance: "not-a-number"
`
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testSnapshot), 0644))

	parser := NewSnapshotParser()
	snapshot, err := parser.LoadFromFile(path)

	assert.Error(t, err)
	assert.Nil(t, snapshot)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestParse_UnknownEnumValues(t *testing.T) {
	parser := NewSnapshotParser()

	_, err := parser.Parse([]byte("gas_pool:\n  sponsors:\n    - {name: X, tier: mythril, amount: 5}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown sponsor tier "mythril"`)

	_, err = parser.Parse([]byte("proposals:\n  items:\n    - {id: A, status: pending}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown proposal status "pending"`)

	_, err = parser.Parse([]byte("dao_treasury:\n  voting_tiers:\n    tier9: {quorum: 1}\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown voting tier "tier9"`)
}

func TestParse_NoReferentialChecks(t *testing.T) {
	// a sanction may point at a proposal that is not in the list
	parser := NewSnapshotParser()
	snapshot, err := parser.Parse([]byte("sanctions:\n  active:\n    - {country_code: XYZ, proposal_id: AGP-999}\n"))
	require.NoError(t, err)
	_, found := snapshot.FindProposal("AGP-999")
	assert.False(t, found)
}

func TestSaveToFile_ReloadsExample(t *testing.T) {
	parser := NewSnapshotParser()
	example := parser.CreateExampleSnapshot(fixedNow)
	path := filepath.Join(t.TempDir(), "example.yaml")

	require.NoError(t, parser.SaveToFile(example, path))
	loaded, err := parser.LoadFromFile(path)
	require.NoError(t, err)

	assert.True(t, loaded.GeneratedAt.Equal(fixedNow))
	assert.Len(t, loaded.Proposals.Items, 3)
	assert.Len(t, loaded.Proposals.DAOProposals, 2)
	assert.Nil(t, loaded.Proposals.Items[1].EndTime, "review proposal has no deadline")
	require.NotNil(t, loaded.Proposals.Items[0].EndTime)
	assert.True(t, loaded.Proposals.Items[0].EndTime.Equal(fixedNow.Add(3*day)))
	assert.Nil(t, loaded.DAOTreasury.VotingTiers[domain.VotingTier3].MaxAmount)
	assert.True(t, loaded.Protocol.TotalSupply.Equal(decimal.NewFromInt(5200000000)))
}

func TestLoad_EmptyPathUsesExample(t *testing.T) {
	orig := nowFunc
	nowFunc = func() time.Time { return fixedNow }
	defer func() { nowFunc = orig }()

	snapshot, err := NewSnapshotParser().Load("")
	require.NoError(t, err)
	assert.True(t, snapshot.GeneratedAt.Equal(fixedNow))
	assert.Equal(t, int64(47), snapshot.Proposals.TotalCount)
}

func TestCreateExampleSnapshot(t *testing.T) {
	snapshot := NewSnapshotParser().CreateExampleSnapshot(fixedNow)

	assert.Len(t, snapshot.GasPool.Tiers, 5)
	assert.Len(t, snapshot.GasPool.Sponsors, 4)
	assert.Len(t, snapshot.DAOTreasury.VotingTiers, 3)
	assert.Equal(t, int64(1000), snapshot.Sanctions.Active[0].SanctionRate)
	assert.True(t, snapshot.Sanctions.Active[1].ExpiresAt.Equal(fixedNow.Add(120*day)))
	assert.True(t, snapshot.Voting.NextDeadline.Equal(fixedNow.Add(3*day)))

	p, ok := snapshot.FindDAOProposal("002")
	require.True(t, ok)
	assert.Equal(t, "5 days", p.EndsIn)
	assert.Equal(t, 3, p.Tier)
}
