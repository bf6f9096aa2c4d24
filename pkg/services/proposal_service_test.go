package services

import (
	"context"
	"testing"

	"github.com/govwatcher/govwatcher/pkg/models"
	"github.com/govwatcher/govwatcher/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProposalServiceGetAbsent(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewProposalService(client)

	p, err := svc.Get(context.Background(), "testchain-1", 999)
	require.NoError(t, err)
	assert.Nil(t, p, "unknown proposal reads as (nil, nil)")
}

func TestProposalServiceUpsertRoundtrip(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewProposalService(client)
	ctx := context.Background()

	in := testProposal("testchain-1", 10, models.StatusVoting)
	require.NoError(t, svc.Upsert(ctx, in))

	out, err := svc.Get(ctx, "testchain-1", 10)
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in.Title, out.Title)
	assert.Equal(t, in.Status, out.Status)
	assert.Equal(t, in.Proposer, out.Proposer)
	require.NotNil(t, out.SubmitTime)
	assert.True(t, in.SubmitTime.Equal(*out.SubmitTime))
	require.NotNil(t, out.VotingEnd)
	assert.Nil(t, out.VotingStart)
}

func TestProposalServiceUpsertUpdatesExisting(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewProposalService(client)
	ctx := context.Background()

	in := testProposal("testchain-1", 10, models.StatusVoting)
	require.NoError(t, svc.Upsert(ctx, in))

	in.Status = models.StatusPassed
	in.Title = "Amended title"
	require.NoError(t, svc.Upsert(ctx, in))

	out, err := svc.Get(ctx, "testchain-1", 10)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPassed, out.Status)
	assert.Equal(t, "Amended title", out.Title)

	// Still one row
	rows, err := svc.ListByChain(ctx, "testchain-1")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestProposalServiceUpsertValidation(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewProposalService(client)
	ctx := context.Background()

	missing := testProposal("", 10, models.StatusVoting)
	err := svc.Upsert(ctx, missing)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	bad := testProposal("testchain-1", 10, "limbo")
	err = svc.Upsert(ctx, bad)
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestProposalServiceListByChain(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewProposalService(client)
	ctx := context.Background()

	require.NoError(t, svc.Upsert(ctx, testProposal("testchain-1", 10, models.StatusVoting)))
	require.NoError(t, svc.Upsert(ctx, testProposal("testchain-1", 12, models.StatusDeposit)))
	require.NoError(t, svc.Upsert(ctx, testProposal("otherchain-9", 5, models.StatusVoting)))

	rows, err := svc.ListByChain(ctx, "testchain-1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	// Newest first
	assert.Equal(t, int64(12), rows[0].ProposalID)
	assert.Equal(t, int64(10), rows[1].ProposalID)
}

func TestProposalServiceCountByStatus(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewProposalService(client)
	ctx := context.Background()

	require.NoError(t, svc.Upsert(ctx, testProposal("testchain-1", 1, models.StatusVoting)))
	require.NoError(t, svc.Upsert(ctx, testProposal("testchain-1", 2, models.StatusVoting)))
	require.NoError(t, svc.Upsert(ctx, testProposal("testchain-1", 3, models.StatusPassed)))

	counts, err := svc.CountByStatus(ctx, "testchain-1")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"voting": 2, "passed": 1}, counts)
}
