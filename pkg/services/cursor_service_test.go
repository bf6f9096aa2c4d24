package services

import (
	"context"
	"testing"

	"github.com/govwatcher/govwatcher/pkg/models"
	"github.com/govwatcher/govwatcher/pkg/watcher"
	"github.com/govwatcher/govwatcher/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorServiceGetAbsent(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewCursorService(client)

	c, err := svc.Get(context.Background(), "testchain-1")
	require.NoError(t, err)
	assert.Nil(t, c, "a chain never watched has no cursor")
}

func TestCursorServiceSaveRoundtrip(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewCursorService(client)
	ctx := context.Background()

	in := models.Cursor{
		ChainID:     "testchain-1",
		HighestSeen: 42,
		Tracked:     []int64{40, 42},
	}
	require.NoError(t, svc.Save(ctx, in))

	out, err := svc.Get(ctx, "testchain-1")
	require.NoError(t, err)
	require.NotNil(t, out)
	assert.Equal(t, in.ChainID, out.ChainID)
	assert.Equal(t, int64(42), out.HighestSeen)
	assert.Equal(t, []int64{40, 42}, out.Tracked)
}

func TestCursorServiceSaveOverwrites(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewCursorService(client)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, models.Cursor{ChainID: "testchain-1", HighestSeen: 10, Tracked: []int64{10}}))
	require.NoError(t, svc.Save(ctx, models.Cursor{ChainID: "testchain-1", HighestSeen: 15, Tracked: nil}))

	out, err := svc.Get(ctx, "testchain-1")
	require.NoError(t, err)
	assert.Equal(t, int64(15), out.HighestSeen)
	assert.Empty(t, out.Tracked)
}

func TestCursorServiceSaveValidation(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewCursorService(client)
	ctx := context.Background()

	err := svc.Save(ctx, models.Cursor{ChainID: "", HighestSeen: 1})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))

	err = svc.Save(ctx, models.Cursor{ChainID: "testchain-1", HighestSeen: -1})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}

func TestCursorServiceCursorsAreIndependentPerChain(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewCursorService(client)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, models.Cursor{ChainID: "testchain-1", HighestSeen: 10}))
	require.NoError(t, svc.Save(ctx, models.Cursor{ChainID: "otherchain-9", HighestSeen: 99}))

	a, err := svc.Get(ctx, "testchain-1")
	require.NoError(t, err)
	b, err := svc.Get(ctx, "otherchain-9")
	require.NoError(t, err)
	assert.Equal(t, int64(10), a.HighestSeen)
	assert.Equal(t, int64(99), b.HighestSeen)
}

func TestCursorServiceCorruptRecord(t *testing.T) {
	client, db := util.SetupTestDatabase(t)
	svc := NewCursorService(client)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, models.Cursor{ChainID: "testchain-1", HighestSeen: 10, Tracked: []int64{10}}))

	// Break the stored tracked set behind ent's back
	_, err := db.ExecContext(ctx,
		`UPDATE chain_cursors SET tracked = '{"not": "a list"}' WHERE chain_id = $1`, "testchain-1")
	require.NoError(t, err)

	_, err = svc.Get(ctx, "testchain-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, watcher.ErrCursorCorrupt)
}
