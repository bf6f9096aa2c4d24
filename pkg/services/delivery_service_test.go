package services

import (
	"context"
	"testing"
	"time"

	"github.com/govwatcher/govwatcher/pkg/delivery"
	"github.com/govwatcher/govwatcher/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeliveryServiceExistsAndCreate(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewDeliveryService(client)
	ctx := context.Background()

	exists, err := svc.Exists(ctx, "testchain-1", 10, "sub-1")
	require.NoError(t, err)
	assert.False(t, exists)

	require.NoError(t, svc.Create(ctx, "testchain-1", 10, "sub-1", "msg-1", time.Now().UTC()))

	exists, err = svc.Exists(ctx, "testchain-1", 10, "sub-1")
	require.NoError(t, err)
	assert.True(t, exists)
}

func TestDeliveryServiceDuplicateCreate(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewDeliveryService(client)
	ctx := context.Background()

	require.NoError(t, svc.Create(ctx, "testchain-1", 10, "sub-1", "msg-1", time.Now().UTC()))

	err := svc.Create(ctx, "testchain-1", 10, "sub-1", "msg-2", time.Now().UTC())
	require.Error(t, err)
	assert.ErrorIs(t, err, delivery.ErrAlreadyMarked, "unique index turns the second insert into the sentinel")

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestDeliveryServiceTriplesAreIndependent(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewDeliveryService(client)
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, svc.Create(ctx, "testchain-1", 10, "sub-1", "m1", now))
	require.NoError(t, svc.Create(ctx, "testchain-1", 10, "sub-2", "m2", now))
	require.NoError(t, svc.Create(ctx, "testchain-1", 11, "sub-1", "m3", now))
	require.NoError(t, svc.Create(ctx, "otherchain-9", 10, "sub-1", "m4", now))

	n, err := svc.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestDeliveryServicePurgeOlderThan(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewDeliveryService(client)
	ctx := context.Background()

	old := time.Now().UTC().Add(-100 * 24 * time.Hour)
	require.NoError(t, svc.Create(ctx, "testchain-1", 1, "sub-1", "m1", old))
	require.NoError(t, svc.Create(ctx, "testchain-1", 2, "sub-1", "m2", time.Now().UTC()))

	purged, err := svc.PurgeOlderThan(ctx, time.Now().UTC().Add(-90*24*time.Hour))
	require.NoError(t, err)
	assert.Equal(t, 1, purged)

	// The recent mark still guards its triple
	exists, err := svc.Exists(ctx, "testchain-1", 2, "sub-1")
	require.NoError(t, err)
	assert.True(t, exists)
}
