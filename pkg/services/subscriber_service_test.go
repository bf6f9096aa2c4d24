package services

import (
	"context"
	"testing"
	"time"

	"github.com/govwatcher/govwatcher/ent"
	"github.com/govwatcher/govwatcher/ent/subscriber"
	"github.com/govwatcher/govwatcher/pkg/models"
	"github.com/govwatcher/govwatcher/test/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createSubscriber(t *testing.T, client *ent.Client, id string, chains []string, active bool, activeUntil time.Time) {
	t.Helper()
	err := client.Subscriber.Create().
		SetID(id).
		SetAddress(id + "@example.com").
		SetChains(chains).
		SetRiskTolerance(subscriber.RiskToleranceMedium).
		SetCriteriaWeights(map[string]float64{"Security": 0.6, "Economic": 0.4}).
		SetPolicyBlurbs([]string{"Prefer conservative upgrades"}).
		SetActive(active).
		SetActiveUntil(activeUntil).
		Exec(context.Background())
	require.NoError(t, err)
}

func TestSubscriberServiceListSubscribersFor(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSubscriberService(client)
	now := time.Now().UTC()
	future := now.Add(30 * 24 * time.Hour)

	createSubscriber(t, client, "sub-eligible", []string{"testchain-1", "otherchain-9"}, true, future)
	createSubscriber(t, client, "sub-inactive", []string{"testchain-1"}, false, future)
	createSubscriber(t, client, "sub-expired", []string{"testchain-1"}, true, now.Add(-time.Hour))
	createSubscriber(t, client, "sub-other-chain", []string{"otherchain-9"}, true, future)

	subs, err := svc.ListSubscribersFor(context.Background(), "testchain-1", now)
	require.NoError(t, err)
	require.Len(t, subs, 1)
	assert.Equal(t, "sub-eligible", subs[0].ID)
	assert.Equal(t, models.RiskMedium, subs[0].Policy.RiskTolerance)
	assert.Equal(t, []string{"Prefer conservative upgrades"}, subs[0].Policy.Blurbs)
	assert.InDelta(t, 0.6, subs[0].Policy.CriteriaWeights["Security"], 1e-9)
}

func TestSubscriberServiceGet(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSubscriberService(client)
	future := time.Now().UTC().Add(24 * time.Hour)

	createSubscriber(t, client, "sub-1", []string{"testchain-1"}, true, future)

	sub, err := svc.Get(context.Background(), "sub-1")
	require.NoError(t, err)
	assert.Equal(t, "sub-1@example.com", sub.Address)

	_, err = svc.Get(context.Background(), "sub-ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSubscriberServiceCountActive(t *testing.T) {
	client, _ := util.SetupTestDatabase(t)
	svc := NewSubscriberService(client)
	now := time.Now().UTC()
	future := now.Add(24 * time.Hour)

	createSubscriber(t, client, "sub-1", []string{"testchain-1"}, true, future)
	createSubscriber(t, client, "sub-2", []string{"otherchain-9"}, true, future)
	createSubscriber(t, client, "sub-3", []string{"testchain-1"}, false, future)
	createSubscriber(t, client, "sub-4", []string{"testchain-1"}, true, now.Add(-time.Minute))

	n, err := svc.CountActive(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 2, n, "chain membership does not matter, eligibility does")
}
