package repository

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"testing"

	"github.com/kozmossocial/kozmosv1-sub000/internal/direct/model"
	"github.com/kozmossocial/kozmosv1-sub000/pkg/logger"
)

var testDB *bun.DB

func TestMain(m *testing.M) {
	ctx := context.Background()

	postgresContainer, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("kozmos"),
		postgres.WithUsername("kozmos"),
		postgres.WithPassword("password"),
		postgres.BasicWaitStrategies(),
	)
	if err != nil {
		log.Printf("failed to start container: %s", err)
		return
	}

	defer func() {
		if err := postgresContainer.Terminate(ctx); err != nil {
			log.Printf("failed to terminate container: %s", err)
		}
	}()

	connStr, err := postgresContainer.ConnectionString(ctx, "sslmode=disable", "application_name=test")
	if err != nil {
		log.Printf("failed to get connections string, %v", err)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(connStr))
	sqlDB := sql.OpenDB(connector)
	testDB = bun.NewDB(sqlDB, pgdialect.New())

	if err := sqlDB.PingContext(ctx); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	tables := []any{
		(*model.DirectChannel)(nil),
		(*model.DirectMessage)(nil),
		(*model.DirectChannelOrderEntry)(nil),
	}
	for _, t := range tables {
		if _, err := testDB.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			testDB.Close()
			log.Fatalf("failed to create table for %T: %v", t, err)
		}
	}

	code := m.Run()

	testDB.Close()

	os.Exit(code)
}

func cleanupDirectTables(t *testing.T) {
	t.Cleanup(func() {
		_, err := testDB.ExecContext(context.Background(), `TRUNCATE TABLE direct_channels, direct_messages, direct_channel_order_entries RESTART IDENTITY CASCADE`)
		require.NoError(t, err)
	})
}

func Test_UpsertChannel_Converges(t *testing.T) {
	cleanupDirectTables(t)

	repo := NewDirectRepository(testDB, logger.Logger{})
	low, high := model.CanonicalPair(uuid.New(), uuid.New())
	now := time.Now()

	first := &model.DirectChannel{ParticipantLow: low, ParticipantHigh: high, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.UpsertChannel(context.Background(), first))
	require.NotEqual(t, uuid.Nil, first.ID)

	// the same canonical pair lands on the existing row
	later := now.Add(time.Minute)
	second := &model.DirectChannel{ParticipantLow: low, ParticipantHigh: high, CreatedAt: later, UpdatedAt: later}
	require.NoError(t, repo.UpsertChannel(context.Background(), second))
	assert.Equal(t, first.ID, second.ID)

	channels, err := repo.ListChannelsFor(context.Background(), low)
	require.NoError(t, err)
	require.Len(t, channels, 1)
	assert.WithinDuration(t, later, channels[0].UpdatedAt, time.Second)
}

func Test_TouchChannel(t *testing.T) {
	cleanupDirectTables(t)

	repo := NewDirectRepository(testDB, logger.Logger{})
	low, high := model.CanonicalPair(uuid.New(), uuid.New())
	old := time.Now().Add(-time.Hour)

	ch := &model.DirectChannel{ParticipantLow: low, ParticipantHigh: high, CreatedAt: old, UpdatedAt: old}
	require.NoError(t, repo.UpsertChannel(context.Background(), ch))

	bumped := time.Now()
	require.NoError(t, repo.TouchChannel(context.Background(), ch.ID, bumped))

	got, err := repo.GetChannel(context.Background(), ch.ID)
	require.NoError(t, err)
	assert.WithinDuration(t, bumped, got.UpdatedAt, time.Second)
}

func Test_ListChannelsFor_Ordering(t *testing.T) {
	cleanupDirectTables(t)

	repo := NewDirectRepository(testDB, logger.Logger{})
	me := uuid.New()
	now := time.Now()

	mk := func(updated time.Time) *model.DirectChannel {
		low, high := model.CanonicalPair(me, uuid.New())
		ch := &model.DirectChannel{ParticipantLow: low, ParticipantHigh: high, CreatedAt: updated, UpdatedAt: updated}
		require.NoError(t, repo.UpsertChannel(context.Background(), ch))
		return ch
	}
	stale := mk(now.Add(-time.Hour))
	fresh := mk(now)

	// someone else's channel must not leak in
	otherLow, otherHigh := model.CanonicalPair(uuid.New(), uuid.New())
	require.NoError(t, repo.UpsertChannel(context.Background(), &model.DirectChannel{
		ParticipantLow: otherLow, ParticipantHigh: otherHigh, CreatedAt: now, UpdatedAt: now,
	}))

	channels, err := repo.ListChannelsFor(context.Background(), me)
	require.NoError(t, err)
	require.Len(t, channels, 2)
	assert.Equal(t, fresh.ID, channels[0].ID)
	assert.Equal(t, stale.ID, channels[1].ID)
}

func Test_DeleteChannelWithOrder(t *testing.T) {
	cleanupDirectTables(t)

	repo := NewDirectRepository(testDB, logger.Logger{})
	me := uuid.New()
	other := uuid.New()
	low, high := model.CanonicalPair(me, other)
	now := time.Now()

	ch := &model.DirectChannel{ParticipantLow: low, ParticipantHigh: high, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.UpsertChannel(context.Background(), ch))
	require.NoError(t, repo.InsertMessage(context.Background(), &model.DirectMessage{
		ChannelID: ch.ID, UserID: me, Content: "bye",
	}))
	require.NoError(t, repo.ReplaceOrderEntries(context.Background(), me, []model.DirectChannelOrderEntry{
		{OwnerID: me, ChannelID: ch.ID, SortOrder: 0},
	}))

	require.NoError(t, repo.DeleteChannelWithOrder(context.Background(), ch.ID))

	_, err := repo.GetChannel(context.Background(), ch.ID)
	assert.ErrorIs(t, err, ErrChannelNotFound)

	msgs, err := repo.ListMessages(context.Background(), ch.ID, 10)
	require.NoError(t, err)
	assert.Empty(t, msgs)

	entries, err := repo.ListOrderEntries(context.Background(), me)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func Test_Messages(t *testing.T) {
	cleanupDirectTables(t)

	repo := NewDirectRepository(testDB, logger.Logger{})
	me := uuid.New()
	low, high := model.CanonicalPair(me, uuid.New())
	now := time.Now()

	ch := &model.DirectChannel{ParticipantLow: low, ParticipantHigh: high, CreatedAt: now, UpdatedAt: now}
	require.NoError(t, repo.UpsertChannel(context.Background(), ch))

	base := now.Add(-time.Minute)
	for i, content := range []string{"one", "two", "three"} {
		require.NoError(t, repo.InsertMessage(context.Background(), &model.DirectMessage{
			ChannelID: ch.ID, UserID: me, Content: content,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	msgs, err := repo.ListMessages(context.Background(), ch.ID, 2)
	require.NoError(t, err)
	require.Len(t, msgs, 2)
	assert.Equal(t, "one", msgs[0].Content)
	assert.Equal(t, "two", msgs[1].Content)
}
