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

	"github.com/kozmossocial/kozmosv1-sub000/internal/hush/model"
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
		(*model.HushChat)(nil),
		(*model.HushMembership)(nil),
		(*model.HushMessage)(nil),
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

func cleanupHushTables(t *testing.T) {
	t.Cleanup(func() {
		_, err := testDB.ExecContext(context.Background(), `TRUNCATE TABLE hush_chats, hush_memberships, hush_messages RESTART IDENTITY CASCADE`)
		require.NoError(t, err)
	})
}

func seedChat(t *testing.T, repo *HushRepository, ownerID uuid.UUID) *model.HushChat {
	t.Helper()
	chat := &model.HushChat{CreatedBy: ownerID, Status: model.ChatOpen}
	members := []model.HushMembership{
		{UserID: ownerID, Role: model.RoleOwner, Status: model.MembershipAccepted, DisplayName: "owner"},
	}
	require.NoError(t, repo.InsertChatWithMembers(context.Background(), chat, members))
	return chat
}

func Test_InsertChatWithMembers(t *testing.T) {
	cleanupHushTables(t)

	repo := NewHushRepository(testDB, logger.Logger{})
	ownerID := uuid.New()
	guestID := uuid.New()

	chat := &model.HushChat{CreatedBy: ownerID, Status: model.ChatOpen}
	members := []model.HushMembership{
		{UserID: ownerID, Role: model.RoleOwner, Status: model.MembershipAccepted, DisplayName: "owner"},
		{UserID: guestID, Role: model.RoleMember, Status: model.MembershipInvited, DisplayName: "guest"},
	}
	require.NoError(t, repo.InsertChatWithMembers(context.Background(), chat, members))
	require.NotEqual(t, uuid.Nil, chat.ID)

	fetched, err := repo.GetChat(context.Background(), chat.ID)
	require.NoError(t, err)
	assert.Equal(t, ownerID, fetched.CreatedBy)
	assert.Equal(t, model.ChatOpen, fetched.Status)

	all, err := repo.ListMemberships(context.Background(), chat.ID)
	require.NoError(t, err)
	require.Len(t, all, 2)
	// member rows pick up the generated chat id
	assert.Equal(t, chat.ID, all[0].ChatID)
	assert.Equal(t, chat.ID, all[1].ChatID)
}

func Test_CloseChat(t *testing.T) {
	cleanupHushTables(t)

	repo := NewHushRepository(testDB, logger.Logger{})
	chat := seedChat(t, repo, uuid.New())

	require.NoError(t, repo.CloseChat(context.Background(), chat.ID))

	fetched, err := repo.GetChat(context.Background(), chat.ID)
	require.NoError(t, err)
	assert.Equal(t, model.ChatClosed, fetched.Status)

	// closing again matches zero rows and stays quiet
	require.NoError(t, repo.CloseChat(context.Background(), chat.ID))

	open, err := repo.ListOpenChats(context.Background())
	require.NoError(t, err)
	assert.Empty(t, open)
}

func Test_UpsertMembership(t *testing.T) {
	cleanupHushTables(t)

	repo := NewHushRepository(testDB, logger.Logger{})
	chat := seedChat(t, repo, uuid.New())
	userID := uuid.New()

	first := &model.HushMembership{
		ChatID: chat.ID, UserID: userID,
		Role: model.RoleMember, Status: model.MembershipInvited, DisplayName: "old-name",
	}
	require.NoError(t, repo.UpsertMembership(context.Background(), first))

	// the same (chat_id, user_id) key overwrites in place
	second := &model.HushMembership{
		ChatID: chat.ID, UserID: userID,
		Role: model.RoleMember, Status: model.MembershipRequested, DisplayName: "new-name",
	}
	require.NoError(t, repo.UpsertMembership(context.Background(), second))

	got, err := repo.GetMembership(context.Background(), chat.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, model.MembershipRequested, got.Status)
	assert.Equal(t, "new-name", got.DisplayName)

	all, err := repo.ListMemberships(context.Background(), chat.ID)
	require.NoError(t, err)
	assert.Len(t, all, 2) // owner + the upserted member, no duplicate
}

func Test_UpdateMembershipStatus_Conditional(t *testing.T) {
	cleanupHushTables(t)

	repo := NewHushRepository(testDB, logger.Logger{})
	chat := seedChat(t, repo, uuid.New())
	userID := uuid.New()

	require.NoError(t, repo.UpsertMembership(context.Background(), &model.HushMembership{
		ChatID: chat.ID, UserID: userID,
		Role: model.RoleMember, Status: model.MembershipInvited, DisplayName: "guest",
	}))

	require.NoError(t, repo.UpdateMembershipStatus(context.Background(),
		chat.ID, userID, model.MembershipInvited, model.MembershipAccepted))

	got, err := repo.GetMembership(context.Background(), chat.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, model.MembershipAccepted, got.Status)

	// a stale expectation leaves the row untouched
	require.NoError(t, repo.UpdateMembershipStatus(context.Background(),
		chat.ID, userID, model.MembershipInvited, model.MembershipDeclined))

	got, err = repo.GetMembership(context.Background(), chat.ID, userID)
	require.NoError(t, err)
	assert.Equal(t, model.MembershipAccepted, got.Status)
}

func Test_GetMembership_NotFound(t *testing.T) {
	cleanupHushTables(t)

	repo := NewHushRepository(testDB, logger.Logger{})
	chat := seedChat(t, repo, uuid.New())

	_, err := repo.GetMembership(context.Background(), chat.ID, uuid.New())
	assert.ErrorIs(t, err, ErrMembershipNotFound)
}

func Test_ListMembershipsForChats(t *testing.T) {
	cleanupHushTables(t)

	repo := NewHushRepository(testDB, logger.Logger{})
	chatA := seedChat(t, repo, uuid.New())
	chatB := seedChat(t, repo, uuid.New())
	seedChat(t, repo, uuid.New()) // excluded chat

	members, err := repo.ListMembershipsForChats(context.Background(), []uuid.UUID{chatA.ID, chatB.ID})
	require.NoError(t, err)
	assert.Len(t, members, 2)

	members, err = repo.ListMembershipsForChats(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, members)
}

func Test_Messages(t *testing.T) {
	cleanupHushTables(t)

	repo := NewHushRepository(testDB, logger.Logger{})
	ownerID := uuid.New()
	chat := seedChat(t, repo, ownerID)

	base := time.Now().Add(-time.Minute)
	for i, content := range []string{"first", "second", "third"} {
		require.NoError(t, repo.InsertMessage(context.Background(), &model.HushMessage{
			ChatID: chat.ID, UserID: ownerID, Content: content,
			CreatedAt: base.Add(time.Duration(i) * time.Second),
		}))
	}

	msgs, err := repo.ListMessages(context.Background(), chat.ID, 10)
	require.NoError(t, err)
	require.Len(t, msgs, 3)
	assert.Equal(t, "first", msgs[0].Content)
	assert.Equal(t, "third", msgs[2].Content)

	msgs, err = repo.ListMessages(context.Background(), chat.ID, 2)
	require.NoError(t, err)
	assert.Len(t, msgs, 2)
}
