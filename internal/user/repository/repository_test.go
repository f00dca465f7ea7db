package repository

import (
	"context"
	"database/sql"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"testing"

	models "github.com/kozmossocial/kozmosv1-sub000/internal/user/model"
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

	if _, err := testDB.NewCreateTable().Model((*models.User)(nil)).IfNotExists().Exec(ctx); err != nil {
		testDB.Close()
		log.Fatalf("failed to create table: %v", err)
	}

	code := m.Run()

	testDB.Close()

	os.Exit(code)
}

func seedUser(t *testing.T, username, name string) *models.User {
	t.Helper()
	u := &models.User{Username: username, Name: name}
	_, err := testDB.NewInsert().Model(u).Returning("*").Exec(context.Background())
	require.NoError(t, err)
	return u
}

func cleanupUsers(t *testing.T) {
	t.Cleanup(func() {
		_, err := testDB.ExecContext(context.Background(), `TRUNCATE TABLE users RESTART IDENTITY CASCADE`)
		require.NoError(t, err)
	})
}

func Test_GetUserByID(t *testing.T) {
	cleanupUsers(t)

	repo := NewUserRepository(testDB, logger.Logger{})
	seeded := seedUser(t, "alice", "Alice")

	fetched, err := repo.GetUserByID(context.Background(), seeded.ID)
	require.NoError(t, err)
	assert.Equal(t, seeded.Username, fetched.Username)
	assert.Equal(t, seeded.Name, fetched.Name)

	_, err = repo.GetUserByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func Test_GetUserByUsername(t *testing.T) {
	cleanupUsers(t)

	repo := NewUserRepository(testDB, logger.Logger{})
	seeded := seedUser(t, "alice", "Alice")

	t.Run("exact match", func(t *testing.T) {
		fetched, err := repo.GetUserByUsername(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, fetched.ID)
	})

	t.Run("case-insensitive fallback", func(t *testing.T) {
		fetched, err := repo.GetUserByUsername(context.Background(), "ALICE")
		require.NoError(t, err)
		assert.Equal(t, seeded.ID, fetched.ID)
	})

	t.Run("unknown handle", func(t *testing.T) {
		_, err := repo.GetUserByUsername(context.Background(), "nobody")
		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func Test_ListUsersByIDs(t *testing.T) {
	cleanupUsers(t)

	repo := NewUserRepository(testDB, logger.Logger{})
	a := seedUser(t, "alice", "Alice")
	b := seedUser(t, "bob", "Bob")
	seedUser(t, "carol", "Carol")

	users, err := repo.ListUsersByIDs(context.Background(), []uuid.UUID{a.ID, b.ID})
	require.NoError(t, err)
	assert.Len(t, users, 2)

	users, err = repo.ListUsersByIDs(context.Background(), nil)
	require.NoError(t, err)
	assert.Nil(t, users)
}
