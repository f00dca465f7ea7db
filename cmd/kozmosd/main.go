package main

import (
	"context"
	"database/sql"
	"log"

	"github.com/joho/godotenv"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/kozmossocial/kozmosv1-sub000/config"
	directModel "github.com/kozmossocial/kozmosv1-sub000/internal/direct/model"
	directRepo "github.com/kozmossocial/kozmosv1-sub000/internal/direct/repository"
	directUC "github.com/kozmossocial/kozmosv1-sub000/internal/direct/usecase"
	httpapi "github.com/kozmossocial/kozmosv1-sub000/internal/http"
	"github.com/kozmossocial/kozmosv1-sub000/internal/http/handlers"
	hushModel "github.com/kozmossocial/kozmosv1-sub000/internal/hush/model"
	hushRepo "github.com/kozmossocial/kozmosv1-sub000/internal/hush/repository"
	hushUC "github.com/kozmossocial/kozmosv1-sub000/internal/hush/usecase"
	touchModel "github.com/kozmossocial/kozmosv1-sub000/internal/touch/model"
	touchRepo "github.com/kozmossocial/kozmosv1-sub000/internal/touch/repository"
	touchUC "github.com/kozmossocial/kozmosv1-sub000/internal/touch/usecase"
	userModel "github.com/kozmossocial/kozmosv1-sub000/internal/user/model"
	userRepo "github.com/kozmossocial/kozmosv1-sub000/internal/user/repository"
	userUC "github.com/kozmossocial/kozmosv1-sub000/internal/user/usecase"
	"github.com/kozmossocial/kozmosv1-sub000/pkg/logger"
)

func main() {
	_ = godotenv.Load()

	v, err := config.LoadConfig("config")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	cfg, err := config.ParseConfig(v)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	lg, err := logger.NewLogger(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}

	connector := pgdriver.NewConnector(pgdriver.WithDSN(cfg.Bun.DSN))
	sqlDB := sql.OpenDB(connector)
	db := bun.NewDB(sqlDB, pgdialect.New())
	defer db.Close()

	if err := db.PingContext(context.Background()); err != nil {
		log.Fatalf("failed to ping db: %v", err)
	}

	if cfg.LoggerMode.Development {
		if err := createTables(context.Background(), db); err != nil {
			log.Fatalf("failed to create tables: %v", err)
		}
	}

	users := userRepo.NewUserRepository(db, *lg)
	touches := touchRepo.NewTouchRepository(db, *lg)
	hushes := hushRepo.NewHushRepository(db, *lg)
	directs := directRepo.NewDirectRepository(db, *lg)

	identity := userUC.NewIdentityUsecase(users, *lg)
	touch := touchUC.NewTouchUsecase(touches, users, *lg)
	hush := hushUC.NewHushUsecase(hushes, users, *lg)
	direct := directUC.NewDirectUsecase(directs, touches, users, *lg)

	r := httpapi.NewRouter(cfg,
		&handlers.UserHandler{UC: identity},
		&handlers.TouchHandler{UC: touch},
		&handlers.HushHandler{UC: hush},
		&handlers.DirectHandler{UC: direct},
	)

	lg.Info("listening", "port", cfg.Server.Port, "env", cfg.Server.Environment)
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// createTables is a development convenience; production schemas are
// managed by migrations.
func createTables(ctx context.Context, db *bun.DB) error {
	tables := []any{
		(*userModel.User)(nil),
		(*touchModel.TouchRelation)(nil),
		(*touchModel.TouchOrderEntry)(nil),
		(*hushModel.HushChat)(nil),
		(*hushModel.HushMembership)(nil),
		(*hushModel.HushMessage)(nil),
		(*directModel.DirectChannel)(nil),
		(*directModel.DirectMessage)(nil),
		(*directModel.DirectChannelOrderEntry)(nil),
	}
	for _, t := range tables {
		if _, err := db.NewCreateTable().Model(t).IfNotExists().Exec(ctx); err != nil {
			return err
		}
	}

	// expression indexes cannot be expressed in struct tags
	_, err := db.ExecContext(ctx, `CREATE UNIQUE INDEX IF NOT EXISTS idx_touch_pair
		ON touch_relations (least(requester_id, requested_id), greatest(requester_id, requested_id))`)
	return err
}
