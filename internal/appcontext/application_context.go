package appcontext

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/jonier/api-store/internal/config"
	"github.com/jonier/api-store/internal/infra/repository/db"
	"github.com/jonier/api-store/internal/model"
	"github.com/jonier/api-store/internal/service"
	"github.com/jonier/api-store/internal/token"
)

// ApplicationContext is the explicit wiring step: one store handle, built
// once, passed to every service. No process-wide model registry.
type ApplicationContext struct {
	Cf                   *config.Config
	Logger               zerolog.Logger
	DbConn               *pgxpool.Pool
	DbDao                db.IStore
	TokenMaker           token.Maker
	FKValidator          service.IFKValidator
	UserService          service.IUserService
	AuthService          service.IAuthService
	ProductService       service.IProductService
	KindOfProductService service.IKindOfProductService
	OrderStatusService   service.IOrderStatusService
	OrderService         service.IOrderService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{Cf: cf}
	if err := app.Init(); err != nil {
		return nil, err
	}
	return &app, nil
}

func (app *ApplicationContext) Init() error {
	app.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

	if err := app.setUpDbConn(); err != nil {
		return err
	}
	app.DbDao = db.NewStore(app.DbConn)

	if err := app.setUpTokenMaker(); err != nil {
		return err
	}

	app.FKValidator = service.NewFKValidator(app.DbDao)
	app.UserService = service.NewUserService(app.DbDao)
	app.AuthService = service.NewAuthService(app.UserService, app.TokenMaker)
	app.ProductService = service.NewProductService(app.DbDao, app.FKValidator)
	app.KindOfProductService = service.NewKindOfProductService(app.DbDao)
	app.OrderStatusService = service.NewOrderStatusService(app.DbDao)
	app.OrderService = service.NewOrderService(app.DbDao, app.FKValidator)

	if err := app.dbInit(); err != nil {
		return err
	}
	return nil
}

func (app *ApplicationContext) setUpDbConn() error {
	app.Logger.Info().Msg("setting up database connection")
	conn, err := pgxpool.New(context.Background(), app.dbSource())
	if err != nil {
		return err
	}
	app.DbConn = conn
	return nil
}

func (app *ApplicationContext) setUpTokenMaker() error {
	app.Logger.Info().Msg("setting up token maker")
	maker, err := token.NewJWTMaker(app.Cf.AuthTokenKey)
	if err != nil {
		return fmt.Errorf("could not create token maker: %w", err)
	}
	app.TokenMaker = maker
	return nil
}

// dbInit runs the schema migration and seeds the order statuses under their
// fixed ids. Re-seeding is idempotent and restores a deleted seed row at the
// same id, which the order workflow's open-order check depends on.
func (app *ApplicationContext) dbInit() error {
	app.Logger.Info().Msg("running database migration")
	if err := runDBMigration(app.Cf.MigrationURL, app.dbSource()+"?sslmode=disable"); err != nil {
		return err
	}

	seed, err := config.LoadSeedConfig(app.Cf.SeedFile)
	if err != nil {
		return err
	}

	seeds := make([]model.OrderStatusSeedModel, 0, len(seed.OrderStatuses))
	for _, status := range seed.OrderStatuses {
		seeds = append(seeds, model.OrderStatusSeedModel{ID: status.ID, Title: status.Title})
	}
	return app.OrderStatusService.SeedStatuses(context.Background(), seeds)
}

func (app *ApplicationContext) dbSource() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s",
		app.Cf.DbUser, app.Cf.DbPas, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbName)
}

func runDBMigration(migrationURL, dbSource string) error {
	migration, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		return err
	}
	if err := migration.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	app.Logger.Info().Msg("starting application shutdown")

	done := make(chan struct{})
	go func() {
		defer close(done)
		if app.DbConn != nil {
			app.Logger.Info().Msg("closing database connection")
			app.DbConn.Close()
		}
	}()

	select {
	case <-done:
		app.Logger.Info().Msg("application shutdown complete")
		return nil
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %w", ctx.Err())
	}
}
