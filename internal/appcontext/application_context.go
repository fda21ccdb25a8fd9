package appcontext

import (
	"context"
	"fmt"
	"log"

	"github.com/RoyceAzure/lab/ordercenter/internal/config"
	"github.com/RoyceAzure/lab/ordercenter/internal/infra/repository/db"
	"github.com/RoyceAzure/lab/ordercenter/internal/infra/repository/db/sqlc"
	"github.com/RoyceAzure/lab/ordercenter/internal/pkg/pgutil"
	"github.com/RoyceAzure/lab/ordercenter/internal/service"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type ApplicationContext struct {
	DbConn           *pgxpool.Pool
	DbDao            db.IStore
	Cf               *config.Config
	BranchService    service.IBranchService
	UserService      service.IUserService
	InventoryService service.IInventoryService
	OrderService     service.IOrderService
	AuthService      service.IAuthService
}

func NewApplicationContext(cf *config.Config) (*ApplicationContext, error) {
	app := ApplicationContext{
		Cf: cf,
	}
	err := app.Init()

	if err != nil {
		return nil, err
	}

	return &app, nil
}

func (app *ApplicationContext) Init() error {
	err := app.setUpdbConn()
	if err != nil {
		return err
	}
	err = app.setUpdbDao()
	if err != nil {
		return err
	}

	err = app.setUpBranchService()
	if err != nil {
		return err
	}

	err = app.setUpUserService()
	if err != nil {
		return err
	}

	err = app.setUpInventoryService()
	if err != nil {
		return err
	}

	err = app.setUpOrderService()
	if err != nil {
		return err
	}

	err = app.setUpAuthService()
	if err != nil {
		return err
	}

	err = app.dbInit()
	if err != nil {
		return err
	}

	return nil
}

func (app *ApplicationContext) setUpdbConn() error {
	log.Printf("Start setup database connection")
	conn, err := pgxpool.New(context.Background(),
		fmt.Sprintf("postgresql://%s:%s@%s:%s/%s", app.Cf.DbUser, app.Cf.DbPas, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbName))
	if err != nil {
		return err
	}
	app.DbConn = conn
	log.Printf("Finish setup database connection")
	return nil
}

func (app *ApplicationContext) setUpdbDao() error {
	log.Printf("Start setup database DAO")
	app.DbDao = db.NewStore(app.DbConn)
	log.Printf("Finish setup database DAO")
	return nil
}

func (app *ApplicationContext) setUpBranchService() error {
	log.Printf("Start setup branch service")
	app.BranchService = service.NewBranchService(app.DbDao)
	log.Printf("Finish setup branch service")
	return nil
}

func (app *ApplicationContext) setUpUserService() error {
	log.Printf("Start setup user service")
	app.UserService = service.NewUserService(app.DbDao)
	log.Printf("Finish setup user service")
	return nil
}

func (app *ApplicationContext) setUpInventoryService() error {
	log.Printf("Start setup inventory service")
	app.InventoryService = service.NewInventoryService(app.DbDao)
	log.Printf("Finish setup inventory service")
	return nil
}

func (app *ApplicationContext) setUpOrderService() error {
	log.Printf("Start setup order service")
	app.OrderService = service.NewOrderService(app.DbDao)
	log.Printf("Finish setup order service")
	return nil
}

func (app *ApplicationContext) setUpAuthService() error {
	log.Printf("Start setup auth service")
	app.AuthService = service.NewAuthService(app.DbDao, app.UserService)
	log.Printf("Finish setup auth service")
	return nil
}

func (app *ApplicationContext) Shutdown(ctx context.Context) error {
	log.Printf("Start application shutdown")

	done := make(chan error)
	go func() {
		defer close(done)

		// 關閉 DB
		if app.DbConn != nil {
			log.Printf("Closing database connection...")
			app.DbConn.Close()
		}

		log.Printf("Application shutdown complete")
		done <- nil
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("shutdown timeout: %v", ctx.Err())
	}
}

func runDBMigration(migrationURL string, dbSource string) error {
	migration, err := migrate.New(migrationURL, dbSource)
	if err != nil {
		return err
	}

	return migration.Up()
}

// db migration and db seed data
func (app *ApplicationContext) dbInit() error {
	log.Printf("Start setup db init")

	err := runDBMigration(
		fmt.Sprintf("file://%s", app.Cf.MigrationDir),
		fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", app.Cf.DbUser, app.Cf.DbPas, app.Cf.DbHost, app.Cf.DbPort, app.Cf.DbName),
	)

	if err != nil && err != migrate.ErrNoChange {
		return err
	}

	if app.Cf.SeedFile == "" {
		log.Printf("Finish setup db init (no seed file)")
		return nil
	}

	seedCf, err := config.LoadSeedConfig(app.Cf.SeedFile)
	if err != nil {
		return err
	}

	ctx := context.Background()

	var setBranches = func(repo sqlc.Querier) error {
		for _, branch := range seedCf.Branches {
			err := repo.CreateBranchIfNotExists(ctx, sqlc.CreateBranchIfNotExistsParams{
				ID:   branch.ID,
				Name: branch.Name,
			})
			if err != nil {
				return err
			}
		}
		return nil
	}

	var setUsers = func(repo sqlc.Querier) error {
		for _, user := range seedCf.Users {
			hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
			if err != nil {
				return err
			}

			id := user.ID
			if id == "" {
				id = uuid.New().String()
			}

			err = repo.CreateUserIfNotExists(ctx, sqlc.CreateUserIfNotExistsParams{
				ID:           id,
				Name:         user.Name,
				Username:     user.Username,
				PasswordHash: string(hash),
				BranchID:     pgutil.StringToPgText(user.BranchID),
				Role:         user.Role,
			})
			if err != nil {
				return err
			}
		}
		return nil
	}

	err = app.DbDao.ExecMultiTx(ctx, []func(sqlc.Querier) error{setBranches, setUsers})
	if err != nil {
		return err
	}

	log.Printf("Finish setup db init")
	return nil
}
