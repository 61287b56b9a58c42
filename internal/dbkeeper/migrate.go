package dbkeeper

import (
	"embed"
	"errors"
	"fmt"
	"io"

	"github.com/golang-migrate/migrate/v4"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"go.uber.org/zap"
)

//go:embed migrations/*.sql
var migrations embed.FS

type migrationLogger struct {
	log Log
}

func (ml migrationLogger) Printf(format string, v ...any) {
	ml.log.Info(fmt.Sprintf(format, v...))
}

func (ml migrationLogger) Verbose() bool {
	return false
}

// closeAll closes every closer, even after a failure.
func closeAll(closers ...io.Closer) error {
	var errs []error
	for _, c := range closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}

// migrateUp applies the embedded catalog migrations.
func migrateUp(dsn string, log Log) error {
	src, err := iofs.New(migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}

	connConfig, err := pgx.ParseConfig(dsn)
	if err != nil {
		return fmt.Errorf("unable to parse connection string: %w", err)
	}
	sqlDB := stdlib.OpenDB(*connConfig)

	driver, err := migratepgx.WithInstance(sqlDB, &migratepgx.Config{})
	if err != nil {
		_ = sqlDB.Close()
		return fmt.Errorf("error getting driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		if closeErr := closeAll(driver, sqlDB); closeErr != nil {
			log.Error("Failed to close migration driver", zap.Error(closeErr))
		}
		return fmt.Errorf("error creating migration instance: %w", err)
	}
	m.Log = migrationLogger{log}
	defer func() {
		if srcErr, dbErr := m.Close(); srcErr != nil || dbErr != nil {
			log.Error("Failed to close migration instance", zap.Error(errors.Join(srcErr, dbErr)))
		}
	}()

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info("No migrations to apply")
			return nil
		}
		return fmt.Errorf("error while performing migration: %w", err)
	}
	log.Info("Migrations applied")
	return nil
}
