package database

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"strconv"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/rds/auth"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DB struct {
	*pgxpool.Pool
}

// IAMAuth signs every new connection with a short-lived RDS auth token.
type IAMAuth struct {
	Region      string
	Credentials aws.CredentialsProvider
}

func NewPostgreSQLDB(dsn string) (*DB, error) {
	return NewPostgreSQLDBWithIAM(context.Background(), dsn, nil)
}

// NewPostgreSQLDBWithIAM opens a pool. With a non-nil iam the password in dsn
// is ignored and replaced per connection by a fresh token.
func NewPostgreSQLDBWithIAM(ctx context.Context, dsn string, iam *IAMAuth) (*DB, error) {
	config, err := pgxpool.ParseConfig(dsn)

	if err != nil {
		return nil, err
	}

	// Connection pool settings
	config.MaxConns = 25
	config.MinConns = 5

	if iam != nil {
		config.BeforeConnect = func(ctx context.Context, cc *pgx.ConnConfig) error {
			endpoint := net.JoinHostPort(cc.Host, strconv.Itoa(int(cc.Port)))
			token, err := auth.BuildAuthToken(ctx, endpoint, iam.Region, cc.User, iam.Credentials)
			if err != nil {
				return fmt.Errorf("failed to build RDS auth token: %w", err)
			}
			cc.Password = token
			return nil
		}
		slog.Info("Using IAM authentication for PostgreSQL", "host", config.ConnConfig.Host, "region", iam.Region)
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &DB{Pool: pool}, nil
}

func (db *DB) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return db.Pool.Begin(ctx)
}

type Querier interface {
	Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, arguments ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
}
