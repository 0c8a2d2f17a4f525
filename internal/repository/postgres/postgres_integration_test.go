package postgres

import (
	"context"
	"database/sql"
	"path/filepath"
	"strconv"
	"testing"
	"time"

	"github.com/ambdroid/PluralKit/config"
	"github.com/ambdroid/PluralKit/internal/entities"

	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	systemID   entities.SystemID
	systemUUID uuid.UUID
	memberUUID uuid.UUID
	groupUUID  uuid.UUID
}

func TestSystemLookupsIntegration(t *testing.T) {
	ctx := context.Background()
	repo := startRepo(t)
	fx := seed(t, repo)

	byID, err := repo.GetSystem(ctx, fx.systemID)
	require.NoError(t, err)
	require.NotNil(t, byID)
	require.Equal(t, "exmpl", byID.Hid)
	require.Equal(t, fx.systemUUID, byID.UUID)
	require.Equal(t, []uint64{123456789012345678}, byID.Accounts)
	require.Equal(t, entities.PrivacyPrivate, byID.DescriptionPrivacy)
	require.NotNil(t, byID.Name)
	require.Equal(t, "Example", *byID.Name)
	require.Nil(t, byID.Tag)

	byGUID, err := repo.GetSystemByGUID(ctx, fx.systemUUID)
	require.NoError(t, err)
	require.Equal(t, byID.ID, byGUID.ID)

	byHid, err := repo.GetSystemByHid(ctx, "exmpl")
	require.NoError(t, err)
	require.Equal(t, byID.ID, byHid.ID)

	byAccount, err := repo.GetSystemByAccount(ctx, 123456789012345678)
	require.NoError(t, err)
	require.Equal(t, byID.ID, byAccount.ID)

	byToken, err := repo.GetSystemByToken(ctx, "secret-token")
	require.NoError(t, err)
	require.Equal(t, byID.ID, byToken.ID)
}

func TestSystemLookupsMissIntegration(t *testing.T) {
	ctx := context.Background()
	repo := startRepo(t)
	_ = seed(t, repo)

	sys, err := repo.GetSystemByHid(ctx, "zzzzz")
	require.NoError(t, err)
	require.Nil(t, sys)

	sys, err = repo.GetSystemByGUID(ctx, uuid.New())
	require.NoError(t, err)
	require.Nil(t, sys)

	sys, err = repo.GetSystemByAccount(ctx, 9999999999999999999)
	require.NoError(t, err)
	require.Nil(t, sys)

	sys, err = repo.GetSystemByToken(ctx, "nope")
	require.NoError(t, err)
	require.Nil(t, sys)
}

func TestMemberAndGroupLookupsIntegration(t *testing.T) {
	ctx := context.Background()
	repo := startRepo(t)
	fx := seed(t, repo)

	byGUID, err := repo.GetMemberByGUID(ctx, fx.memberUUID)
	require.NoError(t, err)
	require.NotNil(t, byGUID)
	byHid, err := repo.GetMemberByHid(ctx, "mmbra")
	require.NoError(t, err)
	require.Equal(t, byGUID, byHid)
	require.Equal(t, fx.systemID, byHid.System)
	require.Equal(t, entities.PrivacyPublic, byHid.Visibility)

	group, err := repo.GetGroupByGUID(ctx, fx.groupUUID)
	require.NoError(t, err)
	require.NotNil(t, group)
	groupByHid, err := repo.GetGroupByHid(ctx, "grpaa")
	require.NoError(t, err)
	require.Equal(t, group, groupByHid)
	require.Equal(t, entities.PrivacyPrivate, group.Visibility)

	missing, err := repo.GetMemberByHid(ctx, "qqqqq")
	require.NoError(t, err)
	require.Nil(t, missing)

	missingGroup, err := repo.GetGroupByGUID(ctx, uuid.New())
	require.NoError(t, err)
	require.Nil(t, missingGroup)
}

func seed(t *testing.T, repo *Postgres) fixture {
	t.Helper()
	ctx := context.Background()

	fx := fixture{systemUUID: uuid.New(), memberUUID: uuid.New(), groupUUID: uuid.New()}

	err := repo.db.QueryRow(ctx,
		`INSERT INTO systems(uuid, hid, name, token, description, description_privacy) VALUES ($1,'exmpl','Example','secret-token','hidden','private') RETURNING id`,
		fx.systemUUID,
	).Scan(&fx.systemID)
	require.NoError(t, err)

	_, err = repo.db.Exec(ctx, `INSERT INTO accounts(uid, system) VALUES ($1,$2)`, int64(123456789012345678), fx.systemID)
	require.NoError(t, err)
	_, err = repo.db.Exec(ctx,
		`INSERT INTO members(uuid, hid, system, name, pronouns) VALUES ($1,'mmbra',$2,'Alex','they/them')`,
		fx.memberUUID, fx.systemID,
	)
	require.NoError(t, err)
	_, err = repo.db.Exec(ctx,
		`INSERT INTO groups(uuid, hid, system, name, visibility) VALUES ($1,'grpaa',$2,'Friends','private')`,
		fx.groupUUID, fx.systemID,
	)
	require.NoError(t, err)

	return fx
}

func startRepo(t *testing.T) *Postgres {
	t.Helper()
	ctx := context.Background()

	cfg, cleanup := setupPostgres(t)
	t.Cleanup(cleanup)

	repo := New(ctx, testLogger(t), cfg)
	require.NoError(t, repo.OnStart(ctx))
	t.Cleanup(func() { _ = repo.OnStop(ctx) })
	return repo
}

func setupPostgres(t *testing.T) (*config.Config, func()) {
	t.Helper()

	pool, err := dockertest.NewPool("")
	require.NoError(t, err)

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=postgres",
			"POSTGRES_USER=postgres",
			"POSTGRES_DB=pluralkit",
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
	})
	require.NoError(t, err)

	hostPort := resource.GetPort("5432/tcp")

	port, err := strconv.Atoi(hostPort)
	require.NoError(t, err)
	migrationsDir, err := filepath.Abs(filepath.Join("..", "..", "..", "db", "migrations"))
	require.NoError(t, err)
	require.DirExists(t, migrationsDir)

	cfg := &config.Config{
		Server: config.ServerConfig{Host: "0.0.0.0", Port: 5000, ShutdownTimeout: 5 * time.Second},
		HTTP:   config.HTTPConfig{RequestTimeout: 5 * time.Second},
		Postgres: config.PostgresConfig{
			Host:           "localhost",
			Port:           port,
			User:           "postgres",
			Password:       "postgres",
			DBName:         "pluralkit",
			SSLMode:        "disable",
			MigrationsDir:  migrationsDir,
			QueryTimeout:   10 * time.Second,
			MigrateTimeout: 20 * time.Second,
			MaxConns:       4,
			MinConns:       1,
		},
	}

	require.NoError(t, pool.Retry(func() error {
		db, err := sql.Open("postgres", cfg.Postgres.DSN())
		if err != nil {
			return err
		}
		defer func() { _ = db.Close() }()
		return db.Ping()
	}))

	cleanup := func() {
		_ = pool.Purge(resource)
	}

	return cfg, cleanup
}

func testLogger(t *testing.T) *zap.SugaredLogger {
	t.Helper()

	l, _ := zap.NewDevelopment()
	t.Cleanup(func() { _ = l.Sync() })
	return l.Sugar()
}
