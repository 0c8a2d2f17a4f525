package postgres

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/ambdroid/PluralKit/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	systemColumns = `s.id, s.uuid, s.hid, s.name, s.description, s.tag, s.avatar_url, s.token, s.created, s.description_privacy, s.member_list_privacy`

	selectSystemByIDQuery      = `SELECT ` + systemColumns + ` FROM systems s WHERE s.id=$1`
	selectSystemByGUIDQuery    = `SELECT ` + systemColumns + ` FROM systems s WHERE s.uuid=$1`
	selectSystemByHidQuery     = `SELECT ` + systemColumns + ` FROM systems s WHERE s.hid=$1`
	selectSystemByTokenQuery   = `SELECT ` + systemColumns + ` FROM systems s WHERE s.token=$1`
	selectSystemByAccountQuery = `SELECT ` + systemColumns + ` FROM accounts a JOIN systems s ON s.id = a.system WHERE a.uid=$1`
	selectSystemAccountsQuery  = `SELECT uid FROM accounts WHERE system=$1 ORDER BY uid`
)

// GetSystem fetches a system by internal id.
func (p *Postgres) GetSystem(ctx context.Context, id entities.SystemID) (*entities.System, error) {
	return p.querySystem(ctx, "id", selectSystemByIDQuery, id)
}

// GetSystemByGUID fetches a system by its opaque UUID.
func (p *Postgres) GetSystemByGUID(ctx context.Context, guid uuid.UUID) (*entities.System, error) {
	return p.querySystem(ctx, "uuid", selectSystemByGUIDQuery, guid)
}

// GetSystemByAccount fetches the system linked to an external account.
func (p *Postgres) GetSystemByAccount(ctx context.Context, account uint64) (*entities.System, error) {
	// accounts.uid is a bigint; anything above it cannot be linked.
	if account > math.MaxInt64 {
		return nil, nil
	}
	return p.querySystem(ctx, "account", selectSystemByAccountQuery, int64(account))
}

// GetSystemByHid fetches a system by its five letter short id.
func (p *Postgres) GetSystemByHid(ctx context.Context, hid string) (*entities.System, error) {
	return p.querySystem(ctx, "hid", selectSystemByHidQuery, hid)
}

// GetSystemByToken fetches the system owning an API token.
func (p *Postgres) GetSystemByToken(ctx context.Context, token string) (*entities.System, error) {
	return p.querySystem(ctx, "token", selectSystemByTokenQuery, token)
}

func (p *Postgres) querySystem(ctx context.Context, by, query string, arg any) (*entities.System, error) {
	var s entities.System
	err := p.db.QueryRow(ctx, query, arg).Scan(
		&s.ID, &s.UUID, &s.Hid, &s.Name, &s.Description, &s.Tag, &s.AvatarURL, &s.Token,
		&s.Created, &s.DescriptionPrivacy, &s.MemberListPrivacy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		p.log.Errorw("failed to select system", "error", err, "by", by)
		return nil, fmt.Errorf("get system by %s: %w", by, err)
	}

	accounts, err := p.readAccounts(ctx, s.ID)
	if err != nil {
		return nil, err
	}
	s.Accounts = accounts
	return &s, nil
}

func (p *Postgres) readAccounts(ctx context.Context, id entities.SystemID) ([]uint64, error) {
	rows, err := p.db.Query(ctx, selectSystemAccountsQuery, id)
	if err != nil {
		p.log.Errorw("failed to select accounts", "error", err, "system_id", id)
		return nil, fmt.Errorf("select accounts: %w", err)
	}
	defer rows.Close()

	accounts := make([]uint64, 0)
	for rows.Next() {
		var uid int64
		if err := rows.Scan(&uid); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, uint64(uid))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}
	return accounts, nil
}
