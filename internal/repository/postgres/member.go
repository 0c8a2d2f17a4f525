package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/ambdroid/PluralKit/internal/entities"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	memberColumns = `id, uuid, hid, system, name, display_name, pronouns, description, created, member_visibility`

	selectMemberByGUIDQuery = `SELECT ` + memberColumns + ` FROM members WHERE uuid=$1`
	selectMemberByHidQuery  = `SELECT ` + memberColumns + ` FROM members WHERE hid=$1`
)

// GetMemberByGUID fetches a member by its opaque UUID.
func (p *Postgres) GetMemberByGUID(ctx context.Context, guid uuid.UUID) (*entities.Member, error) {
	return p.queryMember(ctx, "uuid", selectMemberByGUIDQuery, guid)
}

// GetMemberByHid fetches a member by its five letter short id.
func (p *Postgres) GetMemberByHid(ctx context.Context, hid string) (*entities.Member, error) {
	return p.queryMember(ctx, "hid", selectMemberByHidQuery, hid)
}

func (p *Postgres) queryMember(ctx context.Context, by, query string, arg any) (*entities.Member, error) {
	var m entities.Member
	err := p.db.QueryRow(ctx, query, arg).Scan(
		&m.ID, &m.UUID, &m.Hid, &m.System, &m.Name, &m.DisplayName, &m.Pronouns, &m.Description,
		&m.Created, &m.Visibility,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		p.log.Errorw("failed to select member", "error", err, "by", by)
		return nil, fmt.Errorf("get member by %s: %w", by, err)
	}
	return &m, nil
}
