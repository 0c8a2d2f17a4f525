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
	groupColumns = `id, uuid, hid, system, name, display_name, description, created, visibility`

	selectGroupByGUIDQuery = `SELECT ` + groupColumns + ` FROM groups WHERE uuid=$1`
	selectGroupByHidQuery  = `SELECT ` + groupColumns + ` FROM groups WHERE hid=$1`
)

// GetGroupByGUID fetches a group by its opaque UUID.
func (p *Postgres) GetGroupByGUID(ctx context.Context, guid uuid.UUID) (*entities.Group, error) {
	return p.queryGroup(ctx, "uuid", selectGroupByGUIDQuery, guid)
}

// GetGroupByHid fetches a group by its five letter short id.
func (p *Postgres) GetGroupByHid(ctx context.Context, hid string) (*entities.Group, error) {
	return p.queryGroup(ctx, "hid", selectGroupByHidQuery, hid)
}

func (p *Postgres) queryGroup(ctx context.Context, by, query string, arg any) (*entities.Group, error) {
	var g entities.Group
	err := p.db.QueryRow(ctx, query, arg).Scan(
		&g.ID, &g.UUID, &g.Hid, &g.System, &g.Name, &g.DisplayName, &g.Description,
		&g.Created, &g.Visibility,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		p.log.Errorw("failed to select group", "error", err, "by", by)
		return nil, fmt.Errorf("get group by %s: %w", by, err)
	}
	return &g, nil
}
