package postgres

import (
	"context"
	"fmt"

	"github.com/luminet-io/luminet/internal/spatial"
	"github.com/luminet-io/luminet/internal/store"
)

type basestations struct{ q querier }

const basestationCols = "id, uuid, status, latitude, longitude, version"

func scanBasestation(row interface{ Scan(...any) error }) (*store.Basestation, error) {
	var (
		bs        store.Basestation
		lat, long *float64
	)
	if err := row.Scan(&bs.ID, &bs.UUID, &bs.Status, &lat, &long, &bs.Version); err != nil {
		return nil, err
	}
	bs.Location = locationOf(lat, long)
	return &bs, nil
}

func (st basestations) Get(ctx context.Context, id int64) (*store.Basestation, error) {
	row := st.q.QueryRow(ctx,
		"SELECT "+basestationCols+" FROM basestations WHERE id = $1", id)
	bs, err := scanBasestation(row)
	if err != nil {
		return nil, translate(err, fmt.Sprintf("basestation %d", id))
	}
	return bs, nil
}

func (st basestations) GetByUUID(ctx context.Context, uuid int64) (*store.Basestation, error) {
	row := st.q.QueryRow(ctx,
		"SELECT "+basestationCols+" FROM basestations WHERE uuid = $1", uuid)
	bs, err := scanBasestation(row)
	if err != nil {
		return nil, translate(err, fmt.Sprintf("basestation uuid %d", uuid))
	}
	return bs, nil
}

func (st basestations) list(ctx context.Context, query string, args ...any) ([]*store.Basestation, error) {
	rows, err := st.q.Query(ctx, query, args...)
	if err != nil {
		return nil, translate(err, "list basestations")
	}
	defer rows.Close()

	var out []*store.Basestation
	for rows.Next() {
		bs, err := scanBasestation(rows)
		if err != nil {
			return nil, translate(err, "scan basestation")
		}
		out = append(out, bs)
	}
	return out, rows.Err()
}

func (st basestations) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := st.q.QueryRow(ctx, "SELECT count(*) FROM basestations").Scan(&n); err != nil {
		return 0, translate(err, "count basestations")
	}
	return n, nil
}

func (st basestations) List(ctx context.Context, page store.Page) ([]*store.Basestation, error) {
	sql, args := pageClause("SELECT "+basestationCols+" FROM basestations ORDER BY id", nil, page)
	return st.list(ctx, sql, args...)
}

func (st basestations) SearchByBox(ctx context.Context, box spatial.Rect) ([]*store.Basestation, error) {
	return st.list(ctx, `
		SELECT `+basestationCols+` FROM basestations
		WHERE longitude BETWEEN $1 AND $2 AND latitude BETWEEN $3 AND $4
		ORDER BY id`,
		box.Left, box.Right, box.Bottom, box.Top)
}

func (st basestations) Create(ctx context.Context, bs *store.Basestation) (*store.Basestation, error) {
	if bs.UUID == 0 {
		return nil, fmt.Errorf("basestation uuid is required: %w", store.ErrValidation)
	}
	lat, long := locationCols(bs.Location)
	row := st.q.QueryRow(ctx, `
		INSERT INTO basestations (uuid, status, latitude, longitude, version)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+basestationCols,
		bs.UUID, bs.Status, lat, long, bs.Version)
	created, err := scanBasestation(row)
	if err != nil {
		return nil, translate(err, "create basestation")
	}
	return created, nil
}

func (st basestations) Update(ctx context.Context, id int64, upd store.BasestationUpdate) (*store.Basestation, error) {
	set := "SET id = id"
	args := []any{id}
	if upd.UUID != nil {
		args = append(args, *upd.UUID)
		set += fmt.Sprintf(", uuid = $%d", len(args))
	}
	if upd.Status != nil {
		args = append(args, *upd.Status)
		set += fmt.Sprintf(", status = $%d", len(args))
	}
	if upd.ClearLocation {
		set += ", latitude = NULL, longitude = NULL"
	} else if upd.Location != nil {
		args = append(args, upd.Location.Latitude, upd.Location.Longitude)
		set += fmt.Sprintf(", latitude = $%d, longitude = $%d", len(args)-1, len(args))
	}
	if upd.Version != nil {
		args = append(args, *upd.Version)
		set += fmt.Sprintf(", version = $%d", len(args))
	}

	row := st.q.QueryRow(ctx,
		"UPDATE basestations "+set+" WHERE id = $1 RETURNING "+basestationCols,
		args...)
	bs, err := scanBasestation(row)
	if err != nil {
		return nil, translate(err, fmt.Sprintf("basestation %d", id))
	}
	return bs, nil
}

func (st basestations) Delete(ctx context.Context, id int64) error {
	tag, err := st.q.Exec(ctx, "DELETE FROM basestations WHERE id = $1", id)
	if err != nil {
		return translate(err, fmt.Sprintf("basestation %d", id))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("basestation %d: %w", id, store.ErrNotFound)
	}
	return nil
}
