package postgres

import (
	"context"
	"fmt"

	"github.com/luminet-io/luminet/internal/spatial"
	"github.com/luminet-io/luminet/internal/store"
)

type telecells struct{ q querier }

const telecellCols = "id, uuid, relay, status, latitude, longitude, basestation_id, updated_at"

func scanTelecell(row interface{ Scan(...any) error }) (*store.Telecell, error) {
	var (
		tc        store.Telecell
		lat, long *float64
	)
	if err := row.Scan(&tc.ID, &tc.UUID, &tc.Relay, &tc.Status, &lat, &long, &tc.BasestationID, &tc.UpdatedAt); err != nil {
		return nil, err
	}
	tc.Location = locationOf(lat, long)
	return &tc, nil
}

func (st telecells) Get(ctx context.Context, id int64) (*store.Telecell, error) {
	row := st.q.QueryRow(ctx,
		"SELECT "+telecellCols+" FROM telecells WHERE id = $1", id)
	tc, err := scanTelecell(row)
	if err != nil {
		return nil, translate(err, fmt.Sprintf("telecell %d", id))
	}
	return tc, nil
}

func (st telecells) GetByUUID(ctx context.Context, uuid int64) (*store.Telecell, error) {
	row := st.q.QueryRow(ctx,
		"SELECT "+telecellCols+" FROM telecells WHERE uuid = $1", uuid)
	tc, err := scanTelecell(row)
	if err != nil {
		return nil, translate(err, fmt.Sprintf("telecell uuid %d", uuid))
	}
	return tc, nil
}

func (st telecells) list(ctx context.Context, query string, args ...any) ([]*store.Telecell, error) {
	rows, err := st.q.Query(ctx, query, args...)
	if err != nil {
		return nil, translate(err, "list telecells")
	}
	defer rows.Close()

	var out []*store.Telecell
	for rows.Next() {
		tc, err := scanTelecell(rows)
		if err != nil {
			return nil, translate(err, "scan telecell")
		}
		out = append(out, tc)
	}
	return out, rows.Err()
}

func (st telecells) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := st.q.QueryRow(ctx, "SELECT count(*) FROM telecells").Scan(&n); err != nil {
		return 0, translate(err, "count telecells")
	}
	return n, nil
}

func (st telecells) List(ctx context.Context, page store.Page) ([]*store.Telecell, error) {
	sql, args := pageClause("SELECT "+telecellCols+" FROM telecells ORDER BY id", nil, page)
	return st.list(ctx, sql, args...)
}

func (st telecells) ListByBasestation(ctx context.Context, basestationID int64) ([]*store.Telecell, error) {
	return st.list(ctx,
		"SELECT "+telecellCols+" FROM telecells WHERE basestation_id = $1 ORDER BY id", basestationID)
}

func (st telecells) SearchByBox(ctx context.Context, box spatial.Rect) ([]*store.Telecell, error) {
	return st.list(ctx, `
		SELECT `+telecellCols+` FROM telecells
		WHERE longitude BETWEEN $1 AND $2 AND latitude BETWEEN $3 AND $4
		ORDER BY id`,
		box.Left, box.Right, box.Bottom, box.Top)
}

func (st telecells) Create(ctx context.Context, tc *store.Telecell) (*store.Telecell, error) {
	if tc.UUID == 0 {
		return nil, fmt.Errorf("telecell uuid is required: %w", store.ErrValidation)
	}
	lat, long := locationCols(tc.Location)
	row := st.q.QueryRow(ctx, `
		INSERT INTO telecells (uuid, relay, status, latitude, longitude, basestation_id, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, now())
		RETURNING `+telecellCols,
		tc.UUID, tc.Relay, tc.Status, lat, long, tc.BasestationID)
	created, err := scanTelecell(row)
	if err != nil {
		return nil, translate(err, "create telecell")
	}
	return created, nil
}

func (st telecells) Update(ctx context.Context, id int64, upd store.TelecellUpdate) (*store.Telecell, error) {
	set := "SET updated_at = now()"
	args := []any{id}
	if upd.UUID != nil {
		args = append(args, *upd.UUID)
		set += fmt.Sprintf(", uuid = $%d", len(args))
	}
	if upd.Relay != nil {
		args = append(args, *upd.Relay)
		set += fmt.Sprintf(", relay = $%d", len(args))
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
	if upd.ClearBasestation {
		set += ", basestation_id = NULL"
	} else if upd.BasestationID != nil {
		args = append(args, *upd.BasestationID)
		set += fmt.Sprintf(", basestation_id = $%d", len(args))
	}

	row := st.q.QueryRow(ctx,
		"UPDATE telecells "+set+" WHERE id = $1 RETURNING "+telecellCols,
		args...)
	tc, err := scanTelecell(row)
	if err != nil {
		return nil, translate(err, fmt.Sprintf("telecell %d", id))
	}
	return tc, nil
}

func (st telecells) Delete(ctx context.Context, id int64) error {
	tag, err := st.q.Exec(ctx, "DELETE FROM telecells WHERE id = $1", id)
	if err != nil {
		return translate(err, fmt.Sprintf("telecell %d", id))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("telecell %d: %w", id, store.ErrNotFound)
	}
	return nil
}
