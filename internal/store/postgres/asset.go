package postgres

import (
	"context"
	"fmt"

	"github.com/luminet-io/luminet/internal/spatial"
	"github.com/luminet-io/luminet/internal/store"
)

type assets struct{ q querier }

func scanAsset(row interface{ Scan(...any) error }) (*store.Asset, error) {
	var (
		a         store.Asset
		lat, long *float64
	)
	if err := row.Scan(&a.ID, &a.Status, &lat, &long); err != nil {
		return nil, err
	}
	a.Location = locationOf(lat, long)
	return &a, nil
}

func (st assets) Get(ctx context.Context, id int64) (*store.Asset, error) {
	row := st.q.QueryRow(ctx,
		"SELECT id, status, latitude, longitude FROM assets WHERE id = $1", id)
	a, err := scanAsset(row)
	if err != nil {
		return nil, translate(err, fmt.Sprintf("asset %d", id))
	}
	return a, nil
}

func (st assets) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := st.q.QueryRow(ctx, "SELECT count(*) FROM assets").Scan(&n); err != nil {
		return 0, translate(err, "count assets")
	}
	return n, nil
}

func (st assets) List(ctx context.Context, page store.Page) ([]*store.Asset, error) {
	sql, args := pageClause("SELECT id, status, latitude, longitude FROM assets ORDER BY id", nil, page)
	rows, err := st.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, translate(err, "list assets")
	}
	defer rows.Close()

	var out []*store.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, translate(err, "scan asset")
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (st assets) SearchByBox(ctx context.Context, box spatial.Rect) ([]*store.Asset, error) {
	rows, err := st.q.Query(ctx, `
		SELECT id, status, latitude, longitude FROM assets
		WHERE longitude BETWEEN $1 AND $2 AND latitude BETWEEN $3 AND $4
		ORDER BY id`,
		box.Left, box.Right, box.Bottom, box.Top)
	if err != nil {
		return nil, translate(err, "search assets")
	}
	defer rows.Close()

	var out []*store.Asset
	for rows.Next() {
		a, err := scanAsset(rows)
		if err != nil {
			return nil, translate(err, "scan asset")
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (st assets) Create(ctx context.Context, a *store.Asset) (*store.Asset, error) {
	lat, long := locationCols(a.Location)
	row := st.q.QueryRow(ctx, `
		INSERT INTO assets (status, latitude, longitude)
		VALUES ($1, $2, $3)
		RETURNING id, status, latitude, longitude`,
		a.Status, lat, long)
	created, err := scanAsset(row)
	if err != nil {
		return nil, translate(err, "create asset")
	}
	return created, nil
}

func (st assets) Update(ctx context.Context, id int64, upd store.AssetUpdate) (*store.Asset, error) {
	set := "SET id = id"
	args := []any{id}
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

	row := st.q.QueryRow(ctx,
		"UPDATE assets "+set+" WHERE id = $1 RETURNING id, status, latitude, longitude",
		args...)
	a, err := scanAsset(row)
	if err != nil {
		return nil, translate(err, fmt.Sprintf("asset %d", id))
	}
	return a, nil
}

func (st assets) Delete(ctx context.Context, id int64) error {
	tag, err := st.q.Exec(ctx, "DELETE FROM assets WHERE id = $1", id)
	if err != nil {
		return translate(err, fmt.Sprintf("asset %d", id))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("asset %d: %w", id, store.ErrNotFound)
	}
	return nil
}
