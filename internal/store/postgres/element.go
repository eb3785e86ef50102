package postgres

import (
	"context"
	"fmt"

	"github.com/luminet-io/luminet/internal/spatial"
	"github.com/luminet-io/luminet/internal/store"
)

type elements struct{ q querier }

const elementCols = "id, description, status, asset_id, telecell_id"

func scanElement(row interface{ Scan(...any) error }) (*store.Element, error) {
	var e store.Element
	if err := row.Scan(&e.ID, &e.Description, &e.Status, &e.AssetID, &e.TelecellID); err != nil {
		return nil, err
	}
	return &e, nil
}

func (st elements) Get(ctx context.Context, id int64) (*store.Element, error) {
	row := st.q.QueryRow(ctx,
		"SELECT "+elementCols+" FROM elements WHERE id = $1", id)
	e, err := scanElement(row)
	if err != nil {
		return nil, translate(err, fmt.Sprintf("element %d", id))
	}
	return e, nil
}

func (st elements) list(ctx context.Context, query string, args ...any) ([]*store.Element, error) {
	rows, err := st.q.Query(ctx, query, args...)
	if err != nil {
		return nil, translate(err, "list elements")
	}
	defer rows.Close()

	var out []*store.Element
	for rows.Next() {
		e, err := scanElement(rows)
		if err != nil {
			return nil, translate(err, "scan element")
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (st elements) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := st.q.QueryRow(ctx, "SELECT count(*) FROM elements").Scan(&n); err != nil {
		return 0, translate(err, "count elements")
	}
	return n, nil
}

func (st elements) List(ctx context.Context, page store.Page) ([]*store.Element, error) {
	sql, args := pageClause("SELECT "+elementCols+" FROM elements ORDER BY id", nil, page)
	return st.list(ctx, sql, args...)
}

func (st elements) ListByAsset(ctx context.Context, assetID int64) ([]*store.Element, error) {
	return st.list(ctx,
		"SELECT "+elementCols+" FROM elements WHERE asset_id = $1 ORDER BY id", assetID)
}

func (st elements) ListByTelecell(ctx context.Context, telecellID int64) ([]*store.Element, error) {
	return st.list(ctx,
		"SELECT "+elementCols+" FROM elements WHERE telecell_id = $1 ORDER BY id", telecellID)
}

func (st elements) SearchByAssetBox(ctx context.Context, box spatial.Rect) ([]*store.Element, error) {
	return st.list(ctx, `
		SELECT e.id, e.description, e.status, e.asset_id, e.telecell_id
		FROM elements e
		JOIN assets a ON a.id = e.asset_id
		WHERE a.longitude BETWEEN $1 AND $2 AND a.latitude BETWEEN $3 AND $4
		ORDER BY e.id`,
		box.Left, box.Right, box.Bottom, box.Top)
}

func (st elements) Create(ctx context.Context, e *store.Element) (*store.Element, error) {
	row := st.q.QueryRow(ctx, `
		INSERT INTO elements (description, status, asset_id, telecell_id)
		VALUES ($1, $2, $3, $4)
		RETURNING `+elementCols,
		e.Description, e.Status, e.AssetID, e.TelecellID)
	created, err := scanElement(row)
	if err != nil {
		return nil, translate(err, "create element")
	}
	return created, nil
}

func (st elements) Update(ctx context.Context, id int64, upd store.ElementUpdate) (*store.Element, error) {
	set := "SET id = id"
	args := []any{id}
	if upd.Description != nil {
		args = append(args, *upd.Description)
		set += fmt.Sprintf(", description = $%d", len(args))
	}
	if upd.Status != nil {
		args = append(args, *upd.Status)
		set += fmt.Sprintf(", status = $%d", len(args))
	}
	if upd.ClearAsset {
		set += ", asset_id = NULL"
	} else if upd.AssetID != nil {
		args = append(args, *upd.AssetID)
		set += fmt.Sprintf(", asset_id = $%d", len(args))
	}
	if upd.ClearTelecell {
		set += ", telecell_id = NULL"
	} else if upd.TelecellID != nil {
		args = append(args, *upd.TelecellID)
		set += fmt.Sprintf(", telecell_id = $%d", len(args))
	}

	row := st.q.QueryRow(ctx,
		"UPDATE elements "+set+" WHERE id = $1 RETURNING "+elementCols,
		args...)
	e, err := scanElement(row)
	if err != nil {
		return nil, translate(err, fmt.Sprintf("element %d", id))
	}
	return e, nil
}

func (st elements) Delete(ctx context.Context, id int64) error {
	tag, err := st.q.Exec(ctx, "DELETE FROM elements WHERE id = $1", id)
	if err != nil {
		return translate(err, fmt.Sprintf("element %d", id))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("element %d: %w", id, store.ErrNotFound)
	}
	return nil
}
