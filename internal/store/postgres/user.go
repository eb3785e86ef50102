package postgres

import (
	"context"
	"fmt"

	"github.com/luminet-io/luminet/internal/store"
)

type users struct{ q querier }

const userCols = "id, username, hashed_pass, role, created"

func scanUser(row interface{ Scan(...any) error }) (*store.User, error) {
	var u store.User
	if err := row.Scan(&u.ID, &u.Username, &u.HashedPass, &u.Role, &u.Created); err != nil {
		return nil, err
	}
	return &u, nil
}

func (st users) Get(ctx context.Context, id int64) (*store.User, error) {
	row := st.q.QueryRow(ctx,
		"SELECT "+userCols+" FROM users WHERE id = $1", id)
	u, err := scanUser(row)
	if err != nil {
		return nil, translate(err, fmt.Sprintf("user %d", id))
	}
	return u, nil
}

func (st users) GetByUsername(ctx context.Context, username string) (*store.User, error) {
	row := st.q.QueryRow(ctx,
		"SELECT "+userCols+" FROM users WHERE username = $1", username)
	u, err := scanUser(row)
	if err != nil {
		return nil, translate(err, fmt.Sprintf("user %q", username))
	}
	return u, nil
}

func (st users) Count(ctx context.Context) (int64, error) {
	var n int64
	if err := st.q.QueryRow(ctx, "SELECT count(*) FROM users").Scan(&n); err != nil {
		return 0, translate(err, "count users")
	}
	return n, nil
}

func (st users) List(ctx context.Context, page store.Page) ([]*store.User, error) {
	sql, args := pageClause("SELECT "+userCols+" FROM users ORDER BY id", nil, page)
	rows, err := st.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, translate(err, "list users")
	}
	defer rows.Close()

	var out []*store.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, translate(err, "scan user")
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (st users) Create(ctx context.Context, u *store.User) (*store.User, error) {
	if u.Username == "" {
		return nil, fmt.Errorf("username is required: %w", store.ErrValidation)
	}
	row := st.q.QueryRow(ctx, `
		INSERT INTO users (username, hashed_pass, role, created)
		VALUES ($1, $2, $3, $4)
		RETURNING `+userCols,
		u.Username, u.HashedPass, u.Role, u.Created)
	created, err := scanUser(row)
	if err != nil {
		return nil, translate(err, "create user")
	}
	return created, nil
}

func (st users) Update(ctx context.Context, id int64, upd store.UserUpdate) (*store.User, error) {
	set := "SET id = id"
	args := []any{id}
	if upd.Username != nil {
		args = append(args, *upd.Username)
		set += fmt.Sprintf(", username = $%d", len(args))
	}
	if upd.HashedPass != nil {
		args = append(args, *upd.HashedPass)
		set += fmt.Sprintf(", hashed_pass = $%d", len(args))
	}
	if upd.Role != nil {
		args = append(args, *upd.Role)
		set += fmt.Sprintf(", role = $%d", len(args))
	}

	row := st.q.QueryRow(ctx,
		"UPDATE users "+set+" WHERE id = $1 RETURNING "+userCols,
		args...)
	u, err := scanUser(row)
	if err != nil {
		return nil, translate(err, fmt.Sprintf("user %d", id))
	}
	return u, nil
}

func (st users) Delete(ctx context.Context, id int64) error {
	tag, err := st.q.Exec(ctx, "DELETE FROM users WHERE id = $1", id)
	if err != nil {
		return translate(err, fmt.Sprintf("user %d", id))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("user %d: %w", id, store.ErrNotFound)
	}
	return nil
}
