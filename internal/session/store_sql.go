package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"github.com/cloudprep/ccpquiz/internal/quiz"
)

// SQLStore persists snapshots in the sessions table (sqlite or postgres).
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore { return &SQLStore{db: db} }

func (s *SQLStore) Save(ctx context.Context, id string, sess *quiz.Session) error {
	buf, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	now := time.Now().Unix()
	_, err = s.db.ExecContext(ctx, `INSERT INTO sessions (id,state_json,created_at,updated_at)
		VALUES ($1,$2,$3,$3)
		ON CONFLICT (id) DO UPDATE SET state_json=EXCLUDED.state_json, updated_at=EXCLUDED.updated_at`,
		id, string(buf), now)
	return err
}

func (s *SQLStore) Load(ctx context.Context, id string) (*quiz.Session, error) {
	row := s.db.QueryRowContext(ctx, `SELECT state_json FROM sessions WHERE id=$1`, id)
	var buf string
	if err := row.Scan(&buf); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	var sess quiz.Session
	if err := json.Unmarshal([]byte(buf), &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *SQLStore) Delete(ctx context.Context, id string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE id=$1`, id)
	return err
}
