package meeting

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) Insert(ctx context.Context, m Meeting) (Meeting, error) {
	err := s.DB.QueryRow(ctx, `
    INSERT INTO meetings (title, description, scheduled_at, participants, created_by)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING id, created_at
  `, m.Title, m.Description, m.ScheduledAt, m.Participants, nullIfEmpty(m.CreatedBy)).Scan(&m.ID, &m.CreatedAt)
	if err != nil {
		return Meeting{}, err
	}
	return m, nil
}

func (s *Store) List(ctx context.Context) ([]Meeting, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, title, description, scheduled_at, participants, created_by, created_at
    FROM meetings
    ORDER BY scheduled_at
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var meetings []Meeting
	for rows.Next() {
		var m Meeting
		var description, createdBy *string
		if err := rows.Scan(&m.ID, &m.Title, &description, &m.ScheduledAt, &m.Participants, &createdBy, &m.CreatedAt); err != nil {
			return nil, err
		}
		if description != nil {
			m.Description = *description
		}
		if createdBy != nil {
			m.CreatedBy = *createdBy
		}
		meetings = append(meetings, m)
	}
	return meetings, rows.Err()
}

func nullIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
