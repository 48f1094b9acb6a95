package task

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresRepository implements Repository using pgxpool.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new Repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &PostgresRepository{pool: pool}
}

// Create inserts a new task record.
func (r *PostgresRepository) Create(ctx context.Context, t *Task) error {
	query := `
		INSERT INTO tasks (summary, description, priority, status, user_id)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at`

	err := r.pool.QueryRow(ctx, query,
		t.Summary,
		t.Description,
		t.Priority,
		t.Status,
		t.UserID,
	).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrDuplicateSummary
		}
		return fmt.Errorf("inserting task: %w", err)
	}

	return nil
}

// GetByID retrieves a single task by its UUID.
func (r *PostgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*Task, error) {
	query := `
		SELECT id, summary, description, priority, status, user_id, created_at, updated_at
		FROM tasks
		WHERE id = $1`

	var t Task
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.Summary, &t.Description, &t.Priority, &t.Status, &t.UserID,
		&t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrTaskNotFound
		}
		return nil, fmt.Errorf("querying task: %w", err)
	}

	return &t, nil
}

// ListByOwner retrieves tasks owned by the given user, ordered by creation time.
func (r *PostgresRepository) ListByOwner(ctx context.Context, userID uuid.UUID) ([]Task, error) {
	query := `
		SELECT id, summary, description, priority, status, user_id, created_at, updated_at
		FROM tasks
		WHERE user_id = $1
		ORDER BY created_at ASC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("listing tasks: %w", err)
	}
	defer rows.Close()

	var tasks []Task
	for rows.Next() {
		var t Task
		err := rows.Scan(
			&t.ID, &t.Summary, &t.Description, &t.Priority, &t.Status, &t.UserID,
			&t.CreatedAt, &t.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning task row: %w", err)
		}
		tasks = append(tasks, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating task rows: %w", err)
	}

	if tasks == nil {
		tasks = []Task{}
	}

	return tasks, nil
}
