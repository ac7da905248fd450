package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/taskforge/go-tasks/models"
)

const taskColumns = "id, title, description, category, is_completed, user_id, created_at, updated_at"

// PostgresTaskRepository lưu task trong bảng tasks.
// Mọi câu lệnh đều có điều kiện user_id; phạm vi owner được ép ngay trong SQL.
type PostgresTaskRepository struct {
	DB *sql.DB
}

func NewPostgresTaskRepository(db *sql.DB) *PostgresTaskRepository {
	return &PostgresTaskRepository{DB: db}
}

func (r *PostgresTaskRepository) ListByOwner(ctx context.Context, ownerID int64) ([]models.TaskItem, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE user_id = $1 ORDER BY id", ownerID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTasks(rows)
}

// ListByOwnerAndCategory so khớp category không phân biệt hoa thường
// (equality, không phải substring)
func (r *PostgresTaskRepository) ListByOwnerAndCategory(ctx context.Context, ownerID int64, category string) ([]models.TaskItem, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE user_id = $1 AND LOWER(category) = LOWER($2) ORDER BY id",
		ownerID, category,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTasks(rows)
}

func (r *PostgresTaskRepository) FindByOwnerAndID(ctx context.Context, ownerID, id int64) (*models.TaskItem, error) {
	var task models.TaskItem
	err := r.DB.QueryRowContext(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE id = $1 AND user_id = $2", id, ownerID,
	).Scan(&task.ID, &task.Title, &task.Description, &task.Category,
		&task.IsCompleted, &task.UserID, &task.CreatedAt, &task.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &task, nil
}

// Insert tạo task mới; user_id luôn là ownerID truyền vào, không bao giờ
// lấy từ payload của client
func (r *PostgresTaskRepository) Insert(ctx context.Context, ownerID int64, in models.TaskInput) (*models.TaskItem, error) {
	task := models.TaskItem{
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		IsCompleted: in.IsCompleted,
		UserID:      ownerID,
	}
	err := r.DB.QueryRowContext(ctx,
		`INSERT INTO tasks (title, description, category, is_completed, user_id)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at`,
		in.Title, in.Description, in.Category, in.IsCompleted, ownerID,
	).Scan(&task.ID, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Update ghi đè task trong một câu UPDATE duy nhất (last-writer-wins,
// dựa vào tính nguyên tử từng hàng của Postgres) và làm mới updated_at
func (r *PostgresTaskRepository) Update(ctx context.Context, ownerID, id int64, in models.TaskInput) (*models.TaskItem, error) {
	var task models.TaskItem
	err := r.DB.QueryRowContext(ctx,
		`UPDATE tasks SET title = $1, description = $2, category = $3, is_completed = $4, updated_at = NOW()
		 WHERE id = $5 AND user_id = $6
		 RETURNING `+taskColumns,
		in.Title, in.Description, in.Category, in.IsCompleted, id, ownerID,
	).Scan(&task.ID, &task.Title, &task.Description, &task.Category,
		&task.IsCompleted, &task.UserID, &task.CreatedAt, &task.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *PostgresTaskRepository) Delete(ctx context.Context, ownerID, id int64) error {
	res, err := r.DB.ExecContext(ctx,
		"DELETE FROM tasks WHERE id = $1 AND user_id = $2", id, ownerID,
	)
	if err != nil {
		return err
	}
	count, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if count == 0 {
		return ErrNotFound
	}
	return nil
}

func scanTasks(rows *sql.Rows) ([]models.TaskItem, error) {
	tasks := []models.TaskItem{}
	for rows.Next() {
		var task models.TaskItem
		if err := rows.Scan(&task.ID, &task.Title, &task.Description, &task.Category,
			&task.IsCompleted, &task.UserID, &task.CreatedAt, &task.UpdatedAt); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}
