package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/taskforge/go-tasks/models"
)

// mã lỗi unique_violation của PostgreSQL
const pgUniqueViolation = "23505"

// PostgresUserRepository lưu người dùng trong bảng users
type PostgresUserRepository struct {
	DB *sql.DB
}

func NewPostgresUserRepository(db *sql.DB) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

func (r *PostgresUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, username, password, created_at FROM users WHERE username = $1", username,
	).Scan(&user.ID, &user.Username, &user.Password, &user.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, err
	}
	return &user, nil
}

// Insert lưu người dùng mới; ràng buộc unique trên username là chốt chặn
// cuối cùng chống đăng ký trùng, kể cả khi pre-check đã qua.
func (r *PostgresUserRepository) Insert(ctx context.Context, user *models.User) error {
	err := r.DB.QueryRowContext(ctx,
		"INSERT INTO users (username, password) VALUES ($1, $2) RETURNING id, created_at",
		user.Username, user.Password,
	).Scan(&user.ID, &user.CreatedAt)

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrDuplicateUsername
	}
	return err
}

func (r *PostgresUserRepository) ListAll(ctx context.Context) ([]models.User, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, username, password, created_at FROM users ORDER BY id",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Password, &user.CreatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}
