package repository

import (
	"context"
	"errors"

	"github.com/taskforge/go-tasks/models"
)

var (
	// ErrNotFound: bản ghi không tồn tại hoặc không thuộc về owner được truyền vào.
	// Hai trường hợp này cố ý không phân biệt được với nhau.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateUsername: vi phạm ràng buộc unique trên username
	ErrDuplicateUsername = errors.New("username already exists")
)

// UserRepository là giao diện lưu trữ người dùng
type UserRepository interface {
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) error
	ListAll(ctx context.Context) ([]models.User, error)
}

// TaskRepository là giao diện lưu trữ task.
// Mọi phương thức đều nhận ownerID tường minh; không có truy vấn nào
// trả về task của người dùng khác.
type TaskRepository interface {
	ListByOwner(ctx context.Context, ownerID int64) ([]models.TaskItem, error)
	ListByOwnerAndCategory(ctx context.Context, ownerID int64, category string) ([]models.TaskItem, error)
	FindByOwnerAndID(ctx context.Context, ownerID, id int64) (*models.TaskItem, error)
	Insert(ctx context.Context, ownerID int64, in models.TaskInput) (*models.TaskItem, error)
	Update(ctx context.Context, ownerID, id int64, in models.TaskInput) (*models.TaskItem, error)
	Delete(ctx context.Context, ownerID, id int64) error
}
