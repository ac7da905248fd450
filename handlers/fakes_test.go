package handlers_test

import (
	"context"
	"strings"
	"time"

	"github.com/taskforge/go-tasks/models"
	"github.com/taskforge/go-tasks/repository"
)

// fakeUserRepo giữ người dùng trong bộ nhớ, mô phỏng đúng hợp đồng của
// PostgresUserRepository (kể cả ràng buộc unique trên username)
type fakeUserRepo struct {
	nextID int64
	users  []models.User
}

func (f *fakeUserRepo) FindByUsername(_ context.Context, username string) (*models.User, error) {
	for i := range f.users {
		if f.users[i].Username == username {
			user := f.users[i]
			return &user, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeUserRepo) Insert(_ context.Context, user *models.User) error {
	for i := range f.users {
		if f.users[i].Username == user.Username {
			return repository.ErrDuplicateUsername
		}
	}
	f.nextID++
	user.ID = f.nextID
	user.CreatedAt = time.Now()
	f.users = append(f.users, *user)
	return nil
}

func (f *fakeUserRepo) ListAll(_ context.Context) ([]models.User, error) {
	return append([]models.User{}, f.users...), nil
}

// fakeTaskRepo mô phỏng PostgresTaskRepository: mọi thao tác đều giới hạn
// theo ownerID, category so khớp không phân biệt hoa thường
type fakeTaskRepo struct {
	nextID int64
	tasks  []models.TaskItem
}

func (f *fakeTaskRepo) ListByOwner(_ context.Context, ownerID int64) ([]models.TaskItem, error) {
	result := []models.TaskItem{}
	for _, task := range f.tasks {
		if task.UserID == ownerID {
			result = append(result, task)
		}
	}
	return result, nil
}

func (f *fakeTaskRepo) ListByOwnerAndCategory(_ context.Context, ownerID int64, category string) ([]models.TaskItem, error) {
	result := []models.TaskItem{}
	for _, task := range f.tasks {
		if task.UserID == ownerID && strings.EqualFold(task.Category, category) {
			result = append(result, task)
		}
	}
	return result, nil
}

func (f *fakeTaskRepo) FindByOwnerAndID(_ context.Context, ownerID, id int64) (*models.TaskItem, error) {
	for i := range f.tasks {
		if f.tasks[i].ID == id && f.tasks[i].UserID == ownerID {
			task := f.tasks[i]
			return &task, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeTaskRepo) Insert(_ context.Context, ownerID int64, in models.TaskInput) (*models.TaskItem, error) {
	f.nextID++
	now := time.Now()
	task := models.TaskItem{
		ID:          f.nextID,
		Title:       in.Title,
		Description: in.Description,
		Category:    in.Category,
		IsCompleted: in.IsCompleted,
		UserID:      ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	f.tasks = append(f.tasks, task)
	return &task, nil
}

func (f *fakeTaskRepo) Update(_ context.Context, ownerID, id int64, in models.TaskInput) (*models.TaskItem, error) {
	for i := range f.tasks {
		if f.tasks[i].ID == id && f.tasks[i].UserID == ownerID {
			f.tasks[i].Title = in.Title
			f.tasks[i].Description = in.Description
			f.tasks[i].Category = in.Category
			f.tasks[i].IsCompleted = in.IsCompleted
			f.tasks[i].UpdatedAt = time.Now()
			task := f.tasks[i]
			return &task, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (f *fakeTaskRepo) Delete(_ context.Context, ownerID, id int64) error {
	for i := range f.tasks {
		if f.tasks[i].ID == id && f.tasks[i].UserID == ownerID {
			f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}
