package models

import (
	"errors"
	"time"
)

// TaskItem là cấu trúc dữ liệu của một task
type TaskItem struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	IsCompleted bool      `json:"isCompleted"`
	UserID      int64     `json:"userId"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// TaskInput là payload của create/update task.
// UserID không nằm ở đây: chủ sở hữu luôn lấy từ token, không bao giờ từ client.
type TaskInput struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	IsCompleted bool   `json:"isCompleted"`
}

// Validate kiểm tra các trường bắt buộc
func (in *TaskInput) Validate() error {
	if in.Title == "" {
		return errors.New("title is required")
	}
	if in.Category == "" {
		return errors.New("category is required")
	}
	return nil
}
