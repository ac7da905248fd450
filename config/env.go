package config

import (
	"os"

	"github.com/joho/godotenv"
)

// LoadENV load biến môi trường từ file .env nếu có.
// Không có file .env không phải là lỗi: khi deploy, biến môi trường
// được set trực tiếp.
func LoadENV() error {
	if _, err := os.Stat(".env"); os.IsNotExist(err) {
		return nil
	}
	return godotenv.Load()
}
