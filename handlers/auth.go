package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/taskforge/go-tasks/auth"
	"github.com/taskforge/go-tasks/models"
	"github.com/taskforge/go-tasks/repository"
)

// AuthHandler xử lý đăng ký, đăng nhập và liệt kê người dùng
type AuthHandler struct {
	Users  repository.UserRepository
	Issuer *auth.TokenIssuer
}

// Register đăng ký người dùng mới
//
//	@Summary	Register a new user
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		credentials	body	models.Credentials	true	"username and password"
//	@Success	201
//	@Failure	400
//	@Router		/auth/register [post]
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var input models.Credentials
	if err := c.BodyParser(&input); err != nil {
		return respond(c, fiber.StatusBadRequest, err.Error(), nil)
	}
	if input.Username == "" || input.Password == "" {
		return respond(c, fiber.StatusBadRequest, "username and password are required", nil)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	// Pre-check tên trùng; ràng buộc unique của database vẫn là chốt chặn
	// cuối cùng khi hai request đăng ký cùng tên chạy song song
	_, err := h.Users.FindByUsername(ctx, input.Username)
	if err == nil {
		return respond(c, fiber.StatusBadRequest, "username already exists", nil)
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return respond(c, fiber.StatusInternalServerError, "could not check username", nil)
	}

	// Hash mật khẩu
	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		return respond(c, fiber.StatusInternalServerError, "could not hash password", nil)
	}

	user := &models.User{Username: input.Username, Password: hashed}
	err = h.Users.Insert(ctx, user)
	if errors.Is(err, repository.ErrDuplicateUsername) {
		return respond(c, fiber.StatusBadRequest, "username already exists", nil)
	}
	if err != nil {
		return respond(c, fiber.StatusInternalServerError, "could not register user", nil)
	}

	return respond(c, fiber.StatusCreated, "user registered successfully", fiber.Map{
		"id":       user.ID,
		"username": user.Username,
	})
}

// Login xác thực người dùng và phát hành token
//
//	@Summary	Log in and receive a bearer token
//	@Tags		auth
//	@Accept		json
//	@Produce	json
//	@Param		credentials	body	models.Credentials	true	"username and password"
//	@Success	200
//	@Failure	401
//	@Failure	500
//	@Router		/auth/login [post]
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input models.Credentials
	if err := c.BodyParser(&input); err != nil {
		return respond(c, fiber.StatusBadRequest, err.Error(), nil)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	// Người dùng không tồn tại và mật khẩu sai trả về cùng một kết quả;
	// không bao giờ tiết lộ bên nào sai
	user, err := h.Users.FindByUsername(ctx, input.Username)
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return respond(c, fiber.StatusInternalServerError, "could not look up user", nil)
	}
	if err != nil || !auth.CheckPassword(input.Password, user.Password) {
		return respond(c, fiber.StatusUnauthorized, "invalid credentials", nil)
	}

	token, expires, err := h.Issuer.Issue(user.ID, user.Username)
	if errors.Is(err, auth.ErrWeakKey) {
		// Lỗi cấu hình server, tách biệt với lỗi xác thực
		return respond(c, fiber.StatusInternalServerError,
			"JWT signing key is missing or shorter than 32 bytes; check server configuration", nil)
	}
	if err != nil {
		return respond(c, fiber.StatusInternalServerError, "could not issue token", nil)
	}

	return respond(c, fiber.StatusOK, "login successful", fiber.Map{
		"token":   token,
		"expires": expires,
	})
}

// AllUsers liệt kê mọi người dùng (không kèm password hash)
//
//	@Summary	List all users
//	@Tags		auth
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200
//	@Failure	404
//	@Router		/auth/all-users [get]
func (h *AuthHandler) AllUsers(c *fiber.Ctx) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	users, err := h.Users.ListAll(ctx)
	if err != nil {
		return respond(c, fiber.StatusInternalServerError, "could not list users", nil)
	}
	if len(users) == 0 {
		return respond(c, fiber.StatusNotFound, "no users found", nil)
	}

	public := make([]models.PublicUser, 0, len(users))
	for i := range users {
		public = append(public, users[i].Public())
	}

	return respond(c, fiber.StatusOK, "users retrieved successfully", public)
}
