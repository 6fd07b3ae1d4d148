package controller

import (
	"context"
	"time"

	"github.com/pkg/errors"

	"github.com/esneiderbravo/crehana-tasks/internal/models"
	"github.com/esneiderbravo/crehana-tasks/internal/service"
	"github.com/esneiderbravo/crehana-tasks/internal/util"
)

// LoginUser is the user payload inside a login response. Unlike the
// registration echo it uses snake_case keys.
type LoginUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

// LoginResult is the body of a successful login.
type LoginResult struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	User        LoginUser `json:"user"`
}

// UserController handles registration, login and invitations.
type UserController struct {
	users      *service.UserService
	jwtSecret  string
	tokenTTL   time.Duration
	bcryptCost int
}

func NewUserController(users *service.UserService, jwtSecret string, tokenTTL time.Duration, bcryptCost int) *UserController {
	if tokenTTL <= 0 {
		tokenTTL = 60 * time.Minute
	}
	return &UserController{
		users:      users,
		jwtSecret:  jwtSecret,
		tokenTTL:   tokenTTL,
		bcryptCost: bcryptCost,
	}
}

// findByEmail returns the users registered under the email, usually zero
// or one.
func (c *UserController) findByEmail(ctx context.Context, email string) ([]models.UserRecord, error) {
	resp, err := c.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if resp.HasErrors() {
		return nil, &BackendError{Errors: resp.Errors}
	}

	var payload struct {
		AllUsers struct {
			Nodes []models.UserRecord `json:"nodes"`
		} `json:"allUsers"`
	}
	if err := decode(resp, &payload); err != nil {
		return nil, err
	}
	return payload.AllUsers.Nodes, nil
}

// Register checks email uniqueness, hashes the password and creates the
// user. The returned user never carries a password field.
func (c *UserController) Register(ctx context.Context, email, password, fullName string) (*models.User, error) {
	existing, err := c.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		return nil, ErrDuplicateEmail
	}

	hash, err := util.HashPassword(password, c.bcryptCost)
	if err != nil {
		return nil, err
	}

	resp, err := c.users.Create(ctx, email, hash, fullName)
	if err != nil {
		return nil, err
	}
	if resp.HasErrors() {
		return nil, &BackendError{Errors: resp.Errors}
	}

	var payload struct {
		CreateUser struct {
			User *models.User `json:"user"`
		} `json:"createUser"`
	}
	if err := decode(resp, &payload); err != nil {
		return nil, err
	}
	if payload.CreateUser.User == nil {
		return nil, errors.New("createUser returned no user")
	}
	return payload.CreateUser.User, nil
}

// Login verifies the credentials and mints a session token. An unknown
// email and a wrong password produce the same ErrInvalidCredentials, so the
// response never reveals which one it was.
func (c *UserController) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	existing, err := c.findByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if len(existing) == 0 {
		return nil, ErrInvalidCredentials
	}

	user := existing[0]
	if !util.CheckPassword(password, user.Password) {
		return nil, ErrInvalidCredentials
	}

	token, err := util.GenerateToken(c.jwtSecret, user.ID, user.Email, c.tokenTTL)
	if err != nil {
		return nil, errors.Wrap(err, "generate token")
	}

	return &LoginResult{
		AccessToken: token,
		TokenType:   "bearer",
		User: LoginUser{
			ID:       user.ID,
			Email:    user.Email,
			FullName: user.FullName,
		},
	}, nil
}

// Invite checks the email is not registered yet and acknowledges. Actual
// mail delivery belongs to an external notification service; nothing is
// dispatched here.
func (c *UserController) Invite(ctx context.Context, email string) (string, error) {
	existing, err := c.findByEmail(ctx, email)
	if err != nil {
		return "", err
	}
	if len(existing) > 0 {
		return "", ErrDuplicateEmail
	}
	return "Invitation sent successfully.", nil
}
