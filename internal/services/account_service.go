package services

import (
	"context"
	"errors"

	"github.com/yoockh/jobboard/internal/auth"
	"github.com/yoockh/jobboard/internal/models"
	pgrepo "github.com/yoockh/jobboard/internal/repositories/relational"
	"github.com/yoockh/jobboard/internal/utils"
)

type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type AccountService interface {
	Signup(ctx context.Context, email, password, role string) (*models.User, error)
	Login(ctx context.Context, email, password string) (*Token, error)
}

type accountService struct {
	users     pgrepo.UserRepository
	passwords utils.PasswordHasher
	tokens    auth.Tokens
}

func NewAccountService(users pgrepo.UserRepository, passwords utils.PasswordHasher, tokens auth.Tokens) AccountService {
	return &accountService{users: users, passwords: passwords, tokens: tokens}
}

func (s *accountService) Signup(ctx context.Context, email, password, role string) (*models.User, error) {
	const op = "AccountService.Signup"

	r, ok := models.ParseRole(role)
	if !ok {
		return nil, utils.E(utils.CodeInvalidArgument, op, "role must be one of: recruiter, candidate", nil)
	}

	// fast path only; the unique index decides
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to check existing user", err)
	}
	if exists {
		return nil, utils.E(utils.CodeAlreadyExists, op, "User already exists", nil)
	}

	stored, err := s.passwords.Hash(password)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to hash password", err)
	}

	u := &models.User{Email: email, Password: stored, Role: r}
	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, utils.ErrAlreadyExists) {
			return nil, utils.E(utils.CodeAlreadyExists, op, "User already exists", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to create user", err)
	}
	return u, nil
}

func (s *accountService) Login(ctx context.Context, email, password string) (*Token, error) {
	const op = "AccountService.Login"

	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeInvalidCredentials, op, "Invalid credentials", nil)
		}
		return nil, utils.E(utils.CodeInternal, op, "failed to load user", err)
	}
	if err := s.passwords.Check(u.Password, password); err != nil {
		return nil, utils.E(utils.CodeInvalidCredentials, op, "Invalid credentials", nil)
	}

	tok, err := s.tokens.Issue(u)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "failed to issue token", err)
	}
	return &Token{AccessToken: tok, TokenType: auth.TokenType}, nil
}
