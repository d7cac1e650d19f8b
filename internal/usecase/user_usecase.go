package usecase

import "context"

// RegisterUserInput defines the data required to register a new user.
// Email uniqueness is not checked; registering the same address twice
// creates two accounts.
type RegisterUserInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UserUsecase defines the interface for user-related business operations.
type UserUsecase interface {
	RegisterUser(ctx context.Context, input *RegisterUserInput) (*ShowUser, error)
	GetUser(ctx context.Context, id uint) (*ShowUser, error)
}
