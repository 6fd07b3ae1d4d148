package service

import (
	"context"

	"github.com/esneiderbravo/crehana-tasks/internal/graphql"
)

// UserService issues the user queries and mutations.
type UserService struct {
	gql *graphql.Client
}

func NewUserService(gql *graphql.Client) *UserService {
	return &UserService{gql: gql}
}

const usersByEmailDoc = `
query GetUserByEmail($email: String!) {
  allUsers(condition: { email: $email }) {
    nodes {
      id
      email
      fullName
      password
    }
  }
}`

// GetByEmail looks up users by email. The selection includes the stored
// password hash for the login path; callers must not serialize it out.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*graphql.Response, error) {
	return s.gql.Execute(ctx, usersByEmailDoc, map[string]interface{}{"email": email})
}

const createUserDoc = `
mutation CreateUser($email: String!, $password: String!, $fullName: String!) {
  createUser(input: {
    user: {
      email: $email
      password: $password
      fullName: $fullName
    }
  }) {
    user {
      id
      email
      fullName
    }
  }
}`

// Create stores a new user. The password argument is the bcrypt hash, never
// the plaintext.
func (s *UserService) Create(ctx context.Context, email, passwordHash, fullName string) (*graphql.Response, error) {
	return s.gql.Execute(ctx, createUserDoc, map[string]interface{}{
		"email":    email,
		"password": passwordHash,
		"fullName": fullName,
	})
}
