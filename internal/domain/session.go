package domain

import "github.com/google/uuid"

// Session identifies the authenticated caller. It is built by the auth
// middleware and passed explicitly to every service method that reads or
// writes user-owned data.
type Session struct {
	UserID uuid.UUID
	Email  string
}
