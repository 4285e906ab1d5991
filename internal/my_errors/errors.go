package my_errors

import "errors"

// Sentinel my_errors для бизнес-логики
var (
	// Auth my_errors
	ErrUnauthenticated = errors.New("authentication required")
	ErrInvalidToken    = errors.New("invalid token")
	ErrTokenMismatch   = errors.New("token mismatch")
	ErrUserIsNotActive = errors.New("user is not active")
	ErrBadCredentials  = errors.New("invalid username or password")

	// User my_errors
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")

	// Team my_errors
	ErrTeamNotFound      = errors.New("team not found")
	ErrTeamAlreadyExists = errors.New("team already exists")
	ErrAlreadyMember     = errors.New("user is already a team member")
	ErrNotMember         = errors.New("user is not a team member")
	ErrOwnerImmutable    = errors.New("team owner membership cannot be changed")

	// Task my_errors: ErrNotFound covers both "absent" and "present but not
	// visible" so the caller cannot tell the two apart.
	ErrNotFound          = errors.New("not found")
	ErrForbidden         = errors.New("forbidden")
	ErrInvalidOperation  = errors.New("invalid operation")
	ErrAssigneeNotMember = errors.New("assignee is not a member of the task's team")

	// Validation my_errors
	ErrInvalidInput = errors.New("invalid input")
	ErrEmptyField   = errors.New("required field is empty")
)
