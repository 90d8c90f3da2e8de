package domain

import "errors"

// Not-found errors, one per entity kind. Repositories return these when an
// id does not resolve; services propagate them unchanged.
var (
	ErrUserNotFound         = errors.New("user not found")
	ErrProjectNotFound      = errors.New("project not found")
	ErrMemberNotFound       = errors.New("project member not found")
	ErrTaskNotFound         = errors.New("task not found")
	ErrCommentNotFound      = errors.New("comment not found")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrDocumentNotFound     = errors.New("document not found")
)

var ErrForbidden = errors.New("access forbidden")

// ErrValidation is the base of all input validation failures. Services wrap
// it with detail: fmt.Errorf("%w: title must be at least 3 characters", ErrValidation).
var ErrValidation = errors.New("invalid input")

// Conflict errors: the operation would violate a uniqueness or protection
// invariant.
var (
	ErrUserExists      = errors.New("user already exists")
	ErrDuplicateMember = errors.New("user is already a member of this project")
	ErrCreatorRemoval  = errors.New("project creator cannot be removed")
)

var ErrInvalidCredentials = errors.New("invalid credentials")
