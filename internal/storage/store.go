// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/mmynk/members/internal/models"
)

// ErrDuplicateContact is returned when a member is inserted with a contact
// number that is already on the roster.
var ErrDuplicateContact = errors.New("contact already exists")

// Store defines the interface for member storage operations.
// This abstraction allows swapping storage backends without changing the
// service layer.
type Store interface {
	// CreateMember persists a new member.
	// The member.ID field will be populated by the store.
	// Returns an error wrapping ErrDuplicateContact if the contact is taken;
	// nothing is written in that case.
	CreateMember(ctx context.Context, member *models.Member) error

	// ListMembers returns every member in insertion order.
	ListMembers(ctx context.Context) ([]models.Member, error)

	// SearchMembers returns the members whose name matches fragment.
	// An empty fragment matches every member.
	SearchMembers(ctx context.Context, fragment string) ([]models.Member, error)

	// DeleteMember removes the member with the given ID.
	// Deleting an ID that does not exist is not an error.
	DeleteMember(ctx context.Context, id int64) error

	// Close releases any resources held by the store.
	Close() error
}

// MatchMode selects how SearchMembers compares a fragment against names.
type MatchMode string

const (
	// MatchContains matches names containing the fragment anywhere.
	MatchContains MatchMode = "contains"
	// MatchPrefix matches names starting with the fragment.
	MatchPrefix MatchMode = "prefix"
)

// SearchOptions configures name matching.
type SearchOptions struct {
	Mode MatchMode
	// CaseSensitive disables SQLite's default ASCII case folding.
	CaseSensitive bool
}

// DefaultSearchOptions matches SQLite's LIKE: contains, ASCII case-insensitive.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{Mode: MatchContains}
}

// Validate checks that the match mode is known.
func (o SearchOptions) Validate() error {
	switch o.Mode {
	case MatchContains, MatchPrefix:
		return nil
	default:
		return fmt.Errorf("unknown search mode %q: must be %q or %q", o.Mode, MatchContains, MatchPrefix)
	}
}
