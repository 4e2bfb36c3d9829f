// Package service implements the roster actions behind the form UI.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/mmynk/members/internal/models"
	"github.com/mmynk/members/internal/storage"
)

var (
	// ErrInvalidInput is returned when a name is empty or a contact number is
	// not in calling-code format. No store write happens.
	ErrInvalidInput = errors.New("invalid input")

	// ErrDuplicateContact is returned when the contact number is already taken.
	ErrDuplicateContact = storage.ErrDuplicateContact

	// ErrNoSelection is returned when a delete is requested without a member
	// selected from the displayed list.
	ErrNoSelection = errors.New("no member selected")
)

// MemberService runs the add, list, search and delete actions against a store.
type MemberService struct {
	store storage.Store
}

// NewMemberService creates a new MemberService with the given storage backend.
func NewMemberService(store storage.Store) *MemberService {
	return &MemberService{store: store}
}

// AddMember validates the input and inserts a new member.
func (s *MemberService) AddMember(ctx context.Context, name, contact string) (*models.Member, error) {
	slog.Debug("AddMember request received", "name", name, "contact", contact)

	if strings.TrimSpace(name) == "" {
		slog.Warn("AddMember rejected", "reason", "empty name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if err := ValidateContact(contact); err != nil {
		slog.Warn("AddMember rejected", "reason", err)
		return nil, err
	}

	member := &models.Member{Name: name, Contact: contact}
	if err := s.store.CreateMember(ctx, member); err != nil {
		if errors.Is(err, storage.ErrDuplicateContact) {
			slog.Warn("AddMember rejected", "reason", "duplicate contact", "contact", contact)
		} else {
			slog.Error("AddMember failed", "error", err)
		}
		return nil, err
	}

	slog.Debug("Member added", "member_id", member.ID)
	return member, nil
}

// ListMembers returns every member. An empty roster is not an error.
func (s *MemberService) ListMembers(ctx context.Context) ([]models.Member, error) {
	slog.Debug("ListMembers request received")

	members, err := s.store.ListMembers(ctx)
	if err != nil {
		slog.Error("ListMembers failed", "error", err)
		return nil, err
	}

	slog.Debug("ListMembers successful", "count", len(members))
	return members, nil
}

// SearchMembers returns the members whose name matches fragment.
// The fragment is not validated; an empty one lists everyone.
func (s *MemberService) SearchMembers(ctx context.Context, fragment string) ([]models.Member, error) {
	slog.Debug("SearchMembers request received", "fragment", fragment)

	members, err := s.store.SearchMembers(ctx, fragment)
	if err != nil {
		slog.Error("SearchMembers failed", "error", err)
		return nil, err
	}

	slog.Debug("SearchMembers successful", "count", len(members))
	return members, nil
}

// DeleteMember removes the member with the given ID.
func (s *MemberService) DeleteMember(ctx context.Context, id int64) error {
	slog.Debug("DeleteMember request received", "member_id", id)

	if err := s.store.DeleteMember(ctx, id); err != nil {
		slog.Error("DeleteMember failed", "member_id", id, "error", err)
		return err
	}

	slog.Debug("Member deleted", "member_id", id)
	return nil
}
