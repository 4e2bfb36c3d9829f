package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	msqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/mmynk/members/internal/models"
	"github.com/mmynk/members/internal/storage"
)

// CreateMember inserts a new member and populates member.ID.
func (s *SQLiteStore) CreateMember(ctx context.Context, member *models.Member) error {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO members (name, contact) VALUES (?, ?)",
		member.Name, member.Contact,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("failed to insert member: %w: %s", storage.ErrDuplicateContact, member.Contact)
		}
		return fmt.Errorf("failed to insert member: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read member id: %w", err)
	}
	member.ID = id

	return nil
}

// ListMembers retrieves all members ordered by ID.
func (s *SQLiteStore) ListMembers(ctx context.Context) ([]models.Member, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT id, name, contact FROM members ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	return scanMembers(rows)
}

// SearchMembers retrieves the members whose name matches fragment under the
// store's search options.
func (s *SQLiteStore) SearchMembers(ctx context.Context, fragment string) ([]models.Member, error) {
	where, args := s.nameFilter(fragment)
	rows, err := s.db.QueryContext(ctx,
		"SELECT id, name, contact FROM members WHERE "+where+" ORDER BY id",
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to search members: %w", err)
	}
	return scanMembers(rows)
}

// DeleteMember removes a member by ID. Missing IDs are ignored.
func (s *SQLiteStore) DeleteMember(ctx context.Context, id int64) error {
	if _, err := s.db.ExecContext(ctx, "DELETE FROM members WHERE id = ?", id); err != nil {
		return fmt.Errorf("failed to delete member: %w", err)
	}
	return nil
}

// nameFilter builds the WHERE clause for a name search.
// LIKE folds ASCII case, so case-sensitive matching uses instr/substr instead.
func (s *SQLiteStore) nameFilter(fragment string) (string, []any) {
	switch {
	case s.search.CaseSensitive && s.search.Mode == storage.MatchPrefix:
		return "substr(name, 1, length(?)) = ?", []any{fragment, fragment}
	case s.search.CaseSensitive:
		return "instr(name, ?) > 0", []any{fragment}
	case s.search.Mode == storage.MatchPrefix:
		return `name LIKE ? ESCAPE '\'`, []any{escapeLike(fragment) + "%"}
	default:
		return `name LIKE ? ESCAPE '\'`, []any{"%" + escapeLike(fragment) + "%"}
	}
}

// escapeLike makes LIKE wildcards in s match literally.
func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}

func scanMembers(rows *sql.Rows) ([]models.Member, error) {
	defer rows.Close()

	members := []models.Member{}
	for rows.Next() {
		var m models.Member
		if err := rows.Scan(&m.ID, &m.Name, &m.Contact); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate members: %w", err)
	}

	return members, nil
}

// isUniqueViolation reports whether err is SQLite rejecting a duplicate
// value in a UNIQUE column.
func isUniqueViolation(err error) bool {
	var sqliteErr *msqlite.Error
	if !errors.As(err, &sqliteErr) {
		return false
	}
	code := sqliteErr.Code()
	if code == sqlite3.SQLITE_CONSTRAINT_UNIQUE {
		return true
	}
	// Primary result code only, when extended codes are off.
	return code&0xff == sqlite3.SQLITE_CONSTRAINT && strings.Contains(sqliteErr.Error(), "UNIQUE constraint failed")
}
