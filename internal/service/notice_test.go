package service

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mmynk/members/internal/storage"
)

func TestNoticeFor(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantKind  NoticeKind
		wantTitle string
	}{
		{"invalid input", fmt.Errorf("%w: name is required", ErrInvalidInput), NoticeWarning, "Input Error"},
		{"duplicate from store", fmt.Errorf("failed to insert member: %w", storage.ErrDuplicateContact), NoticeWarning, "Duplicate Error"},
		{"no selection", ErrNoSelection, NoticeWarning, "Selection Error"},
		{"unexpected", errors.New("disk I/O error"), NoticeError, "Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := NoticeFor(tt.err)
			assert.Equal(t, tt.wantKind, n.Kind)
			assert.Equal(t, tt.wantTitle, n.Title)
			assert.NotEmpty(t, n.Message)
		})
	}
}

func TestInformationalNotices(t *testing.T) {
	assert.Equal(t, NoticeInfo, NoMembersNotice().Kind)
	assert.Equal(t, "No members found.", NoMembersNotice().Message)
	assert.Equal(t, NoticeInfo, NoMatchesNotice().Kind)
	assert.Equal(t, "No Results", NoMatchesNotice().Title)
	assert.Equal(t, NoticeSuccess, AddedNotice().Kind)
	assert.Equal(t, NoticeSuccess, DeletedNotice().Kind)
}

func TestGreeting(t *testing.T) {
	at := func(hour int) time.Time {
		return time.Date(2024, 1, 1, hour, 30, 0, 0, time.Local)
	}

	tests := []struct {
		hour int
		want string
	}{
		{0, "Good Evening!"},
		{4, "Good Evening!"},
		{5, "Good Morning!"},
		{11, "Good Morning!"},
		{12, "Good Afternoon!"},
		{17, "Good Afternoon!"},
		{18, "Good Evening!"},
		{23, "Good Evening!"},
	}

	for _, tt := range tests {
		if got := Greeting(at(tt.hour)); got != tt.want {
			t.Errorf("Greeting(%02d:30) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}
