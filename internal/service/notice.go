package service

import "errors"

// NoticeKind is the severity of a user-facing notice.
type NoticeKind int

const (
	NoticeSuccess NoticeKind = iota
	NoticeInfo
	NoticeWarning
	NoticeError
)

// String returns the kind's name.
func (k NoticeKind) String() string {
	switch k {
	case NoticeSuccess:
		return "success"
	case NoticeInfo:
		return "info"
	case NoticeWarning:
		return "warning"
	case NoticeError:
		return "error"
	default:
		return "unknown"
	}
}

// Notice is a message shown to the user after an action.
type Notice struct {
	Kind    NoticeKind
	Title   string
	Message string
}

// NoticeFor maps an action error onto the notice the user sees.
func NoticeFor(err error) Notice {
	switch {
	case errors.Is(err, ErrInvalidInput):
		return Notice{
			Kind:    NoticeWarning,
			Title:   "Input Error",
			Message: "Please fill in both name and a valid 12-digit Philippine contact number (e.g., 639XXXXXXXXX).",
		}
	case errors.Is(err, ErrDuplicateContact):
		return Notice{
			Kind:    NoticeWarning,
			Title:   "Duplicate Error",
			Message: "This contact already exists. Please enter a unique contact.",
		}
	case errors.Is(err, ErrNoSelection):
		return Notice{
			Kind:    NoticeWarning,
			Title:   "Selection Error",
			Message: "Please select a member to delete.",
		}
	default:
		return Notice{Kind: NoticeError, Title: "Error", Message: err.Error()}
	}
}

// AddedNotice confirms a successful add.
func AddedNotice() Notice {
	return Notice{Kind: NoticeSuccess, Title: "Success", Message: "Member added successfully!"}
}

// DeletedNotice confirms a successful delete.
func DeletedNotice() Notice {
	return Notice{Kind: NoticeSuccess, Title: "Success", Message: "Member deleted successfully!"}
}

// NoMembersNotice reports an empty roster.
func NoMembersNotice() Notice {
	return Notice{Kind: NoticeInfo, Title: "Info", Message: "No members found."}
}

// NoMatchesNotice reports a search with no results.
func NoMatchesNotice() Notice {
	return Notice{Kind: NoticeInfo, Title: "No Results", Message: "No members found with that name."}
}
