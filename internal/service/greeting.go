package service

import "time"

// Greeting returns the home screen greeting for the local hour of t.
func Greeting(t time.Time) string {
	switch h := t.Hour(); {
	case h >= 5 && h < 12:
		return "Good Morning!"
	case h >= 12 && h < 18:
		return "Good Afternoon!"
	default:
		return "Good Evening!"
	}
}
