package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"
)

// MaxCommentLength bounds comment text in runes.
const MaxCommentLength = 2000

// Comment is an append-only note attached to an aid request.
type Comment struct {
	ID        int64     `json:"id"`
	RequestID int64     `json:"request_id"`
	UserID    int64     `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// CommentView is a comment joined with its author.
type CommentView struct {
	Comment
	UserName string `json:"user_name"`
	UserRole Role   `json:"user_role"`
}

// NormalizeCommentText trims the text and rejects empty or oversized input.
func NormalizeCommentText(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("%w: comment text must not be empty", ErrValidation)
	}
	if utf8.RuneCountInString(text) > MaxCommentLength {
		return "", fmt.Errorf("%w: comment text exceeds %d characters", ErrValidation, MaxCommentLength)
	}
	return text, nil
}
