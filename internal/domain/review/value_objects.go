package review

import (
	"errors"
	"strings"
)

var (
	ErrInvalidRating   = errors.New("rating must be between 1 and 5")
	ErrCommentTooShort = errors.New("comment must be at least 10 characters")
	ErrCommentTooLong  = errors.New("comment must be at most 1000 characters")
	ErrInvalidAuthor   = errors.New("author name must be between 2 and 100 characters")
)

const (
	MinCommentLength = 10
	MaxCommentLength = 1000
)

type Rating struct {
	value int
}

func NewRating(v int) (Rating, error) {
	if v < 1 || v > 5 {
		return Rating{}, ErrInvalidRating
	}
	return Rating{value: v}, nil
}

func (r Rating) Value() int { return r.value }

type Comment struct {
	text string
}

func NewComment(s string) (Comment, error) {
	t := strings.TrimSpace(s)
	if len(t) < MinCommentLength {
		return Comment{}, ErrCommentTooShort
	}
	if len(t) > MaxCommentLength {
		return Comment{}, ErrCommentTooLong
	}
	return Comment{text: t}, nil
}

func (c Comment) String() string { return c.text }

type Author struct {
	name string
}

func NewAuthor(s string) (Author, error) {
	t := strings.TrimSpace(s)
	if len(t) < 2 || len(t) > 100 {
		return Author{}, ErrInvalidAuthor
	}
	return Author{name: t}, nil
}

func (a Author) Name() string { return a.name }
