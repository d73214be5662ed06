package menu

import (
	"errors"
	"strings"

	"github.com/gosimple/slug"
)

var (
	ErrInvalidName        = errors.New("name must be between 2 and 100 characters")
	ErrDescriptionTooLong = errors.New("description must be at most 1000 characters")
	ErrNegativePrice      = errors.New("price must not be negative")
)

const MaxDescriptionLength = 1000

type Name struct {
	value string
}

func NewName(s string) (Name, error) {
	t := strings.TrimSpace(s)
	if len(t) < 2 || len(t) > 100 {
		return Name{}, ErrInvalidName
	}
	return Name{value: t}, nil
}

func (n Name) String() string { return n.value }

// Slug derives the URL-safe identifier used in public category routes.
func (n Name) Slug() string {
	return slug.Make(n.value)
}

type Description struct {
	value string
}

func NewDescription(s string) (Description, error) {
	t := strings.TrimSpace(s)
	if len(t) > MaxDescriptionLength {
		return Description{}, ErrDescriptionTooLong
	}
	return Description{value: t}, nil
}

func (d Description) String() string { return d.value }

// PriceCents stores money as integer cents.
type PriceCents struct {
	value int32
}

func NewPriceCents(v int32) (PriceCents, error) {
	if v < 0 {
		return PriceCents{}, ErrNegativePrice
	}
	return PriceCents{value: v}, nil
}

func (p PriceCents) Value() int32 { return p.value }
