package registry

import (
	"fmt"
	"strings"
)

// Category groups entries for display.
type Category string

const (
	Analytics Category = "analytics"
	Tracking  Category = "tracking"
	Marketing Category = "marketing"
	Payments  Category = "payments"
	Content   Category = "content"
	Utility   Category = "utility"
)

// Categories lists every category in display order.
func Categories() []Category {
	return []Category{Analytics, Tracking, Marketing, Payments, Content, Utility}
}

func (c Category) Valid() bool {
	switch c {
	case Analytics, Tracking, Marketing, Payments, Content, Utility:
		return true
	}
	return false
}

// ParseCategory accepts a category name in any letter case.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.ToLower(strings.TrimSpace(s)))
	if !c.Valid() {
		return "", fmt.Errorf("unknown category %q", s)
	}
	return c, nil
}
