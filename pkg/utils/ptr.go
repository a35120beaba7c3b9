package utils

import (
	"time"

	"github.com/aarondl/null/v8"

	"gearguard/pkg/constants"
)

func ToPtr[T any](v T) *T {
	return &v
}

// ParseDate reads a YYYY-MM-DD value as a UTC midnight.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(constants.DateLayout, s, time.UTC)
}

// ParseNullDate treats nil as "no date".
func ParseNullDate(s *string) (null.Time, error) {
	if s == nil || *s == "" {
		return null.Time{}, nil
	}
	t, err := ParseDate(*s)
	if err != nil {
		return null.Time{}, err
	}
	return null.TimeFrom(t), nil
}

func FormatDate(t time.Time) string {
	return t.Format(constants.DateLayout)
}

func FormatNullDate(t null.Time) null.String {
	if !t.Valid {
		return null.String{}
	}
	return null.StringFrom(t.Time.Format(constants.DateLayout))
}

func FormatTimestamp(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(time.RFC3339)
}
