package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/nyaruka/phonenumbers"

	"github.com/carelink/practice-api/internal/dto"
)

// ErrInvalidInput marks request data the schema layer could not reject, such
// as a malformed path id or an unparseable phone number. Handlers map it to a
// 400 response.
var ErrInvalidInput = errors.New("invalid input")

func invalidInput(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

func parseID(field, raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(raw))
	if err != nil {
		return uuid.Nil, invalidInput("invalid %s", field)
	}
	return id, nil
}

// optionalID resolves an optional foreign key. Empty strings mean absent.
func optionalID(field, raw string) (*uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, invalidInput("invalid %s", field)
	}
	return &id, nil
}

func optionalIDPtr(field string, raw *string) (*uuid.UUID, error) {
	if raw == nil {
		return nil, nil
	}
	return optionalID(field, *raw)
}

func parseDate(field, raw string) (time.Time, error) {
	t, err := time.Parse(dto.DateLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, invalidInput("invalid %s", field)
	}
	return t, nil
}

func optionalDate(field, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := parseDate(field, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func optionalDatePtr(field string, raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := parseDate(field, *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func parseTimestamp(field, raw string) (time.Time, error) {
	t, err := time.Parse(dto.TimestampLayout, strings.TrimSpace(raw))
	if err != nil {
		return time.Time{}, invalidInput("invalid %s", field)
	}
	return t, nil
}

func optionalTimestamp(field, raw string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := parseTimestamp(field, raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func optionalTimestampPtr(field string, raw *string) (*time.Time, error) {
	if raw == nil {
		return nil, nil
	}
	t, err := parseTimestamp(field, *raw)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// optionalString maps empty strings to nil so nullable columns stay NULL.
func optionalString(raw string) *string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	return &raw
}

// normalizePhone validates a phone number and rewrites it in E.164 form.
// Empty input passes through untouched.
func normalizePhone(raw, region string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", nil
	}
	number, err := phonenumbers.Parse(raw, region)
	if err != nil {
		return "", invalidInput("invalid phone number")
	}
	if !phonenumbers.IsPossibleNumber(number) || !phonenumbers.IsValidNumber(number) {
		return "", invalidInput("invalid phone number")
	}
	return phonenumbers.Format(number, phonenumbers.E164), nil
}

func optionalPhone(raw, region string) (*string, error) {
	normalized, err := normalizePhone(raw, region)
	if err != nil {
		return nil, err
	}
	if normalized == "" {
		return nil, nil
	}
	return &normalized, nil
}

func optionalPhonePtr(raw *string, region string) (*string, error) {
	if raw == nil {
		return nil, nil
	}
	normalized, err := normalizePhone(*raw, region)
	if err != nil {
		return nil, err
	}
	return &normalized, nil
}
