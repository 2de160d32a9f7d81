// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package validate

import (
	"encoding/json"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/danielhkuo/anytime-contest/models"
)

// ParsePayload turns a raw request body into a key-value payload.
// Parse attempts run in a fixed order and the first that succeeds wins:
// the raw bytes as JSON regardless of the declared content type, then
// form-encoding. A JSON body under a form (or missing) content type is
// therefore still accepted. An unparseable body yields an empty payload,
// which fails validation field by field rather than erroring here.
func ParsePayload(contentType string, body []byte) map[string]any {
	if payload, ok := parseJSON(body); ok {
		return payload
	}
	if payload, ok := parseForm(contentType, body); ok {
		return payload
	}
	return map[string]any{}
}

func parseJSON(body []byte) (map[string]any, bool) {
	var payload map[string]any
	if err := json.Unmarshal(body, &payload); err != nil || payload == nil {
		return nil, false
	}
	return payload, true
}

func parseForm(contentType string, body []byte) (map[string]any, bool) {
	if !strings.Contains(contentType, "application/x-www-form-urlencoded") {
		return nil, false
	}
	values, err := url.ParseQuery(string(body))
	if err != nil || len(values) == 0 {
		return nil, false
	}
	payload := make(map[string]any, len(values))
	for key := range values {
		payload[key] = values.Get(key)
	}
	return payload, true
}

// Submission validates a payload into a Submission. It is pure: no ids are
// assigned and no timestamp is filled in; the caller does that after
// validation succeeds. On failure it returns one FieldError per failing
// field.
func Submission(payload map[string]any) (models.Submission, []models.FieldError) {
	var sub models.Submission
	var errs []models.FieldError

	name := strings.TrimSpace(stringField(payload, "name"))
	if utf8.RuneCountInString(name) < 2 {
		errs = append(errs, fieldError("name", "Name must be at least 2 characters long"))
	} else {
		sub.Name = name
	}

	email := strings.ToLower(strings.TrimSpace(stringField(payload, "email")))
	if email == "" || !strings.Contains(email, "@") {
		errs = append(errs, fieldError("email", "Valid email address required"))
	} else {
		sub.Email = email
	}

	answer := strings.TrimSpace(stringField(payload, "answer"))
	if utf8.RuneCountInString(answer) < 5 {
		errs = append(errs, fieldError("answer", "Answer must be at least 5 characters long"))
	} else {
		sub.Answer = answer
	}

	// Optional; any string is accepted verbatim.
	sub.Timestamp = stringField(payload, "timestamp")

	if len(errs) > 0 {
		return models.Submission{}, errs
	}
	return sub, nil
}

func stringField(payload map[string]any, key string) string {
	if v, ok := payload[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func fieldError(field, msg string) models.FieldError {
	return models.FieldError{
		Loc:  []string{"body", field},
		Msg:  msg,
		Type: "value_error",
	}
}
