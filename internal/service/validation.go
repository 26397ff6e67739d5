package service

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/maxviazov/report-export-service/internal/render"
)

const (
	maxMovieNameLen  = 1024
	maxMovieGenreLen = 1024

	maxTemplateNameLen = 8
	maxTemplateHTMLLen = 4096
)

// checkLength appends a FieldError when s is empty (if required) or longer than max runes.
func checkLength(ferrs []FieldError, field, s string, required bool, max int) []FieldError {
	n := utf8.RuneCountInString(s)
	switch {
	case required && strings.TrimSpace(s) == "":
		return append(ferrs, FieldError{Field: field, Message: "must not be empty"})
	case n > max:
		return append(ferrs, FieldError{Field: field, Message: fmt.Sprintf("must be at most %d characters", max)})
	}
	return ferrs
}

// ValidateTemplate checks a stored template's name and body, including that the body parses.
func ValidateTemplate(name, html string) error {
	var ferrs []FieldError
	ferrs = checkLength(ferrs, "name", name, true, maxTemplateNameLen)
	if strings.ContainsAny(name, " /\\") {
		ferrs = append(ferrs, FieldError{Field: "name", Message: "must not contain spaces or slashes"})
	}
	ferrs = checkLength(ferrs, "html", html, true, maxTemplateHTMLLen)
	if len(ferrs) == 0 {
		if err := render.Validate(name, html); err != nil {
			return err
		}
	}
	return newInvalidInput(ferrs)
}
