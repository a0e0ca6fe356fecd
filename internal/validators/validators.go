// Package validators turns raw request input into either a parsed value or
// an ordered list of field-level error messages. Validation is collecting,
// not short-circuiting: every violated constraint contributes a message, and
// the transport layer returns the whole list in the response envelope.
package validators

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/MKhiriev/go-blog-keeper/models"
)

// Field length constraints, mirrored by the database schema.
const (
	minNameLength = 2
	maxNameLength = 50

	minPasswordLength = 6

	minTitleLength = 5
	maxTitleLength = 200

	maxDescriptionLength = 500

	minBodyLength = 10

	maxTags      = 10
	minTagLength = 2
	maxTagLength = 30
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateRegister checks a registration request and returns every violated
// constraint as a separate message. An empty result means the request is valid.
func ValidateRegister(request models.RegisterRequest) []string {
	var errs []string

	errs = appendNameErrors(errs, "First name", request.FirstName)
	errs = appendNameErrors(errs, "Last name", request.LastName)
	errs = appendEmailErrors(errs, request.Email, true)

	switch {
	case request.Password == "":
		errs = append(errs, "Password is required")
	case utf8.RuneCountInString(request.Password) < minPasswordLength:
		errs = append(errs, fmt.Sprintf("Password must be at least %d characters long", minPasswordLength))
	}

	return errs
}

// ValidateLogin checks a login request.
func ValidateLogin(request models.LoginRequest) []string {
	var errs []string

	errs = appendEmailErrors(errs, request.Email, true)

	if request.Password == "" {
		errs = append(errs, "Password is required")
	}

	return errs
}

// ValidateUpdateProfile checks a profile-update request. All fields are
// optional; the password-change rejection happens in the transport layer
// before validation runs.
func ValidateUpdateProfile(request models.UpdateProfileRequest) []string {
	var errs []string

	if request.FirstName != "" {
		errs = appendNameErrors(errs, "First name", request.FirstName)
	}
	if request.LastName != "" {
		errs = appendNameErrors(errs, "Last name", request.LastName)
	}
	if request.Email != "" {
		errs = appendEmailErrors(errs, request.Email, false)
	}

	return errs
}

// ValidateCreateBlog checks a blog-creation request.
func ValidateCreateBlog(request models.CreateBlogRequest) []string {
	var errs []string

	errs = appendTitleErrors(errs, request.Title, true)
	errs = appendDescriptionErrors(errs, request.Description)
	errs = appendBodyErrors(errs, request.Body, true)
	errs = appendTagErrors(errs, request.Tags)

	return errs
}

// ValidateUpdateBlog checks a blog-update request. Every field is optional,
// but at least one must be present.
func ValidateUpdateBlog(request models.UpdateBlogRequest) []string {
	var errs []string

	if request.Title == nil && request.Description == nil && request.Body == nil &&
		request.Tags == nil && request.State == nil {
		return []string{"At least one field must be provided"}
	}

	if request.Title != nil {
		errs = appendTitleErrors(errs, *request.Title, true)
	}
	if request.Description != nil {
		errs = appendDescriptionErrors(errs, *request.Description)
	}
	if request.Body != nil {
		errs = appendBodyErrors(errs, *request.Body, true)
	}
	if request.Tags != nil {
		errs = appendTagErrors(errs, *request.Tags)
	}
	if request.State != nil && !models.BlogState(*request.State).IsValid() {
		errs = append(errs, "State must be either draft or published")
	}

	return errs
}

// ValidateUpdateState checks a state-change request.
func ValidateUpdateState(request models.UpdateStateRequest) []string {
	if !models.BlogState(request.State).IsValid() {
		return []string{"State must be either draft or published"}
	}
	return nil
}

func appendNameErrors(errs []string, field, value string) []string {
	switch {
	case value == "":
		errs = append(errs, field+" is required")
	case utf8.RuneCountInString(value) < minNameLength:
		errs = append(errs, fmt.Sprintf("%s must be at least %d characters long", field, minNameLength))
	case utf8.RuneCountInString(value) > maxNameLength:
		errs = append(errs, fmt.Sprintf("%s cannot exceed %d characters", field, maxNameLength))
	}
	return errs
}

func appendEmailErrors(errs []string, value string, required bool) []string {
	switch {
	case value == "":
		if required {
			errs = append(errs, "Email is required")
		}
	case !emailPattern.MatchString(value):
		errs = append(errs, "Please provide a valid email address")
	}
	return errs
}

func appendTitleErrors(errs []string, value string, required bool) []string {
	switch {
	case value == "":
		if required {
			errs = append(errs, "Title is required")
		}
	case utf8.RuneCountInString(value) < minTitleLength:
		errs = append(errs, fmt.Sprintf("Title must be at least %d characters long", minTitleLength))
	case utf8.RuneCountInString(value) > maxTitleLength:
		errs = append(errs, fmt.Sprintf("Title cannot exceed %d characters", maxTitleLength))
	}
	return errs
}

func appendDescriptionErrors(errs []string, value string) []string {
	if utf8.RuneCountInString(value) > maxDescriptionLength {
		errs = append(errs, fmt.Sprintf("Description cannot exceed %d characters", maxDescriptionLength))
	}
	return errs
}

func appendBodyErrors(errs []string, value string, required bool) []string {
	switch {
	case value == "":
		if required {
			errs = append(errs, "Body is required")
		}
	case utf8.RuneCountInString(value) < minBodyLength:
		errs = append(errs, fmt.Sprintf("Body must be at least %d characters long", minBodyLength))
	}
	return errs
}

func appendTagErrors(errs []string, tags []string) []string {
	if len(tags) > maxTags {
		errs = append(errs, fmt.Sprintf("Cannot have more than %d tags", maxTags))
	}
	for _, tag := range tags {
		if utf8.RuneCountInString(tag) < minTagLength {
			errs = append(errs, fmt.Sprintf("Each tag must be at least %d characters long", minTagLength))
			break
		}
	}
	for _, tag := range tags {
		if utf8.RuneCountInString(tag) > maxTagLength {
			errs = append(errs, fmt.Sprintf("Each tag cannot exceed %d characters", maxTagLength))
			break
		}
	}
	return errs
}
