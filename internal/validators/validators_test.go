package validators

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-blog-keeper/models"
)

func TestValidateRegister(t *testing.T) {
	tests := []struct {
		name    string
		request models.RegisterRequest
		want    []string
	}{
		{
			name: "valid request",
			request: models.RegisterRequest{
				FirstName: "John", LastName: "Doe",
				Email: "john@example.com", Password: "secret1",
			},
			want: nil,
		},
		{
			name:    "everything missing",
			request: models.RegisterRequest{},
			want: []string{
				"First name is required",
				"Last name is required",
				"Email is required",
				"Password is required",
			},
		},
		{
			name: "first name too short",
			request: models.RegisterRequest{
				FirstName: "J", LastName: "Doe",
				Email: "john@example.com", Password: "secret1",
			},
			want: []string{"First name must be at least 2 characters long"},
		},
		{
			name: "last name too long",
			request: models.RegisterRequest{
				FirstName: "John", LastName: strings.Repeat("a", 51),
				Email: "john@example.com", Password: "secret1",
			},
			want: []string{"Last name cannot exceed 50 characters"},
		},
		{
			name: "bad email",
			request: models.RegisterRequest{
				FirstName: "John", LastName: "Doe",
				Email: "not-an-email", Password: "secret1",
			},
			want: []string{"Please provide a valid email address"},
		},
		{
			name: "short password",
			request: models.RegisterRequest{
				FirstName: "John", LastName: "Doe",
				Email: "john@example.com", Password: "12345",
			},
			want: []string{"Password must be at least 6 characters long"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateRegister(tt.request))
		})
	}
}

func TestValidateLogin(t *testing.T) {
	assert.Nil(t, ValidateLogin(models.LoginRequest{Email: "john@example.com", Password: "secret1"}))

	errs := ValidateLogin(models.LoginRequest{})
	assert.Equal(t, []string{"Email is required", "Password is required"}, errs)

	errs = ValidateLogin(models.LoginRequest{Email: "broken", Password: "secret1"})
	assert.Equal(t, []string{"Please provide a valid email address"}, errs)
}

func TestValidateUpdateProfile(t *testing.T) {
	// all fields optional
	assert.Nil(t, ValidateUpdateProfile(models.UpdateProfileRequest{}))

	assert.Nil(t, ValidateUpdateProfile(models.UpdateProfileRequest{FirstName: "Jane"}))

	errs := ValidateUpdateProfile(models.UpdateProfileRequest{FirstName: "J", Email: "broken"})
	assert.Equal(t, []string{
		"First name must be at least 2 characters long",
		"Please provide a valid email address",
	}, errs)
}

func TestValidateCreateBlog(t *testing.T) {
	valid := models.CreateBlogRequest{
		Title: "A valid title",
		Body:  "This body is long enough to pass validation.",
		Tags:  []string{"go", "sql"},
	}
	assert.Nil(t, ValidateCreateBlog(valid))

	tests := []struct {
		name    string
		request models.CreateBlogRequest
		want    []string
	}{
		{
			name:    "missing everything",
			request: models.CreateBlogRequest{},
			want:    []string{"Title is required", "Body is required"},
		},
		{
			name:    "title too short",
			request: models.CreateBlogRequest{Title: "abcd", Body: valid.Body},
			want:    []string{"Title must be at least 5 characters long"},
		},
		{
			name:    "title too long",
			request: models.CreateBlogRequest{Title: strings.Repeat("a", 201), Body: valid.Body},
			want:    []string{"Title cannot exceed 200 characters"},
		},
		{
			name: "description too long",
			request: models.CreateBlogRequest{
				Title: valid.Title, Description: strings.Repeat("a", 501), Body: valid.Body,
			},
			want: []string{"Description cannot exceed 500 characters"},
		},
		{
			name:    "body too short",
			request: models.CreateBlogRequest{Title: valid.Title, Body: "too short"},
			want:    []string{"Body must be at least 10 characters long"},
		},
		{
			name: "too many tags",
			request: models.CreateBlogRequest{
				Title: valid.Title, Body: valid.Body,
				Tags: []string{"t1", "t2", "t3", "t4", "t5", "t6", "t7", "t8", "t9", "t10", "t11"},
			},
			want: []string{"Cannot have more than 10 tags"},
		},
		{
			name: "tag too short",
			request: models.CreateBlogRequest{
				Title: valid.Title, Body: valid.Body, Tags: []string{"a"},
			},
			want: []string{"Each tag must be at least 2 characters long"},
		},
		{
			name: "tag too long",
			request: models.CreateBlogRequest{
				Title: valid.Title, Body: valid.Body, Tags: []string{strings.Repeat("a", 31)},
			},
			want: []string{"Each tag cannot exceed 30 characters"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ValidateCreateBlog(tt.request))
		})
	}
}

func TestValidateUpdateBlog(t *testing.T) {
	errs := ValidateUpdateBlog(models.UpdateBlogRequest{})
	require.Equal(t, []string{"At least one field must be provided"}, errs)

	title := "A new valid title"
	assert.Nil(t, ValidateUpdateBlog(models.UpdateBlogRequest{Title: &title}))

	shortTitle := "abc"
	errs = ValidateUpdateBlog(models.UpdateBlogRequest{Title: &shortTitle})
	assert.Equal(t, []string{"Title must be at least 5 characters long"}, errs)

	badState := "archived"
	errs = ValidateUpdateBlog(models.UpdateBlogRequest{State: &badState})
	assert.Equal(t, []string{"State must be either draft or published"}, errs)

	goodState := "published"
	assert.Nil(t, ValidateUpdateBlog(models.UpdateBlogRequest{State: &goodState}))
}

func TestValidateUpdateState(t *testing.T) {
	assert.Nil(t, ValidateUpdateState(models.UpdateStateRequest{State: "draft"}))
	assert.Nil(t, ValidateUpdateState(models.UpdateStateRequest{State: "published"}))
	assert.Equal(t,
		[]string{"State must be either draft or published"},
		ValidateUpdateState(models.UpdateStateRequest{State: "archived"}),
	)
	assert.Equal(t,
		[]string{"State must be either draft or published"},
		ValidateUpdateState(models.UpdateStateRequest{}),
	)
}
