package models

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEstimateReadingTime(t *testing.T) {
	tests := []struct {
		name string
		body string
		want int64
	}{
		{name: "empty body", body: "", want: 0},
		{name: "whitespace only", body: "   \n\t  ", want: 0},
		{name: "single word", body: "hello", want: 1},
		{name: "exactly one minute", body: strings.Repeat("word ", 200), want: 1},
		{name: "just over one minute", body: strings.Repeat("word ", 201), want: 2},
		{name: "two minutes", body: strings.Repeat("word ", 400), want: 2},
		{name: "irregular whitespace", body: "one\n\ntwo\tthree   four", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EstimateReadingTime(tt.body))
		})
	}
}

func TestNormalizeTags(t *testing.T) {
	tests := []struct {
		name string
		tags []string
		want []string
	}{
		{name: "nil input", tags: nil, want: []string{}},
		{name: "already normalized", tags: []string{"go", "sql"}, want: []string{"go", "sql"}},
		{name: "mixed case and padding", tags: []string{" Go ", "SQL"}, want: []string{"go", "sql"}},
		{name: "empty entries dropped", tags: []string{"go", "", "   "}, want: []string{"go"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeTags(tt.tags))
		})
	}
}

func TestBlogStateIsValid(t *testing.T) {
	assert.True(t, StateDraft.IsValid())
	assert.True(t, StatePublished.IsValid())
	assert.False(t, BlogState("archived").IsValid())
	assert.False(t, BlogState("").IsValid())
}

func TestBlogUpdateIsEmpty(t *testing.T) {
	assert.True(t, BlogUpdate{BlogID: 1}.IsEmpty())

	title := "a new title"
	assert.False(t, BlogUpdate{BlogID: 1, Title: &title}.IsEmpty())

	state := StatePublished
	assert.False(t, BlogUpdate{BlogID: 1, State: &state}.IsEmpty())
}

func TestBlogFilterOffset(t *testing.T) {
	assert.Equal(t, uint64(0), BlogFilter{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, uint64(20), BlogFilter{Page: 2, Limit: 20}.Offset())
	assert.Equal(t, uint64(0), BlogFilter{Page: 0, Limit: 20}.Offset())
}
