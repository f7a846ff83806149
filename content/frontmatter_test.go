package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bookclub-site/model"
)

func TestSplitFrontmatter(t *testing.T) {
	raw := []byte(`---
slug: "dune"
title: "Dune"
year: 1965
genre:
  - "Science fiction"
---

First paragraph.

Second paragraph.
`)

	book := &model.Book{}
	body, err := splitFrontmatter(raw, book)
	require.NoError(t, err)

	assert.Equal(t, "dune", book.Slug)
	assert.Equal(t, "Dune", book.Title)
	assert.Equal(t, model.FlexString("1965"), book.Year)
	assert.Equal(t, []string{"Science fiction"}, book.Genre)
	assert.Equal(t, "First paragraph.\n\nSecond paragraph.", body)
}

func TestSplitFrontmatterCRLF(t *testing.T) {
	raw := []byte("---\r\nslug: \"x\"\r\n---\r\nbody\r\n")
	book := &model.Book{}
	body, err := splitFrontmatter(raw, book)
	require.NoError(t, err)
	assert.Equal(t, "x", book.Slug)
	assert.Equal(t, "body", body)
}

func TestSplitFrontmatterErrors(t *testing.T) {
	tests := map[string]string{
		"missing opening fence": "slug: x\n---\n",
		"unterminated block":    "---\nslug: x\n",
		"empty file":            "",
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := splitFrontmatter([]byte(raw), &model.Book{})
			assert.Error(t, err)
		})
	}
}

func TestSplitFrontmatterEmptyBody(t *testing.T) {
	book := &model.Book{}
	body, err := splitFrontmatter([]byte("---\nslug: \"x\"\n---\n"), book)
	require.NoError(t, err)
	assert.Empty(t, body)
}
