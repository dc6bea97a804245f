package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParagraphs(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single line", "A", "<p>A</p>"},
		{"appended line", "A\nB", "<p>A</p><p>B</p>"},
		{"blank line kept", "A\n\nB", "<p>A</p><p></p><p>B</p>"},
		{"windows line endings", "A\r\nB", "<p>A</p><p>B</p>"},
		{"empty", "", "<p></p>"},
		{"markup is escaped", "<b>bold</b>", "<p>&lt;b&gt;bold&lt;/b&gt;</p>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Paragraphs(tt.in))
		})
	}
}

func TestCoverURL(t *testing.T) {
	assert.Equal(t, "https://covers.openlibrary.org/b/id/8231856-M.jpg", CoverURL("8231856"))
	assert.Equal(t, "https://covers.openlibrary.org/b/id/-M.jpg", CoverURL(""))
}
