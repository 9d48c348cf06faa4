//go:build unit

package patch_test

import (
	"testing"

	"court-booking/internal/pkg/patch"

	"github.com/stretchr/testify/assert"
)

func TestCoalesce(t *testing.T) {
	lang := "ar"
	assert.Equal(t, "ar", patch.Coalesce(&lang, "en"))
	assert.Equal(t, "en", patch.Coalesce(nil, "en"))
	assert.Equal(t, 0, patch.Coalesce[int](nil, 0))
}

func TestFirstNonBlank(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   string
	}{
		{name: "first value wins", values: []string{"https://a.example", "https://b.example"}, want: "https://a.example"},
		{name: "blank values are skipped", values: []string{"", "   ", "https://b.example"}, want: "https://b.example"},
		{name: "result is trimmed", values: []string{"  https://a.example "}, want: "https://a.example"},
		{name: "all blank", values: []string{"", " "}, want: ""},
		{name: "no values", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, patch.FirstNonBlank(tt.values...))
		})
	}
}
