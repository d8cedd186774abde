package assistant

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "plain answer untouched",
			in:   "• Yöntem üç adımdan oluşur.\n• Kaynak: paper1.pdf",
			want: "• Yöntem üç adımdan oluşur.\n• Kaynak: paper1.pdf",
		},
		{
			name: "citation tokens removed",
			in:   "Sonuçlar turn0file makalede turn1file verilmiştir filecite.",
			want: "Sonuçlar  makalede  verilmiştir .",
		},
		{
			name: "private use glyphs removed",
			in:   "Temel katkı budur.",
			want: "Temel katkı budur.",
		},
		{
			name: "surrounding whitespace trimmed",
			in:   "  \n cevap \n ",
			want: "cevap",
		},
		{
			name: "refusal passes through intact",
			in:   Refusal,
			want: Refusal,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Sanitize(tt.in))
		})
	}
}
