package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractNumberRU(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input  string
		want   float64
		wantOK bool
	}{
		{input: "250 ккал", want: 250, wantOK: true},
		{input: "Белки: 12,5 г", want: 12.5, wantOK: true},
		{input: "1 234,50 ₽", want: 1234.5, wantOK: true},
		{input: "1 234", want: 1234, wantOK: true},
		{input: "-3.5", want: -3.5, wantOK: true},
		{input: "от 100 до 200", want: 100, wantOK: true},
		{input: "нет данных", wantOK: false},
		{input: "   ", wantOK: false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()
			got, ok := ExtractNumberRU(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}
