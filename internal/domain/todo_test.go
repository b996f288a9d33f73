package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Category
		wantErr  bool
	}{
		{
			name:     "game",
			input:    "game",
			expected: CategoryGame,
		},
		{
			name:     "movie",
			input:    "movie",
			expected: CategoryMovie,
		},
		{
			name:     "action",
			input:    "action",
			expected: CategoryAction,
		},
		{
			name:    "unknown category",
			input:   "music",
			wantErr: true,
		},
		{
			name:    "case sensitive",
			input:   "Game",
			wantErr: true,
		},
		{
			name:    "empty",
			input:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCategory(tt.input)

			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidCategory)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.expected, got)
			}
		})
	}
}

func TestCategory_Rank(t *testing.T) {
	assert.Equal(t, 0, CategoryGame.Rank())
	assert.Equal(t, 1, CategoryMovie.Rank())
	assert.Equal(t, 2, CategoryAction.Rank())
	assert.Equal(t, len(Categories), Category("music").Rank())
}
