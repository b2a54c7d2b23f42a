package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPosition_ZeroValueIsOrigin(t *testing.T) {
	var p Position
	assert.Equal(t, NewPosition(0, 0), p)
}

func TestPosition_AddSub(t *testing.T) {
	tests := []struct {
		name   string
		p      Position
		offset Position
		want   Position
	}{
		{"Zero offset", NewPosition(3, 4), Position{}, NewPosition(3, 4)},
		{"Positive offset", NewPosition(1, 2), NewPosition(5, 7), NewPosition(6, 9)},
		{"Negative offset", NewPosition(10, 10), NewPosition(-4, -1), NewPosition(6, 9)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.p.Add(tt.offset)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.offset, got.Sub(tt.p))
		})
	}
}

func TestPosition_Before(t *testing.T) {
	tests := []struct {
		name string
		a, b Position
		want bool
	}{
		{"Earlier row wins over column", NewPosition(9, 0), NewPosition(0, 1), true},
		{"Later row", NewPosition(0, 2), NewPosition(9, 1), false},
		{"Same row smaller column", NewPosition(1, 5), NewPosition(2, 5), true},
		{"Equal", NewPosition(2, 2), NewPosition(2, 2), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.a.Before(tt.b))
		})
	}
}

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "(3,-1)", NewPosition(3, -1).String())
}
