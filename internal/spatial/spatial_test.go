package spatial

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRectNormalizes(t *testing.T) {
	tests := []struct {
		name string
		a, b Point
		want Rect
	}{
		{
			name: "already ordered",
			a:    Point{Latitude: 0, Longitude: 0},
			b:    Point{Latitude: 10, Longitude: 10},
			want: Rect{Left: 0, Right: 10, Bottom: 0, Top: 10},
		},
		{
			name: "corners swapped",
			a:    Point{Latitude: 10, Longitude: 10},
			b:    Point{Latitude: 0, Longitude: 0},
			want: Rect{Left: 0, Right: 10, Bottom: 0, Top: 10},
		},
		{
			name: "mixed corners",
			a:    Point{Latitude: 10, Longitude: -5},
			b:    Point{Latitude: -10, Longitude: 5},
			want: Rect{Left: -5, Right: 5, Bottom: -10, Top: 10},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewRect(tt.a, tt.b))
		})
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(Point{Latitude: 0, Longitude: 0}, Point{Latitude: 10, Longitude: 10})

	tests := []struct {
		name string
		p    Point
		want bool
	}{
		{"interior", Point{Latitude: 5, Longitude: 5}, true},
		{"bottom left corner", Point{Latitude: 0, Longitude: 0}, true},
		{"top right corner", Point{Latitude: 10, Longitude: 10}, true},
		{"on left edge", Point{Latitude: 5, Longitude: 0}, true},
		{"on top edge", Point{Latitude: 10, Longitude: 5}, true},
		{"just outside right", Point{Latitude: 5, Longitude: 10.0001}, false},
		{"just below bottom", Point{Latitude: -0.0001, Longitude: 5}, false},
		{"far away", Point{Latitude: -45, Longitude: 170}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Contains(tt.p))
		})
	}
}
