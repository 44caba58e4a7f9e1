package systems

import (
	"testing"

	"github.com/cozypark/cozypark/shared/parkmap"
	"github.com/stretchr/testify/assert"
)

func TestParkCollision(t *testing.T) {
	c := NewParkCollision(parkmap.Default())

	tests := []struct {
		name string
		x, y int
		want bool
	}{
		{"spawn point", 2200, 1300, true},
		{"top left corner", 0, 0, true},
		{"off the left edge", -1, 100, false},
		{"off the top edge", 100, -15, false},
		{"off the right edge", 2496 - 63, 900, false},
		{"bottom edge is fractional", 100, 1440, false},
		{"just above the bottom", 100, 1433, true},
		{"in the lower lake", 1800, 400, false},
		{"in the upper lake", 2200, 100, false},
		{"touching the lake edge", 1680, 400, true},
		{"one pixel into the lake", 1681, 400, false},
		{"on the bench", 1900, 100, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Permits(tt.x, tt.y))
		})
	}
}
