package window

import (
	"testing"
	"time"

	"github.com/vovakirdan/sanddrop/internal/core"
)

func TestFillRGBA(t *testing.T) {
	g := core.NewGrid(2, 2, core.ColorEmpty)
	g.SetColor(1, 0, core.ColorBrown)

	buf := make([]byte, 2*2*4)
	fillRGBA(buf, g)

	if buf[0] != 0xef || buf[1] != 0xef || buf[2] != 0xef || buf[3] != 0xff {
		t.Errorf("pixel 0 = %v, want efefef opaque", buf[0:4])
	}
	if buf[4] != 0x7b || buf[5] != 0x48 || buf[6] != 0x1e {
		t.Errorf("pixel 1 = %v, want 7b481e", buf[4:8])
	}
}

func TestFrameDivider(t *testing.T) {
	d := newFrameDivider(3)
	var fired []int
	for i := 1; i <= 9; i++ {
		if d.Step() {
			fired = append(fired, i)
		}
	}
	if len(fired) != 3 || fired[0] != 3 || fired[2] != 9 {
		t.Errorf("fired on %v, want [3 6 9]", fired)
	}

	every := newFrameDivider(0)
	if !every.Step() || !every.Step() {
		t.Error("divider of 0 should fire every frame")
	}
}

func TestCellAt(t *testing.T) {
	tests := []struct {
		px, py, scale int
		want          core.Coord
	}{
		{0, statusHeight, 10, core.C(0, 0)},
		{19, statusHeight + 9, 10, core.C(1, 0)},
		{5, 0, 10, core.C(0, -2)},
		{-1, statusHeight, 10, core.C(-1, 0)},
	}
	for _, tt := range tests {
		if got := cellAt(tt.px, tt.py, tt.scale); got != tt.want {
			t.Errorf("cellAt(%d,%d,%d) = %v, want %v", tt.px, tt.py, tt.scale, got, tt.want)
		}
	}
}

func TestOptionsInterval(t *testing.T) {
	o := Options{FrameRate: 60, TickEvery: 3}
	if got := o.interval(); got != 50*time.Millisecond {
		t.Errorf("interval = %v, want 50ms", got)
	}
}
