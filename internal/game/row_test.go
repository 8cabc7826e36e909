package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var laneTests = map[[2]int]int{
	{64, 4}:  0,
	{192, 4}: 1,
	{320, 4}: 2,
	{448, 4}: 3,
	{0, 4}:   0,
	{511, 4}: 3,
	{36, 7}:  0,
	{475, 7}: 6,
	{256, 1}: 0,
}

func TestLane(t *testing.T) {
	for in, expected := range laneTests {
		out, err := Lane(int32(in[0]), in[1])
		if nil != err || out != expected {
			t.Log("in      ", in)
			t.Log("out     ", out, err)
			t.Log("expected", expected)
			t.Fail()
		}
	}
}

func TestLaneErrors(t *testing.T) {
	for _, in := range [][2]int{{512, 4}, {-1, 4}, {64, 0}, {64, MaxKeys + 1}} {
		if _, err := Lane(int32(in[0]), in[1]); nil == err {
			t.Errorf("Lane(%v, %v) error = nil, want an error", in[0], in[1])
		}
	}
}

func TestRows(t *testing.T) {
	objects := []HitObject{
		{X: 448, Time: 2000, Kind: Sustain, EndTime: 2500},
		{X: 64, Time: 1000},
		{X: 192, Time: 1000},
		{X: 600, Time: 1500},
		{X: 320, Time: 2000},
		{X: 64, Time: 1250},
	}
	rows, skipped := Rows(objects, 4)
	assert.Equal(t, 1, skipped)
	assert.Equal(t, []Row{
		{Lanes: 0b0011, Time: 1},
		{Lanes: 0b0001, Time: 1.25},
		{Lanes: 0b1100, Time: 2},
	}, rows)
}

func TestRowsEmpty(t *testing.T) {
	rows, skipped := Rows(nil, 4)
	assert.Empty(t, rows)
	assert.Zero(t, skipped)

	rows, skipped = Rows([]HitObject{{X: 9999}}, 4)
	assert.Empty(t, rows)
	assert.Equal(t, 1, skipped)
}

func TestHitObjectEnd(t *testing.T) {
	end, ok := HitObject{Kind: Sustain, EndTime: 3500}.End()
	assert.True(t, ok)
	assert.Equal(t, int32(3500), end)

	end, ok = HitObject{Kind: Point, EndTime: 3500}.End()
	assert.False(t, ok)
	assert.Zero(t, end)

	assert.Equal(t, "point", Point.String())
	assert.Equal(t, "sustain", Sustain.String())
}
