package report

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"git.lost.host/meutraa/omfp/internal/history"
	"git.lost.host/meutraa/omfp/internal/parser"
	"git.lost.host/meutraa/omfp/internal/render"
	"git.lost.host/meutraa/omfp/internal/testdata"
	"git.lost.host/meutraa/omfp/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func maniaReport(t *testing.T) Report {
	t.Helper()
	p := &parser.DefaultParser{}
	p.ParseContent(testdata.Mania())
	return Build(p, Options{
		File:     "mania.osu",
		Content:  testdata.Mania(),
		Timings:  []time.Duration{30 * time.Microsecond, 10 * time.Microsecond, 20 * time.Microsecond},
		Keys:     4,
		Examples: 3,
		Window:   1000,
		History: []history.Run{
			{Duration: 12 * time.Microsecond},
			{Duration: 8 * time.Microsecond},
		},
	})
}

func TestBuild(t *testing.T) {
	r := maniaReport(t)

	assert.Equal(t, history.Hash(testdata.Mania()), r.Sum)
	assert.Equal(t, len(testdata.Mania()), r.Size)
	assert.Equal(t, uint8(3), r.Mode)
	assert.Equal(t, 6, r.Objects)
	assert.Equal(t, 4, r.Points)
	assert.Equal(t, 2, r.Sustains)
	// 1000 has two lanes pressed together
	assert.Equal(t, 5, r.Rows)
	assert.Zero(t, r.Skipped)

	assert.Equal(t, Timing{Iterations: 3, BestNs: 10000, MeanNs: 20000}, r.Timing)
	require.NotNil(t, r.Previous)
	assert.Equal(t, 8*time.Microsecond, r.Previous.Best())

	require.Len(t, r.First, 3)
	assert.Nil(t, r.First[0].EndTime)
	require.NotNil(t, r.First[2].EndTime)
	assert.Equal(t, int32(1750), *r.First[2].EndTime)
	assert.Equal(t, "sustain", r.First[2].Kind)

	require.Len(t, r.Holds, 2)
	assert.Equal(t, int32(3500), *r.Holds[1].EndTime)

	assert.Equal(t, []Bucket{{Start: 1000, Count: 4}, {Start: 2000, Count: 2}}, r.Density)
}

func TestBuildWithoutHistory(t *testing.T) {
	p := &parser.DefaultParser{}
	r := Build(p, Options{Keys: 4, Window: 1000})
	assert.Nil(t, r.Previous)
	assert.Zero(t, r.Timing.Iterations)
	assert.Empty(t, r.First)
	assert.Empty(t, r.Density)
}

func TestEncodeYaml(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, "yaml", []Report{maniaReport(t)}))

	var out []Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, 6, out[0].Objects)
	assert.Contains(t, buf.String(), "end_time: 1750")
}

func TestEncodeJson(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, "json", []Report{maniaReport(t)}))

	var out []map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, float64(3), out[0]["mode"])
	first := out[0]["first"].([]interface{})
	_, hasEnd := first[0].(map[string]interface{})["end_time"]
	assert.False(t, hasEnd)
}

func TestEncodeUnknown(t *testing.T) {
	assert.Error(t, Encode(&bytes.Buffer{}, "xml", nil))
}

func TestRender(t *testing.T) {
	var buf bytes.Buffer
	r := &render.DefaultRenderer{}
	r.Init(&buf)
	rep := maniaReport(t)
	Render(r, &theme.DefaultTheme{}, &rep)
	require.NoError(t, r.Flush())

	out := buf.String()
	assert.Contains(t, out, "mania.osu")
	assert.Contains(t, out, "Mode:  3")
	assert.Contains(t, out, "Holds:  2")
	assert.Contains(t, out, "Previous:  8µs best")
	assert.Contains(t, out, "Density per 1s:")
	assert.NotContains(t, out, "\033[")
	for _, l := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, len([]rune(l)), 80, l)
	}
}
