package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCanvas(t *testing.T) *Canvas {
	t.Helper()
	fonts, err := DefaultFonts()
	require.NoError(t, err)
	c := newCanvas(800, 200, fonts)
	c.setFont(32, Bold)
	require.NoError(t, c.Err())
	return c
}

func TestCanvas_Ellipsize(t *testing.T) {
	c := newTestCanvas(t)
	const maxW = 400.0

	t.Run("fitting text is unchanged", func(t *testing.T) {
		assert.Equal(t, "Asha Rao", c.ellipsize("Asha Rao", maxW))
	})

	t.Run("very long text is cut to the widest fitting prefix", func(t *testing.T) {
		long := strings.Repeat("W", 20000)
		got := c.ellipsize(long, maxW)

		require.True(t, strings.HasSuffix(got, "…"))
		prefix := strings.TrimSuffix(got, "…")
		assert.True(t, strings.HasPrefix(long, prefix))

		w, _ := c.dc.MeasureString(got)
		assert.LessOrEqual(t, w, maxW)

		// one more rune would no longer fit
		wider, _ := c.dc.MeasureString(prefix + "W…")
		assert.Greater(t, wider, maxW)
	})

	t.Run("nothing fits", func(t *testing.T) {
		assert.Equal(t, "", c.ellipsize("Hackathon", 1))
	})
}

func TestCanvas_WrapLines(t *testing.T) {
	c := newTestCanvas(t)
	const maxW = 300.0

	tests := []struct {
		name      string
		text      string
		maxLines  int
		wantLines int
	}{
		{name: "short", text: "Hackathon 2025", maxLines: 2, wantLines: 1},
		{name: "unbroken word", text: strings.Repeat("Robotics", 40), maxLines: 2, wantLines: 1},
		{name: "words then unbroken word", text: "Annual " + strings.Repeat("X", 200) + " Summit", maxLines: 3, wantLines: 3},
		{name: "line cap", text: strings.Repeat("campus event ", 60), maxLines: 2, wantLines: 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines := c.wrapLines(tt.text, maxW, tt.maxLines)

			assert.Len(t, lines, tt.wantLines)
			for _, line := range lines {
				w, _ := c.dc.MeasureString(line)
				assert.LessOrEqual(t, w, maxW, "line %q overflows", line)
			}
		})
	}
}
