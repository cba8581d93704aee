package document

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestBufferPutClipsAndPads(t *testing.T) {
	b := NewBuffer(10, 2)
	b.Put(0, 0, 4, "abcdefgh")
	b.Put(6, 0, 10, "xyz12345")
	b.Put(0, 5, 3, "off screen")
	b.Put(12, 1, 3, "off the right")

	assert.Equal(t, "abcd  xyz1", b.Line(0))
	assert.Equal(t, "          ", b.Line(1))
	assert.Equal(t, "", b.Line(7))
}

func TestBufferOverlappingSpanReplaces(t *testing.T) {
	b := NewBuffer(8, 1)
	b.Put(0, 0, 4, "aaaa")
	b.Put(4, 0, 4, "bbbb")
	b.Put(2, 0, 4, "cc")

	assert.Equal(t, "  cc    ", b.Line(0))
}

func TestBufferNegativeX(t *testing.T) {
	b := NewBuffer(5, 1)
	b.Put(-2, 0, 4, "abcd")
	assert.Equal(t, "ab   ", b.Line(0))
}

func TestBufferKeepsStyledSpansIntact(t *testing.T) {
	b := NewBuffer(12, 1)
	styled := lipgloss.NewStyle().Bold(true).Render("bold text here")
	b.Put(1, 0, 6, styled)
	b.Put(8, 0, 4, "end")

	line := b.Line(0)
	assert.Equal(t, 12, ansi.StringWidth(line))
	assert.Equal(t, " bold t end ", ansi.Strip(line))
}

func TestBufferSizeAndString(t *testing.T) {
	b := NewBuffer(3, 2)
	w, h := b.Size()
	assert.Equal(t, 3, w)
	assert.Equal(t, 2, h)
	assert.Equal(t, Area{Width: 3, Height: 2}, b.Area())

	b.Put(0, 1, 3, "hi")
	assert.Equal(t, "   \nhi ", b.String())

	empty := NewBuffer(-1, -1)
	assert.Empty(t, empty.Lines())
}
