package textproc

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanEmptyInput(t *testing.T) {
	assert.Equal(t, "", Clean(""))
	assert.Equal(t, "", Clean("   \n\t  "))
}

func TestCleanUnicodeNormalization(t *testing.T) {
	assert.Equal(t, "Juan's \"Form\"", Clean("Juan’s “Form”"))
	assert.Equal(t, "2021-12345", Clean("2021–12345"))
	assert.Equal(t, "a b", Clean("a b"))
}

func TestCleanWhitespacePreservesLineBreaks(t *testing.T) {
	got := Clean("General   Weighted  Average\n\n\n\nStudent Record")
	assert.Equal(t, "General Weighted Average\n\nStudent Record", got)
}

func TestCleanPunctuationSpacing(t *testing.T) {
	assert.Equal(t, "GWA: 1.75", Clean("GWA : 1 . 75"))
	assert.Equal(t, "2021-12345", Clean("2021 - 12345"))
}

func TestCleanHyphenLineBreakJoin(t *testing.T) {
	got := Clean("College of Engi-\nneering")
	assert.Equal(t, "College of Engineering", got)
}

func TestCleanLabelCanonicalization(t *testing.T) {
	assert.Equal(t, "Student No. 2021-12345", Clean("Student No : 2021-12345"))
	assert.Equal(t, "Barangay Krus na Ligas", Clean("Brgy. Krus na Ligas"))
	assert.Equal(t, "Barangay Malanday", Clean("Bgy Malanday"))
	assert.Equal(t, "PHP 120,000.00", Clean("Php 120,000.00"))
}

func TestCleanNeverPanicsOnNoise(t *testing.T) {
	for _, s := range []string{"\x00\x01", "----", "…—–", "a\r\nb\rc"} {
		assert.NotPanics(t, func() { Clean(s) })
	}
}
