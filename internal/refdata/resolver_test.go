package refdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveCode(t *testing.T) {
	r := NewResolver()
	code, name, ok := r.Resolve("COE")
	assert.True(t, ok)
	assert.Equal(t, "COE", code)
	assert.Equal(t, "College of Engineering", name)

	// case and punctuation insensitive
	code, _, ok = r.Resolve("c.o.e.")
	assert.True(t, ok)
	assert.Equal(t, "COE", code)
}

func TestResolveFullName(t *testing.T) {
	r := NewResolver()
	code, _, ok := r.Resolve("College of Engineering")
	assert.True(t, ok)
	assert.Equal(t, "COE", code)

	code, _, ok = r.Resolve("bachelor of science in computer science")
	assert.True(t, ok)
	assert.Equal(t, "BSCS", code)
}

func TestResolveFuzzyFallback(t *testing.T) {
	r := NewResolver()
	// one-character OCR misread of the full name
	code, name, ok := r.Resolve("Collage of Engineering")
	assert.True(t, ok)
	assert.Equal(t, "COE", code)
	assert.Equal(t, "College of Engineering", name)
}

func TestResolveUnknown(t *testing.T) {
	r := NewResolver()
	_, _, ok := r.Resolve("Hogwarts School of Witchcraft")
	assert.False(t, ok)
	_, _, ok = r.Resolve("")
	assert.False(t, ok)
}

func TestSameEntity(t *testing.T) {
	r := NewResolver()
	assert.True(t, r.SameEntity("COE", "College of Engineering"))
	assert.True(t, r.SameEntity("BSCS", "Bachelor of Science in Computer Science"))
	assert.False(t, r.SameEntity("COE", "College of Science"))
	assert.False(t, r.SameEntity("COE", "something unrecognizable"))
}
