package tuple

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithConstructors(t *testing.T) {
	p := With2("a", 1)
	assert.Equal(t, "a", p.F0)
	assert.Equal(t, 1, p.F1)

	q := With3(1, 2.5, true)
	assert.Equal(t, 1, q.F0)
	assert.Equal(t, 2.5, q.F1)
	assert.True(t, q.F2)

	r := With4(1, 2, 3, 4)
	assert.Equal(t, T4[int, int, int, int]{1, 2, 3, 4}, r)
}

func TestComparableWhenElementsAre(t *testing.T) {
	assert.Equal(t, With2(1, "x"), With2(1, "x"))
	assert.NotEqual(t, With2(1, "x"), With2(2, "x"))
}
