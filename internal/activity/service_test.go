package activity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizePage(t *testing.T) {
	limit, offset := sanitizePage(-1, -5)
	assert.Equal(t, DefaultLimit, limit)
	assert.Equal(t, DefaultOffset, offset)

	limit, offset = sanitizePage(25, 50)
	assert.Equal(t, 25, limit)
	assert.Equal(t, 50, offset)
}

// An unset limit is the zero value; it must become the default page size,
// never a literal LIMIT 0.
func TestSanitizePageUnsetLimit(t *testing.T) {
	limit, offset := sanitizePage(0, 0)
	assert.Equal(t, DefaultLimit, limit)
	assert.Equal(t, DefaultOffset, offset)
}

func TestToTextArrayNeverNil(t *testing.T) {
	arr := toTextArray(nil)
	assert.NotNil(t, arr)
	assert.Empty(t, arr)

	arr = toTextArray([]string{"alice", "bob"})
	assert.Equal(t, []string{"alice", "bob"}, []string(arr))
}
