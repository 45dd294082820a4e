package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStr(t *testing.T) {
	assert.Equal(t, "N/A", Str(nil))
	empty := ""
	assert.Equal(t, "N/A", Str(&empty))
	v := "Inbound"
	assert.Equal(t, "Inbound", Str(&v))
}

func TestCount(t *testing.T) {
	assert.Equal(t, "0", Count(nil))
	n := 42
	assert.Equal(t, "42", Count(&n))
	zero := 0
	assert.Equal(t, "0", Count(&zero))
}

func TestCount64(t *testing.T) {
	assert.Equal(t, "0", Count64(nil))
	n := int64(16777216)
	assert.Equal(t, "16777216", Count64(&n))
}

func TestScore_RoundHalfUp(t *testing.T) {
	assert.Equal(t, "87%", Score(0.873))
	assert.Equal(t, "88%", Score(0.875))
	assert.Equal(t, "0%", Score(0))
	assert.Equal(t, "100%", Score(1))
	assert.Equal(t, "51%", Score(0.505))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "0%", Percent(nil))
	v := 0.3
	assert.Equal(t, "30%", Percent(&v))
}

func TestJoin(t *testing.T) {
	assert.Equal(t, "N/A", Join(nil, "; "))
	assert.Equal(t, "N/A", Join([]string{}, "; "))
	assert.Equal(t, "a; b", Join([]string{"a", "b"}, "; "))
}

func TestList(t *testing.T) {
	assert.NotNil(t, List(nil))
	assert.Empty(t, List(nil))
	assert.Equal(t, []string{"x"}, List([]string{"x"}))
}
