package objects

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/fdl/pkg/errors"
	"github.com/arthur-debert/fdl/pkg/state"
)

func TestBuiltinRegistryTypes(t *testing.T) {
	reg := NewBuiltinRegistry(nil)

	for _, tag := range []string{"time", "date", "date_words", "day", "time_elapsed", "time_ago", "time_until", "type"} {
		_, err := reg.Lookup(tag)
		assert.NoError(t, err, tag)
	}
}

func TestLookupUnknownType(t *testing.T) {
	reg := NewBuiltinRegistry(nil)

	_, err := reg.Lookup("weather")

	assert.True(t, errors.IsErrorCode(err, errors.ErrUnsupportedType))
}

type fakeProcessor struct{ tags []string }

func (f fakeProcessor) Types() []string { return f.tags }
func (fakeProcessor) Apply(string, string, *state.State) (string, error) {
	return "", nil
}

func TestOverlappingClaimRejected(t *testing.T) {
	reg := NewRegistry()

	require.NoError(t, reg.Register(fakeProcessor{tags: []string{"time"}}))
	err := reg.Register(fakeProcessor{tags: []string{"time", "other"}})

	assert.True(t, errors.IsErrorCode(err, errors.ErrAlreadyExists))
}

func TestKindName(t *testing.T) {
	tests := []struct {
		value interface{}
		want  string
	}{
		{nil, "nil"},
		{true, "bool"},
		{"hi", "string"},
		{42, "int"},
		{int64(42), "int"},
		{3.14, "float"},
		{[]string{"a"}, "list"},
		{map[string]int{"a": 1}, "map"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, KindName(tt.value))
	}
}

func TestTypeProcessorConsumesValue(t *testing.T) {
	p := TypeProcessor{}
	st := newTimeState(3.5, "after")

	got, err := p.Apply("type", "", st)
	require.NoError(t, err)
	assert.Equal(t, "float", got)

	v, err := st.NextValue()
	require.NoError(t, err)
	assert.Equal(t, "after", v)
}

func TestTypeProcessorExhausted(t *testing.T) {
	p := TypeProcessor{}
	st := newTimeState()

	_, err := p.Apply("type", "", st)

	assert.True(t, errors.IsErrorCode(err, errors.ErrValuesExhausted))
}

func TestBuiltinRegistryDefaultsClock(t *testing.T) {
	reg := NewBuiltinRegistry(func() time.Time { return time.Unix(anchorEpoch, 0) })

	p, err := reg.Lookup("day")
	require.NoError(t, err)

	got, err := p.Apply("day", "", newTimeState())
	require.NoError(t, err)
	assert.Equal(t, "Tuesday", got)
}
