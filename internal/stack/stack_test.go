package stack_test

import (
	"errors"
	"testing"

	"github.com/jcorbin/yafi/internal/stack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Stack_lifo(t *testing.T) {
	s := stack.New("data stack", 8)
	require.Equal(t, 8, s.Cap())

	for i := int32(1); i <= 8; i++ {
		require.NoError(t, s.Push(i*10), "must push #%v", i)
	}
	require.Equal(t, 8, s.Depth())
	assert.Equal(t, []int32{10, 20, 30, 40, 50, 60, 70, 80}, s.Values())

	top, err := s.Peek()
	require.NoError(t, err)
	assert.Equal(t, int32(80), top, "expected peek to see the top")
	assert.Equal(t, 8, s.Depth(), "expected peek not to pop")

	for i := int32(8); i >= 1; i-- {
		val, err := s.Pop()
		require.NoError(t, err, "must pop #%v", i)
		assert.Equal(t, i*10, val, "expected LIFO order")
	}
	assert.Equal(t, 0, s.Depth())
}

func Test_Stack_limits(t *testing.T) {
	s := stack.New("return stack", 2)
	require.NoError(t, s.Push(1))
	require.NoError(t, s.Push(2))

	err := s.Push(3)
	require.Error(t, err, "expected overflow")
	assert.True(t, errors.Is(err, stack.ErrOverflow), "expected ErrOverflow, got %v", err)
	assert.EqualError(t, err, "return stack overflow")
	assert.Equal(t, []int32{1, 2}, s.Values(), "expected overflow not to mutate")

	s.Reset()
	_, err = s.Pop()
	assert.True(t, errors.Is(err, stack.ErrUnderflow), "expected ErrUnderflow, got %v", err)
	assert.EqualError(t, err, "return stack underflow")
	_, err = s.Peek()
	assert.True(t, errors.Is(err, stack.ErrEmpty), "expected ErrEmpty, got %v", err)
	assert.Equal(t, 0, s.Depth(), "expected underflow not to mutate")
}

func Test_Stack_zeroValue(t *testing.T) {
	var s stack.Stack
	assert.Equal(t, 0, s.Cap())
	err := s.Push(1)
	assert.True(t, errors.Is(err, stack.ErrOverflow), "expected zero stack to overflow")
	assert.EqualError(t, err, "stack overflow")
}

func Test_Stack_default(t *testing.T) {
	assert.Equal(t, stack.DefaultCapacity, stack.New("", 0).Cap())
}

func Test_Stack_need(t *testing.T) {
	s := stack.New("data stack", 4)
	require.NoError(t, s.Push(1))
	assert.NoError(t, s.Need(1))
	assert.True(t, errors.Is(s.Need(2), stack.ErrUnderflow))
}

func Test_Stack_pickRoll(t *testing.T) {
	for _, tc := range []struct {
		name   string
		values []int32
		n      int
		pick   int32
		roll   []int32
		err    string
	}{
		{name: "0", values: []int32{1, 2, 3, 4}, n: 0, pick: 4, roll: []int32{1, 2, 3, 4}},
		{name: "1", values: []int32{1, 2, 3, 4}, n: 1, pick: 3, roll: []int32{1, 2, 4, 3}},
		{name: "2", values: []int32{1, 2, 3, 4}, n: 2, pick: 2, roll: []int32{1, 3, 4, 2}},
		{name: "3", values: []int32{1, 2, 3, 4}, n: 3, pick: 1, roll: []int32{2, 3, 4, 1}},
		{name: "too deep", values: []int32{1, 2, 3, 4}, n: 4, err: "data stack invalid index 4"},
		{name: "negative", values: []int32{1}, n: -1, err: "data stack invalid index -1"},
		{name: "empty", n: 0, err: "data stack invalid index 0"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			s := stack.New("data stack", 8)
			for _, val := range tc.values {
				require.NoError(t, s.Push(val))
			}

			val, err := s.Pick(tc.n)
			if tc.err != "" {
				assert.EqualError(t, err, tc.err)
				assert.True(t, errors.Is(err, stack.ErrIndex))
			} else if assert.NoError(t, err) {
				assert.Equal(t, tc.pick, val, "expected picked value")
			}

			err = s.Roll(tc.n)
			if tc.err != "" {
				assert.EqualError(t, err, tc.err)
				assert.Equal(t, tc.values, nilIfEmpty(s.Values()), "expected failed roll not to mutate")
			} else if assert.NoError(t, err) {
				assert.Equal(t, tc.roll, s.Values(), "expected rolled values")
			}
		})
	}
}

func nilIfEmpty(values []int32) []int32 {
	if len(values) == 0 {
		return nil
	}
	return values
}
