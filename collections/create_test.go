package collections_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evangipson/StackCollection/collections"
	"github.com/evangipson/StackCollection/region"
)

func TestCreateCopiesInput(t *testing.T) {
	src := []string{"a", "b", "c"}
	c := collections.Create(src...)
	src[0] = "z"

	assert.Equal(t, 3, c.Len())
	assert.Equal(t, 3, c.Cap())
	assert.Equal(t, []string{"a", "b", "c"}, c.ToSlice())
}

func TestCreateEmpty(t *testing.T) {
	c := collections.Create[int]()
	assert.Equal(t, 0, c.Cap())
	assert.False(t, c.Region().IsZero())
}

func TestCollect(t *testing.T) {
	c := collections.Collect(slices.Values([]int{4, 5, 6}))
	assert.Equal(t, []int{4, 5, 6}, c.ToSlice())
	assert.Equal(t, 3, c.Cap())

	empty := collections.Collect(slices.Values([]int(nil)))
	assert.Equal(t, 0, empty.Len())
	assert.False(t, empty.Region().IsZero())
}

func TestMake(t *testing.T) {
	c, err := collections.Make[int](3)
	require.NoError(t, err)
	assert.Equal(t, 0, c.Len())
	assert.Equal(t, 3, c.Cap())

	c, err = collections.Make(4, func(c *collections.Collection[int]) error {
		return c.AddRange(1, 2)
	})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, c.ToSlice())
	assert.Equal(t, 4, c.Cap())

	_, err = collections.Make[int](-1)
	assert.ErrorIs(t, err, collections.ErrInvalidBounds)
}

func TestMakeBuilderError(t *testing.T) {
	c, err := collections.Make(1, func(c *collections.Collection[int]) error {
		return c.AddRange(1, 2)
	})
	assert.ErrorIs(t, err, collections.ErrCapacityExceeded)
	assert.Contains(t, err.Error(), "collections: build:")
	assert.Equal(t, 0, c.Len())

	boom := errors.New("boom")
	_, err = collections.Make(1, func(*collections.Collection[int]) error { return boom })
	assert.ErrorIs(t, err, boom)
}

func TestMakeWithConfig(t *testing.T) {
	c, err := collections.MakeWith[int](collections.Config{Capacity: 7})
	require.NoError(t, err)
	assert.Equal(t, 7, c.Cap())

	c, err = collections.MakeWith[int](collections.Config{})
	require.NoError(t, err)
	assert.Equal(t, collections.DefaultCapacity, c.Cap())

	c, err = collections.Default(func(c *collections.Collection[int]) error { return c.Add(1) })
	require.NoError(t, err)
	assert.Equal(t, collections.DefaultCapacity, c.Cap())
	assert.Equal(t, 1, c.Len())

	assert.Equal(t, collections.DefaultCapacity, collections.DefaultConfig().Capacity)
}

func TestMakeIn(t *testing.T) {
	s := region.NewScope()
	defer s.Close()

	c, err := collections.MakeIn(s, 2, func(c *collections.Collection[string]) error {
		return c.Add("x")
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"x"}, c.ToSlice())
	assert.Same(t, s, c.Region().Scope())

	_, err = collections.MakeIn[int](nil, 1)
	assert.ErrorIs(t, err, region.ErrNilScope)
}

func TestCreateIn(t *testing.T) {
	s := region.NewScope()
	c, err := collections.CreateIn(s, 1, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, c.Cap())
	assert.Equal(t, []int{1, 2}, c.ToSlice())

	s.Close()
	_, err = collections.CreateIn(s, 3)
	assert.ErrorIs(t, err, region.ErrScopeClosed)
}

func TestCreateResults(t *testing.T) {
	src, err := collections.Make[int](6)
	require.NoError(t, err)
	require.NoError(t, src.Add(1))

	dst := collections.CreateResults[string](&src)
	assert.Equal(t, 6, dst.Cap())
	assert.Equal(t, 0, dst.Len())
}
