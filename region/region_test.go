package region_test

import (
	"bytes"
	"errors"
	"log/slog"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evangipson/StackCollection/region"
)

type point struct {
	X, Y int32
}

type named struct {
	Name string
}

func TestOf(t *testing.T) {
	var buf [4]int
	r := region.Of(buf[:])

	assert.False(t, r.IsZero())
	assert.Equal(t, 4, r.Cap())
	assert.Nil(t, r.Scope())
	require.NoError(t, r.Live())

	slots, err := r.Slots()
	require.NoError(t, err)
	slots[2] = 7
	assert.Equal(t, 7, buf[2], "region must alias the caller's memory")
}

func TestOfHidesSpareCapacity(t *testing.T) {
	backing := make([]int, 2, 10)
	r := region.Of(backing)
	slots, err := r.Slots()
	require.NoError(t, err)
	assert.Equal(t, 2, cap(slots))
}

func TestZeroRegion(t *testing.T) {
	var r region.Region[int]
	assert.True(t, r.IsZero())
	assert.Equal(t, 0, r.Cap())
	assert.Equal(t, uintptr(0), r.Size())

	empty := region.Of(make([]int, 0))
	assert.False(t, empty.IsZero(), "a zero-capacity region still has backing memory")
}

func TestStride(t *testing.T) {
	assert.Equal(t, uintptr(8), region.Of([]int64{1}).Stride())
	assert.Equal(t, uintptr(8), region.Of([]point{{}}).Stride())
	assert.Equal(t, uintptr(1), region.Of([]bool{true}).Stride())
	assert.Equal(t, uintptr(24), region.Of(make([]int64, 3)).Size())
}

func TestAlloc(t *testing.T) {
	s := region.NewScope()
	defer s.Close()

	r, err := region.Alloc[int](s, 8)
	require.NoError(t, err)
	assert.Equal(t, 8, r.Cap())
	assert.Same(t, s, r.Scope())
	assert.Equal(t, 1, s.Regions())

	_, err = region.Alloc[int](s, -1)
	assert.ErrorIs(t, err, region.ErrNegativeCapacity)

	_, err = region.Alloc[int](nil, 1)
	assert.ErrorIs(t, err, region.ErrNilScope)
}

func TestScopeCloseInvalidatesAndPoisons(t *testing.T) {
	s := region.NewScope()
	r, err := region.Alloc[int](s, 3)
	require.NoError(t, err)

	slots, err := r.Slots()
	require.NoError(t, err)
	slots[0], slots[1], slots[2] = 1, 2, 3

	s.Close()
	assert.True(t, s.Closed())
	assert.ErrorIs(t, r.Live(), region.ErrScopeClosed)

	_, err = r.Slots()
	assert.ErrorIs(t, err, region.ErrScopeClosed)
	assert.Equal(t, []int{0, 0, 0}, slots, "closing the scope must zero its regions")

	_, err = region.Alloc[int](s, 1)
	assert.ErrorIs(t, err, region.ErrScopeClosed)

	s.Close() // idempotent
}

func TestRun(t *testing.T) {
	var leaked region.Region[string]
	err := region.Run(func(s *region.Scope) error {
		r, err := region.Alloc[string](s, 2)
		if err != nil {
			return err
		}
		leaked = r
		return r.Live()
	})
	require.NoError(t, err)
	assert.ErrorIs(t, leaked.Live(), region.ErrScopeClosed)

	boom := errors.New("boom")
	err = region.Run(func(*region.Scope) error { return boom })
	assert.Same(t, boom, err)
}

func TestRunClosesOnPanic(t *testing.T) {
	var scope *region.Scope
	assert.Panics(t, func() {
		_ = region.Run(func(s *region.Scope) error {
			scope = s
			panic("unwind")
		})
	})
	require.NotNil(t, scope)
	assert.True(t, scope.Closed())
}

func TestScopeLogsClose(t *testing.T) {
	var out bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&out, &slog.HandlerOptions{Level: slog.LevelDebug}))

	s := region.NewScope(region.WithLogger(logger))
	_, err := region.Alloc[int](s, 1)
	require.NoError(t, err)
	s.Close()

	assert.Contains(t, out.String(), `"msg":"region: scope closed"`)
	assert.Contains(t, out.String(), `"regions":1`)
	assert.Contains(t, out.String(), s.ID().String())
}

func TestScopeIDsAreDistinct(t *testing.T) {
	a, b := region.NewScope(), region.NewScope()
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestBytes(t *testing.T) {
	pts := []point{{X: 1, Y: 2}, {X: 3, Y: 4}}
	r := region.Of(pts)

	raw, err := r.Bytes()
	require.NoError(t, err)
	require.Len(t, raw, 16)

	clear(raw[8:])
	assert.Equal(t, point{}, pts[1], "byte writes must show through the typed view")
	assert.Equal(t, point{X: 1, Y: 2}, pts[0])

	empty, err := region.Of([]int{}).Bytes()
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestBytesRejectsPointerTypes(t *testing.T) {
	_, err := region.Of([]named{{Name: "x"}}).Bytes()
	assert.ErrorIs(t, err, region.ErrNotPlainData)

	_, err = region.Of([]*int{nil}).Bytes()
	assert.ErrorIs(t, err, region.ErrNotPlainData)
}

func TestBytesAfterClose(t *testing.T) {
	s := region.NewScope()
	r, err := region.Alloc[int32](s, 2)
	require.NoError(t, err)
	s.Close()

	_, err = r.Bytes()
	assert.ErrorIs(t, err, region.ErrScopeClosed)
}

func TestIsPlainData(t *testing.T) {
	cases := []struct {
		v    any
		want bool
	}{
		{int(0), true},
		{float64(0), true},
		{complex64(0), true},
		{[4]uint16{}, true},
		{point{}, true},
		{struct{}{}, true},
		{[0]*int{}, true},
		{"", false},
		{[]int{}, false},
		{map[int]int{}, false},
		{named{}, false},
		{[2]*int{}, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, region.IsPlainData(reflect.TypeOf(tc.v)), "%T", tc.v)
	}
}
