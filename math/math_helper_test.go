package math_test

import (
	"testing"

	"github.com/fredriksvantes/lodestar/math"
	"github.com/fredriksvantes/lodestar/testing/assert"
	"github.com/fredriksvantes/lodestar/testing/require"
)

func TestIntegerSquareRoot(t *testing.T) {
	tt := []struct {
		number uint64
		root   uint64
	}{
		{
			number: 20,
			root:   4,
		},
		{
			number: 200,
			root:   14,
		},
		{
			number: 1987,
			root:   44,
		},
		{
			number: 34989843,
			root:   5915,
		},
		{
			number: 97282,
			root:   311,
		},
		{
			number: 1 << 32,
			root:   1 << 16,
		},
		{
			number: (1 << 32) + 1,
			root:   1 << 16,
		},
		{
			number: 1 << 33,
			root:   92681,
		},
		{
			number: 1 << 60,
			root:   1 << 30,
		},
	}

	for _, testVals := range tt {
		require.Equal(t, testVals.root, math.IntegerSquareRoot(testVals.number))
	}
}

func TestIntegerSquareRoot_Zero(t *testing.T) {
	require.Equal(t, uint64(0), math.IntegerSquareRoot(0))
}

func TestCeilDiv8(t *testing.T) {
	tests := []struct {
		number int
		div8   int
	}{
		{
			number: 20,
			div8:   3,
		},
		{
			number: 200,
			div8:   25,
		},
		{
			number: 1987,
			div8:   249,
		},
		{
			number: 1,
			div8:   1,
		},
		{
			number: 97282,
			div8:   12161,
		},
	}

	for _, tt := range tests {
		require.Equal(t, tt.div8, math.CeilDiv8(tt.number))
	}
}

func TestIsPowerOf2(t *testing.T) {
	assert.Equal(t, true, math.IsPowerOf2(1))
	assert.Equal(t, true, math.IsPowerOf2(2))
	assert.Equal(t, true, math.IsPowerOf2(1024))
	assert.Equal(t, false, math.IsPowerOf2(0))
	assert.Equal(t, false, math.IsPowerOf2(3))
	assert.Equal(t, true, math.IsPowerOf2(1<<32))
}

func TestMinMax(t *testing.T) {
	assert.Equal(t, uint64(3), math.Min(3, 5))
	assert.Equal(t, uint64(5), math.Max(3, 5))
	assert.Equal(t, uint64(3), math.Min(3, 3))
}

func TestAdd64_Overflows(t *testing.T) {
	_, err := math.Add64(1<<64-1, 1)
	require.ErrorIs(t, err, math.ErrOverflow)
	res, err := math.Add64(1<<63, 1)
	require.NoError(t, err)
	require.Equal(t, uint64(1<<63+1), res)
}

func TestMul64_Overflows(t *testing.T) {
	_, err := math.Mul64(1<<32, 1<<32)
	require.ErrorIs(t, err, math.ErrOverflow)
	res, err := math.Mul64(1<<31, 2)
	require.NoError(t, err)
	require.Equal(t, uint64(1<<32), res)
}

func TestSub64_Underflows(t *testing.T) {
	_, err := math.Sub64(0, 1)
	require.ErrorIs(t, err, math.ErrOverflow)
	res, err := math.Sub64(5, 3)
	require.NoError(t, err)
	require.Equal(t, uint64(2), res)
}
