// SPDX-License-Identifier: MIT

package order_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lebedev/order"
)

func TestCatalog_SlotFacts(t *testing.T) {
	require.Equal(t, 65, order.N)

	prev := 0
	for i := 0; i < order.N; i++ {
		o, err := order.FromIndex(i)
		require.NoError(t, err)
		assert.Equal(t, int(o), order.PointCount(i), "slot %d", i)
		assert.Greater(t, int(o), prev, "point counts must ascend")
		assert.Equal(t, 2*i+3, order.Degree(i), "slot %d", i)
		prev = int(o)

		idx, err := order.Index(o)
		require.NoError(t, err)
		assert.Equal(t, i, idx)
	}
}

func TestCatalog_Availability(t *testing.T) {
	want := map[int]bool{}
	for i := 0; i <= 14; i++ {
		want[i] = true
	}
	want[16] = true
	for i := 19; i < order.N; i += 3 {
		want[i] = true
	}

	for i := 0; i < order.N; i++ {
		assert.Equal(t, want[i], order.Available(i), "slot %d", i)
	}
	assert.Len(t, order.AvailableOrders(), 32)
}

func TestCatalog_OutOfRange(t *testing.T) {
	for _, i := range []int{-1, order.N, order.N + 10} {
		_, err := order.FromIndex(i)
		assert.ErrorIs(t, err, order.ErrIndexOutOfRange)
		assert.False(t, order.Available(i))
		assert.Zero(t, order.Degree(i))
		assert.Zero(t, order.PointCount(i))
	}
}

func TestOrder_Methods(t *testing.T) {
	assert.Equal(t, 590, order.Order590.Points())
	assert.Equal(t, 41, order.Order590.Degree())
	assert.True(t, order.Order590.Available())
	assert.False(t, order.Order386.Available())
	assert.Equal(t, "Order5810", order.Order5810.String())

	bogus := order.Order(7)
	assert.Zero(t, bogus.Points())
	assert.Zero(t, bogus.Degree())
	assert.False(t, bogus.Available())
	_, err := order.Index(bogus)
	assert.ErrorIs(t, err, order.ErrUnsupportedOrder)
}

func TestForDegree(t *testing.T) {
	cases := []struct {
		degree int
		want   order.Order
	}{
		{0, order.Order6},
		{3, order.Order6},
		{4, order.Order14},
		{33, order.Order434}, // slot 15 (386) is unavailable
		{36, order.Order590},
		{131, order.Order5810},
	}
	for _, tc := range cases {
		got, err := order.ForDegree(tc.degree)
		require.NoError(t, err, "degree %d", tc.degree)
		assert.Equal(t, tc.want, got, "degree %d", tc.degree)
	}

	_, err := order.ForDegree(132)
	assert.ErrorIs(t, err, order.ErrDegreeTooHigh)
}

func TestParse(t *testing.T) {
	for _, in := range []string{"590", " Order590", "order590 "} {
		o, err := order.Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, order.Order590, o)
	}
	for _, in := range []string{"", "abc", "591", "Order-6"} {
		_, err := order.Parse(in)
		assert.ErrorIs(t, err, order.ErrUnsupportedOrder, in)
	}
}

func TestAll_FreshSlice(t *testing.T) {
	a := order.All()
	require.Len(t, a, order.N)
	a[0] = 0
	assert.Equal(t, order.Order6, order.All()[0])
}
