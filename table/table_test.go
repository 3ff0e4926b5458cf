// SPDX-License-Identifier: MIT

package table_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lebedev/octahedral"
	"github.com/katalvlaran/lebedev/order"
	"github.com/katalvlaran/lebedev/table"
)

var supported = []order.Order{
	order.Order6, order.Order14, order.Order26, order.Order38, order.Order50,
	order.Order74, order.Order86, order.Order110, order.Order146, order.Order170,
	order.Order194, order.Order230, order.Order266, order.Order302, order.Order350,
	order.Order434, order.Order590, order.Order770, order.Order974, order.Order1202,
	order.Order1454, order.Order1730, order.Order2030, order.Order2354, order.Order2702,
	order.Order3074, order.Order3470,
}

func TestSupportedOrders(t *testing.T) {
	assert.Equal(t, supported, table.SupportedOrders())
	for _, o := range supported {
		assert.True(t, table.Supported(o), o.String())
		assert.True(t, o.Available(), o.String())
	}
}

func TestRepresentatives_PointCountAndWeightSum(t *testing.T) {
	for _, o := range supported {
		reps, err := table.Representatives(o)
		require.NoError(t, err, o.String())

		n, sum := 0, 0.0
		for _, r := range reps {
			require.NoError(t, octahedral.Validate(r))
			n += r.Class.Size()
			sum += float64(r.Class.Size()) * r.Weight
		}
		assert.Equal(t, o.Points(), n, o.String())
		assert.InDelta(t, 1.0, sum, 1e-12, o.String())
	}
}

func TestRepresentatives_Unsupported(t *testing.T) {
	cases := []order.Order{
		order.Order386,  // unavailable slot
		order.Order3890, // available, no compiled-in table
		order.Order5810,
		order.Order(7), // not in the catalog
		0,
	}
	for _, o := range cases {
		reps, err := table.Representatives(o)
		assert.ErrorIs(t, err, order.ErrUnsupportedOrder, o.String())
		assert.Nil(t, reps)
		assert.False(t, table.Supported(o))
	}
}

func TestRepresentatives_ReturnsCopy(t *testing.T) {
	a, err := table.Representatives(order.Order50)
	require.NoError(t, err)
	a[0].Weight = 42

	b, err := table.Representatives(order.Order50)
	require.NoError(t, err)
	assert.NotEqual(t, 42.0, b[0].Weight)
}

func TestRepresentatives_KnownRows(t *testing.T) {
	reps, err := table.Representatives(order.Order14)
	require.NoError(t, err)
	require.Len(t, reps, 2)
	assert.Equal(t, octahedral.Points6, reps[0].Class)
	assert.InDelta(t, 1.0/15.0, reps[0].Weight, 1e-16)
	assert.Equal(t, octahedral.Points8, reps[1].Class)
	assert.InDelta(t, 3.0/40.0, reps[1].Weight, 1e-16)

	// The 266-point rule opens with a negative Points6 weight.
	reps, err = table.Representatives(order.Order266)
	require.NoError(t, err)
	assert.Less(t, reps[0].Weight, 0.0)
}
