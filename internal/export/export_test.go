package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lebedev/order"
	"github.com/katalvlaran/lebedev/quadrature"
	"github.com/katalvlaran/lebedev/table"
)

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{"CSV": CSV, " json": JSON, "yml": YAML, "yaml": YAML, "text": Text} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}
	_, err := ParseFormat("xml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestWriteRule_CSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRule(&buf, CSV, NewRule(quadrature.MustNew(order.Order6))))

	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 7)
	assert.Equal(t, []string{"x", "y", "z", "w"}, recs[0])
	assert.Equal(t, []string{"1", "0", "0", "0.1666666666666667"}, recs[1])
}

func TestWriteRule_JSONAndYAML(t *testing.T) {
	rule := NewRule(quadrature.MustNew(order.Order26))

	var jbuf bytes.Buffer
	require.NoError(t, WriteRule(&jbuf, JSON, rule))
	var fromJSON Rule
	require.NoError(t, json.Unmarshal(jbuf.Bytes(), &fromJSON))
	assert.Equal(t, rule, fromJSON)

	var ybuf bytes.Buffer
	require.NoError(t, WriteRule(&ybuf, YAML, rule))
	assert.True(t, strings.HasPrefix(ybuf.String(), "order: 26\n"), ybuf.String()[:40])
	var fromYAML Rule
	require.NoError(t, yaml.Unmarshal(ybuf.Bytes(), &fromYAML))
	assert.Equal(t, rule, fromYAML)
}

func TestCatalog(t *testing.T) {
	rows := Catalog()
	require.Len(t, rows, order.N)
	assert.Equal(t, CatalogRow{Index: 19, Order: order.Order590, Degree: 41, Points: 590, Available: true, Supported: true}, rows[19])
	assert.Equal(t, CatalogRow{Index: 15, Order: order.Order386, Degree: 33, Points: 386}, rows[15])
	assert.True(t, rows[52].Available)
	assert.False(t, rows[52].Supported, "3890 has no compiled-in table")

	var buf bytes.Buffer
	require.NoError(t, WriteCatalog(&buf, Text, rows))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Len(t, lines, order.N+1)
	assert.Equal(t, []string{"index", "order", "degree", "points", "available", "supported"}, strings.Fields(lines[0]))
}

func TestWriteGenerators(t *testing.T) {
	reps, err := table.Representatives(order.Order50)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteGenerators(&buf, CSV, Generators(reps)))
	recs, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 5)
	assert.Equal(t, "6-point", recs[1][0])
	assert.Equal(t, "24-point", recs[4][0])
	assert.Equal(t, "24", recs[4][5])
}

func TestWriteReports(t *testing.T) {
	rep, err := quadrature.MustNew(order.Order14).VerifyExactness()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WriteReports(&buf, YAML, []quadrature.Report{rep}))
	var back []quadrature.Report
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &back))
	require.Len(t, back, 1)
	assert.Equal(t, rep, back[0])

	buf.Reset()
	require.NoError(t, WriteReports(&buf, Text, []quadrature.Report{rep}))
	assert.Contains(t, buf.String(), "true")
}

func TestWrite_UnknownFormat(t *testing.T) {
	err := WriteCatalog(&bytes.Buffer{}, Format("xml"), Catalog())
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestMonomial(t *testing.T) {
	assert.Equal(t, "1", Monomial(0, 0, 0))
	assert.Equal(t, "x^2y^2z^2", Monomial(2, 2, 2))
	assert.Equal(t, "xz^4", Monomial(1, 0, 4))
}

func TestWriteIntegral_JSON(t *testing.T) {
	in := Integral{Order: order.Order590, Degree: 41, Monomial: "x^2y^2z^2", Value: 0.1196, Exact: 0.1196}
	var buf bytes.Buffer
	require.NoError(t, WriteIntegral(&buf, JSON, in))
	var out Integral
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, in, out)
}
