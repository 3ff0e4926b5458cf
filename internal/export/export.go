// Package export encodes point sets, catalogs, generator lists and
// exactness reports as text, CSV, JSON or YAML.
package export

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lebedev/octahedral"
	"github.com/katalvlaran/lebedev/order"
	"github.com/katalvlaran/lebedev/quadrature"
	"github.com/katalvlaran/lebedev/table"
)

// Format is an output encoding.
type Format string

// Supported formats.
const (
	Text Format = "text"
	CSV  Format = "csv"
	JSON Format = "json"
	YAML Format = "yaml"
)

// ErrUnknownFormat indicates an unsupported Format.
var ErrUnknownFormat = errors.New("export: unknown format")

// ParseFormat accepts text, csv, json, yaml and yml, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case Text, CSV, JSON, YAML:
		return f, nil
	case "yml":
		return YAML, nil
	default:
		return "", fmt.Errorf("%q: %w", s, ErrUnknownFormat)
	}
}

// Point is one row of an exported rule.
type Point struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
	Z float64 `json:"z" yaml:"z"`
	W float64 `json:"w" yaml:"w"`
}

// Rule is the document form of a point set.
type Rule struct {
	Order  order.Order `json:"order" yaml:"order"`
	Degree int         `json:"degree" yaml:"degree"`
	Radius float64     `json:"radius" yaml:"radius"`
	Points []Point     `json:"points" yaml:"points"`
}

// NewRule copies ps into its document form.
func NewRule(ps *quadrature.PointSet) Rule {
	r := Rule{Order: ps.Order(), Degree: ps.Degree(), Radius: ps.Radius(), Points: make([]Point, ps.Len())}
	for i := range r.Points {
		x, y, z, w := ps.Point(i)
		r.Points[i] = Point{X: x, Y: y, Z: z, W: w}
	}

	return r
}

// CatalogRow describes one catalog slot.
type CatalogRow struct {
	Index     int         `json:"index" yaml:"index"`
	Order     order.Order `json:"order" yaml:"order"`
	Degree    int         `json:"degree" yaml:"degree"`
	Points    int         `json:"points" yaml:"points"`
	Available bool        `json:"available" yaml:"available"`
	Supported bool        `json:"supported" yaml:"supported"`
}

// Catalog lists every slot with its availability and table support.
func Catalog() []CatalogRow {
	rows := make([]CatalogRow, order.N)
	for i := range rows {
		o, _ := order.FromIndex(i)
		rows[i] = CatalogRow{
			Index:     i,
			Order:     o,
			Degree:    order.Degree(i),
			Points:    order.PointCount(i),
			Available: order.Available(i),
			Supported: table.Supported(o),
		}
	}

	return rows
}

// Generator is the document form of a representative.
type Generator struct {
	Class  string  `json:"class" yaml:"class"`
	A      float64 `json:"a" yaml:"a"`
	B      float64 `json:"b" yaml:"b"`
	C      float64 `json:"c" yaml:"c"`
	Weight float64 `json:"weight" yaml:"weight"`
	Size   int     `json:"size" yaml:"size"`
}

// Generators converts representatives to their document form.
func Generators(reps []octahedral.Representative) []Generator {
	out := make([]Generator, len(reps))
	for i, r := range reps {
		out[i] = Generator{Class: r.Class.String(), A: r.A, B: r.B, C: r.C, Weight: r.Weight, Size: r.Class.Size()}
	}

	return out
}

// WriteRule encodes r to w.
func WriteRule(w io.Writer, f Format, r Rule) error {
	switch f {
	case Text, CSV:
		rows := make([][]string, len(r.Points))
		for i, p := range r.Points {
			rows[i] = []string{ftoa(p.X), ftoa(p.Y), ftoa(p.Z), ftoa(p.W)}
		}
		return writeTable(w, f, []string{"x", "y", "z", "w"}, rows)
	default:
		return writeDoc(w, f, r)
	}
}

// WriteCatalog encodes catalog rows to w.
func WriteCatalog(w io.Writer, f Format, rows []CatalogRow) error {
	switch f {
	case Text, CSV:
		out := make([][]string, len(rows))
		for i, r := range rows {
			out[i] = []string{
				strconv.Itoa(r.Index), strconv.Itoa(int(r.Order)), strconv.Itoa(r.Degree),
				strconv.Itoa(r.Points), strconv.FormatBool(r.Available), strconv.FormatBool(r.Supported),
			}
		}
		return writeTable(w, f, []string{"index", "order", "degree", "points", "available", "supported"}, out)
	default:
		return writeDoc(w, f, rows)
	}
}

// WriteGenerators encodes a generator list to w.
func WriteGenerators(w io.Writer, f Format, gens []Generator) error {
	switch f {
	case Text, CSV:
		out := make([][]string, len(gens))
		for i, g := range gens {
			out[i] = []string{g.Class, ftoa(g.A), ftoa(g.B), ftoa(g.C), ftoa(g.Weight), strconv.Itoa(g.Size)}
		}
		return writeTable(w, f, []string{"class", "a", "b", "c", "weight", "size"}, out)
	default:
		return writeDoc(w, f, gens)
	}
}

// WriteReports encodes exactness reports to w.
func WriteReports(w io.Writer, f Format, reps []quadrature.Report) error {
	switch f {
	case Text, CSV:
		out := make([][]string, len(reps))
		for i, r := range reps {
			out[i] = []string{
				strconv.Itoa(int(r.Order)), strconv.Itoa(r.Degree), strconv.Itoa(r.Points),
				strconv.Itoa(r.Monomials), strconv.FormatFloat(r.MaxRelErr, 'e', 3, 64),
				fmt.Sprintf("%d,%d,%d", r.Worst[0], r.Worst[1], r.Worst[2]),
				strconv.FormatFloat(r.WeightSum-1, 'e', 3, 64), strconv.FormatBool(r.Exact),
			}
		}
		return writeTable(w, f,
			[]string{"order", "degree", "points", "monomials", "max_rel_err", "worst", "weight_sum-1", "exact"}, out)
	default:
		return writeDoc(w, f, reps)
	}
}

// Integral is the result of integrating one monomial.
type Integral struct {
	Order    order.Order `json:"order" yaml:"order"`
	Degree   int         `json:"degree" yaml:"degree"`
	Monomial string      `json:"monomial" yaml:"monomial"`
	Value    float64     `json:"value" yaml:"value"`
	Exact    float64     `json:"exact" yaml:"exact"`
	RelErr   float64     `json:"rel_err" yaml:"rel_err"`
}

// Monomial renders x^px y^py z^pz compactly, e.g. "x^2y^2z^2" or "1".
func Monomial(px, py, pz int) string {
	var b strings.Builder
	for _, t := range []struct {
		v string
		p int
	}{{"x", px}, {"y", py}, {"z", pz}} {
		switch {
		case t.p == 1:
			b.WriteString(t.v)
		case t.p > 1:
			b.WriteString(t.v + "^" + strconv.Itoa(t.p))
		}
	}
	if b.Len() == 0 {
		return "1"
	}

	return b.String()
}

// WriteIntegral encodes one integration result to w.
func WriteIntegral(w io.Writer, f Format, r Integral) error {
	switch f {
	case Text, CSV:
		row := []string{
			strconv.Itoa(int(r.Order)), strconv.Itoa(r.Degree), r.Monomial,
			ftoa(r.Value), ftoa(r.Exact), strconv.FormatFloat(r.RelErr, 'e', 3, 64),
		}
		return writeTable(w, f, []string{"order", "degree", "monomial", "value", "exact", "rel_err"}, [][]string{row})
	default:
		return writeDoc(w, f, r)
	}
}

func writeTable(w io.Writer, f Format, header []string, rows [][]string) error {
	if f == CSV {
		cw := csv.NewWriter(w)
		if err := cw.Write(header); err != nil {
			return err
		}
		if err := cw.WriteAll(rows); err != nil {
			return fmt.Errorf("write csv: %w", err)
		}
		return nil
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, r := range rows {
		fmt.Fprintln(tw, strings.Join(r, "\t"))
	}

	return tw.Flush()
}

func writeDoc(w io.Writer, f Format, v any) error {
	switch f {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("%q: %w", string(f), ErrUnknownFormat)
	}
}

func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
