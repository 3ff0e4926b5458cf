package main

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lebedev/internal/export"
	"github.com/katalvlaran/lebedev/order"
	"github.com/katalvlaran/lebedev/quadrature"
)

func runCmd(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("LEBEDEV_LOG_LEVEL", "error")
	var out, errOut bytes.Buffer
	code := run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRun_Usage(t *testing.T) {
	code, _, stderr := runCmd(t)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, "usage")

	code, _, stderr = runCmd(t, "bogus")
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, stderr, `unknown command "bogus"`)

	code, _, _ = runCmd(t, "catalog", "-nope")
	assert.Equal(t, exitUsage, code)

	code, _, _ = runCmd(t, "catalog", "extra")
	assert.Equal(t, exitUsage, code)
}

func TestCatalog_CSV(t *testing.T) {
	code, stdout, _ := runCmd(t, "catalog", "-format", "csv")
	require.Equal(t, exitOK, code)

	recs, err := csv.NewReader(strings.NewReader(stdout)).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, order.N+1)
	assert.Equal(t, []string{"19", "590", "41", "590", "true", "true"}, recs[20])
}

func TestPoints_JSON(t *testing.T) {
	code, stdout, _ := runCmd(t, "points", "-order", "6", "-format", "json")
	require.Equal(t, exitOK, code)

	var rule export.Rule
	require.NoError(t, json.Unmarshal([]byte(stdout), &rule))
	assert.Equal(t, order.Order6, rule.Order)
	require.Len(t, rule.Points, 6)
	assert.Equal(t, export.Point{X: 0, Y: 0, Z: -1, W: rule.Points[0].W}, rule.Points[5])
}

func TestPoints_ByDegreeToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rule.yaml")
	code, stdout, _ := runCmd(t, "points", "-degree", "17", "-format", "yaml", "-o", path)
	require.Equal(t, exitOK, code)
	assert.Empty(t, stdout)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var rule export.Rule
	require.NoError(t, yaml.Unmarshal(raw, &rule))
	assert.Equal(t, order.Order110, rule.Order)
	assert.Len(t, rule.Points, 110)
}

func TestPoints_Unsupported(t *testing.T) {
	code, _, _ := runCmd(t, "points", "-order", "3890")
	assert.Equal(t, exitFail, code)

	code, _, stderr := runCmd(t, "points", "-order", "591")
	assert.Equal(t, exitFail, code)
	assert.Contains(t, stderr, "unsupported")
}

func TestGenerators(t *testing.T) {
	code, stdout, _ := runCmd(t, "generators", "-order", "38", "-format", "csv")
	require.Equal(t, exitOK, code)
	recs, err := csv.NewReader(strings.NewReader(stdout)).ReadAll()
	require.NoError(t, err)
	require.Len(t, recs, 4)
	assert.Equal(t, "24-point-axis", recs[3][0])
}

func TestIntegrate_590(t *testing.T) {
	code, stdout, _ := runCmd(t, "integrate", "-order", "590", "-px", "2", "-py", "2", "-pz", "2", "-format", "json")
	require.Equal(t, exitOK, code)

	var res export.Integral
	require.NoError(t, json.Unmarshal([]byte(stdout), &res))
	assert.Equal(t, "x^2y^2z^2", res.Monomial)
	assert.InDelta(t, 4*math.Pi/105, res.Value, 1e-9)
	assert.InDelta(t, 4*math.Pi/105, res.Exact, 1e-15)
	assert.Less(t, res.RelErr, 1e-10)
}

func TestIntegrate_OddPowerVanishes(t *testing.T) {
	code, stdout, _ := runCmd(t, "integrate", "-order", "50", "-px", "3", "-format", "yaml")
	require.Equal(t, exitOK, code)
	var res export.Integral
	require.NoError(t, yaml.Unmarshal([]byte(stdout), &res))
	assert.Zero(t, res.Exact)
	assert.InDelta(t, 0, res.Value, 1e-15)
}

func TestMonomialIntegral_Radius(t *testing.T) {
	assert.InDelta(t, 4*math.Pi*16/3, monomialIntegral(2, 0, 0, 2), 1e-12)
	assert.Zero(t, monomialIntegral(0, 1, 0, 1))
}

func TestVerify_All(t *testing.T) {
	code, stdout, _ := runCmd(t, "verify", "-all", "-workers", "4", "-format", "json")
	require.Equal(t, exitOK, code)

	var reports []quadrature.Report
	require.NoError(t, json.Unmarshal([]byte(stdout), &reports))
	require.Len(t, reports, 27)
	for i, r := range reports {
		assert.True(t, r.Exact, r.Order.String())
		if i > 0 {
			assert.Less(t, reports[i-1].Order, r.Order)
		}
	}
}

func TestVerify_TightToleranceFails(t *testing.T) {
	code, stdout, _ := runCmd(t, "verify", "-order", "110", "-tolerance", "1e-30", "-format", "csv")
	assert.Equal(t, exitFail, code)
	assert.Contains(t, stdout, "false", "reports are written before failing")
}

func TestConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lebedev.toml")
	require.NoError(t, os.WriteFile(path, []byte("order = \"26\"\nformat = \"csv\"\n"), 0o600))

	code, stdout, _ := runCmd(t, "points", "-config", path)
	require.Equal(t, exitOK, code)
	assert.Len(t, strings.Split(strings.TrimSpace(stdout), "\n"), 27)

	// Flags override the file.
	code, stdout, _ = runCmd(t, "points", "-config", path, "-order", "14")
	require.Equal(t, exitOK, code)
	assert.Len(t, strings.Split(strings.TrimSpace(stdout), "\n"), 15)

	code, _, _ = runCmd(t, "points", "-config", path, "-workers", "0")
	assert.Equal(t, exitFail, code)
}
