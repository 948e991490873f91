// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/ornl-ndav/ipns-gov-sub004/axis"
	"github.com/ornl-ndav/ipns-gov-sub004/calib"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

// run runs axisplot with args and stdin and returns its output.
func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCommand()
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	err := cmd.Execute()
	return out.String(), err
}

func TestTicks(t *testing.T) {
	out, err := run(t, "", "ticks", "--min", "0", "--max", "49000", "--width", "1000")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2+11, "output:\n%s", out)
	assert.Equal(t, "linear [0, 49000] => [0, 1000], label every 1, decimal labels", lines[0])
	assert.Equal(t, []string{"value", "pixel", "class", "label"}, strings.Fields(lines[1]))
	assert.Equal(t, []string{"0", "0", "major", "0"}, strings.Fields(lines[2]))
	assert.Equal(t, []string{"49000", "1000", "major", "49000"}, strings.Fields(lines[len(lines)-1]))
}

func TestTicksAll(t *testing.T) {
	out, err := run(t, "", "ticks", "--min", "0", "--max", "49000", "--width", "1000", "--all")
	require.NoError(t, err)
	assert.Contains(t, out, "mid")
}

func TestTicksSuffix(t *testing.T) {
	out, err := run(t, "", "ticks", "--max", "49000", "--format", "sci")
	require.NoError(t, err)
	assert.Contains(t, out, "labels in units of ×10^4")
}

func TestTicksData(t *testing.T) {
	out, err := run(t, "3 -2\n7 ", "ticks", "--data", "-")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "linear [-2, 7] => "), "output:\n%s", out)

	_, err = run(t, "3 x", "ticks", "--data", "-")
	assert.Error(t, err)
}

func TestTicksErrors(t *testing.T) {
	_, err := run(t, "", "ticks", "--scale", "sqrt")
	assert.Equal(t, axis.ErrUnknownScale, errors.Cause(err))

	_, err = run(t, "", "ticks", "--scale", "truelog", "--min", "-1", "--max", "10")
	assert.Error(t, err)

	_, err = run(t, "", "ticks", "--log-level", "loud")
	assert.Error(t, err)
}

func TestSVG(t *testing.T) {
	out, err := run(t, "", "svg", "--min", "-50", "--max", "50", "--scale", "log", "--two-sided", "--width", "800")
	require.NoError(t, err)
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, ">-50</text>")
	assert.Contains(t, out, ">50</text>")
	assert.Contains(t, out, "</svg>")
}

func TestPNG(t *testing.T) {
	out, err := run(t, "", "png", "--max", "49000", "--width", "1000", "--zoom", "2")
	require.NoError(t, err)
	img, err := png.Decode(strings.NewReader(out))
	require.NoError(t, err)
	assert.Equal(t, 2*(1000+2*margin), img.Bounds().Dx())
}

func TestCurve(t *testing.T) {
	out, err := run(t, "", "curve", "--min", "-1000", "--max", "1000", "--samples", "50")
	require.NoError(t, err)
	assert.Contains(t, out, "<svg")

	tab, err := curveTable(calib.Interval{Min: 1, Max: 100}, 600, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, 3*20, tab.Len())

	tab, err = curveTable(calib.Interval{Min: -1, Max: 1}, 600, 0, 20)
	require.NoError(t, err)
	assert.Equal(t, 2*20, tab.Len())

	_, err = curveTable(calib.Interval{Min: -1, Max: 1}, 600, 0, 1)
	assert.Error(t, err)
}

const batchYAML = `
- name: counts
  min: 0
  max: 49000
  width: 1000
- min: -50
  max: 50
  scale: log
  two_sided: true
  format: decimal
`

func TestBatch(t *testing.T) {
	out, err := run(t, batchYAML, "batch", "-")
	require.NoError(t, err)
	assert.Contains(t, out, "# counts\nlinear [0, 49000] => [0, 1000]")
	assert.Contains(t, out, "\n\n# axis 2\npseudolog [-50, 50] => [0, 600]")

	_, err = run(t, "- min: 0\n  maximum: 3\n", "batch", "-")
	assert.Error(t, err)

	_, err = run(t, "- scale: sqrt\n", "batch", "-")
	assert.Equal(t, axis.ErrUnknownScale, errors.Cause(err))
}

func TestScript(t *testing.T) {
	script := `# two axes
ticks --min 0 --max 49000 --width 1000

axisplot ticks --min 1 --max 1e6 --scale 'truelog'
`
	out, err := run(t, script, "script")
	require.NoError(t, err)
	assert.Contains(t, out, "linear [0, 49000] => [0, 1000]")
	assert.Contains(t, out, "truelog [1, 1e+06] => [0, 600]")

	_, err = run(t, "ticks --scale 'sqrt\n", "script")
	assert.Error(t, err, "unterminated quote")

	_, err = run(t, "script\n", "script")
	assert.Error(t, err)

	out, err = run(t, "ticks --scale sqrt\nticks --max 10\n", "script", "--keep-going")
	assert.EqualError(t, err, "<stdin>: 1 lines failed")
	assert.Contains(t, out, "linear [0, 10]")
}

func TestScriptStdin(t *testing.T) {
	// A script read from a file can still read data from stdin.
	path := filepath.Join(t.TempDir(), "axes.txt")
	require.NoError(t, os.WriteFile(path, []byte("ticks --data -\n"), 0666))
	out, err := run(t, "3 -2 7", "script", path)
	require.NoError(t, err)
	assert.Contains(t, out, "linear [-2, 7] => ")
}

func TestCheckTerminal(t *testing.T) {
	assert.NoError(t, checkTerminal(&bytes.Buffer{}, false))
}
