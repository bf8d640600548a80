package render_test

import (
	"bytes"
	"errors"
	"math/big"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/katalvlaran/nwalign/nw"
	"github.com/katalvlaran/nwalign/render"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// alignSmall aligns AC against CA: score -5, two alignments.
func alignSmall(t *testing.T) *nw.Result {
	t.Helper()
	res, err := nw.Align("AC", "CA", nw.DefaultScoring())
	require.NoError(t, err)
	require.Equal(t, 2, res.Count())

	return res
}

func TestPrinter_Matrix(t *testing.T) {
	var buf bytes.Buffer
	p := render.NewPrinter(&buf, render.PlainStyle())

	require.NoError(t, p.Matrix(alignSmall(t).Matrix))
	want := "Solution matrix:\n" +
		"\t\tC\tA\t\n" +
		"\t0\t-5\t-10\t\n" +
		"A\t-5\t-3\t0\t\n" +
		"C\t-10\t0\t-5\t\n"
	assert.Equal(t, want, buf.String())
}

func TestPrinter_Report(t *testing.T) {
	var buf bytes.Buffer
	p := render.NewPrinter(&buf, render.PlainStyle())

	require.NoError(t, p.Report(alignSmall(t), 12*time.Millisecond+400*time.Microsecond))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "Solution matrix:\n"))
	assert.Contains(t, out, "\nObtained score: -5\nNumber of backtraces: 2\n")
	assert.Contains(t, out, "\nAll possible alignments:\n"+
		"----------\n-AC\nCA-\n"+
		"----------\nAC-\n-CA\n"+
		"----------\n")
	assert.True(t, strings.HasSuffix(out, "\nExecution time: 12 milliseconds\n\n"))
}

func TestPrinter_AlignmentsEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.NewPrinter(&buf, render.PlainStyle()).Alignments(nil))
	assert.Equal(t, "\nAll possible alignments:\n----------\n", buf.String())
}

func TestPrinter_Count(t *testing.T) {
	var buf bytes.Buffer
	n, ok := new(big.Int).SetString("123456789012345678901234567890", 10)
	require.True(t, ok)

	require.NoError(t, render.NewPrinter(&buf, render.PlainStyle()).Count(0, n))
	assert.Equal(t, "Obtained score: 0\nNumber of backtraces: 123456789012345678901234567890\n", buf.String())
}

func TestPrinter_Warning(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.NewPrinter(&buf, render.PlainStyle()).Warning("listing truncated"))
	assert.Equal(t, "warning: listing truncated\n", buf.String())
}

func TestNewStyle_Colour(t *testing.T) {
	var buf bytes.Buffer
	r := lipgloss.NewRenderer(&buf)
	r.SetColorProfile(termenv.ANSI)

	var out bytes.Buffer
	require.NoError(t, render.NewPrinter(&out, render.NewStyle(r)).Matrix(alignSmall(t).Matrix))
	assert.Contains(t, out.String(), "\x1b[", "headers carry escape sequences")
	assert.Contains(t, out.String(), "-10\t0\t-5\t\n", "scores stay plain")
}

// failWriter rejects every write.
type failWriter struct{}

var errDisk = errors.New("disk full")

func (failWriter) Write([]byte) (int, error) { return 0, errDisk }

func TestPrinter_WriteError(t *testing.T) {
	p := render.NewPrinter(failWriter{}, render.PlainStyle())
	res := alignSmall(t)

	assert.ErrorIs(t, p.Matrix(res.Matrix), errDisk)
	assert.ErrorIs(t, p.Report(res, time.Second), errDisk)
}
