package decode

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shubh2310-developer/cc-statement-parser/internal/common"
)

const bboxFixture = `<?xml version="1.0"?>
<html xmlns="http://www.w3.org/1999/xhtml">
<head><title></title></head>
<body>
<doc>
  <page width="612" height="792">
    <flow>
      <block xMin="40" yMin="78" xMax="330" yMax="94">
        <line xMin="40" yMin="80" xMax="150" yMax="92">
          <word xMin="40" yMin="80" xMax="95" yMax="92">Payment</word>
          <word xMin="100" yMin="80" xMax="125" yMax="92">Due</word>
          <word xMin="130" yMin="80" xMax="150" yMax="92">Date</word>
        </line>
        <line xMin="250" yMin="80" xMax="330" yMax="92">
          <word xMin="250" yMin="80" xMax="330" yMax="92">05/11/2025</word>
        </line>
      </block>
    </flow>
  </page>
  <page width="612" height="792">
    <flow>
      <block xMin="40" yMin="38" xMax="200" yMax="54">
        <line xMin="40" yMin="40" xMax="200" yMax="52">
          <word xMin="40" yMin="40" xMax="200" yMax="52">Rewards</word>
        </line>
      </block>
    </flow>
  </page>
</doc>
</body>
</html>`

// fakeRunner replays canned output per command name.
type fakeRunner struct {
	stdout map[string][]byte
	errs   map[string]error
	calls  []string
}

func (f *fakeRunner) Run(_ context.Context, name string, args ...string) ([]byte, []byte, error) {
	f.calls = append(f.calls, name)
	if err := f.errs[name]; err != nil {
		return nil, []byte("boom"), err
	}
	return f.stdout[name], nil, nil
}

func discard() *slog.Logger { return slog.New(slog.DiscardHandler) }

func TestParseBBoxLayout(t *testing.T) {
	runs, pages, err := parseBBoxLayout([]byte(bboxFixture))
	require.NoError(t, err)
	assert.Equal(t, 2, pages)
	require.Len(t, runs, 3)

	assert.Equal(t, "Payment Due Date", runs[0].Text)
	assert.Equal(t, 0, runs[0].Page)
	assert.Equal(t, 40.0, runs[0].BBox.X0)
	assert.Equal(t, 92.0, runs[0].BBox.Y1)

	assert.Equal(t, "05/11/2025", runs[1].Text)
	assert.Equal(t, "Rewards", runs[2].Text)
	assert.Equal(t, 1, runs[2].Page)
}

func TestParseBBoxLayout_Garbage(t *testing.T) {
	_, _, err := parseBBoxLayout([]byte("%PDF-1.7 not xml at all"))
	require.Error(t, err)
}

func TestDecode_TextLayerPath(t *testing.T) {
	// Build a fixture dense enough to clear the sparse threshold.
	var lines strings.Builder
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&lines, `<line xMin="40" yMin="%d" xMax="200" yMax="%d"><word xMin="40" yMin="%d" xMax="200" yMax="%d">line%d</word></line>`,
			100+i*20, 112+i*20, 100+i*20, 112+i*20, i)
	}
	xml := `<?xml version="1.0"?><html xmlns="http://www.w3.org/1999/xhtml"><body><doc><page width="612" height="792"><flow><block>` +
		lines.String() + `</block></flow></page></doc></body></html>`

	r := &fakeRunner{stdout: map[string][]byte{"pdftotext": []byte(xml)}}
	d := NewPDFDecoder(common.DecoderConfig{}, r, discard())

	res, err := d.Decode(context.Background(), "/tmp/statement.pdf")
	require.NoError(t, err)
	assert.Equal(t, MethodTextLayer, res.Method)
	assert.Len(t, res.Document.Runs, 8)
	assert.Equal(t, []string{"pdftotext"}, r.calls, "OCR must not run when the text layer is dense")
}

func TestDecode_PdftotextFailureIsInputError(t *testing.T) {
	r := &fakeRunner{errs: map[string]error{"pdftotext": errors.New("exit status 1")}}
	d := NewPDFDecoder(common.DecoderConfig{}, r, discard())

	_, err := d.Decode(context.Background(), "/tmp/broken.pdf")
	require.Error(t, err)
	assert.True(t, common.IsInputError(err))
}

func TestDecode_SparseTextFallsThroughToOCR(t *testing.T) {
	empty := `<?xml version="1.0"?><html xmlns="http://www.w3.org/1999/xhtml"><body><doc><page width="612" height="792"></page></doc></body></html>`
	r := &fakeRunner{
		stdout: map[string][]byte{"pdftotext": []byte(empty)},
		errs:   map[string]error{"pdftoppm": errors.New("exit status 1")},
	}
	d := NewPDFDecoder(common.DecoderConfig{}, r, discard())

	_, err := d.Decode(context.Background(), "/tmp/scan.pdf")
	require.Error(t, err)
	assert.True(t, common.IsInputError(err))
	assert.Equal(t, []string{"pdftotext", "pdftoppm"}, r.calls)
}

func TestParseTesseractTSV(t *testing.T) {
	tsv := strings.Join([]string{
		"level\tpage_num\tblock_num\tpar_num\tline_num\tword_num\tleft\ttop\twidth\theight\tconf\ttext",
		"1\t1\t0\t0\t0\t0\t0\t0\t2550\t3300\t-1\t",
		"5\t1\t1\t1\t1\t1\t100\t200\t300\t50\t96.5\tPayment",
		"5\t1\t1\t1\t1\t2\t420\t200\t150\t50\t95.0\tDue",
		"5\t1\t1\t1\t1\t3\t590\t200\t180\t50\t93.5\tDate",
		"5\t1\t1\t1\t2\t1\t1000\t200\t400\t50\t91.0\t05/11/2025",
		"5\t1\t1\t1\t2\t2\t1500\t200\t100\t50\t-1\t", // no confidence, dropped
	}, "\n")

	runs, confSum, confN := parseTesseractTSV([]byte(tsv), 0, 72.0/300.0)
	require.Len(t, runs, 2)
	assert.Equal(t, "Payment Due Date", runs[0].Text)
	assert.Equal(t, "05/11/2025", runs[1].Text)
	assert.Equal(t, 4, confN)
	assert.InDelta(t, 376.0, confSum, 0.01)

	// 100px at 300dpi is 24pt
	assert.InDelta(t, 24.0, runs[0].BBox.X0, 0.01)
	assert.InDelta(t, 48.0, runs[0].BBox.Y0, 0.01)
	// the merged line spans Payment..Date: 100..770px scales to 24..184.8pt
	assert.InDelta(t, 184.8, runs[0].BBox.X1, 0.01)
}
