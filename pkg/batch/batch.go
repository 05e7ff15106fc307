// Package batch converts request files with one "NAME VALUE" pair per line.
package batch

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/unitconv/pkg/errors"
	"github.com/arthur-debert/unitconv/pkg/logging"
	"github.com/arthur-debert/unitconv/pkg/output"
	"github.com/arthur-debert/unitconv/pkg/units"
	"github.com/rs/zerolog"
	"github.com/spf13/afero"
)

// CommentPrefix starts a line that is skipped
const CommentPrefix = "#"

// Summary counts the outcome of a batch run
type Summary struct {
	Converted int
	Failed    int
}

// String renders the summary line printed after a run
func (s Summary) String() string {
	return fmt.Sprintf("Converted %d, failed %d", s.Converted, s.Failed)
}

// Processor runs batch requests against a converter
type Processor struct {
	conv   *units.Converter
	fs     afero.Fs
	logger zerolog.Logger
}

// New creates a processor that opens request files through fs
func New(conv *units.Converter, fs afero.Fs) *Processor {
	return &Processor{
		conv:   conv,
		fs:     fs,
		logger: logging.GetLogger("batch"),
	}
}

// ProcessFile opens path and processes it like Process
func (p *Processor) ProcessFile(ctx context.Context, path string, out io.Writer, errOut *output.Renderer) (Summary, error) {
	f, err := p.fs.Open(path)
	if err != nil {
		return Summary{}, errors.Wrapf(err, errors.ErrFileAccess, "cannot open batch file %s", path).
			WithDetail("path", path)
	}
	defer func() { _ = f.Close() }()

	p.logger.Debug().Str("path", path).Msg("Processing batch file")
	return p.Process(ctx, f, out, errOut)
}

// Process converts every request line read from r. Successful conversions
// are written to out as "NAME VALUE -> RESULT"; failures go to errOut as
// "line N: Error: <message>" and do not stop the run. The returned error is
// only set for read failures or cancellation.
func (p *Processor) Process(ctx context.Context, r io.Reader, out io.Writer, errOut *output.Renderer) (Summary, error) {
	done := logging.LogOperationStart(p.logger, "batch")
	defer done()

	var summary Summary
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		lineNo++

		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, CommentPrefix) {
			continue
		}

		name, raw, result, err := p.convertLine(line)
		if err != nil {
			summary.Failed++
			p.logger.Debug().Err(err).Int("line", lineNo).Msg("Batch line failed")
			errOut.Println(output.StyleError, fmt.Sprintf("line %d: Error: %s", lineNo, errors.Message(err)))
			continue
		}

		summary.Converted++
		if _, err := fmt.Fprintf(out, "%s %s -> %.2f\n", name, raw, result); err != nil {
			return summary, err
		}
	}
	if err := scanner.Err(); err != nil {
		return summary, errors.Wrap(err, errors.ErrFileAccess, "failed to read batch input")
	}

	p.logger.Info().
		Int("converted", summary.Converted).
		Int("failed", summary.Failed).
		Msg("Batch finished")
	return summary, nil
}

func (p *Processor) convertLine(line string) (string, string, float64, error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return "", "", 0, errors.Newf(errors.ErrInvalidInput, "expected NAME VALUE, got %q", line)
	}

	name, raw := fields[0], fields[1]
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return "", "", 0, errors.Newf(errors.ErrInvalidInput, "invalid numeric value %q", raw).
			WithDetail("value", raw)
	}

	result, err := p.conv.Convert(name, value)
	if err != nil {
		return "", "", 0, err
	}
	return name, raw, result, nil
}
