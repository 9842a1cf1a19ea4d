package motion

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"go.uber.org/zap"

	"shakecalc/internal/domain"
)

// ErrBadSample is returned for lines that are not three numbers.
var ErrBadSample = errors.New("bad motion sample")

// ParseSample parses "x,y,z". Commas, semicolons and whitespace all separate fields.
func ParseSample(line string) (domain.Sample, error) {
	fields := strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || r == ';' || unicode.IsSpace(r)
	})
	if len(fields) != 3 {
		return domain.Sample{}, fmt.Errorf("%w: %q: want 3 fields, got %d", ErrBadSample, line, len(fields))
	}
	var v [3]float64
	for i, f := range fields {
		n, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return domain.Sample{}, fmt.Errorf("%w: %q: %v", ErrBadSample, line, err)
		}
		v[i] = n
	}
	return domain.Sample{X: v[0], Y: v[1], Z: v[2]}, nil
}

// skipLine reports whether a line carries no sample.
func skipLine(line string) bool {
	line = strings.TrimSpace(line)
	return line == "" || strings.HasPrefix(line, "#")
}

// ReaderSource streams samples from R, one per line.
type ReaderSource struct {
	R   io.Reader
	Log *zap.Logger

	// Strict makes malformed lines fail the stream instead of being skipped.
	Strict bool
}

// NewReaderSource returns a lenient source over r.
func NewReaderSource(r io.Reader, log *zap.Logger) *ReaderSource {
	if log == nil {
		log = zap.NewNop()
	}
	return &ReaderSource{R: r, Log: log}
}

// Stream delivers every sample in R to sink and returns at EOF or when ctx
// is done.
func (s *ReaderSource) Stream(ctx context.Context, sink func(domain.Sample)) error {
	_, err := scanSamples(ctx, bufio.NewScanner(s.R), sink, s.Strict, s.logger())
	return err
}

func (s *ReaderSource) logger() *zap.Logger {
	if s.Log == nil {
		return zap.NewNop()
	}
	return s.Log
}

// scanSamples feeds every line of sc to sink and returns the number of samples delivered.
func scanSamples(
	ctx context.Context,
	sc *bufio.Scanner,
	sink func(domain.Sample),
	strict bool,
	log *zap.Logger,
) (int, error) {
	n := 0
	for sc.Scan() {
		if ctx.Err() != nil {
			return n, nil
		}
		line := sc.Text()
		if skipLine(line) {
			continue
		}
		sample, err := ParseSample(line)
		if err != nil {
			if strict {
				return n, err
			}
			log.Warn("skipping motion sample", zap.Error(err))
			continue
		}
		sink(sample)
		n++
	}
	return n, sc.Err()
}

var _ domain.MotionSource = (*ReaderSource)(nil)
