package motion

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"shakecalc/internal/domain"
)

// MotionPath is where HTTPSource accepts samples.
const MotionPath = "/motion"

// maxBody bounds a single POST body.
const maxBody = 1 << 20

// errNoStream is reported to clients while no Stream call is active.
var errNoStream = errors.New("calculator is not listening for motion")

// HTTPSource receives samples pushed over HTTP.
//
//	POST /motion  {"x":0.1,"y":9.8,"z":0.3}
//	POST /motion  [{"x":..}, {"x":..}]
//
// Samples are delivered in request order; concurrent requests are serialized.
type HTTPSource struct {
	log *zap.Logger

	mu   sync.Mutex
	sink func(domain.Sample)
}

// NewHTTPSource returns a source that is idle until Stream is called.
func NewHTTPSource(log *zap.Logger) *HTTPSource {
	if log == nil {
		log = zap.NewNop()
	}
	return &HTTPSource{log: log}
}

// Stream routes posted samples to sink until ctx is done.
func (s *HTTPSource) Stream(ctx context.Context, sink func(domain.Sample)) error {
	s.mu.Lock()
	s.sink = sink
	s.mu.Unlock()

	<-ctx.Done()

	s.mu.Lock()
	s.sink = nil
	s.mu.Unlock()
	return nil
}

// Register mounts the motion endpoint on mux.
func (s *HTTPSource) Register(mux *http.ServeMux) {
	mux.Handle(MotionPath, s)
}

func (s *HTTPSource) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.Header().Set("Allow", http.MethodPost)
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	defer r.Body.Close()

	samples, err := decodeSamples(io.LimitReader(r.Body, maxBody))
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.sink == nil {
		http.Error(w, errNoStream.Error(), http.StatusServiceUnavailable)
		return
	}
	for _, sample := range samples {
		s.sink(sample)
	}
	s.log.Debug("received motion samples",
		zap.Int("count", len(samples)),
		zap.String("remote", r.RemoteAddr))
	w.WriteHeader(http.StatusAccepted)
}

// errIncompleteSample rejects bodies that would otherwise decode as a zero
// reading and drag the detector's baseline to 0.
var errIncompleteSample = errors.New("sample needs x, y and z")

// postedSample is a sample as posted; nil fields were missing from the body.
type postedSample struct {
	X *float64 `json:"x"`
	Y *float64 `json:"y"`
	Z *float64 `json:"z"`
}

func (p *postedSample) sample(i int) (domain.Sample, error) {
	if p == nil || p.X == nil || p.Y == nil || p.Z == nil {
		return domain.Sample{}, fmt.Errorf("sample %d: %w", i, errIncompleteSample)
	}
	return domain.Sample{X: *p.X, Y: *p.Y, Z: *p.Z}, nil
}

// decodeSamples accepts a single sample object or an array of them. Every
// sample must carry all three axes.
func decodeSamples(r io.Reader) ([]domain.Sample, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil, errors.New("empty body")
	}

	var posted []*postedSample
	if b[0] == '[' {
		if err := json.Unmarshal(b, &posted); err != nil {
			return nil, err
		}
	} else {
		var one *postedSample
		if err := json.Unmarshal(b, &one); err != nil {
			return nil, err
		}
		posted = []*postedSample{one}
	}

	samples := make([]domain.Sample, 0, len(posted))
	for i, p := range posted {
		s, err := p.sample(i)
		if err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}
	return samples, nil
}

var _ domain.MotionSource = (*HTTPSource)(nil)
