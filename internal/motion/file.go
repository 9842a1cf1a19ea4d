package motion

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"shakecalc/internal/domain"
)

// FileSource reads samples from a file. With Follow set it keeps watching the
// file and delivers lines as they are appended, like tail -f.
type FileSource struct {
	Path   string
	Follow bool
	Log    *zap.Logger
}

// NewFileSource returns a source over path.
func NewFileSource(path string, follow bool, log *zap.Logger) *FileSource {
	if log == nil {
		log = zap.NewNop()
	}
	return &FileSource{Path: path, Follow: follow, Log: log}
}

// Stream delivers the samples already in the file, then, when following,
// every complete line appended until ctx is done or the file goes away.
func (s *FileSource) Stream(ctx context.Context, sink func(domain.Sample)) error {
	log := s.Log
	if log == nil {
		log = zap.NewNop()
	}

	f, err := os.Open(s.Path)
	if err != nil {
		return fmt.Errorf("open motion file: %w", err)
	}
	defer f.Close()

	t := &tailer{r: bufio.NewReader(f), sink: sink, log: log}
	if err := t.drain(); err != nil {
		return err
	}
	if !s.Follow {
		t.flush()
		return nil
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch motion file: %w", err)
	}
	defer w.Close()
	if err := w.Add(s.Path); err != nil {
		return fmt.Errorf("watch motion file: %w", err)
	}
	log.Debug("following motion file", zap.String("path", s.Path))

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			switch {
			case ev.Has(fsnotify.Write):
				if err := t.drain(); err != nil {
					return err
				}
			case ev.Has(fsnotify.Remove), ev.Has(fsnotify.Rename):
				log.Info("motion file went away", zap.String("path", s.Path))
				t.flush()
				return nil
			}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			log.Warn("motion file watcher", zap.Error(err))
		}
	}
}

// tailer splits a growing stream into lines, holding back a trailing partial
// line until its newline arrives.
type tailer struct {
	r       *bufio.Reader
	partial string
	sink    func(domain.Sample)
	log     *zap.Logger
}

func (t *tailer) drain() error {
	for {
		chunk, err := t.r.ReadString('\n')
		t.partial += chunk
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("read motion file: %w", err)
		}
		line := t.partial
		t.partial = ""
		t.deliver(line)
	}
}

// flush delivers a final line that has no trailing newline.
func (t *tailer) flush() {
	if t.partial != "" {
		t.deliver(t.partial)
		t.partial = ""
	}
}

func (t *tailer) deliver(line string) {
	if skipLine(line) {
		return
	}
	sample, err := ParseSample(line)
	if err != nil {
		t.log.Warn("skipping motion sample", zap.Error(err))
		return
	}
	t.sink(sample)
}

var _ domain.MotionSource = (*FileSource)(nil)
