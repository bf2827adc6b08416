// Package highscore persists the best Smash Out score as a single decimal
// integer in a text file.
package highscore

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// DefaultPath returns the default high-score file location.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "highscore.txt"
	}
	return filepath.Join(home, ".smashout", "highscore.txt")
}

// FileStore reads and writes the high score file. A missing, unreadable or
// malformed file reads as 0.
type FileStore struct {
	mu     sync.Mutex
	path   string
	logger *log.Logger
}

// NewFileStore creates a store backed by path. A leading ~ is expanded to
// the home directory. logger may be nil.
func NewFileStore(path string, logger *log.Logger) *FileStore {
	if strings.HasPrefix(path, "~") {
		if home, err := os.UserHomeDir(); err == nil {
			path = filepath.Join(home, path[1:])
		}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &FileStore{path: path, logger: logger}
}

// Path returns the backing file path.
func (s *FileStore) Path() string {
	return s.path
}

// Load returns the stored high score, or 0 when none can be read.
func (s *FileStore) Load() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	score, err := s.read()
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("cannot read high score", "path", s.path, "err", err)
		}
		return 0
	}
	return score
}

// Save writes score unless the file already holds a higher one.
// Failures are logged and otherwise ignored.
func (s *FileStore) Save(score int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cur, err := s.read(); err == nil && cur >= score {
		return
	}
	if err := s.write(score); err != nil {
		s.logger.Warn("cannot save high score", "path", s.path, "err", err)
	}
}

func (s *FileStore) read() (int, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0, err
	}
	score, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("highscore: malformed file: %w", err)
	}
	if score < 0 {
		return 0, fmt.Errorf("highscore: negative score %d", score)
	}
	return score, nil
}

// write replaces the file atomically through a temp file.
func (s *FileStore) write(score int) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("highscore: cannot create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, ".highscore-*")
	if err != nil {
		return fmt.Errorf("highscore: cannot create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(strconv.Itoa(score)); err != nil {
		tmp.Close()
		return fmt.Errorf("highscore: cannot write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("highscore: cannot write: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("highscore: cannot replace %s: %w", s.path, err)
	}
	return nil
}
