package puzzles

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

//go:embed data/*.yaml
var builtin embed.FS

// DefaultID is the puzzle played when none is chosen.
const DefaultID = "silly-wishes"

// Loader reads the built-in puzzles plus any puzzle files under Root.
// A file under Root replaces a built-in puzzle with the same ID.
type Loader struct {
	Root string

	// OnSkip, if set, is called for every file that fails to parse or validate.
	OnSkip func(path string, err error)
}

// NewLoader creates a loader. An empty root loads only built-in puzzles.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll loads every valid puzzle, sorted by ID.
func (l *Loader) LoadAll() ([]Puzzle, error) {
	byID := make(map[string]Puzzle)

	err := fs.WalkDir(builtin, "data", func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() || !isPuzzleFile(path) {
			return err
		}
		data, err := builtin.ReadFile(path)
		if err != nil {
			return err
		}
		if p, ok := l.accept(data, "embed:"+d.Name()); ok {
			byID[p.ID] = p
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("puzzles: reading built-in puzzles: %w", err)
	}

	if l.Root != "" {
		if _, statErr := os.Stat(l.Root); statErr == nil {
			err = filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if d.IsDir() || !isPuzzleFile(path) {
					return nil
				}
				data, err := os.ReadFile(path)
				if err != nil {
					l.skip(path, err)
					return nil
				}
				if p, ok := l.accept(data, path); ok {
					byID[p.ID] = p
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("puzzles: walking directory %s: %w", l.Root, err)
			}
		}
	}

	puzzles := make([]Puzzle, 0, len(byID))
	for _, p := range byID {
		puzzles = append(puzzles, p)
	}
	sort.Slice(puzzles, func(i, j int) bool {
		return puzzles[i].ID < puzzles[j].ID
	})
	return puzzles, nil
}

// LoadFile loads and validates a single puzzle file from disk.
func (l *Loader) LoadFile(path string) (Puzzle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Puzzle{}, fmt.Errorf("puzzles: reading file %s: %w", path, err)
	}
	p, err := Parse(data)
	if err != nil {
		return Puzzle{}, fmt.Errorf("puzzles: parsing file %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return Puzzle{}, err
	}
	p.FilePath = path
	return p, nil
}

// LoadByID loads a specific puzzle by ID.
func (l *Loader) LoadByID(id string) (Puzzle, error) {
	puzzles, err := l.LoadAll()
	if err != nil {
		return Puzzle{}, err
	}
	for _, p := range puzzles {
		if p.ID == id {
			return p, nil
		}
	}
	return Puzzle{}, fmt.Errorf("%w: %s", ErrNotFound, id)
}

// ListIDs returns all puzzle IDs in sorted order.
func (l *Loader) ListIDs() ([]string, error) {
	puzzles, err := l.LoadAll()
	if err != nil {
		return nil, err
	}
	ids := make([]string, len(puzzles))
	for i, p := range puzzles {
		ids[i] = p.ID
	}
	return ids, nil
}

// Builtin returns the embedded puzzle with the given ID.
func Builtin(id string) (Puzzle, error) {
	return NewLoader("").LoadByID(id)
}

func (l *Loader) accept(data []byte, path string) (Puzzle, bool) {
	p, err := Parse(data)
	if err == nil {
		err = p.Validate()
	}
	if err != nil {
		l.skip(path, err)
		return Puzzle{}, false
	}
	p.FilePath = path
	return p, true
}

func (l *Loader) skip(path string, err error) {
	if l.OnSkip != nil {
		l.OnSkip(path, err)
	}
}

func isPuzzleFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}
