package codebase

import (
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/tliron/commonlog"

	"github.com/dhamidi/skel/sketch"
	"github.com/dhamidi/skel/sketch/parser"
)

var log = commonlog.GetLogger("skel.codebase")

// Codebase caches the parse result of every sketch file under a root
// directory. All methods are safe for concurrent use.
type Codebase struct {
	mu      sync.RWMutex
	rootDir string
	files   map[string]*FileInfo
}

type FileInfo struct {
	Path     string
	Content  []byte
	Model    *sketch.File
	ParseErr error
}

func New(rootDir string) *Codebase {
	return &Codebase{
		rootDir: rootDir,
		files:   make(map[string]*FileInfo),
	}
}

func (c *Codebase) RootDir() string {
	return c.rootDir
}

// ScanAll walks the root directory and parses every .sketch file it finds.
// Unreadable entries are skipped.
func (c *Codebase) ScanAll() error {
	return filepath.Walk(c.rootDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return nil
		}
		if filepath.Ext(path) == ".sketch" {
			c.ScanFile(path)
		}
		return nil
	})
}

func (c *Codebase) ScanFile(path string) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	c.UpdateFile(path, content)
	return nil
}

// UpdateFile replaces the cached entry for path with a fresh parse of
// content. Parse failures are cached too; the previous model is discarded.
func (c *Codebase) UpdateFile(path string, content []byte) {
	model, err := parser.ParseBytes(path, content)
	if err != nil {
		log.Debugf("parse %s: %s", path, err.Error())
		model = nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.files[path] = &FileInfo{
		Path:     path,
		Content:  content,
		Model:    model,
		ParseErr: err,
	}
}

func (c *Codebase) RemoveFile(path string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.files, path)
}

func (c *Codebase) GetFile(path string) *FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.files[path]
}

// Files returns the cached entries sorted by path.
func (c *Codebase) Files() []*FileInfo {
	c.mu.RLock()
	defer c.mu.RUnlock()

	out := make([]*FileInfo, 0, len(c.files))
	for _, f := range c.files {
		out = append(out, f)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Path < out[j].Path })
	return out
}
