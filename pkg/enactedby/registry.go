package enactedby

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"gopkg.in/fsnotify.v1"
	"gopkg.in/yaml.v3"
)

// Registry holds the declarative pattern entries for all three
// strategies. The built-in table is a process-wide constant; custom
// entries can be layered on from YAML files, with optional hot-reload
// of a pattern directory.
type Registry struct {
	mu       sync.RWMutex
	entries  map[string]*PatternEntry
	dir      string
	watcher  *fsnotify.Watcher
	stopChan chan struct{}
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{entries: make(map[string]*PatternEntry)}
}

// BuiltinRegistry creates a registry seeded with the built-in pattern
// table. The seed entries are known-good; a compile failure there is a
// programming error.
func BuiltinRegistry() *Registry {
	r := NewRegistry()
	for _, entry := range builtinEntries() {
		if err := r.Register(entry); err != nil {
			panic(fmt.Sprintf("builtin enacted-by pattern %q: %v", entry.ID, err))
		}
	}
	return r
}

// Register validates, compiles and adds an entry. Re-registering an ID
// replaces the previous entry, so files can override builtins.
func (r *Registry) Register(entry *PatternEntry) error {
	if entry == nil {
		return fmt.Errorf("pattern entry cannot be nil")
	}
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("invalid pattern entry: %w", err)
	}
	if err := entry.Compile(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries[entry.ID] = entry
	return nil
}

// Get returns an entry by ID.
func (r *Registry) Get(id string) (*PatternEntry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.entries[id]
	return entry, ok
}

// Count returns the number of registered entries.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.entries)
}

// ByStrategy returns the enabled entries of one strategy type in
// descending priority order, ties broken by ID for determinism.
func (r *Registry) ByStrategy(strategy Strategy) []*PatternEntry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var selected []*PatternEntry
	for _, entry := range r.entries {
		if entry.Type == strategy && entry.Enabled {
			selected = append(selected, entry)
		}
	}
	sort.Slice(selected, func(i, j int) bool {
		if selected[i].Priority != selected[j].Priority {
			return selected[i].Priority > selected[j].Priority
		}
		return selected[i].ID < selected[j].ID
	})
	return selected
}

// List returns all entry IDs in sorted order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]string, 0, len(r.entries))
	for id := range r.entries {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// patternFile is the on-disk YAML shape: a list of entries.
type patternFile struct {
	Patterns []*PatternEntry `yaml:"patterns"`
}

// LoadFile loads pattern entries from one YAML file.
func (r *Registry) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading file: %w", err)
	}

	var file patternFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("parsing YAML: %w", err)
	}

	for _, entry := range file.Patterns {
		if err := r.Register(entry); err != nil {
			return fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
	}
	return nil
}

// LoadDirectory loads every .yaml/.yml file in dir. A missing directory
// is not an error; nothing is loaded.
func (r *Registry) LoadDirectory(dir string) error {
	r.dir = dir

	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("checking directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%s is not a directory", dir)
	}

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("reading directory %s: %w", dir, err)
	}

	var loadErrors []string
	for _, dirEntry := range dirEntries {
		if dirEntry.IsDir() {
			continue
		}
		name := dirEntry.Name()
		if !strings.HasSuffix(name, ".yaml") && !strings.HasSuffix(name, ".yml") {
			continue
		}
		if err := r.LoadFile(filepath.Join(dir, name)); err != nil {
			loadErrors = append(loadErrors, fmt.Sprintf("%s: %v", name, err))
		}
	}

	if len(loadErrors) > 0 {
		return fmt.Errorf("errors loading patterns: %s", strings.Join(loadErrors, "; "))
	}
	return nil
}

// Watch starts watching the configured pattern directory, re-loading
// changed files. Call StopWatch to stop.
func (r *Registry) Watch() error {
	if r.dir == "" {
		return fmt.Errorf("no directory configured for watching")
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	r.watcher = watcher
	r.stopChan = make(chan struct{})

	go r.watchLoop()

	if err := watcher.Add(r.dir); err != nil {
		r.watcher.Close()
		return fmt.Errorf("watching directory %s: %w", r.dir, err)
	}
	return nil
}

func (r *Registry) watchLoop() {
	for {
		select {
		case <-r.stopChan:
			return

		case event, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if !strings.HasSuffix(event.Name, ".yaml") && !strings.HasSuffix(event.Name, ".yml") {
				continue
			}
			if event.Op&(fsnotify.Create|fsnotify.Write) != 0 {
				// A load failure leaves the previous entries in place.
				_ = r.LoadFile(event.Name)
			}

		case _, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
		}
	}
}

// StopWatch stops watching the pattern directory.
func (r *Registry) StopWatch() {
	if r.stopChan != nil {
		close(r.stopChan)
	}
	if r.watcher != nil {
		r.watcher.Close()
	}
}
