package ingest

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/ranacirrusgo/policynav/internal/model"
)

const libraryFile = "documents.json"

// Library is the persistent document store backing the knowledge base.
// Documents are kept in memory and flushed to a JSON file under the
// data directory.
type Library struct {
	dir string

	mu   sync.RWMutex
	docs map[string]model.Document
}

// NewLibrary creates a library rooted at dir, loading any previously
// saved documents.
func NewLibrary(dir string) (*Library, error) {
	l := &Library{
		dir:  dir,
		docs: make(map[string]model.Document),
	}

	if err := l.load(); err != nil {
		return nil, err
	}

	return l, nil
}

// Add inserts or replaces documents by ID.
func (l *Library) Add(docs ...model.Document) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, doc := range docs {
		l.docs[doc.ID] = doc
	}
}

// Get returns the document with the given ID.
func (l *Library) Get(id string) (model.Document, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	doc, ok := l.docs[id]
	return doc, ok
}

// All returns every document ordered by ID.
func (l *Library) All() []model.Document {
	l.mu.RLock()
	defer l.mu.RUnlock()

	docs := make([]model.Document, 0, len(l.docs))
	for _, doc := range l.docs {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })

	return docs
}

// Len returns the number of stored documents.
func (l *Library) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.docs)
}

// Save flushes the library to disk.
func (l *Library) Save() error {
	docs := l.All()

	data, err := json.MarshalIndent(docs, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal documents: %w", err)
	}

	if err := os.MkdirAll(l.dir, 0755); err != nil {
		return fmt.Errorf("create data dir: %w", err)
	}

	if err := os.WriteFile(l.path(), data, 0644); err != nil {
		return fmt.Errorf("write documents: %w", err)
	}

	return nil
}

func (l *Library) load() error {
	data, err := os.ReadFile(l.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("read documents: %w", err)
	}

	var docs []model.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return fmt.Errorf("parse documents: %w", err)
	}

	for _, doc := range docs {
		l.docs[doc.ID] = doc
	}

	return nil
}

func (l *Library) path() string {
	return filepath.Join(l.dir, libraryFile)
}
