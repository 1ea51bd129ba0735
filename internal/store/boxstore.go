// Package store persists the box inventory as a single JSON document on
// disk. Every operation is one read-modify-write cycle over the whole
// document, serialized by a store-wide mutex so concurrent callers cannot
// lose updates to each other.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/vbonduro/boxqr/internal/domain"
	"github.com/vbonduro/boxqr/internal/itemtext"
)

var (
	// ErrNotFound means the referenced box id does not exist.
	ErrNotFound = errors.New("box not found")
	// ErrInvalid means a required field was empty or a payload was malformed.
	ErrInvalid = errors.New("invalid input")
	// ErrItemIndex means an item index is outside the box's item list.
	ErrItemIndex = errors.New("item index out of range")
)

// deleteConfirmation is the token a caller must supply to delete a box.
// Matched case-insensitively after trimming.
const deleteConfirmation = "DELETE"

// BoxStore owns the document file at path. The zero value is not usable;
// construct with NewBoxStore.
type BoxStore struct {
	path string
	mu   sync.Mutex
}

func NewBoxStore(path string) *BoxStore {
	return &BoxStore{path: path}
}

// Load returns the current document, creating and persisting the canonical
// empty document if none exists yet.
func (s *BoxStore) Load(ctx context.Context) (*domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load()
}

// GetBox returns the box with the given id, or ErrNotFound.
func (s *BoxStore) GetBox(ctx context.Context, id string) (*domain.Box, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	box := findBox(doc, id)
	if box == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return box, nil
}

// CreateBox parses rawItemsText into items, assigns a fresh id, and prepends
// the new box so listings show newest boxes first.
func (s *BoxStore) CreateBox(ctx context.Context, name, location, rawItemsText string) (*domain.Box, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: box name required", ErrInvalid)
	}

	items := itemtext.Parse(rawItemsText)
	for i := range items {
		items[i].Qty = clampQty(items[i].Qty)
	}

	box := &domain.Box{
		ID:       uuid.NewString(),
		Name:     name,
		Location: strings.TrimSpace(location),
		Items:    items,
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	doc.Boxes = append([]*domain.Box{box}, doc.Boxes...)
	if err := s.save(doc); err != nil {
		return nil, err
	}
	return box, nil
}

// UpdateBox overwrites the box's name and location in place, preserving its
// id and items.
func (s *BoxStore) UpdateBox(ctx context.Context, id, name, location string) (*domain.Box, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: box name required", ErrInvalid)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	box := findBox(doc, id)
	if box == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	box.Name = name
	box.Location = strings.TrimSpace(location)
	if err := s.save(doc); err != nil {
		return nil, err
	}
	return box, nil
}

// DeleteBox removes the box and everything in it. The confirmation token
// must read "DELETE" (any case); this is the only guard against fat-fingered
// deletes, so it is checked before anything is touched.
func (s *BoxStore) DeleteBox(ctx context.Context, id, confirm string) error {
	if !strings.EqualFold(strings.TrimSpace(confirm), deleteConfirmation) {
		return fmt.Errorf("%w: type %q to confirm", ErrInvalid, deleteConfirmation)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return err
	}
	kept := doc.Boxes[:0]
	for _, b := range doc.Boxes {
		if b.ID != id {
			kept = append(kept, b)
		}
	}
	if len(kept) == len(doc.Boxes) {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	doc.Boxes = kept
	return s.save(doc)
}

// AddItem appends an item to the box's item list.
func (s *BoxStore) AddItem(ctx context.Context, boxID, name string, qty int) (*domain.Box, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: item name required", ErrInvalid)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	box := findBox(doc, boxID)
	if box == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, boxID)
	}
	box.Items = append(box.Items, domain.Item{Name: name, Qty: clampQty(qty)})
	if err := s.save(doc); err != nil {
		return nil, err
	}
	return box, nil
}

// UpdateItem replaces the item at the given position.
func (s *BoxStore) UpdateItem(ctx context.Context, boxID string, index int, name string, qty int) (*domain.Box, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: item name required", ErrInvalid)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	box := findBox(doc, boxID)
	if box == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, boxID)
	}
	if index < 0 || index >= len(box.Items) {
		return nil, fmt.Errorf("%w: %d", ErrItemIndex, index)
	}
	box.Items[index] = domain.Item{Name: name, Qty: clampQty(qty)}
	if err := s.save(doc); err != nil {
		return nil, err
	}
	return box, nil
}

// DeleteItem removes the item at the given position, shifting the tail down.
func (s *BoxStore) DeleteItem(ctx context.Context, boxID string, index int) (*domain.Box, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	doc, err := s.load()
	if err != nil {
		return nil, err
	}
	box := findBox(doc, boxID)
	if box == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, boxID)
	}
	if index < 0 || index >= len(box.Items) {
		return nil, fmt.Errorf("%w: %d", ErrItemIndex, index)
	}
	box.Items = append(box.Items[:index], box.Items[index+1:]...)
	if err := s.save(doc); err != nil {
		return nil, err
	}
	return box, nil
}

// Import wholly replaces the document with the uploaded payload. The only
// validation is the shape check — a JSON object with a "boxes" sequence —
// because this is a deliberate bulk-overwrite escape hatch. Missing optional
// fields default to empty, matching creation defaults.
func (s *BoxStore) Import(ctx context.Context, payload []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(payload, &raw); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	rawBoxes, ok := raw["boxes"]
	if !ok {
		return fmt.Errorf(`%w: expected {"boxes": [...]}`, ErrInvalid)
	}
	var boxes []*domain.Box
	if err := json.Unmarshal(rawBoxes, &boxes); err != nil {
		return fmt.Errorf(`%w: expected {"boxes": [...]}`, ErrInvalid)
	}

	doc := &domain.Document{Boxes: boxes}
	normalize(doc)

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(doc)
}

// Export returns the persisted document bytes verbatim, or the canonical
// empty encoding if nothing has been persisted yet.
func (s *BoxStore) Export(ctx context.Context) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return encode(emptyDocument())
		}
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	return data, nil
}

// load reads the whole document, lazily creating the empty one. Callers must
// hold the store mutex.
func (s *BoxStore) load() (*domain.Document, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			doc := emptyDocument()
			if err := s.save(doc); err != nil {
				return nil, err
			}
			return doc, nil
		}
		return nil, fmt.Errorf("failed to read document: %w", err)
	}

	doc := &domain.Document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}
	normalize(doc)
	return doc, nil
}

// save writes the whole document through a temp file and rename so a failed
// write never leaves a partial document behind.
func (s *BoxStore) save(doc *domain.Document) error {
	normalize(doc)
	data, err := encode(doc)
	if err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".boxes-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp document: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write document: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to close document: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace document: %w", err)
	}
	return nil
}

func findBox(doc *domain.Document, id string) *domain.Box {
	for _, b := range doc.Boxes {
		if b.ID == id {
			return b
		}
	}
	return nil
}

// normalize replaces nil slices so the encoded document always carries
// "boxes": [] and "items": [] rather than null.
func normalize(doc *domain.Document) {
	if doc.Boxes == nil {
		doc.Boxes = []*domain.Box{}
	}
	for _, b := range doc.Boxes {
		if b.Items == nil {
			b.Items = []domain.Item{}
		}
	}
}

func encode(doc *domain.Document) ([]byte, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode document: %w", err)
	}
	return append(data, '\n'), nil
}

func emptyDocument() *domain.Document {
	return &domain.Document{Boxes: []*domain.Box{}}
}

func clampQty(qty int) int {
	if qty < 1 {
		return 1
	}
	return qty
}
