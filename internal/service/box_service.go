package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/vbonduro/boxqr/internal/assist"
	"github.com/vbonduro/boxqr/internal/domain"
	"github.com/vbonduro/boxqr/internal/label"
)

// boxRepository is the subset of store.BoxStore that BoxService requires.
type boxRepository interface {
	Load(ctx context.Context) (*domain.Document, error)
	GetBox(ctx context.Context, id string) (*domain.Box, error)
	CreateBox(ctx context.Context, name, location, rawItemsText string) (*domain.Box, error)
	UpdateBox(ctx context.Context, id, name, location string) (*domain.Box, error)
	DeleteBox(ctx context.Context, id, confirm string) error
	AddItem(ctx context.Context, boxID, name string, qty int) (*domain.Box, error)
	UpdateItem(ctx context.Context, boxID string, index int, name string, qty int) (*domain.Box, error)
	DeleteItem(ctx context.Context, boxID string, index int) (*domain.Box, error)
	Import(ctx context.Context, payload []byte) error
	Export(ctx context.Context) ([]byte, error)
}

type BoxService struct {
	store      boxRepository
	normalizer assist.Normalizer // nil when the assist feature is off
	baseURL    string
	logger     *slog.Logger
}

func NewBoxService(store boxRepository, normalizer assist.Normalizer, baseURL string, logger *slog.Logger) *BoxService {
	return &BoxService{
		store:      store,
		normalizer: normalizer,
		baseURL:    baseURL,
		logger:     logger,
	}
}

func (s *BoxService) ListBoxes(ctx context.Context) ([]*domain.Box, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Boxes, nil
}

func (s *BoxService) GetBox(ctx context.Context, id string) (*domain.Box, error) {
	return s.store.GetBox(ctx, id)
}

// CreateBox registers a new box. When smart is set and an assist backend is
// configured, the raw item text is first rewritten into clean "Name,Qty"
// lines; any assist failure falls back to parsing the text as pasted.
func (s *BoxService) CreateBox(ctx context.Context, name, location, rawItemsText string, smart bool) (*domain.Box, error) {
	if smart && s.normalizer != nil && rawItemsText != "" {
		normalized, err := s.normalizer.Normalize(ctx, rawItemsText)
		if err != nil {
			s.logger.Warn("assist normalize failed, using raw text", "error", err)
		} else {
			s.logger.Debug("assist normalized item text", "bytes", len(normalized))
			rawItemsText = normalized
		}
	}

	box, err := s.store.CreateBox(ctx, name, location, rawItemsText)
	if err != nil {
		return nil, err
	}
	s.logger.Info("box created", "box_id", box.ID, "name", box.Name, "items", len(box.Items))
	return box, nil
}

func (s *BoxService) UpdateBox(ctx context.Context, id, name, location string) (*domain.Box, error) {
	return s.store.UpdateBox(ctx, id, name, location)
}

func (s *BoxService) DeleteBox(ctx context.Context, id, confirm string) error {
	if err := s.store.DeleteBox(ctx, id, confirm); err != nil {
		return err
	}
	s.logger.Info("box deleted", "box_id", id)
	return nil
}

func (s *BoxService) AddItem(ctx context.Context, boxID, name string, qty int) (*domain.Box, error) {
	return s.store.AddItem(ctx, boxID, name, qty)
}

func (s *BoxService) UpdateItem(ctx context.Context, boxID string, index int, name string, qty int) (*domain.Box, error) {
	return s.store.UpdateItem(ctx, boxID, index, name, qty)
}

func (s *BoxService) DeleteItem(ctx context.Context, boxID string, index int) (*domain.Box, error) {
	return s.store.DeleteItem(ctx, boxID, index)
}

func (s *BoxService) Import(ctx context.Context, payload []byte) error {
	if err := s.store.Import(ctx, payload); err != nil {
		return err
	}
	s.logger.Info("document imported", "bytes", len(payload))
	return nil
}

func (s *BoxService) Export(ctx context.Context) ([]byte, error) {
	return s.store.Export(ctx)
}

// PublicURL is the address a box's QR code points at.
func (s *BoxService) PublicURL(boxID string) string {
	return fmt.Sprintf("%s/b/%s", s.baseURL, boxID)
}

// QRPNG renders a square QR code for the box, sized roughly size px.
func (s *BoxService) QRPNG(ctx context.Context, boxID string, size int) ([]byte, error) {
	box, err := s.store.GetBox(ctx, boxID)
	if err != nil {
		return nil, err
	}
	return label.QRPNG(s.PublicURL(box.ID), size)
}

// LabelPNG renders the printable 2x1 label for the box.
func (s *BoxService) LabelPNG(ctx context.Context, boxID string) ([]byte, error) {
	box, err := s.store.GetBox(ctx, boxID)
	if err != nil {
		return nil, err
	}
	return label.LabelPNG(box.Name, s.PublicURL(box.ID))
}
