package service

import (
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vbonduro/boxqr/internal/domain"
	"github.com/vbonduro/boxqr/internal/store"
)

// stubNormalizer records its input and returns a canned rewrite.
type stubNormalizer struct {
	got    string
	result string
	err    error
}

func (n *stubNormalizer) Normalize(_ context.Context, text string) (string, error) {
	n.got = text
	return n.result, n.err
}

func newTestService(t *testing.T, normalizer *stubNormalizer) *BoxService {
	t.Helper()
	boxStore := store.NewBoxStore(filepath.Join(t.TempDir(), "boxes.json"))
	if normalizer == nil {
		return NewBoxService(boxStore, nil, "http://boxes.test", slog.Default())
	}
	return NewBoxService(boxStore, normalizer, "http://boxes.test", slog.Default())
}

func TestCreateBoxParsesItems(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	box, err := svc.CreateBox(ctx, "Tent Kit", "Garage-A", "Tent,1\nStove x2", false)
	require.NoError(t, err)
	assert.Equal(t, []domain.Item{
		{Name: "Tent", Qty: 1},
		{Name: "Stove", Qty: 2},
	}, box.Items)

	boxes, err := svc.ListBoxes(ctx)
	require.NoError(t, err)
	require.Len(t, boxes, 1)
	assert.Equal(t, box.ID, boxes[0].ID)
}

func TestCreateBoxSmartUsesNormalizer(t *testing.T) {
	n := &stubNormalizer{result: "Tent,1\nStove,2"}
	svc := newTestService(t, n)

	box, err := svc.CreateBox(context.Background(), "Kit", "", "a tent and two stoves", true)
	require.NoError(t, err)
	assert.Equal(t, "a tent and two stoves", n.got)
	assert.Equal(t, []domain.Item{
		{Name: "Tent", Qty: 1},
		{Name: "Stove", Qty: 2},
	}, box.Items)
}

func TestCreateBoxSmartFallsBackOnAssistError(t *testing.T) {
	n := &stubNormalizer{err: errors.New("model offline")}
	svc := newTestService(t, n)

	box, err := svc.CreateBox(context.Background(), "Kit", "", "Tent,1", true)
	require.NoError(t, err)
	assert.Equal(t, []domain.Item{{Name: "Tent", Qty: 1}}, box.Items)
}

func TestCreateBoxSmartWithoutNormalizer(t *testing.T) {
	svc := newTestService(t, nil)

	box, err := svc.CreateBox(context.Background(), "Kit", "", "Tent,1", true)
	require.NoError(t, err)
	assert.Equal(t, []domain.Item{{Name: "Tent", Qty: 1}}, box.Items)
}

func TestPublicURL(t *testing.T) {
	svc := newTestService(t, nil)
	assert.Equal(t, "http://boxes.test/b/abc", svc.PublicURL("abc"))
}

func TestQRPNGUnknownBox(t *testing.T) {
	svc := newTestService(t, nil)

	_, err := svc.QRPNG(context.Background(), "nope", 200)
	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestLabelPNG(t *testing.T) {
	svc := newTestService(t, nil)
	ctx := context.Background()

	box, err := svc.CreateBox(ctx, "Camping Gear", "", "", false)
	require.NoError(t, err)

	png, err := svc.LabelPNG(ctx, box.ID)
	require.NoError(t, err)
	assert.Equal(t, "\x89PNG", string(png[:4]))
}
