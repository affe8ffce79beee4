package ordersink

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecord_Text(t *testing.T) {
	rec := Record{
		UserID: 7,
		Phone:  "+79990000000",
		Lines:  []string{"Тоник А — 2 шт. = 2000 ₽", "Крем А — 1 шт. = 800 ₽"},
		Total:  2800,
	}

	text := rec.Text()

	assert.Equal(t, "Новый заказ:\n\nТоник А — 2 шт. = 2000 ₽\nКрем А — 1 шт. = 800 ₽\n\nИтого: 2800 ₽\nТелефон: +79990000000", text)
}

func TestNewRecord(t *testing.T) {
	rec := NewRecord(7, "+79990000000", []string{"a"}, 100)

	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, int64(7), rec.UserID)
	assert.False(t, rec.PlacedAt.IsZero())

	// IDs are unique per order.
	other := NewRecord(7, "+79990000000", []string{"a"}, 100)
	assert.NotEqual(t, rec.ID, other.ID)
}

func TestFileSink_AppendOnly(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.txt")
	sink := NewFileSink(path)
	ctx := context.Background()

	first := NewRecord(1, "+79990000001", []string{"Тоник А — 1 шт. = 1000 ₽"}, 1000)
	second := NewRecord(2, "+79990000002", []string{"Крем А — 2 шт. = 1600 ₽"}, 1600)

	require.NoError(t, sink.Append(ctx, first))
	require.NoError(t, sink.Append(ctx, second))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)

	// Both records present, first before second, nothing overwritten.
	firstIdx := strings.Index(content, "+79990000001")
	secondIdx := strings.Index(content, "+79990000002")
	require.GreaterOrEqual(t, firstIdx, 0)
	require.Greater(t, secondIdx, firstIdx)
	assert.Equal(t, 2, strings.Count(content, "Новый заказ:"))
}

func TestFileSink_CreatesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orders.txt")
	sink := NewFileSink(path)

	require.NoError(t, sink.Append(context.Background(), NewRecord(1, "+7", nil, 0)))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}

func TestMulti_FansOutAndJoinsErrors(t *testing.T) {
	ok := &recordingSink{}
	bad := &recordingSink{err: assert.AnError}
	multi := Multi{bad, ok}

	err := multi.Append(context.Background(), NewRecord(1, "+7", nil, 0))

	// The healthy sink still received the record.
	assert.Error(t, err)
	assert.Len(t, ok.records, 1)
}

type recordingSink struct {
	records []Record
	err     error
}

func (s *recordingSink) Append(_ context.Context, rec Record) error {
	if s.err != nil {
		return s.err
	}
	s.records = append(s.records, rec)
	return nil
}
