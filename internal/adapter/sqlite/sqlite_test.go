package sqlite

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"slot-engine/internal/adapter/usecase"
	"slot-engine/internal/config/configs"
	"slot-engine/internal/core/domain"
	"slot-engine/internal/core/port"
	"slot-engine/internal/db"
)

func ptr[T any](v T) *T { return &v }

func openTestDB(t *testing.T, f *db.Fixture) *sql.DB {
	t.Helper()
	ctx := context.Background()

	conn, err := db.NewSQLite(ctx, filepath.Join(t.TempDir(), "catalog.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	require.NoError(t, db.MigrateSQLite(conn))
	if f != nil {
		require.NoError(t, Seed(ctx, conn, f))
	}
	return conn
}

func headlineFixture() *db.Fixture {
	return &db.Fixture{
		Contents: []db.ContentFixture{{ID: 1, Title: "one"}, {ID: 2, Title: "two"}, {ID: 3, Title: "three"}},
		Ads: []db.AdFixture{
			{ID: 10, Name: "banner", Placement: "sidebar", Active: true, HeadlineSlot: ptr(4)},
			{ID: 11, Name: "off", Placement: "sidebar", Active: false},
		},
		SliderAds: []db.SliderAdFixture{{ID: 20, Name: "slide", Active: true, SecondarySlot: ptr(1)}},
		Pinned: []db.PinnedFixture{
			{Area: 1, Slot: 1, ContentID: 1},
			{Area: 1, Slot: 2, ContentID: 2},
			{Area: 1, Slot: 3, ContentID: 3},
		},
	}
}

func TestAdRepository_ListActiveAds(t *testing.T) {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	conn := openTestDB(t, &db.Fixture{Ads: []db.AdFixture{
		{ID: 2, Name: "b", Placement: "header", Active: true, Device: "mobile", NewsID: ptr(int64(7)), StartDate: &start},
		{ID: 1, Name: "a", Placement: "header", Active: true},
		{ID: 3, Name: "c", Placement: "header", Active: false},
		{ID: 4, Name: "d", Placement: "footer", Active: true},
	}})
	repo := NewAdRepository(conn)

	ads, err := repo.ListActiveAds(context.Background(), "header")
	require.NoError(t, err)
	require.Len(t, ads, 2)

	assert.Equal(t, int64(1), ads[0].ID)
	assert.Equal(t, domain.DeviceAll, ads[0].Targeting.Device)
	assert.Nil(t, ads[0].Targeting.NewsID)

	assert.Equal(t, int64(2), ads[1].ID)
	assert.Equal(t, domain.DeviceMobile, ads[1].Targeting.Device)
	require.NotNil(t, ads[1].Targeting.NewsID)
	assert.Equal(t, int64(7), *ads[1].Targeting.NewsID)
	require.NotNil(t, ads[1].StartDate)
	assert.True(t, start.Equal(*ads[1].StartDate))
	assert.Nil(t, ads[1].EndDate)
}

func TestAdRepository_Counters(t *testing.T) {
	conn := openTestDB(t, headlineFixture())
	repo := NewAdRepository(conn)
	ctx := context.Background()

	n, err := repo.IncrementViews(ctx, domain.EntryRef{Kind: domain.KindAd, ID: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	n, err = repo.IncrementViews(ctx, domain.EntryRef{Kind: domain.KindAd, ID: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	n, err = repo.IncrementClicks(ctx, domain.EntryRef{Kind: domain.KindSliderAd, ID: 20})
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	_, err = repo.IncrementClicks(ctx, domain.EntryRef{Kind: domain.KindAd, ID: 999})
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = repo.IncrementViews(ctx, domain.EntryRef{Kind: domain.KindPinned, ID: 1})
	assert.ErrorIs(t, err, domain.ErrInvalidKind)
}

func TestHeadlineRepository_Lists(t *testing.T) {
	conn := openTestDB(t, headlineFixture())
	repo := NewHeadlineRepository(conn)
	ctx := context.Background()

	pinned, err := repo.ListPinned(ctx, domain.AreaPrimary)
	require.NoError(t, err)
	assert.Equal(t, []domain.HeadlineEntry{
		{Kind: domain.KindPinned, ID: 1, Slot: 1, Label: "one"},
		{Kind: domain.KindPinned, ID: 2, Slot: 2, Label: "two"},
		{Kind: domain.KindPinned, ID: 3, Slot: 3, Label: "three"},
	}, pinned)

	ads, err := repo.ListAdUnits(ctx, domain.AreaPrimary)
	require.NoError(t, err)
	assert.Equal(t, []domain.HeadlineEntry{{Kind: domain.KindAd, ID: 10, Slot: 4, Label: "banner"}}, ads)

	sliders, err := repo.ListSliderUnits(ctx, domain.AreaPrimary)
	require.NoError(t, err)
	assert.Empty(t, sliders)

	sliders, err = repo.ListSliderUnits(ctx, domain.AreaSecondary)
	require.NoError(t, err)
	assert.Equal(t, []domain.HeadlineEntry{{Kind: domain.KindSliderAd, ID: 20, Slot: 1, Label: "slide"}}, sliders)
}

func TestHeadlineRepository_PinnedRemoval(t *testing.T) {
	conn := openTestDB(t, headlineFixture())
	repo := NewHeadlineRepository(conn)
	store := repo.Slots()[domain.KindPinned]
	ctx := context.Background()

	require.NoError(t, store.ClearSlot(ctx, domain.AreaPrimary, 3))

	_, err := store.CurrentSlot(ctx, domain.AreaPrimary, 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	pinned, err := repo.ListPinned(ctx, domain.AreaPrimary)
	require.NoError(t, err)
	for _, e := range pinned {
		assert.NotEqual(t, int64(3), e.ID)
	}

	var rows int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM headline_slots WHERE content_id = 3`).Scan(&rows))
	assert.Zero(t, rows)

	assert.ErrorIs(t, store.ClearSlot(ctx, domain.AreaPrimary, 3), domain.ErrNotFound)
}

func TestPinnedSlots_SwapConverges(t *testing.T) {
	conn := openTestDB(t, headlineFixture())
	repo := NewHeadlineRepository(conn)
	store := repo.Slots()[domain.KindPinned]
	ctx := context.Background()

	// 1 takes 2's slot first; 2 then claims 1's old slot
	require.NoError(t, store.AssignSlot(ctx, domain.AreaPrimary, 1, 2))
	require.NoError(t, store.AssignSlot(ctx, domain.AreaPrimary, 2, 1))

	slot, err := store.CurrentSlot(ctx, domain.AreaPrimary, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, slot)
	slot, err = store.CurrentSlot(ctx, domain.AreaPrimary, 2)
	require.NoError(t, err)
	assert.Equal(t, 1, slot)

	pinned, err := repo.ListPinned(ctx, domain.AreaPrimary)
	require.NoError(t, err)
	assert.Len(t, pinned, 3)
}

func TestUnitSlots(t *testing.T) {
	conn := openTestDB(t, headlineFixture())
	store := NewHeadlineRepository(conn).Slots()[domain.KindAd]
	ctx := context.Background()

	_, err := store.CurrentSlot(ctx, domain.AreaSecondary, 10)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	require.NoError(t, store.AssignSlot(ctx, domain.AreaSecondary, 10, 7))
	slot, err := store.CurrentSlot(ctx, domain.AreaSecondary, 10)
	require.NoError(t, err)
	assert.Equal(t, 7, slot)

	require.NoError(t, store.ClearSlot(ctx, domain.AreaSecondary, 10))
	assert.ErrorIs(t, store.ClearSlot(ctx, domain.AreaSecondary, 10), domain.ErrNotFound)
	assert.ErrorIs(t, store.AssignSlot(ctx, domain.AreaPrimary, 999, 1), domain.ErrNotFound)
}

func TestHeadlineRepository_Version(t *testing.T) {
	conn := openTestDB(t, nil)
	repo := NewHeadlineRepository(conn)
	ctx := context.Background()

	v, err := repo.Version(ctx, domain.AreaPrimary)
	require.NoError(t, err)
	assert.Zero(t, v)

	v, err = repo.AdvanceVersion(ctx, domain.AreaPrimary, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(1), v)

	_, err = repo.AdvanceVersion(ctx, domain.AreaPrimary, 0)
	assert.ErrorIs(t, err, domain.ErrVersionConflict)

	v, err = repo.BumpVersion(ctx, domain.AreaPrimary)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v)

	v, err = repo.Version(ctx, domain.AreaSecondary)
	require.NoError(t, err)
	assert.Zero(t, v)
}

// A partial order may not evict pinned content or stack an ad onto a
// pinned slot.
func TestReorder_PartialOrderKeepsOccupants(t *testing.T) {
	conn := openTestDB(t, headlineFixture())
	repo := NewHeadlineRepository(conn)
	uc := usecase.NewHeadlineUseCase(repo, repo.Slots(), nil,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		configs.Reconcile{Concurrency: 4, WriteTimeout: time.Second})
	ctx := context.Background()

	for _, order := range [][]domain.EntryRef{
		{{Kind: domain.KindPinned, ID: 2}},
		{{Kind: domain.KindAd, ID: 10}},
	} {
		_, err := uc.Reorder(ctx, port.ReorderRequest{Area: domain.AreaPrimary, Order: order})
		assert.ErrorIs(t, err, domain.ErrSlotOccupied)
	}

	h, err := uc.Compose(ctx, domain.AreaPrimary)
	require.NoError(t, err)
	assert.Empty(t, h.Warnings)
	got := make([]domain.EntryRef, 0, len(h.Entries))
	for _, e := range h.Entries {
		got = append(got, e.Ref())
	}
	assert.Equal(t, []domain.EntryRef{
		{Kind: domain.KindPinned, ID: 1},
		{Kind: domain.KindPinned, ID: 2},
		{Kind: domain.KindPinned, ID: 3},
		{Kind: domain.KindAd, ID: 10},
	}, got)

	// a full order may rearrange the same occupants
	res, err := uc.Reorder(ctx, port.ReorderRequest{Area: domain.AreaPrimary, Order: []domain.EntryRef{
		{Kind: domain.KindPinned, ID: 2},
		{Kind: domain.KindPinned, ID: 1},
		{Kind: domain.KindPinned, ID: 3},
		{Kind: domain.KindAd, ID: 10},
	}})
	require.NoError(t, err)
	assert.Equal(t, 2, res.Writes)
	assert.Equal(t, 2, res.Unchanged)
}

func TestPinnedSlots_DeletedContentFreesSlot(t *testing.T) {
	conn := openTestDB(t, headlineFixture())
	store := NewHeadlineRepository(conn).Slots()[domain.KindPinned]
	ctx := context.Background()

	_, err := conn.ExecContext(ctx, `DELETE FROM contents WHERE id = 3`)
	require.NoError(t, err)

	_, err = store.CurrentSlot(ctx, domain.AreaPrimary, 3)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	var rows int
	require.NoError(t, conn.QueryRow(`SELECT COUNT(*) FROM headline_slots WHERE area = 1 AND slot = 3`).Scan(&rows))
	assert.Zero(t, rows)
}
