package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"slot-engine/internal/core/domain"
	"slot-engine/internal/core/port"
	"slot-engine/internal/core/port/mocks"
)

var (
	pinA = domain.EntryRef{Kind: domain.KindPinned, ID: 1}
	pinB = domain.EntryRef{Kind: domain.KindPinned, ID: 2}
	pinC = domain.EntryRef{Kind: domain.KindPinned, ID: 3}
	adX  = domain.EntryRef{Kind: domain.KindAd, ID: 7}
)

func (f *headlineFixture) current(store *mocks.MockSlotStore, area domain.Area, id int64, slot int) {
	store.EXPECT().CurrentSlot(mock.Anything, area, id).Return(slot, nil)
}

// Only entries whose slot differs from their target position are written.
// B already sits in the slot its position maps to and is left alone.
func TestReorder_MinimalWrites(t *testing.T) {
	f := newHeadlineFixture(t, nil)
	f.occupants(domain.AreaPrimary, 5,
		[]domain.HeadlineEntry{entry(domain.KindPinned, 1, 1), entry(domain.KindPinned, 2, 3), entry(domain.KindPinned, 3, 4)},
		nil, nil)
	f.current(f.pinned, domain.AreaPrimary, 1, 1)
	f.current(f.pinned, domain.AreaPrimary, 2, 3)
	f.current(f.pinned, domain.AreaPrimary, 3, 4)

	f.catalog.EXPECT().AdvanceVersion(mock.Anything, domain.AreaPrimary, int64(5)).Return(6, nil).Once()
	f.pinned.EXPECT().AssignSlot(mock.Anything, domain.AreaPrimary, int64(3), 1).Return(nil).Once()
	f.pinned.EXPECT().AssignSlot(mock.Anything, domain.AreaPrimary, int64(1), 2).Return(nil).Once()

	res, err := f.uc.Reorder(context.Background(), port.ReorderRequest{
		Area:    domain.AreaPrimary,
		Version: 5,
		Order:   []domain.EntryRef{pinC, pinA, pinB},
	})
	require.NoError(t, err)

	assert.Equal(t, 2, res.Writes)
	assert.Equal(t, 1, res.Unchanged)
	assert.Equal(t, int64(6), res.Version)
	assert.False(t, res.Reload)
}

func TestReorder_IdenticalOrderWritesNothing(t *testing.T) {
	notifier := mocks.NewMockHeadlineNotifier(t)
	f := newHeadlineFixture(t, notifier)
	f.occupants(domain.AreaPrimary, 9,
		[]domain.HeadlineEntry{entry(domain.KindPinned, 1, 1), entry(domain.KindPinned, 2, 2)},
		[]domain.HeadlineEntry{entry(domain.KindAd, 7, 3)},
		nil)
	f.current(f.pinned, domain.AreaPrimary, 1, 1)
	f.current(f.pinned, domain.AreaPrimary, 2, 2)
	f.current(f.ads, domain.AreaPrimary, 7, 3)

	res, err := f.uc.Reorder(context.Background(), port.ReorderRequest{
		Area:    domain.AreaPrimary,
		Version: 2, // stale, but nothing would be written
		Order:   []domain.EntryRef{pinA, pinB, adX},
	})
	require.NoError(t, err)

	assert.Zero(t, res.Writes)
	assert.Equal(t, 3, res.Unchanged)
	assert.Equal(t, int64(9), res.Version)
	f.catalog.AssertNotCalled(t, "AdvanceVersion", mock.Anything, mock.Anything, mock.Anything)
	f.pinned.AssertNotCalled(t, "AssignSlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReorder_AggregatesFailures(t *testing.T) {
	notifier := mocks.NewMockHeadlineNotifier(t)
	f := newHeadlineFixture(t, notifier)
	f.occupants(domain.AreaSecondary, 0,
		[]domain.HeadlineEntry{entry(domain.KindPinned, 1, 2), entry(domain.KindPinned, 2, 3)},
		[]domain.HeadlineEntry{entry(domain.KindAd, 7, 1)},
		nil)
	f.current(f.pinned, domain.AreaSecondary, 1, 2)
	f.current(f.pinned, domain.AreaSecondary, 2, 3)
	f.current(f.ads, domain.AreaSecondary, 7, 1)

	f.catalog.EXPECT().AdvanceVersion(mock.Anything, domain.AreaSecondary, int64(0)).Return(1, nil)
	f.ads.EXPECT().AssignSlot(mock.Anything, domain.AreaSecondary, int64(7), 3).Return(errors.New("lock timeout"))
	f.pinned.EXPECT().AssignSlot(mock.Anything, domain.AreaSecondary, int64(1), 1).Return(nil)
	f.pinned.EXPECT().AssignSlot(mock.Anything, domain.AreaSecondary, int64(2), 2).Return(errors.New("conn closed"))
	notifier.EXPECT().NotifyHeadlineChanged(mock.Anything, mock.MatchedBy(func(c domain.HeadlineChange) bool {
		return len(c.Refs) == 1 && c.Refs[0] == pinA
	})).Return(nil).Once()

	res, err := f.uc.Reorder(context.Background(), port.ReorderRequest{
		Area:  domain.AreaSecondary,
		Order: []domain.EntryRef{pinA, pinB, adX},
	})

	var perr *domain.PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 2, perr.Len())
	assert.ElementsMatch(t, []domain.EntryRef{pinB, adX}, perr.Failed())

	require.NotNil(t, res)
	assert.True(t, res.Reload)
	assert.Equal(t, 1, res.Writes)
	assert.Equal(t, 2, res.Failed)
}

// No change is announced when nothing reached storage.
func TestReorder_AllWritesFailedIsNotAnnounced(t *testing.T) {
	notifier := mocks.NewMockHeadlineNotifier(t)
	f := newHeadlineFixture(t, notifier)
	f.occupants(domain.AreaPrimary, 1,
		[]domain.HeadlineEntry{entry(domain.KindPinned, 2, 1), entry(domain.KindPinned, 1, 2)},
		nil, nil)
	f.current(f.pinned, domain.AreaPrimary, 1, 2)
	f.current(f.pinned, domain.AreaPrimary, 2, 1)
	f.catalog.EXPECT().AdvanceVersion(mock.Anything, domain.AreaPrimary, int64(1)).Return(2, nil)
	f.pinned.EXPECT().AssignSlot(mock.Anything, domain.AreaPrimary, int64(1), 1).Return(errors.New("deadlock detected"))
	f.pinned.EXPECT().AssignSlot(mock.Anything, domain.AreaPrimary, int64(2), 2).Return(errors.New("deadlock detected"))

	res, err := f.uc.Reorder(context.Background(), port.ReorderRequest{
		Area:    domain.AreaPrimary,
		Version: 1,
		Order:   []domain.EntryRef{pinA, pinB},
	})
	var perr *domain.PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.Zero(t, res.Writes)
	assert.Equal(t, 2, res.Failed)
	notifier.AssertNotCalled(t, "NotifyHeadlineChanged", mock.Anything, mock.Anything)
}

// A partial order must not move anything onto a slot held by an entry it
// leaves out.
func TestReorder_RejectsTargetHeldOutsideOrder(t *testing.T) {
	pinned := []domain.HeadlineEntry{
		entry(domain.KindPinned, 1, 1),
		entry(domain.KindPinned, 2, 2),
		entry(domain.KindPinned, 3, 3),
	}
	cases := []struct {
		name  string
		ads   []domain.HeadlineEntry
		order []domain.EntryRef
	}{
		{
			name:  "pinned onto pinned",
			ads:   []domain.HeadlineEntry{entry(domain.KindAd, 7, 4)},
			order: []domain.EntryRef{pinB},
		},
		{
			name:  "ad onto pinned",
			ads:   []domain.HeadlineEntry{entry(domain.KindAd, 7, 4)},
			order: []domain.EntryRef{adX},
		},
		{
			name:  "slot held by a hidden duplicate",
			ads:   []domain.HeadlineEntry{entry(domain.KindAd, 7, 1)},
			order: []domain.EntryRef{pinA, pinB, pinC},
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newHeadlineFixture(t, nil)
			f.occupants(domain.AreaPrimary, 2, pinned, tc.ads, nil)

			_, err := f.uc.Reorder(context.Background(), port.ReorderRequest{
				Area:    domain.AreaPrimary,
				Version: 2,
				Order:   tc.order,
			})
			assert.ErrorIs(t, err, domain.ErrSlotOccupied)
			f.catalog.AssertNotCalled(t, "AdvanceVersion", mock.Anything, mock.Anything, mock.Anything)
			f.pinned.AssertNotCalled(t, "AssignSlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			f.ads.AssertNotCalled(t, "AssignSlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestReorder_VersionConflict(t *testing.T) {
	f := newHeadlineFixture(t, nil)
	f.occupants(domain.AreaPrimary, 3,
		[]domain.HeadlineEntry{entry(domain.KindPinned, 2, 1), entry(domain.KindPinned, 1, 2)},
		nil, nil)
	f.current(f.pinned, domain.AreaPrimary, 1, 2)
	f.current(f.pinned, domain.AreaPrimary, 2, 1)
	f.catalog.EXPECT().AdvanceVersion(mock.Anything, domain.AreaPrimary, int64(3)).Return(0, domain.ErrVersionConflict)

	res, err := f.uc.Reorder(context.Background(), port.ReorderRequest{
		Area:    domain.AreaPrimary,
		Version: 3,
		Order:   []domain.EntryRef{pinA, pinB},
	})
	assert.ErrorIs(t, err, domain.ErrVersionConflict)
	require.NotNil(t, res)
	assert.True(t, res.Reload)
	f.pinned.AssertNotCalled(t, "AssignSlot", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestReorder_RejectedWhileInFlight(t *testing.T) {
	f := newHeadlineFixture(t, nil)
	release, err := f.uc.acquire(domain.AreaPrimary)
	require.NoError(t, err)
	defer release()

	_, err = f.uc.Reorder(context.Background(), port.ReorderRequest{
		Area:  domain.AreaPrimary,
		Order: []domain.EntryRef{pinA},
	})
	assert.ErrorIs(t, err, domain.ErrEditInProgress)
}

// Recommendations keep their position in the list but are never written.
func TestReorder_SkipsRecommendations(t *testing.T) {
	f := newHeadlineFixture(t, nil)
	rec := domain.EntryRef{Kind: domain.KindRecommendation, ID: 99}
	f.occupants(domain.AreaPrimary, 0, []domain.HeadlineEntry{entry(domain.KindPinned, 1, 1)}, nil, nil)
	f.current(f.pinned, domain.AreaPrimary, 1, 1)
	f.catalog.EXPECT().AdvanceVersion(mock.Anything, domain.AreaPrimary, int64(0)).Return(1, nil)
	f.pinned.EXPECT().AssignSlot(mock.Anything, domain.AreaPrimary, int64(1), 2).Return(nil).Once()

	res, err := f.uc.Reorder(context.Background(), port.ReorderRequest{
		Area:  domain.AreaPrimary,
		Order: []domain.EntryRef{rec, pinA},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Skipped)
	assert.Equal(t, 1, res.Writes)
}

func TestReorder_UnassignedEntryIsWritten(t *testing.T) {
	f := newHeadlineFixture(t, nil)
	f.occupants(domain.AreaPrimary, 0, nil, nil, nil)
	f.pinned.EXPECT().CurrentSlot(mock.Anything, domain.AreaPrimary, int64(1)).Return(0, domain.ErrNotFound)
	f.catalog.EXPECT().AdvanceVersion(mock.Anything, domain.AreaPrimary, int64(0)).Return(1, nil)
	f.pinned.EXPECT().AssignSlot(mock.Anything, domain.AreaPrimary, int64(1), 1).Return(nil).Once()

	res, err := f.uc.Reorder(context.Background(), port.ReorderRequest{
		Area:  domain.AreaPrimary,
		Order: []domain.EntryRef{pinA},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Writes)
}

func TestReorder_ReadFailureRequiresReload(t *testing.T) {
	f := newHeadlineFixture(t, nil)
	f.occupants(domain.AreaPrimary, 4, nil, nil, nil)
	f.pinned.EXPECT().CurrentSlot(mock.Anything, domain.AreaPrimary, int64(1)).Return(0, errors.New("io error"))

	res, err := f.uc.Reorder(context.Background(), port.ReorderRequest{
		Area:  domain.AreaPrimary,
		Order: []domain.EntryRef{pinA},
	})
	var perr *domain.PersistenceError
	require.ErrorAs(t, err, &perr)
	assert.True(t, res.Reload)
	assert.Equal(t, 1, res.Failed)
	assert.Equal(t, int64(4), res.Version)
}

func TestReorder_Validation(t *testing.T) {
	f := newHeadlineFixture(t, nil)
	ctx := context.Background()

	long := make([]domain.EntryRef, 0, domain.MaxSlots+1)
	for i := range domain.MaxSlots + 1 {
		long = append(long, domain.EntryRef{Kind: domain.KindAd, ID: int64(i + 1)})
	}

	cases := []struct {
		name string
		req  port.ReorderRequest
		want error
	}{
		{"bad area", port.ReorderRequest{Area: 5, Order: []domain.EntryRef{pinA}}, domain.ErrInvalidArea},
		{"duplicate ref", port.ReorderRequest{Area: 1, Order: []domain.EntryRef{pinA, pinB, pinA}}, domain.ErrInvalidOrder},
		{"unknown kind", port.ReorderRequest{Area: 1, Order: []domain.EntryRef{{Kind: "video", ID: 1}}}, domain.ErrInvalidKind},
		{"past last slot", port.ReorderRequest{Area: 1, Order: long}, domain.ErrSlotOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := f.uc.Reorder(ctx, tc.req)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
