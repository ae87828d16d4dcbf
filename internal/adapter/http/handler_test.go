package httpadapter

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"slot-engine/internal/core/domain"
	"slot-engine/internal/core/port"
	"slot-engine/internal/core/port/mocks"
)

type fixture struct {
	placements *mocks.MockPlacementUseCase
	headlines  *mocks.MockHeadlineUseCase
	engagement *mocks.MockEngagementUseCase
	handler    http.Handler
}

func newFixture(t *testing.T) *fixture {
	f := &fixture{
		placements: mocks.NewMockPlacementUseCase(t),
		headlines:  mocks.NewMockHeadlineUseCase(t),
		engagement: mocks.NewMockEngagementUseCase(t),
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.handler = NewHandler(f.placements, f.headlines, f.engagement, logger).Router()
	return f
}

func (f *fixture) do(method, target, body string, header ...string) *httptest.ResponseRecorder {
	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, rd)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rec := httptest.NewRecorder()
	f.handler.ServeHTTP(rec, req)
	return rec
}

func TestSelectAds_ParsesContext(t *testing.T) {
	f := newFixture(t)
	f.placements.EXPECT().
		SelectAds(mock.Anything, mock.MatchedBy(func(req domain.SelectRequest) bool {
			return req.Placement == "sidebar" &&
				req.Device == domain.DeviceMobile &&
				req.Page.Type == domain.PageDetail &&
				req.Page.NewsID != nil && *req.Page.NewsID == 42 &&
				req.Page.Category != nil && *req.Page.Category == "sports"
		})).
		Return([]domain.Ad{{ID: 3, Name: "banner", Kind: domain.AdKindImage, Media: "m.png"}}, nil)

	rec := f.do(http.MethodGet, "/api/v1/placements/sidebar/ads?device=mobile&page=detail&news=42&category=sports", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []adView
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
	assert.Equal(t, []adView{{ID: 3, Name: "banner", Kind: "image", Media: "m.png"}}, got)
}

func TestSelectAds_FailsClosed(t *testing.T) {
	f := newFixture(t)
	f.placements.EXPECT().SelectAds(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	rec := f.do(http.MethodGet, "/api/v1/placements/header/ads", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestSelectAds_BadNewsID(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/placements/header/ads?news=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestView_AlwaysNoContent(t *testing.T) {
	f := newFixture(t)
	unit := domain.EntryRef{Kind: domain.KindSliderAd, ID: 9}
	f.engagement.EXPECT().RecordView(mock.Anything, "s-1", unit).Return(false).Once()

	rec := f.do(http.MethodPost, "/api/v1/units/slider_ad/9/view", "", SessionHeader, "s-1")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestClick_RejectsPinnedContent(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodPost, "/api/v1/units/pinned/9/click", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSessions(t *testing.T) {
	f := newFixture(t)
	f.engagement.EXPECT().BeginSession().Return("abc")
	f.engagement.EXPECT().EndSession("abc").Once()

	rec := f.do(http.MethodPost, "/api/v1/sessions", "")
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.JSONEq(t, `{"session_id":"abc"}`, rec.Body.String())

	rec = f.do(http.MethodDelete, "/api/v1/sessions/abc", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestCompose(t *testing.T) {
	f := newFixture(t)
	f.headlines.EXPECT().Compose(mock.Anything, domain.AreaSecondary).Return(&domain.Headline{
		Area:    domain.AreaSecondary,
		Version: 2,
		Entries: []domain.HeadlineEntry{{Kind: domain.KindPinned, ID: 1, Slot: 1}},
	}, nil)

	rec := f.do(http.MethodGet, "/api/v1/headlines/2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"area":2,"version":2,"entries":[{"kind":"pinned","id":1,"slot":1}]}`, rec.Body.String())
}

func TestCompose_InvalidArea(t *testing.T) {
	f := newFixture(t)

	rec := f.do(http.MethodGet, "/api/v1/headlines/7", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestReorder(t *testing.T) {
	f := newFixture(t)
	f.headlines.EXPECT().
		Reorder(mock.Anything, port.ReorderRequest{
			Area:    domain.AreaPrimary,
			Version: 4,
			Order:   []domain.EntryRef{{Kind: domain.KindAd, ID: 2}, {Kind: domain.KindPinned, ID: 1}},
		}).
		Return(&port.ReorderResult{Area: domain.AreaPrimary, Version: 5, Writes: 2}, nil)

	rec := f.do(http.MethodPut, "/api/v1/headlines/1/order",
		`{"version":4,"order":[{"kind":"ad","id":2},{"kind":"pinned","id":1}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var res port.ReorderResult
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&res))
	assert.Equal(t, 2, res.Writes)
}

func TestReorder_ErrorMapping(t *testing.T) {
	failed := domain.EntryRef{Kind: domain.KindAd, ID: 2}
	persistence := &domain.PersistenceError{
		Area:   domain.AreaPrimary,
		Errors: multierror.Append(nil, &domain.SlotWriteError{Ref: failed, Target: 1, Err: errors.New("timeout")}),
	}

	cases := []struct {
		name   string
		err    error
		status int
		reload bool
	}{
		{"in progress", domain.ErrEditInProgress, http.StatusConflict, false},
		{"stale version", domain.ErrVersionConflict, http.StatusPreconditionFailed, true},
		{"bad order", domain.ErrInvalidOrder, http.StatusBadRequest, false},
		{"partial write", persistence, http.StatusInternalServerError, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			f.headlines.EXPECT().Reorder(mock.Anything, mock.Anything).
				Return(&port.ReorderResult{Reload: tc.reload}, tc.err)

			rec := f.do(http.MethodPut, "/api/v1/headlines/1/order", `{"order":[]}`)
			require.Equal(t, tc.status, rec.Code)

			var resp errorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, tc.reload, resp.Reload)
			if tc.err == persistence {
				assert.Equal(t, []domain.EntryRef{failed}, resp.Failed)
			}
		})
	}
}

func TestPlace_Occupied(t *testing.T) {
	f := newFixture(t)
	f.headlines.EXPECT().
		Place(mock.Anything, port.PlaceRequest{Area: domain.AreaPrimary, Ref: domain.EntryRef{Kind: domain.KindAd, ID: 5}, Slot: 3}).
		Return(nil, domain.ErrSlotOccupied)

	rec := f.do(http.MethodPost, "/api/v1/headlines/1/entries", `{"ref":{"kind":"ad","id":5},"slot":3}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestRemove(t *testing.T) {
	f := newFixture(t)
	f.headlines.EXPECT().Remove(mock.Anything, domain.AreaPrimary, domain.EntryRef{Kind: domain.KindPinned, ID: 8}).Return(nil)

	rec := f.do(http.MethodDelete, "/api/v1/headlines/1/entries/pinned/8", "")
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, http.StatusOK, f.do(http.MethodGet, "/healthz", "").Code)

	rec := f.do(http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "slotengine_http_requests_total")
}
