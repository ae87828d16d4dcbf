package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"slot-engine/internal/core/domain"
	"slot-engine/internal/core/port/mocks"
)

func sidebarAd(id int64) domain.Ad {
	return domain.Ad{
		ID:        id,
		Placement: "sidebar",
		Active:    true,
		Targeting: domain.Targeting{Device: domain.DeviceAll, Page: domain.TargetAllPages, Category: domain.AllCategories},
	}
}

func TestSelectAds_OrderedByID(t *testing.T) {
	catalog := mocks.NewMockAdCatalog(t)

	mobileOnly := sidebarAd(2)
	mobileOnly.Targeting.Device = domain.DeviceMobile
	expired := sidebarAd(4)
	expired.EndDate = ptr(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))

	catalog.EXPECT().
		ListActiveAds(mock.Anything, "sidebar").
		Return([]domain.Ad{sidebarAd(5), mobileOnly, sidebarAd(1), expired, sidebarAd(3)}, nil)

	uc := NewPlacementUseCase(catalog, discardLogger())
	ads, err := uc.SelectAds(context.Background(), domain.SelectRequest{
		Placement: "sidebar",
		Device:    domain.DeviceDesktop,
		Page:      domain.PageContext{Type: domain.PageHome},
	})
	require.NoError(t, err)

	ids := make([]int64, 0, len(ads))
	for _, ad := range ads {
		ids = append(ids, ad.ID)
	}
	if diff := cmp.Diff([]int64{1, 3, 5}, ids); diff != "" {
		t.Fatalf("selected ids mismatch (-want +got):\n%s", diff)
	}
}

func TestSelectAds_DefaultsMalformedTargeting(t *testing.T) {
	catalog := mocks.NewMockAdCatalog(t)

	odd := sidebarAd(7)
	odd.Targeting.Device = "tablet"
	catalog.EXPECT().ListActiveAds(mock.Anything, "sidebar").Return([]domain.Ad{odd}, nil)

	uc := NewPlacementUseCase(catalog, discardLogger())
	ads, err := uc.SelectAds(context.Background(), domain.SelectRequest{
		Placement: "sidebar",
		Device:    domain.DeviceMobile,
		Page:      domain.PageContext{Type: domain.PageHome},
	})
	require.NoError(t, err)
	require.Len(t, ads, 1)
	assert.Equal(t, domain.DeviceAll, ads[0].Targeting.Device)
}

func TestSelectAds_EmptyIsNotAnError(t *testing.T) {
	catalog := mocks.NewMockAdCatalog(t)
	catalog.EXPECT().ListActiveAds(mock.Anything, "footer").Return(nil, nil)

	ads, err := NewPlacementUseCase(catalog, discardLogger()).
		SelectAds(context.Background(), domain.SelectRequest{Placement: "footer"})
	require.NoError(t, err)
	assert.Empty(t, ads)
}

func TestSelectAds_CatalogError(t *testing.T) {
	catalog := mocks.NewMockAdCatalog(t)
	boom := errors.New("connection reset")
	catalog.EXPECT().ListActiveAds(mock.Anything, "header").Return(nil, boom)

	_, err := NewPlacementUseCase(catalog, discardLogger()).
		SelectAds(context.Background(), domain.SelectRequest{Placement: "header"})
	assert.ErrorIs(t, err, boom)
}
