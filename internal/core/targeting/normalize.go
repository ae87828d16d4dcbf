package targeting

import (
	"strings"

	"slot-engine/internal/core/domain"
)

// Normalize cleans up the targeting fields of an ad. Unknown device and
// page values and blank categories fall back to "all". The returned error,
// if any, lists the defaulted fields and is informational only: the
// normalized ad is always usable.
func Normalize(ad domain.Ad) (domain.Ad, error) {
	var fields []string
	t := &ad.Targeting

	switch d := domain.DeviceType(strings.ToLower(strings.TrimSpace(string(t.Device)))); d {
	case "", domain.DeviceAll, domain.DeviceMobile, domain.DeviceDesktop:
		t.Device = d
	default:
		t.Device = domain.DeviceAll
		fields = append(fields, "device_type")
	}

	switch p := domain.TargetPage(strings.ToLower(strings.TrimSpace(string(t.Page)))); p {
	case "":
		t.Page = domain.TargetAllPages
	case domain.TargetAllPages, domain.TargetHome, domain.TargetCategory, domain.TargetDetail:
		t.Page = p
	default:
		t.Page = domain.TargetAllPages
		fields = append(fields, "target_page")
	}

	if c := strings.TrimSpace(t.Category); c == "" {
		if t.Category != "" {
			fields = append(fields, "target_category")
		}
		t.Category = domain.AllCategories
	} else {
		t.Category = c
	}

	if t.NewsID != nil && *t.NewsID <= 0 {
		t.NewsID = nil
		fields = append(fields, "target_news_id")
	}

	if len(fields) > 0 {
		return ad, &domain.ValidationError{AdID: ad.ID, Fields: fields}
	}
	return ad, nil
}
