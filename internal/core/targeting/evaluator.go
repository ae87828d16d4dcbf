// Package targeting decides whether an ad may be shown for a request. It
// is a pure function of the ad, the request and the current time.
package targeting

import (
	"time"

	"slot-engine/internal/core/domain"
)

// Reason explains an eligibility decision. Only ReasonEligible means the
// ad may be shown.
type Reason string

const (
	ReasonEligible          Reason = "eligible"
	ReasonInactive          Reason = "inactive"
	ReasonPlacementMismatch Reason = "placement_mismatch"
	ReasonDeviceMismatch    Reason = "device_mismatch"
	ReasonNewsMismatch      Reason = "news_mismatch"
	ReasonNotStarted        Reason = "not_started"
	ReasonExpired           Reason = "expired"
	ReasonPageMismatch      Reason = "page_mismatch"
	ReasonCategoryMismatch  Reason = "category_mismatch"
)

// Decision is the outcome of Evaluate.
type Decision struct {
	Eligible bool
	Reason   Reason
}

func reject(r Reason) Decision { return Decision{Reason: r} }

// Evaluate runs the targeting checks in order and stops at the first one
// that fails. The ad is expected to be normalized.
func Evaluate(ad domain.Ad, req domain.SelectRequest, now time.Time) Decision {
	if !ad.Active {
		return reject(ReasonInactive)
	}
	if ad.Placement != req.Placement {
		return reject(ReasonPlacementMismatch)
	}
	if !deviceMatches(ad.Targeting.Device, req.Device) {
		return reject(ReasonDeviceMismatch)
	}

	// A news id overrides every page and category rule.
	if ad.Targeting.NewsID != nil {
		page := req.Page
		if page.Type != domain.PageDetail || page.NewsID == nil || *page.NewsID != *ad.Targeting.NewsID {
			return reject(ReasonNewsMismatch)
		}
	}

	if ad.StartDate != nil && now.Before(*ad.StartDate) {
		return reject(ReasonNotStarted)
	}
	if ad.EndDate != nil && now.After(*ad.EndDate) {
		return reject(ReasonExpired)
	}

	if !pageMatches(ad.Targeting.Page, req.Page.Type) {
		return reject(ReasonPageMismatch)
	}
	if !categoryMatches(ad.Targeting.Category, req.Page.Category) {
		return reject(ReasonCategoryMismatch)
	}
	return Decision{Eligible: true, Reason: ReasonEligible}
}

// Eligible is Evaluate reduced to its verdict.
func Eligible(ad domain.Ad, req domain.SelectRequest, now time.Time) bool {
	return Evaluate(ad, req, now).Eligible
}

func deviceMatches(want, got domain.DeviceType) bool {
	return want == "" || want == domain.DeviceAll || want == got
}

func pageMatches(want domain.TargetPage, got domain.PageType) bool {
	switch want {
	case "", domain.TargetAllPages:
		return true
	case domain.TargetHome:
		return got == domain.PageHome
	case domain.TargetCategory:
		// category listings only, detail pages inside the category do not count
		return got == domain.PageCategory
	case domain.TargetDetail:
		return got == domain.PageDetail
	default:
		return false
	}
}

func categoryMatches(want string, got *string) bool {
	if want == "" || want == domain.AllCategories {
		return true
	}
	return got != nil && *got == want
}
