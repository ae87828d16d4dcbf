package domain

// DeviceType restricts an ad to a viewport class. The empty value means
// the ad was never restricted and behaves like DeviceAll.
type DeviceType string

const (
	DeviceAll     DeviceType = "all"
	DeviceMobile  DeviceType = "mobile"
	DeviceDesktop DeviceType = "desktop"
)

// TargetPage restricts an ad to a page type.
type TargetPage string

const (
	TargetAllPages TargetPage = "all"
	TargetHome     TargetPage = "home"
	TargetCategory TargetPage = "category"
	TargetDetail   TargetPage = "detail"
)

// AllCategories is the category value that matches any page.
const AllCategories = "all"

// Targeting describes where an ad may be shown.
type Targeting struct {
	Device   DeviceType
	Page     TargetPage
	Category string
	// NewsID pins the ad to a single article detail page and overrides
	// every other page rule.
	NewsID *int64
}
