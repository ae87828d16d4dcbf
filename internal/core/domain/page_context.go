package domain

// PageType is the kind of page a visitor is looking at.
type PageType string

const (
	PageHome     PageType = "home"
	PageCategory PageType = "category"
	PageDetail   PageType = "detail"
	PageOther    PageType = "other"
)

// PageContext describes the page an ad request originates from. NewsID is
// only meaningful on detail pages.
type PageContext struct {
	Type     PageType
	Category *string
	NewsID   *int64
}

// SelectRequest is the input of a placement lookup: which placement is
// being rendered, on which viewport class and on which page.
type SelectRequest struct {
	Placement string
	Device    DeviceType
	Page      PageContext
}
