package models

// ItemsPerPage is the fixed number of listings shown on one index page.
const ItemsPerPage = 12

// ItemPage is one page of a filtered listing query together with the
// pagination state the index template needs to render prev/next controls.
type ItemPage struct {
	// Items holds at most ItemsPerPage listings, newest first.
	Items []Item

	// Page is the 1-based page number that was requested. Out-of-range
	// requests keep their requested number and carry an empty Items slice.
	Page int

	// Pages is the total number of pages for the current filter. Zero when
	// no listing matches.
	Pages int

	// Total is the total number of listings matching the current filter.
	Total int
}

// HasPrev reports whether a previous page exists.
func (p ItemPage) HasPrev() bool {
	return p.Page > 1
}

// HasNext reports whether a further page of results exists.
func (p ItemPage) HasNext() bool {
	return p.Page < p.Pages
}

// PrevNum returns the previous page number. Only meaningful when HasPrev.
func (p ItemPage) PrevNum() int {
	return p.Page - 1
}

// NextNum returns the next page number. Only meaningful when HasNext.
func (p ItemPage) NextNum() int {
	return p.Page + 1
}

// ListQuery captures the index page's filter parameters.
type ListQuery struct {
	// Query is a case-insensitive substring matched against titles only.
	// Empty means no text filter.
	Query string

	// ListingType restricts results to "sale" or "rent". Any other value
	// applies no filter.
	ListingType string

	// Page is the 1-based page number; values below 1 are treated as 1.
	Page int
}
