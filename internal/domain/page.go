package domain

import "math"

const (
	DefaultPage     = 1
	DefaultPageSize = 25
	MaxPageSize     = 100

	// MaxPage keeps (number-1)*size within int for any allowed size.
	MaxPage = math.MaxInt / MaxPageSize
)

// Page is a clamped pagination window. The zero value is the first default page.
// Its limit and offset are safe to embed in SQL text.
type Page struct {
	number int
	size   int
}

// NewPage clamps number to [1, MaxPage] and size to [1, MaxPageSize].
func NewPage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if number > MaxPage {
		number = MaxPage
	}
	if size < 1 {
		size = 1
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Page{number: number, size: size}
}

// Number returns the 1-based page number.
func (p Page) Number() int {
	if p.number < 1 {
		return DefaultPage
	}
	return p.number
}

// Size returns the page size.
func (p Page) Size() int {
	if p.size < 1 {
		return DefaultPageSize
	}
	return p.size
}

// Offset returns (number-1)*size.
func (p Page) Offset() int {
	return (p.Number() - 1) * p.Size()
}
