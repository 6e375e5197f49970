package impl

import "math"

// pageWindow is a clamped page request translated to skip/take.
type pageWindow struct {
	Page     int
	PageSize int
	Offset   int
}

// resolvePage clamps page to >= 1 and pageSize to [1, maxSize], using
// defaultSize when pageSize is not positive. page is also capped so the
// offset (page-1)*pageSize fits in an int.
func resolvePage(page, pageSize, defaultSize, maxSize int) pageWindow {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = defaultSize
	}
	if pageSize > maxSize {
		pageSize = maxSize
	}
	if maxPage := math.MaxInt / pageSize; page > maxPage {
		page = maxPage
	}

	return pageWindow{
		Page:     page,
		PageSize: pageSize,
		Offset:   (page - 1) * pageSize,
	}
}

// totalPages is ceil(total / pageSize).
func totalPages(total int64, pageSize int) int {
	if total <= 0 || pageSize <= 0 {
		return 0
	}

	size := int64(pageSize)

	return int((total + size - 1) / size)
}
