package scrape

import "errors"

// Sentinel kinds for archive scraping errors.
var (
	ErrFetchFailed        = errors.New("archive page fetch failed")
	ErrStructuralMismatch = errors.New("division headings do not line up with result tables")
	ErrNoResults          = errors.New("no result tables found on archive page")
)
