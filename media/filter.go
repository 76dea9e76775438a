package media

import (
	"fmt"
	"strconv"
	"strings"
)

type filterKind int

const (
	filterBest filterKind = iota
	filterWorst
	filterExact
	filterMaxHeight
)

// Filter describes a quality selection criterion over a rendition catalog.
// The zero value selects the best available stream.
type Filter struct {
	kind   filterKind
	height int
}

// Best selects the highest quality video stream available.
func Best() Filter {
	return Filter{kind: filterBest}
}

// Worst selects the lowest quality video stream available.
func Worst() Filter {
	return Filter{kind: filterWorst}
}

// Exact selects a stream whose label is exactly the given height with a "p"
// suffix, compared case-insensitively. A "1080p60" label does not satisfy
// Exact(1080) even though it parses to the same height.
func Exact(height int) Filter {
	return Filter{kind: filterExact, height: height}
}

// MaxHeight selects the best stream whose parsed height does not exceed the bound.
func MaxHeight(height int) Filter {
	return Filter{kind: filterMaxHeight, height: height}
}

// String renders the filter the way a user would type it.
func (f Filter) String() string {
	switch f.kind {
	case filterWorst:
		return "worst"
	case filterExact, filterMaxHeight:
		return fmt.Sprintf("%dp", f.height)
	default:
		return "best"
	}
}

// ParseFilter interprets a user-supplied quality string. "best" and "worst"
// map to the corresponding filters; a bare height or "NNNp" maps to
// MaxHeight, or to Exact when strict is set. Unrecognized strings fall back
// to Best.
func ParseFilter(quality string, strict bool) Filter {
	quality = strings.ToLower(strings.TrimSpace(quality))

	switch quality {
	case "", "best":
		return Best()
	case "worst":
		return Worst()
	case "4k":
		if strict {
			return Exact(2160)
		}
		return MaxHeight(2160)
	}

	height, err := strconv.Atoi(strings.TrimSuffix(quality, "p"))
	if err != nil || height <= 0 {
		return Best()
	}
	if strict {
		return Exact(height)
	}
	return MaxHeight(height)
}
