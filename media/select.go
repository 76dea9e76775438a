package media

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/vgrab-cli/vgrab/errs"
)

// QualityToHeight converts a free-form quality label to a numeric height.
//
// Parsing is heuristic substring matching against the canonical ladder, so
// labels like "1080p60" and "hd1080" both map to 1080 while "medium"
// collapses to 0 alongside truly unknown labels. This is lossy and
// deliberately approximate.
func QualityToHeight(quality string) int {
	quality = strings.ToLower(quality)

	if strings.Contains(quality, "4k") || strings.Contains(quality, "2160") {
		return 2160
	}
	for _, height := range []string{"1440", "1080", "720", "480", "360", "240", "144"} {
		if strings.Contains(quality, height) {
			return lo.Must(strconv.Atoi(height))
		}
	}
	return 0
}

func optStream(s *Stream) mo.Option[*Stream] {
	if s == nil {
		return mo.None[*Stream]()
	}
	return mo.Some(s)
}

// videoStreams returns the candidate pool for video quality selection.
func (i *Info) videoStreams() []*Stream {
	return lo.Filter(i.Streams, func(s *Stream, _ int) bool {
		return !s.AudioOnly
	})
}

// BestVideoStream returns the highest quality video stream available.
// Among equal-height streams the last encountered wins; this tie policy is
// deliberate and covered by tests.
func (i *Info) BestVideoStream() mo.Option[*Stream] {
	var best *Stream
	for _, s := range i.videoStreams() {
		if best == nil || QualityToHeight(s.Quality) >= QualityToHeight(best.Quality) {
			best = s
		}
	}
	return optStream(best)
}

// WorstVideoStream returns the lowest quality video stream available.
// Among equal-height streams the first encountered wins.
func (i *Info) WorstVideoStream() mo.Option[*Stream] {
	var worst *Stream
	for _, s := range i.videoStreams() {
		if worst == nil || QualityToHeight(s.Quality) < QualityToHeight(worst.Quality) {
			worst = s
		}
	}
	return optStream(worst)
}

// StreamByQuality finds the first video stream whose label equals the given
// quality string, compared case-insensitively. The comparison is exact over
// the raw label, not over parsed heights.
func (i *Info) StreamByQuality(quality string) mo.Option[*Stream] {
	for _, s := range i.videoStreams() {
		if strings.EqualFold(s.Quality, quality) {
			return mo.Some(s)
		}
	}
	return mo.None[*Stream]()
}

// BestAudioStream returns the audio-only stream with the highest bitrate.
// Streams with unknown bitrate count as zero.
func (i *Info) BestAudioStream() mo.Option[*Stream] {
	var best *Stream
	for _, s := range i.Streams {
		if !s.AudioOnly {
			continue
		}
		if best == nil || s.Bitrate.OrElse(0) >= best.Bitrate.OrElse(0) {
			best = s
		}
	}
	return optStream(best)
}

// StreamByFilter selects a video stream by the given quality criterion.
func (i *Info) StreamByFilter(filter Filter) mo.Option[*Stream] {
	switch filter.kind {
	case filterWorst:
		return i.WorstVideoStream()
	case filterExact:
		return i.StreamByQuality(fmt.Sprintf("%dp", filter.height))
	case filterMaxHeight:
		var best *Stream
		for _, s := range i.videoStreams() {
			if QualityToHeight(s.Quality) > filter.height {
				continue
			}
			if best == nil || QualityToHeight(s.Quality) >= QualityToHeight(best.Quality) {
				best = s
			}
		}
		return optStream(best)
	default:
		return i.BestVideoStream()
	}
}

// AvailableQualities returns the deduplicated video quality labels sorted by
// descending parsed height. The sort is stable, so equal-height labels keep
// their catalog order.
func (i *Info) AvailableQualities() []string {
	qualities := lo.Map(i.videoStreams(), func(s *Stream, _ int) string {
		return s.Quality
	})

	sort.SliceStable(qualities, func(a, b int) bool {
		return QualityToHeight(qualities[a]) > QualityToHeight(qualities[b])
	})
	return lo.Uniq(qualities)
}

// SelectStream resolves a filter against the catalog.
//
// Numeric filters fall back to the best available stream when they match
// nothing, so an over-ambitious MaxHeight bound still downloads something.
// Exact is strict: the user named a precise label, and silently substituting
// another quality would betray that, so it fails with a quality-not-available
// error enumerating the catalog. An empty catalog fails the same way for
// every filter.
func SelectStream(info *Info, filter Filter) (*Stream, error) {
	if stream, ok := info.StreamByFilter(filter).Get(); ok {
		return stream, nil
	}
	if filter.kind != filterExact {
		if stream, ok := info.BestVideoStream().Get(); ok {
			return stream, nil
		}
	}
	return nil, errs.QualityNotAvailable(filter.String(), info.AvailableQualities())
}

// ClosestQuality suggests the available label nearest to the requested one,
// measured by edit distance. Returns None for an empty candidate list.
func ClosestQuality(requested string, available []string) mo.Option[string] {
	if len(available) == 0 {
		return mo.None[string]()
	}
	closest := lo.MinBy(available, func(a, b string) bool {
		return levenshtein.Distance(requested, a) < levenshtein.Distance(requested, b)
	})
	return mo.Some(closest)
}
