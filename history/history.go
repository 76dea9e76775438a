// Package history provides the implementation for tracking and persisting completed downloads.
package history

import (
	"fmt"
	"sort"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/metafates/gache"
	"github.com/samber/lo"
	"github.com/vgrab-cli/vgrab/downloader"
	"github.com/vgrab-cli/vgrab/filesystem"
	"github.com/vgrab-cli/vgrab/util"
	"github.com/vgrab-cli/vgrab/where"
)

// SavedDownload represents a single completed download preserved in the user's history.
type SavedDownload struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Path         string    `json:"path"`
	Size         int64     `json:"size"`
	DownloadedAt time.Time `json:"downloaded_at"`
}

func (s *SavedDownload) encode() string {
	return fmt.Sprintf("%s (%s)", s.Title, s.ID)
}

func (s *SavedDownload) String() string {
	return fmt.Sprintf("%s : %s : %s",
		s.Title,
		util.FormatBytes(uint64(s.Size)),
		s.DownloadedAt.Format("2006-01-02"),
	)
}

// cacher provides an abstracted, disk-backed registry for download records.
var cacher = gache.New[map[string]*SavedDownload](
	&gache.Options{
		Path:       where.History(),
		FileSystem: &filesystem.GacheFs{},
	},
)

// Get returns the complete collection of download records from the persistent store.
func Get() (map[string]*SavedDownload, error) {
	cached, expired, err := cacher.Get()
	if err != nil {
		return nil, err
	}
	if expired || cached == nil {
		return make(map[string]*SavedDownload), nil
	}
	return cached, nil
}

// Save persists a completed download to the history registry.
// Re-downloading the same resource overwrites its previous record.
func Save(result *downloader.Result) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	record := &SavedDownload{
		ID:           result.ID,
		Title:        result.Title,
		Path:         result.Path,
		Size:         result.Size,
		DownloadedAt: time.Now(),
	}
	saved[record.encode()] = record

	return cacher.Set(saved)
}

// Remove permanently deletes a specific download record from the history registry.
func Remove(record *SavedDownload) error {
	saved, err := Get()
	if err != nil {
		return err
	}

	delete(saved, record.encode())
	return cacher.Set(saved)
}

// List returns all records sorted by download time, most recent first.
func List() ([]*SavedDownload, error) {
	saved, err := Get()
	if err != nil {
		return nil, err
	}

	records := lo.Values(saved)
	sort.Slice(records, func(a, b int) bool {
		return records[a].DownloadedAt.After(records[b].DownloadedAt)
	})
	return records, nil
}

// Clear deletes the history file entirely.
func Clear() error {
	return util.Delete(where.History())
}

// Search fuzzy-matches records by title.
func Search(query string) ([]*SavedDownload, error) {
	records, err := List()
	if err != nil {
		return nil, err
	}

	return lo.Filter(records, func(r *SavedDownload, _ int) bool {
		return fuzzy.MatchFold(query, r.Title)
	}), nil
}
