package report

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"finddup/internal/dedup"
)

// Group is one set of files that matched each other.
type Group struct {
	ID    int      `json:"group"`
	Paths []string `json:"paths"`
}

// Report is the final result of a scan: every duplicate group in ascending
// id order, plus the counts the summary line needs.
type Report struct {
	Groups       []Group `json:"groups"`
	ScannedFiles int     `json:"scanned_files"`
	GroupedFiles int     `json:"grouped_files"`
	FailedFiles  int     `json:"failed_files"`
}

// Build assembles a Report from marked items. Singletons do not appear;
// paths inside each group use natural order.
func Build(items []dedup.Item, failed int) *Report {
	groups := dedup.GroupPaths(items)
	ids := dedup.GroupIDs(groups)

	out := &Report{
		Groups:       make([]Group, 0, len(ids)),
		ScannedFiles: len(items),
		FailedFiles:  failed,
	}
	for _, id := range ids {
		out.Groups = append(out.Groups, Group{ID: id, Paths: groups[id]})
		out.GroupedFiles += len(groups[id])
	}
	return out
}

// Empty reports whether no duplicates were found.
func (r *Report) Empty() bool {
	return len(r.Groups) == 0
}

// AllPaths returns every grouped path in group order.
func (r *Report) AllPaths() []string {
	var paths []string
	for _, group := range r.Groups {
		paths = append(paths, group.Paths...)
	}
	return paths
}

// WriteJSON writes the group mapping as indented JSON, keyed by group id.
func (r *Report) WriteJSON(w io.Writer) error {
	mapping := make(map[string][]string, len(r.Groups))
	for _, group := range r.Groups {
		mapping[strconv.Itoa(group.ID)] = group.Paths
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(mapping)
}

// DumpJSON writes the group mapping to path, creating or truncating it.
func (r *Report) DumpJSON(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dump file: %w", err)
	}
	if err := r.WriteJSON(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("write dump file: %w", err)
	}
	return f.Close()
}

var englishPrinter = message.NewPrinter(language.English)

// FormatBytes renders a byte count with thousands separators.
func FormatBytes(n int64) string {
	return englishPrinter.Sprintf("%d B", n)
}

// FormatDuration renders whole seconds as HH:MM:SS.
func FormatDuration(seconds float64) string {
	total := int(seconds)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, total/60%60, total%60)
}

// FormatResolution renders pixel dimensions as WxH.
func FormatResolution(width, height int) string {
	return fmt.Sprintf("%dx%d", width, height)
}
