package tui

import (
	"strings"
	"sync"

	figure "github.com/common-nighthawk/go-figure"
)

const (
	bigFont     = "banner3"
	glyphHeight = 7
)

var (
	bigMu    sync.Mutex
	bigCache = map[string]string{}
)

// bigText renders s in the banner font with solid blocks. Every row has the
// same width so the result centers as one block.
func bigText(s string) string {
	bigMu.Lock()
	defer bigMu.Unlock()
	if out, ok := bigCache[s]; ok {
		return out
	}

	rows := figure.NewFigure(s, bigFont, false).Slicify()
	w := 0
	for _, r := range rows {
		w = max(w, len(r))
	}
	for i, r := range rows {
		rows[i] = strings.ReplaceAll(r+strings.Repeat(" ", w-len(r)), "#", "█")
	}
	out := strings.Join(rows, "\n")

	// The clock string changes every second; keep the cache small.
	if len(bigCache) > 64 {
		clear(bigCache)
	}
	bigCache[s] = out
	return out
}
