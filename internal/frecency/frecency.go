// Package frecency ranks directories by a mix of visit weight and recency.
package frecency

import (
	"sort"
	"time"

	"github.com/mrlokans/jumpdb/internal/entities"
)

const (
	hour = int64(time.Hour / time.Second)
	day  = 24 * hour
	week = 7 * day
)

// Score weighs dir.Rank by how long ago the directory was last accessed.
func Score(dir entities.Directory, now time.Time) float64 {
	age := now.Unix() - dir.LastAccessed

	switch {
	case age < hour:
		return dir.Rank * 4
	case age < day:
		return dir.Rank * 2
	case age < week:
		return dir.Rank / 2
	default:
		return dir.Rank / 4
	}
}

// Sort orders dirs by descending score, breaking ties by path.
func Sort(dirs []entities.Directory, now time.Time) {
	sort.SliceStable(dirs, func(i, j int) bool {
		si, sj := Score(dirs[i], now), Score(dirs[j], now)
		if si != sj {
			return si > sj
		}
		return dirs[i].Path < dirs[j].Path
	})
}
