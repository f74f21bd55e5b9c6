package calendar

import (
	"time"

	"github.com/javiermolinar/dulcinea/internal/dateutil"
)

type cacheKey struct {
	year      int
	month     time.Month
	weekStart time.Weekday
}

// Cache memoizes grids per displayed month so pointer-move handling never
// rebuilds the 42-day window.
type Cache struct {
	grids map[cacheKey]*Grid
	now   func() time.Time
}

// NewCache creates an empty grid cache using now for the "today" fallback.
func NewCache(now func() time.Time) *Cache {
	if now == nil {
		now = time.Now
	}
	return &Cache{
		grids: make(map[cacheKey]*Grid),
		now:   now,
	}
}

// Grid returns the memoized grid for a month, building it on first use.
func (c *Cache) Grid(year int, month time.Month, weekStart time.Weekday) *Grid {
	norm := dateutil.Date(year, month, 1)
	key := cacheKey{year: norm.Year(), month: norm.Month(), weekStart: weekStart}
	if g, ok := c.grids[key]; ok {
		return g
	}
	g := NewGrid(key.year, key.month, weekStart, WithClock(c.now))
	c.grids[key] = g
	return g
}

// Len returns the number of memoized grids.
func (c *Cache) Len() int {
	return len(c.grids)
}
