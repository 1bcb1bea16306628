package calendar

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

// CachedCalendar memoizes month info of another Calendar for cacheTTL.
// It is safe for concurrent use.
type CachedCalendar struct {
	inner    Calendar
	cacheTTL time.Duration
	logger   *zap.Logger
	cache    map[string]*cachedMonth
	cacheMu  sync.RWMutex
	now      func() time.Time
}

type cachedMonth struct {
	data       *MonthInfo
	computedAt time.Time
}

// NewCachedCalendar creates a new CachedCalendar instance
func NewCachedCalendar(inner Calendar, cacheTTL time.Duration, logger *zap.Logger) *CachedCalendar {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &CachedCalendar{
		inner:    inner,
		cacheTTL: cacheTTL,
		logger:   logger,
		cache:    make(map[string]*cachedMonth),
		now:      time.Now,
	}
}

// GetMonthInfo returns calendar info for the entire month
func (cc *CachedCalendar) GetMonthInfo(year int, month Month) (*MonthInfo, error) {
	cacheKey := fmt.Sprintf("%d-%02d", year, month.Number())

	cc.cacheMu.RLock()
	if cached, ok := cc.cache[cacheKey]; ok {
		if cc.now().Sub(cached.computedAt) < cc.cacheTTL {
			cc.cacheMu.RUnlock()
			cc.logger.Debug("Using cached month info",
				zap.Int("year", year),
				zap.Int("month", month.Number()))
			return cached.data, nil
		}
	}
	cc.cacheMu.RUnlock()

	monthInfo, err := cc.inner.GetMonthInfo(year, month)
	if err != nil {
		return nil, err
	}

	// Update cache
	cc.cacheMu.Lock()
	cc.cache[cacheKey] = &cachedMonth{
		data:       monthInfo,
		computedAt: cc.now(),
	}
	cc.cacheMu.Unlock()

	return monthInfo, nil
}

// GetDayInfo returns detailed info for a specific day from the cached month
func (cc *CachedCalendar) GetDayInfo(year int, month Month, day int) (*DayInfo, error) {
	monthInfo, err := cc.GetMonthInfo(year, month)
	if err != nil {
		return nil, err
	}
	if day < 1 || day > len(monthInfo.Days) {
		return nil, fmt.Errorf("%w: day %d of %s %d", ErrOutOfDomain, day, month, year)
	}

	dayInfo := monthInfo.Days[day-1]
	return &dayInfo, nil
}

// GetYearHolidays returns every holiday of the year with its date
func (cc *CachedCalendar) GetYearHolidays(year int) ([]Occurrence, error) {
	return cc.inner.GetYearHolidays(year)
}

// Len returns the number of cached months
func (cc *CachedCalendar) Len() int {
	cc.cacheMu.RLock()
	defer cc.cacheMu.RUnlock()
	return len(cc.cache)
}

// ClearCache clears the cache
func (cc *CachedCalendar) ClearCache() {
	cc.cacheMu.Lock()
	defer cc.cacheMu.Unlock()

	cc.cache = make(map[string]*cachedMonth)
	cc.logger.Info("Calendar cache cleared")
}
