package schedule

import (
	"sort"
	"time"
)

type datedItem struct {
	item  Item
	start time.Time
}

// Upcoming returns, in chronological order, the first count items of resp that
// start at or after now. Fewer than count items is not an error.
//
// Every start_datetime is parsed before selecting; one invalid value fails the
// whole call with a *DateParseError. The result is never nil.
func Upcoming(resp *Response, count int, now time.Time) ([]Item, error) {
	selected := make([]Item, 0)
	if resp == nil {
		return selected, nil
	}

	dated := make([]datedItem, 0, len(resp.Data))
	for _, it := range resp.Data {
		start, err := it.Start()
		if err != nil {
			return nil, err
		}
		dated = append(dated, datedItem{item: it, start: start})
	}

	// Stable so events sharing a start time keep the API order
	sort.SliceStable(dated, func(i, j int) bool {
		return dated[i].start.Before(dated[j].start)
	})

	for _, d := range dated {
		if len(selected) >= count {
			break
		}
		if !d.start.Before(now) {
			selected = append(selected, d.item)
		}
	}

	return selected, nil
}
