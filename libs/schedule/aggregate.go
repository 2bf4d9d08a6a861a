package schedule

import (
	"fmt"
	"strconv"
)

// GroupKey selects the dimension AggregateCounts buckets by.
type GroupKey int

const (
	GroupByStatus GroupKey = iota
	GroupByService
	GroupByHourOfDay
	GroupByDayOfWeek
)

var groupKeyLabels = map[GroupKey]string{
	GroupByStatus:    "status",
	GroupByService:   "service",
	GroupByHourOfDay: "hour",
	GroupByDayOfWeek: "weekday",
}

func (k GroupKey) String() string {
	if label, ok := groupKeyLabels[k]; ok {
		return label
	}
	return fmt.Sprintf("GroupKey(%d)", int(k))
}

// ParseGroupKey maps a request label to a GroupKey.
func ParseGroupKey(label string) (GroupKey, error) {
	for k, l := range groupKeyLabels {
		if l == label {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown group key %q", label)
}

// AggregateCounts buckets bookings by the chosen dimension and counts
// them. The map is unordered; rendering order is the caller's
// concern. An empty input yields an empty map.
func AggregateCounts(bookings []Booking, key GroupKey) (map[string]int, error) {
	counts := make(map[string]int)
	for _, b := range bookings {
		var bucket string
		switch key {
		case GroupByStatus:
			bucket = b.Status.String()
		case GroupByService:
			bucket = b.Service
		case GroupByHourOfDay:
			bucket = strconv.Itoa(b.Start.Hour())
		case GroupByDayOfWeek:
			bucket = b.Start.Weekday().String()
		default:
			return nil, fmt.Errorf("unknown group key %v", key)
		}
		counts[bucket]++
	}
	return counts, nil
}
