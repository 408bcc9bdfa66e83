// Package expiry turns expiry timestamps into the freshness buckets and
// labels shown in the inventory.
package expiry

import (
	"FridgeMate/domain"
	"FridgeMate/entities"
	"fmt"
	"sort"
	"time"
)

const (
	Day = 24 * time.Hour

	// ExpiringSoonDays is the last day count that still counts as expiring soon.
	ExpiringSoonDays = 2
)

type Classification struct {
	DaysLeft int
	Status   string
	Label    string
}

// DaysLeft is ceil((expiry - now) / 1 day) on the millisecond difference.
// A 23h remainder is one day left and any negative remainder rounds toward zero.
func DaysLeft(expiry, now time.Time) int {
	diff := expiry.Sub(now).Milliseconds()
	dayMs := Day.Milliseconds()

	days := diff / dayMs
	if diff%dayMs > 0 {
		days++
	}
	return int(days)
}

func Bucket(days int) string {
	switch {
	case days < 0:
		return domain.StatusExpired
	case days <= ExpiringSoonDays:
		return domain.StatusExpiringSoon
	default:
		return domain.StatusFresh
	}
}

func Label(days int) string {
	switch {
	case days < 0:
		return fmt.Sprintf("Expired %d days ago", -days)
	case days == 0:
		return "Expires today"
	default:
		return fmt.Sprintf("%d days left", days)
	}
}

func Classify(expiry, now time.Time) Classification {
	days := DaysLeft(expiry, now)
	return Classification{
		DaysLeft: days,
		Status:   Bucket(days),
		Label:    Label(days),
	}
}

// SortByExpiry returns a copy ordered soonest-expiring first. Items with the
// same expiry keep their insertion order.
func SortByExpiry(items []entities.FoodItem) []entities.FoodItem {
	sorted := make([]entities.FoodItem, len(items))
	copy(sorted, items)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].ExpiryDate.Before(sorted[j].ExpiryDate)
	})
	return sorted
}

func IsValidStatus(status string) bool {
	switch status {
	case domain.StatusFresh, domain.StatusExpiringSoon, domain.StatusExpired:
		return true
	}
	return false
}
