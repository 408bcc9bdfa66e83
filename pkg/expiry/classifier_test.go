package expiry

import (
	"FridgeMate/domain"
	"FridgeMate/entities"
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

var now = time.Date(2026, time.March, 10, 9, 30, 0, 0, time.UTC)

func TestDaysLeftUsesCeiling(t *testing.T) {
	cases := []struct {
		name string
		in   time.Duration
		want int
	}{
		{"exactly 48h", 48 * time.Hour, 2},
		{"47h59m", 47*time.Hour + 59*time.Minute, 2},
		{"exactly 24h", 24 * time.Hour, 1},
		{"24h and 1ms", 24*time.Hour + time.Millisecond, 2},
		{"23h", 23 * time.Hour, 1},
		{"1ms", time.Millisecond, 1},
		{"now", 0, 0},
		{"1h ago", -time.Hour, 0},
		{"exactly one day ago", -24 * time.Hour, -1},
		{"25h ago", -25 * time.Hour, -1},
		{"49h ago", -49 * time.Hour, -2},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, DaysLeft(now.Add(tc.in), now))
		})
	}
}

func TestBucketPartitionsDays(t *testing.T) {
	for d := -30; d <= 30; d++ {
		got := Bucket(d)
		switch {
		case d < 0:
			assert.Equal(t, domain.StatusExpired, got, "days=%d", d)
		case d <= 2:
			assert.Equal(t, domain.StatusExpiringSoon, got, "days=%d", d)
		default:
			assert.Equal(t, domain.StatusFresh, got, "days=%d", d)
		}
	}
}

func TestLabel(t *testing.T) {
	assert.Equal(t, "Expired 3 days ago", Label(-3))
	assert.Equal(t, "Expires today", Label(0))
	assert.Equal(t, "1 days left", Label(1))
	assert.Equal(t, "9 days left", Label(9))
}

func TestClassify(t *testing.T) {
	c := Classify(now.Add(36*time.Hour), now)
	assert.Equal(t, Classification{DaysLeft: 2, Status: domain.StatusExpiringSoon, Label: "2 days left"}, c)

	c = Classify(now.Add(-50*time.Hour), now)
	assert.Equal(t, domain.StatusExpired, c.Status)
	assert.Equal(t, "Expired 2 days ago", c.Label)
}

func TestSortByExpiryIsStable(t *testing.T) {
	base := []entities.FoodItem{
		{ID: uuid.New(), Name: "a", ExpiryDate: now.Add(72 * time.Hour)},
		{ID: uuid.New(), Name: "b", ExpiryDate: now.Add(24 * time.Hour)},
		{ID: uuid.New(), Name: "c", ExpiryDate: now.Add(72 * time.Hour)},
		{ID: uuid.New(), Name: "d", ExpiryDate: now.Add(-24 * time.Hour)},
		{ID: uuid.New(), Name: "e", ExpiryDate: now.Add(24 * time.Hour)},
	}

	sorted := SortByExpiry(base)
	names := make([]string, 0, len(sorted))
	for _, item := range sorted {
		names = append(names, item.Name)
	}
	assert.Equal(t, []string{"d", "b", "e", "a", "c"}, names)
	assert.Equal(t, "a", base[0].Name, "input must not be reordered")
}

func TestSortByExpiryNonDecreasingForAnyPermutation(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for round := 0; round < 50; round++ {
		items := make([]entities.FoodItem, 20)
		for i := range items {
			items[i] = entities.FoodItem{
				ID:         uuid.New(),
				ExpiryDate: now.Add(time.Duration(rng.Intn(10)-5) * Day),
			}
		}
		rng.Shuffle(len(items), func(i, j int) { items[i], items[j] = items[j], items[i] })

		sorted := SortByExpiry(items)
		for i := 1; i < len(sorted); i++ {
			assert.False(t, sorted[i].ExpiryDate.Before(sorted[i-1].ExpiryDate))
			if sorted[i].ExpiryDate.Equal(sorted[i-1].ExpiryDate) {
				assert.Less(t, indexOf(items, sorted[i-1].ID), indexOf(items, sorted[i].ID))
			}
		}
	}
}

func indexOf(items []entities.FoodItem, id uuid.UUID) int {
	for i, item := range items {
		if item.ID == id {
			return i
		}
	}
	return -1
}
