package review

import (
	"sort"
	"time"

	"github.com/storyspark/vocab-engine/internal/domain"
)

// Default session mix. Reviews outnumber new words because retention
// work compounds and new-word capacity is limited.
const (
	DefaultNewCount    = 4
	DefaultReviewCount = 8
)

// SelectSession splits the learner's states into a practice plan:
// never-reviewed words fill the new slots, and due words fill the
// review slots with the most overdue first. Words that are neither new
// nor due are left out entirely.
func SelectSession(states []domain.ReviewState, newCount, reviewCount int, today time.Time) domain.SessionPlan {
	if newCount <= 0 {
		newCount = DefaultNewCount
	}
	if reviewCount <= 0 {
		reviewCount = DefaultReviewCount
	}

	date := domain.DateOf(today)

	var fresh, due []domain.ReviewState
	for _, s := range states {
		switch {
		case !s.Reviewed():
			fresh = append(fresh, s)
		case !s.DueDate.After(date):
			due = append(due, s)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		return due[i].DueDate.Before(due[j].DueDate)
	})

	if len(fresh) > newCount {
		fresh = fresh[:newCount]
	}
	if len(due) > reviewCount {
		due = due[:reviewCount]
	}

	return domain.SessionPlan{New: fresh, Review: due}
}
