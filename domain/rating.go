package domain

import (
	"assignment-lab/errors"
	"fmt"

	"github.com/samber/lo"
)

const (
	MinRating = 0
	MaxRating = 5
	// FilterThreshold is inclusive
	FilterThreshold = 4
)

// RatedItem is a titled record scored between MinRating and MaxRating.
type RatedItem struct {
	Title  string  `validate:"required"`
	Rating float64 `validate:"gte=0,lte=5"`
}

func NewRatedItem(title string, rating float64) (RatedItem, error) {
	item := RatedItem{Title: title, Rating: rating}
	if err := validate.Struct(item); err != nil {
		return RatedItem{}, fmt.Errorf("%w: %w", errors.ErrInvalidRatedItem, err)
	}
	return item, nil
}

// FilterByRating keeps the items rated at least FilterThreshold, in their original order.
// The input slice is left untouched.
func FilterByRating(items []RatedItem) []RatedItem {
	return lo.Filter(items, func(item RatedItem, _ int) bool {
		return item.Rating >= FilterThreshold
	})
}
