package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validShow() *Show {
	return &Show{
		TheatreID:  "t1",
		MovieID:    42,
		ShowTime:   time.Now().Add(time.Hour),
		Price:      10,
		SeatsTotal: 80,
	}
}

func TestShowFieldConstraints(t *testing.T) {
	assert.NoError(t, Validate.Struct(validShow()))

	negPrice := validShow()
	negPrice.Price = -1
	assert.Error(t, Validate.Struct(negPrice))

	zeroSeats := validShow()
	zeroSeats.SeatsTotal = 0
	assert.Error(t, Validate.Struct(zeroSeats))

	tooManySeats := validShow()
	tooManySeats.SeatsTotal = 301
	assert.Error(t, Validate.Struct(tooManySeats))
}

func TestReviewRatingBounds(t *testing.T) {
	review := &Review{MovieID: 42, UserID: "u1", Rating: 3}
	assert.NoError(t, Validate.Struct(review))

	for _, rating := range []int{0, 6, -1} {
		review.Rating = rating
		assert.Error(t, Validate.Struct(review), "rating %d", rating)
	}
}

func TestSeatConflictErrorNamesSeats(t *testing.T) {
	err := &SeatConflictError{ShowID: "s1", Seats: []string{"A2"}}
	assert.Contains(t, err.Error(), "A2")
	assert.Contains(t, err.Error(), "s1")
}
