package entity

// CounterStep limits a counter change to a single step per action.
func CounterStep(delta int) int {
	switch {
	case delta > 0:
		return 1
	case delta < 0:
		return -1
	default:
		return 0
	}
}

// AdjustCounter applies one like or review step and floors the result at zero.
func AdjustCounter(current, delta int) int {
	next := current + CounterStep(delta)
	if next < 0 {
		return 0
	}

	return next
}

// AdjustLikes applies a like (+1) or unlike (-1).
func (s *Shop) AdjustLikes(delta int) {
	s.Likes = AdjustCounter(s.Likes, delta)
}

// AdjustReviewCount applies a review step.
func (s *Shop) AdjustReviewCount(delta int) {
	s.ReviewCount = AdjustCounter(s.ReviewCount, delta)
}
