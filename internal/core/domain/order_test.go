package domain

import "testing"

func TestOrderStatusVocabulary(t *testing.T) {
	for _, s := range []OrderStatus{OrderPending, OrderApproved, OrderRejected, OrderCancelled} {
		if !s.IsValid() {
			t.Errorf("%q should be a valid order status", s)
		}
	}
	for _, s := range []OrderStatus{"", "shipped", "Pending", "done"} {
		if s.IsValid() {
			t.Errorf("%q should be rejected", s)
		}
	}
}

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{OrderPending, OrderApproved, true},
		{OrderPending, OrderRejected, true},
		{OrderPending, OrderCancelled, true},
		{OrderPending, OrderPending, true},
		{OrderApproved, OrderApproved, true},
		{OrderApproved, OrderRejected, false},
		{OrderApproved, OrderPending, false},
		{OrderRejected, OrderApproved, false},
		{OrderCancelled, OrderPending, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.want {
			t.Errorf("CanTransitionTo(%s -> %s) = %v, want %v", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestReviewStatusVocabulary(t *testing.T) {
	for _, s := range []ReviewStatus{ReviewPending, ReviewApproved, ReviewRejected} {
		if !s.IsValid() {
			t.Errorf("%q should be a valid review status", s)
		}
	}
	if ReviewStatus("archived").IsValid() {
		t.Error(`"archived" should be rejected`)
	}
}
