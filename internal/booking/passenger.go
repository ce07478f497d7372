package booking

// Passenger count bounds enforced by the counter and again when a booking is
// built.
const (
	MinPassengers = 1
	MaxPassengers = 10
)

// ClampPassengers forces a passenger count into the allowed range.
func ClampPassengers(n int) int {
	if n < MinPassengers {
		return MinPassengers
	}
	if n > MaxPassengers {
		return MaxPassengers
	}
	return n
}

// PassengerCount models the plan-trip counter widget: increments past the
// maximum and decrements below the minimum are no-ops.
type PassengerCount int

// Increment adds one passenger, capped at MaxPassengers.
func (c PassengerCount) Increment() PassengerCount {
	return PassengerCount(ClampPassengers(int(c) + 1))
}

// Decrement removes one passenger, floored at MinPassengers.
func (c PassengerCount) Decrement() PassengerCount {
	return PassengerCount(ClampPassengers(int(c) - 1))
}
