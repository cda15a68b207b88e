package yaonceset

import (
	"encoding/json"
	"sync"
)

// OnceSet is a generic set whose membership only ever grows: values can be
// added and queried, but never removed. Add reports whether the value was
// new, which makes the set a building block for one-time initialization
// checks.
//
// The zero value is ready to use.
type OnceSet[K comparable] struct {
	data map[K]struct{}
	mu   sync.Mutex
}

// NewOnceSet returns a new instance of a once-set with initialized internal
// storage.
//
// Example usage:
//
//	set := yaonceset.NewOnceSet[string]()
func NewOnceSet[K comparable]() *OnceSet[K] {
	return &OnceSet[K]{
		data: make(map[K]struct{}),
	}
}

// Add marks the given value as a member. It returns true exactly when the
// value was not yet a member, i.e. when this call performed the insertion.
// Repeated calls with the same value return false and leave the set
// untouched.
//
// Example usage:
//
//	set := yaonceset.NewOnceSet[string]()
//	fmt.Println(set.Add("value1")) // Outputs: true
//	fmt.Println(set.Add("value1")) // Outputs: false
func (s *OnceSet[K]) Add(value K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.safetyCheck()

	if _, exists := s.data[value]; exists {
		return false
	}

	s.data[value] = struct{}{}

	return true
}

// Has checks whether a given value is a member of the set.
//
// Example usage:
//
//	set := yaonceset.NewOnceSet[string]()
//	set.Add("value1")
//	fmt.Println(set.Has("value1")) // Outputs: true
//	fmt.Println(set.Has("value2")) // Outputs: false
func (s *OnceSet[K]) Has(value K) bool {
	s.mu.Lock()
	_, exists := s.data[value]
	s.mu.Unlock()

	return exists
}

// Length returns the total number of values in the set.
//
// Example usage:
//
//	set := yaonceset.NewOnceSet[string]()
//	fmt.Println(set.Length()) // Outputs: 0
//	set.Add("value1")
//	fmt.Println(set.Length()) // Outputs: 1
func (s *OnceSet[K]) Length() int {
	s.mu.Lock()
	length := len(s.data)
	s.mu.Unlock()

	return length
}

// IsEmpty checks if the set is empty.
func (s *OnceSet[K]) IsEmpty() bool {
	return s.Length() == 0
}

// Values returns a slice of all values stored in the set, in no particular
// order.
//
// Example usage:
//
//	set := yaonceset.NewOnceSet[string]()
//	set.Add("value1")
//	fmt.Println(set.Values()) // Outputs: [value1]
func (s *OnceSet[K]) Values() []K {
	s.mu.Lock()

	values := make([]K, 0, len(s.data))
	for k := range s.data {
		values = append(values, k)
	}

	s.mu.Unlock()

	return values
}

// String returns a JSON string representation of the set's values.
func (s *OnceSet[K]) String() string {
	b, err := json.Marshal(s.Values())
	if err != nil {
		return "<error>"
	}

	return string(b)
}
