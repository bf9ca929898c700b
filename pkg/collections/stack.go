package collections

// Stack is a LIFO of values. The zero value is an empty stack.
type Stack[T any] struct {
	Items []T
}

func (s Stack[T]) IsEmpty() bool {
	return len(s.Items) == 0
}

func (s *Stack[T]) Push(items ...T) {
	s.Items = append(s.Items, items...)
}

// Pop removes and returns the top item. ok is false on an empty stack.
func (s *Stack[T]) Pop() (item T, ok bool) {
	if len(s.Items) == 0 {
		return item, false
	}
	item = s.Items[len(s.Items)-1]
	s.Items = s.Items[:len(s.Items)-1]
	return item, true
}
