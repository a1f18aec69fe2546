package domain

// Optional is a value that may or may not have been provided. The zero value
// is unset, which is distinct from a set zero value such as "" or false.
type Optional[T any] struct {
	value T
	set   bool
}

func Some[T any](value T) Optional[T] {
	return Optional[T]{value: value, set: true}
}

func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) IsSet() bool {
	return o.set
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// Apply writes the value into dst when it is set.
func (o Optional[T]) Apply(dst *T) {
	if o.set {
		*dst = o.value
	}
}

// ApplyPtr points dst at a copy of the value when it is set.
func (o Optional[T]) ApplyPtr(dst **T) {
	if o.set {
		value := o.value
		*dst = &value
	}
}
