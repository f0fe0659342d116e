package ecs

// Singleton gives a System typed access to a world-wide component. The
// Scheduler initializes Singleton fields on Register.
type Singleton[T any] struct {
	storage *Storage
	ptr     *T
}

// NewSingleton returns an accessor for T, adding the singleton first if the
// storage does not have one yet. The optional initializer is used only in
// that case.
func NewSingleton[T any](storage *Storage, initializer ...T) *Singleton[T] {
	if ReadSingleton[T](storage) == nil {
		var value T
		if len(initializer) > 0 {
			value = initializer[0]
		}
		storage.AddSingleton(value)
	}

	s := &Singleton[T]{}
	s.Init(storage)
	return s
}

// Init binds the accessor to storage.
func (s *Singleton[T]) Init(storage *Storage) {
	s.storage = storage
	s.ptr = ReadSingleton[T](storage)
}

// Get returns the singleton, or nil if it has not been added.
func (s *Singleton[T]) Get() *T {
	if s.ptr == nil && s.storage != nil {
		s.ptr = ReadSingleton[T](s.storage)
	}
	return s.ptr
}

// Exists reports whether the singleton has been added.
func (s *Singleton[T]) Exists() bool {
	return s.Get() != nil
}
