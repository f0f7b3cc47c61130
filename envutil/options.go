package envutil

// Option is a function which modifies a Reader. Reader functions such as
// String and Bool apply them in order after parsing.
type Option[T any] func(Reader[T]) Reader[T]

// Default provides a value for the Reader when the variable is not set.
func Default[T any](dfl T) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.WithDefault(dfl)
	}
}

// Validate runs f on the Reader's value. If f returns an error, the Reader
// carries that error.
func Validate[T any](f func(T) error) Option[T] {
	return func(rdr Reader[T]) Reader[T] {
		return rdr.Map(func(val T) (T, error) {
			return val, f(val)
		})
	}
}
