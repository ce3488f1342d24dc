package deploy

// FirstOrElse returns the head-most option of concrete type T in
// chain, or def when no such option exists. The default must be a
// fully-formed option so that callers always receive something usable.
// The scan is pure: repeated calls on the same chain value return the
// same result.
func FirstOrElse[T Option](chain Option, def T) T {
	cur := orEmpty(chain)
	for cur != Empty {
		if match, ok := cur.(T); ok {
			return match
		}
		// cannot fail: cur is never Empty here
		cur, _ = cur.Next()
	}
	return def
}

// AllOf returns every option of concrete type T in chain, preserving
// their order of appearance. Each returned option is a detached copy
// whose next reference is Empty, so the result is a list of singleton
// chains rather than a window into the original one. The original
// chain is left untouched.
func AllOf[T Option](chain Option) []T {
	var out []T
	cur := orEmpty(chain)
	for cur != Empty {
		if match, ok := cur.(T); ok {
			out = append(out, match.withNext(Empty).(T))
		}
		cur, _ = cur.Next()
	}
	return out
}

// FilterNot returns a new chain holding every option of chain whose
// concrete type is not T, in the original order. Two passes: the
// first collects the survivors, the second relinks them back-to-front
// by prepending, because a survivor's original next reference may
// point at a removed option. The original chain is left untouched;
// the result is Empty when every option matched or chain was empty.
func FilterNot[T Option](chain Option) Option {
	var keep []Option
	cur := orEmpty(chain)
	for cur != Empty {
		if _, ok := cur.(T); !ok {
			keep = append(keep, cur)
		}
		cur, _ = cur.Next()
	}

	out := Empty
	for i := len(keep) - 1; i >= 0; i-- {
		out = Prepend(out, keep[i])
	}
	return out
}

// IsEmpty reports whether chain is the terminal marker.
func IsEmpty(chain Option) bool {
	return orEmpty(chain) == Empty
}

// Len returns the number of options in chain.
func Len(chain Option) int {
	n := 0
	cur := orEmpty(chain)
	for cur != Empty {
		n++
		cur, _ = cur.Next()
	}
	return n
}
