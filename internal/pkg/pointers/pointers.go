package pointers

// To returns a pointer to a copy of v. Patch literals use it for optional fields.
func To[T any](v T) *T { return &v }

// ValueOr dereferences p, or returns def when p is nil.
func ValueOr[T any](p *T, def T) T {
	if p == nil {
		return def
	}
	return *p
}
