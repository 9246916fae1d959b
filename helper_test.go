package hledger

// EUR is a helper for tests to create euro amounts from literals.
func EUR[T int | string](v T) Amount { return A(v, "EUR") }

// USD is a helper for tests to create dollar amounts from literals.
func USD[T int | string](v T) Amount { return A(v, "USD") }

// ptr returns a pointer to a copy of v, for the optional fields of a Posting.
func ptr[T any](v T) *T { return &v }
