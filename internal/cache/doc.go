// Package cache memoizes imported keys and recovered symmetric keys.
//
// Every store is safe for concurrent use and fills entries with an atomic
// insert-if-absent: concurrent first lookups of one key run a single load,
// and a failed load leaves the store untouched.
package cache
