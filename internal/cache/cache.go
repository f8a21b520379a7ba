// Package cache stores raw Places API response pages between runs. The API
// bills per request, so re-rolling the dice for the same origin and radius
// should not cost another search.
package cache

import "context"

// Noop satisfies places.PageCache and caches nothing. Used when no cache
// backend is configured.
type Noop struct{}

func (Noop) Get(context.Context, string) ([]byte, bool) { return nil, false }

func (Noop) Put(context.Context, string, []byte) {}
