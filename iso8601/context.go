// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package iso8601

import "context"

type optionsKey struct{}

// ContextWithOptions returns a new context with the given Options stored
// in it.
func ContextWithOptions(ctx context.Context, opts Options) context.Context {
	return context.WithValue(ctx, optionsKey{}, opts)
}

// OptionsFromContext returns the Options stored in ctx, or the zero
// value, ie. the default ISO 8601 behaviour, if there are none.
func OptionsFromContext(ctx context.Context) Options {
	opts, ok := ctx.Value(optionsKey{}).(Options)
	if !ok {
		return Options{}
	}
	return opts
}
