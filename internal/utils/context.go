// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, file copies and digests,
// HTTP response writing, HTTP client initialization and unique names.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// TriggerCtxKey is the key used to store what started a sync operation
// ("scheduler", "manual", "data_changed", "startup", ...).
var TriggerCtxKey = contextKey("syncTrigger")

// WithTrigger returns a copy of ctx carrying trigger.
func WithTrigger(ctx context.Context, trigger string) context.Context {
	return context.WithValue(ctx, TriggerCtxKey, trigger)
}

// GetTriggerFromContext retrieves the sync trigger from the context.
//
// Returns the trigger and an ok flag:
//   - ok == true: value is found and is a string
//   - ok == false: value is missing or has an unexpected type
func GetTriggerFromContext(ctx context.Context) (string, bool) {
	trigger, ok := ctx.Value(TriggerCtxKey).(string)
	return trigger, ok
}
