// Package domain defines the core record types for the Fight Night intake API.
//
// Types in this package are pure value objects with no behavior beyond
// required-field introspection. They are the shared language between
// handlers, the intake service, and the store.
//
// Rules for this package:
//   - No imports from other internal/ packages
//   - No *mongo.Client, no http.Request, no context.Context in struct fields
//   - JSON/BSON tags are allowed (they're metadata, not behavior)
//   - Validation helpers are allowed (they're pure functions on the type)
package domain
