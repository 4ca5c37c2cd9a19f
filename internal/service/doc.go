// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects, the processor
// variants, and the task dispatcher to fulfill application features.
//
// The service layer sits between the HTTP handlers and the task machinery:
// handlers translate wire formats and hand validated requests to a service,
// the service picks the processor variant, builds the background task, and
// queues it, then later answers status lookups from the task store.
//
// Services receive dependencies through constructor injection as narrow
// interfaces defined in this package, so HTTP tests can swap in mocks and
// the service never depends on concrete dispatcher or store types. Errors
// from lower layers are translated to service-level sentinels or wrapped
// with operation context for the API error mapping.
package service
