// Package v1alpha1 defines the tides gRPC API: request and response messages,
// service descriptors and client stubs. Messages travel as JSON using the codec
// registered by this package; clients select it with the "json" content subtype.
package v1alpha1
