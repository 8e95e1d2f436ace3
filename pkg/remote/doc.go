// Package remote defines the contract between a host and the remote providers it drives.
//
// A provider comes in two halves: a Client, which translates user-facing locators into
// connection properties, and a Server, which answers catalog queries and takes part in
// pull and push operations. Hosts persist the properties returned by the Client and hand
// them back to the Server on every call.
//
// Operations are driven by the host in this order:
//
//	StartOperation -> PullArchive | PushArchive (per volume) -> PushMetadata -> EndOperation
package remote
