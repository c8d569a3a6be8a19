// Package services contains stateless domain services that implement
// business logic spanning more than one aggregate or value object.
//
// The package currently holds the pricing engine: it turns a service type,
// a measured weight, the fulfillment options, and a price-list snapshot into
// a bill total. The price list is always passed in as a value; the engine
// never reads shared mutable configuration.
package services
