// Package mongodb implements the store interfaces on top of the official
// MongoDB Go driver. Each store wraps one collection and performs exactly
// one database operation per method call; driver errors are translated into
// the sentinel errors defined by the store package.
package mongodb
