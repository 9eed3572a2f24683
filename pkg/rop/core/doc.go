// Package core carries facade configuration on context.Context (logger, id
// generator, logging switch) and the single-value channel helpers the async
// facade is built on. It defines no Result semantics of its own.
package core
