// Package types defines the Snack entity, its field domains, the Store
// interface that catalog backends implement, the runtime Config, and the
// typed errors shared by every layer of the vending tool.
package types
