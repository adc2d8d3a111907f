// Package command builds the argument lists of the external tools the workflows drive.
//
// Builders are pure. Each returns an Invocation holding the argv to execute and
// the argv safe to print; credentials only ever appear in the former.
package command
