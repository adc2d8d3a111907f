// Package executor runs the external commands built by package command.
//
// Commands run strictly one at a time. Runner prints the credential-free form of
// each invocation, executes the full form, and stops at the first failure;
// commands that already ran are not rolled back.
package executor
