// Package functerm represents mathematical functions of named variables as
// expression trees and evaluates them.
//
// A Function declares its parameters up front. Its body is assembled from
// literal Values, Variable references, and Calculations combining them with
// the arithmetic Operations, then solved by binding numbers to the
// parameters, either by name or positionally.
//
// Trees are built programmatically; there is no parser. Evaluation never
// mutates a tree, so a Function may be shared and solved by any number of
// goroutines at once.
package functerm
