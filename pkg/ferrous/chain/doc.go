// Package chain provides a fluent wrapper around ferrous.Result[T, error]
// for building synchronous success/failure pipelines.
//
// It keeps the API surface small:
// - Start/FromValue: begin a chain from a Result or a plain value
// - Then/ThenTry: compose result-returning or (T, error) functions
// - Map: transform the success value
// - Ensure: trigger side effects without changing the result
// - And/Or: combine with another chain
// - Finally: collapse to a final value via handlers
//
// Operations that change the value type are package functions (Then, Map,
// Finally), mirroring the method/function split of package ferrous. The
// context passed at Start is handed to every callback; the chain itself
// never blocks or suspends.
package chain
