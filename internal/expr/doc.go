// Package expr implements the calculator's expression language over
// uncertain values.
//
// The language supports:
//   - plain numeric literals: 12.3 (the configured default-error policy
//     decides their error bound)
//   - uncertain literals: 12.3±0.5 (also writable as 12.3~0.5 on
//     keyboards without the ± sign)
//   - the operators + - * / ^ with the usual precedence, unary minus,
//     and parentheses
//   - calls to the propagation functions: sin(x), hypot(x, y), logn(x, 3)
//     and the rest of the errmath catalogue
//
// Parsing and evaluation are separate steps, so a REPL can report syntax
// errors without touching the evaluator state.
package expr
