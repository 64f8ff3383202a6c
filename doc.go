// Package veq compiles textual equations like "sin(x)^2+log(x*2)" into
// postfix programs and evaluates them against variable bindings.
//
// A Calculator compiles its expression once, on the first call to
// Calculate or Compile, and reuses the compiled program for every
// following call. This makes per-pixel, per-frame evaluation cheap:
// parse once, then bind x (and t) and calculate for each sample.
//
// Evaluation failures are classified: syntax problems are LexError or
// ParseError and are fatal to the expression, while UndefinedVariableError
// and DomainError depend on the bindings of a particular call, so the
// same expression may succeed at one x and fail at another.
package veq
