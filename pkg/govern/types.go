package govern

// Func is the callable a governor wraps. target is the invocation context
// resolved by the governor (a fixed target configured at wrap time always
// wins over the one supplied at call time); args are the arguments captured
// when the governed form was invoked.
type Func func(target any, args []any)

// Governed is the governed form of a callable, as returned by the Wrap
// convenience constructors. Invoking it forwards to the wrapped Func
// according to the governor's timing rules; except where a governor
// documents an immediate fire, forwarding happens asynchronously after
// the governed call returns.
type Governed func(target any, args ...any)
