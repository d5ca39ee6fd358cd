package staticassert

// Checked is the zero-size result of Expr. It exists so an expression-form
// assertion has a value to occupy expression position with; it carries no
// data and costs nothing.
type Checked struct{}

// That declares a build-time assertion wherever a statement is legal.
//
// The function body is empty and the call compiles to nothing. The
// condition is evaluated by the staticassert analyzer during vet: a
// constant-false condition, or a condition that is not a compile-time
// constant at all, fails the build with msg in the diagnostic.
func That(cond bool, msg string) {}

// Expr declares a build-time assertion wherever an expression is legal,
// evaluating to the zero-size Checked value.
//
// Use it at file scope or inside larger expressions:
//
//	var _ = staticassert.Expr(pageSize%slotSize == 0, "slots tile the page")
func Expr(cond bool, msg string) Checked { return Checked{} }
