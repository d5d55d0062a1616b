/*
Package query provides deferred, single-pass Where/Select pipelines over a
collections.Collection.

A pipeline is a [Chain]: a plain struct value whose type spells out every
stage it contains. Each stage holds the stage before it by value and produces
at most one element per Advance call. Nothing is boxed into an interface, and
no stage allocates while the chain runs.

	src := collections.Create(1, 2, 3, 4, 5)

	q := query.Select(
	    query.Where(query.From(&src), func(n int) bool { return n < 4 }),
	    func(n int) string { return fmt.Sprintf("$%d.00", n) },
	)

	dst := collections.CreateResults[string](&src)
	err := q.ToCollection(&dst) // ["$1.00" "$2.00" "$3.00"]

Go methods cannot introduce type parameters, and a method returning a chain
that wraps its own receiver type would form an instantiation cycle. Stages are
therefore composed with package-level functions ([Where], [Select],
[SelectPartial], [Narrow]); terminal operations are methods on [Chain].

# Select and filtering

[Select] takes a plain projector and never drops elements: every upstream
element produces exactly one output. Use [SelectPartial] when the projector
can decline an element by returning false. A chain such as

	query.Where(query.Select(q, isSmall), func(b bool) bool { return b })

therefore first maps every element to a bool and only then filters.

# Consumption

Terminal operations advance the chain they are called on. A chain is meant
to be driven once; driving an exhausted chain again reports exhaustion again.
Build a fresh chain from [From] to start over.
*/
package query
