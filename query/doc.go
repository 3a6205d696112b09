// Package query compiles and evaluates path queries over document trees.
//
// A query is a sequence of steps:
//   - `.name` selects an object field, or an array element when name is an
//     unsigned integer
//   - `[...]` selects every key or index admitted by an index expression:
//     `[]` admits everything; otherwise a comma separated list of integers
//     (`1`), inclusive ranges (`4-6`) and barewords (`hello`)
//
// For example `.friends[1,2].name` selects the name field of the second and
// third elements of friends.
//
// Compile turns a query into a Path; Evaluate walks a document.Value and
// returns every selected value in document order. Malformed queries fail with
// a *LexError matching ErrSyntax. Queries that do not fit the document shape,
// such as an out of range array index, fail with errors matching
// ErrEvaluation. Steps that cannot descend further, like a field of a string,
// select nothing and are not errors.
package query
