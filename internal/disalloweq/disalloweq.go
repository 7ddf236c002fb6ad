// Package disalloweq provides a method for disallowing struct comparisons
// with the `==` operator.
package disalloweq

// DisallowEqual can be embedded in a struct to cause the compiler to reject
// attempts to compare it with the `==` operator. The field, scalar and point
// types embed it, so their values are compared through their Equal methods;
// for points this matters because the same curve point has many projective
// (X, Y, Z) representations, so `==` would silently compare the wrong thing.
type DisallowEqual [0]func()
