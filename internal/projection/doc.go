// Package projection computes year-by-year compound growth of an
// investment. It is the only domain core of the repository; every other
// package is a consumer of its output.
package projection
