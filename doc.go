// package apf does arbitrary-precision binary floating point with correct
// rounding. Every value carries its own precision, every operation takes a
// target precision and a rounding mode, and every result comes back with an
// Accuracy saying how it compares to the exact mathematical answer. The exact
// integer and rational legwork is left to math/big; this package's whole job
// is the precision and rounding semantics on top.
package apf
