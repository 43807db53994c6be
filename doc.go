// Package latreduce implements floating-point lattice basis reduction:
// classic LLL, LLL with deep insertion, block Korkine–Zolotarev (BKZ)
// driven by Schnorr–Euchner-family enumeration, and the enumerators
// themselves as a standalone primitive.
//
// The package is a thin façade over basis (the exact integer lattice
// representation), gso (incremental Gram–Schmidt state), lll, enum and
// bkz. Callers needing finer control than ReduceLLL/ReduceBKZ/Enumerate
// provide — resuming a partial reduction, inspecting intermediate GSO
// state — should use those subpackages directly.
package latreduce
