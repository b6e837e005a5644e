// Package assign enumerates operator assignments: every sequence of length n
// drawn from an operator.Alphabet of size k, i.e. the Cartesian power Aⁿ.
//
// Two producers with the same contract are provided:
//
//	Generate    - recursive construction, materializes all kⁿ sequences.
//	Iterator    - lazy mixed-radix counter over base k, one sequence per
//	              Next(), restartable via Reset(), O(n) memory.
//
// Both yield exactly kⁿ distinct sequences, each of length n, with no
// duplicates and no omissions. For n == 0 the result is a single empty
// sequence.
//
// Scaling limit:
//
//	kⁿ grows exponentially with the number of slots. Generate needs
//	O(n·kⁿ) memory; the Iterator needs O(n) memory but still O(kⁿ) steps.
//	Count reports kⁿ up front and fails with ErrTooManyAssignments when it
//	does not fit in uint64, so callers can refuse oversized searches.
package assign
