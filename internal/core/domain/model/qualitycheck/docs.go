// Package qualitycheck contains the QualityCheck aggregate: one record per
// quality-control attempt on a case.
//
// The checkpoint set is fixed at creation from the procedure-type catalog
// and never changes afterwards. A check completes exactly once: every
// checkpoint must have a pass/fail result, the pass rate is computed, and a
// rate of at least 0.90 (inclusive) yields the passed outcome. Completed
// checks are immutable. A failed check sends the case back to production;
// a later re-inspection opens a fresh QualityCheck instance.
package qualitycheck
