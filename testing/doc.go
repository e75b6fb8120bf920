// Package testing provides test utilities for the crossmark library.
//
// This package offers helpers for building synthetic rosters and capturing
// log output in tests. It follows Go's convention of providing testing
// utilities in a dedicated package (similar to net/http/httptest).
//
// Key utilities:
//   - NewFlatRoster: Teams plus standalone students with no home team
//   - NewGroupedRoster: Students spread across teams as members
//   - NewTestLogger: Logger that writes through testing.T
//
// Example usage:
//
//	import (
//	    "testing"
//	    crossmarktest "github.com/STAT540-UBC/crossmark/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    roster := crossmarktest.NewGroupedRoster(6, 29)
//	    // Use roster for your tests
//	}
package testing
