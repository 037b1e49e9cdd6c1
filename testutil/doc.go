// Package testutil provides common testing utilities for pslist packages.
//
// This package includes helpers for:
//   - Capturing stdout during test execution (CaptureOutput)
//   - Locating test fixture directories (FindTestData)
//   - Building synthetic proc filesystems (NewProcRoot, ProcRoot.AddProcess)
//   - Loading YAML process-table scenarios (LoadScenario)
//
// All functions use t.Helper() for proper test line reporting.
//
// Example usage:
//
//	func TestSnapshot(t *testing.T) {
//	    sc := testutil.LoadScenario(t, "own_and_all")
//	    root := sc.Build(t)
//	    enum := proctable.New(procfs.New(root.Dir), sc.Resolver())
//	    records, err := enum.Snapshot()
//	    ...
//	}
package testutil
