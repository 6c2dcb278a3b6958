// Package track records the live set of owned values and control blocks
// by observing lifecycle events.
//
// A Registry is installed as the process observer, usually for the span
// of a test, and afterwards Close reports everything that was adopted but
// never destroyed, together with any double adoption or double
// destruction it saw along the way:
//
//	reg := track.New()
//	defer track.Install(reg)()
//
//	// ... exercise handles ...
//
//	if err := reg.Close(); err != nil {
//		t.Fatal(err)
//	}
//
// The registry is diagnostic only. It never destroys anything itself and
// no part of the handle packages depends on one being installed; without
// it the event hooks cost a nil check and nothing more. Anomalies are
// additionally logged through the package logger, silent unless
// SetLogger installs a real one.
package track
