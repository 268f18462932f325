// Package record provides a drawing backend that captures operations as
// typed commands instead of rendering them.
//
// A [Backend] implements chart.DrawingBackend by appending one [Command]
// per draw call, in call order. The resulting [Recording] can be
// inspected, compared, or played back onto any other backend, which makes
// record the natural backend for tests and for deferred rendering.
//
// # Basic Usage
//
//	rec := record.New()
//	if err := plot.Draw(rec); err != nil {
//	    // ...
//	}
//	for _, cmd := range rec.Recording() {
//	    fmt.Println(cmd.Op())
//	}
//
// # Playback
//
// A Recording replays against any chart.DrawingBackend:
//
//	dc := gg.NewContext(640, 480)
//	err := rec.Recording().Playback(raster.New(dc))
//
// # Failure Injection
//
// Backend failures are rare in real backends, so Backend can manufacture
// them deterministically:
//
//	rec := record.New()
//	rec.FailAfter(1, errBoom) // second and later draw calls fail
//
// Failed calls are counted but not recorded, mirroring a backend that
// rejects an operation without output.
package record
