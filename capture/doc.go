// Package capture turns camera frames into photos ready for compositing.
//
// A Booth runs the capture sequence of a photobooth: a 3-2-1 countdown, a
// freeze-frame grabbed from a Camera, a horizontal mirror (selfie
// convention), a short shutter beep and finally a PNG data URL. A Session
// collects shots until the selected layout has the photos it needs:
//
//	sess := capture.NewSession(photobooth.Grid4)
//	booth := capture.NewBooth(cam)
//	if err := sess.Fill(ctx, booth); err != nil {
//		return err
//	}
//	comp, err := preview.Render(ctx, sess.Sources(), req)
//
// DataURL implements photobooth.Source, so captured shots can be handed to
// photobooth.Preview directly.
package capture
