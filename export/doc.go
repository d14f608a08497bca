// Package export delivers finished compositions: PNG download, a print
// view and a simulated e-mail send.
//
// Downloads are named photobooth-<mode>-<unix millis>.png:
//
//	path, err := export.Download(dir, comp, time.Now())
//
// PrintPage writes a self-contained HTML page that embeds the PNG as a data
// URL and opens the browser print dialog when loaded.
package export
