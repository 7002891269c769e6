// Package console turns text lines typed by a user into playback commands.
// Parsing happens on the reader goroutine; the returned commands run on the
// playback event loop.
package console
