// Package motion turns accelerometer samples into shake events.
//
// Detector compares the magnitude of each sample with the previous one and
// fires when the increase exceeds a threshold. Sources deliver samples to a
// sink one at a time:
//
//   - ReaderSource  parses "x,y,z" lines from an io.Reader until EOF.
//   - FileSource    reads a file, then follows appended lines with fsnotify.
//   - HTTPSource    accepts POST /motion bodies pushed by a device bridge.
//
// Client is the sending half of HTTPSource, used by cmd/sensorfeed.
package motion
