// Package main pushes recorded accelerometer samples to a running shakecalc
// whose motion source is "http". It stands in for the phone sensor during
// development and demos.
//
// Usage
//
//	sensorfeed [file] --addr http://127.0.0.1:8087 --batch 1 --interval 20ms
//
// Input
//
//	One "x,y,z" reading in m/s^2 per line, comma or whitespace separated.
//	Blank lines and lines starting with # are skipped. With no file, or
//	file "-", samples are read from stdin.
//
// Behaviour
//
//   - Samples are sent in batches of --batch as a JSON array to POST /motion.
//   - --interval waits between batches so a recording replays at sensor pace.
//   - The first failed post stops the feed and the command exits non-zero.
//   - An interrupt stops the feed after the batch in flight.
package main
