/*
Package session keeps live portal engines addressable by ID.

Each session owns one engine. Calls for the same session are serialized by a
per-session mutex, so hosts serving concurrent clients never drive a single
engine from two goroutines at once. Sessions live in memory only.
*/
package session
