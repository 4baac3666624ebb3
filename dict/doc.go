// Package dict implements the shared label dictionary at the heart of
// hostpack: an append-only arena of length-prefixed label records and a
// suffix trie whose nodes are identified by their label's arena offset.
//
// Hostnames are inserted rightmost-label-first, so names sharing a trailing
// suffix ("a.example.com", "b.example.com") share trie paths and arena
// records. The dictionary only grows; offsets are permanent identities and
// remain valid across arena growth.
//
// The dictionary is not safe for concurrent use.
package dict
