// Package protocol derives the table that maps IP protocol numbers to
// their conventional short names ("TCP", "UDP", "ICMP", ...).
//
// The table is built from the IPPROTO_* constants the operating system
// exposes through golang.org/x/sys/unix. Go offers no way to enumerate a
// package's constants at run time, so every supported platform carries an
// explicit list in a build-tagged file. Platforms without a list produce an
// empty table.
//
// Several constants may share one number (IPPROTO_IP and IPPROTO_HOPOPTS
// are both 0 on Linux). The entry listed last wins, which makes the chosen
// name platform dependent.
package protocol
