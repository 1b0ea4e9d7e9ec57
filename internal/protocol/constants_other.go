//go:build !linux && !darwin

package protocol

// osConstants is empty on platforms without a known constant list.
var osConstants []constant
