// Package resolver determines the network address of the local machine.
//
// The address is found the way gethostbyname(gethostname()) finds it: the
// hostname is looked up and the first IPv4 address it resolves to is used.
// Resolution is a blocking call; a misconfigured resolver can stall it
// indefinitely unless a timeout is configured.
package resolver
