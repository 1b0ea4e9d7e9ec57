package main

import (
	"math"

	"github.com/google/gopacket/layers"
	"github.com/spf13/cobra"
)

// protocolEntry is one row of the protocols command output.
type protocolEntry struct {
	Number int    `json:"number" yaml:"number"`
	Name   string `json:"name" yaml:"name"`
	// Decoder is gopacket's name for the protocol; empty for numbers that
	// do not fit the IP header's protocol field.
	Decoder string `json:"decoder,omitempty" yaml:"decoder,omitempty"`
}

func (c *cli) protocolsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "protocols",
		Short: "Print the protocol number to name table of this platform",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if c.app == nil {
				return errNotBootstrapped
			}

			table := c.app.Protocols
			entries := make([]protocolEntry, 0, len(table))
			for _, n := range table.Numbers() {
				entry := protocolEntry{Number: n, Name: table[n]}
				if n >= 0 && n <= math.MaxUint8 {
					entry.Decoder = layers.IPProtocol(n).String()
				}
				entries = append(entries, entry)
			}

			return c.encode(cmd, entries)
		},
	}
}
