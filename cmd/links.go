package cmd

import (
	"fmt"
	"strconv"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/thirdweb-dev/blocklinks/internal/links"
)

var (
	linksCmd = &cobra.Command{
		Use:   "links <start> [end]",
		Short: "Print the links of a block or an inclusive block range",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunLinks(cmd, args)
		},
	}
)

func RunLinks(cmd *cobra.Command, args []string) error {
	startBlock, endBlock, err := parseBlockArgs(args)
	if err != nil {
		return err
	}

	blockFetcher, closeFetcher := newBlockFetcher()
	defer closeFetcher()

	blocks, err := blockFetcher.GetBlockRange(cmd.Context(), startBlock, endBlock)
	if err != nil {
		return err
	}

	rangeLinks, err := links.ExtractLinksFromRange(blocks)
	if err != nil {
		return err
	}
	encoded, err := links.Encode(rangeLinks)
	if err != nil {
		return err
	}

	log.Debug().Uint64("start_block", startBlock).Uint64("end_block", endBlock).Int("links", len(rangeLinks)).Msg("Extracted links")
	fmt.Fprintln(cmd.OutOrStdout(), encoded)
	return nil
}

func parseBlockArgs(args []string) (uint64, uint64, error) {
	startBlock, err := strconv.ParseUint(args[0], 10, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid start block '%s': %w", args[0], err)
	}
	endBlock := startBlock
	if len(args) > 1 {
		endBlock, err = strconv.ParseUint(args[1], 10, 64)
		if err != nil {
			return 0, 0, fmt.Errorf("invalid end block '%s': %w", args[1], err)
		}
	}
	return startBlock, endBlock, nil
}
