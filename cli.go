package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// newRootCmd builds the wvk command tree: `offset` (component G, the search
// driver) and `add` (the offset verifier).
func newRootCmd(logger zerolog.Logger) *cobra.Command {
	root := &cobra.Command{
		Use:           "wvk",
		Short:         "Find and apply Curve25519 vanity key offsets",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newOffsetCmd(logger), newAddCmd(logger))
	return root
}

func newOffsetCmd(logger zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "offset PUBLIC_KEY PREFIX SKIP LIMIT",
		Short: "Search for n such that Montgomery(PUBLIC_KEY + n*O) has the given base64 prefix",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOffset(cmd, logger, args[0], args[1], args[2], args[3])
		},
	}
}

func newAddCmd(logger zerolog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "add OFFSET PREFIX",
		Short: "Apply a verified offset to the private key read from stdin",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAdd(cmd, logger, args[0], args[1])
		},
	}
}

func runOffset(cmd *cobra.Command, logger zerolog.Logger, publicKeyArg, prefixArg, skipArg, limitArg string) error {
	rawKey, err := decodeKey(publicKeyArg)
	if err != nil {
		return usageErrorf("invalid public key: %w", err)
	}
	p0, err := decodeMontgomeryPoint(rawKey)
	if err != nil {
		return fatalErrorf("invalid public key: %w", err)
	}

	prefix, err := newPrefixDescriptor(prefixArg)
	if err != nil {
		return usageErrorf("invalid prefix: %w", err)
	}

	skip, err := parseUint64Arg("SKIP", skipArg)
	if err != nil {
		return err
	}
	limit, err := parseUint64Arg("LIMIT", limitArg)
	if err != nil {
		return err
	}

	start := time.Now()
	result := search(cmd.Context(), p0, skip, limit, defaultBatchSize, prefix)
	elapsed := time.Since(start).Seconds()

	rate := float64(0)
	if elapsed > 0 {
		rate = float64(result.attempts) / elapsed
	}
	summary := logger.Info().
		Float64("seconds", elapsed).
		Uint64("attempts", result.attempts).
		Float64("attempts/s", rate)

	if result.interrupted {
		summary.Msg("search interrupted")
		return errInterrupted
	}
	if result.found {
		summary.Uint64("n", result.n).Msg("search finished")
		fmt.Fprintln(cmd.OutOrStdout(), result.n)
		return nil
	}
	summary.Msg("search finished, limit exhausted")
	return nil
}

func runAdd(cmd *cobra.Command, logger zerolog.Logger, offsetArg, prefixArg string) error {
	offset, err := parseUint64Arg("OFFSET", offsetArg)
	if err != nil {
		return err
	}
	prefix, err := newPrefixDescriptor(prefixArg)
	if err != nil {
		return usageErrorf("invalid prefix: %w", err)
	}

	privateKey, err := readPrivateKey(cmd.InOrStdin())
	if err != nil {
		return usageErrorf("invalid private key: %w", err)
	}

	result, err := applyOffset(privateKey, offset, prefix)
	if err != nil {
		return fatalErrorf("%w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), encodeKey(result))
	return nil
}

func parseUint64Arg(name, s string) (uint64, error) {
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, usageErrorf("invalid %s %q: %w", name, s, err)
	}
	return n, nil
}
