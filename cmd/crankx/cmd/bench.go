package cmd

import (
	"encoding/binary"
	"fmt"
	"os"
	"time"

	"code.cloudfoundry.org/bytefmt"
	"github.com/olekukonko/tablewriter"
	"github.com/spacemeshos/sha256-simd"
	"github.com/spf13/cobra"

	"github.com/tapedrive-io/crankx/proving"
	"github.com/tapedrive-io/crankx/shared"
)

var benchWorkerCounts []uint

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark the nonce search over a synthetic segment",
	RunE: func(cmd *cobra.Command, args []string) error {
		challenge := make([]byte, shared.ChallengeSize)
		segment := syntheticSegment(cfg.SegmentSize)

		data := make([][]string, 0, len(benchWorkerCounts))
		for _, workers := range benchWorkerCounts {
			runCfg := *cfg
			runCfg.SearchWorkers = workers
			if err := runCfg.Validate(); err != nil {
				return err
			}

			tStart := time.Now()
			proof, err := proving.Search(cmd.Context(), challenge, segment,
				proving.WithConfig(&runCfg),
				proving.WithLogger(logger),
			)
			if err != nil {
				return err
			}
			elapsed := time.Since(tStart)

			// Nonces are handed out sequentially from zero, so the winning
			// nonce bounds the number of attempts spent.
			attempts := binary.LittleEndian.Uint64(proof.Nonce) + 1
			rate := float64(attempts) / elapsed.Seconds()

			data = append(data, []string{
				fmt.Sprintf("%d", workers),
				bytefmt.ByteSize(uint64(runCfg.SegmentSize)),
				fmt.Sprintf("%d", runCfg.SearchDifficulty),
				fmt.Sprintf("%d", proof.Difficulty()),
				fmt.Sprintf("%d", attempts),
				elapsed.Round(time.Millisecond).String(),
				fmt.Sprintf("%.1f/s", rate),
			})
		}

		table := tablewriter.NewWriter(os.Stdout)
		table.SetHeader([]string{"workers", "segment", "target", "difficulty", "attempts", "time", "rate"})
		table.AppendBulk(data)
		table.Render()
		return nil
	},
}

// syntheticSegment expands a counter into size deterministic bytes, so runs
// are comparable across machines.
func syntheticSegment(size uint) []byte {
	segment := make([]byte, 0, size)
	var counter [8]byte
	for uint(len(segment)) < size {
		block := sha256.Sum256(counter[:])
		segment = append(segment, block[:]...)
		binary.LittleEndian.PutUint64(counter[:], binary.LittleEndian.Uint64(counter[:])+1)
	}
	return segment[:size]
}

func init() {
	rootCmd.AddCommand(benchCmd)

	benchCmd.Flags().UintSliceVar(&benchWorkerCounts, "workers", []uint{1, cfg.SearchWorkers}, "worker counts to benchmark")
}
