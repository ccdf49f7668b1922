package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/spf13/cobra"

	"github.com/CERNDocumentServer/cds-beard/pkg/errors"
	"github.com/CERNDocumentServer/cds-beard/pkg/logging"
	"github.com/CERNDocumentServer/cds-beard/pkg/matching"
	"github.com/CERNDocumentServer/cds-beard/pkg/partition"
)

// newMatchCommand creates the match command. It loads two partition
// documents (JSON or YAML mappings of cluster key to signature ids), runs
// the matching, and writes the result to stdout.
func newMatchCommand(info Info) *cobra.Command {
	var (
		beforePath string
		afterPath  string
		output     string
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match a before-clustering against an after-clustering",
		Example: `  cds-beard match --before profiles.json --after predicted.json
  cds-beard match --before old.yaml --after new.yaml -o yaml --workers 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := logging.FromContext(ctx)

			before, err := loadPartition(beforePath)
			if err != nil {
				return err
			}
			after, err := loadPartition(afterPath)
			if err != nil {
				return err
			}
			logger.Info().
				Int("before_clusters", len(before)).
				Int("after_clusters", len(after)).
				Msg("Partitions loaded")

			m, err := matching.New[string, string, any](matching.WithWorkers(workers))
			if err != nil {
				return err
			}
			result, err := m.Match(ctx, before, after)
			if err != nil {
				return err
			}

			return writeResult(cmd, result, output)
		},
	}

	cmd.Flags().StringVar(&beforePath, "before", "", "partition document of the previous clustering state (required)")
	cmd.Flags().StringVar(&afterPath, "after", "", "partition document of the new clustering state (required)")
	cmd.Flags().StringVarP(&output, "output", "o", info.Output, "output format (json or yaml)")
	cmd.Flags().IntVar(&workers, "workers", info.Workers, "number of subproblems solved concurrently")
	_ = cmd.MarkFlagRequired("before")
	_ = cmd.MarkFlagRequired("after")

	return cmd
}

// loadPartition reads and validates one partition document. Both JSON and
// YAML are accepted. The cluster lists are returned as decoded; the matcher
// normalizes them into sets itself.
func loadPartition(path string) (map[string][]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("partition document %s: %w", path, errors.ErrNotFound)
		}
		return nil, errors.WrapIO("read", path, err)
	}

	raw := map[string]any{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, &errors.ParseError{Path: path, Format: "yaml", Err: err}
	}

	return partition.ListsFromRaw(raw)
}

// writeResult marshals the matching result to stdout.
func writeResult[B comparable, A comparable](cmd *cobra.Command, result *matching.Result[B, A], format string) error {
	var (
		data []byte
		err  error
	)
	switch format {
	case "yaml":
		data, err = yaml.Marshal(result)
	case "json":
		data, err = json.MarshalIndent(result, "", "  ")
		data = append(data, '\n')
	default:
		return &errors.ValidationError{
			Field:   "output",
			Value:   format,
			Message: "must be json or yaml",
		}
	}
	if err != nil {
		return fmt.Errorf("encode result: %w", err)
	}

	_, err = cmd.OutOrStdout().Write(data)
	return err
}
