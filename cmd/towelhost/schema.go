package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/towelWet/TowelHost/internal/schema"
)

const schemaFilePerms = 0o644

var (
	schemaOutput  string
	schemaCompact bool
)

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the configuration JSON Schema",
	Long: `Print the JSON Schema describing towelhost configuration files, for
editor completion and validation of config.toml and sidecar files.`,
	Args: cobra.NoArgs,
	RunE: runSchema,
}

func init() {
	schemaCmd.Flags().StringVarP(&schemaOutput, "output", "o", "", "Write the schema to this file instead of stdout")
	schemaCmd.Flags().BoolVar(&schemaCompact, "compact", false, "Print without indentation")

	rootCmd.AddCommand(schemaCmd)
}

func runSchema(cmd *cobra.Command, _ []string) error {
	data, err := schema.GenerateJSON(schemaCompact)
	if err != nil {
		return err
	}

	if schemaOutput == "" {
		_, err = cmd.OutOrStdout().Write(data)

		return errors.Wrap(err, "failed to write schema")
	}

	path := filepath.Clean(schemaOutput)

	if err := os.WriteFile(path, data, schemaFilePerms); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}

	fmt.Fprintln(cmd.OutOrStdout(), path)

	return nil
}
