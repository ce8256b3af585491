package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tatianab/budget-survival/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the event catalog as YAML",
	RunE:  runCatalog,
}

func runCatalog(cmd *cobra.Command, _ []string) error {
	out, err := yaml.Marshal(catalog.All())
	if err != nil {
		return fmt.Errorf("marshal catalog: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
