package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"mindhealth/internal/model"
	"mindhealth/internal/service"
)

func newImportCommand() *cobra.Command {
	var disordersPath, statisticsPath, statisticsID string

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Replace the reference data",
		Long: `Replace the disorders catalogue and/or the statistics document.

Files may be JSON or YAML (by extension). The disorders file is either a
list of disorders or a map keyed by disorder id.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if disordersPath == "" && statisticsPath == "" {
				return errors.New("nothing to import: pass --disorders and/or --statistics")
			}

			var (
				disorders []*model.Disorder
				stats     *model.Statistics
				err       error
			)
			if disordersPath != "" {
				if disorders, err = loadDisorders(disordersPath); err != nil {
					return err
				}
			}
			if statisticsPath != "" {
				if stats, err = loadStatistics(statisticsPath, statisticsID); err != nil {
					return err
				}
			}

			ctx := cmd.Context()
			stores, _, err := openStores(ctx)
			if err != nil {
				return err
			}
			defer stores.Close(ctx)

			svc := service.NewReferenceService(stores.References, nil)
			if err := svc.Import(ctx, disorders, stats); err != nil {
				return fmt.Errorf("importing reference data: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d disorders", len(disorders))
			if stats != nil {
				fmt.Fprintf(cmd.OutOrStdout(), " and statistics %q", stats.ID)
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	cmd.Flags().StringVar(&disordersPath, "disorders", "", "Disorders file (JSON or YAML)")
	cmd.Flags().StringVar(&statisticsPath, "statistics", "", "Statistics file (JSON or YAML)")
	cmd.Flags().StringVar(&statisticsID, "statistics-id", model.DefaultStatisticsID, "Id of the statistics document")

	return cmd
}

func decodeFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, v)
	default:
		err = json.Unmarshal(data, v)
	}
	if err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}

func loadDisorders(path string) ([]*model.Disorder, error) {
	var list []*model.Disorder
	if err := decodeFile(path, &list); err == nil {
		return list, nil
	}

	var byID map[string]*model.Disorder
	if err := decodeFile(path, &byID); err != nil {
		return nil, err
	}
	list = make([]*model.Disorder, 0, len(byID))
	for id, d := range byID {
		if d == nil {
			continue
		}
		if d.ID == "" {
			d.ID = id
		}
		list = append(list, d)
	}
	return list, nil
}

func loadStatistics(path, id string) (*model.Statistics, error) {
	var data map[string]interface{}
	if err := decodeFile(path, &data); err != nil {
		return nil, err
	}
	return &model.Statistics{ID: id, Data: data}, nil
}
