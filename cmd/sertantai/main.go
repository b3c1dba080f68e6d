package main

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/shotleybuilder/sertantai-legal-sub007/pkg/actors"
	"github.com/shotleybuilder/sertantai-legal-sub007/pkg/enactedby"
	"github.com/shotleybuilder/sertantai-legal-sub007/pkg/extent"
	"github.com/shotleybuilder/sertantai-legal-sub007/pkg/lat"
)

var version = "0.1.0"

var cfgFile string

func main() {
	rootCmd := &cobra.Command{
		Use:   "sertantai",
		Short: "UK legislation normalization toolkit",
		Long: `Sertantai normalizes semi-structured UK legislation exports into
durable, queryable records.

It turns raw tabular and XML rows into:
  - Hierarchical legal-text (LAT) records with citations and sort keys
  - Amendment annotation records keyed per law and code type
  - Duty-holder / actor classifications from legal text
  - Enacted-by resolution for subordinate legislation`,
		Version:       version,
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.sertantai/config.yaml)")

	rootCmd.AddCommand(latCmd())
	rootCmd.AddCommand(enactedByCmd())
	rootCmd.AddCommand(actorsCmd())
	rootCmd.AddCommand(patternsCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig reads the config file and SERTANTAI_* environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return
		}
		viper.AddConfigPath(home + "/.sertantai")
		viper.SetConfigType("yaml")
		viper.SetConfigName("config")
	}

	viper.SetEnvPrefix("SERTANTAI")
	viper.AutomaticEnv()
	_ = viper.ReadInConfig()
}

func latCmd() *cobra.Command {
	var lawName string

	cmd := &cobra.Command{
		Use:   "lat [csv-file]",
		Short: "Normalize exported rows into LAT and annotation records",
		Long: `Reads a CSV export of legal-text rows and emits the normalized LAT
records and annotation records as JSON. Non-content rows and rows with
unmapped record types are dropped.

Expected columns (header row required): Record_Type, Section||Regulation,
Region, Changes, flow, and optionally Part, Chapter, Heading, Sub,
Paragraph, SubParagraph, Class, Text.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if lawName == "" {
				return fmt.Errorf("--law is required")
			}

			reader, closeFn, err := openInput(args)
			if err != nil {
				return err
			}
			defer closeFn()

			rows, err := readRows(reader)
			if err != nil {
				return err
			}

			// First pass finds parallel territorial variants so only
			// those receive extent-qualified sort keys.
			pairs := make([]extent.ProvisionExtent, 0, len(rows))
			for _, row := range rows {
				pairs = append(pairs, extent.ProvisionExtent{
					Provision: row.Provision,
					Extent:    extent.Code(row.Region),
				})
			}
			builder := lat.NewBuilder(lawName, extent.DetectParallel(pairs))

			type output struct {
				Records     []any `json:"records"`
				Annotations []any `json:"annotations"`
				Dropped     int   `json:"dropped"`
			}
			out := output{Records: []any{}, Annotations: []any{}}
			seq := make(lat.SequenceCounter)

			for _, row := range rows {
				record, ok := builder.Build(row)
				if !ok {
					out.Dropped++
					for _, annotation := range builder.Annotations(row, "", seq) {
						out.Annotations = append(out.Annotations, annotation)
					}
					continue
				}
				out.Records = append(out.Records, record)
			}

			fmt.Fprintf(os.Stderr, "Normalized %d records (%d dropped) for %s\n",
				len(out.Records), out.Dropped, builder.LawName)
			return printJSON(cmd.OutOrStdout(), out)
		},
	}

	cmd.Flags().StringVar(&lawName, "law", "", "law identifier, e.g. UK_ukpga_1974_37 (required)")
	return cmd
}

func enactedByCmd() *cobra.Command {
	var refsPath string
	var patternDir string

	cmd := &cobra.Command{
		Use:   "enacted-by [text-file]",
		Short: "Resolve which laws enacted an instrument",
		Long: `Resolves the enabling-powers text of a Statutory Instrument to the
Acts (or retained EU instruments) that enacted it, using the pattern
cascade: specific Act names first, then "powers conferred by" clauses,
then a footnote sweep.

The refs file maps footnote and citation codes to legislation.gov.uk
URLs:

    f00001:
      - https://www.legislation.gov.uk/ukpga/1974/37`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reader, closeFn, err := openInput(args)
			if err != nil {
				return err
			}
			defer closeFn()

			text, err := io.ReadAll(reader)
			if err != nil {
				return fmt.Errorf("reading text: %w", err)
			}

			refs := map[string][]string{}
			if refsPath != "" {
				data, err := os.ReadFile(refsPath)
				if err != nil {
					return fmt.Errorf("reading refs: %w", err)
				}
				if err := yaml.Unmarshal(data, &refs); err != nil {
					return fmt.Errorf("parsing refs: %w", err)
				}
			}

			registry, err := loadRegistry(patternDir)
			if err != nil {
				return err
			}

			ids, report := enactedby.NewResolver(registry).Resolve(string(text), refs)
			return printJSON(cmd.OutOrStdout(), struct {
				EnactedBy []string         `json:"enacted_by"`
				Report    enactedby.Report `json:"report"`
			}{EnactedBy: ids, Report: report})
		},
	}

	cmd.Flags().StringVar(&refsPath, "refs", "", "YAML file mapping footnote codes to legislation.gov.uk URLs")
	cmd.Flags().StringVar(&patternDir, "patterns", "", "directory of additional pattern YAML files")
	_ = viper.BindPFlag("pattern_dir", cmd.Flags().Lookup("patterns"))
	return cmd
}

func actorsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "actors [text-file]",
		Short: "Classify duty-holders and actors in legal text",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reader, closeFn, err := openInput(args)
			if err != nil {
				return err
			}
			defer closeFn()

			text, err := io.ReadAll(reader)
			if err != nil {
				return fmt.Errorf("reading text: %w", err)
			}

			labels := actors.Classify(string(text))
			return printJSON(cmd.OutOrStdout(), struct {
				Actors []string `json:"actors"`
			}{Actors: labels})
		},
	}
}

func patternsCmd() *cobra.Command {
	var patternDir string

	cmd := &cobra.Command{
		Use:   "patterns",
		Short: "List the enacted-by pattern registry",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry(patternDir)
			if err != nil {
				return err
			}

			for _, id := range registry.List() {
				entry, _ := registry.Get(id)
				state := "enabled"
				if !entry.Enabled {
					state = "disabled"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-22s %-18s priority %3d  %s\n",
					entry.ID, entry.Type, entry.Priority, state)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&patternDir, "patterns", "", "directory of additional pattern YAML files")
	return cmd
}

// loadRegistry returns the builtin registry plus any custom pattern
// directory from the flag or configuration.
func loadRegistry(patternDir string) (*enactedby.Registry, error) {
	registry := enactedby.BuiltinRegistry()
	if patternDir == "" {
		patternDir = viper.GetString("pattern_dir")
	}
	if patternDir != "" {
		if err := registry.LoadDirectory(patternDir); err != nil {
			return nil, fmt.Errorf("loading patterns: %w", err)
		}
	}
	return registry, nil
}

// openInput opens the file argument, or stdin when absent.
func openInput(args []string) (io.Reader, func(), error) {
	if len(args) == 0 {
		return os.Stdin, func() {}, nil
	}
	file, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("opening %s: %w", args[0], err)
	}
	return file, func() { file.Close() }, nil
}

// readRows parses a CSV export with a header row into raw rows. Missing
// columns are simply absent; Position defaults to the row's ordinal when
// the export does not carry one.
func readRows(reader io.Reader) ([]lat.Row, error) {
	csvReader := csv.NewReader(reader)
	csvReader.FieldsPerRecord = -1

	header, err := csvReader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return record[i]
	}

	var rows []lat.Row
	for position := 1; ; position++ {
		record, err := csvReader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading CSV row %d: %w", position, err)
		}

		row := lat.Row{
			RecordType:   field(record, "Record_Type"),
			Provision:    field(record, "Section||Regulation"),
			Region:       field(record, "Region"),
			Changes:      field(record, "Changes"),
			Flow:         field(record, "flow"),
			Part:         field(record, "Part"),
			Chapter:      field(record, "Chapter"),
			HeadingGroup: field(record, "Heading"),
			Sub:          field(record, "Sub"),
			Paragraph:    field(record, "Paragraph"),
			SubParagraph: field(record, "SubParagraph"),
			Class:        field(record, "Class"),
			Text:         field(record, "Text"),
			Position:     position,
		}
		if p := field(record, "Position"); p != "" {
			if parsed, err := strconv.Atoi(strings.TrimSpace(p)); err == nil {
				row.Position = parsed
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func printJSON(w io.Writer, value any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(value)
}
