// choicetool inspects the storage layout of a declared alternative set:
// discriminant width, reserved sentinel codes and capability
// availability. Schemas are described in YAML, so layout questions can
// be answered without writing a Go program.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/closedset/choice"
	"github.com/closedset/choice/internal/index"
)

type schemaDoc struct {
	Name         string   `yaml:"name"`
	Alternatives []altDoc `yaml:"alternatives"`
}

type altDoc struct {
	Tag  string `yaml:"tag"`
	Kind string `yaml:"kind"`
}

var verbose bool

func main() {
	root := &cobra.Command{
		Use:           "choicetool",
		Short:         "Inspect closed-set tagged-union layouts",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log progress")
	root.AddCommand(layoutCmd(), widthCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "choicetool: %v\n", err)
		os.Exit(1)
	}
}

func logger() *zap.SugaredLogger {
	if !verbose {
		return zap.NewNop().Sugar()
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop().Sugar()
	}
	return l.Sugar()
}

func layoutCmd() *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "layout",
		Short: "Report the layout of a schema described in YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			log := logger()
			defer log.Sync()

			raw, err := os.ReadFile(file)
			if err != nil {
				return err
			}
			var doc schemaDoc
			if err := yaml.Unmarshal(raw, &doc); err != nil {
				return fmt.Errorf("parse %s: %w", file, err)
			}
			log.Infow("parsed schema description", "name", doc.Name, "alternatives", len(doc.Alternatives))

			s, err := buildSchema(doc)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "schema %s\n", doc.Name)
			fmt.Fprintf(out, "  alternatives: %d\n", s.Len())
			fmt.Fprintf(out, "  index width:  %d byte(s)\n", s.IndexSize())
			fmt.Fprintf(out, "  never value:  %#x\n", s.NeverValue())
			fmt.Fprintf(out, "  moved marker: %#x\n", s.UseAfterMove())
			fmt.Fprintf(out, "  Eq: %v  Ord: %v  Clone: %v\n", s.CanEqual(), s.CanCompare(), s.CanClone())
			for i := 0; i < s.Len(); i++ {
				a := s.AltAt(i)
				fmt.Fprintf(out, "  [%d] %v: %s\n", i, a.Tag(), a.PayloadType())
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML schema description")
	cmd.MarkFlagRequired("file")
	return cmd
}

func widthCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "width N [N...]",
		Short: "Print the index width selected for the given alternative counts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, arg := range args {
				n, err := strconv.Atoi(arg)
				if err != nil || n <= 0 {
					return fmt.Errorf("invalid alternative count %q", arg)
				}
				size := index.Size(n)
				fmt.Fprintf(out, "%d alternatives: %d byte(s), never %#x, moved %#x\n",
					n, size, index.Never(size), index.Moved(size))
			}
			return nil
		},
	}
}

// buildSchema turns a YAML description into a real Schema, converting
// the declaration-time panics (duplicate tags, empty set) into errors
// the CLI can report.
func buildSchema(doc schemaDoc) (s *choice.Schema[string], err error) {
	alts := make([]choice.Alternative[string], 0, len(doc.Alternatives))
	for _, a := range doc.Alternatives {
		alt, err := altForKind(a.Tag, a.Kind)
		if err != nil {
			return nil, err
		}
		alts = append(alts, alt)
	}
	defer func() {
		if r := recover(); r != nil {
			s, err = nil, fmt.Errorf("%v", r)
		}
	}()
	return choice.NewSchema(alts...), nil
}

func altForKind(tag, kind string) (choice.Alternative[string], error) {
	switch kind {
	case "unit":
		return choice.Unit(tag), nil
	case "bool":
		return choice.AltComparable[bool](tag), nil
	case "u8":
		return choice.AltOrdered[uint8](tag), nil
	case "u16":
		return choice.AltOrdered[uint16](tag), nil
	case "u32":
		return choice.AltOrdered[uint32](tag), nil
	case "u64":
		return choice.AltOrdered[uint64](tag), nil
	case "i8":
		return choice.AltOrdered[int8](tag), nil
	case "i16":
		return choice.AltOrdered[int16](tag), nil
	case "i32":
		return choice.AltOrdered[int32](tag), nil
	case "i64":
		return choice.AltOrdered[int64](tag), nil
	case "f32":
		return choice.AltOrdered[float32](tag), nil
	case "f64":
		return choice.AltOrdered[float64](tag), nil
	case "string":
		return choice.AltOrdered[string](tag), nil
	case "bytes":
		return choice.Alt[[]byte](tag), nil
	case "opaque":
		return choice.Alt[any](tag), nil
	}
	return choice.Alternative[string]{}, fmt.Errorf("unknown payload kind %q for tag %q", kind, tag)
}
