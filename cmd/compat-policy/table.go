package main

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	compat "github.com/wnxd/microdbg-compat"
	"github.com/wnxd/microdbg-compat/kernel"
)

// row is one entry of the rendered policy table.
type row struct {
	Symbol string  `yaml:"symbol"`
	Policy string  `yaml:"policy"`
	Errno  string  `yaml:"errno,omitempty"`
	ARM    *uint64 `yaml:"arm,omitempty"`
	ARM64  *uint64 `yaml:"arm64,omitempty"`
}

func rows() []row {
	var result []row
	for _, r := range compat.Rules() {
		entry := row{
			Symbol: r.NR.String(),
			Policy: r.Policy.String(),
		}
		if r.Policy.Failure() {
			entry.Errno = r.Errno.Name()
		}
		if no, ok := kernel.ARMNumber(r.NR); ok {
			entry.ARM = &no
		}
		if no, ok := kernel.ARM64Number(r.NR); ok {
			entry.ARM64 = &no
		}
		result = append(result, entry)
	}
	return result
}

var policyColors = map[string]*color.Color{
	compat.SilentSuccess.String():     color.New(color.FgGreen),
	compat.FixedSuccessValue.String(): color.New(color.FgGreen),
	compat.NotSupported.String():      color.New(color.FgYellow),
	compat.PermissionDenied.String():  color.New(color.FgRed),
}

func number(no *uint64) string {
	if no == nil {
		return "-"
	}
	return fmt.Sprint(*no)
}

func renderText(w io.Writer, table []row) error {
	tw := tabwriter.NewWriter(w, 0, 8, 2, ' ', 0)
	fmt.Fprintln(tw, "SYMBOL\tPOLICY\tERRNO\tARM\tARM64")
	for _, r := range table {
		policy := r.Policy
		if c, ok := policyColors[policy]; ok {
			policy = c.Sprint(policy)
		}
		errno := r.Errno
		if errno == "" {
			errno = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", r.Symbol, policy, errno, number(r.ARM), number(r.ARM64))
	}
	return tw.Flush()
}

func renderYAML(w io.Writer, table []row) error {
	encoder := yaml.NewEncoder(w)
	encoder.SetIndent(2)
	if err := encoder.Encode(table); err != nil {
		return errors.Wrap(err, "unable to encode policy table")
	}
	return encoder.Close()
}

func render(w io.Writer, format string, table []row) error {
	switch format {
	case "text":
		return renderText(w, table)
	case "yaml":
		return renderYAML(w, table)
	default:
		return errors.Errorf("unknown output format %q", format)
	}
}

func tableMain(command *cobra.Command, arguments []string) error {
	if len(arguments) > 0 {
		return errors.New("unexpected arguments")
	}
	if tableConfiguration.noColor {
		color.NoColor = true
	}
	return render(color.Output, tableConfiguration.format, rows())
}

var tableCommand = &cobra.Command{
	Use:   "table",
	Short: "Print the policy of every entry point",
	Run:   mainify(tableMain),
}

var tableConfiguration struct {
	// format is the output format, either text or yaml.
	format string
	// noColor disables colorized policies in text output.
	noColor bool
}

func init() {
	flags := tableCommand.Flags()
	flags.SortFlags = false
	flags.StringVarP(&tableConfiguration.format, "format", "f", "text", "Output format (text|yaml)")
	flags.BoolVar(&tableConfiguration.noColor, "no-color", false, "Disable colorized output")
}
