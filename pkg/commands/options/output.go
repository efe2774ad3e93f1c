package options

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/dday/pkg/printers"
)

// OutputOptions
type OutputOptions struct {
	Output string
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	names := make([]string, 0, len(printers.Formats))
	for _, f := range printers.Formats {
		names = append(names, string(f))
	}
	cmd.Flags().StringVarP(&po.Output, "output", "o", string(printers.FormatText),
		fmt.Sprintf("Output format. One of %s.", strings.Join(names, ", ")))
}

func (o *OutputOptions) Format() (printers.Format, error) {
	return printers.ParseFormat(o.Output)
}

// HandleError prints err as a JSON object when machine output was asked for,
// so scripts always get parseable output.
func (o *OutputOptions) HandleError(err error) error {
	if err == nil {
		return nil
	}
	if f, ferr := o.Format(); ferr != nil || f != printers.FormatJSON {
		return err
	}
	out := map[string]string{
		"error": err.Error(),
	}
	b, merr := json.Marshal(out)
	if merr != nil {
		return err
	}
	_, _ = fmt.Fprintln(color.Output, string(b))
	return nil
}
