package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/tailbits/browserkit"
	"github.com/tailbits/browserkit/internal/casing"
	"github.com/tailbits/browserkit/model"
)

var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List the API models",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, e := range browserkit.NewRegistry().Entities() {
			fmt.Fprintf(w, "%s\t%s\t%d fields\n", e.Name(), casing.ToKebabCase(e.Name()), len(e.Shape().Fields))
		}
		return w.Flush()
	},
}

var opsCmd = &cobra.Command{
	Use:   "ops",
	Short: "List the API operations",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tag, _ := cmd.Flags().GetString("tag")

		reg := browserkit.NewRegistry()
		ops := reg.Ops()
		if tag != "" {
			ops = reg.TaggedOps(tag)
		}

		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, op := range ops {
			out := op.Output.Name()
			switch {
			case op.Output.Name() == (model.Nil{}).Name():
				out = "-"
			case op.List:
				out = "[]" + out
			}
			in := "-"
			if op.HasBody() {
				in = op.Input.Name()
			}
			fmt.Fprintf(w, "%s\t%s %s\t%s -> %s\n", op.OperationID, op.Method, op.Path, in, out)
		}
		return w.Flush()
	},
}

var exampleCmd = &cobra.Command{
	Use:   "example <model>",
	Short: "Print the example document of a model",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := lookupEntity(browserkit.NewRegistry(), args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(string(e.Example())))
		return err
	},
}

func init() {
	opsCmd.Flags().String("tag", "", "Only list operations with this tag")

	rootCmd.AddCommand(modelsCmd, opsCmd, exampleCmd)
}
