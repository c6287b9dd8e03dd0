package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tailbits/browserkit"
	"github.com/tailbits/browserkit/model"
	"github.com/tailbits/browserkit/model/sync"
	"github.com/tailbits/browserkit/openapi"
	"github.com/tailbits/browserkit/rawjson"
)

var validateCmd = &cobra.Command{
	Use:   "validate --type <model> <file>",
	Short: "Check a JSON or YAML document against a model",
	Long: "Check a JSON or YAML document against a model. The shape check stops at the first problem; " +
		"with --strict the document is also checked against the model's JSON Schema, which reports every violation.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		typ, _ := cmd.Flags().GetString("type")

		reg := browserkit.NewRegistry()
		e, err := lookupEntity(reg, typ)
		if err != nil {
			return err
		}
		obj, err := readObject(args[0])
		if err != nil {
			return err
		}

		if err := model.ValidateObject(obj, e.Shape()); err != nil {
			return fmt.Errorf("%s: %w", e.Name(), err)
		}

		if viper.GetBool("strict") {
			body, err := obj.MarshalJSON()
			if err != nil {
				return err
			}
			schema, err := reg.DereferenceSchema(e.Schema())
			if err != nil {
				return err
			}
			if err := model.CheckSchema(e.Name(), schema, body); err != nil {
				var se model.SchemaError
				if errors.As(err, &se) {
					for _, v := range se.Violations {
						fmt.Fprintf(cmd.ErrOrStderr(), "%s: %s\n", v.Field(), v.Message)
					}
					return fmt.Errorf("%s: %d schema violations", e.Name(), len(se.Violations))
				}
				return err
			}
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", e.Name())
		return nil
	},
}

var diffCmd = &cobra.Command{
	Use:   "diff <a> <b>",
	Short: "Compare two documents as models",
	Long:  "Compare two JSON or YAML documents the way models compare: property order does not matter.",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := readObject(args[0])
		if err != nil {
			return err
		}
		b, err := readObject(args[1])
		if err != nil {
			return err
		}

		if a.Equal(b) {
			fmt.Fprintln(cmd.OutOrStdout(), "equal")
			return nil
		}

		ca, err := canonicalIndent(a)
		if err != nil {
			return err
		}
		cb, err := canonicalIndent(b)
		if err != nil {
			return err
		}

		dmp := diffmatchpatch.New()
		diffs := dmp.DiffCleanupSemantic(dmp.DiffMain(ca, cb, false))
		fmt.Fprintln(cmd.OutOrStdout(), dmp.DiffPrettyText(diffs))
		return errors.New("documents differ")
	},
}

func canonicalIndent(o *rawjson.Object) (string, error) {
	c, err := rawjson.Canonical(rawjson.ObjectValue(o))
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, c, "", "  "); err != nil {
		return "", err
	}
	return buf.String(), nil
}

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Check every model against its JSON Schema",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := browserkit.NewRegistry()

		var failed int
		for _, e := range reg.Entities() {
			v, err := sync.New(reg, e)
			if err == nil {
				err = v.IsSynced()
			}
			if err != nil {
				failed++
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", e.Name(), err)
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d models out of sync", failed)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "%d models in sync\n", len(reg.Entities()))
		return nil
	},
}

var openapiCmd = &cobra.Command{
	Use:   "openapi",
	Short: "Generate the OpenAPI 3.1 document of the API",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lint, _ := cmd.Flags().GetBool("lint")
		group, _ := cmd.Flags().GetString("group")
		out, _ := cmd.Flags().GetString("out")

		opts := []openapi.Option{openapi.Validate(lint)}
		if group != "" {
			opts = append(opts, openapi.Filter(func(r openapi.Record) bool { return r.Group == group }))
		}

		doc, err := openapi.New(browserkit.NewRegistry(), opts...)
		if err != nil {
			var lintErr *openapi.LintError
			if errors.As(err, &lintErr) {
				for _, v := range lintErr.Violations {
					fmt.Fprintln(cmd.ErrOrStderr(), v)
				}
			}
			return err
		}

		var buf bytes.Buffer
		if err := json.Indent(&buf, doc, "", "  "); err != nil {
			return err
		}
		buf.WriteByte('\n')

		if out == "" || out == "-" {
			_, err = buf.WriteTo(cmd.OutOrStdout())
			return err
		}
		return os.WriteFile(out, buf.Bytes(), 0o644)
	},
}

func init() {
	validateCmd.Flags().StringP("type", "t", "", "Model name, e.g. SessionCreateParams or session-create-params")
	_ = validateCmd.MarkFlagRequired("type")

	openapiCmd.Flags().Bool("lint", true, "Lint the document with the recommended vacuum rules")
	openapiCmd.Flags().String("group", "", "Only document one resource group")
	openapiCmd.Flags().StringP("out", "o", "", "Write to a file instead of stdout")

	rootCmd.AddCommand(validateCmd, diffCmd, syncCmd, openapiCmd)
}
