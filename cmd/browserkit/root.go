package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/tailbits/browserkit"
	"github.com/tailbits/browserkit/internal/casing"
	"github.com/tailbits/browserkit/model"
	"github.com/tailbits/browserkit/rawjson"
)

var rootCmd = &cobra.Command{
	Use:           "browserkit",
	Short:         "Browser automation API client",
	Long:          "browserkit inspects the API models, checks documents against them and calls the browser automation API.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("api-key", "", "API key (default: $BROWSERKIT_API_KEY)")
	rootCmd.PersistentFlags().String("base-url", browserkit.DefaultBaseURL, "API base URL")
	rootCmd.PersistentFlags().Bool("strict", false, "Validate params and responses against the models")

	_ = viper.BindPFlag("api_key", rootCmd.PersistentFlags().Lookup("api-key"))
	_ = viper.BindPFlag("base_url", rootCmd.PersistentFlags().Lookup("base-url"))
	_ = viper.BindPFlag("strict", rootCmd.PersistentFlags().Lookup("strict"))
}

func initConfig() {
	viper.SetEnvPrefix("BROWSERKIT")
	viper.AutomaticEnv()
}

func newClient() *browserkit.Client {
	opts := []browserkit.ClientOption{
		browserkit.WithBaseURL(viper.GetString("base_url")),
		browserkit.WithStrict(viper.GetBool("strict")),
	}
	if key := viper.GetString("api_key"); key != "" {
		opts = append(opts, browserkit.WithAPIKey(key))
	}
	return browserkit.NewClient(opts...)
}

// lookupEntity accepts a model name in any case, or its kebab-case form.
func lookupEntity(reg *browserkit.Registry, name string) (model.Entity, error) {
	if e, ok := reg.GetModel(name); ok {
		return e, nil
	}
	for _, e := range reg.Entities() {
		if casing.ToKebabCase(e.Name()) == strings.ToLower(name) {
			return e, nil
		}
	}
	return nil, fmt.Errorf("unknown model %q, see 'browserkit models'", name)
}

// readDocument decodes a JSON or YAML file. "-" reads stdin.
func readDocument(path string) (rawjson.Value, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return rawjson.Value{}, fmt.Errorf("reading %s: %w", path, err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return rawjson.DecodeYAML(data)
	default:
		return rawjson.Decode(data)
	}
}

func readObject(path string) (*rawjson.Object, error) {
	v, err := readDocument(path)
	if err != nil {
		return nil, err
	}
	obj, ok := v.Object()
	if !ok {
		return nil, fmt.Errorf("%s: expected an object, got %s", path, v.Kind())
	}
	return obj, nil
}

func printJSON(w io.Writer, v any) error {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
