package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"dashboard-customization/internal/app"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

// Run executes a one-shot CLI command. args is os.Args[1:].
func Run(ctx context.Context, svc app.ApplicationService, out io.Writer, args []string) error {
	root := NewRootCommand(svc, out)
	root.SetArgs(args)
	return root.ExecuteContext(ctx)
}

// NewRootCommand builds the command tree over svc, writing results to out.
func NewRootCommand(svc app.ApplicationService, out io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:           "app",
		Short:         "Inspect and render the dashboard customization bundle",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.SetOut(out)

	root.AddCommand(
		newShowCommand(svc),
		newSchemaCommand(svc),
		newTabsCommand(svc),
		newRenderCommand(svc),
		newCheckCommand(svc),
	)
	return root
}

func newShowCommand(svc app.ApplicationService) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the bundle (config, component keys, reference data)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := svc.GetBundle(cmd.Context())
			if err != nil {
				return err
			}
			return encode(cmd.OutOrStdout(), format, result)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or yaml")
	return cmd
}

func newSchemaCommand(svc app.ApplicationService) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Print the JSON Schema of the config",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			schema, err := svc.ConfigSchema(cmd.Context())
			if err != nil {
				return err
			}
			return encode(cmd.OutOrStdout(), "json", schema)
		},
	}
}

func newTabsCommand(svc app.ApplicationService) *cobra.Command {
	return &cobra.Command{
		Use:   "tabs",
		Short: "List dashboard tabs and whether each has a component",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := svc.ListTabs(cmd.Context())
			if err != nil {
				return err
			}
			printTabs(cmd.OutOrStdout(), result)
			return nil
		},
	}
}

func newRenderCommand(svc app.ApplicationService) *cobra.Command {
	return &cobra.Command{
		Use:   "render <tab>",
		Short: "Render one tab's component as an HTML fragment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			result, err := svc.RenderTab(cmd.Context(), args[0])
			if err != nil {
				if errors.Is(err, app.ErrNotFound) {
					return fmt.Errorf("no component registered for tab %q", args[0])
				}
				return err
			}
			if err := result.Component.Render(cmd.Context(), cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("render %s: %w", args[0], err)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout())
			return err
		},
	}
}

func newCheckCommand(svc app.ApplicationService) *cobra.Command {
	return &cobra.Command{
		Use:   "check",
		Short: "Verify tab/component and chart/data-key consistency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := svc.CheckConsistency(cmd.Context())
			if err == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "Customization is consistent.")
				return nil
			}
			problems := multierr.Errors(err)
			for _, p := range problems {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %v\n", p)
			}
			return fmt.Errorf("%d consistency problem(s) found", len(problems))
		},
	}
}

func encode(w io.Writer, format string, v any) error {
	switch strings.ToLower(format) {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml", "yml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want json or yaml)", format)
	}
}

func printTabs(w io.Writer, result *app.TabListResult) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("=", 72))
	fmt.Fprintf(w, "  %-20s %-22s %-12s %s\n", "ID", "LABEL", "ICON", "COMPONENT")
	fmt.Fprintln(w, strings.Repeat("-", 72))
	for _, e := range result.Tabs {
		status := "missing"
		if e.Registered {
			status = "registered"
		}
		fmt.Fprintf(w, "  %-20s %-22s %-12s %s\n", e.Tab.ID, e.Tab.Label, e.Tab.Icon, status)
	}
	fmt.Fprintln(w, strings.Repeat("=", 72))
}
