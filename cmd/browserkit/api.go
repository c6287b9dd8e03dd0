package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tailbits/browserkit"
	"github.com/tailbits/browserkit/model"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "Manage browser sessions",
}

var sessionsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sessions",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		status, _ := cmd.Flags().GetString("status")
		q, _ := cmd.Flags().GetString("query")

		b := browserkit.NewSessionListParamsBuilder()
		if status != "" {
			b.Status(model.Some(browserkit.SessionStatusType.FromRaw(status)))
		}
		if q != "" {
			b.Q(model.Some(q))
		}
		params, err := b.Build()
		if err != nil {
			return err
		}

		sessions, err := newClient().Sessions.List(cmd.Context(), params)
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), sessions)
	},
}

var sessionsGetCmd = &cobra.Command{
	Use:   "get <id>",
	Short: "Retrieve a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sess, err := newClient().Sessions.Get(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), sess)
	},
}

var sessionsCreateCmd = &cobra.Command{
	Use:   "create <params-file>",
	Short: "Create a session from a JSON or YAML params document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		obj, err := readObject(args[0])
		if err != nil {
			return err
		}

		sess, err := newClient().Sessions.Create(cmd.Context(), browserkit.SessionCreateParamsFromRaw(obj))
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), sess)
	},
}

var sessionsReleaseCmd = &cobra.Command{
	Use:   "release <id>",
	Short: "Ask for a keep-alive session to be released",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		project, _ := cmd.Flags().GetString("project")

		params, err := browserkit.NewSessionUpdateParamsBuilder().
			ProjectID(project).
			Status(browserkit.SessionUpdateStatusRequestRelease.Enum()).
			Build()
		if err != nil {
			return err
		}

		sess, err := newClient().Sessions.Update(cmd.Context(), args[0], params)
		if err != nil {
			return err
		}
		status, err := sess.Status()
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], status)
		return nil
	},
}

var sessionsDebugCmd = &cobra.Command{
	Use:   "debug <id>",
	Short: "Print the live debugger URLs of a session",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		urls, err := newClient().Sessions.Debug(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), urls)
	},
}

var projectsCmd = &cobra.Command{
	Use:   "projects",
	Short: "Inspect projects",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		projects, err := newClient().Projects.List(cmd.Context())
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), projects)
	},
}

var projectsUsageCmd = &cobra.Command{
	Use:   "usage <id>",
	Short: "Print the usage of a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		usage, err := newClient().Projects.Usage(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		return printJSON(cmd.OutOrStdout(), usage)
	},
}

var extensionsCmd = &cobra.Command{
	Use:   "extensions",
	Short: "Manage uploaded extensions",
}

var extensionsDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an extension",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := newClient().Extensions.Delete(cmd.Context(), args[0]); err != nil {
			if browserkit.IsNotFound(err) {
				return fmt.Errorf("extension %s does not exist", args[0])
			}
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "deleted %s\n", args[0])
		return nil
	},
}

func init() {
	sessionsListCmd.Flags().String("status", "", "Only list sessions with this status")
	sessionsListCmd.Flags().StringP("query", "q", "", "User metadata query")

	sessionsReleaseCmd.Flags().String("project", "", "Project of the session")
	_ = sessionsReleaseCmd.MarkFlagRequired("project")

	sessionsCmd.AddCommand(sessionsListCmd, sessionsGetCmd, sessionsCreateCmd, sessionsReleaseCmd, sessionsDebugCmd)
	projectsCmd.AddCommand(projectsListCmd, projectsUsageCmd)
	extensionsCmd.AddCommand(extensionsDeleteCmd)

	rootCmd.AddCommand(sessionsCmd, projectsCmd, extensionsCmd)
}
