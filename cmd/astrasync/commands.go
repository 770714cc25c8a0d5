package main

import (
	"github.com/astrasync/astrasync-client/internal/app"
	"github.com/astrasync/astrasync-client/internal/domain"
	"github.com/spf13/cobra"
)

func getEntry(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "get <path>",
		Short: "GET a backend path and print the JSON response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Get(cmd.Context(), args[0])
		},
	}
}

func postEntry(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "post <path> [json]",
		Short: "POST a JSON payload to a backend path",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := ""
			if len(args) == 2 {
				raw = args[1]
			}
			payload, err := parsePayload([]byte(raw))
			if err != nil {
				return err
			}
			return a.Post(cmd.Context(), args[0], payload)
		},
	}
}

func homeEntry(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "home",
		Short: "Print the backend banner",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Home(cmd.Context())
		},
	}
}

func healthEntry(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check backend health",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.Health(cmd.Context())
		},
	}
}

func historyEntry(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "history [user]",
		Short: "List stored logs for a user",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			user := ""
			if len(args) == 1 {
				user = args[0]
			}
			return a.History(cmd.Context(), user)
		},
	}
}

func scoreEntry(a *app.App) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "score",
		Short: "Score a daily entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := readObject(file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return a.Score(cmd.Context(), domain.EntryFromMap(obj))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "entry JSON file (- for stdin)")
	return cmd
}

func submitEntry(a *app.App) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Store a dated daily entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := readObject(file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return a.SubmitData(cmd.Context(), domain.EntryFromMap(obj))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "entry JSON file (- for stdin)")
	return cmd
}

func profileEntry(a *app.App) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Store the user profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			obj, err := readObject(file, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return a.SaveProfile(cmd.Context(), domain.ProfileFromMap(obj))
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "profile JSON file (- for stdin)")
	return cmd
}

func syncGoogleFitEntry(a *app.App) *cobra.Command {
	return &cobra.Command{
		Use:   "sync-google-fit",
		Short: "Pull aggregated data from Google Fit through the backend",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.SyncGoogleFit(cmd.Context())
		},
	}
}
