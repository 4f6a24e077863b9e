// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// authCommand handles identity provider operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage authentication",
		Commands: []*cli.Command{
			{
				Name:  "register",
				Usage: "Create an account with the identity provider",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email address",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password (6 character minimum)",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "confirm",
						Usage:    "Password confirmation",
						Required: true,
					},
				},
				Action: r.AuthRegister,
			},
			{
				Name:  "login",
				Usage: "Sign in with email and password",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email address",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:   "logout",
				Usage:  "Sign out and destroy the stored session",
				Action: r.AuthLogout,
			},
			{
				Name:  "whoami",
				Usage: "Show the current signed-in user",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.AuthWhoami,
			},
			{
				Name:  "verify",
				Usage: "Verify the bearer token against the backend and show claims",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.AuthVerify,
			},
		},
	}
}

// searchCommand handles one-shot video searches
func searchCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "search",
		Usage: "Search YouTube videos",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "query",
			},
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "after",
				Usage: "Only videos published after this date (YYYY-MM-DD) or N days back",
				Value: "30",
			},
			&cli.StringFlag{
				Name:  "channel",
				Usage: "Restrict results to a channel ID",
			},
			&cli.IntFlag{
				Name:  "max",
				Usage: "Maximum number of results (5, 10, 15 or 20)",
				Value: 10,
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
		},
		Action: r.Search,
	}
}

// summarizeCommand handles single and bulk summary generation
func summarizeCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "summarize",
		Aliases: []string{"sum"},
		Usage:   "Generate an AI summary for a video ID or URL",
		Arguments: []cli.Argument{
			&cli.StringArg{
				Name: "video",
			},
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "markdown",
				Usage: "Request the backend's Markdown representation",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "Output raw JSON",
			},
			&cli.StringFlag{
				Name:    "export",
				Aliases: []string{"o"},
				Usage:   "Write the summary to this file (.md or .html)",
			},
		},
		Action: r.Summarize,
		Commands: []*cli.Command{
			{
				Name:  "bulk",
				Usage: "Summarize many videos concurrently from an ID list file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "File with one video ID or URL per line",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Output format: markdown or html",
						Value: "markdown",
					},
					&cli.StringFlag{
						Name:  "output",
						Usage: "Output directory (default: summaries_{timestamp})",
					},
					&cli.IntFlag{
						Name:  "workers",
						Usage: "Concurrent workers (max 8)",
						Value: 3,
					},
					&cli.FloatFlag{
						Name:  "rate",
						Usage: "Requests per second",
						Value: 1.0,
					},
				},
				Action: r.SummarizeBulk,
			},
		},
	}
}

// subsCommand handles channel subscription operations
func subsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "subs",
		Aliases: []string{"subscriptions"},
		Usage:   "Manage channel subscriptions",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List subscribed channels",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
					},
				},
				Action: r.SubsList,
			},
			{
				Name:  "add",
				Usage: "Subscribe to a channel",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "channel",
					},
				},
				Action: r.SubsAdd,
			},
			{
				Name:    "remove",
				Aliases: []string{"rm"},
				Usage:   "Unsubscribe from a channel",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "channel",
					},
				},
				Action: r.SubsRemove,
			},
		},
	}
}

// apiCommand handles direct backend API calls
func apiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "api",
		Usage: "Direct API calls to the backend",
		Commands: []*cli.Command{
			{
				Name:  "get",
				Usage: "Direct GET to the backend, prints raw JSON",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "json",
						Usage: "Output raw JSON",
						Value: true,
					},
				},
				Action: r.APIGet,
			},
			{
				Name:  "post",
				Usage: "Direct POST with JSON body",
				Arguments: []cli.Argument{
					&cli.StringArg{
						Name: "path",
					},
				},
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "data",
						Aliases:  []string{"d"},
						Usage:    "JSON body to send",
						Required: true,
					},
				},
				Action: r.APIPost,
			},
		},
	}
}

// setupCommand handles database and configuration bootstrap.
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Initialize config file, database and migrations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
				Value:   "config.toml",
			},
		},
		Action: r.Setup,
	}
}

// tuiCommand returns the top-level TUI command for the interactive client.
func tuiCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "tui",
		Aliases: []string{"interactive", "ui"},
		Usage:   "Launch the interactive terminal client",
		Action:  r.TUI,
	}
}
