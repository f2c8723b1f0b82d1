package main

import (
	"log/slog"
	"os"
	"testing"

	"github.com/poiesic/matchbook/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"
)

func TestRankCommandFlags(t *testing.T) {
	app := &cli.App{
		Name: "matchbook",
		Commands: []*cli.Command{
			{
				Name:   "rank",
				Usage:  "Rank all stored profiles against a subject profile",
				Action: rankCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.Uint64Flag{
						Name:    "subject",
						Aliases: []string{"s"},
						Usage:   "Subject profile ID",
					},
					&cli.StringFlag{
						Name:    "name",
						Aliases: []string{"n"},
						Usage:   "Subject profile name (alternative to --subject)",
					},
					&cli.IntFlag{
						Name:    "top",
						Aliases: []string{"t"},
						Usage:   "Maximum number of matches to show",
						Value:   10,
					},
				},
			},
		},
	}

	t.Run("db is required", func(t *testing.T) {
		args := []string{"matchbook", "rank", "--subject", "1"}
		err := app.Run(args)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "db")
	})

	t.Run("subject or name is required", func(t *testing.T) {
		args := []string{"matchbook", "rank", "--db", "/tmp/test"}
		err := app.Run(args)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--subject or --name")
	})

	t.Run("top has default value of 10", func(t *testing.T) {
		cmd := app.Commands[0]
		var topFlag *cli.IntFlag
		for _, flag := range cmd.Flags {
			if f, ok := flag.(*cli.IntFlag); ok && f.Name == "top" {
				topFlag = f
				break
			}
		}
		require.NotNil(t, topFlag)
		assert.Equal(t, 10, topFlag.Value)
	})
}

func TestParseRole(t *testing.T) {
	t.Run("valid roles", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected core.Role
		}{
			{"member", core.RoleMember},
			{"staff", core.RoleStaff},
			{"Member", core.RoleMember},
			{"STAFF", core.RoleStaff},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				role, err := parseRole(tc.input)
				require.NoError(t, err)
				assert.Equal(t, tc.expected, role)
			})
		}
	})

	t.Run("invalid role returns error", func(t *testing.T) {
		_, err := parseRole("admin")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid role")
	})
}

func TestRoleName(t *testing.T) {
	assert.Equal(t, "member", roleName(core.RoleMember))
	assert.Equal(t, "staff", roleName(core.RoleStaff))
	assert.Equal(t, "unknown", roleName(core.Role(0)))
}

func TestSetupLogger(t *testing.T) {
	t.Run("valid log levels", func(t *testing.T) {
		testCases := []struct {
			input    string
			expected slog.Level
		}{
			{"debug", slog.LevelDebug},
			{"info", slog.LevelInfo},
			{"warn", slog.LevelWarn},
			{"error", slog.LevelError},
		}

		for _, tc := range testCases {
			t.Run(tc.input, func(t *testing.T) {
				app := &cli.App{
					Name: "test",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "log-level",
							Value: tc.input,
						},
					},
					Before: setupLogger,
					Action: func(c *cli.Context) error {
						return nil
					},
				}

				err := app.Run([]string{"test", "--log-level", tc.input})
				require.NoError(t, err)
			})
		}
	})

	t.Run("case insensitive log levels", func(t *testing.T) {
		testCases := []string{
			"DEBUG",
			"Info",
			"WaRn",
			"ERROR",
		}

		for _, tc := range testCases {
			t.Run(tc, func(t *testing.T) {
				app := &cli.App{
					Name: "test",
					Flags: []cli.Flag{
						&cli.StringFlag{
							Name:  "log-level",
							Value: "info",
						},
					},
					Before: setupLogger,
					Action: func(c *cli.Context) error {
						return nil
					},
				}

				err := app.Run([]string{"test", "--log-level", tc})
				require.NoError(t, err)
			})
		}
	})

	t.Run("invalid log level returns error", func(t *testing.T) {
		app := &cli.App{
			Name: "test",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "log-level",
					Value: "info",
				},
			},
			Before: setupLogger,
			Action: func(c *cli.Context) error {
				return nil
			},
		}

		err := app.Run([]string{"test", "--log-level", "invalid"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid log level")
	})
}

func TestMain(m *testing.M) {
	// Run tests
	code := m.Run()
	os.Exit(code)
}
