// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/matchbook"
	"github.com/poiesic/matchbook/core"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "matchbook",
		Usage: "Compatibility matching engine for business profiles",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "import",
				Usage:  "Import profiles from a JSON file",
				Action: importCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to a JSON file with an array of profiles",
						Required: true,
					},
				},
			},
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
			{
				Name:   "list",
				Usage:  "List stored profiles",
				Action: listCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to BadgerDB database directory",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "role",
						Usage: "Only list profiles with this role (member, staff)",
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// profileInput is the JSON shape accepted by the import command.
type profileInput struct {
	Name                 string   `json:"name"`
	Role                 string   `json:"role"`
	WhatISell            string   `json:"what_i_sell"`
	WhatINeed            string   `json:"what_i_need"`
	PartnershipInterests []string `json:"partnership_interests"`
	Tags                 []string `json:"tags"`
}

func importCommand(c *cli.Context) error {
	ctx := context.Background()

	data, err := os.ReadFile(c.String("file"))
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}

	var inputs []profileInput
	if err := json.Unmarshal(data, &inputs); err != nil {
		return fmt.Errorf("failed to parse input file: %w", err)
	}

	// Validate before touching the database
	profiles := make([]*core.Profile, len(inputs))
	for i, input := range inputs {
		role, err := parseRole(input.Role)
		if err != nil {
			return fmt.Errorf("profile %q: %w", input.Name, err)
		}

		profiles[i] = &core.Profile{
			Name:                 input.Name,
			Role:                 role,
			WhatISell:            input.WhatISell,
			WhatINeed:            input.WhatINeed,
			PartnershipInterests: input.PartnershipInterests,
			Tags:                 input.Tags,
		}
		if err := core.ValidateProfile(profiles[i]); err != nil {
			return fmt.Errorf("profile %q: %w", input.Name, err)
		}
	}

	db, err := matchbook.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	added, err := db.ProfileRepository().AddProfiles(ctx, profiles...)
	if err != nil {
		return fmt.Errorf("failed to import profiles: %w", err)
	}

	fmt.Fprintf(os.Stderr, "Imported %d profiles\n", len(added))
	return nil
}

func rankCommand(c *cli.Context) error {
	ctx := context.Background()

	if c.Uint64("subject") == 0 && c.String("name") == "" {
		return fmt.Errorf("either --subject or --name is required")
	}

	db, err := matchbook.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	// Resolve the subject
	var subject *core.Profile
	if id := c.Uint64("subject"); id != 0 {
		subject, err = db.ProfileRepository().GetProfile(ctx, core.ID(id))
	} else {
		subject, err = db.ProfileRepository().FindProfileByName(ctx, c.String("name"))
	}
	if err != nil {
		return fmt.Errorf("failed to load subject profile: %w", err)
	}

	matchmaker, err := db.NewMatchmaker()
	if err != nil {
		return fmt.Errorf("failed to create matchmaker: %w", err)
	}
	defer matchmaker.Release()

	results, err := matchmaker.FindMatches(ctx, subject.Id, c.Int("top"))
	if err != nil {
		return fmt.Errorf("matchmaking failed: %w", err)
	}

	fmt.Printf("Matches for %s (%d candidates shown)\n\n", subject.Name, len(results))
	for i, result := range results {
		fmt.Printf("%2d. [%-9s %3d] %s\n", i+1, result.Tier, result.Score, result.Profile.Name)
		for _, reason := range result.Reasons {
			if reason.Detail != "" {
				fmt.Printf("      +%-3d %s: %s\n", reason.Points, reason.Label, reason.Detail)
			} else {
				fmt.Printf("      +%-3d %s\n", reason.Points, reason.Label)
			}
		}
	}
	return nil
}

func listCommand(c *cli.Context) error {
	ctx := context.Background()

	var role core.Role
	if roleStr := c.String("role"); roleStr != "" {
		var err error
		role, err = parseRole(roleStr)
		if err != nil {
			return err
		}
	}

	db, err := matchbook.NewDatabase(c.String("db"))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer db.Close()

	profiles, err := db.ProfileRepository().ListProfiles(ctx, role, 0, 0)
	if err != nil {
		return fmt.Errorf("failed to list profiles: %w", err)
	}

	for _, profile := range profiles {
		fmt.Printf("%6d  %-8s %s\n", profile.Id, roleName(profile.Role), profile.Name)
	}
	fmt.Fprintf(os.Stderr, "\n%d profiles\n", len(profiles))
	return nil
}

func parseRole(s string) (core.Role, error) {
	switch strings.ToLower(s) {
	case "member":
		return core.RoleMember, nil
	case "staff":
		return core.RoleStaff, nil
	default:
		return 0, fmt.Errorf("invalid role %q: must be one of member, staff", s)
	}
}

func roleName(role core.Role) string {
	switch role {
	case core.RoleMember:
		return "member"
	case core.RoleStaff:
		return "staff"
	default:
		return "unknown"
	}
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
