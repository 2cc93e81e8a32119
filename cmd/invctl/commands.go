package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/InventoryManager_Go/internal/domain"
)

// MigrateCommand applies pending migrations. Opening the store migrates it,
// so this only reports the result.
type MigrateCommand struct{}

func (c *MigrateCommand) Name() string { return "migrate" }
func (c *MigrateCommand) Usage() string { return "migrate" }
func (c *MigrateCommand) Description() string { return "Create or upgrade the store schema" }

func (c *MigrateCommand) Run(ctx context.Context, env *Env, args []string) error {
	mode, err := env.DB.JournalMode(ctx)
	if err != nil {
		return err
	}
	return env.printJSON(map[string]string{
		"path":         env.DB.Path(),
		"journal_mode": mode,
		"status":       "ok",
	})
}

// FindCommand prints the best name match, or null.
type FindCommand struct{}

func (c *FindCommand) Name() string { return "find" }
func (c *FindCommand) Usage() string { return "find <name>" }
func (c *FindCommand) Description() string { return "Most recently joined user whose name contains <name>" }

func (c *FindCommand) Run(ctx context.Context, env *Env, args []string) error {
	u, err := env.Users.FindUserByName(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	return env.printJSON(u)
}

// SearchCommand prints every name match.
type SearchCommand struct{}

func (c *SearchCommand) Name() string { return "search" }
func (c *SearchCommand) Usage() string { return "search <name>" }
func (c *SearchCommand) Description() string { return "All users whose name contains <name>, newest join first" }

func (c *SearchCommand) Run(ctx context.Context, env *Env, args []string) error {
	users, err := env.Users.SearchUsersByName(ctx, strings.Join(args, " "))
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.User{}
	}
	return env.printJSON(users)
}

// SnapshotCommand dumps one container snapshot with its decode warnings.
type SnapshotCommand struct {
	name  string
	table string
}

func (c *SnapshotCommand) Name() string { return c.name }
func (c *SnapshotCommand) Usage() string { return c.name + " <xuid>" }
func (c *SnapshotCommand) Description() string {
	return "Dump the stored " + strings.ReplaceAll(c.table, "_", " ") + " snapshot for <xuid>"
}

func (c *SnapshotCommand) Run(ctx context.Context, env *Env, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("usage: invctl %s", c.Usage())
	}
	res, err := env.Snapshots.Load(ctx, c.table, args[0])
	if err != nil {
		return err
	}
	return env.printJSON(res)
}
