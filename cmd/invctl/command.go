package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	"github.com/osse101/InventoryManager_Go/internal/database"
	"github.com/osse101/InventoryManager_Go/internal/database/sqlite"
	"github.com/osse101/InventoryManager_Go/internal/domain"
	"github.com/osse101/InventoryManager_Go/internal/snapshot"
	"github.com/osse101/InventoryManager_Go/internal/user"
)

// Command interface that all invctl commands must implement
type Command interface {
	Name() string
	Usage() string
	Description() string
	Run(ctx context.Context, env *Env, args []string) error
}

// Env is what a command runs against.
type Env struct {
	DB        *database.DB
	Users     user.Service
	Snapshots snapshot.Service
	Out       io.Writer
}

func newEnv(db *database.DB, out io.Writer) *Env {
	return &Env{
		DB:        db,
		Users:     user.NewService(sqlite.NewUserRepository(db), user.CacheConfig{}),
		Snapshots: snapshot.NewService(sqlite.NewSnapshotRepository(db), snapshot.LogReporter{}),
		Out:       out,
	}
}

func (e *Env) printJSON(v interface{}) error {
	enc := json.NewEncoder(e.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Registry manages the available commands
type Registry struct {
	commands map[string]Command
}

// NewRegistry creates a new command registry
func NewRegistry() *Registry {
	return &Registry{
		commands: make(map[string]Command),
	}
}

// Register adds a command to the registry
func (r *Registry) Register(cmd Command) {
	r.commands[cmd.Name()] = cmd
}

// Get retrieves a command by name
func (r *Registry) Get(name string) (Command, bool) {
	cmd, ok := r.commands[name]
	return cmd, ok
}

// List returns the registered commands sorted by name
func (r *Registry) List() []Command {
	cmds := make([]Command, 0, len(r.commands))
	for _, cmd := range r.commands {
		cmds = append(cmds, cmd)
	}
	sort.Slice(cmds, func(i, j int) bool {
		return cmds[i].Name() < cmds[j].Name()
	})
	return cmds
}

// PrintHelp prints the usage information
func (r *Registry) PrintHelp(w io.Writer) {
	fmt.Fprintln(w, "Usage: invctl <command> [args...]")
	fmt.Fprintln(w, "\nAvailable Commands:")

	cmds := r.List()
	maxLen := 0
	for _, cmd := range cmds {
		if len(cmd.Usage()) > maxLen {
			maxLen = len(cmd.Usage())
		}
	}

	for _, cmd := range cmds {
		padding := maxLen - len(cmd.Usage()) + 2
		fmt.Fprintf(w, "  %s%*s%s\n", cmd.Usage(), padding, "", cmd.Description())
	}
}

func defaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(&MigrateCommand{})
	r.Register(&FindCommand{})
	r.Register(&SearchCommand{})
	r.Register(&SnapshotCommand{name: "inventory", table: domain.TableInventories})
	r.Register(&SnapshotCommand{name: "enderchest", table: domain.TableEnderChests})
	return r
}
