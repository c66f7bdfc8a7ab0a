// Package commands implements the forkful CLI.
//
// The root command wires the session store and API client once in
// PersistentPreRunE; subcommands map one-to-one onto the recipe service's
// operations: account session, recipes, ingredients, profile, and contact.
package commands
