// Package domain defines the records exchanged with the recipe service and
// the interfaces the CLI commands consume.
//
// All entities are owned by the remote service; forkful holds them only
// transiently while rendering a command's output.
package domain
