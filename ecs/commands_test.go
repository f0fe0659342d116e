package ecs_test

import (
	"testing"

	"github.com/plus3/blockfall/ecs"
	"github.com/stretchr/testify/assert"
)

func TestCommandsFlush(t *testing.T) {
	storage := ecs.NewStorage(newTestRegistry())
	doomed := storage.Spawn(Label{Text: "doomed"})

	var cmds ecs.Commands
	var log []string

	cmds.Defer(func() { log = append(log, "defer saw "+alive(storage, doomed)) })
	cmds.Spawn(Label{Text: "new"})
	cmds.Delete(doomed)
	cmds.Delete(doomed)

	assert.Equal(t, 4, cmds.Pending())
	assert.True(t, storage.Alive(doomed), "nothing applied before Flush")

	cmds.Flush(storage)

	assert.Equal(t, []string{"defer saw dead"}, log)
	assert.Equal(t, 1, storage.Len())
	assert.Zero(t, cmds.Pending())

	cmds.Flush(storage)
	assert.Equal(t, 1, storage.Len(), "buffer is empty after Flush")
}

func alive(storage *ecs.Storage, id ecs.EntityId) string {
	if storage.Alive(id) {
		return "alive"
	}
	return "dead"
}
