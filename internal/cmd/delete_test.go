package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"svnbranch/internal/domain"
)

func TestNonInteractiveCommandsNeedExplicitInput(t *testing.T) {
	container := &Container{Interactive: false}

	t.Run("delete without force", func(t *testing.T) {
		err := (&DeleteUserBranchCmd{Name: "alice", Target: "."}).Run(container)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.ArgumentError))
		assert.Contains(t, err.Error(), "-f")
	})

	t.Run("promote without message", func(t *testing.T) {
		err := (&PromoteCmd{Path: "."}).Run(container)

		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.ArgumentError))
		assert.Contains(t, err.Error(), "-m")
	})
}
