package integration_test

import (
	"testing"

	"svnbranch/test/integration/harness"
)

func TestDeleteUserBranchEndToEnd(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	repo := harness.NewTestRepository(t)
	wc := repo.Checkout("/p/trunk")

	result := harness.RunCommand(t, env, wc, "createuserbranch", "user1")
	harness.AssertSuccess(t, result)

	t.Run("refused while checked out", func(t *testing.T) {
		result := harness.RunCommand(t, env, wc, "deleteuserbranch", "-f", "user1")
		harness.AssertFailure(t, result)
		harness.AssertStderrContains(t, result, "switch it away")

		if !repo.Exists("/p/branches/users/user1") {
			t.Fatal("Branch should not have been deleted")
		}
	})

	t.Run("force required without a terminal", func(t *testing.T) {
		result := harness.RunCommand(t, env, wc, "setbranch", "trunk")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "Switched")

		result = harness.RunCommand(t, env, wc, "deleteuserbranch", "user1")
		harness.AssertExitCode(t, result, 1)
		harness.AssertStderrContains(t, result, "pass -f")

		if !repo.Exists("/p/branches/users/user1") {
			t.Fatal("Branch should not have been deleted")
		}
	})

	t.Run("deleted with force", func(t *testing.T) {
		result := harness.RunCommand(t, env, wc, "deleteuserbranch", "-f", "user1")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "Deleted user branch /p/branches/users/user1")

		if repo.Exists("/p/branches/users/user1") {
			t.Fatal("Expected the branch to be gone")
		}
	})

	t.Run("unknown branch", func(t *testing.T) {
		result := harness.RunCommand(t, env, wc, "deleteuserbranch", "-f", "nobody")
		harness.AssertFailure(t, result)
		harness.AssertStderrContains(t, result, "nobody")
	})

	t.Run("setbranch back to a deleted branch fails", func(t *testing.T) {
		result := harness.RunCommand(t, env, wc, "setbranch", "user", "user1")
		harness.AssertFailure(t, result)
	})
}
