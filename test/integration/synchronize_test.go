package integration_test

import (
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"svnbranch/test/integration/harness"
)

func TestSynchronizeEndToEnd(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	repo := harness.NewTestRepository(t)
	wc := repo.Checkout("/p/trunk")

	result := harness.RunCommand(t, env, wc, "createuserbranch", "user1")
	harness.AssertSuccess(t, result)

	t.Run("nothing to merge", func(t *testing.T) {
		result := harness.RunCommand(t, env, wc, "synchronize")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "is up to date with /p/trunk")
	})

	t.Run("merges trunk changes", func(t *testing.T) {
		trunk := repo.Checkout("/p/trunk")
		harness.WriteFile(t, filepath.Join(trunk, "src", "main.c"), "int main(void) { return 2; }\n")
		harness.RunSvn(t, trunk, "commit", "-m", "trunk change")
		head := repo.HeadRevision()

		result := harness.RunCommand(t, env, wc, "synchronize")
		harness.AssertSuccess(t, result)
		harness.AssertStdoutContains(t, result, "Merged /p/trunk")
		harness.AssertStdoutContains(t, result, "main.c")

		if got := harness.ReadFile(t, filepath.Join(wc, "src", "main.c")); got != "int main(void) { return 2; }\n" {
			t.Errorf("Unexpected merged main.c: %q", got)
		}

		info := harness.RunCommand(t, env, wc, "listworkingcopyinfo")
		harness.AssertInfoField(t, info, "Last Merge Revision", strconv.Itoa(head))

		// Running again before committing finds nothing new
		again := harness.RunCommand(t, env, wc, "synchronize")
		harness.AssertSuccess(t, again)
		harness.AssertStdoutContains(t, again, "is up to date")

		harness.RunSvn(t, wc, "commit", "-m", "user1 - synchronize")
		if status := harness.Status(t, wc); status != "" {
			t.Errorf("Expected a clean working copy, got:\n%s", status)
		}
	})

	t.Run("conflicts are reported", func(t *testing.T) {
		trunk := repo.Checkout("/p/trunk")
		harness.WriteFile(t, filepath.Join(trunk, "README.txt"), "trunk side\n")
		harness.RunSvn(t, trunk, "commit", "-m", "trunk readme")

		harness.WriteFile(t, filepath.Join(wc, "README.txt"), "branch side\n")
		harness.RunSvn(t, wc, "commit", "-m", "user1 readme")
		harness.RunSvn(t, wc, "update")

		result := harness.RunCommand(t, env, wc, "synchronize")
		harness.AssertFailure(t, result)
		harness.AssertStdoutContains(t, result, "C  ")
		harness.AssertStdoutContains(t, result, "README.txt")

		if status := harness.Status(t, wc); !strings.Contains(status, "C") {
			t.Errorf("Expected a conflict in status, got:\n%s", status)
		}
	})
}

func TestRevertToSourceEndToEnd(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	repo := harness.NewTestRepository(t)
	wc := repo.Checkout("/p/trunk")

	result := harness.RunCommand(t, env, wc, "createuserbranch", "user1")
	harness.AssertSuccess(t, result)

	readme := filepath.Join(wc, "README.txt")
	harness.WriteFile(t, readme, "branch edit\n")
	harness.RunSvn(t, wc, "commit", "-m", "user1 edit")

	result = harness.RunCommand(t, env, wc, "reverttosource", "README.txt")
	harness.AssertSuccess(t, result)
	harness.AssertStdoutContains(t, result, "Reverting to /p/trunk@")

	if got := harness.ReadFile(t, readme); got != "# Test project\n" {
		t.Errorf("Expected README.txt to match trunk, got %q", got)
	}
}

func TestPromoteAfterSynchronize(t *testing.T) {
	env := harness.NewTestEnvironment(t)
	repo := harness.NewTestRepository(t)
	wc := repo.Checkout("/p/trunk")

	result := harness.RunCommand(t, env, wc, "createuserbranch", "user1")
	harness.AssertSuccess(t, result)

	trunk := repo.Checkout("/p/trunk")
	trunkEdit := "int main(void) { return 3; }\n"
	harness.WriteFile(t, filepath.Join(trunk, "src", "main.c"), trunkEdit)
	harness.RunSvn(t, trunk, "commit", "-m", "trunk change")

	result = harness.RunCommand(t, env, wc, "synchronize")
	harness.AssertSuccess(t, result)

	t.Run("refused until the merge is committed", func(t *testing.T) {
		before := repo.HeadRevision()

		result := harness.RunCommand(t, env, wc, "promote", "-m", "trunk - early")
		harness.AssertFailure(t, result)
		harness.AssertStderrContains(t, result, "uncommitted metadata changes")

		if head := repo.HeadRevision(); head != before {
			t.Errorf("Refused promote must not commit, HEAD moved to r%d", head)
		}
		if got := repo.Cat("/p/trunk/src/main.c"); got != trunkEdit {
			t.Errorf("Trunk main.c changed: %q", got)
		}
	})

	t.Run("trunk keeps its edit after promote", func(t *testing.T) {
		harness.RunSvn(t, wc, "commit", "-m", "user1 - synchronize")
		harness.WriteFile(t, filepath.Join(wc, "README.txt"), "# Test project\nfrom user1\n")

		result := harness.RunCommand(t, env, wc, "promote", "-m", "trunk - x")
		harness.AssertSuccess(t, result)

		if got := repo.Cat("/p/trunk/src/main.c"); got != trunkEdit {
			t.Errorf("Promote reverted the trunk edit, main.c is %q", got)
		}
		if got := repo.Cat("/p/trunk/README.txt"); got != "# Test project\nfrom user1\n" {
			t.Errorf("Unexpected trunk README.txt: %q", got)
		}
	})
}
