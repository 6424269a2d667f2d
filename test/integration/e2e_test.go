//go:build integration

package integration_test

import (
	"errors"
	"os"
	"path/filepath"
	"syscall"
	"testing"

	"github.com/evo-tools/fieldstrip/internal/rewrite"
	"github.com/spf13/afero"
)

// TestFullFlowRewriteFixtures rewrites a directory of game fixtures on disk
// and checks every file.
func TestFullFlowRewriteFixtures(t *testing.T) {
	dir := setupFixtureDir(t, evolutionFixtures)

	sum, err := rewrite.New(afero.NewOsFs(), nil).Dir(dir)
	if err != nil {
		t.Fatalf("Dir: %v", err)
	}
	if sum.Files != len(evolutionFixtures) {
		t.Errorf("files = %d, want %d", sum.Files, len(evolutionFixtures))
	}
	if sum.Fragments != 4 {
		t.Errorf("fragments = %d, want 4", sum.Fragments)
	}

	for _, f := range evolutionFixtures {
		assertFileContent(t, filepath.Join(dir, f.Name), f.Want)
	}

	// A second pass changes nothing.
	again, err := rewrite.New(afero.NewOsFs(), nil).Dir(dir)
	if err != nil {
		t.Fatalf("second Dir: %v", err)
	}
	if again.Fragments != 0 {
		t.Errorf("second pass stripped %d fragments", again.Fragments)
	}
}

// TestFullFlowHaltsOnSubdirectory checks that a nested directory stops the
// run and that nothing below it is touched.
func TestFullFlowHaltsOnSubdirectory(t *testing.T) {
	dir := setupFixtureDir(t, evolutionFixtures[:2])
	nested := filepath.Join(dir, "zz-nested", "5-in.json")
	writeFile(t, nested, evolutionFixtures[1].In)

	_, err := rewrite.New(afero.NewOsFs(), nil).Dir(dir)
	if !errors.Is(err, syscall.EISDIR) {
		t.Fatalf("error = %v, want EISDIR", err)
	}

	for _, f := range evolutionFixtures[:2] {
		assertFileContent(t, filepath.Join(dir, f.Name), f.Want)
	}
	assertFileContent(t, nested, evolutionFixtures[1].In)

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 3 {
		t.Errorf("directory has %d entries after run, want 3", len(entries))
	}
}
