//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"testing"
)

// fixture pairs an input file with the content expected after a rewrite.
type fixture struct {
	Name string
	In   string
	Want string
}

// evolutionFixtures mirrors the shapes found in the game's JSON test files:
// nested [key, value] pairs that never match, and flattened key/value runs
// that do.
var evolutionFixtures = []fixture{
	{
		Name: "1-in.json",
		In:   `[["food",1],["body",2],["population",3],["traits",["carnivore"]]]` + "\n",
		Want: `[["food",1],["body",2],["population",3],["traits",["carnivore"]]]` + "\n",
	},
	{
		Name: "2-in.json",
		In:   `["species","body",2,"population",3,"traits",["fat-tissue"]]` + "\n",
		Want: `["species","",["fat-tissue"]]` + "\n",
	},
	{
		Name: "3-in.json",
		In: "[\n" +
			"  [\"body\",4,\"fat\"],\n" +
			"  [\"population\",5,\"warning-call\"]\n" +
			"]\n",
		Want: "[\n" +
			"  [4,\"fat\"],\n" +
			"  [5,\"warning-call\"]\n" +
			"]\n",
	},
	{
		Name: "4-out.json",
		In:   `x=1, "body", "long description text", y=2`,
		Want: `x=1, ", y=2`,
	},
}

// setupFixtureDir writes fixtures into a fresh directory and returns its path.
func setupFixtureDir(t *testing.T, fixtures []fixture) string {
	t.Helper()
	dir := t.TempDir()
	for _, f := range fixtures {
		writeFile(t, filepath.Join(dir, f.Name), f.In)
	}
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatalf("creating dir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}

func assertFileContent(t *testing.T, path, want string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("reading %s: %v", path, err)
	}
	if string(data) != want {
		t.Errorf("%s:\n got: %q\nwant: %q", path, data, want)
	}
}
