package closure

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// Exclusion stub with explicit prefix lists, so tests under t.TempDir are
// not caught by the built-in /tmp exclusion.
type stubRules struct {
	files   []string
	folders []string
}

func (s stubRules) File(path string) bool   { return hasPrefix(path, s.files) }
func (s stubRules) Folder(path string) bool { return hasPrefix(path, s.folders) }

func hasPrefix(path string, prefixes []string) bool {
	for _, p := range prefixes {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func writeFile(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
}

func symlink(t *testing.T, target, link string) {
	t.Helper()
	if err := os.Symlink(target, link); err != nil {
		t.Fatal(err)
	}
}

func TestResolveRegularFile(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	writeFile(t, file)

	r := NewResolver(stubRules{}, 0)

	got, err := r.Resolve(file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != file {
		t.Fatalf("Resolve = %v, want [%s]", got, file)
	}
}

func TestResolveNormalizes(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	writeFile(t, file)

	r := NewResolver(stubRules{}, 0)

	got, err := r.Resolve(dir + "/./sub/../file")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != file {
		t.Fatalf("Resolve = %v, want [%s]", got, file)
	}
}

func TestResolveLinkChain(t *testing.T) {
	dir := t.TempDir()
	c := filepath.Join(dir, "c")
	b := filepath.Join(dir, "b")
	a := filepath.Join(dir, "a")
	writeFile(t, c)
	symlink(t, c, b)
	symlink(t, b, a)

	r := NewResolver(stubRules{}, 0)

	got, err := r.Resolve(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{a, b, c}
	if len(got) != len(want) {
		t.Fatalf("Resolve = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Resolve[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestResolveRelativeTarget(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "target")
	link := filepath.Join(dir, "link")
	writeFile(t, target)
	symlink(t, "target", link)

	r := NewResolver(stubRules{}, 0)

	got, err := r.Resolve(link)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != link || got[1] != target {
		t.Fatalf("Resolve = %v, want [%s %s]", got, link, target)
	}
}

func TestResolveExcludedSource(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	writeFile(t, file)

	r := NewResolver(stubRules{files: []string{dir}}, 0)

	got, err := r.Resolve(file)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("Resolve = %v, want empty set", got)
	}
}

func TestResolveExclusionAbsorbsTarget(t *testing.T) {
	dir := t.TempDir()
	forbidden := filepath.Join(dir, "forbidden")
	if err := os.Mkdir(forbidden, 0755); err != nil {
		t.Fatal(err)
	}
	target := filepath.Join(forbidden, "file")
	link := filepath.Join(dir, "link")
	writeFile(t, target)
	symlink(t, target, link)

	r := NewResolver(stubRules{files: []string{forbidden + "/"}}, 0)

	got, err := r.Resolve(link)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The link itself survives; the target reached through it is dropped.
	if len(got) != 1 || got[0] != link {
		t.Fatalf("Resolve = %v, want [%s]", got, link)
	}
}

func TestResolveDanglingTarget(t *testing.T) {
	dir := t.TempDir()
	link := filepath.Join(dir, "link")
	symlink(t, filepath.Join(dir, "gone"), link)

	r := NewResolver(stubRules{}, 0)

	got, err := r.Resolve(link)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != link {
		t.Fatalf("Resolve = %v, want [%s]", got, link)
	}
}

func TestResolveSelfLoop(t *testing.T) {
	dir := t.TempDir()
	loop := filepath.Join(dir, "loop")
	symlink(t, loop, loop)

	r := NewResolver(stubRules{}, 8)

	_, err := r.Resolve(loop)
	if !errors.Is(err, ErrLinkDepth) {
		t.Fatalf("err = %v, want ErrLinkDepth", err)
	}
}

func TestNormalizationIdempotence(t *testing.T) {
	paths := []string{
		"/usr/bin/ls",
		"/usr//bin/./ls",
		"/a/b/../c",
		"relative/./path",
		".",
		"/",
	}

	for _, p := range paths {
		once := filepath.Clean(p)
		if twice := filepath.Clean(once); twice != once {
			t.Fatalf("Clean(Clean(%q)) = %q, want %q", p, twice, once)
		}
	}
}
