package closure

import (
	"os"
	"path/filepath"
	"slices"
	"testing"
)

func set(paths ...string) map[string]struct{} {
	m := make(map[string]struct{}, len(paths))
	for _, p := range paths {
		m[p] = struct{}{}
	}
	return m
}

func TestNeeded(t *testing.T) {
	tests := []struct {
		name    string
		folder  string
		files   map[string]struct{}
		folders map[string]struct{}
		want    bool
	}{
		{
			name:    "implied by subfolder",
			folder:  "/usr",
			files:   set(),
			folders: set("/usr", "/usr/lib"),
			want:    false,
		},
		{
			name:    "most specific folder is kept",
			folder:  "/usr/lib",
			files:   set(),
			folders: set("/usr", "/usr/lib"),
			want:    true,
		},
		{
			name:    "implied by file inside",
			folder:  "/etc",
			files:   set("/etc/passwd"),
			folders: set("/etc"),
			want:    false,
		},
		{
			name:    "never redundant with itself",
			folder:  "/opt",
			files:   set(),
			folders: set("/opt"),
			want:    true,
		},
		{
			name:    "unrelated entries",
			folder:  "/var/log",
			files:   set("/usr/bin/ls"),
			folders: set("/var/log", "/etc"),
			want:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := needed(tt.folder, tt.files, tt.folders); got != tt.want {
				t.Fatalf("needed(%q) = %v, want %v", tt.folder, got, tt.want)
			}
		})
	}
}

func TestAddRoutesByKind(t *testing.T) {
	dir := t.TempDir()
	sub := filepath.Join(dir, "sub")
	if err := os.Mkdir(sub, 0755); err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(dir, "file")
	writeFile(t, file)

	s := NewPathSet(stubRules{})
	s.Add([]string{file, sub})

	if _, ok := s.files[file]; !ok {
		t.Fatalf("file %s not routed to file set", file)
	}
	if _, ok := s.folders[sub]; !ok {
		t.Fatalf("folder %s not routed to folder set", sub)
	}
	if _, ok := s.files[sub]; ok {
		t.Fatal("folder leaked into file set")
	}
}

func TestAddSkipsMissing(t *testing.T) {
	s := NewPathSet(stubRules{})
	s.Add([]string{filepath.Join(t.TempDir(), "missing")})

	if len(s.files) != 0 || len(s.folders) != 0 {
		t.Fatal("missing path should be skipped")
	}
}

func TestEntriesPrunesAndSorts(t *testing.T) {
	dir := t.TempDir()
	usr := filepath.Join(dir, "usr")
	lib := filepath.Join(usr, "lib")
	etc := filepath.Join(dir, "etc")
	for _, d := range []string{usr, lib, etc} {
		if err := os.MkdirAll(d, 0755); err != nil {
			t.Fatal(err)
		}
	}
	passwd := filepath.Join(etc, "passwd")
	writeFile(t, passwd)

	s := NewPathSet(stubRules{})
	s.AddFolder(usr)
	s.AddFolder(lib)
	s.AddFolder(etc)
	s.Add([]string{passwd})

	got := s.Entries()

	// usr is implied by usr/lib, etc is implied by etc/passwd.
	want := []string{passwd, lib}
	slices.Sort(want)
	if !slices.Equal(got, want) {
		t.Fatalf("Entries = %v, want %v", got, want)
	}
}

func TestFolderExclusionOverride(t *testing.T) {
	dir := t.TempDir()
	usr := filepath.Join(dir, "usr")
	if err := os.Mkdir(usr, 0755); err != nil {
		t.Fatal(err)
	}

	s := NewPathSet(stubRules{folders: []string{usr}})
	s.AddFolder(usr)

	if got := s.Entries(); len(got) != 0 {
		t.Fatalf("Entries = %v, want empty: excluded folder must be dropped", got)
	}
}
