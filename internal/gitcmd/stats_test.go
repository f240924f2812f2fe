package gitcmd

import "testing"

func TestParseStat(t *testing.T) {
	tests := []struct {
		name             string
		input            string
		wantFilesChanged int
		wantInsertions   int
		wantDeletions    int
		wantBinary       bool
		wantFileCount    int
	}{
		{
			name:  "empty input yields zero totals",
			input: "",
		},
		{
			name: "full summary",
			input: " a.go | 10 ++++++----\n" +
				" b.go |  5 +++++\n" +
				" 2 files changed, 12 insertions(+), 3 deletions(-)\n",
			wantFilesChanged: 2,
			wantInsertions:   12,
			wantDeletions:    3,
			wantFileCount:    2,
		},
		{
			name:             "summary with only files clause",
			input:            " 1 file changed\n",
			wantFilesChanged: 1,
		},
		{
			name:             "summary without deletions",
			input:            " 1 file changed, 4 insertions(+)\n",
			wantFilesChanged: 1,
			wantInsertions:   4,
		},
		{
			name:             "summary without insertions",
			input:            " 2 files changed, 7 deletions(-)\n",
			wantFilesChanged: 2,
			wantDeletions:    7,
		},
		{
			name: "missing aggregate line sums per-file counts",
			input: " a.go | 4 +++-\n" +
				" b.go | 2 ++\n",
			wantFilesChanged: 2,
			wantInsertions:   5,
			wantDeletions:    1,
			wantFileCount:    2,
		},
		{
			name: "binary file line",
			input: " logo.png | Bin 0 -> 4096 bytes\n" +
				" 1 file changed, 0 insertions(+), 0 deletions(-)\n",
			wantFilesChanged: 1,
			wantBinary:       true,
			wantFileCount:    1,
		},
		{
			name:       "binary prose sentence",
			input:      "Binary files a/logo.png and b/logo.png differ\n",
			wantBinary: true,
		},
		{
			name: "unrecognized lines are ignored",
			input: "some noise without structure\n" +
				" a.go | 1 +\n" +
				"more noise\n",
			wantFilesChanged: 1,
			wantInsertions:   1,
			wantFileCount:    1,
		},
		{
			name:  "garbage only",
			input: "not | a | number\n??\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseStat(tt.input)
			if got.FilesChanged != tt.wantFilesChanged {
				t.Errorf("FilesChanged = %d, want %d", got.FilesChanged, tt.wantFilesChanged)
			}
			if got.Insertions != tt.wantInsertions {
				t.Errorf("Insertions = %d, want %d", got.Insertions, tt.wantInsertions)
			}
			if got.Deletions != tt.wantDeletions {
				t.Errorf("Deletions = %d, want %d", got.Deletions, tt.wantDeletions)
			}
			if got.Binary != tt.wantBinary {
				t.Errorf("Binary = %v, want %v", got.Binary, tt.wantBinary)
			}
			if len(got.Files) != tt.wantFileCount {
				t.Errorf("len(Files) = %d, want %d", len(got.Files), tt.wantFileCount)
			}
		})
	}
}

func TestParseStatFileRecords(t *testing.T) {
	stats := ParseStat(" cmd/main.go | 6 ++++--\n 1 file changed, 4 insertions(+), 2 deletions(-)\n")
	if len(stats.Files) != 1 {
		t.Fatalf("len(Files) = %d, want 1", len(stats.Files))
	}
	file := stats.Files[0]
	if file.Path != "cmd/main.go" {
		t.Errorf("Path = %q, want %q", file.Path, "cmd/main.go")
	}
	if file.Additions != 4 || file.Deletions != 2 {
		t.Errorf("Additions/Deletions = %d/%d, want 4/2", file.Additions, file.Deletions)
	}
	if file.Binary {
		t.Error("Binary = true, want false")
	}
}

func TestContainsBinaryMarker(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{
			name:  "binary sentence present",
			input: "diff --git a/x.bin b/x.bin\nBinary files a/x.bin and b/x.bin differ\n",
			want:  true,
		},
		{
			name:  "plain text diff",
			input: "diff --git a/x.go b/x.go\n+added line\n",
			want:  false,
		},
		{
			name:  "empty",
			input: "",
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ContainsBinaryMarker(tt.input); got != tt.want {
				t.Errorf("ContainsBinaryMarker() = %v, want %v", got, tt.want)
			}
		})
	}
}
