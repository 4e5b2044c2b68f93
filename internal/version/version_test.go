package version

import "testing"

func TestServerInfoVersionMatchesProtocolFixedValue(t *testing.T) {
	if ServerInfoVersion != "1.0.0" {
		t.Errorf("ServerInfoVersion = %q, want %q", ServerInfoVersion, "1.0.0")
	}
}

func TestNameMatchesProtocolFixedValue(t *testing.T) {
	if Name != "Alif Language Server" {
		t.Errorf("Name = %q, want %q", Name, "Alif Language Server")
	}
}

func TestBuildMetadataOverridable(t *testing.T) {
	origCommit, origDate := GitCommit, BuildDate
	defer func() { GitCommit, BuildDate = origCommit, origDate }()

	GitCommit = "abc123"
	BuildDate = "2026-01-01T00:00:00Z"

	if GitCommit != "abc123" || BuildDate != "2026-01-01T00:00:00Z" {
		t.Error("GitCommit/BuildDate should be settable, as ldflags do at build time")
	}
}
