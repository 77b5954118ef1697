package editor

import "testing"

func TestSplitClusters_OffsetsAndWidths(t *testing.T) {
	clusters := splitClusters("e\u0301漢\t")
	if len(clusters) != 3 {
		t.Fatalf("clusters: got=%d, want %d", len(clusters), 3)
	}

	want := []clusterCell{
		{Text: "e\u0301", Off: 0, Runes: 2, Width: 1},
		{Text: "漢", Off: 2, Runes: 1, Width: 2},
		{Text: "\t", Off: 3, Runes: 1, Width: tabWidth},
	}
	for i, w := range want {
		if clusters[i] != w {
			t.Fatalf("cluster %d: got=%+v, want %+v", i, clusters[i], w)
		}
	}

	if got := splitClusters(""); got != nil {
		t.Fatalf("empty text: got=%v, want nil", got)
	}
}

func TestDisplayCluster_ExpandsTab(t *testing.T) {
	if got, want := displayCluster("\t"), "    "; got != want {
		t.Fatalf("tab: got=%q, want %q", got, want)
	}
	if got, want := displayCluster("a"), "a"; got != want {
		t.Fatalf("a: got=%q, want %q", got, want)
	}
}
