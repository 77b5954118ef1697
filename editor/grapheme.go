package editor

import (
	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"

	graphemeutil "github.com/iw2rmb/ved/internal/grapheme"
)

const tabWidth = 4

// clusterCell is one grapheme cluster with its rune offset and terminal cell
// width.
type clusterCell struct {
	Text  string
	Off   int
	Runes int
	Width int
}

func splitClusters(text string) []clusterCell {
	if text == "" {
		return nil
	}
	clusters := graphemeutil.Split(text)
	out := make([]clusterCell, 0, len(clusters))
	off := 0
	for _, c := range clusters {
		n := len([]rune(c))
		out = append(out, clusterCell{Text: c, Off: off, Runes: n, Width: graphemeCellWidth(c)})
		off += n
	}
	return out
}

func graphemeCellWidth(text string) int {
	if text == "\t" {
		return tabWidth
	}

	w := runewidth.StringWidth(text)
	if w < 0 {
		w = 0
	}
	if w == 0 {
		fallback := uniseg.StringWidth(text)
		if fallback > w {
			w = fallback
		}
	}
	return w
}

// displayCluster returns what a terminal prints for a cluster.
func displayCluster(text string) string {
	if text == "\t" {
		return "    "
	}
	return text
}
