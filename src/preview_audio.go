package minase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sat1226/minase/src/procexec"
)

// audioTags is the decoded subset spec.md 4.3 names: "length, sample rate,
// bitrate, title, artist, album, comment, genre, year, track".
type audioTags struct {
	Length, SampleRate, Bitrate             string
	Title, Artist, Album, Comment, Genre    string
	Year, Track                             string
}

// renderAudioPreview shells out to an external tag-reader (ffprobe, if on
// PATH) and renders its key=value output as preview lines. No audio-tag
// library exists anywhere in the retrieved pack, so this degrades to a
// stub when the helper is missing, per spec.md 7 ("absent-dependency" ->
// install hint, preview falls through to a stub rather than aborting).
func renderAudioPreview(job *PreviewJob, target FileEntry) PreviewPayload {
	cmd, err := procexec.Command("ffprobe",
		"-v", "quiet", "-show_entries",
		"format=duration,bit_rate:stream=sample_rate:format_tags=title,artist,album,comment,genre,date,track",
		"-of", "default=noprint_wrappers=1", target.Path())
	if err != nil {
		return PreviewPayload{Kind: PayloadStub, Label: "(audio: " + err.Error() + ")"}
	}
	var raw []string
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if runErr := cmd.Lines(ctx, func(line string) {
		if job.Cancelled() {
			cancel()
			return
		}
		raw = append(raw, line)
	}); runErr != nil && len(raw) == 0 {
		return PreviewPayload{Kind: PayloadStub, Label: "(audio tags unavailable)"}
	}
	tags := parseFfprobeTags(raw)
	lines := []string{
		"Title:   " + tags.Title,
		"Artist:  " + tags.Artist,
		"Album:   " + tags.Album,
		"Genre:   " + tags.Genre,
		"Year:    " + tags.Year,
		"Track:   " + tags.Track,
		"Length:  " + tags.Length,
		"Rate:    " + tags.SampleRate,
		"Bitrate: " + tags.Bitrate,
		"Comment: " + tags.Comment,
	}
	return PreviewPayload{Kind: PayloadText, Lines: lines, Label: "Audio tags"}
}

func parseFfprobeTags(raw []string) audioTags {
	var t audioTags
	for _, line := range raw {
		k, v, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		switch k {
		case "duration":
			t.Length = formatSeconds(v)
		case "bit_rate":
			t.Bitrate = v
		case "sample_rate":
			t.SampleRate = v
		case "TAG:title":
			t.Title = v
		case "TAG:artist":
			t.Artist = v
		case "TAG:album":
			t.Album = v
		case "TAG:comment":
			t.Comment = v
		case "TAG:genre":
			t.Genre = v
		case "TAG:date":
			t.Year = v
		case "TAG:track":
			t.Track = v
		}
	}
	return t
}

func formatSeconds(v string) string {
	var secs float64
	if _, err := fmt.Sscanf(v, "%f", &secs); err != nil {
		return v
	}
	mins := int(secs) / 60
	rem := int(secs) % 60
	return fmt.Sprintf("%d:%02d", mins, rem)
}
