package minase

import (
	"bufio"
	"bytes"
	"context"

	"github.com/sat1226/minase/src/procexec"
)

// archiveListers maps an archiveMagics label to the external command (and
// its argument) that lists member names without extracting, per spec.md
// 4.3 "Archive path: spawn an external lister and show its output as
// text". `bsdtar -tf` understands tar/zip/7z/rar/cab/lzh transparently so
// it covers most labels with one helper; gzip/bzip2/xz (single-stream, no
// container) fall back to reporting the stream type only.
var archiveListers = map[string][]string{
	"zip": {"bsdtar", "-tf"},
	"tar": {"bsdtar", "-tf"},
	"7z":  {"bsdtar", "-tf"},
	"rar": {"bsdtar", "-tf"},
	"cab": {"bsdtar", "-tf"},
	"lzh": {"bsdtar", "-tf"},
}

// renderArchivePreview lists an archive's members via the configured
// external tool, one name per line, truncated to cfg.MaxLines when set.
func renderArchivePreview(job *PreviewJob, target FileEntry, cfg PreviewConfig) PreviewPayload {
	head, _, err := readHeadTail(target.Path(), 512)
	if err != nil {
		return PreviewPayload{Kind: PayloadStub, Label: "(unreadable)"}
	}
	label := archiveLabel(head)

	argv, ok := archiveListers[label]
	if !ok {
		return PreviewPayload{Kind: PayloadStub, Label: "(" + label + " archive)"}
	}

	cmd, err := procexec.Command(argv[0], append(argv[1:], target.Path())...)
	if err != nil {
		return PreviewPayload{Kind: PayloadStub, Label: "(" + label + " archive: " + err.Error() + ")"}
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	out, err := cmd.Output(ctx)
	if job.Cancelled() {
		return PreviewPayload{}
	}
	if err != nil && len(out) == 0 {
		return PreviewPayload{Kind: PayloadStub, Label: "(" + label + " archive: listing failed)"}
	}

	var lines []string
	scanner := bufio.NewScanner(bytes.NewReader(out))
	for scanner.Scan() {
		if cfg.MaxLines >= 0 && len(lines) >= cfg.MaxLines {
			break
		}
		lines = append(lines, scanner.Text())
	}
	return PreviewPayload{Kind: PayloadText, Lines: lines, Label: label + " archive"}
}
