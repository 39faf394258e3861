package minase

import (
	"sync"
	"time"

	"github.com/sat1226/minase/src/util"
)

// PayloadKind distinguishes how a PreviewPayload should be drawn.
type PayloadKind int

const (
	PayloadLoading PayloadKind = iota
	PayloadText
	PayloadSixel
	PayloadDirectory
	PayloadStub // binary/fifo/socket placeholder
)

// PreviewPayload is the immutable result of one preview job: either a
// vector of already-highlighted text lines, or a raw sixel byte string,
// never both (spec.md 3: "an output buffer... plus a boolean telling them
// apart").
type PreviewPayload struct {
	Kind  PayloadKind
	Lines []string
	Sixel []byte
	Label string // header line, stub text, etc.
}

// Events published on a PreviewEngine's EventBox.
const (
	EvtPreviewReady util.EventType = iota
	EvtPreviewLoading
)

// PreviewJob is one in-flight (or finished) background render of a single
// FileEntry. At most one job is ever active on a PreviewEngine; starting a
// new one fully cancels the prior job first (spec.md 3).
type PreviewJob struct {
	Target FileEntry

	cancel *util.AtomicBool
	done   *util.AtomicBool

	mu      sync.Mutex
	pid     int
	payload PreviewPayload
	ready   bool // true once the final payload has been set; guards the loading timer
	scroll  int
	started time.Time
}

func newPreviewJob(target FileEntry) *PreviewJob {
	return &PreviewJob{
		Target:  target,
		cancel:  util.NewAtomicBool(false),
		done:    util.NewAtomicBool(false),
		started: time.Now(),
	}
}

// Cancelled reports whether this job has been asked to stop. Every I/O
// boundary in the render pipeline polls this (spec.md 4.3: "the flag is
// polled at every I/O boundary").
func (j *PreviewJob) Cancelled() bool { return j.cancel.Get() }

// Done reports whether the worker goroutine has finished (successfully or
// via cancellation).
func (j *PreviewJob) Done() bool { return j.done.Get() }

func (j *PreviewJob) setPid(pid int) {
	j.mu.Lock()
	j.pid = pid
	j.mu.Unlock()
}

func (j *PreviewJob) getPid() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.pid
}

func (j *PreviewJob) setPayload(p PreviewPayload) {
	j.mu.Lock()
	j.payload = p
	j.ready = true
	j.mu.Unlock()
}

// setLoadingPayload installs the interim "Loading…" payload, unless the
// final payload has already been set -- without this guard, the 200ms
// timer firing at the same instant the real result lands can overwrite it
// and leave the UI stuck showing "Loading…" for a job that already
// finished (spec.md 4.3's payload replacement is meant to be atomic).
func (j *PreviewJob) setLoadingPayload(p PreviewPayload) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.ready {
		return
	}
	j.payload = p
}

// Payload returns the job's current payload under lock -- readable from the
// UI thread while the worker thread may still be writing loading-indicator
// updates.
func (j *PreviewJob) Payload() PreviewPayload {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.payload
}

func (j *PreviewJob) Scroll() int {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.scroll
}

func (j *PreviewJob) scrollBy(delta int) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if j.payload.Kind != PayloadText {
		return
	}
	j.scroll += delta
	if j.scroll < 0 {
		j.scroll = 0
	}
	if max := len(j.payload.Lines) - 1; j.scroll > max && max >= 0 {
		j.scroll = max
	}
}

// PreviewConfig bundles the subset of the options file PreviewEngine consults
// (spec.md 6): preview line cap, image-preview policy, CJK width mode, and
// where nano-style syntax rules live.
type PreviewConfig struct {
	MaxLines         int // -1 = unlimited
	ImagePreview     bool
	WideCJK          bool
	NanorcPath       string
	SixelCommand     string
	PreviewBoxPixelW int
	PreviewBoxPixelH int
}

// PreviewEngine is the background renderer owned by the Controller. It
// guarantees at most one visible job at a time: SetLoadFile cancels the
// current job synchronously before spawning the replacement.
type PreviewEngine struct {
	box    *util.EventBox
	config PreviewConfig

	mu  sync.Mutex
	job *PreviewJob
}

// NewPreviewEngine returns an idle engine; call SetLoadFile to begin
// rendering.
func NewPreviewEngine(config PreviewConfig) *PreviewEngine {
	return &PreviewEngine{box: util.NewEventBox(), config: config}
}

// Events exposes the engine's notification box so the Controller can Wait
// on EvtPreviewReady between input polls.
func (e *PreviewEngine) Events() *util.EventBox { return e.box }

// CurrentJob returns the (possibly nil) active or most recently finished
// job, for rendering.
func (e *PreviewEngine) CurrentJob() *PreviewJob {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.job
}

// Scroll moves the current job's text preview by delta lines; a no-op for
// sixel payloads (spec.md 4.3: "sixel previews do not" scroll).
func (e *PreviewEngine) Scroll(delta int) {
	if j := e.CurrentJob(); j != nil {
		j.scrollBy(delta)
	}
}

// SetLoadFile is cancel() + start: it synchronously cancels any job in
// flight, then launches a new goroutine to render target (spec.md 4.3:
// "set_load_file(entry) is cancel() + start").
func (e *PreviewEngine) SetLoadFile(target FileEntry) {
	e.cancelCurrent()

	job := newPreviewJob(target)
	e.mu.Lock()
	e.job = job
	e.mu.Unlock()

	go e.run(job)
}

// cancelCurrent blocks until the worker acknowledges: it sets the flag and
// spins until the worker reports done, sending SIGKILL on each turn to the
// pid recorded on the job. No render path records a pid (setPid has no
// caller), so this kill does not fire: the image path kills its converter
// itself once it sees the flag, and the archive lister and audio probe run
// until they exit.
func (e *PreviewEngine) cancelCurrent() {
	e.mu.Lock()
	job := e.job
	e.mu.Unlock()
	if job == nil {
		return
	}
	job.cancel.Set(true)
	for !job.Done() {
		if pid := job.getPid(); pid != 0 {
			killPid(pid)
		}
		time.Sleep(2 * time.Millisecond)
	}
}

// Close cancels any in-flight job; called on quit.
func (e *PreviewEngine) Close() { e.cancelCurrent() }

func (e *PreviewEngine) run(job *PreviewJob) {
	defer job.done.Set(true)

	loadingTimer := time.AfterFunc(200*time.Millisecond, func() {
		if job.Cancelled() {
			return
		}
		job.setLoadingPayload(PreviewPayload{Kind: PayloadLoading, Label: "Loading…"})
		e.box.Set(EvtPreviewLoading, job)
	})
	payload := renderPreview(job, e.config)
	loadingTimer.Stop()
	if job.Cancelled() {
		return
	}
	job.setPayload(payload)
	e.box.Set(EvtPreviewReady, job)
}
