package minase

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

// TestReloadRacesPreviewWithoutDeadlock pins Open Question 9(a)'s preserved
// behavior: Reload() never cancels or waits on an in-flight preview job, so
// the two may run concurrently without a panic or deadlock, and the
// preview engine reports a current job after every SetLoadFile.
func TestReloadRacesPreviewWithoutDeadlock(t *testing.T) {
	dir := t.TempDir()
	for i := 0; i < 20; i++ {
		os.WriteFile(filepath.Join(dir, string(rune('a'+i))+".txt"), []byte("x"), 0o644)
	}

	pane := NewPaneState()
	if err := pane.SetPath(dir); err != nil {
		t.Fatal(err)
	}

	engine := NewPreviewEngine(PreviewConfig{MaxLines: 10})
	defer engine.Close()

	var wg sync.WaitGroup
	stop := make(chan struct{})

	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				pane.Reload()
			}
		}
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 30; i++ {
			if pane.Model().Count() == 0 {
				continue
			}
			entry := pane.Model().At(i % pane.Model().Count())
			engine.SetLoadFile(entry)
			if engine.CurrentJob() == nil {
				t.Error("expected a current job after SetLoadFile")
			}
		}
	}()

	time.Sleep(50 * time.Millisecond)
	close(stop)
	wg.Wait()
}
