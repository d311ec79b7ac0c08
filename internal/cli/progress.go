package cli

import (
	"fmt"
	"io"
	"sync"

	"github.com/briandowns/spinner"
)

// ProgressUpdate reports that one expression of a batch has finished.
type ProgressUpdate struct {
	// Completed is the number of expressions evaluated so far.
	Completed int
	// Total is the number of expressions in the batch.
	Total int
}

// DisplayProgress renders a spinner with a progress bar while a batch
// evaluation runs. It consumes updates from progressChan until the channel
// is closed, then stops the spinner and signals the wait group.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, out io.Writer) {
	defer wg.Done()

	sp := newSpinner(spinner.WithWriter(out))
	sp.Start()
	defer sp.Stop()

	for update := range progressChan {
		if update.Total == 0 {
			continue
		}
		fraction := float64(update.Completed) / float64(update.Total)
		sp.UpdateSuffix(fmt.Sprintf(" evaluating [%s] %d/%d (%.0f%%)",
			progressBar(fraction, ProgressBarWidth), update.Completed, update.Total, fraction*100))
	}
}
