package formatter

import (
	"fmt"
	"time"
)

// Braille dot spinner frames.
var spinnerFrames = []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}

// Spin shows an animated spinner with a message until the returned stop
// function is called. Stop clears the line and waits for the goroutine.
func Spin(message string) (stop func()) {
	quit := make(chan struct{})
	done := make(chan struct{})

	go func() {
		defer close(done)
		ticker := time.NewTicker(80 * time.Millisecond)
		defer ticker.Stop()

		i := 0
		for {
			select {
			case <-quit:
				fmt.Print("\r\033[K")
				return
			case <-ticker.C:
				frame := spinnerFrames[i%len(spinnerFrames)]
				fmt.Printf("\r  %s %s", StyleBlue.Render(frame), Dim(message))
				i++
			}
		}
	}()

	return func() {
		close(quit)
		<-done
	}
}
