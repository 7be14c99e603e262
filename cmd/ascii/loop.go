package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/term"

	"github.com/jaxydog/ascii"
	"github.com/jaxydog/ascii/imageutil"
)

// runLoop puts the terminal in raw mode, draws the image at the
// current size, then redraws on every resize until q, Esc, or Ctrl-C
// is read. Frames are strictly sequential; the terminal and its colors
// are restored before returning.
func runLoop(img *imageutil.Image, profile ascii.Profile, useColor bool) error {
	fd := int(os.Stdin.Fd())
	state, err := term.MakeRaw(fd)
	if err != nil {
		return fmt.Errorf("enabling raw mode: %w", err)
	}
	defer func() {
		term.Restore(fd, state)
		ascii.ResetColor(os.Stdout)
		fmt.Println()
	}()

	if err := draw(img, profile, useColor); err != nil {
		return err
	}

	resized := make(chan os.Signal, 1)
	signal.Notify(resized, syscall.SIGWINCH)
	defer signal.Stop(resized)

	keys := make(chan byte)
	go func() {
		buf := make([]byte, 1)
		for {
			if _, err := os.Stdin.Read(buf); err != nil {
				close(keys)
				return
			}
			keys <- buf[0]
		}
	}()

	for {
		select {
		case key, ok := <-keys:
			// Esc and Ctrl-C arrive as raw bytes in raw mode.
			if !ok || key == 'q' || key == 0x1b || key == 0x03 {
				return nil
			}
		case <-resized:
			if err := draw(img, profile, useColor); err != nil {
				return err
			}
		}
	}
}

// draw renders one frame sized to the terminal.
func draw(img *imageutil.Image, profile ascii.Profile, useColor bool) error {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return fmt.Errorf("reading terminal size: %w", err)
	}
	return ascii.Render(os.Stdout, img, profile, cols, rows, useColor)
}
