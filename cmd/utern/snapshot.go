package main

import (
	"context"
	"encoding/base64"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/chromedp"
	"github.com/pkg/errors"
)

const snapshotTimeout = 30 * time.Second

// snapshotPNG rasterizes SVG document with headless Chrome and writes PNG file
func snapshotPNG(svg string, fname string, verbose bool) error {
	if verbose {
		fmt.Print("Preparing PNG snapshot...")
	}
	st := time.Now()

	// Load SVG as data URI, so no temporary file is needed
	dataURI := "data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString([]byte(svg))

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Headless,
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(context.Background(), opts...)
	defer cancelAlloc()

	ctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()
	ctx, cancelTimeout := context.WithTimeout(ctx, snapshotTimeout)
	defer cancelTimeout()

	var buf []byte
	tasks := chromedp.Tasks{
		chromedp.Navigate(dataURI),
		chromedp.WaitVisible(`svg`, chromedp.ByQuery),
		chromedp.Screenshot(`svg`, &buf, chromedp.ByQuery),
	}
	if err := chromedp.Run(ctx, tasks); err != nil {
		return errors.Wrap(err, "Can't rasterize SVG")
	}
	if len(buf) == 0 {
		return errors.New("empty screenshot")
	}
	if err := os.WriteFile(fname, buf, 0644); err != nil {
		return errors.Wrap(err, "Can't write PNG")
	}
	if verbose {
		fmt.Printf("Done in %v\n", time.Since(st))
	}
	return nil
}
