package cmd

import (
	"fmt"
	"io"
	"strings"
)

const progressWidth = 40

// progressBar renders the detail-enrichment advancement as a single
// rewritten line, the CLI counterpart of the web exporter's loading bar.
type progressBar struct {
	w       io.Writer
	started bool
}

func (p *progressBar) Start(total int) {
	if total == 0 {
		return
	}
	p.started = true
	p.Update(0, total)
}

func (p *progressBar) Update(done, total int) {
	if !p.started || total == 0 {
		return
	}
	filled := progressWidth * done / total
	fmt.Fprintf(p.w, "\r[%-*s] %3d%%", progressWidth, strings.Repeat("#", filled), done*100/total)
}

// Stop clears the bar; called unconditionally when the phase ends.
func (p *progressBar) Stop() {
	if !p.started {
		return
	}
	p.started = false
	fmt.Fprintf(p.w, "\r%*s\r", progressWidth+7, "")
}
