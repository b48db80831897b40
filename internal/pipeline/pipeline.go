// Package pipeline orchestrates one run: read each resolved target, strip
// it, route the result to its destination and report what happened.
package pipeline

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/haytac/emoji-strip/internal/config"
	"github.com/haytac/emoji-strip/internal/emoji"
	"github.com/haytac/emoji-strip/internal/resolver"
)

// backupSuffix is appended to the original path before an in-place write.
const backupSuffix = ".bak"

// Pipeline processes resolved targets under the policies in RunConfig.
type Pipeline struct {
	cfg    *config.RunConfig
	stdout io.Writer
}

// New creates a Pipeline. stdout receives stripped content in single-file
// stdout mode; everything else the pipeline says goes through the logger.
func New(cfg *config.RunConfig, stdout io.Writer) *Pipeline {
	return &Pipeline{cfg: cfg, stdout: stdout}
}

// Result aggregates a batch run.
type Result struct {
	Processed int
	Failed    int
	Spans     int // emoji sequences removed (or that would be, in dry-run)
}

// Run processes every target in order. A failure on one target is logged
// and counted, then the batch continues with the next one. The returned
// error is non-nil when any target failed, so callers exit non-zero.
func (p *Pipeline) Run(targets []resolver.FileTarget) (Result, error) {
	if p.cfg.Recursive && (p.cfg.Verbose || p.cfg.DryRun) {
		log.Info().Str("path", p.cfg.Path).Msg("Scanning directory")
	}

	var res Result
	for _, t := range targets {
		spans, err := p.process(t)
		if err != nil {
			log.Error().Err(err).Str("path", t.Path).Msg("Failed to process file")
			res.Failed++
			continue
		}
		res.Processed++
		res.Spans += spans
	}

	if p.cfg.Recursive {
		log.Info().Int("processed", res.Processed).Int("errors", res.Failed).Msg("Completed")
	}
	if res.Failed > 0 {
		return res, fmt.Errorf("%d of %d files failed", res.Failed, res.Failed+res.Processed)
	}
	return res, nil
}

// process runs one target through read, strip, destination resolution and
// write (or dry-run skip). It returns the removed-span count.
func (p *Pipeline) process(t resolver.FileTarget) (int, error) {
	raw, err := os.ReadFile(t.Path)
	if err != nil {
		return 0, fmt.Errorf("reading %s: %w", t.Path, err)
	}

	stripped := emoji.Strip(string(raw))
	if p.cfg.Shortcodes {
		sc := emoji.StripShortcodes(stripped.Text)
		stripped = emoji.StripResult{
			Text:  sc.Text,
			Spans: stripped.Spans + sc.Spans,
			Runes: stripped.Runes + sc.Runes,
		}
	}

	dest := p.destination(t)

	if p.cfg.DryRun {
		ev := log.Info().Str("path", t.Path).Int("spans", stripped.Spans)
		if p.cfg.Verbose {
			ev = ev.Int("original_bytes", len(raw)).Int("cleaned_bytes", len(stripped.Text))
		}
		ev.Msg("[dry run] Would process")
		return stripped.Spans, nil
	}

	switch dest {
	case "":
		if _, err := io.WriteString(p.stdout, stripped.Text); err != nil {
			return 0, fmt.Errorf("writing to stdout: %w", err)
		}
	case t.Path:
		if err := p.writeInPlace(t.Path, raw, []byte(stripped.Text)); err != nil {
			return 0, err
		}
	default:
		if err := os.WriteFile(dest, []byte(stripped.Text), 0644); err != nil {
			return 0, fmt.Errorf("writing %s: %w", dest, err)
		}
	}

	if p.cfg.Verbose {
		out := dest
		if out == "" {
			out = "stdout"
		}
		log.Info().Str("path", t.Path).Int("spans", stripped.Spans).Str("destination", out).Msg("Processed")
	}
	return stripped.Spans, nil
}

// destination returns where stripped content goes: "" for stdout, an
// explicit output path, or the original path for in-place rewriting.
func (p *Pipeline) destination(t resolver.FileTarget) string {
	if t.Mode == resolver.SingleFile {
		return p.cfg.Output // "" means stdout
	}
	return t.Path
}

// writeInPlace replaces path with cleaned. When backups are requested the
// original bytes are written to <path>.bak first; the original is not
// touched if that fails. The replacement itself goes through a temp file in
// the same directory and a rename, so an interrupted run never leaves a
// partially written file as the final artifact.
func (p *Pipeline) writeInPlace(path string, original, cleaned []byte) error {
	perm := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	if p.cfg.Backup {
		backupPath := path + backupSuffix
		if err := os.WriteFile(backupPath, original, perm); err != nil {
			return fmt.Errorf("writing backup %s: %w", backupPath, err)
		}
		if p.cfg.Verbose {
			log.Info().Str("backup", backupPath).Msg("Created backup")
		}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".emoji-strip-*")
	if err != nil {
		return fmt.Errorf("creating temp file for %s: %w", path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(cleaned); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Chmod(tmpName, perm); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing %s: %w", path, err)
	}
	return nil
}
