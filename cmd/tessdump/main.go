// tessdump steps the animation clock without a window and writes the scene
// geometry of every visited frame as a stream of YAML documents.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/tesseract/internal/config"
	"github.com/Faultbox/tesseract/internal/export"
	"github.com/Faultbox/tesseract/internal/host"
	"github.com/Faultbox/tesseract/internal/logger"
	_ "github.com/Faultbox/tesseract/internal/plugin/hypercube"
	"github.com/Faultbox/tesseract/internal/tesseract"
)

var (
	flagOut  = flag.String("out", "", "Output file (default stdout)")
	flagFrom = flag.Int("from", -1, "First frame")
	flagTo   = flag.Int("to", -1, "Last frame")
	flagStep = flag.Int("step", 0, "Frame step")
	flagList = flag.Bool("list", false, "List registered plugins and exit")
)

func main() {
	config.ParseFlags()

	if *flagList {
		for _, name := range host.Plugins() {
			fmt.Println(name)
		}
		return
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	applyDumpFlags(&cfg.Export)

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	h := host.New()
	if err := h.Load(cfg.Animation.Plugins...); err != nil {
		logger.Error("failed to load plugins", zap.Error(err))
		os.Exit(1)
	}

	out := io.Writer(os.Stdout)
	if cfg.Export.Output != "" && cfg.Export.Output != "-" {
		f, err := os.Create(cfg.Export.Output)
		if err != nil {
			logger.Error("failed to create output", zap.String("path", cfg.Export.Output), zap.Error(err))
			os.Exit(1)
		}
		defer f.Close()
		out = f
	}

	n, err := dump(h, cfg.Export, out)
	if err != nil {
		logger.Error("dump failed", zap.Error(err))
		os.Exit(1)
	}
	logger.Info("dump complete", zap.Int("frames", n))
}

func applyDumpFlags(cfg *config.ExportConfig) {
	if *flagOut != "" {
		cfg.Output = *flagOut
	}
	if *flagFrom >= 0 {
		cfg.From = *flagFrom
	}
	if *flagTo >= 0 {
		cfg.To = *flagTo
	}
	if *flagStep > 0 {
		cfg.Step = *flagStep
	}
}

// dump visits frames From..To by Step and writes one document per frame.
// Frames past the clock end are reached by looping, and each document is
// labelled with the clock frame it was built at.
func dump(h *host.Host, cfg config.ExportConfig, w io.Writer) (int, error) {
	if cfg.Step <= 0 {
		return 0, fmt.Errorf("invalid step %d", cfg.Step)
	}

	enc := export.NewWriter(w)
	clock := h.Clock()
	for frame := cfg.From; frame <= cfg.To; frame += cfg.Step {
		if err := h.SetFrame(clock.Wrap(frame)); err != nil {
			return enc.Frames(), fmt.Errorf("frame %d: %w", frame, err)
		}
		f := export.Snapshot(h.World(), clock.Frame(), clock.Unit())
		f.Phase = tesseract.PhaseForFrame(clock.Frame())
		if err := enc.Write(f); err != nil {
			return enc.Frames(), err
		}
	}
	return enc.Frames(), enc.Close()
}
