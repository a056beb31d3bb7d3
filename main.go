package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/llehouerou/ledforge/internal/config"
	"github.com/llehouerou/ledforge/internal/emit"
	"github.com/llehouerou/ledforge/internal/frame"
	"github.com/llehouerou/ledforge/internal/loader"
	"github.com/llehouerou/ledforge/internal/logger"
	"github.com/llehouerou/ledforge/internal/preview"
	"github.com/llehouerou/ledforge/internal/resample"
	"github.com/llehouerou/ledforge/internal/state"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "ledforge: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		sizeFlag       = flag.String("size", "", "target matrix size, e.g. 16x16")
		modeFlag       = flag.String("mode", "", "placement mode: crop-top, crop-bottom, crop-center, stretch, fit")
		brightnessFlag = flag.Int("brightness", -1, "brightness percent (100 = unchanged, 0 = all off)")
		fpsFlag        = flag.Int("fps", 0, "animation frame rate")
		formatFlag     = flag.String("format", "", "artifact format: st, gvl, json")
		nameFlag       = flag.String("name", "", "artifact name (default: first input file name)")
		outFlag        = flag.String("o", "", "output directory")
		offXFlag       = flag.Int("offset-x", 0, "crop window x offset")
		offYFlag       = flag.Int("offset-y", 0, "crop window y offset")
		previewFlag    = flag.Bool("preview", false, "print a terminal preview of the first frame")
		logLevelFlag   = flag.String("log-level", "", "log level: debug, info, warn, error")
	)
	flag.Parse()

	if flag.NArg() == 0 {
		return fmt.Errorf("no input images (usage: ledforge [flags] image...)")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	defaults := cfg.GetOutputConfig()

	level := cfg.Log.Level
	if *logLevelFlag != "" {
		level = *logLevelFlag
	}
	log := logger.New(level, cfg.Log.File)
	defer log.Sync()

	// Settings remembered from the previous run sit between the config
	// defaults and the flags.
	store, err := state.Open()
	if err != nil {
		log.Warnw("state database unavailable", "error", err)
	} else {
		defer store.Close()
		if saved, err := store.GetSettings(); err != nil {
			log.Warnw("read saved settings", "error", err)
		} else if saved != nil {
			defaults = applySaved(defaults, *saved)
		}
	}

	width, height := defaults.Width, defaults.Height
	if *sizeFlag != "" {
		if width, height, err = parseSize(*sizeFlag); err != nil {
			return err
		}
	}
	modeName := defaults.Mode
	if *modeFlag != "" {
		modeName = *modeFlag
	}
	mode, err := resample.ParseMode(modeName)
	if err != nil {
		return err
	}
	formatName := defaults.Format
	if *formatFlag != "" {
		formatName = *formatFlag
	}
	format, err := emit.ParseFormat(formatName)
	if err != nil {
		return err
	}
	brightness := resolveBrightness(*brightnessFlag, defaults.Brightness)
	fps := defaults.FPS
	if *fpsFlag > 0 {
		fps = *fpsFlag
	}

	sources, err := loader.LoadAll(flag.Args())
	if err != nil {
		return err
	}
	log.Infow("loaded inputs", "files", flag.NArg(), "frames", len(sources))

	frames := make([]frame.Frame, len(sources))
	for i, src := range sources {
		frames[i] = frame.Frame{
			Grid:   resample.Resample(src.Grid, width, height, mode, *offXFlag, *offYFlag),
			Source: src.Source,
		}
	}
	seq, err := frame.NewSequence(frames...)
	if err != nil {
		return err
	}

	name := *nameFlag
	if name == "" {
		base := filepath.Base(flag.Arg(0))
		name = strings.TrimSuffix(base, filepath.Ext(base))
	}
	spec := emit.Spec{
		Name:       name,
		Brightness: brightness,
		FPS:        fps,
		Width:      width,
		Height:     height,
	}

	mem := seq.Memory()
	if mem.OverLimit {
		log.Warnw("large artifact", "memory", mem.String())
	}

	var content string
	switch format {
	case emit.FormatStructuredText:
		if seq.Len() == 1 {
			content = emit.StructuredTextImage(seq.Frame(0), spec)
		} else {
			content = emit.StructuredText(seq, spec)
		}
	case emit.FormatContainer:
		content = emit.Container(seq, spec)
	case emit.FormatInterchange:
		if content, err = emit.Interchange(seq, spec, time.Now()); err != nil {
			return err
		}
	}

	outDir := cfg.OutputDir
	if *outFlag != "" {
		outDir = *outFlag
	}
	outPath := filepath.Join(outDir, emit.SuggestFilename(format, spec))
	if dir := filepath.Dir(outPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create output directory: %w", err)
		}
	}
	if err := os.WriteFile(outPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("write artifact: %w", err)
	}
	log.Infow("artifact written",
		"path", outPath,
		"format", format.String(),
		"frames", seq.Len(),
		"size", fmt.Sprintf("%dx%d", width, height),
		"memory", mem.String(),
	)

	if store != nil {
		recordRun(log, store, seq, spec, format, modeName, outPath)
	}

	if *previewFlag {
		fmt.Print(preview.Render(seq.Frame(0).Grid, brightness))
	}
	return nil
}

func recordRun(log *zap.SugaredLogger, store *state.Manager, seq *frame.Sequence,
	spec emit.Spec, format emit.Format, mode, outPath string,
) {
	err := store.SaveSettings(state.Settings{
		Width:      spec.Width,
		Height:     spec.Height,
		Brightness: spec.Brightness,
		FPS:        spec.FPS,
		Mode:       mode,
		Format:     format.String(),
	})
	if err != nil {
		log.Warnw("save settings", "error", err)
	}
	err = store.RecordConversion(state.Conversion{
		Name:       spec.Name,
		Format:     format.String(),
		Frames:     seq.Len(),
		Width:      spec.Width,
		Height:     spec.Height,
		OutputPath: outPath,
		CreatedAt:  time.Now(),
	})
	if err != nil {
		log.Warnw("record conversion", "error", err)
	}
}

func applySaved(def config.OutputConfig, s state.Settings) config.OutputConfig {
	if s.Width > 0 {
		def.Width = s.Width
	}
	if s.Height > 0 {
		def.Height = s.Height
	}
	if s.Brightness > 0 {
		def.Brightness = s.Brightness
	}
	if s.FPS > 0 {
		def.FPS = s.FPS
	}
	if s.Mode != "" {
		def.Mode = s.Mode
	}
	if s.Format != "" {
		def.Format = s.Format
	}
	return def
}

// resolveBrightness picks the flag value over the default. 0 is a real
// brightness (everything off), so only the -1 sentinel means unset.
func resolveBrightness(flagVal, def int) int {
	if flagVal >= 0 {
		return flagVal
	}
	return def
}

func parseSize(s string) (int, int, error) {
	parts := strings.SplitN(strings.ToLower(s), "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("size %q: want WIDTHxHEIGHT", s)
	}
	var w, h int
	if _, err := fmt.Sscanf(parts[0], "%d", &w); err != nil || w <= 0 {
		return 0, 0, fmt.Errorf("size %q: bad width", s)
	}
	if _, err := fmt.Sscanf(parts[1], "%d", &h); err != nil || h <= 0 {
		return 0, 0, fmt.Errorf("size %q: bad height", s)
	}
	return w, h, nil
}
