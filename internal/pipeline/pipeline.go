package pipeline

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	"github.com/google/uuid"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"finddup/internal/config"
	"finddup/internal/dedup"
	"finddup/internal/fingerprintcache"
	"finddup/internal/imagehash"
	"finddup/internal/logging"
	"finddup/internal/media"
	"finddup/internal/media/ffmpeg"
	"finddup/internal/media/ffprobe"
)

// Pipeline turns scanned media paths into fingerprinted items ready for
// grouping. Hashing fans out over a worker pool; results come back in
// discovery order regardless of which worker finished first.
type Pipeline struct {
	cfg      *config.Config
	computer *imagehash.Computer
	cache    *fingerprintcache.Store
	logger   *slog.Logger
	progress io.Writer
}

// New builds a Pipeline. The cache may be a disabled store; progressOutput
// receives the progress bars and may be io.Discard.
func New(cfg *config.Config, cache *fingerprintcache.Store, logger *slog.Logger, progressOutput io.Writer) *Pipeline {
	if progressOutput == nil {
		progressOutput = io.Discard
	}
	return &Pipeline{
		cfg:      cfg,
		computer: imagehash.NewComputer(cfg.Hash.Algorithm, cfg.Hash.Size, logger),
		cache:    cache,
		logger:   logging.NewComponentLogger(logger, "pipeline"),
		progress: progressOutput,
	}
}

// Result carries the fingerprinted items in discovery order plus the count
// of files that failed to decode or hash. Failed files stay in Items with an
// empty fingerprint set, so they can never match.
type Result struct {
	Items  []dedup.Item
	Failed int
}

func (p *Pipeline) workerCount() int {
	if p.cfg.Workers.Count > 0 {
		return p.cfg.Workers.Count
	}
	return runtime.NumCPU()
}

// HashImages fingerprints every image path. Per-file failures are logged and
// counted, never fatal; cancellation of ctx stops the pool early.
func (p *Pipeline) HashImages(ctx context.Context, paths []string) (Result, error) {
	return p.run(ctx, "hashing images", dedup.KindImage, paths, p.hashImage)
}

// FingerprintVideos samples and fingerprints every video path. Offsets past
// a video's duration are skipped silently; any extraction or hash failure
// marks the whole file as failed.
func (p *Pipeline) FingerprintVideos(ctx context.Context, paths []string) (Result, error) {
	tempDir := filepath.Join(os.TempDir(), "finddup-"+uuid.NewString())
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return Result{}, err
	}
	defer os.RemoveAll(tempDir)

	return p.run(ctx, "fingerprinting videos", dedup.KindVideo, paths, func(ctx context.Context, path string) ([]imagehash.Fingerprint, error) {
		return p.fingerprintVideo(ctx, tempDir, path)
	})
}

type job struct {
	index int
	path  string
}

func (p *Pipeline) run(ctx context.Context, label string, kind dedup.Kind, paths []string, fn func(context.Context, string) ([]imagehash.Fingerprint, error)) (Result, error) {
	items := make([]dedup.Item, len(paths))
	failures := make([]bool, len(paths))

	bars := mpb.New(mpb.WithOutput(p.progress), mpb.WithWidth(48))
	bar := bars.AddBar(int64(len(paths)),
		mpb.PrependDecorators(
			decor.Name(label+" "),
			decor.CountersNoUnit("%d / %d"),
		),
		mpb.AppendDecorators(decor.Percentage()),
	)

	jobs := make(chan job)
	var wg sync.WaitGroup
	for w := 0; w < p.workerCount(); w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				fps, err := fn(ctx, j.path)
				if err != nil {
					p.logger.Warn("skipping file", logging.String("path", j.path), logging.Error(err))
					failures[j.index] = true
					fps = nil
				}
				items[j.index] = dedup.Item{Path: j.path, Kind: kind, Fingerprints: fps}
				bar.Increment()
			}
		}()
	}

feed:
	for i, path := range paths {
		select {
		case jobs <- job{index: i, path: path}:
		case <-ctx.Done():
			break feed
		}
	}
	close(jobs)
	wg.Wait()
	bar.Abort(true)
	bars.Wait()

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	result := Result{Items: items}
	for _, failed := range failures {
		if failed {
			result.Failed++
		}
	}
	return result, nil
}

// prehashWidth bounds the pixel data handed to the hash transforms. The
// downscale is deterministic, so identical sources still produce identical
// fingerprints.
const prehashWidth = 512

func (p *Pipeline) hashImage(ctx context.Context, path string) ([]imagehash.Fingerprint, error) {
	size, mtime, statErr := fileStamp(path)
	if statErr == nil {
		if fps, ok := p.cache.Lookup(ctx, path, size, mtime, p.computer.Algorithm(), p.computer.Bits(), nil); ok && len(fps) == 1 {
			return fps, nil
		}
	}

	img, err := media.DecodeImage(path)
	if err != nil {
		return nil, &imagehash.HashError{Path: path, Err: err}
	}
	fp, err := p.computer.Compute(media.Thumbnail(img, prehashWidth))
	if err != nil {
		return nil, &imagehash.HashError{Path: path, Err: err}
	}

	fps := []imagehash.Fingerprint{fp}
	if statErr == nil {
		if err := p.cache.Store(ctx, path, size, mtime, nil, fps); err != nil {
			p.logger.Warn("cache write failed", logging.String("path", path), logging.Error(err))
		}
	}
	return fps, nil
}

func (p *Pipeline) fingerprintVideo(ctx context.Context, tempDir, path string) ([]imagehash.Fingerprint, error) {
	offsets := p.cfg.Video.TimestampsSeconds
	size, mtime, statErr := fileStamp(path)
	if statErr == nil {
		if fps, ok := p.cache.Lookup(ctx, path, size, mtime, p.computer.Algorithm(), p.computer.Bits(), offsets); ok {
			return fps, nil
		}
	}

	info, err := ffprobe.Inspect(ctx, p.cfg.Video.FFprobeBinary, path)
	if err != nil {
		return nil, err
	}

	var fps []imagehash.Fingerprint
	for _, offset := range offsets {
		// Offsets past the end of the video are skipped, not errors, so
		// short clips still get whatever frames fit.
		if info.DurationSeconds > 0 && float64(offset) >= info.DurationSeconds {
			continue
		}

		framePath := filepath.Join(tempDir, uuid.NewString()+".jpg")
		if err := ffmpeg.Screenshot(ctx, p.cfg.Video.FFmpegBinary, path, framePath, offset); err != nil {
			return nil, err
		}

		img, err := media.DecodeImage(framePath)
		_ = os.Remove(framePath)
		if err != nil {
			return nil, &imagehash.HashError{Path: path, Err: err}
		}
		fp, err := p.computer.Compute(media.Thumbnail(img, prehashWidth))
		if err != nil {
			return nil, &imagehash.HashError{Path: path, Err: err}
		}
		fps = append(fps, fp)
	}

	if statErr == nil && len(fps) > 0 {
		if err := p.cache.Store(ctx, path, size, mtime, offsets, fps); err != nil {
			p.logger.Warn("cache write failed", logging.String("path", path), logging.Error(err))
		}
	}
	return fps, nil
}

func fileStamp(path string) (sizeBytes, mtimeUnix int64, err error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, 0, err
	}
	return info.Size(), info.ModTime().Unix(), nil
}
