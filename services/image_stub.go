package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"
)

// StubImageGenerator fabricates ảnh: chọn size/style/format không hỗ trợ
// sẽ fallback về lựa chọn đầu tiên thay vì báo lỗi
type StubImageGenerator struct {
	mu    sync.Mutex
	ready bool

	supportedSizes   []string
	supportedStyles  []string
	supportedFormats []string
	outputDir        string

	downloadDelay time.Duration
	perMegapixel  time.Duration
}

func NewStubImageGenerator(outputDir string) *StubImageGenerator {
	return &StubImageGenerator{
		supportedSizes:   []string{"1024x1024", "1280x720", "512x512"},
		supportedStyles:  []string{"realistic", "cartoon", "minimal"},
		supportedFormats: []string{"png", "jpg"},
		outputDir:        outputDir,
		downloadDelay:    40 * time.Millisecond,
		perMegapixel:     10 * time.Millisecond,
	}
}

func pickSupported(value string, supported []string) string {
	for _, s := range supported {
		if strings.EqualFold(value, s) {
			return s
		}
	}
	return supported[0]
}

func (g *StubImageGenerator) ensureReady(ctx context.Context) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.ready {
		return nil
	}
	if err := simulateLatency(ctx, g.downloadDelay); err != nil {
		return err
	}
	g.ready = true
	return nil
}

func megapixels(size string) float64 {
	parts := strings.SplitN(size, "x", 2)
	if len(parts) != 2 {
		return 1
	}
	w, err1 := strconv.Atoi(parts[0])
	h, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil {
		return 1
	}
	return float64(w*h) / 1e6
}

func (g *StubImageGenerator) GenerateImage(ctx context.Context, req ImageRequest) (*ImageResult, error) {
	if err := g.ensureReady(ctx); err != nil {
		return nil, err
	}

	size := pickSupported(req.Size, g.supportedSizes)
	style := pickSupported(req.Style, g.supportedStyles)
	format := pickSupported(req.Format, g.supportedFormats)

	// thời gian sinh tỉ lệ với số megapixel
	delay := time.Duration(megapixels(size) * float64(g.perMegapixel))
	start := time.Now()
	if err := simulateLatency(ctx, delay); err != nil {
		return nil, err
	}

	path := artifactPath(g.outputDir, "images", req.Prompt, format)
	if err := writeArtifact(path, []byte(req.Prompt)); err != nil {
		return nil, fmt.Errorf("write image artifact: %w", err)
	}

	return &ImageResult{
		ImagePath:             path,
		Size:                  size,
		Style:                 style,
		Format:                format,
		GenerationTimeSeconds: time.Since(start).Seconds(),
	}, nil
}

func (g *StubImageGenerator) GenerateThumbnail(ctx context.Context, topic, style, size string) (*ThumbnailResult, error) {
	result, err := g.GenerateImage(ctx, ImageRequest{
		Prompt: "thumbnail: " + topic,
		Style:  style,
		Size:   size,
		Format: "jpg",
	})
	if err != nil {
		return nil, err
	}
	return &ThumbnailResult{
		ThumbnailPath: result.ImagePath,
		Size:          result.Size,
		Style:         result.Style,
	}, nil
}
