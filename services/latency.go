package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
)

// simulateLatency thay cho thời gian inference thật, vẫn tôn trọng context
func simulateLatency(ctx context.Context, d time.Duration) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-time.After(d):
		return nil
	}
}

// artifactPath sinh đường dẫn file output: <dir>/<kind>/<slug>-<uuid>.<ext>
func artifactPath(outputDir, kind, name, ext string) string {
	base := slug.Make(name)
	if base == "" {
		base = kind
	}
	if len(base) > 48 {
		base = base[:48]
	}
	return filepath.Join(outputDir, kind, fmt.Sprintf("%s-%s.%s", base, uuid.New().String()[:8], ext))
}

// writeArtifact ghi file placeholder để cleanup job và dashboard có file thật
func writeArtifact(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
