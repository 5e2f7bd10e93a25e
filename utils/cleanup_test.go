package utils_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vnkhanh/creator-studio-backend/utils"
)

func TestCleanupOldArtifacts(t *testing.T) {
	dir := t.TempDir()

	oldFile := filepath.Join(dir, "audio", "cu.mp3")
	require.NoError(t, os.MkdirAll(filepath.Dir(oldFile), 0o755))
	require.NoError(t, os.WriteFile(oldFile, []byte("x"), 0o644))
	// lùi mtime về quá hạn TTL
	past := time.Now().Add(-100 * time.Hour)
	require.NoError(t, os.Chtimes(oldFile, past, past))

	newFile := filepath.Join(dir, "audio", "moi.mp3")
	require.NoError(t, os.WriteFile(newFile, []byte("x"), 0o644))

	utils.CleanupOldArtifacts(dir, 72*time.Hour)

	_, err := os.Stat(oldFile)
	assert.True(t, os.IsNotExist(err), "file quá hạn phải bị xoá")
	_, err = os.Stat(newFile)
	assert.NoError(t, err, "file còn hạn phải được giữ lại")
}
