package productcontroller

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

const uploadRoot = "uploads"

// saveImage stores an optional uploaded image under uploads/<subdir> and
// returns its public URL, or "" when the request carried no file.
func saveImage(c *gin.Context, subdir string) (string, error) {
	file, err := c.FormFile("image")
	if err != nil {
		return "", nil
	}

	saveDir := filepath.Join(uploadRoot, subdir)
	if err := os.MkdirAll(saveDir, os.ModePerm); err != nil {
		return "", err
	}

	ext := filepath.Ext(file.Filename)
	base := strings.TrimSuffix(filepath.Base(file.Filename), ext)
	base = strings.ReplaceAll(base, " ", "_")
	filename := fmt.Sprintf("%d_%s%s", time.Now().UnixNano(), base, ext)

	if err := c.SaveUploadedFile(file, filepath.Join(saveDir, filename)); err != nil {
		return "", err
	}
	return fmt.Sprintf("/%s/%s/%s", uploadRoot, subdir, filename), nil
}

// removeImage deletes a previously stored image by its public URL.
func removeImage(publicURL string) {
	if publicURL == "" {
		return
	}
	_ = os.Remove(strings.TrimPrefix(publicURL, "/"))
}
