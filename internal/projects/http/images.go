package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bokyaa/portfolio-backend/internal/notify"
	"github.com/bokyaa/portfolio-backend/internal/projects/intake"
)

// uploadImages accepts a multipart batch of image files from the admin
// form and returns their embedded payloads. The "count" field carries how
// many images the form has already accumulated, so the 5-image cap spans
// the whole record, not just this batch.
func (h *Handler) uploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "invalid multipart form"})
		return
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "files are required"})
		return
	}

	count, _ := strconv.Atoi(c.PostForm("count"))
	if count < 0 {
		count = 0
	}
	current := make([]string, count)

	files := make([]intake.File, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": "unreadable upload"})
			return
		}
		defer f.Close()
		files = append(files, intake.File{Name: fh.Filename, Size: fh.Size, Reader: f})
	}

	merged, rejected, err := intake.AddFiles(current, files)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": err.Error(), "notice": notify.FromError(err)})
		return
	}

	notices := make([]notify.Notice, 0, len(rejected)+1)
	for _, rej := range rejected {
		notices = append(notices, notify.FileRejection(rej.Name, rej.Err))
	}

	accepted := merged[count:]
	if len(accepted) > 0 {
		notices = append(notices, notify.Info(
			strconv.Itoa(len(accepted))+" Image(s) Uploaded",
			"Images have been successfully uploaded and will be used for the project.",
		))
	}

	c.JSON(http.StatusOK, gin.H{"ok": true, "images": accepted, "notices": notices})
}
